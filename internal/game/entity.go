package game

import "strings"

// Attributes are the six core stats shared by heroes and NPC opponents.
type Attributes struct {
	Force        int `json:"force"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Sum returns the attribute total, used for reward computation.
func (a Attributes) Sum() int {
	return a.Force + a.Dexterity + a.Constitution + a.Intelligence + a.Wisdom + a.Charisma
}

// EntityState is a transient combat snapshot of one participant. It is
// derived at combat start (from a Hero or an NPC archetype), mutated
// turn-by-turn and discarded when the duel ends. It is never persisted.
type EntityState struct {
	Name  string `json:"name"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"max_hp"`
	MP    int    `json:"mp"`
	MaxMP int    `json:"max_mp"`
	Armor int    `json:"armor"`
	Attributes
	Affinity string  `json:"affinity"`
	Skills   []Skill `json:"skills,omitempty"`
}

// Alive reports whether the entity can still act.
func (e *EntityState) Alive() bool { return e.HP > 0 }

// Damage applies dmg to HP without going below zero.
func (e *EntityState) Damage(dmg int) {
	e.HP -= dmg
	if e.HP < 0 {
		e.HP = 0
	}
}

// Heal restores HP up to the maximum.
func (e *EntityState) Heal(amount int) {
	e.HP += amount
	if e.HP > e.MaxHP {
		e.HP = e.MaxHP
	}
}

// Clone returns an independent copy, safe to hand out while the original
// keeps mutating under a session lock.
func (e *EntityState) Clone() *EntityState {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Skills = append([]Skill(nil), e.Skills...)
	return &cp
}

// SkillByKey returns the loadout skill with the given key, or nil.
func (e *EntityState) SkillByKey(key string) *Skill {
	for i := range e.Skills {
		if e.Skills[i].Key == key {
			return &e.Skills[i]
		}
	}
	return nil
}

// NewEntityState builds a combat snapshot from a persistent hero profile.
// Skills are resolved from the content config by the caller and passed in.
func NewEntityState(h *Hero, skills []Skill) *EntityState {
	return &EntityState{
		Name:  h.Name,
		HP:    h.MaxHP,
		MaxHP: h.MaxHP,
		MP:    h.MaxMP,
		MaxMP: h.MaxMP,
		Armor: h.Armor,
		Attributes: Attributes{
			Force:        h.Force,
			Dexterity:    h.Dexterity,
			Constitution: h.Constitution,
			Intelligence: h.Intelligence,
			Wisdom:       h.Wisdom,
			Charisma:     h.Charisma,
		},
		Affinity: h.Affinity,
		Skills:   skills,
	}
}

// LoadoutKeys splits the hero's comma-separated skill key list.
func (h *Hero) LoadoutKeys() []string {
	if h.SkillKeys == "" {
		return nil
	}
	parts := strings.Split(h.SkillKeys, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			keys = append(keys, s)
		}
	}
	return keys
}

// Archetype is an NPC template loaded from the content config.
type Archetype struct {
	Name  string `json:"name"`
	MaxHP int    `json:"max_hp"`
	MaxMP int    `json:"max_mp"`
	Armor int    `json:"armor"`
	Attributes
	Affinity  string   `json:"affinity"`
	SkillKeys []string `json:"skill_keys"`
}

// EntityState instantiates a fresh combat snapshot for the archetype.
func (a *Archetype) EntityState(skills []Skill) *EntityState {
	return &EntityState{
		Name:       a.Name,
		HP:         a.MaxHP,
		MaxHP:      a.MaxHP,
		MP:         a.MaxMP,
		MaxMP:      a.MaxMP,
		Armor:      a.Armor,
		Attributes: a.Attributes,
		Affinity:   a.Affinity,
		Skills:     skills,
	}
}
