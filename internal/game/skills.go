package game

// SkillKind is what a skill fundamentally does.
type SkillKind string

const (
	SkillAttack SkillKind = "attack"
	SkillHeal   SkillKind = "heal"
)

// Skill is one entry of a hero's loadout. Definitions come from the content
// config; skills are read-only during combat.
type Skill struct {
	Key    string    `json:"key"`
	Name   string    `json:"name"`
	Kind   SkillKind `json:"kind"`
	CostMP int       `json:"cost_mp"`
	Power  int       `json:"power"`
	// Effects the skill may apply on a successful cast, as tagged kinds.
	Effects []EffectKind `json:"effects,omitempty"`
	// Optional parameters for applied effects. Zero values fall back to
	// engine defaults (duration and tick damage per kind).
	EffectMagnitude int           `json:"effect_magnitude,omitempty"`
	EffectDuration  int           `json:"effect_duration,omitempty"`
	EffectAttribute AttributeName `json:"effect_attribute,omitempty"`
}

// SkillOutcome is the numeric result of one cast.
type SkillOutcome struct {
	Damage  int
	Healing int
	Effects []EffectKind
}

// Outcome computes the skill's numeric result for a caster. Attack skills
// scale with intelligence, heals with wisdom; armor is applied later by the
// resolver.
func (s Skill) Outcome(caster *EntityState) SkillOutcome {
	out := SkillOutcome{Effects: s.Effects}
	switch s.Kind {
	case SkillHeal:
		out.Healing = s.Power + caster.Wisdom/2
	default:
		out.Damage = s.Power + caster.Intelligence/2
	}
	return out
}
