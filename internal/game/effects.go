package game

// EffectKind is the tagged set of status effect kinds. Skill resolution
// produces these directly; nothing in the engine infers an effect from a
// string tag.
type EffectKind string

const (
	EffectPoison EffectKind = "poison"
	EffectFreeze EffectKind = "freeze"
	EffectBurn   EffectKind = "burn"
	EffectBuff   EffectKind = "buff"
	EffectDebuff EffectKind = "debuff"
)

// Side identifies which side of a combat an effect is attached to.
type Side string

const (
	SideHero  Side = "hero"
	SideEnemy Side = "enemy"
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideHero {
		return SideEnemy
	}
	return SideHero
}

// AttributeName names an attribute affected by a buff or debuff.
type AttributeName string

const (
	AttrForce        AttributeName = "force"
	AttrDexterity    AttributeName = "dexterity"
	AttrConstitution AttributeName = "constitution"
	AttrIntelligence AttributeName = "intelligence"
	AttrWisdom       AttributeName = "wisdom"
	AttrCharisma     AttributeName = "charisma"
)

// StatusEffect is a timed modifier attached to one side of an active combat
// session. TurnsLeft is decremented once per turn and never goes negative;
// the effect is removed from the active list when it reaches zero. A freeze
// effect suppresses that side's next counter-attack once and is consumed by
// doing so.
type StatusEffect struct {
	ID        string        `json:"id"`
	Kind      EffectKind    `json:"kind"`
	Target    Side          `json:"target"`
	TurnsLeft int           `json:"turns_left"`
	Magnitude int           `json:"magnitude"`
	Attribute AttributeName `json:"attribute,omitempty"`

	// Applied is the attribute delta that actually landed, after clamping.
	// Expiry reverts exactly this amount, never the raw magnitude.
	Applied int `json:"-"`
}

// Attr returns a pointer to the named attribute inside attrs, or nil when
// the effect does not touch an attribute.
func (e *StatusEffect) Attr(attrs *Attributes) *int {
	switch e.Attribute {
	case AttrForce:
		return &attrs.Force
	case AttrDexterity:
		return &attrs.Dexterity
	case AttrConstitution:
		return &attrs.Constitution
	case AttrIntelligence:
		return &attrs.Intelligence
	case AttrWisdom:
		return &attrs.Wisdom
	case AttrCharisma:
		return &attrs.Charisma
	}
	return nil
}
