package engine

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/constants"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/game"
)

// AddEffect attaches a status effect to one side of the duel. Buffs and
// debuffs adjust the target attribute immediately and are reverted when the
// effect expires; DOT kinds tick once per turn.
func (d *Duel) AddEffect(kind game.EffectKind, target game.Side, turns, magnitude int, attr game.AttributeName) {
	eff := game.StatusEffect{
		ID:        uuid.NewString(),
		Kind:      kind,
		Target:    target,
		TurnsLeft: turns,
		Magnitude: magnitude,
		Attribute: attr,
	}
	if kind == game.EffectBuff || kind == game.EffectDebuff {
		d.adjustAttribute(&eff, false)
	}
	d.Effects = append(d.Effects, eff)
}

// applySkillEffect converts a tagged skill effect kind into a concrete
// status effect on the appropriate side, using skill overrides when set.
func (d *Duel) applySkillEffect(tc *turnContext, kind game.EffectKind, skill *game.Skill, caster game.Side) {
	duration := skill.EffectDuration
	magnitude := skill.EffectMagnitude
	target := caster.Opposite()
	switch kind {
	case game.EffectFreeze:
		d.AddEffect(game.EffectFreeze, target, constants.FreezeDuration, 0, "")
		tc.add(d.primary(target).Name + " is frozen and will not counter-attack")
	case game.EffectPoison:
		if duration == 0 {
			duration = constants.PoisonDuration
		}
		if magnitude == 0 {
			magnitude = constants.PoisonTickDamage
		}
		d.AddEffect(game.EffectPoison, target, duration, magnitude, "")
		tc.add(d.primary(target).Name + " is poisoned for " + strconv.Itoa(duration) + " turns")
	case game.EffectBurn:
		if duration == 0 {
			duration = constants.PoisonDuration
		}
		if magnitude == 0 {
			magnitude = constants.BurnTickDamage
		}
		d.AddEffect(game.EffectBurn, target, duration, magnitude, "")
		tc.add(d.primary(target).Name + " is burning for " + strconv.Itoa(duration) + " turns")
	case game.EffectBuff:
		if duration == 0 || skill.EffectAttribute == "" || magnitude == 0 {
			return
		}
		d.AddEffect(game.EffectBuff, caster, duration, magnitude, skill.EffectAttribute)
		tc.add(d.primary(caster).Name + " gains +" + strconv.Itoa(magnitude) + " " + string(skill.EffectAttribute))
	case game.EffectDebuff:
		if duration == 0 || skill.EffectAttribute == "" || magnitude == 0 {
			return
		}
		d.AddEffect(game.EffectDebuff, target, duration, magnitude, skill.EffectAttribute)
		tc.add(d.primary(target).Name + " suffers -" + strconv.Itoa(magnitude) + " " + string(skill.EffectAttribute))
	}
}

// adjustAttribute applies (or reverts) a buff/debuff delta on the primary
// entity of the effect's side. The delta that actually lands after the
// zero clamp is recorded on the effect so expiry restores the exact
// starting value.
func (d *Duel) adjustAttribute(eff *game.StatusEffect, revert bool) {
	target := d.primary(eff.Target)
	p := eff.Attr(&target.Attributes)
	if p == nil {
		return
	}
	if revert {
		*p -= eff.Applied
		if *p < 0 {
			*p = 0
		}
		return
	}
	delta := eff.Magnitude
	if eff.Kind == game.EffectDebuff {
		delta = -delta
	}
	if *p+delta < 0 {
		delta = -*p
	}
	*p += delta
	eff.Applied = delta
}

// tickEffects resolves pending status effects against both sides: DOT
// damage, duration decrement, expiry (reverting attribute adjustments).
// TurnsLeft never goes below zero and an expired effect leaves the list.
func (tc *turnContext) tickEffects() {
	d := tc.d
	kept := d.Effects[:0]
	for i := range d.Effects {
		eff := d.Effects[i]
		target := d.primary(eff.Target)
		if eff.Kind == game.EffectFreeze {
			// Freeze is single-use: consumed when it suppresses a
			// counter-attack, never decayed by duration.
			kept = append(kept, eff)
			continue
		}
		switch eff.Kind {
		case game.EffectPoison:
			target.Damage(eff.Magnitude)
			tc.add(target.Name + " takes " + strconv.Itoa(eff.Magnitude) + " poison damage")
		case game.EffectBurn:
			target.Damage(eff.Magnitude)
			tc.add(target.Name + " takes " + strconv.Itoa(eff.Magnitude) + " burn damage")
		}
		if eff.TurnsLeft > 0 {
			eff.TurnsLeft--
		}
		if eff.TurnsLeft == 0 {
			if eff.Kind == game.EffectBuff || eff.Kind == game.EffectDebuff {
				d.adjustAttribute(&eff, true)
				tc.add(target.Name + "'s " + string(eff.Attribute) + " modifier wears off")
			}
			continue
		}
		kept = append(kept, eff)
	}
	d.Effects = kept
}

// frozen reports whether the side has a pending freeze effect.
func (d *Duel) frozen(side game.Side) bool {
	for i := range d.Effects {
		if d.Effects[i].Kind == game.EffectFreeze && d.Effects[i].Target == side {
			return true
		}
	}
	return false
}

// consumeFreeze removes the side's freeze effect. Freeze suppresses exactly
// one counter-attack: using it consumes it regardless of remaining turns.
func (d *Duel) consumeFreeze(side game.Side) {
	for i := range d.Effects {
		if d.Effects[i].Kind == game.EffectFreeze && d.Effects[i].Target == side {
			d.Effects = append(d.Effects[:i], d.Effects[i+1:]...)
			return
		}
	}
}
