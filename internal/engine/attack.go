package engine

import (
	"math"
	"strconv"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/constants"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/game"
)

// hitChance returns the clamped percent chance for attacker to hit defender.
func hitChance(attacker, defender *game.EntityState) int {
	chance := constants.BaseHitChance + constants.HitChancePerDex*(attacker.Dexterity-defender.Dexterity)
	if chance < constants.MinHitChance {
		chance = constants.MinHitChance
	}
	if chance > constants.MaxHitChance {
		chance = constants.MaxHitChance
	}
	return chance
}

// baseAttack resolves one physical exchange: hit roll, independent crit
// roll, armor subtraction with a floor of 1 damage on any successful hit.
func (tc *turnContext) baseAttack(attacker, defender *game.EntityState) int {
	chance := hitChance(attacker, defender)
	roll := tc.d.rng.Intn(100) + 1
	if roll > chance {
		tc.add(attacker.Name + " attacks " + defender.Name + " and misses (" + strconv.Itoa(chance) + "% to hit)")
		return 0
	}

	base := float64(attacker.Force + constants.WeaponBonus)
	crit := tc.d.rng.Intn(100) < constants.CritChancePct
	if crit {
		base *= constants.CritMultiplier
	}
	dmg := int(math.Floor(base)) - defender.Armor
	if dmg < 1 {
		dmg = 1
	}
	defender.Damage(dmg)

	msg := attacker.Name + " hits " + defender.Name + " for " + strconv.Itoa(dmg) + " damage"
	if crit {
		msg += " (critical!)"
	}
	tc.add(msg)
	return dmg
}

// castSkill resolves a magic action. Insufficient MP degrades to a warning
// log line with zero damage; it is never an error.
func (tc *turnContext) castSkill(attacker, defender *game.EntityState, attackerSide game.Side, skill *game.Skill) {
	if attacker.MP < skill.CostMP {
		tc.add(attacker.Name + " tries " + skill.Name + " but lacks MP (" +
			strconv.Itoa(attacker.MP) + "/" + strconv.Itoa(skill.CostMP) + ")")
		return
	}
	attacker.MP -= skill.CostMP

	out := skill.Outcome(attacker)
	if out.Healing > 0 {
		attacker.Heal(out.Healing)
		tc.add(attacker.Name + " casts " + skill.Name + " and recovers " + strconv.Itoa(out.Healing) + " HP")
	}
	if out.Damage > 0 {
		dmg := out.Damage - defender.Armor
		if dmg < 1 {
			dmg = 1
		}
		defender.Damage(dmg)
		tc.add(attacker.Name + " casts " + skill.Name + " on " + defender.Name + " for " + strconv.Itoa(dmg) + " damage")
	}
	for _, kind := range out.Effects {
		tc.d.applySkillEffect(tc, kind, skill, attackerSide)
	}
}
