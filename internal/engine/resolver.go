package engine

import (
	"math/rand"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/constants"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/game"
)

// ActionKind is the player-facing action for one turn.
type ActionKind string

const (
	ActionPhysical ActionKind = "physical"
	ActionMagic    ActionKind = "magic"
	ActionSpecial  ActionKind = "special"
)

// Duel is the in-memory state of one active combat. Ally and Enemy2 are nil
// outside 2v2 mode. The struct is owned by exactly one session and is never
// shared across sessions.
type Duel struct {
	Mode   game.Mode
	Hero   *game.EntityState
	Enemy  *game.EntityState
	Ally   *game.EntityState
	Enemy2 *game.EntityState

	Effects  []game.StatusEffect
	HeroTurn bool
	Turn     int
	Over     bool
	HeroWon  bool

	rng *rand.Rand
}

// TurnResult is the outcome of one PlayTurn invocation.
type TurnResult struct {
	Log     []string `json:"log"`
	Over    bool     `json:"over"`
	HeroWon bool     `json:"hero_won"`
	XP      int      `json:"xp"`
	Gold    int      `json:"gold"`
}

// NewDuel builds a fresh duel. Initial turn order goes to the side with the
// higher dexterity; ties favor the hero.
func NewDuel(mode game.Mode, hero, enemy, ally, enemy2 *game.EntityState, rng *rand.Rand) *Duel {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Duel{
		Mode:     mode,
		Hero:     hero,
		Enemy:    enemy,
		Ally:     ally,
		Enemy2:   enemy2,
		Effects:  make([]game.StatusEffect, 0, 4),
		HeroTurn: hero.Dexterity >= enemy.Dexterity,
		rng:      rng,
	}
}

// primary returns the side's primary combatant.
func (d *Duel) primary(side game.Side) *game.EntityState {
	if side == game.SideHero {
		return d.Hero
	}
	return d.Enemy
}

// sideDefeated reports whether every member of the side is at 0 HP. In 2v2
// a single member dying does not end the match.
func (d *Duel) sideDefeated(side game.Side) bool {
	if side == game.SideHero {
		if d.Hero.Alive() {
			return false
		}
		return d.Ally == nil || !d.Ally.Alive()
	}
	if d.Enemy.Alive() {
		return false
	}
	return d.Enemy2 == nil || !d.Enemy2.Alive()
}

// PlayTurn runs one full turn: pending effects on both sides, the acting
// side's chosen action, the opposing counter (unless dead or frozen), the
// 2v2 side exchange and the termination check. The acting side alternates
// on every invocation.
func (d *Duel) PlayTurn(action ActionKind, skillKey string) TurnResult {
	if d.Over {
		return TurnResult{Over: true, HeroWon: d.HeroWon}
	}
	d.Turn++
	tc := newTurnContext(d)

	tc.tickEffects()
	if d.checkTermination(tc) {
		return d.result(tc)
	}

	actingSide := game.SideEnemy
	if d.HeroTurn {
		actingSide = game.SideHero
	}
	attacker := d.primary(actingSide)
	defender := d.primary(actingSide.Opposite())

	d.performAction(tc, attacker, defender, actingSide, action, skillKey)

	// Immediate counter with a default physical attack, unless the
	// defender died or a freeze suppresses it.
	if defender.Alive() {
		defSide := actingSide.Opposite()
		if d.frozen(defSide) {
			d.consumeFreeze(defSide)
			tc.add(defender.Name + " is frozen and cannot counter-attack")
		} else {
			tc.baseAttack(defender, attacker)
		}
	}

	// 2v2: ally and second enemy exchange one physical attack each,
	// gated on both being alive.
	if d.Mode == game.ModeTeam && d.Ally != nil && d.Enemy2 != nil &&
		d.Ally.Alive() && d.Enemy2.Alive() {
		tc.baseAttack(d.Ally, d.Enemy2)
		if d.Enemy2.Alive() {
			tc.baseAttack(d.Enemy2, d.Ally)
		}
	}

	d.checkTermination(tc)
	d.HeroTurn = !d.HeroTurn
	return d.result(tc)
}

// performAction executes the chosen action kind. An invalid or missing
// skill on a magic action falls back to a default physical attack.
func (d *Duel) performAction(tc *turnContext, attacker, defender *game.EntityState, side game.Side, action ActionKind, skillKey string) {
	switch action {
	case ActionMagic:
		skill := attacker.SkillByKey(skillKey)
		if skill == nil {
			tc.baseAttack(attacker, defender)
			return
		}
		tc.castSkill(attacker, defender, side, skill)
	case ActionSpecial:
		tc.baseAttack(attacker, defender)
		// Special always poisons the opponent, independent of MP.
		d.AddEffect(game.EffectPoison, side.Opposite(), constants.PoisonDuration, constants.PoisonTickDamage, "")
		tc.add(defender.Name + " is poisoned by the special attack")
	default:
		tc.baseAttack(attacker, defender)
	}
}

// checkTermination marks the duel over once an entire side is down.
// Simultaneous wipes count against the hero.
func (d *Duel) checkTermination(tc *turnContext) bool {
	if d.Over {
		return true
	}
	heroDown := d.sideDefeated(game.SideHero)
	enemyDown := d.sideDefeated(game.SideEnemy)
	switch {
	case heroDown:
		d.Over = true
		d.HeroWon = false
		tc.add(d.Hero.Name + " has been defeated")
	case enemyDown:
		d.Over = true
		d.HeroWon = true
		tc.add(d.Enemy.Name + " has been defeated. " + d.Hero.Name + " wins!")
	}
	return d.Over
}

// result assembles the TurnResult, computing rewards on a hero victory.
// Training mode is zero-stakes and never grants rewards.
func (d *Duel) result(tc *turnContext) TurnResult {
	res := TurnResult{Log: tc.log, Over: d.Over, HeroWon: d.HeroWon}
	if d.Over && d.HeroWon && !d.Mode.Training() {
		res.XP, res.Gold = Rewards(d.Enemy)
	}
	return res
}

// Rewards derives xp and gold from the defeated opponent's stats.
func Rewards(defeated *game.EntityState) (xp, gold int) {
	xp = defeated.Attributes.Sum() + defeated.MaxHP/10
	gold = defeated.MaxHP/2 + defeated.Armor*2
	return xp, gold
}
