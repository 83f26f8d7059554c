package engine

import (
	"math/rand"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/constants"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/game"
)

// Outcome is a complete server-authoritative resolution: one request in,
// one fully resolved duel out. It sidesteps the per-turn race conditions of
// the client-simulated mode entirely.
type Outcome struct {
	Victory    bool     `json:"victory"`
	XPGained   int      `json:"xp_gained"`
	GoldGained int      `json:"gold_gained"`
	Log        []string `json:"log"`
}

// Resolve runs the whole duel to completion with a seeded RNG so the same
// pre-combat state plus seed always produces the same outcome. Both sides
// follow a fixed policy: heal when hurt and affordable, otherwise cast the
// first affordable attack skill, otherwise attack physically.
func Resolve(hero, enemy *game.EntityState, mode game.Mode, seed int64) Outcome {
	d := NewDuel(mode, hero, enemy, nil, nil, rand.New(rand.NewSource(seed)))
	out := Outcome{Log: make([]string, 0, 32)}

	for !d.Over && d.Turn < constants.MaxResolveTurns {
		actor := d.Enemy
		if d.HeroTurn {
			actor = d.Hero
		}
		action, key := autoAction(actor)
		res := d.PlayTurn(action, key)
		out.Log = append(out.Log, res.Log...)
		if res.Over {
			out.Victory = res.HeroWon
			out.XPGained = res.XP
			out.GoldGained = res.Gold
			return out
		}
	}

	// Turn cap reached: decide on remaining HP fraction, ties to the hero.
	heroFrac := float64(d.Hero.HP) / float64(d.Hero.MaxHP)
	enemyFrac := float64(d.Enemy.HP) / float64(d.Enemy.MaxHP)
	out.Victory = heroFrac >= enemyFrac
	if out.Victory && !mode.Training() {
		out.XPGained, out.GoldGained = Rewards(d.Enemy)
	}
	return out
}

// autoAction picks the default action for an automated side.
func autoAction(e *game.EntityState) (ActionKind, string) {
	for i := range e.Skills {
		s := &e.Skills[i]
		if e.MP < s.CostMP {
			continue
		}
		if s.Kind == game.SkillHeal && e.HP*10 < e.MaxHP*4 {
			return ActionMagic, s.Key
		}
		if s.Kind == game.SkillAttack {
			return ActionMagic, s.Key
		}
	}
	return ActionPhysical, ""
}
