package engine

import (
	"math/rand"
	"testing"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/game"
)

func newEntity(name string, hp, mp, armor, force, dex int) *game.EntityState {
	return &game.EntityState{
		Name:  name,
		HP:    hp,
		MaxHP: hp,
		MP:    mp,
		MaxMP: mp,
		Armor: armor,
		Attributes: game.Attributes{
			Force:     force,
			Dexterity: dex,
		},
	}
}

func TestNewDuel_TurnOrderByDexterity(t *testing.T) {
	d := NewDuel(game.ModeDuel, newEntity("h", 10, 0, 0, 1, 5), newEntity("e", 10, 0, 0, 1, 3), nil, nil, nil)
	if !d.HeroTurn {
		t.Fatalf("higher hero dexterity must act first")
	}
	d = NewDuel(game.ModeDuel, newEntity("h", 10, 0, 0, 1, 3), newEntity("e", 10, 0, 0, 1, 5), nil, nil, nil)
	if d.HeroTurn {
		t.Fatalf("higher enemy dexterity must act first")
	}
	d = NewDuel(game.ModeDuel, newEntity("h", 10, 0, 0, 1, 4), newEntity("e", 10, 0, 0, 1, 4), nil, nil, nil)
	if !d.HeroTurn {
		t.Fatalf("dexterity ties favor the hero")
	}
}

func TestPlayTurn_SpecialAlwaysPoisons(t *testing.T) {
	hero := newEntity("h", 200, 0, 0, 5, 10)
	enemy := newEntity("e", 200, 0, 0, 1, 1)
	d := NewDuel(game.ModeDuel, hero, enemy, nil, nil, rand.New(rand.NewSource(5)))

	d.PlayTurn(ActionSpecial, "")

	var poison *game.StatusEffect
	for i := range d.Effects {
		if d.Effects[i].Kind == game.EffectPoison {
			poison = &d.Effects[i]
		}
	}
	if poison == nil {
		t.Fatalf("special attack must apply poison")
	}
	if poison.Target != game.SideEnemy {
		t.Fatalf("poison must target the opponent, got %s", poison.Target)
	}
	if poison.TurnsLeft != 3 {
		t.Fatalf("expected 3 poison turns, got %d", poison.TurnsLeft)
	}
}

func TestPlayTurn_EffectExpiresAndNeverGoesNegative(t *testing.T) {
	hero := newEntity("h", 200, 0, 0, 1, 10)
	enemy := newEntity("e", 200, 0, 0, 1, 1)
	d := NewDuel(game.ModeDuel, hero, enemy, nil, nil, rand.New(rand.NewSource(6)))
	d.AddEffect(game.EffectPoison, game.SideEnemy, 1, 2, "")

	before := enemy.HP
	d.PlayTurn(ActionPhysical, "")

	if enemy.HP > before-2 {
		t.Fatalf("poison tick must deal its damage, HP %d -> %d", before, enemy.HP)
	}
	for _, eff := range d.Effects {
		if eff.Kind == game.EffectPoison {
			t.Fatalf("expired poison must leave the effect list")
		}
		if eff.TurnsLeft < 0 {
			t.Fatalf("TurnsLeft must never be negative, got %d", eff.TurnsLeft)
		}
	}
}

func TestPlayTurn_FreezeSuppressesOneCounter(t *testing.T) {
	hero := newEntity("h", 200, 0, 0, 5, 10)
	enemy := newEntity("e", 200, 0, 0, 5, 1)
	d := NewDuel(game.ModeDuel, hero, enemy, nil, nil, rand.New(rand.NewSource(7)))
	d.AddEffect(game.EffectFreeze, game.SideEnemy, 1, 0, "")

	res := d.PlayTurn(ActionPhysical, "")

	if hero.HP != hero.MaxHP {
		t.Fatalf("frozen side must not counter-attack, hero HP=%d", hero.HP)
	}
	if !containsLine(res.Log, "cannot counter-attack") {
		t.Fatalf("expected a suppressed-counter log line, got %v", res.Log)
	}
	if d.frozen(game.SideEnemy) {
		t.Fatalf("freeze must be consumed after suppressing one counter")
	}
}

func TestPlayTurn_FreezeFromSkillAppliesSameTurn(t *testing.T) {
	hero := newEntity("h", 200, 20, 0, 5, 10)
	hero.Skills = []game.Skill{{
		Key:     "shard",
		Name:    "Ice Shard",
		Kind:    game.SkillAttack,
		CostMP:  5,
		Power:   6,
		Effects: []game.EffectKind{game.EffectFreeze},
	}}
	enemy := newEntity("e", 200, 0, 0, 5, 1)
	d := NewDuel(game.ModeDuel, hero, enemy, nil, nil, rand.New(rand.NewSource(8)))

	res := d.PlayTurn(ActionMagic, "shard")

	if hero.HP != hero.MaxHP {
		t.Fatalf("freeze cast in the same turn must suppress the counter, hero HP=%d", hero.HP)
	}
	if !containsLine(res.Log, "cannot counter-attack") {
		t.Fatalf("expected a suppressed-counter log line, got %v", res.Log)
	}
	if d.frozen(game.SideEnemy) {
		t.Fatalf("freeze must not persist past its use")
	}
}

func TestPlayTurn_BuffAppliesAndReverts(t *testing.T) {
	hero := newEntity("h", 500, 0, 50, 1, 10)
	enemy := newEntity("e", 500, 0, 50, 1, 1)
	d := NewDuel(game.ModeDuel, hero, enemy, nil, nil, rand.New(rand.NewSource(9)))

	base := hero.Force
	d.AddEffect(game.EffectBuff, game.SideHero, 2, 3, game.AttrForce)
	if hero.Force != base+3 {
		t.Fatalf("buff must adjust the attribute immediately, force=%d", hero.Force)
	}

	d.PlayTurn(ActionPhysical, "")
	if hero.Force != base+3 {
		t.Fatalf("buff must hold while turns remain, force=%d", hero.Force)
	}
	d.PlayTurn(ActionPhysical, "")
	if hero.Force != base {
		t.Fatalf("expired buff must revert the attribute, force=%d want %d", hero.Force, base)
	}
}

func TestPlayTurn_DebuffNeverDropsAttributeBelowZero(t *testing.T) {
	hero := newEntity("h", 500, 0, 50, 1, 10)
	enemy := newEntity("e", 500, 0, 50, 2, 1)
	d := NewDuel(game.ModeDuel, hero, enemy, nil, nil, rand.New(rand.NewSource(10)))

	d.AddEffect(game.EffectDebuff, game.SideEnemy, 2, 10, game.AttrForce)
	if enemy.Force != 0 {
		t.Fatalf("debuff below zero must clamp at zero, force=%d", enemy.Force)
	}
}

func TestPlayTurn_OversizedDebuffRevertsToOriginal(t *testing.T) {
	hero := newEntity("h", 500, 0, 50, 1, 10)
	enemy := newEntity("e", 500, 0, 50, 2, 1)
	d := NewDuel(game.ModeDuel, hero, enemy, nil, nil, rand.New(rand.NewSource(14)))

	// Magnitude 10 on force 2: only -2 can land, so only +2 may revert.
	d.AddEffect(game.EffectDebuff, game.SideEnemy, 2, 10, game.AttrForce)
	d.PlayTurn(ActionPhysical, "")
	d.PlayTurn(ActionPhysical, "")

	if enemy.Force != 2 {
		t.Fatalf("debuff expiry must restore force to 2, got %d", enemy.Force)
	}
}

func TestPlayTurn_OversizedBuffExpiryNeverUnderflows(t *testing.T) {
	hero := newEntity("h", 500, 0, 50, 3, 10)
	enemy := newEntity("e", 500, 0, 50, 1, 1)
	d := NewDuel(game.ModeDuel, hero, enemy, nil, nil, rand.New(rand.NewSource(15)))

	base := hero.Force
	d.AddEffect(game.EffectBuff, game.SideHero, 2, 7, game.AttrForce)
	d.PlayTurn(ActionPhysical, "")
	d.PlayTurn(ActionPhysical, "")

	if hero.Force != base {
		t.Fatalf("buff expiry must restore force to %d, got %d", base, hero.Force)
	}
}

func TestCheckTermination_TeamModeNeedsFullWipe(t *testing.T) {
	hero := newEntity("h", 100, 0, 0, 5, 10)
	ally := newEntity("a", 100, 0, 0, 5, 5)
	enemy := newEntity("e1", 100, 0, 0, 5, 1)
	enemy2 := newEntity("e2", 100, 0, 0, 5, 1)
	d := NewDuel(game.ModeTeam, hero, enemy, ally, enemy2, rand.New(rand.NewSource(11)))

	enemy.HP = 0
	if d.checkTermination(newTurnContext(d)) {
		t.Fatalf("one enemy down must not end a 2v2 duel")
	}
	enemy2.HP = 0
	if !d.checkTermination(newTurnContext(d)) {
		t.Fatalf("both enemies down must end the duel")
	}
	if !d.HeroWon {
		t.Fatalf("hero side must be the winner")
	}
}

func TestCheckTermination_SimultaneousWipeFavorsEnemy(t *testing.T) {
	hero := newEntity("h", 100, 0, 0, 5, 10)
	enemy := newEntity("e", 100, 0, 0, 5, 1)
	d := NewDuel(game.ModeDuel, hero, enemy, nil, nil, rand.New(rand.NewSource(12)))

	hero.HP = 0
	enemy.HP = 0
	if !d.checkTermination(newTurnContext(d)) {
		t.Fatalf("both sides down must end the duel")
	}
	if d.HeroWon {
		t.Fatalf("a simultaneous wipe counts as a hero loss")
	}
}

func TestResult_TrainingModeGrantsNoRewards(t *testing.T) {
	hero := newEntity("h", 100, 0, 0, 50, 10)
	enemy := newEntity("e", 10, 0, 0, 1, 1)
	d := NewDuel(game.ModeTraining, hero, enemy, nil, nil, rand.New(rand.NewSource(13)))

	var res TurnResult
	for i := 0; i < 50 && !res.Over; i++ {
		res = d.PlayTurn(ActionPhysical, "")
	}
	if !res.Over || !res.HeroWon {
		t.Fatalf("expected a hero victory, got over=%v won=%v", res.Over, res.HeroWon)
	}
	if res.XP != 0 || res.Gold != 0 {
		t.Fatalf("training duels are zero-stakes, got xp=%d gold=%d", res.XP, res.Gold)
	}
}

func TestRewards_DerivedFromDefeatedStats(t *testing.T) {
	e := newEntity("e", 40, 0, 3, 4, 2)
	e.Constitution = 6
	xp, gold := Rewards(e)
	if want := e.Attributes.Sum() + e.MaxHP/10; xp != want {
		t.Fatalf("xp = %d, want %d", xp, want)
	}
	if want := e.MaxHP/2 + e.Armor*2; gold != want {
		t.Fatalf("gold = %d, want %d", gold, want)
	}
}
