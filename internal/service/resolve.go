package service

import (
	"time"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/engine"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/game"
)

// ResolveRequest is the server-authoritative path: the full pre-combat
// state plus a seed arrive in one request and the complete outcome goes
// back in one response, sidestepping per-turn races entirely.
type ResolveRequest struct {
	HeroID   string            `json:"hero_id"`
	Hero     *game.EntityState `json:"hero,omitempty"`
	Opponent *game.EntityState `json:"opponent,omitempty"`
	// OpponentName selects an NPC archetype when no snapshot is given.
	OpponentName string    `json:"opponent_name,omitempty"`
	Mode         game.Mode `json:"mode"`
	Seed         int64     `json:"seed"`
	MatchID      string    `json:"match_id,omitempty"`
}

// ResolveServerSide computes a full duel outcome atomically and persists
// it. The persistence receipt is reported alongside the outcome; a failed
// write never invalidates the computed result.
func (ds *DuelService) ResolveServerSide(req ResolveRequest, results *ResultService) (*engine.Outcome, SubmitReceipt, error) {
	if req.Mode == "" {
		req.Mode = game.ModeServer
	}
	hero, err := ds.heroState(req.HeroID, req.Hero)
	if err != nil {
		return nil, SubmitReceipt{}, err
	}

	var enemy *game.EntityState
	if req.Opponent != nil {
		req.Opponent.Skills = ds.resolveSnapshotSkills(req.Opponent.Skills)
		enemy = req.Opponent
	} else {
		if enemy, err = ds.npcState(req.OpponentName); err != nil {
			return nil, SubmitReceipt{}, err
		}
	}

	// A matchmade duel rates against the real opponent, not the default.
	opponentID := ""
	if req.MatchID != "" {
		if m, err := ds.repo.GetMatchByMatchID(req.MatchID); err == nil {
			opponentID, _ = m.Opponent(req.HeroID)
		}
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	out := engine.Resolve(hero, enemy, req.Mode, seed)

	receipt := results.SubmitDuelResult(DuelRecord{
		HeroID:       req.HeroID,
		HeroName:     hero.Name,
		OpponentID:   opponentID,
		OpponentName: enemy.Name,
		Victory:      out.Victory,
		XP:           out.XPGained,
		Gold:         out.GoldGained,
		Log:          out.Log,
		Mode:         req.Mode,
		MatchID:      req.MatchID,
	})
	return &out, receipt, nil
}
