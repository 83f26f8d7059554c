package service

import (
	"errors"
	"math/rand"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/config"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/engine"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/game"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/storage"
)

var (
	ErrHeroNotFound  = errors.New("hero not found")
	ErrMatchNotFound = errors.New("match not found")
	ErrNoArchetypes  = errors.New("no NPC archetypes configured")
)

// DuelService creates combat sessions from persistent heroes, explicit
// snapshots and NPC archetypes.
type DuelService struct {
	repo     storage.Repository
	content  *config.Content
	registry *Registry
}

func NewDuelService(repo storage.Repository, content *config.Content, registry *Registry) *DuelService {
	return &DuelService{repo: repo, content: content, registry: registry}
}

// StartDuelRequest carries everything needed to open a session. Hero is an
// optional pre-built snapshot for guests; HeroID takes precedence when the
// profile exists. Opponent optionally names an NPC archetype; MatchID binds
// the session to a matchmade pairing instead.
type StartDuelRequest struct {
	HeroID   string            `json:"hero_id"`
	Hero     *game.EntityState `json:"hero,omitempty"`
	Mode     game.Mode         `json:"mode"`
	MatchID  string            `json:"match_id,omitempty"`
	Opponent string            `json:"opponent,omitempty"`
}

// StartDuel opens a new client-simulated session and starts its turn clock.
func (ds *DuelService) StartDuel(req StartDuelRequest) (*DuelSession, error) {
	if req.Mode == "" {
		req.Mode = game.ModeDuel
	}

	hero, err := ds.heroState(req.HeroID, req.Hero)
	if err != nil {
		return nil, err
	}

	var enemy *game.EntityState
	opponentID := ""
	if req.MatchID != "" {
		m, err := ds.repo.GetMatchByMatchID(req.MatchID)
		if err != nil {
			return nil, ErrMatchNotFound
		}
		oppID, _ := m.Opponent(req.HeroID)
		opponentID = oppID
		enemy, err = ds.heroState(oppID, nil)
		if err != nil {
			return nil, err
		}
	} else {
		enemy, err = ds.npcState(req.Opponent)
		if err != nil {
			return nil, err
		}
	}

	var ally, enemy2 *game.EntityState
	if req.Mode == game.ModeTeam {
		if ally, err = ds.npcState(""); err != nil {
			return nil, err
		}
		if enemy2, err = ds.npcState(""); err != nil {
			return nil, err
		}
	}

	duel := engine.NewDuel(req.Mode, hero, enemy, ally, enemy2, nil)
	return ds.registry.Create(req.HeroID, opponentID, req.MatchID, req.Mode, duel), nil
}

// heroState resolves a combat snapshot from the profile store, falling
// back to an explicit snapshot for guest heroes.
func (ds *DuelService) heroState(heroID string, snapshot *game.EntityState) (*game.EntityState, error) {
	if heroID != "" {
		h, err := ds.repo.GetHeroByID(heroID)
		if err == nil && h != nil {
			return game.NewEntityState(h, ds.content.SkillsFor(h.LoadoutKeys())), nil
		}
	}
	if snapshot != nil {
		snapshot.Skills = ds.resolveSnapshotSkills(snapshot.Skills)
		return snapshot, nil
	}
	return nil, ErrHeroNotFound
}

// resolveSnapshotSkills replaces client-sent skill entries with the
// configured definitions so clients cannot inflate skill numbers.
func (ds *DuelService) resolveSnapshotSkills(skills []game.Skill) []game.Skill {
	keys := make([]string, 0, len(skills))
	for _, s := range skills {
		keys = append(keys, s.Key)
	}
	return ds.content.SkillsFor(keys)
}

// npcState generates an opponent from a named or random archetype.
func (ds *DuelService) npcState(name string) (*game.EntityState, error) {
	var arch *game.Archetype
	if name != "" {
		arch = ds.content.ArchetypeByName(name)
	}
	if arch == nil {
		if len(ds.content.Archetypes) == 0 {
			return nil, ErrNoArchetypes
		}
		arch = &ds.content.Archetypes[rand.Intn(len(ds.content.Archetypes))]
	}
	return arch.EntityState(ds.content.SkillsFor(arch.SkillKeys)), nil
}
