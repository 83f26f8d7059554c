package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/constants"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/engine"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/game"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/logging"
)

// Registry tracks the active client-simulated duel sessions. Each session
// is local to one hero until its terminal outcome is submitted; sessions
// are never shared.
type Registry struct {
	mu          sync.Mutex
	sessions    map[string]*DuelSession
	results     *ResultService
	turnSeconds int
	ttl         time.Duration
}

func NewRegistry(results *ResultService, turnSeconds int, ttl time.Duration) *Registry {
	return &Registry{
		sessions:    make(map[string]*DuelSession),
		results:     results,
		turnSeconds: turnSeconds,
		ttl:         ttl,
	}
}

// Create registers a new session around the given duel and starts its turn
// clock.
func (r *Registry) Create(heroID, opponentID, matchID string, mode game.Mode, duel *engine.Duel) *DuelSession {
	s := &DuelSession{
		ID:          uuid.NewString(),
		HeroID:      heroID,
		MatchID:     matchID,
		Mode:        mode,
		duel:        duel,
		state:       StateIdle,
		turnSeconds: r.turnSeconds,
		stop:        make(chan struct{}),
		opponentID:  opponentID,
		results:     r.results,
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	s.Start()
	return s
}

// Get returns an active session by id.
func (r *Registry) Get(id string) (*DuelSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Remove drops a session from the registry and stops its clock.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()
	if ok {
		s.Expire()
	}
}

// StartSweeper launches the background scanner that expires sessions whose
// players walked away. Expired sessions end without a submitted outcome.
func (r *Registry) StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			cutoff := time.Now().Add(-r.ttl)
			for _, s := range r.snapshot() {
				if !s.IdleSince().Before(cutoff) {
					continue
				}
				if !s.Ended() {
					logging.Info("expiring abandoned duel session", logging.Fields{
						constants.LogFieldDuelID: s.ID,
						constants.LogFieldHeroID: s.HeroID,
					})
				}
				r.Remove(s.ID)
			}
		}
	}()
}

func (r *Registry) snapshot() []*DuelSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*DuelSession, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	return out
}
