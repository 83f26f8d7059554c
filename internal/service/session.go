package service

import (
	"errors"
	"sync"
	"time"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/constants"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/engine"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/game"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/logging"
)

// SessionState names the explicit duel finite-state machine. Transitions
// are guarded under the session mutex so the turn clock timeout and an
// explicit player action can never both apply to the same turn: whichever
// takes the lock first resolves, the other finds the machine advanced.
type SessionState string

const (
	StateIdle           SessionState = "idle"
	StateAwaitingAction SessionState = "awaiting_action"
	StateResolvingTurn  SessionState = "resolving_turn"
	StateEnded          SessionState = "ended"
)

var (
	ErrSessionEnded      = errors.New("duel has ended")
	ErrNotAwaitingAction = errors.New("duel is not awaiting an action")
)

// DuelSession owns one active client-simulated combat: the engine state,
// the FSM and the per-turn countdown that forces a default physical action
// on timeout.
type DuelSession struct {
	ID      string
	HeroID  string
	MatchID string
	Mode    game.Mode

	mu           sync.Mutex
	duel         *engine.Duel
	state        SessionState
	secondsLeft  int
	turnSeconds  int
	lastActivity time.Time
	log          []string
	stop         chan struct{}
	stopped      bool

	opponentID string
	results    *ResultService
}

// SessionView is a read-only snapshot handed to the API layer.
type SessionView struct {
	ID          string              `json:"duel_id"`
	State       SessionState        `json:"state"`
	Mode        game.Mode           `json:"mode"`
	Turn        int                 `json:"turn"`
	HeroTurn    bool                `json:"hero_turn"`
	SecondsLeft int                 `json:"seconds_left"`
	Hero        *game.EntityState   `json:"hero"`
	Enemy       *game.EntityState   `json:"enemy"`
	Ally        *game.EntityState   `json:"ally,omitempty"`
	Enemy2      *game.EntityState   `json:"enemy2,omitempty"`
	Effects     []game.StatusEffect `json:"effects"`
	Over        bool                `json:"over"`
	HeroWon     bool                `json:"hero_won"`
	Log         []string            `json:"log"`
}

// Start arms the FSM and launches the one-second turn clock.
func (s *DuelSession) Start() {
	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return
	}
	s.state = StateAwaitingAction
	s.secondsLeft = s.turnSeconds
	s.lastActivity = time.Now()
	s.mu.Unlock()
	go s.runClock()
}

// SubmitAction applies the player's chosen action for the current turn.
func (s *DuelSession) SubmitAction(action engine.ActionKind, skillKey string) (*engine.TurnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitLocked(action, skillKey)
}

func (s *DuelSession) submitLocked(action engine.ActionKind, skillKey string) (*engine.TurnResult, error) {
	switch s.state {
	case StateEnded:
		return nil, ErrSessionEnded
	case StateAwaitingAction:
	default:
		return nil, ErrNotAwaitingAction
	}

	s.state = StateResolvingTurn
	res := s.duel.PlayTurn(action, skillKey)
	s.log = append(s.log, res.Log...)
	s.lastActivity = time.Now()

	if res.Over {
		s.state = StateEnded
		s.stopClockLocked()
		s.handOffLocked(&res)
	} else {
		s.secondsLeft = s.turnSeconds
		s.state = StateAwaitingAction
	}
	return &res, nil
}

// handOffLocked submits the terminal outcome. The write is fire-and-forget:
// the local result stands regardless of persistence success.
func (s *DuelSession) handOffLocked(res *engine.TurnResult) {
	if s.results == nil {
		return
	}
	rec := DuelRecord{
		HeroID:       s.HeroID,
		HeroName:     s.duel.Hero.Name,
		OpponentID:   s.opponentID,
		OpponentName: s.duel.Enemy.Name,
		Victory:      res.HeroWon,
		XP:           res.XP,
		Gold:         res.Gold,
		Log:          append([]string(nil), s.log...),
		Mode:         s.Mode,
		MatchID:      s.MatchID,
	}
	go func() {
		receipt := s.results.SubmitDuelResult(rec)
		if receipt.Status != SubmitOK {
			logging.Warn("duel result submission degraded", logging.Fields{
				constants.LogFieldDuelID: s.ID,
				"status":                 string(receipt.Status),
				"reason":                 receipt.Reason,
			})
		}
	}()
}

// runClock decrements the per-turn countdown once per second while the
// session awaits an action and forces a default physical attack at zero.
func (s *DuelSession) runClock() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.state != StateAwaitingAction {
				s.mu.Unlock()
				continue
			}
			s.secondsLeft--
			if s.secondsLeft <= 0 {
				logging.Info("turn clock expired; forcing default attack", logging.Fields{
					constants.LogFieldDuelID: s.ID,
				})
				if _, err := s.submitLocked(engine.ActionPhysical, ""); err != nil {
					logging.Error("forced action failed", err, logging.Fields{constants.LogFieldDuelID: s.ID})
				}
			}
			s.mu.Unlock()
		}
	}
}

func (s *DuelSession) stopClockLocked() {
	if !s.stopped {
		s.stopped = true
		close(s.stop)
	}
}

// Expire ends an abandoned session without submitting an outcome. Leaving
// the combat screen just stops the clock; nothing is persisted.
func (s *DuelSession) Expire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateEnded {
		return
	}
	s.state = StateEnded
	s.stopClockLocked()
}

// IdleSince reports the last time the session advanced.
func (s *DuelSession) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// Ended reports whether the FSM reached its terminal state.
func (s *DuelSession) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateEnded
}

// View snapshots the session for API responses. Entity states are deep
// copies: the caller marshals the view after the lock is released, while
// the turn clock may keep mutating the originals.
func (s *DuelSession) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionView{
		ID:          s.ID,
		State:       s.state,
		Mode:        s.Mode,
		Turn:        s.duel.Turn,
		HeroTurn:    s.duel.HeroTurn,
		SecondsLeft: s.secondsLeft,
		Hero:        s.duel.Hero.Clone(),
		Enemy:       s.duel.Enemy.Clone(),
		Ally:        s.duel.Ally.Clone(),
		Enemy2:      s.duel.Enemy2.Clone(),
		Effects:     append([]game.StatusEffect(nil), s.duel.Effects...),
		Over:        s.duel.Over,
		HeroWon:     s.duel.HeroWon,
		Log:         append([]string(nil), s.log...),
	}
}
