package matchmaking

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/constants"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/game"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/logging"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/storage"
)

// Notifier delivers asynchronous match-found events to a waiting hero.
// Delivery is best effort; Poll remains the fallback.
type Notifier interface {
	MatchFound(heroID string, m *game.Match)
}

type ticket struct {
	heroID     string
	heroName   string
	enqueuedAt time.Time
	match      *game.Match
}

// Queue pairs waiting heroes FIFO into pending matches. Enqueue is
// idempotent per hero id: repeated calls return the existing assignment
// instead of creating duplicate queue entries.
type Queue struct {
	mu       sync.Mutex
	waiting  []*ticket
	byHero   map[string]*ticket
	repo     storage.Repository
	notifier Notifier
}

func NewQueue(repo storage.Repository, notifier Notifier) *Queue {
	q := &Queue{
		waiting:  make([]*ticket, 0, 8),
		byHero:   make(map[string]*ticket),
		repo:     repo,
		notifier: notifier,
	}
	return q
}

// Enqueue registers the hero for matchmaking. It returns the match and
// true when an opponent was already waiting (immediate FIFO pairing), or
// nil and false when the caller is now waiting. Notifications go out after
// the queue lock is released so a slow subscriber cannot stall pairing.
func (q *Queue) Enqueue(heroID, heroName string) (*game.Match, bool, error) {
	m, matched, waiterID, err := q.enqueueLocked(heroID, heroName)
	if matched && waiterID != "" && q.notifier != nil {
		q.notifier.MatchFound(waiterID, m)
		q.notifier.MatchFound(heroID, m)
	}
	return m, matched, err
}

// enqueueLocked does the queue bookkeeping. A non-empty waiterID means a
// fresh pairing happened and both sides still need notifying.
func (q *Queue) enqueueLocked(heroID, heroName string) (*game.Match, bool, string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if existing, ok := q.byHero[heroID]; ok {
		if existing.match != nil {
			return existing.match, true, "", nil
		}
		return nil, false, "", nil
	}

	// Pair with the longest-waiting hero, if any.
	for len(q.waiting) > 0 {
		head := q.waiting[0]
		q.waiting = q.waiting[1:]
		if head.match != nil {
			continue // already paired, kept only for Poll pickup
		}
		m := &game.Match{
			MatchID:   uuid.NewString(),
			HeroAID:   head.heroID,
			HeroAName: head.heroName,
			HeroBID:   heroID,
			HeroBName: heroName,
			Mode:      game.ModeDuel,
			Status:    game.MatchPending,
		}
		if err := q.repo.CreateMatch(m); err != nil {
			// Put the waiter back; the pairing never happened.
			q.waiting = append([]*ticket{head}, q.waiting...)
			return nil, false, "", err
		}
		head.match = m
		q.byHero[heroID] = &ticket{heroID: heroID, heroName: heroName, enqueuedAt: time.Now(), match: m}

		logging.Info("matchmaking pairing", logging.Fields{
			constants.LogFieldMatchID: m.MatchID,
			"hero_a":                  head.heroID,
			"hero_b":                  heroID,
		})
		return m, true, head.heroID, nil
	}

	t := &ticket{heroID: heroID, heroName: heroName, enqueuedAt: time.Now()}
	q.waiting = append(q.waiting, t)
	q.byHero[heroID] = t
	return nil, false, "", nil
}

// Poll returns the hero's assigned match if one now exists. Once picked up
// the ticket is dropped; a hero that keeps neither polling nor subscribing
// simply abandons the queue.
func (q *Queue) Poll(heroID string) *game.Match {
	q.mu.Lock()
	defer q.mu.Unlock()

	t, ok := q.byHero[heroID]
	if !ok || t.match == nil {
		return nil
	}
	delete(q.byHero, heroID)
	return t.match
}

// Waiting reports how many heroes are queued without a match, for status
// endpoints and tests.
func (q *Queue) Waiting() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := 0
	for _, t := range q.byHero {
		if t.match == nil {
			n++
		}
	}
	return n
}
