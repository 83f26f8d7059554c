package storage

import (
	"time"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/game"
)

// Repository is the persistence boundary of the duel engine. The backing
// store is treated as an opaque external service: callers are expected to
// degrade to documented defaults when reads fail and to log-and-swallow
// failures on non-critical writes.
type Repository interface {
	// Hero profiles
	GetHeroByID(heroID string) (*game.Hero, error)
	SaveHero(h *game.Hero) error

	// Matches
	CreateMatch(m *game.Match) error
	GetMatchByMatchID(matchID string) (*game.Match, error)
	GetMatchesByHero(heroID string, limit int) ([]game.Match, error)
	UpdateMatch(m *game.Match) error

	// Ratings
	GetRating(heroID string) (*game.RatingRecord, error)
	SaveRating(r *game.RatingRecord) error
	TopRatings(limit int) ([]game.RatingRecord, error)

	// Duel history
	AppendHistory(ev *game.DuelHistoryEvent) error
	HistoryByHero(heroID string, limit int) ([]game.DuelHistoryEvent, error)
	WeeklyStats(since time.Time) ([]game.WeeklyEntry, error)
}
