package rating

import (
	"strconv"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/constants"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/dedupe"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/game"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/logging"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/storage"
)

// Service reads and updates competitive ratings. Reads degrade to the
// default rating of 1000 instead of surfacing backend failures.
type Service struct {
	repo storage.Repository
}

func NewService(repo storage.Repository) *Service {
	return &Service{repo: repo}
}

// RatingFor returns the hero's current rating, or the default when the
// record is missing or the read fails.
func (s *Service) RatingFor(heroID string) int {
	rec, err := s.repo.GetRating(heroID)
	if err != nil || rec == nil {
		return constants.DefaultRating
	}
	return rec.Rating
}

// ApplyResult updates one participant's rating after a decisive duel and
// returns the new value. The caller is responsible for skipping training
// duels.
func (s *Service) ApplyResult(heroID, opponentID string, won bool) (int, error) {
	current := s.RatingFor(heroID)
	opponent := s.RatingFor(opponentID)
	next := UpdateElo(current, opponent, won)

	rec, err := s.repo.GetRating(heroID)
	if err != nil || rec == nil {
		rec = &game.RatingRecord{HeroID: heroID}
	}
	rec.Rating = next
	if err := s.repo.SaveRating(rec); err != nil {
		logging.Error("failed to save rating", err, logging.Fields{constants.LogFieldHeroID: heroID})
		return next, err
	}
	return next, nil
}

// Leaderboard returns the top-N ratings. Concurrent calls for the same
// limit share one database scan.
func (s *Service) Leaderboard(limit int) ([]game.RatingRecord, error) {
	v, err, _ := dedupe.LeaderboardGroup.Do(strconv.Itoa(limit), func() (interface{}, error) {
		return s.repo.TopRatings(limit)
	})
	if err != nil {
		return nil, err
	}
	return v.([]game.RatingRecord), nil
}
