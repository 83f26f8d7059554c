package storage

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/game"
)

type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository wraps a gorm DB in the Repository interface.
func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) GetHeroByID(heroID string) (*game.Hero, error) {
	var h game.Hero
	if err := r.db.Where("hero_id = ?", heroID).First(&h).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *sqliteRepository) SaveHero(h *game.Hero) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hero_id"}},
		UpdateAll: true,
	}).Save(h).Error
}

func (r *sqliteRepository) CreateMatch(m *game.Match) error {
	return r.db.Create(m).Error
}

func (r *sqliteRepository) GetMatchByMatchID(matchID string) (*game.Match, error) {
	var m game.Match
	if err := r.db.Where("match_id = ?", matchID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *sqliteRepository) GetMatchesByHero(heroID string, limit int) ([]game.Match, error) {
	var matches []game.Match
	err := r.db.
		Where("hero_a_id = ? OR hero_b_id = ?", heroID, heroID).
		Order("created_at DESC").
		Limit(limit).
		Find(&matches).Error
	return matches, err
}

func (r *sqliteRepository) UpdateMatch(m *game.Match) error {
	return r.db.Save(m).Error
}

func (r *sqliteRepository) GetRating(heroID string) (*game.RatingRecord, error) {
	var rec game.RatingRecord
	if err := r.db.Where("hero_id = ?", heroID).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *sqliteRepository) SaveRating(rec *game.RatingRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hero_id"}},
		UpdateAll: true,
	}).Save(rec).Error
}

func (r *sqliteRepository) TopRatings(limit int) ([]game.RatingRecord, error) {
	var recs []game.RatingRecord
	err := r.db.Order("rating DESC").Limit(limit).Find(&recs).Error
	return recs, err
}

func (r *sqliteRepository) AppendHistory(ev *game.DuelHistoryEvent) error {
	return r.db.Create(ev).Error
}

func (r *sqliteRepository) HistoryByHero(heroID string, limit int) ([]game.DuelHistoryEvent, error) {
	var events []game.DuelHistoryEvent
	err := r.db.
		Where("hero_id = ?", heroID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *sqliteRepository) WeeklyStats(since time.Time) ([]game.WeeklyEntry, error) {
	var entries []game.WeeklyEntry
	err := r.db.Model(&game.DuelHistoryEvent{}).
		Select("hero_name, SUM(CASE WHEN victory THEN 1 ELSE 0 END) AS wins, COUNT(*) AS total").
		Where("occurred_at >= ?", since).
		Group("hero_name").
		Order("wins DESC").
		Scan(&entries).Error
	return entries, err
}
