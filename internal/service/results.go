package service

import (
	"strings"
	"time"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/constants"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/dedupe"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/game"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/logging"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/rating"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/storage"
)

// SubmitStatus distinguishes "all writes landed", "the outcome landed but
// secondary writes were lost" and "the outcome itself was lost". Callers
// can keep showing the local result in every case.
type SubmitStatus string

const (
	SubmitOK       SubmitStatus = "ok"
	SubmitDegraded SubmitStatus = "degraded"
	SubmitFailed   SubmitStatus = "failed"
)

// SubmitReceipt reports what happened to a result submission.
type SubmitReceipt struct {
	Status SubmitStatus `json:"status"`
	Reason string       `json:"reason,omitempty"`
}

// DuelRecord is one terminal combat outcome handed off for persistence.
type DuelRecord struct {
	HeroID       string    `json:"hero_id"`
	HeroName     string    `json:"hero_name"`
	OpponentID   string    `json:"opponent_id,omitempty"`
	OpponentName string    `json:"opponent_name"`
	Victory      bool      `json:"victory"`
	XP           int       `json:"xp"`
	Gold         int       `json:"gold"`
	Log          []string  `json:"log"`
	Mode         game.Mode `json:"mode"`
	MatchID      string    `json:"match_id,omitempty"`
}

// ResultService persists terminal outcomes and serves the history and
// weekly aggregate reads.
type ResultService struct {
	repo    storage.Repository
	ratings *rating.Service
}

func NewResultService(repo storage.Repository, ratings *rating.Service) *ResultService {
	return &ResultService{repo: repo, ratings: ratings}
}

// SubmitDuelResult persists one outcome: history event, hero aggregates,
// rating update (decisive non-training only) and match completion. Write
// failures are logged, never raised; the receipt tells the caller which
// class of failure occurred.
func (rs *ResultService) SubmitDuelResult(rec DuelRecord) SubmitReceipt {
	ev := &game.DuelHistoryEvent{
		HeroID:       rec.HeroID,
		HeroName:     rec.HeroName,
		OpponentName: rec.OpponentName,
		Victory:      rec.Victory,
		XP:           rec.XP,
		Gold:         rec.Gold,
		Log:          strings.Join(rec.Log, "\n"),
		OccurredAt:   time.Now(),
	}
	if err := rs.repo.AppendHistory(ev); err != nil {
		logging.Error("failed to append duel history", err, logging.Fields{constants.LogFieldHeroID: rec.HeroID})
		return SubmitReceipt{Status: SubmitFailed, Reason: "history write failed"}
	}

	degraded := ""
	if err := rs.applyHeroAggregates(rec); err != nil {
		degraded = "hero stats not updated"
	}
	if !rec.Mode.Training() {
		if _, err := rs.ratings.ApplyResult(rec.HeroID, rec.OpponentID, rec.Victory); err != nil {
			degraded = "rating not updated"
		}
	}
	if rec.MatchID != "" {
		if err := rs.completeMatch(rec); err != nil {
			degraded = "match not completed"
		}
	}

	if degraded != "" {
		return SubmitReceipt{Status: SubmitDegraded, Reason: degraded}
	}
	return SubmitReceipt{Status: SubmitOK}
}

// applyHeroAggregates folds the outcome into the hero's persistent totals.
// Level-ups consume whole XP thresholds.
func (rs *ResultService) applyHeroAggregates(rec DuelRecord) error {
	h, err := rs.repo.GetHeroByID(rec.HeroID)
	if err != nil || h == nil {
		// Guest or externally managed hero; nothing to update.
		return nil
	}
	h.DuelsPlayed++
	if rec.Victory {
		h.Wins++
		h.XP += rec.XP
		h.Gold += rec.Gold
		for h.XP >= h.Level*constants.XPPerLevel {
			h.XP -= h.Level * constants.XPPerLevel
			h.Level++
		}
	}
	if err := rs.repo.SaveHero(h); err != nil {
		logging.Error("failed to save hero aggregates", err, logging.Fields{constants.LogFieldHeroID: rec.HeroID})
		return err
	}
	return nil
}

func (rs *ResultService) completeMatch(rec DuelRecord) error {
	m, err := rs.repo.GetMatchByMatchID(rec.MatchID)
	if err != nil {
		logging.Error("failed to load match for completion", err, logging.Fields{constants.LogFieldMatchID: rec.MatchID})
		return err
	}
	winnerID, winnerName := rec.HeroID, rec.HeroName
	if !rec.Victory {
		winnerID, winnerName = m.Opponent(rec.HeroID)
	}
	if m.Status == game.MatchCompleted {
		return nil // opponent's submission got there first
	}
	if m.Status == game.MatchPending {
		// The duel demonstrably ran; treat the missing readiness signal
		// as implicit and move through started.
		_ = m.Start(time.Now())
	}
	if err := m.Complete(winnerID, winnerName, rec.XP, rec.Gold, time.Now()); err != nil {
		return err
	}
	if err := rs.repo.UpdateMatch(m); err != nil {
		logging.Error("failed to complete match", err, logging.Fields{constants.LogFieldMatchID: rec.MatchID})
		return err
	}
	return nil
}

// History returns the hero's most recent outcomes, newest first, capped at
// a small page size.
func (rs *ResultService) History(heroID string, limit int) ([]game.DuelHistoryEvent, error) {
	if limit <= 0 {
		limit = constants.DefaultHistoryPage
	}
	if limit > constants.MaxHistoryPage {
		limit = constants.MaxHistoryPage
	}
	return rs.repo.HistoryByHero(heroID, limit)
}

// Weekly returns the wins/total aggregate over the trailing seven days.
// Concurrent callers share one scan per day bucket.
func (rs *ResultService) Weekly() ([]game.WeeklyEntry, error) {
	since := time.Now().AddDate(0, 0, -7)
	key := since.Format("2006-01-02")
	v, err, _ := dedupe.WeeklyGroup.Do(key, func() (interface{}, error) {
		return rs.repo.WeeklyStats(since)
	})
	if err != nil {
		return nil, err
	}
	return v.([]game.WeeklyEntry), nil
}
