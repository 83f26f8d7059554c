package service

import (
	"errors"
	"testing"
	"time"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/game"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/rating"
)

type mockRepoResults struct {
	heroes  map[string]*game.Hero
	matches map[string]*game.Match
	ratings map[string]*game.RatingRecord

	history    []*game.DuelHistoryEvent
	historyErr error
	heroErr    error
	ratingErr  error

	savedHero    *game.Hero
	updatedMatch *game.Match
}

func (m *mockRepoResults) GetHeroByID(heroID string) (*game.Hero, error) {
	if m.heroErr != nil {
		return nil, m.heroErr
	}
	return m.heroes[heroID], nil
}
func (m *mockRepoResults) SaveHero(h *game.Hero) error {
	m.savedHero = h
	return nil
}
func (m *mockRepoResults) CreateMatch(mt *game.Match) error { return nil }
func (m *mockRepoResults) GetMatchByMatchID(matchID string) (*game.Match, error) {
	if mt, ok := m.matches[matchID]; ok {
		return mt, nil
	}
	return nil, errors.New("match not found")
}
func (m *mockRepoResults) GetMatchesByHero(heroID string, limit int) ([]game.Match, error) {
	return nil, nil
}
func (m *mockRepoResults) UpdateMatch(mt *game.Match) error {
	m.updatedMatch = mt
	return nil
}
func (m *mockRepoResults) GetRating(heroID string) (*game.RatingRecord, error) {
	return m.ratings[heroID], nil
}
func (m *mockRepoResults) SaveRating(r *game.RatingRecord) error {
	if m.ratingErr != nil {
		return m.ratingErr
	}
	m.ratings[r.HeroID] = r
	return nil
}
func (m *mockRepoResults) TopRatings(limit int) ([]game.RatingRecord, error) { return nil, nil }
func (m *mockRepoResults) AppendHistory(ev *game.DuelHistoryEvent) error {
	if m.historyErr != nil {
		return m.historyErr
	}
	m.history = append(m.history, ev)
	return nil
}
func (m *mockRepoResults) HistoryByHero(heroID string, limit int) ([]game.DuelHistoryEvent, error) {
	out := make([]game.DuelHistoryEvent, 0, len(m.history))
	for _, ev := range m.history {
		if ev.HeroID == heroID {
			out = append(out, *ev)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
func (m *mockRepoResults) WeeklyStats(since time.Time) ([]game.WeeklyEntry, error) { return nil, nil }

func newMockRepoResults() *mockRepoResults {
	return &mockRepoResults{
		heroes:  make(map[string]*game.Hero),
		matches: make(map[string]*game.Match),
		ratings: make(map[string]*game.RatingRecord),
	}
}

func victoryRecord() DuelRecord {
	return DuelRecord{
		HeroID:       "h1",
		HeroName:     "Arden",
		OpponentID:   "h2",
		OpponentName: "Borin",
		Victory:      true,
		XP:           250,
		Gold:         40,
		Log:          []string{"Arden hits Borin for 10 damage"},
		Mode:         game.ModeDuel,
	}
}

func TestSubmitDuelResult_AllWritesLand(t *testing.T) {
	mr := newMockRepoResults()
	mr.heroes["h1"] = &game.Hero{HeroID: "h1", Name: "Arden", Level: 1}
	rs := NewResultService(mr, rating.NewService(mr))

	receipt := rs.SubmitDuelResult(victoryRecord())
	if receipt.Status != SubmitOK {
		t.Fatalf("expected ok, got %s (%s)", receipt.Status, receipt.Reason)
	}
	if len(mr.history) != 1 || !mr.history[0].Victory {
		t.Fatalf("expected one victory history event, got %v", mr.history)
	}
	if mr.ratings["h1"] == nil || mr.ratings["h1"].Rating != 1016 {
		t.Fatalf("expected rating 1016 after an even-match win, got %v", mr.ratings["h1"])
	}
}

func TestSubmitDuelResult_LevelUpConsumesThresholds(t *testing.T) {
	mr := newMockRepoResults()
	mr.heroes["h1"] = &game.Hero{HeroID: "h1", Name: "Arden", Level: 1}
	rs := NewResultService(mr, rating.NewService(mr))

	rs.SubmitDuelResult(victoryRecord())

	h := mr.savedHero
	if h == nil {
		t.Fatalf("expected hero aggregates to be saved")
	}
	// 250 XP at level 1: consume 100 -> level 2, 150 left < 200.
	if h.Level != 2 || h.XP != 150 {
		t.Fatalf("expected level 2 with 150 XP, got level %d with %d", h.Level, h.XP)
	}
	if h.DuelsPlayed != 1 || h.Wins != 1 || h.Gold != 40 {
		t.Fatalf("aggregates wrong: %+v", h)
	}
}

func TestSubmitDuelResult_DefeatCountsOnlyParticipation(t *testing.T) {
	mr := newMockRepoResults()
	mr.heroes["h1"] = &game.Hero{HeroID: "h1", Name: "Arden", Level: 1}
	rs := NewResultService(mr, rating.NewService(mr))

	rec := victoryRecord()
	rec.Victory = false
	rec.XP = 0
	rec.Gold = 0
	rs.SubmitDuelResult(rec)

	h := mr.savedHero
	if h.DuelsPlayed != 1 || h.Wins != 0 || h.XP != 0 || h.Gold != 0 {
		t.Fatalf("a defeat must only increment participation: %+v", h)
	}
	if mr.ratings["h1"].Rating != 984 {
		t.Fatalf("expected rating 984 after an even-match loss, got %v", mr.ratings["h1"])
	}
}

func TestSubmitDuelResult_HistoryFailureIsFatal(t *testing.T) {
	mr := newMockRepoResults()
	mr.historyErr = errors.New("disk full")
	rs := NewResultService(mr, rating.NewService(mr))

	receipt := rs.SubmitDuelResult(victoryRecord())
	if receipt.Status != SubmitFailed {
		t.Fatalf("a lost outcome must report failed, got %s", receipt.Status)
	}
	if mr.savedHero != nil {
		t.Fatalf("secondary writes must not run when the outcome was lost")
	}
}

func TestSubmitDuelResult_SecondaryFailureDegrades(t *testing.T) {
	mr := newMockRepoResults()
	mr.heroes["h1"] = &game.Hero{HeroID: "h1", Name: "Arden", Level: 1}
	mr.ratingErr = errors.New("ratings backend down")
	rs := NewResultService(mr, rating.NewService(mr))

	receipt := rs.SubmitDuelResult(victoryRecord())
	if receipt.Status != SubmitDegraded {
		t.Fatalf("expected degraded, got %s", receipt.Status)
	}
	if len(mr.history) != 1 {
		t.Fatalf("the history event must still land")
	}
}

func TestSubmitDuelResult_TrainingSkipsRating(t *testing.T) {
	mr := newMockRepoResults()
	mr.heroes["h1"] = &game.Hero{HeroID: "h1", Name: "Arden", Level: 1}
	rs := NewResultService(mr, rating.NewService(mr))

	rec := victoryRecord()
	rec.Mode = game.ModeTraining
	receipt := rs.SubmitDuelResult(rec)
	if receipt.Status != SubmitOK {
		t.Fatalf("expected ok, got %s", receipt.Status)
	}
	if len(mr.ratings) != 0 {
		t.Fatalf("training duels must not touch ratings, got %v", mr.ratings)
	}
}

func TestSubmitDuelResult_GuestHeroIsFine(t *testing.T) {
	mr := newMockRepoResults()
	rs := NewResultService(mr, rating.NewService(mr))

	receipt := rs.SubmitDuelResult(victoryRecord())
	if receipt.Status != SubmitOK {
		t.Fatalf("an unknown hero profile must not degrade the receipt, got %s", receipt.Status)
	}
	if mr.savedHero != nil {
		t.Fatalf("nothing to save for a guest hero")
	}
}

func TestSubmitDuelResult_CompletesPendingMatch(t *testing.T) {
	mr := newMockRepoResults()
	mr.heroes["h1"] = &game.Hero{HeroID: "h1", Name: "Arden", Level: 1}
	mr.matches["m1"] = &game.Match{
		MatchID: "m1", HeroAID: "h1", HeroAName: "Arden",
		HeroBID: "h2", HeroBName: "Borin",
		Status: game.MatchPending,
	}
	rs := NewResultService(mr, rating.NewService(mr))

	rec := victoryRecord()
	rec.MatchID = "m1"
	receipt := rs.SubmitDuelResult(rec)
	if receipt.Status != SubmitOK {
		t.Fatalf("expected ok, got %s (%s)", receipt.Status, receipt.Reason)
	}
	m := mr.updatedMatch
	if m == nil || m.Status != game.MatchCompleted {
		t.Fatalf("expected the match to complete, got %+v", m)
	}
	if m.WinnerID != "h1" || m.XPAwarded != 250 {
		t.Fatalf("winner bookkeeping wrong: %+v", m)
	}
}

func TestSubmitDuelResult_LoserSubmissionNamesOpponentWinner(t *testing.T) {
	mr := newMockRepoResults()
	mr.matches["m1"] = &game.Match{
		MatchID: "m1", HeroAID: "h1", HeroAName: "Arden",
		HeroBID: "h2", HeroBName: "Borin",
		Status: game.MatchStarted,
	}
	rs := NewResultService(mr, rating.NewService(mr))

	rec := victoryRecord()
	rec.MatchID = "m1"
	rec.Victory = false
	rs.SubmitDuelResult(rec)

	if mr.updatedMatch == nil || mr.updatedMatch.WinnerID != "h2" {
		t.Fatalf("the loser's submission must credit the opponent, got %+v", mr.updatedMatch)
	}
}

func TestSubmitDuelResult_AlreadyCompletedMatchIsOK(t *testing.T) {
	mr := newMockRepoResults()
	mr.matches["m1"] = &game.Match{
		MatchID: "m1", HeroAID: "h1", HeroBID: "h2",
		Status: game.MatchCompleted, WinnerID: "h2",
	}
	rs := NewResultService(mr, rating.NewService(mr))

	rec := victoryRecord()
	rec.MatchID = "m1"
	rec.Mode = game.ModeTraining
	receipt := rs.SubmitDuelResult(rec)
	if receipt.Status != SubmitOK {
		t.Fatalf("the second submission for a match must be a no-op, got %s", receipt.Status)
	}
	if mr.updatedMatch != nil {
		t.Fatalf("a completed match must not be rewritten")
	}
}

func TestHistory_CapsPageSize(t *testing.T) {
	mr := newMockRepoResults()
	for i := 0; i < 60; i++ {
		mr.history = append(mr.history, &game.DuelHistoryEvent{HeroID: "h1"})
	}
	rs := NewResultService(mr, rating.NewService(mr))

	events, err := rs.History("h1", 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 50 {
		t.Fatalf("page size must cap at 50, got %d", len(events))
	}

	events, _ = rs.History("h1", 0)
	if len(events) != 20 {
		t.Fatalf("zero limit must default to 20, got %d", len(events))
	}
}
