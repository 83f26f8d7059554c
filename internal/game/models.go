package game

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Hero stores a persistent character profile plus aggregate duel stats.
// Account management itself lives in an external service; this table only
// holds what the duel engine needs to derive combat snapshots and to
// accumulate rewards.
type Hero struct {
	gorm.Model
	HeroID string `json:"hero_id" gorm:"uniqueIndex"`
	Name   string `json:"name"`

	Level int `json:"level"`
	XP    int `json:"xp"`
	Gold  int `json:"gold"`

	MaxHP        int    `json:"max_hp"`
	MaxMP        int    `json:"max_mp"`
	Armor        int    `json:"armor"`
	Force        int    `json:"force"`
	Dexterity    int    `json:"dexterity"`
	Constitution int    `json:"constitution"`
	Intelligence int    `json:"intelligence"`
	Wisdom       int    `json:"wisdom"`
	Charisma     int    `json:"charisma"`
	Affinity     string `json:"affinity"`

	// Loadout skill keys, comma separated. The skill definitions
	// themselves come from the content config and are never persisted.
	SkillKeys string `json:"skill_keys"`

	DuelsPlayed int `json:"duels_played"`
	Wins        int `json:"wins"`
}

func (Hero) TableName() string { return "hero_profiles" }

// Mode identifies a duel variant.
type Mode string

const (
	ModeDuel     Mode = "duel"     // rated 1v1
	ModeTraining Mode = "training" // zero stakes: no rewards, no rating change
	ModeTeam     Mode = "2v2"      // two members per side
	ModeServer   Mode = "server"   // server-authoritative resolution
)

// Training reports whether the mode is zero-stakes.
func (m Mode) Training() bool { return m == ModeTraining }

// MatchStatus is the lifecycle state of a matchmade pairing.
type MatchStatus string

const (
	MatchPending   MatchStatus = "pending"
	MatchStarted   MatchStatus = "started"
	MatchCompleted MatchStatus = "completed"
)

// ErrInvalidTransition is returned when a match transition would move
// backwards or skip the started state improperly.
var ErrInvalidTransition = errors.New("invalid match transition")

// Match is a matchmaking-assigned pairing of two heroes. Created pending by
// the matchmaker; Start and Complete are the only mutation paths and no
// regression to an earlier state is permitted.
type Match struct {
	gorm.Model
	MatchID   string      `json:"match_id" gorm:"uniqueIndex"`
	HeroAID   string      `json:"hero_a_id" gorm:"index"`
	HeroAName string      `json:"hero_a_name"`
	HeroBID   string      `json:"hero_b_id" gorm:"index"`
	HeroBName string      `json:"hero_b_name"`
	Mode      Mode        `json:"mode"`
	Status    MatchStatus `json:"status"`

	WinnerID    string `json:"winner_id"`
	WinnerName  string `json:"winner_name"`
	XPAwarded   int    `json:"xp_awarded"`
	GoldAwarded int    `json:"gold_awarded"`

	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// Start transitions pending -> started when either side signals readiness.
func (m *Match) Start(now time.Time) error {
	if m.Status != MatchPending {
		return ErrInvalidTransition
	}
	m.Status = MatchStarted
	m.StartedAt = &now
	return nil
}

// Complete transitions started -> completed with the winner and rewards.
// Completing a pending match is rejected: rewards are only known once a
// resolution produced a victor.
func (m *Match) Complete(winnerID, winnerName string, xp, gold int, now time.Time) error {
	if m.Status != MatchStarted {
		return ErrInvalidTransition
	}
	m.Status = MatchCompleted
	m.WinnerID = winnerID
	m.WinnerName = winnerName
	m.XPAwarded = xp
	m.GoldAwarded = gold
	m.CompletedAt = &now
	return nil
}

// Opponent returns the other participant's id and name.
func (m *Match) Opponent(heroID string) (string, string) {
	if m.HeroAID == heroID {
		return m.HeroBID, m.HeroBName
	}
	return m.HeroAID, m.HeroAName
}

// RatingRecord keeps one Elo rating per hero.
type RatingRecord struct {
	gorm.Model
	HeroID string `json:"hero_id" gorm:"uniqueIndex"`
	Rating int    `json:"rating"`
}

func (RatingRecord) TableName() string { return "hero_ratings" }

// DuelHistoryEvent is one append-only record of a terminal duel outcome.
type DuelHistoryEvent struct {
	gorm.Model
	HeroID       string    `json:"hero_id" gorm:"index"`
	HeroName     string    `json:"hero_name"`
	OpponentName string    `json:"opponent_name"`
	Victory      bool      `json:"victory"`
	XP           int       `json:"xp"`
	Gold         int       `json:"gold"`
	Log          string    `json:"log"`
	OccurredAt   time.Time `json:"occurred_at" gorm:"index"`
}

func (DuelHistoryEvent) TableName() string { return "duel_history" }

// WeeklyEntry is one row of the weekly wins/total aggregate.
type WeeklyEntry struct {
	HeroName string `json:"hero_name"`
	Wins     int    `json:"wins"`
	Total    int    `json:"total"`
}
