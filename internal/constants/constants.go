package constants

// Centralized constants for environment keys, routes and combat tuning.
const (
	// Environment variable keys
	EnvAddr        = "HEROFORGE_ADDR"
	EnvDBPath      = "HEROFORGE_DB"
	EnvContentPath = "HEROFORGE_CONFIG"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Combat tuning values. These mirror the balance numbers the frontend
// displays in tooltips, so change them together.
const (
	BaseHitChance    = 50
	HitChancePerDex  = 3
	MinHitChance     = 5
	MaxHitChance     = 95
	WeaponBonus      = 2
	CritChancePct    = 5
	CritMultiplier   = 1.5
	PoisonDuration   = 3
	PoisonTickDamage = 2
	BurnTickDamage   = 3
	FreezeDuration   = 1

	// Resolve gives up after this many turns and decides on remaining HP.
	MaxResolveTurns = 200
)

// Paging and progression
const (
	DefaultHistoryPage     = 20
	MaxHistoryPage         = 50
	DefaultLeaderboardSize = 10
	MaxLeaderboardSize     = 50
	XPPerLevel             = 100
)

// Rating constants
const (
	DefaultRating = 1000
	EloKFactor    = 32
)

// Routes used by the backend router
const (
	RouteAPIPrefix      = "/api"
	RouteHealth         = "/health"
	RouteVersion        = "/version"
	RouteDuels          = "/duels"
	RouteDuelByID       = "/duels/:duelID"
	RouteDuelAction     = "/duels/:duelID/action"
	RouteDuelSubmit     = "/duels/submit"
	RouteDuelResolve    = "/duels/resolve"
	RouteDuelHistory    = "/duels/history"
	RouteDuelWeekly     = "/duels/weekly"
	RouteQueue          = "/queue"
	RouteQueuePoll      = "/queue/poll"
	RouteQueueSubscribe = "/queue/subscribe"
	RouteMatches        = "/matches"
	RouteMatchStart     = "/matches/:matchID/start"
	RouteMatchComplete  = "/matches/:matchID/complete"
	RouteRatingByHero   = "/ratings/:heroID"
	RouteLeaderboard    = "/leaderboard"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyResult  = "result"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest        = "Invalid request"
	ErrHeroIDRequired        = "hero_id is required"
	ErrHeroNotFound          = "Hero not found"
	ErrDuelNotFound          = "Duel not found"
	ErrDuelAlreadyOver       = "Duel is already over"
	ErrDuelNotAwaitingAction = "Duel is not awaiting an action"
	ErrMatchNotFound         = "Match not found"
	ErrInvalidTransition     = "Invalid match transition"
	ErrFailedCreateDuel      = "Failed to create duel"
	ErrFailedFetchMatches    = "Failed to fetch matches"
	ErrFailedFetchHistory    = "Failed to fetch history"
	ErrFailedFetchWeekly     = "Failed to fetch weekly stats"
	ErrFailedFetchRatings    = "Failed to fetch leaderboard"
	ErrFailedUpgrade         = "Failed to upgrade connection"
)

// Logging field names
const (
	LogFieldDuelID  = "duel_id"
	LogFieldMatchID = "match_id"
	LogFieldHeroID  = "hero_id"
	LogFieldAddr    = "addr"
	LogFieldMode    = "mode"
)
