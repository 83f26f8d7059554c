package dedupe

// Package dedupe provides shared singleflight groups used to collapse
// concurrent read-side aggregate queries. Leaderboard and weekly stats are
// polled by every connected client, so only one database scan should run
// for a given key while other callers wait for the result.

import "golang.org/x/sync/singleflight"

// LeaderboardGroup deduplicates top-N rating queries keyed by limit.
var LeaderboardGroup singleflight.Group

// WeeklyGroup deduplicates weekly win/total aggregation, keyed by the
// truncated week start.
var WeeklyGroup singleflight.Group
