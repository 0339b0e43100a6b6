package dedupe

// Package dedupe provides the shared singleflight group used to deduplicate
// concurrent match reads. Clients poll match state aggressively while
// waiting for the opponent; a centralized singleflight.Group ensures only
// one database load runs per match while other pollers wait for the result.

import "golang.org/x/sync/singleflight"

// MatchGroup deduplicates match state loads keyed by join code.
var MatchGroup singleflight.Group
