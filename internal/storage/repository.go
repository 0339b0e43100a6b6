package storage

import (
	"time"

	"github.com/novusx/novusx-server/internal/game"
)

type Repository interface {
	CreateMatch(m *game.Match) error
	GetMatchByID(id uint) (*game.Match, error)
	FindMatchByJoinCode(code string) (*game.Match, error)
	UpdateMatch(m *game.Match) error
	// GetPublicMatches lists joinable public matches created within maxAge.
	GetPublicMatches(maxAge time.Duration) ([]game.Match, error)
	RemovePlayerByUUID(matchID uint, playerUUID string) error

	UpsertUser(uuid, name string) error
	UpdateStatsOnMatchEnd(m *game.Match, resignedUUID string) error
	GetStatsByUUID(uuid string) (*game.User, error)
	// Leaderboard
	GetTopPlayers(limit int) ([]game.User, error)

	// ClaimTimedOutMatchIDs atomically marks in-progress matches whose
	// action deadline passed as claimed by workerID and returns their ids.
	// A claimed match is resolved by exactly one scanner instance; claims
	// older than staleClaimAfter are taken over from workers that never
	// finished resolving them.
	ClaimTimedOutMatchIDs(now time.Time, staleClaimAfter time.Duration, workerID string) ([]uint, error)
}
