package api

import (
	"time"

	"github.com/novusx/novusx-server/internal/service"
	"github.com/novusx/novusx-server/internal/storage"
)

// MatchHandler groups all match-related HTTP handlers.
type MatchHandler struct {
	repo          storage.Repository
	locks         *service.MatchLocks
	actionTimeout time.Duration
	publicTTL     time.Duration
}

// NewMatchHandler creates a MatchHandler with the given repository and the
// configured per-turn action timeout and public lobby TTL.
func NewMatchHandler(repo storage.Repository, actionTimeout, publicTTL time.Duration) *MatchHandler {
	return &MatchHandler{
		repo:          repo,
		locks:         service.NewMatchLocks(),
		actionTimeout: actionTimeout,
		publicTTL:     publicTTL,
	}
}
