package api

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/novusx/novusx-server/internal/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Accept letters, marks, numbers, apostrophe, dot, hyphen and spaces,
// length 2-40. Same pattern the frontend validates against.
var playerNameRegex = regexp.MustCompile(`^[\p{L}\p{M}\p{N}.'\- ]{2,40}$`)

type RegisterPlayerPayload struct {
	Name string `json:"name"`
}

// RegisterPlayer issues a fresh player identity. The returned UUID is the
// caller's credential for every subsequent request.
func (h *MatchHandler) RegisterPlayer(c *gin.Context) {
	var req RegisterPlayerPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	name := strings.TrimSpace(req.Name)
	if !playerNameRegex.MatchString(name) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPlayerNameInvalid})
		return
	}

	playerUUID := uuid.NewString()
	if err := h.repo.UpsertUser(playerUUID, name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedRegisterPlayer})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"player_uuid": playerUUID,
		"player_name": name,
	})
}

// GetPlayerStats returns aggregated stats for the calling player, or for an
// explicit ?uuid=... query.
func (h *MatchHandler) GetPlayerStats(c *gin.Context) {
	id := c.Query("uuid")
	if id == "" {
		id, _ = playerIdentity(c)
	}
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrIdentityRequired})
		return
	}
	stats, err := h.repo.GetStatsByUUID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchStats})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// UpdatePlayerProfile updates the calling player's display name.
func (h *MatchHandler) UpdatePlayerProfile(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	trimmed := strings.TrimSpace(body.Name)
	if !playerNameRegex.MatchString(trimmed) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPlayerNameInvalid})
		return
	}
	playerUUID, _ := playerIdentity(c)
	if err := h.repo.UpsertUser(playerUUID, trimmed); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchStats})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "ok"})
}
