package api

import (
	"net/http"
	"strconv"

	"github.com/novusx/novusx-server/internal/constants"
	"github.com/novusx/novusx-server/internal/dedupe"
	"github.com/novusx/novusx-server/internal/engine"
	"github.com/novusx/novusx-server/internal/game"

	"github.com/gin-gonic/gin"
)

// GetMatch returns a match by join code, including the decoded board state
// and its digest so clients can verify their local copy. Concurrent pollers
// of the same match share one database load.
func (h *MatchHandler) GetMatch(c *gin.Context) {
	code := normalizeJoinCode(c.Param("matchCode"))
	if code == "" || !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMatchCode})
		return
	}

	v, err, _ := dedupe.MatchGroup.Do(code, func() (interface{}, error) {
		m, err := h.repo.FindMatchByJoinCode(code)
		if err != nil {
			return nil, err
		}
		return matchView(m)
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return
	}
	c.JSON(http.StatusOK, v)
}

// matchView builds the API shape for one match: the record itself plus the
// decoded snapshot and its digest when the board has been dealt.
func matchView(m *game.Match) (interface{}, error) {
	out, err := MarshalIntoSnakeTimestamps(m)
	if err != nil {
		return nil, err
	}
	view, ok := out.(map[string]interface{})
	if !ok {
		return out, nil
	}
	if m.Snapshot != "" {
		state, err := game.DecodeSnapshot([]byte(m.Snapshot))
		if err != nil {
			return nil, err
		}
		view["state"] = state
		view["digest"] = engine.StateDigest(state)
	}
	return view, nil
}

// ListPublicMatches returns joinable public matches.
func (h *MatchHandler) ListPublicMatches(c *gin.Context) {
	matches, err := h.repo.GetPublicMatches(h.publicTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchMatches})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(matches)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchMatches})
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListLeaderboard returns the top players by wins (desc), top 10 by default.
func (h *MatchHandler) ListLeaderboard(c *gin.Context) {
	limit := 10
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	users, err := h.repo.GetTopPlayers(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(users)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, out)
}
