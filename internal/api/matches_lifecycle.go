package api

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/novusx/novusx-server/internal/constants"
	"github.com/novusx/novusx-server/internal/logging"
	"github.com/novusx/novusx-server/internal/service"

	"github.com/gin-gonic/gin"
)

type CreateMatchPayload struct {
	PlayerName string `json:"player_name"`
	Name       string `json:"name"`
	Private    bool   `json:"private"`
}

// CreateMatch opens a new match and returns its id and join code.
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req CreateMatchPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	playerUUID, sessionName := playerIdentity(c)
	if req.PlayerName == "" {
		req.PlayerName = sessionName
	}
	if utf8.RuneCountInString(req.Name) > 32 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrMatchNameExceeds})
		return
	}

	if err := h.repo.UpsertUser(playerUUID, req.PlayerName); err != nil {
		logging.Warn("failed to upsert player profile", logging.Fields{constants.LogFieldPlayer: playerUUID, "error": err.Error()})
	}

	m, err := service.CreateMatch(h.repo, service.CreateMatchRequest{
		Name:       req.Name,
		Private:    req.Private,
		JoinCode:   generateJoinCode(),
		PlayerUUID: playerUUID,
		PlayerName: req.PlayerName,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateMatch})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"match_id":  m.ID,
		"join_code": m.JoinCode,
	})
}

type JoinMatchPayload struct {
	JoinCode   string `json:"join_code"`
	PlayerName string `json:"player_name"`
}

// JoinMatch seats the second player via join code. The match starts as soon
// as both seats are filled.
func (h *MatchHandler) JoinMatch(c *gin.Context) {
	var req JoinMatchPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	playerUUID, sessionName := playerIdentity(c)
	if req.PlayerName == "" {
		req.PlayerName = sessionName
	}

	code := normalizeJoinCode(req.JoinCode)
	if code == "" || !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMatchCode})
		return
	}

	if err := h.repo.UpsertUser(playerUUID, req.PlayerName); err != nil {
		logging.Warn("failed to upsert player profile", logging.Fields{constants.LogFieldPlayer: playerUUID, "error": err.Error()})
	}

	m, err := service.JoinMatch(h.repo, code, playerUUID, req.PlayerName, h.actionTimeout)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		case errors.Is(err, service.ErrMatchFull), errors.Is(err, service.ErrAlreadyJoined):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrMatchFull})
		case errors.Is(err, service.ErrMatchNotJoinable):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrMatchNotJoinable})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateMatch})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"match_id":  m.ID,
		"join_code": m.JoinCode,
		"status":    m.Status,
	})
}

// LeaveMatch removes the calling player. Leaving a running match counts as
// resignation.
func (h *MatchHandler) LeaveMatch(c *gin.Context) {
	code := normalizeJoinCode(c.Param("matchCode"))
	if code == "" || !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMatchCode})
		return
	}
	m, err := h.repo.FindMatchByJoinCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return
	}
	playerUUID, _ := playerIdentity(c)

	mu := h.locks.Get(m.ID)
	mu.Lock()
	defer mu.Unlock()

	updated, err := service.LeaveMatch(h.repo, m.ID, playerUUID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlayerNotInMatch):
			c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrPlayerNotInMatch})
		case errors.Is(err, service.ErrMatchNotInProgress):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrMatchNotRunning})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateMatch})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeyMessage: "Player removed",
		constants.JSONKeyStatus:  updated.Status,
	})
}

type RematchPayload struct {
	Response string `json:"response"`
}

// Rematch negotiates a follow-up match on a finished one. The body carries
// one of "offer", "accept" or "decline".
func (h *MatchHandler) Rematch(c *gin.Context) {
	code := normalizeJoinCode(c.Param("matchCode"))
	if code == "" || !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMatchCode})
		return
	}
	var req RematchPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	m, err := h.repo.FindMatchByJoinCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return
	}
	playerUUID, _ := playerIdentity(c)

	mu := h.locks.Get(m.ID)
	mu.Lock()
	defer mu.Unlock()

	switch req.Response {
	case "offer":
		updated, err := service.OfferRematch(h.repo, m.ID, playerUUID)
		if err != nil {
			rematchError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"rematch_offered_by": updated.RematchOfferedBy})
	case "accept":
		next, err := service.AcceptRematch(h.repo, m.ID, playerUUID, generateJoinCode(), h.actionTimeout)
		if err != nil {
			rematchError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"match_id":  next.ID,
			"join_code": next.JoinCode,
		})
	case "decline":
		if _, err := service.DeclineRematch(h.repo, m.ID, playerUUID); err != nil {
			rematchError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Rematch declined"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
	}
}

func rematchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMatchNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
	case errors.Is(err, service.ErrPlayerNotInMatch):
		c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrPlayerNotInMatch})
	case errors.Is(err, service.ErrMatchNotFinished),
		errors.Is(err, service.ErrNoRematchOffer),
		errors.Is(err, service.ErrRematchAlreadyBegun),
		errors.Is(err, service.ErrOwnRematchOffer):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateMatch})
	}
}
