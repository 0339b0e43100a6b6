package api

import (
	"errors"
	"net/http"

	"github.com/novusx/novusx-server/internal/constants"
	"github.com/novusx/novusx-server/internal/engine"
	"github.com/novusx/novusx-server/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitAction applies one player action to a running match. The handler
// serializes submissions per match so the snapshot document is never
// rewritten concurrently.
func (h *MatchHandler) SubmitAction(c *gin.Context) {
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

	var action engine.Action
	if err := c.ShouldBindJSON(&action); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	playerUUID, _ := playerIdentity(c)

	mu := h.locks.Get(m.ID)
	mu.Lock()
	defer mu.Unlock()

	updated, ended, err := service.SubmitAction(h.repo, m.ID, playerUUID, action, h.actionTimeout)
	if err != nil {
		submitActionError(c, err)
		return
	}

	view, err := matchView(updated)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeMatch})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ended": ended,
		"match": view,
	})
}

// submitActionError maps service and rule errors to HTTP status codes. Rule
// violations are 422: the request was well-formed, the move is just illegal.
func submitActionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMatchNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
	case errors.Is(err, service.ErrMatchNotInProgress):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrMatchNotRunning})
	case errors.Is(err, service.ErrPlayerNotInMatch):
		c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrPlayerNotInMatch})
	case errors.Is(err, engine.ErrNotYourTurn):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: err.Error()})
	case isRuleViolation(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedApplyAction})
	}
}

var ruleViolations = []error{
	engine.ErrOutOfRange,
	engine.ErrTileOccupied,
	engine.ErrTileEmpty,
	engine.ErrNotYourUnit,
	engine.ErrAlreadyActed,
	engine.ErrNoActionsRemaining,
	engine.ErrDeploymentCapReached,
	engine.ErrInvalidRow,
	engine.ErrNoLineOfSight,
	engine.ErrNoAdvantage,
	engine.ErrImmuneTarget,
	engine.ErrSameTypeRotation,
	engine.ErrInvalidRotationGeometry,
	engine.ErrUnknownUnit,
	engine.ErrInvalidPosition,
	engine.ErrUnknownAction,
}

func isRuleViolation(err error) bool {
	for _, sentinel := range ruleViolations {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
