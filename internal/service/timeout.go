package service

import (
	"time"

	"github.com/novusx/novusx-server/internal/constants"
	"github.com/novusx/novusx-server/internal/game"
	"github.com/novusx/novusx-server/internal/logging"
)

// HandleTimedOutMatch resolves one match whose action deadline passed. The
// player who sat on their turn forfeits; the opponent takes the win. The
// caller has already claimed the match, so double resolution cannot happen.
func HandleTimedOutMatch(repo MatchRepo, matchID uint) error {
	m, err := repo.GetMatchByID(matchID)
	if err != nil || m == nil {
		return ErrMatchNotFound
	}
	if m.Status != game.StatusInProgress {
		return nil
	}

	state, _, err := readState(m)
	if err != nil {
		return err
	}

	m.Status = game.StatusFinished
	m.Outcome = game.OutcomeAbandoned
	m.ActionDeadline = time.Time{}

	idle := m.PlayerBySeat(state.CurrentPlayer)
	opp := m.PlayerBySeat(1 - state.CurrentPlayer)
	if idle != nil && opp != nil {
		m.Winner = opp.PlayerUUID
		m.Message = idle.PlayerName + " ran out of time. " + opp.PlayerName + " wins."
	} else {
		m.Message = "Match ended due to inactivity."
	}

	if !m.StatsCounted {
		_ = repo.UpdateStatsOnMatchEnd(m, "")
		m.StatsCounted = true
	}
	logging.Info("match expired by inactivity", logging.Fields{constants.LogFieldMatchID: m.ID, constants.LogFieldTurn: m.TurnNumber})
	return repo.UpdateMatch(m)
}
