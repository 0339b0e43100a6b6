package service

import (
	"time"

	"github.com/novusx/novusx-server/internal/game"
)

// LeaveRepo extends MatchRepo with seat removal for waiting matches.
type LeaveRepo interface {
	MatchRepo
	RemovePlayerByUUID(matchID uint, playerUUID string) error
}

// LeaveMatch removes a player. Leaving a waiting lobby frees the seat;
// leaving a running match counts as a resignation and hands the win to the
// opponent.
func LeaveMatch(repo LeaveRepo, matchID uint, playerUUID string) (*game.Match, error) {
	m, err := repo.GetMatchByID(matchID)
	if err != nil || m == nil {
		return nil, ErrMatchNotFound
	}
	p := m.PlayerByUUID(playerUUID)
	if p == nil {
		return nil, ErrPlayerNotInMatch
	}

	switch m.Status {
	case game.StatusWaiting:
		if err := repo.RemovePlayerByUUID(m.ID, playerUUID); err != nil {
			return nil, err
		}
		remaining := make([]game.MatchPlayer, 0, len(m.Players))
		for i := range m.Players {
			if m.Players[i].PlayerUUID != playerUUID {
				remaining = append(remaining, m.Players[i])
			}
		}
		m.Players = remaining
		if len(m.Players) == 0 {
			m.Status = game.StatusFinished
			m.Outcome = game.OutcomeAbandoned
			m.Message = "Lobby closed."
			m.StatsCounted = true
		}
		if err := repo.UpdateMatch(m); err != nil {
			return nil, err
		}
		return m, nil

	case game.StatusInProgress:
		p.Resigned = true
		m.Status = game.StatusFinished
		m.Outcome = game.OutcomeResignation
		m.ActionDeadline = time.Time{}
		if opp := m.PlayerBySeat(1 - p.Seat); opp != nil {
			m.Winner = opp.PlayerUUID
			m.Message = p.PlayerName + " resigned. " + opp.PlayerName + " wins."
		}
		if !m.StatsCounted {
			_ = repo.UpdateStatsOnMatchEnd(m, playerUUID)
			m.StatsCounted = true
		}
		if err := repo.UpdateMatch(m); err != nil {
			return nil, err
		}
		return m, nil

	default:
		return nil, ErrMatchNotInProgress
	}
}
