package service

import (
	"errors"
	"time"

	"github.com/novusx/novusx-server/internal/game"
)

// MatchRepo is the minimal repository interface the match operations need.
// Using a small interface simplifies testing.
type MatchRepo interface {
	CreateMatch(m *game.Match) error
	GetMatchByID(id uint) (*game.Match, error)
	FindMatchByJoinCode(code string) (*game.Match, error)
	UpdateMatch(m *game.Match) error
	UpdateStatsOnMatchEnd(m *game.Match, resignedUUID string) error
}

var (
	ErrMatchNotFound      = errors.New("match not found")
	ErrMatchFull          = errors.New("match already has two players")
	ErrAlreadyJoined      = errors.New("player already joined this match")
	ErrMatchNotJoinable   = errors.New("match is not accepting players")
	ErrMatchNotInProgress = errors.New("match is not in progress")
	ErrMatchNotFinished   = errors.New("match is not finished")
	ErrPlayerNotInMatch   = errors.New("player not in match")
)

type CreateMatchRequest struct {
	Name       string
	Private    bool
	JoinCode   string
	PlayerUUID string
	PlayerName string
}

// CreateMatch opens a new match with the creator seated first. The match
// waits for an opponent; the board is not dealt until the second player
// joins.
func CreateMatch(repo MatchRepo, req CreateMatchRequest) (*game.Match, error) {
	m := &game.Match{
		Name:     req.Name,
		Private:  req.Private,
		JoinCode: req.JoinCode,
		Status:   game.StatusWaiting,
		Message:  "Waiting for an opponent.",
		Players: []game.MatchPlayer{
			{PlayerUUID: req.PlayerUUID, PlayerName: req.PlayerName, Seat: 0},
		},
	}
	if err := repo.CreateMatch(m); err != nil {
		return nil, err
	}
	return m, nil
}

// JoinMatch seats a player by join code. Once both seats are filled the
// match starts immediately.
func JoinMatch(repo MatchRepo, joinCode, playerUUID, playerName string, actionTimeout time.Duration) (*game.Match, error) {
	m, err := repo.FindMatchByJoinCode(joinCode)
	if err != nil || m == nil {
		return nil, ErrMatchNotFound
	}
	if m.Status != game.StatusWaiting {
		return nil, ErrMatchNotJoinable
	}
	if m.PlayerByUUID(playerUUID) != nil {
		return nil, ErrAlreadyJoined
	}
	if len(m.Players) >= 2 {
		return nil, ErrMatchFull
	}

	m.Players = append(m.Players, game.MatchPlayer{
		MatchID: m.ID, PlayerUUID: playerUUID, PlayerName: playerName, Seat: 1,
	})
	if err := StartMatch(m, actionTimeout); err != nil {
		return nil, err
	}
	if err := repo.UpdateMatch(m); err != nil {
		return nil, err
	}
	return m, nil
}

// StartMatch deals the opening position into the match record and opens the
// first turn. The caller persists the match.
func StartMatch(m *game.Match, actionTimeout time.Duration) error {
	if len(m.Players) != 2 {
		return ErrMatchNotJoinable
	}
	state := game.NewGame()
	if err := writeState(m, state, newArbiter()); err != nil {
		return err
	}
	m.Status = game.StatusInProgress
	m.Message = "The match has started. Deploy your units."
	m.ActionDeadline = time.Now().Add(actionTimeout)
	return nil
}
