package service

import (
	"errors"
	"time"

	"github.com/novusx/novusx-server/internal/game"
)

var (
	ErrNoRematchOffer      = errors.New("no rematch offer pending")
	ErrRematchAlreadyBegun = errors.New("rematch already created")
	ErrOwnRematchOffer     = errors.New("cannot accept your own rematch offer")
)

// OfferRematch records a rematch offer on a finished match. Repeating an
// offer is a no-op.
func OfferRematch(repo MatchRepo, matchID uint, playerUUID string) (*game.Match, error) {
	m, err := repo.GetMatchByID(matchID)
	if err != nil || m == nil {
		return nil, ErrMatchNotFound
	}
	if m.Status != game.StatusFinished {
		return nil, ErrMatchNotFinished
	}
	if m.PlayerByUUID(playerUUID) == nil {
		return nil, ErrPlayerNotInMatch
	}
	if m.RematchMatchID != 0 {
		return nil, ErrRematchAlreadyBegun
	}
	if m.RematchOfferedBy == playerUUID {
		return m, nil
	}
	m.RematchOfferedBy = playerUUID
	if err := repo.UpdateMatch(m); err != nil {
		return nil, err
	}
	return m, nil
}

// AcceptRematch starts a follow-up match with the seats swapped, so the
// player who moved second gets the first move. joinCode is the fresh code
// for the new match.
func AcceptRematch(repo MatchRepo, matchID uint, playerUUID, joinCode string, actionTimeout time.Duration) (*game.Match, error) {
	m, err := repo.GetMatchByID(matchID)
	if err != nil || m == nil {
		return nil, ErrMatchNotFound
	}
	if m.Status != game.StatusFinished {
		return nil, ErrMatchNotFinished
	}
	if m.PlayerByUUID(playerUUID) == nil {
		return nil, ErrPlayerNotInMatch
	}
	if m.RematchOfferedBy == "" {
		return nil, ErrNoRematchOffer
	}
	if m.RematchOfferedBy == playerUUID {
		return nil, ErrOwnRematchOffer
	}
	if m.RematchMatchID != 0 {
		return nil, ErrRematchAlreadyBegun
	}

	next := &game.Match{
		Name:     m.Name,
		Private:  true,
		JoinCode: joinCode,
		Status:   game.StatusWaiting,
	}
	for i := range m.Players {
		p := m.Players[i]
		next.Players = append(next.Players, game.MatchPlayer{
			PlayerUUID: p.PlayerUUID,
			PlayerName: p.PlayerName,
			Seat:       1 - p.Seat,
		})
	}
	if err := StartMatch(next, actionTimeout); err != nil {
		return nil, err
	}
	if err := repo.CreateMatch(next); err != nil {
		return nil, err
	}

	m.RematchMatchID = next.ID
	if err := repo.UpdateMatch(m); err != nil {
		return nil, err
	}
	return next, nil
}

// DeclineRematch withdraws a pending offer.
func DeclineRematch(repo MatchRepo, matchID uint, playerUUID string) (*game.Match, error) {
	m, err := repo.GetMatchByID(matchID)
	if err != nil || m == nil {
		return nil, ErrMatchNotFound
	}
	if m.PlayerByUUID(playerUUID) == nil {
		return nil, ErrPlayerNotInMatch
	}
	if m.RematchOfferedBy == "" {
		return nil, ErrNoRematchOffer
	}
	m.RematchOfferedBy = ""
	if err := repo.UpdateMatch(m); err != nil {
		return nil, err
	}
	return m, nil
}
