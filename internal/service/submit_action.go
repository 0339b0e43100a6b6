package service

import (
	"time"

	"github.com/novusx/novusx-server/internal/engine"
	"github.com/novusx/novusx-server/internal/game"
)

// SubmitAction applies one player action to a running match. It returns the
// updated match and whether the action ended the game. Rule violations come
// back as engine sentinels and leave the stored snapshot untouched.
func SubmitAction(repo MatchRepo, matchID uint, playerUUID string, action engine.Action, actionTimeout time.Duration) (*game.Match, bool, error) {
	m, err := repo.GetMatchByID(matchID)
	if err != nil || m == nil {
		return nil, false, ErrMatchNotFound
	}
	if m.Status != game.StatusInProgress {
		return nil, false, ErrMatchNotInProgress
	}
	p := m.PlayerByUUID(playerUUID)
	if p == nil {
		return nil, false, ErrPlayerNotInMatch
	}

	prev, tracker, err := readState(m)
	if err != nil {
		return nil, false, err
	}
	if p.Seat != prev.CurrentPlayer {
		return nil, false, engine.ErrNotYourTurn
	}

	next, err := engine.Apply(prev, action)
	if err != nil {
		return nil, false, err
	}
	tracker, outcome, reason := tracker.Observe(prev, next)

	if err := writeState(m, next, tracker); err != nil {
		return nil, false, err
	}

	ended := outcome != engine.OutcomeInProgress
	switch {
	case ended:
		finishMatch(repo, m, next, outcome, reason)
	case next.CurrentPlayer != prev.CurrentPlayer:
		// Turn passed; the incoming player gets a fresh clock.
		m.ActionDeadline = time.Now().Add(actionTimeout)
	}

	if err := repo.UpdateMatch(m); err != nil {
		return nil, ended, err
	}
	return m, ended, nil
}

// finishMatch records the terminal result on the match and counts stats
// exactly once.
func finishMatch(repo MatchRepo, m *game.Match, final game.GameState, outcome engine.Outcome, reason engine.DrawReason) {
	m.Status = game.StatusFinished
	m.ActionDeadline = time.Time{}

	if winner, ok := outcome.Winner(); ok {
		if wp := m.PlayerBySeat(winner); wp != nil {
			m.Winner = wp.PlayerUUID
			m.Message = wp.PlayerName + " wins the match."
		}
		if engine.CheckWin(final, winner) {
			m.Outcome = game.OutcomeControlVictory
		} else {
			m.Outcome = game.OutcomeEliminationVictory
		}
	} else {
		m.Winner = ""
		switch reason {
		case engine.DrawMaxTurns:
			m.Outcome = game.OutcomeDrawMaxTurns
			m.Message = "Draw: turn limit reached."
		case engine.DrawRepeatedState:
			m.Outcome = game.OutcomeDrawRepetition
			m.Message = "Draw: position repeated too many times."
		case engine.DrawNoProgress:
			m.Outcome = game.OutcomeDrawNoProgress
			m.Message = "Draw: no capture or casualty for too long."
		}
	}

	if !m.StatsCounted {
		_ = repo.UpdateStatsOnMatchEnd(m, "")
		m.StatsCounted = true
	}
}
