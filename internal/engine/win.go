package engine

import "github.com/novusx/novusx-server/internal/game"

// EliminationTurnThreshold delays elimination victories so a slow opening
// cannot lose the game before both sides have deployed.
const EliminationTurnThreshold = 10

// CheckWin reports whether player holds all three control points. The engine
// only reports the predicate; ending the game is the caller's call.
func CheckWin(s game.GameState, player int) bool {
	return s.CountControlPoints(player) == len(game.ControlPoints)
}

// CheckElimination reports a victory by annihilation: past the opening
// threshold, a player with units left wins once the opponent has none.
func CheckElimination(s game.GameState) (winner int, ok bool) {
	if s.TurnNumber <= EliminationTurnThreshold {
		return 0, false
	}
	for player := 0; player <= 1; player++ {
		if s.CountUnits(player) > 0 && s.CountUnits(1-player) == 0 {
			return player, true
		}
	}
	return 0, false
}
