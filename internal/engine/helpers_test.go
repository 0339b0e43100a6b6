package engine

import (
	"github.com/novusx/novusx-server/internal/game"
)

// put returns a copy of s with a unit placed directly on the board, skipping
// normal deployment. Tests use it to build arbitrary positions.
func put(s game.GameState, id string, owner int, t game.UnitType, row, col int) game.GameState {
	pos := game.Position{Row: row, Col: col}
	s.Board[pos.Index()].Unit = game.Unit{ID: id, Owner: owner, Type: t, Position: pos}
	return s
}

func at(r, c int) game.Position {
	return game.Position{Row: r, Col: c}
}
