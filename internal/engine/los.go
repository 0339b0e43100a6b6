package engine

import "github.com/novusx/novusx-server/internal/game"

// HasLineOfSight reports whether from can see to for a ranged engagement.
// Sight exists only along a pure horizontal or vertical line with every
// intermediate tile unoccupied, or across diagonal adjacency (which has no
// intermediate tile). Any other geometry has no line of sight.
func HasLineOfSight(s game.GameState, from, to game.Position) bool {
	dr := to.Row - from.Row
	dc := to.Col - from.Col

	if diagonalAdjacent(from, to) {
		return true
	}

	switch {
	case dc == 0 && dr != 0:
		step := 1
		if dr < 0 {
			step = -1
		}
		for r := from.Row + step; r != to.Row; r += step {
			if _, occupied := s.UnitAt(game.Position{Row: r, Col: from.Col}); occupied {
				return false
			}
		}
		return true
	case dr == 0 && dc != 0:
		step := 1
		if dc < 0 {
			step = -1
		}
		for c := from.Col + step; c != to.Col; c += step {
			if _, occupied := s.UnitAt(game.Position{Row: from.Row, Col: c}); occupied {
				return false
			}
		}
		return true
	}

	return false
}
