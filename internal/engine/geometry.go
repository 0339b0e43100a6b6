package engine

import "github.com/novusx/novusx-server/internal/game"

// Distance is the board metric used by every range check: Manhattan distance
// with one exception, a diagonally adjacent pair costs 2. A diagonal step is
// therefore as expensive as two orthogonal ones, and "distance 1" always
// means orthogonal adjacency.
func Distance(a, b game.Position) int {
	dr := abs(a.Row - b.Row)
	dc := abs(a.Col - b.Col)
	if dr == 1 && dc == 1 {
		return 2
	}
	return dr + dc
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// midpoint returns the single intermediate tile of a 2-long straight line.
// Only meaningful when a and b share a row or column at distance 2.
func midpoint(a, b game.Position) game.Position {
	return game.Position{Row: (a.Row + b.Row) / 2, Col: (a.Col + b.Col) / 2}
}

// straightLine reports whether a and b share a row or a column.
func straightLine(a, b game.Position) bool {
	return a.Row == b.Row || a.Col == b.Col
}

// diagonalAdjacent reports whether a and b touch corner to corner.
func diagonalAdjacent(a, b game.Position) bool {
	return abs(a.Row-b.Row) == 1 && abs(a.Col-b.Col) == 1
}
