package game

import "fmt"

// BoardSize is the fixed edge length of the square board.
const BoardSize = 5

// NumTiles is the arena length of the flat tile array.
const NumTiles = BoardSize * BoardSize

// Position is a 1-indexed (row, col) pair, both in [1, BoardSize].
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) Valid() bool {
	return p.Row >= 1 && p.Row <= BoardSize && p.Col >= 1 && p.Col <= BoardSize
}

// Index maps the position into the flat tile arena.
func (p Position) Index() int {
	return (p.Row-1)*BoardSize + (p.Col - 1)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// PositionAt is the inverse of Index.
func PositionAt(index int) Position {
	return Position{Row: index/BoardSize + 1, Col: index%BoardSize + 1}
}

// Tile is one board cell. An empty tile carries the zero Unit (Type ==
// UnitNone). The struct is a pure value so copying a GameState copies the
// whole board with it.
type Tile struct {
	Position Position `json:"position"`
	Unit     Unit     `json:"unit,omitzero"`
}

// Empty reports whether no unit occupies the tile.
func (t Tile) Empty() bool {
	return t.Unit.Type == UnitNone
}

// Control points are logical board positions, not stored per-tile. Holding a
// unit on one of them "controls" it.
var (
	// ControlPoints lists all three, left to right.
	ControlPoints = [3]Position{{Row: 3, Col: 1}, {Row: 3, Col: 3}, {Row: 3, Col: 5}}

	// CenterControlPoint grants the extra action on turn start.
	CenterControlPoint = Position{Row: 3, Col: 3}

	// SideControlPoints grant free deployments on turn start.
	SideControlPoints = [2]Position{{Row: 3, Col: 1}, {Row: 3, Col: 5}}
)

// SpawnRow returns the row a player deploys onto: row 1 for player 0 and the
// far row for player 1.
func SpawnRow(player int) int {
	if player == 0 {
		return 1
	}
	return BoardSize
}
