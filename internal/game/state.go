package game

import (
	"encoding/json"
	"fmt"
)

// MaxDeploymentsPerType caps how many units of one type a player may deploy
// over the whole game.
const MaxDeploymentsPerType = 3

// DeploymentCounts tracks per-type deployments for one player, indexed by
// UnitType. A fixed array keeps value semantics for state snapshots; the
// UnitNone slot is unused.
type DeploymentCounts [NumUnitTypes + 1]int

// MarshalJSON emits a name-keyed object so the wire format matches the unit
// type names instead of leaking enum ordering.
func (d DeploymentCounts) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, NumUnitTypes)
	for _, t := range UnitTypes() {
		m[t.String()] = d[t]
	}
	return json.Marshal(m)
}

func (d *DeploymentCounts) UnmarshalJSON(b []byte) error {
	var m map[string]int
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	var out DeploymentCounts
	for name, n := range m {
		t, err := ParseUnitType(name)
		if err != nil {
			return fmt.Errorf("deployment counts: %w", err)
		}
		out[t] = n
	}
	*d = out
	return nil
}

// PlayerState is the per-player slice of the game state.
type PlayerState struct {
	ID               int              `json:"id"`
	ActionsRemaining int              `json:"actions_remaining"`
	DeploymentCounts DeploymentCounts `json:"deployment_counts"`
}

// GameState is one immutable snapshot of a match. It is a pure value: every
// applier copies it wholesale and returns the copy, so a rejected action can
// never leave a partial effect behind.
type GameState struct {
	Board                    [NumTiles]Tile    `json:"board"`
	Players                  [2]PlayerState    `json:"players"`
	CurrentPlayer            int               `json:"current_player"`
	TurnNumber               int               `json:"turn_number"`
	FreeDeploymentsRemaining int               `json:"free_deployments_remaining"`
	HasActedThisTurn         bool              `json:"has_acted_this_turn"`
	UnitCounter              int               `json:"unit_counter"`
}

// NewGame returns the start-of-match snapshot: empty board, both players at
// the base allotment of one action, player 0 to move on turn 1.
func NewGame() GameState {
	var s GameState
	for i := range s.Board {
		s.Board[i].Position = PositionAt(i)
	}
	s.Players[0] = PlayerState{ID: 0, ActionsRemaining: 1}
	s.Players[1] = PlayerState{ID: 1, ActionsRemaining: 1}
	s.CurrentPlayer = 0
	s.TurnNumber = 1
	return s
}

// TileAt returns the tile at pos. pos must be valid.
func (s GameState) TileAt(pos Position) Tile {
	return s.Board[pos.Index()]
}

// UnitAt returns the unit occupying pos, if any.
func (s GameState) UnitAt(pos Position) (Unit, bool) {
	t := s.Board[pos.Index()]
	if t.Empty() {
		return Unit{}, false
	}
	return t.Unit, true
}

// FindUnit locates a unit by its opaque id.
func (s GameState) FindUnit(id string) (Unit, bool) {
	for i := range s.Board {
		if !s.Board[i].Empty() && s.Board[i].Unit.ID == id {
			return s.Board[i].Unit, true
		}
	}
	return Unit{}, false
}

// Controls reports whether player owns the unit on pos, if any.
func (s GameState) Controls(player int, pos Position) bool {
	u, ok := s.UnitAt(pos)
	return ok && u.Owner == player
}

// CountControlPoints counts control points currently held by player.
func (s GameState) CountControlPoints(player int) int {
	n := 0
	for _, cp := range ControlPoints {
		if s.Controls(player, cp) {
			n++
		}
	}
	return n
}

// ControlOwner pairs a control point with its current holder. Owner is -1
// while the point is unheld.
type ControlOwner struct {
	Position Position
	Owner    int
}

// ControlOwners reports the holder of each control point, left to right.
func (s GameState) ControlOwners() [3]ControlOwner {
	var out [3]ControlOwner
	for i, cp := range ControlPoints {
		out[i] = ControlOwner{Position: cp, Owner: -1}
		if u, ok := s.UnitAt(cp); ok {
			out[i].Owner = u.Owner
		}
	}
	return out
}

// CountUnits counts units on the board owned by player.
func (s GameState) CountUnits(player int) int {
	n := 0
	for i := range s.Board {
		if !s.Board[i].Empty() && s.Board[i].Unit.Owner == player {
			n++
		}
	}
	return n
}
