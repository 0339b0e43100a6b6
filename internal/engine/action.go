package engine

import (
	"fmt"

	"github.com/novusx/novusx-server/internal/game"
)

// ActionKind names one entry of the action vocabulary. Each kind maps 1:1 to
// a validator/applier pair.
type ActionKind string

const (
	ActionDeploy  ActionKind = "deploy"
	ActionMove    ActionKind = "move"
	ActionAttack  ActionKind = "attack"
	ActionRotate  ActionKind = "rotate"
	ActionEndTurn ActionKind = "end_turn"
)

// Action is one requested state transition. UnitType is set for deploys,
// UnitID for moves, attacks and rotations; Target for everything but
// end_turn.
type Action struct {
	Kind     ActionKind    `json:"kind"`
	UnitType game.UnitType `json:"unit_type,omitempty"`
	UnitID   string        `json:"unit_id,omitempty"`
	Target   game.Position `json:"target,omitzero"`
}

// Validate probes legality of the action without applying it.
func Validate(s game.GameState, a Action) error {
	switch a.Kind {
	case ActionDeploy:
		return CanDeploy(s, a.UnitType, a.Target)
	case ActionMove:
		return CanMove(s, a.UnitID, a.Target)
	case ActionAttack:
		return CanAttack(s, a.UnitID, a.Target)
	case ActionRotate:
		return CanRotate(s, a.UnitID, a.Target)
	case ActionEndTurn:
		return nil
	default:
		return fmt.Errorf("%q: %w", a.Kind, ErrUnknownAction)
	}
}

// Apply dispatches the action to its applier and returns the next snapshot.
// On rejection the input snapshot comes back unchanged.
func Apply(s game.GameState, a Action) (game.GameState, error) {
	switch a.Kind {
	case ActionDeploy:
		return ApplyDeployUnit(s, a.UnitType, a.Target)
	case ActionMove:
		return ApplyMove(s, a.UnitID, a.Target)
	case ActionAttack:
		return ApplyAttack(s, a.UnitID, a.Target)
	case ActionRotate:
		return ApplyRotate(s, a.UnitID, a.Target)
	case ActionEndTurn:
		return EndTurn(s), nil
	default:
		return s, fmt.Errorf("%q: %w", a.Kind, ErrUnknownAction)
	}
}
