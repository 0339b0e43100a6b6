package engine

import "errors"

// Rule violations reported by the validators. All are local, recoverable
// failures: the prior state stays authoritative and the caller surfaces the
// rejection to the player. Match with errors.Is; validators may wrap these
// with positional detail.
var (
	ErrOutOfRange              = errors.New("target out of range")
	ErrTileOccupied            = errors.New("tile occupied")
	ErrTileEmpty               = errors.New("tile empty")
	ErrNotYourUnit             = errors.New("unit belongs to the opponent")
	ErrNotYourTurn             = errors.New("not your turn")
	ErrAlreadyActed            = errors.New("unit already acted this turn")
	ErrNoActionsRemaining      = errors.New("no actions remaining")
	ErrDeploymentCapReached    = errors.New("deployment cap reached for unit type")
	ErrInvalidRow              = errors.New("deployment outside spawn row")
	ErrNoLineOfSight           = errors.New("no line of sight to target")
	ErrNoAdvantage             = errors.New("attacker has no winning matchup")
	ErrImmuneTarget            = errors.New("target is immune to ranged attacks")
	ErrSameTypeRotation        = errors.New("cannot rotate units of the same type")
	ErrInvalidRotationGeometry = errors.New("invalid rotation geometry")
	ErrUnknownUnit             = errors.New("no such unit")
	ErrInvalidPosition         = errors.New("position outside the board")
	ErrUnknownAction           = errors.New("unknown action kind")
)
