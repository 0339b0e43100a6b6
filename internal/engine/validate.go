package engine

import (
	"fmt"

	"github.com/novusx/novusx-server/internal/game"
)

// Validators are pure predicates over a snapshot. They never mutate state,
// so a caller can probe legality without risk; each applier calls its
// validator first, keeping every rule in exactly one place.

// activeUnit resolves a unit id and checks the preconditions shared by every
// unit-initiated action: the unit exists, belongs to the player to move, has
// not acted, and the player still has an action to spend.
func activeUnit(s game.GameState, unitID string) (game.Unit, error) {
	u, ok := s.FindUnit(unitID)
	if !ok {
		return game.Unit{}, fmt.Errorf("unit %q: %w", unitID, ErrUnknownUnit)
	}
	if u.Owner != s.CurrentPlayer {
		return game.Unit{}, fmt.Errorf("unit %q: %w", unitID, ErrNotYourUnit)
	}
	if u.ActedThisTurn {
		return game.Unit{}, fmt.Errorf("unit %q: %w", unitID, ErrAlreadyActed)
	}
	if s.Players[s.CurrentPlayer].ActionsRemaining <= 0 {
		return game.Unit{}, ErrNoActionsRemaining
	}
	return u, nil
}

// CanDeploy checks whether the player to move may place a new unit of the
// given type on target. Deployment is paid for with a free deployment when
// one is available and not yet forfeited, otherwise with an action.
func CanDeploy(s game.GameState, unitType game.UnitType, target game.Position) error {
	if !target.Valid() {
		return fmt.Errorf("deploy to %s: %w", target, ErrInvalidPosition)
	}
	if !unitType.Valid() {
		return fmt.Errorf("deploy: unit type %s: %w", unitType, ErrUnknownAction)
	}
	if target.Row != game.SpawnRow(s.CurrentPlayer) {
		return fmt.Errorf("deploy to %s: %w", target, ErrInvalidRow)
	}
	if _, occupied := s.UnitAt(target); occupied {
		return fmt.Errorf("deploy to %s: %w", target, ErrTileOccupied)
	}
	p := s.Players[s.CurrentPlayer]
	if p.DeploymentCounts[unitType] >= game.MaxDeploymentsPerType {
		return fmt.Errorf("deploy %s: %w", unitType, ErrDeploymentCapReached)
	}
	if !freeDeploymentAvailable(s) && p.ActionsRemaining <= 0 {
		return ErrNoActionsRemaining
	}
	return nil
}

func freeDeploymentAvailable(s game.GameState) bool {
	return s.FreeDeploymentsRemaining > 0 && !s.HasActedThisTurn
}

// CanMove checks whether the unit may move to the empty target tile. An
// orthogonal 2-tile move passes through its single intermediate tile, which
// must be empty; a diagonal step costs 2 outright and passes through nothing.
func CanMove(s game.GameState, unitID string, target game.Position) error {
	if !target.Valid() {
		return fmt.Errorf("move to %s: %w", target, ErrInvalidPosition)
	}
	u, err := activeUnit(s, unitID)
	if err != nil {
		return err
	}
	if _, occupied := s.UnitAt(target); occupied {
		return fmt.Errorf("move to %s: %w", target, ErrTileOccupied)
	}
	d := Distance(u.Position, target)
	if d > u.Type.MoveRange() {
		return fmt.Errorf("move to %s: %w", target, ErrOutOfRange)
	}
	if d == 2 && straightLine(u.Position, target) {
		mid := midpoint(u.Position, target)
		if _, occupied := s.UnitAt(mid); occupied {
			return fmt.Errorf("move through %s: %w", mid, ErrTileOccupied)
		}
	}
	return nil
}

// CanRotate checks whether the unit may swap with the friendly unit on
// target. Orthogonal adjacency is open to every type; diagonal adjacency and
// the 2-tile "long rotation" over an empty middle tile are Cavalry moves.
func CanRotate(s game.GameState, unitID string, target game.Position) error {
	if !target.Valid() {
		return fmt.Errorf("rotate to %s: %w", target, ErrInvalidPosition)
	}
	u, err := activeUnit(s, unitID)
	if err != nil {
		return err
	}
	other, ok := s.UnitAt(target)
	if !ok {
		return fmt.Errorf("rotate to %s: %w", target, ErrTileEmpty)
	}
	if other.Owner != s.CurrentPlayer {
		return fmt.Errorf("rotate to %s: %w", target, ErrNotYourUnit)
	}
	if other.Type == u.Type {
		return fmt.Errorf("rotate %s with %s: %w", u.Type, other.Type, ErrSameTypeRotation)
	}
	switch {
	case Distance(u.Position, target) == 1:
		return nil
	case diagonalAdjacent(u.Position, target):
		if u.Type != game.Cavalry {
			return fmt.Errorf("diagonal rotation by %s: %w", u.Type, ErrInvalidRotationGeometry)
		}
		return nil
	case Distance(u.Position, target) == 2 && straightLine(u.Position, target):
		if u.Type != game.Cavalry {
			return fmt.Errorf("long rotation by %s: %w", u.Type, ErrInvalidRotationGeometry)
		}
		mid := midpoint(u.Position, target)
		if _, occupied := s.UnitAt(mid); occupied {
			return fmt.Errorf("long rotation through %s: %w", mid, ErrTileOccupied)
		}
		return nil
	default:
		return fmt.Errorf("rotate %s to %s: %w", u.Position, target, ErrInvalidRotationGeometry)
	}
}

// CanAttack checks whether the unit may attack the enemy on target.
// Engagement is melee exactly at distance 1; everything farther is ranged,
// which only Archer and Spearman can do and which requires line of sight, a
// non-immune defender and a winning matchup. A melee attack may only be
// initiated when the attacker's table defeats the defender (outright win or
// mutual trade).
func CanAttack(s game.GameState, attackerID string, target game.Position) error {
	if !target.Valid() {
		return fmt.Errorf("attack %s: %w", target, ErrInvalidPosition)
	}
	attacker, err := activeUnit(s, attackerID)
	if err != nil {
		return err
	}
	defender, ok := s.UnitAt(target)
	if !ok || defender.Owner == s.CurrentPlayer {
		return fmt.Errorf("no enemy unit at %s: %w", target, ErrTileEmpty)
	}
	d := Distance(attacker.Position, target)
	if d > attacker.Type.AttackRange() {
		return fmt.Errorf("attack %s: %w", target, ErrOutOfRange)
	}
	if d == 1 {
		if !MeleeBeats(attacker.Type, defender.Type) {
			return fmt.Errorf("%s vs %s: %w", attacker.Type, defender.Type, ErrNoAdvantage)
		}
		return nil
	}
	if !CanAttackRanged(attacker.Type) {
		return fmt.Errorf("ranged attack by %s: %w", attacker.Type, ErrOutOfRange)
	}
	if defender.Type == game.Shieldman {
		return fmt.Errorf("%s vs %s: %w", attacker.Type, defender.Type, ErrImmuneTarget)
	}
	if !HasLineOfSight(s, attacker.Position, target) {
		return fmt.Errorf("attack %s: %w", target, ErrNoLineOfSight)
	}
	if !RangedBeats(attacker.Type, defender.Type) {
		return fmt.Errorf("%s vs %s: %w", attacker.Type, defender.Type, ErrNoAdvantage)
	}
	return nil
}
