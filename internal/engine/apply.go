package engine

import (
	"fmt"

	"github.com/novusx/novusx-server/internal/game"
)

// Appliers take a snapshot by value and return a new one. Each re-validates
// through its Can* counterpart, so an action either applies atomically or the
// input snapshot is returned untouched with the rule violation.

func placeUnit(s *game.GameState, u game.Unit, pos game.Position) {
	u.Position = pos
	s.Board[pos.Index()].Unit = u
}

func clearTile(s *game.GameState, pos game.Position) {
	s.Board[pos.Index()].Unit = game.Unit{}
}

// spendAction pays for a regular (non-free-deployment) action. Taking one
// forfeits any free deployments left this turn.
func spendAction(s *game.GameState) {
	s.Players[s.CurrentPlayer].ActionsRemaining--
	s.HasActedThisTurn = true
}

// ApplyDeployUnit places a new unit of unitType on target for the player to
// move. The unit enters the board spent (it cannot also move this turn). A
// free deployment is consumed when available; otherwise an action is spent.
func ApplyDeployUnit(s game.GameState, unitType game.UnitType, target game.Position) (game.GameState, error) {
	if err := CanDeploy(s, unitType, target); err != nil {
		return s, err
	}
	next := s
	next.UnitCounter++
	u := game.Unit{
		ID:            fmt.Sprintf("p%d-%s-%d", next.CurrentPlayer, unitType, next.UnitCounter),
		Owner:         next.CurrentPlayer,
		Type:          unitType,
		ActedThisTurn: true,
	}
	placeUnit(&next, u, target)
	next.Players[next.CurrentPlayer].DeploymentCounts[unitType]++
	if freeDeploymentAvailable(next) {
		next.FreeDeploymentsRemaining--
	} else {
		spendAction(&next)
	}
	return next, nil
}

// ApplyMove relocates the unit to the empty target tile and marks it spent.
func ApplyMove(s game.GameState, unitID string, target game.Position) (game.GameState, error) {
	if err := CanMove(s, unitID, target); err != nil {
		return s, err
	}
	next := s
	u, _ := next.FindUnit(unitID)
	clearTile(&next, u.Position)
	u.ActedThisTurn = true
	placeUnit(&next, u, target)
	spendAction(&next)
	return next, nil
}

// ApplyRotate swaps the initiating unit with the friendly unit on target.
// For adjacency (orthogonal or Cavalry diagonal) the two simply exchange
// tiles. For a Cavalry long rotation the Cavalry lands on target and the
// displaced unit falls into the vacated middle tile. Only the initiator's
// acted flag is raised.
func ApplyRotate(s game.GameState, unitID string, target game.Position) (game.GameState, error) {
	if err := CanRotate(s, unitID, target); err != nil {
		return s, err
	}
	next := s
	u, _ := next.FindUnit(unitID)
	other, _ := next.UnitAt(target)
	source := u.Position
	u.ActedThisTurn = true

	if Distance(source, target) == 2 && straightLine(source, target) {
		// Long rotation: source tile empties out.
		clearTile(&next, source)
		placeUnit(&next, u, target)
		placeUnit(&next, other, midpoint(source, target))
	} else {
		placeUnit(&next, u, target)
		placeUnit(&next, other, source)
	}
	spendAction(&next)
	return next, nil
}

// ApplyAttack resolves combat. A ranged engagement removes the defender and
// never the attacker. A melee engagement removes the defender, and also the
// attacker when the defender's table defeats the attacker back (mutual
// trade). A surviving attacker is marked spent.
func ApplyAttack(s game.GameState, attackerID string, target game.Position) (game.GameState, error) {
	if err := CanAttack(s, attackerID, target); err != nil {
		return s, err
	}
	next := s
	attacker, _ := next.FindUnit(attackerID)
	defender, _ := next.UnitAt(target)

	melee := Distance(attacker.Position, target) == 1
	clearTile(&next, target)
	if melee && MeleeBeats(defender.Type, attacker.Type) {
		clearTile(&next, attacker.Position)
	} else {
		attacker.ActedThisTurn = true
		placeUnit(&next, attacker, attacker.Position)
	}
	spendAction(&next)
	return next, nil
}
