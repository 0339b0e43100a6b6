package engine

import "github.com/novusx/novusx-server/internal/game"

// EndTurn hands the board to the other player and recomputes their turn
// economy from control-point ownership: one base action plus one for the
// center point, and one free deployment per side point held. Every unit's
// acted flag resets. Ending the turn is always legal.
func EndTurn(s game.GameState) game.GameState {
	next := s
	incoming := 1 - next.CurrentPlayer

	actions := 1
	if next.Controls(incoming, game.CenterControlPoint) {
		actions++
	}
	free := 0
	for _, cp := range game.SideControlPoints {
		if next.Controls(incoming, cp) {
			free++
		}
	}

	next.Players[incoming].ActionsRemaining = actions
	next.FreeDeploymentsRemaining = free
	for i := range next.Board {
		next.Board[i].Unit.ActedThisTurn = false
	}
	next.CurrentPlayer = incoming
	next.TurnNumber++
	next.HasActedThisTurn = false
	return next
}
