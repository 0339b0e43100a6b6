package engine

import (
	"testing"

	"github.com/novusx/novusx-server/internal/game"
)

func TestCheckWinRequiresAllThreePoints(t *testing.T) {
	s := put(game.NewGame(), "l", 0, game.Swordsman, 3, 1)
	s = put(s, "c", 0, game.Shieldman, 3, 3)
	if CheckWin(s, 0) {
		t.Fatal("two control points must not win")
	}

	s = put(s, "r", 0, game.Archer, 3, 5)
	if !CheckWin(s, 0) {
		t.Fatal("holding all three control points wins")
	}
	if CheckWin(s, 1) {
		t.Fatal("opponent holds nothing")
	}
}

func TestCheckEliminationThreshold(t *testing.T) {
	s := put(game.NewGame(), "a", 0, game.Swordsman, 2, 2)
	s.TurnNumber = EliminationTurnThreshold
	if _, ok := CheckElimination(s); ok {
		t.Fatal("elimination must not fire at or before the threshold turn")
	}

	s.TurnNumber = EliminationTurnThreshold + 1
	winner, ok := CheckElimination(s)
	if !ok || winner != 0 {
		t.Fatalf("expected player 0 elimination win, got winner=%d ok=%v", winner, ok)
	}
}

func TestCheckEliminationNeedsSurvivors(t *testing.T) {
	s := game.NewGame()
	s.TurnNumber = EliminationTurnThreshold + 1
	if _, ok := CheckElimination(s); ok {
		t.Fatal("an empty board is not an elimination win")
	}

	s = put(s, "a", 0, game.Swordsman, 2, 2)
	s = put(s, "b", 1, game.Archer, 4, 4)
	if _, ok := CheckElimination(s); ok {
		t.Fatal("both players fielding units is not an elimination win")
	}
}
