package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/novusx/novusx-server/internal/game"
)

func TestDeployBasics(t *testing.T) {
	s := game.NewGame()

	next, err := ApplyDeployUnit(s, game.Swordsman, at(1, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u, ok := next.UnitAt(at(1, 3))
	if !ok || u.Type != game.Swordsman || u.Owner != 0 {
		t.Fatalf("expected a player-0 swordsman at (1,3), got %+v", u)
	}
	if !u.ActedThisTurn {
		t.Fatal("a freshly deployed unit must enter the board spent")
	}
	if next.Players[0].ActionsRemaining != 0 {
		t.Fatalf("deployment without a free slot must spend an action, got %d", next.Players[0].ActionsRemaining)
	}
	if !next.HasActedThisTurn {
		t.Fatal("spending an action must mark the turn as acted")
	}
	if next.Players[0].DeploymentCounts[game.Swordsman] != 1 {
		t.Fatal("deployment count not incremented")
	}
}

func TestDeployWrongRow(t *testing.T) {
	s := game.NewGame()
	if err := CanDeploy(s, game.Archer, at(2, 3)); !errors.Is(err, ErrInvalidRow) {
		t.Fatalf("expected ErrInvalidRow, got %v", err)
	}

	// Player 1 spawns on row 5.
	s.CurrentPlayer = 1
	if err := CanDeploy(s, game.Archer, at(5, 3)); err != nil {
		t.Fatalf("player 1 should deploy on row 5: %v", err)
	}
	if err := CanDeploy(s, game.Archer, at(1, 3)); !errors.Is(err, ErrInvalidRow) {
		t.Fatalf("expected ErrInvalidRow for player 1 on row 1, got %v", err)
	}
}

func TestDeployOccupiedTile(t *testing.T) {
	s := put(game.NewGame(), "u1", 0, game.Archer, 1, 3)
	if err := CanDeploy(s, game.Swordsman, at(1, 3)); !errors.Is(err, ErrTileOccupied) {
		t.Fatalf("expected ErrTileOccupied, got %v", err)
	}
}

func TestDeploymentCap(t *testing.T) {
	s := game.NewGame()
	s.Players[0].ActionsRemaining = 10
	for i := 0; i < game.MaxDeploymentsPerType; i++ {
		var err error
		s, err = ApplyDeployUnit(s, game.Cavalry, at(1, i+1))
		if err != nil {
			t.Fatalf("deployment %d should succeed: %v", i+1, err)
		}
	}
	if _, err := ApplyDeployUnit(s, game.Cavalry, at(1, 4)); !errors.Is(err, ErrDeploymentCapReached) {
		t.Fatalf("fourth cavalry must fail with ErrDeploymentCapReached, got %v", err)
	}
	// A different type is unaffected.
	if err := CanDeploy(s, game.Archer, at(1, 4)); err != nil {
		t.Fatalf("other types should still deploy: %v", err)
	}
}

func TestFreeDeploymentConsumedFirst(t *testing.T) {
	s := game.NewGame()
	s.FreeDeploymentsRemaining = 1

	next, err := ApplyDeployUnit(s, game.Spearman, at(1, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.FreeDeploymentsRemaining != 0 {
		t.Fatal("free deployment not consumed")
	}
	if next.Players[0].ActionsRemaining != 1 {
		t.Fatal("a free deployment must not spend an action")
	}
	if next.HasActedThisTurn {
		t.Fatal("a free deployment must not mark the turn as acted")
	}
}

func TestFreeDeploymentForfeitedAfterActing(t *testing.T) {
	s := game.NewGame()
	s.FreeDeploymentsRemaining = 2
	s.HasActedThisTurn = true
	s.Players[0].ActionsRemaining = 0

	if _, err := ApplyDeployUnit(s, game.Spearman, at(1, 2)); !errors.Is(err, ErrNoActionsRemaining) {
		t.Fatalf("free deployments are forfeited once an action was taken, got %v", err)
	}
}

func TestDeployRejectionLeavesStateUntouched(t *testing.T) {
	s := put(game.NewGame(), "u1", 0, game.Archer, 1, 3)
	next, err := ApplyDeployUnit(s, game.Swordsman, at(1, 3))
	if err == nil {
		t.Fatal("expected rejection")
	}
	if !reflect.DeepEqual(s, next) {
		t.Fatal("rejected action must return the input state unchanged")
	}
}
