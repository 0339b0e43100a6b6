package engine

import (
	"testing"

	"github.com/novusx/novusx-server/internal/game"
)

func TestLineOfSight(t *testing.T) {
	s := game.NewGame()
	s = put(s, "a", 0, game.Archer, 1, 1)
	s = put(s, "b", 1, game.Swordsman, 1, 3)

	if !HasLineOfSight(s, at(1, 1), at(1, 3)) {
		t.Fatal("clear horizontal line should have sight")
	}
	if !HasLineOfSight(s, at(1, 1), at(3, 1)) {
		t.Fatal("clear vertical line should have sight")
	}

	blocked := put(s, "wall", 0, game.Shieldman, 1, 2)
	if HasLineOfSight(blocked, at(1, 1), at(1, 3)) {
		t.Fatal("occupied intermediate tile should block sight")
	}
}

func TestLineOfSightDiagonalAdjacency(t *testing.T) {
	s := game.NewGame()
	if !HasLineOfSight(s, at(2, 2), at(3, 3)) {
		t.Fatal("diagonal adjacency has no intermediate tile and is always clear")
	}
}

func TestLineOfSightNonStraight(t *testing.T) {
	s := game.NewGame()
	// A knight-shaped offset is neither straight nor diagonally adjacent.
	if HasLineOfSight(s, at(1, 1), at(2, 3)) {
		t.Fatal("non-straight path beyond adjacency must have no sight")
	}
	// Distant diagonals are not straight lines either.
	if HasLineOfSight(s, at(1, 1), at(3, 3)) {
		t.Fatal("long diagonal must have no sight")
	}
}
