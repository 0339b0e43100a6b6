package engine

import (
	"testing"

	"github.com/novusx/novusx-server/internal/game"
)

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b game.Position
		want int
	}{
		{at(1, 1), at(1, 1), 0},
		{at(1, 1), at(1, 2), 1},
		{at(3, 3), at(2, 3), 1},
		{at(1, 1), at(2, 2), 2}, // diagonal adjacency costs 2
		{at(3, 3), at(2, 4), 2},
		{at(1, 1), at(1, 3), 2},
		{at(1, 1), at(3, 1), 2},
		{at(1, 1), at(2, 3), 3},
		{at(1, 1), at(5, 5), 8},
	}
	for _, c := range cases {
		if got := Distance(c.a, c.b); got != c.want {
			t.Errorf("Distance(%s, %s) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestDistanceSymmetry(t *testing.T) {
	for i := 0; i < game.NumTiles; i++ {
		for j := 0; j < game.NumTiles; j++ {
			a, b := game.PositionAt(i), game.PositionAt(j)
			if Distance(a, b) != Distance(b, a) {
				t.Fatalf("Distance not symmetric for %s and %s", a, b)
			}
		}
	}
}
