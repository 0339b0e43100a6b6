package service

import (
	"testing"

	"github.com/novusx/novusx-server/internal/game"
)

func TestHandleTimedOutMatch_ForfeitsIdlePlayer(t *testing.T) {
	repo := newMockRepo()
	g := runningMatch(repo)

	if err := HandleTimedOutMatch(repo, g.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Status != game.StatusFinished {
		t.Fatalf("status = %q", g.Status)
	}
	// Seat 0 was on the clock, so seat 1 takes the win.
	if g.Winner != "uuid-ben" {
		t.Fatalf("winner = %q", g.Winner)
	}
	if g.Outcome != game.OutcomeAbandoned {
		t.Fatalf("outcome = %q", g.Outcome)
	}
	if !g.StatsCounted || !repo.statsCalled {
		t.Fatal("expiring a match must count stats")
	}
	if !g.ActionDeadline.IsZero() {
		t.Fatal("deadline must clear when the match expires")
	}
}

func TestHandleTimedOutMatch_IgnoresFinishedMatch(t *testing.T) {
	repo := newMockRepo()
	g := runningMatch(repo)
	g.Status = game.StatusFinished
	g.Winner = "uuid-ada"

	if err := HandleTimedOutMatch(repo, g.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Winner != "uuid-ada" {
		t.Fatal("finished matches must not be rewritten")
	}
}
