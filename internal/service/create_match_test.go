package service

import (
	"errors"
	"testing"
	"time"

	"github.com/novusx/novusx-server/internal/game"
)

func TestJoinMatch_StartsWhenFull(t *testing.T) {
	repo := newMockRepo()
	m, err := CreateMatch(repo, CreateMatchRequest{
		Name: "evening game", JoinCode: "ZZZZZZ",
		PlayerUUID: "uuid-ada", PlayerName: "Ada",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.Status != game.StatusWaiting || len(m.Players) != 1 {
		t.Fatalf("fresh match: status=%q players=%d", m.Status, len(m.Players))
	}

	joined, err := JoinMatch(repo, "ZZZZZZ", "uuid-ben", "Ben", time.Minute)
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if joined.Status != game.StatusInProgress {
		t.Fatalf("status after second join = %q", joined.Status)
	}
	state, _, err := readState(joined)
	if err != nil {
		t.Fatalf("read state: %v", err)
	}
	if state.TurnNumber != 1 || state.CurrentPlayer != 0 {
		t.Fatalf("opening position wrong: turn=%d current=%d", state.TurnNumber, state.CurrentPlayer)
	}
	if joined.ActionDeadline.IsZero() {
		t.Fatal("starting a match must arm the action deadline")
	}
	if p := joined.PlayerByUUID("uuid-ben"); p == nil || p.Seat != 1 {
		t.Fatal("second player must take seat 1")
	}
}

func TestJoinMatch_RejectsDoubleJoin(t *testing.T) {
	repo := newMockRepo()
	if _, err := CreateMatch(repo, CreateMatchRequest{
		JoinCode: "ZZZZZZ", PlayerUUID: "uuid-ada", PlayerName: "Ada",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := JoinMatch(repo, "ZZZZZZ", "uuid-ada", "Ada", time.Minute); !errors.Is(err, ErrAlreadyJoined) {
		t.Fatalf("expected ErrAlreadyJoined, got %v", err)
	}
	if _, err := JoinMatch(repo, "NOPE", "uuid-ben", "Ben", time.Minute); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestJoinMatch_RejectsRunningMatch(t *testing.T) {
	repo := newMockRepo()
	runningMatch(repo)

	if _, err := JoinMatch(repo, "AAAAAA", "uuid-eve", "Eve", time.Minute); !errors.Is(err, ErrMatchNotJoinable) {
		t.Fatalf("expected ErrMatchNotJoinable, got %v", err)
	}
}
