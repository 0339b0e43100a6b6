package service

import (
	"errors"
	"testing"
	"time"

	"github.com/novusx/novusx-server/internal/engine"
	"github.com/novusx/novusx-server/internal/game"
)

func TestSubmitAction_DeployPersistsSnapshot(t *testing.T) {
	repo := newMockRepo()
	g := runningMatch(repo)

	action := engine.Action{
		Kind:     engine.ActionDeploy,
		UnitType: game.Swordsman,
		Target:   game.Position{Row: 1, Col: 3},
	}
	got, ended, err := SubmitAction(repo, g.ID, "uuid-ada", action, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ended {
		t.Fatal("a single deploy must not end the match")
	}
	state, _, err := readState(got)
	if err != nil {
		t.Fatalf("read state: %v", err)
	}
	u, ok := state.UnitAt(game.Position{Row: 1, Col: 3})
	if !ok || u.Type != game.Swordsman || u.Owner != 0 {
		t.Fatalf("deployed unit missing from persisted snapshot: %+v ok=%v", u, ok)
	}
	if repo.updated == nil {
		t.Fatal("match was not persisted")
	}
}

func TestSubmitAction_RejectsOutOfTurn(t *testing.T) {
	repo := newMockRepo()
	g := runningMatch(repo)

	_, _, err := SubmitAction(repo, g.ID, "uuid-ben", engine.Action{Kind: engine.ActionEndTurn}, time.Minute)
	if !errors.Is(err, engine.ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}
	if repo.updated != nil {
		t.Fatal("rejected action must not persist")
	}
}

func TestSubmitAction_IllegalActionLeavesSnapshot(t *testing.T) {
	repo := newMockRepo()
	g := runningMatch(repo)
	before := g.Snapshot

	action := engine.Action{
		Kind:     engine.ActionDeploy,
		UnitType: game.Archer,
		Target:   game.Position{Row: 3, Col: 3},
	}
	_, _, err := SubmitAction(repo, g.ID, "uuid-ada", action, time.Minute)
	if !errors.Is(err, engine.ErrInvalidRow) {
		t.Fatalf("expected ErrInvalidRow, got %v", err)
	}
	if g.Snapshot != before {
		t.Fatal("rejected action must leave the stored snapshot untouched")
	}
}

func TestSubmitAction_EndTurnResetsDeadline(t *testing.T) {
	repo := newMockRepo()
	g := runningMatch(repo)
	g.ActionDeadline = time.Now().Add(-time.Second)

	got, ended, err := SubmitAction(repo, g.ID, "uuid-ada", engine.Action{Kind: engine.ActionEndTurn}, time.Minute)
	if err != nil || ended {
		t.Fatalf("end turn failed: ended=%v err=%v", ended, err)
	}
	if !got.ActionDeadline.After(time.Now()) {
		t.Fatal("passing the turn must reset the action deadline")
	}
	state, _, _ := readState(got)
	if state.CurrentPlayer != 1 {
		t.Fatalf("turn did not pass, current player %d", state.CurrentPlayer)
	}
	if got.TurnNumber != state.TurnNumber {
		t.Fatal("match record must mirror the snapshot turn counter")
	}
}

func TestSubmitAction_ControlVictoryFinishesMatch(t *testing.T) {
	repo := newMockRepo()
	g := runningMatch(repo)

	state := game.NewGame()
	for i, pos := range []game.Position{{Row: 3, Col: 1}, {Row: 3, Col: 3}, {Row: 3, Col: 4}} {
		state.Board[pos.Index()].Unit = game.Unit{
			ID: []string{"a", "b", "c"}[i], Owner: 0, Type: game.Swordsman, Position: pos,
		}
	}
	if err := writeState(g, state, newArbiter()); err != nil {
		t.Fatalf("write state: %v", err)
	}

	action := engine.Action{
		Kind:   engine.ActionMove,
		UnitID: "c",
		Target: game.Position{Row: 3, Col: 5},
	}
	got, ended, err := SubmitAction(repo, g.ID, "uuid-ada", action, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ended {
		t.Fatal("occupying all three control points must end the match")
	}
	if got.Status != game.StatusFinished {
		t.Fatalf("status = %q", got.Status)
	}
	if got.Winner != "uuid-ada" {
		t.Fatalf("winner = %q", got.Winner)
	}
	if got.Outcome != game.OutcomeControlVictory {
		t.Fatalf("outcome = %q", got.Outcome)
	}
	if !repo.statsCalled || !got.StatsCounted {
		t.Fatal("finishing a match must count stats exactly once")
	}
	if !got.ActionDeadline.IsZero() {
		t.Fatal("finished matches must not carry a deadline")
	}
}

func TestSubmitAction_MatchNotInProgress(t *testing.T) {
	repo := newMockRepo()
	g := runningMatch(repo)
	g.Status = game.StatusFinished

	_, _, err := SubmitAction(repo, g.ID, "uuid-ada", engine.Action{Kind: engine.ActionEndTurn}, time.Minute)
	if !errors.Is(err, ErrMatchNotInProgress) {
		t.Fatalf("expected ErrMatchNotInProgress, got %v", err)
	}
}

func TestSubmitAction_UnknownPlayer(t *testing.T) {
	repo := newMockRepo()
	g := runningMatch(repo)

	_, _, err := SubmitAction(repo, g.ID, "uuid-ghost", engine.Action{Kind: engine.ActionEndTurn}, time.Minute)
	if !errors.Is(err, ErrPlayerNotInMatch) {
		t.Fatalf("expected ErrPlayerNotInMatch, got %v", err)
	}
}
