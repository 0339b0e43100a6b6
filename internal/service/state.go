package service

import (
	"encoding/json"
	"fmt"

	"github.com/novusx/novusx-server/internal/engine"
	"github.com/novusx/novusx-server/internal/game"
)

func newArbiter() engine.DrawTracker {
	return engine.NewDrawTracker()
}

// readState decodes the persisted snapshot and draw-arbitration documents.
// A match record that fails here is corrupt; the error is not recoverable by
// the player.
func readState(m *game.Match) (game.GameState, engine.DrawTracker, error) {
	state, err := game.DecodeSnapshot([]byte(m.Snapshot))
	if err != nil {
		return game.GameState{}, engine.DrawTracker{}, fmt.Errorf("match %d snapshot: %w", m.ID, err)
	}
	tracker := newArbiter()
	if m.Arbiter != "" {
		if err := json.Unmarshal([]byte(m.Arbiter), &tracker); err != nil {
			return game.GameState{}, engine.DrawTracker{}, fmt.Errorf("match %d arbiter: %w", m.ID, err)
		}
		if tracker.DigestCounts == nil {
			tracker.DigestCounts = map[string]int{}
		}
	}
	return state, tracker, nil
}

// writeState serializes the snapshot and tracker back into the match record
// and mirrors the turn counter for list views.
func writeState(m *game.Match, s game.GameState, t engine.DrawTracker) error {
	snap, err := game.EncodeSnapshot(s)
	if err != nil {
		return err
	}
	arb, err := json.Marshal(t)
	if err != nil {
		return err
	}
	m.Snapshot = string(snap)
	m.Arbiter = string(arb)
	m.TurnNumber = s.TurnNumber
	return nil
}
