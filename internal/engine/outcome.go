package engine

import "github.com/novusx/novusx-server/internal/game"

// Outcome is the terminal evaluation of a position.
type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomePlayer0Win
	OutcomePlayer1Win
	OutcomeDraw
)

// Winner returns the winning seat for a decided outcome.
func (o Outcome) Winner() (int, bool) {
	switch o {
	case OutcomePlayer0Win:
		return 0, true
	case OutcomePlayer1Win:
		return 1, true
	}
	return 0, false
}

// DrawReason explains why a draw was declared.
type DrawReason int

const (
	DrawNone DrawReason = iota
	DrawMaxTurns
	DrawRepeatedState
	DrawNoProgress
)

// Draw arbitration limits.
const (
	// MaxTurnLimit forces a draw on marathon games.
	MaxTurnLimit = 1000
	// RepeatedStateLimit draws the game when the same position recurs
	// this many times.
	RepeatedStateLimit = 10
	// NoProgressTurnLimit draws the game after this many consecutive
	// turns with neither a control-point change nor a unit death.
	NoProgressTurnLimit = 100
)

// DrawTracker accumulates the history a draw ruling needs. It is a value:
// Observe returns an updated copy and never mutates its receiver, so the
// engine stays stateless and the session layer owns the history. The zero
// value (plus NewDrawTracker's map) is ready for turn 1.
type DrawTracker struct {
	DigestCounts      map[string]int `json:"digest_counts"`
	TurnsSinceCapture int            `json:"turns_since_capture"`
	TurnsSinceDeath   int            `json:"turns_since_death"`
}

// NewDrawTracker returns an empty tracker for a fresh game.
func NewDrawTracker() DrawTracker {
	return DrawTracker{DigestCounts: make(map[string]int)}
}

func (t DrawTracker) clone() DrawTracker {
	out := t
	out.DigestCounts = make(map[string]int, len(t.DigestCounts)+1)
	for k, v := range t.DigestCounts {
		out.DigestCounts[k] = v
	}
	return out
}

// Observe folds one applied action (prev -> next) into the tracker and rules
// on the resulting position: control victory first, then elimination, then
// the draw conditions in order (max turns, repetition, no progress).
func (t DrawTracker) Observe(prev, next game.GameState) (DrawTracker, Outcome, DrawReason) {
	out := t.clone()

	if ownershipChanged(prev, next) {
		out.TurnsSinceCapture = 0
	}
	if next.CountUnits(0)+next.CountUnits(1) < prev.CountUnits(0)+prev.CountUnits(1) {
		out.TurnsSinceDeath = 0
	}
	if next.TurnNumber > prev.TurnNumber {
		out.TurnsSinceCapture++
		out.TurnsSinceDeath++
	}

	for player := 0; player <= 1; player++ {
		if CheckWin(next, player) {
			return out, winOutcome(player), DrawNone
		}
	}
	if winner, ok := CheckElimination(next); ok {
		return out, winOutcome(winner), DrawNone
	}

	if next.TurnNumber >= MaxTurnLimit {
		return out, OutcomeDraw, DrawMaxTurns
	}
	digest := StateDigest(next)
	out.DigestCounts[digest]++
	if out.DigestCounts[digest] >= RepeatedStateLimit {
		return out, OutcomeDraw, DrawRepeatedState
	}
	if out.TurnsSinceCapture >= NoProgressTurnLimit && out.TurnsSinceDeath >= NoProgressTurnLimit {
		return out, OutcomeDraw, DrawNoProgress
	}
	return out, OutcomeInProgress, DrawNone
}

func winOutcome(player int) Outcome {
	if player == 0 {
		return OutcomePlayer0Win
	}
	return OutcomePlayer1Win
}

func ownershipChanged(prev, next game.GameState) bool {
	p, n := prev.ControlOwners(), next.ControlOwners()
	for i := range p {
		if p[i].Owner != n[i].Owner {
			return true
		}
	}
	return false
}
