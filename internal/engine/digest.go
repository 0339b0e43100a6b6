package engine

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/novusx/novusx-server/internal/game"
)

// StateDigest computes a deterministic digest over the parts of a snapshot
// that define a position: tile occupancy (type and owner per cell), control
// point ownership and the player to move. Identical positions always hash
// identically, which grounds both repeated-state draw detection and
// client/server snapshot reconciliation.
func StateDigest(s game.GameState) string {
	var b strings.Builder
	for i := range s.Board {
		t := s.Board[i]
		if t.Empty() {
			fmt.Fprintf(&b, "%d,%d:empty|", t.Position.Row, t.Position.Col)
			continue
		}
		fmt.Fprintf(&b, "%d,%d:%s:%d|", t.Position.Row, t.Position.Col, t.Unit.Type, t.Unit.Owner)
	}
	for _, cp := range s.ControlOwners() {
		fmt.Fprintf(&b, "cp%d,%d:%d|", cp.Position.Row, cp.Position.Col, cp.Owner)
	}
	fmt.Fprintf(&b, "player:%d", s.CurrentPlayer)

	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
