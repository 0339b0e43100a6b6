package game

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UnitType is the closed set of deployable unit kinds. The zero value means
// "no unit" and is what an empty tile carries.
type UnitType uint8

const (
	UnitNone UnitType = iota
	Swordsman
	Shieldman
	Axeman
	Cavalry
	Archer
	Spearman
)

// NumUnitTypes counts the deployable types (UnitNone excluded).
const NumUnitTypes = 6

var unitTypeNames = [NumUnitTypes + 1]string{
	UnitNone:  "none",
	Swordsman: "swordsman",
	Shieldman: "shieldman",
	Axeman:    "axeman",
	Cavalry:   "cavalry",
	Archer:    "archer",
	Spearman:  "spearman",
}

// UnitTypes lists every deployable type in declaration order.
func UnitTypes() [NumUnitTypes]UnitType {
	return [NumUnitTypes]UnitType{Swordsman, Shieldman, Axeman, Cavalry, Archer, Spearman}
}

func (t UnitType) Valid() bool {
	return t >= Swordsman && t <= Spearman
}

func (t UnitType) String() string {
	if int(t) < len(unitTypeNames) {
		return unitTypeNames[t]
	}
	return fmt.Sprintf("unit_type(%d)", uint8(t))
}

// ParseUnitType resolves a lowercase type name as used on the wire.
func ParseUnitType(s string) (UnitType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range unitTypeNames {
		if n == name && UnitType(i).Valid() {
			return UnitType(i), nil
		}
	}
	return UnitNone, fmt.Errorf("unknown unit type %q", s)
}

// MoveRange returns how far the unit may move in one action. Cavalry covers
// two tiles, everything else one.
func (t UnitType) MoveRange() int {
	if t == Cavalry {
		return 2
	}
	return 1
}

// AttackRange returns the maximum engagement distance. Archer and Spearman
// reach two tiles, everything else fights adjacent only.
func (t UnitType) AttackRange() int {
	if t == Archer || t == Spearman {
		return 2
	}
	return 1
}

// MarshalJSON emits the type name so snapshots stay readable and stable
// across the client/server boundary.
func (t UnitType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *UnitType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "none" || s == "" {
		*t = UnitNone
		return nil
	}
	parsed, err := ParseUnitType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Unit is a piece on the board. Type is carried as a first-class field; the
// ID is an opaque handle and is never parsed for meaning.
type Unit struct {
	ID            string   `json:"id"`
	Owner         int      `json:"owner"`
	Type          UnitType `json:"type"`
	Position      Position `json:"position"`
	ActedThisTurn bool     `json:"acted_this_turn"`
}
