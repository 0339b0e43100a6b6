package engine

import "github.com/novusx/novusx-server/internal/game"

// beatSet is a bitmask over unit types. Bit i set means the relation holds
// against game.UnitType(i). Fixed-size arrays indexed by the closed enum keep
// the tables exhaustive by construction.
type beatSet uint8

func set(types ...game.UnitType) beatSet {
	var s beatSet
	for _, t := range types {
		s |= 1 << t
	}
	return s
}

func (s beatSet) has(t game.UnitType) bool {
	return s&(1<<t) != 0
}

// meleeBeats is the canonical melee "defeats" relation. It is deliberately
// not antisymmetric: Cavalry and Spearman defeat each other, as does every
// type against itself, which resolves as mutual removal.
var meleeBeats = [game.NumUnitTypes + 1]beatSet{
	game.Swordsman: set(game.Swordsman, game.Axeman, game.Cavalry, game.Archer, game.Spearman),
	game.Shieldman: set(game.Archer),
	game.Axeman:    set(game.Axeman, game.Shieldman, game.Cavalry, game.Archer, game.Spearman),
	game.Cavalry:   set(game.Cavalry, game.Archer, game.Spearman),
	game.Archer:    set(game.Archer),
	game.Spearman:  set(game.Spearman, game.Shieldman, game.Cavalry, game.Archer),
}

// rangedBeats covers the two types able to attack at distance 2. Shieldman
// never appears here; its ranged immunity is enforced before the table is
// consulted.
var rangedBeats = [game.NumUnitTypes + 1]beatSet{
	game.Archer:   set(game.Archer, game.Cavalry, game.Axeman, game.Swordsman, game.Spearman),
	game.Spearman: set(game.Archer, game.Cavalry, game.Spearman),
}

// MeleeBeats reports whether attacker defeats defender in melee.
func MeleeBeats(attacker, defender game.UnitType) bool {
	return meleeBeats[attacker].has(defender)
}

// RangedBeats reports whether attacker defeats defender at range.
func RangedBeats(attacker, defender game.UnitType) bool {
	return rangedBeats[attacker].has(defender)
}

// CanAttackRanged reports whether the type has a ranged table at all.
func CanAttackRanged(t game.UnitType) bool {
	return rangedBeats[t] != 0
}
