package items

import (
	"strings"
)

// WeaponKind is the archetype a weapon was generated as
type WeaponKind int

const (
	KindOther WeaponKind = iota
	Sword
	Bow
	MagicStaff
	Dagger
	Axe
	SpellBook
)

// GeneratedKinds lists the archetypes the factory rolls from, in roll order
var GeneratedKinds = []WeaponKind{Sword, Bow, MagicStaff, Dagger, Axe, SpellBook}

// String returns the display name of a WeaponKind
func (k WeaponKind) String() string {
	switch k {
	case Sword:
		return "Sword"
	case Bow:
		return "Bow"
	case MagicStaff:
		return "Magic Staff"
	case Dagger:
		return "Dagger"
	case Axe:
		return "Axe"
	case SpellBook:
		return "Spell Book"
	default:
		return "Weapon"
	}
}

// KindFromName infers the archetype from a weapon name such as
// "Magic Staff+2" or "Rusty Sword". Unknown names map to KindOther.
func KindFromName(name string) WeaponKind {
	base := name
	if i := strings.LastIndex(base, "+"); i > 0 {
		base = base[:i]
	}
	base = strings.ToLower(strings.TrimSpace(base))

	// Longest names first so "Magic Staff" is not read as something shorter
	for _, k := range []WeaponKind{MagicStaff, SpellBook, Dagger, Sword, Bow, Axe} {
		if strings.Contains(base, strings.ToLower(k.String())) {
			return k
		}
	}
	return KindOther
}

// Base crit profile for intact weapons, and the glass-cannon profile
// broken weapons spawn with
const (
	BaseCritChance       = 0.05
	BaseCritMultiplier   = 2.0
	BrokenCritChance     = 0.25
	BrokenCritMultiplier = 3.0
	BrokenDamageFactor   = 1.5
)

// Carry limits
const (
	MaxWeapons = 3
	MaxArmor   = 2
)
