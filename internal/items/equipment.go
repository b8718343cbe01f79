package items

import "fmt"

// Weapon is a wieldable item. Damage is meaningless for spell books,
// whose power comes from learned spells.
type Weapon struct {
	Name           string
	Kind           WeaponKind
	Damage         int
	Durability     int
	MaxDurability  int
	RequiresMana   bool
	ManaCost       int
	CritChance     float64
	CritMultiplier float64
	Broken         bool
}

// HasDamage reports whether the weapon exposes numeric damage
func (w *Weapon) HasDamage() bool {
	return w.Kind != SpellBook
}

// Usable reports whether the weapon can be attacked with
func (w *Weapon) Usable() bool {
	return !w.Broken && w.Durability > 0
}

// Wear removes one point of durability and reports whether the weapon is
// now worn out. Durability never drops below zero.
func (w *Weapon) Wear() bool {
	if w.Durability > 0 {
		w.Durability--
	}
	return w.Durability == 0
}

// CritProfile returns the effective crit chance and multiplier.
// Daggers crit more often and Axes hit harder on a crit.
func (w *Weapon) CritProfile() (chance, multiplier float64) {
	chance, multiplier = w.CritChance, w.CritMultiplier
	if multiplier < 1 {
		multiplier = BaseCritMultiplier
	}
	switch w.Kind {
	case Dagger:
		chance += 0.15
		multiplier = max(multiplier, 2.6)
	case Axe:
		multiplier = max(multiplier, 2.8)
	}
	return chance, multiplier
}

// DamageLabel renders damage for display, "???" for spell books
func (w *Weapon) DamageLabel() string {
	if !w.HasDamage() {
		return "???"
	}
	return fmt.Sprintf("%d", w.Damage)
}

// Armor reduces incoming damage while equipped
type Armor struct {
	Name          string
	Defense       int
	Durability    int
	MaxDurability int
	Broken        bool
}

// Usable reports whether the armor can be equipped
func (a *Armor) Usable() bool {
	return !a.Broken && a.Durability > 0
}

// Wear removes one point of durability and reports whether the armor is
// now worn out
func (a *Armor) Wear() bool {
	if a.Durability > 0 {
		a.Durability--
	}
	return a.Durability == 0
}

// Reduction is the flat damage the armor absorbs against a given pierce
func (a *Armor) Reduction(pierce int) int {
	return max(0, a.Defense/2-pierce)
}
