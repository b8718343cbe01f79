package items

import (
	"math"

	"github.com/lawnchairsociety/delver/internal/stats"
)

// spellBookRepairRate is the flat per-point repair price for spell books
const spellBookRepairRate = 3

// RepairRate is the gold charged per missing durability point
func (w *Weapon) RepairRate() int {
	if !w.HasDamage() {
		return spellBookRepairRate
	}
	return max(1, w.Damage/4)
}

// MissingDurability is how many points a repair would restore
func (w *Weapon) MissingDurability() int {
	return max(0, w.MaxDurability-w.Durability)
}

// RepairCost is the total gold needed to restore full durability
func (w *Weapon) RepairCost() int {
	return w.RepairRate() * w.MissingDurability()
}

// Repair restores full durability. A weapon that spawned broken also loses
// its glass-cannon profile and, if it casts with mana, gets a fresh cost.
func (w *Weapon) Repair(r *stats.Roller) {
	w.Durability = w.MaxDurability
	if !w.Broken {
		return
	}
	w.Broken = false
	if w.HasDamage() {
		// rounding up undoes the truncated multiply in breakWeapon
		w.Damage = int(math.Ceil(float64(w.Damage) / BrokenDamageFactor))
	}
	w.CritChance = BaseCritChance
	w.CritMultiplier = BaseCritMultiplier
	if w.RequiresMana {
		w.ManaCost = staffManaCost(r, w.Damage, false)
	}
}

// RepairRate is the gold charged per missing durability point
func (a *Armor) RepairRate() int {
	return max(1, a.Defense/3)
}

// MissingDurability is how many points a repair would restore
func (a *Armor) MissingDurability() int {
	return max(0, a.MaxDurability-a.Durability)
}

// RepairCost is the total gold needed to restore full durability
func (a *Armor) RepairCost() int {
	return a.RepairRate() * a.MissingDurability()
}

// Repair restores full durability and clears the broken flag
func (a *Armor) Repair() {
	a.Durability = a.MaxDurability
	a.Broken = false
}
