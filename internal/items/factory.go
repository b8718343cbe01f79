package items

import (
	"github.com/lawnchairsociety/delver/internal/stats"
)

// BrokenSpawnChance is the probability a generated item spawns broken
const BrokenSpawnChance = 0.04

// Armor names for ground and shop armor
var armorNames = []string{"Leather Armor", "Iron Mail", "Bone Plate", "Troll Hide"}

// Armor names for chest loot
var chestArmorNames = []string{"Enchanted Mail", "Reinforced Hide", "Darksteel Vest", "Trollbone Harness"}

// GenerateWeapon rolls a weapon for content found at the given distance
// from the floor origin
func GenerateWeapon(r *stats.Roller, distance int) *Weapon {
	budget := stats.BudgetAt(distance)
	baseDamage := r.Between(5, 10)
	baseDurability := r.Between(5, 15)
	damageBonus := budget * r.Between(1, 2)
	durabilityBonus := budget * r.Between(1, 2)
	kind := GeneratedKinds[r.Pick(len(GeneratedKinds))]
	broken := r.Chance(BrokenSpawnChance)

	w := &Weapon{
		Name:           kind.String(),
		Kind:           kind,
		Damage:         baseDamage + damageBonus,
		Durability:     baseDurability + durabilityBonus,
		CritChance:     BaseCritChance,
		CritMultiplier: BaseCritMultiplier,
	}

	switch kind {
	case MagicStaff:
		w.Damage += r.Between(1, 3)
		w.RequiresMana = true
		w.Durability += r.Between(5, 8)
	case SpellBook:
		w.Damage = 0
		w.Durability = r.Between(15, 25) + durabilityBonus + r.Between(5, 8)
	case Sword:
		w.Damage += r.Between(2, 4)
		w.Durability += r.Between(3, 5)
	}

	w.MaxDurability = w.Durability
	if broken {
		breakWeapon(w)
	}
	if w.RequiresMana {
		w.ManaCost = staffManaCost(r, w.Damage, broken)
	}
	return w
}

// GenerateChestWeapon rolls chest loot, which scales a few rooms further out
// than where the chest stands
func GenerateChestWeapon(r *stats.Roller, distance int) *Weapon {
	return GenerateWeapon(r, distance+r.Between(3, 5))
}

// GenerateArmor rolls armor for the given distance
func GenerateArmor(r *stats.Roller, distance int) *Armor {
	budget := stats.BudgetAt(distance)
	baseDefense := r.Between(2, 4)
	baseDurability := r.Between(8, 15)
	broken := r.Chance(BrokenSpawnChance)
	durability := baseDurability + budget*r.Between(0, 1)

	a := &Armor{
		Name:          armorNames[r.Pick(len(armorNames))],
		Defense:       baseDefense + budget*r.Between(0, 1),
		Durability:    durability,
		MaxDurability: durability,
	}
	if broken {
		a.Durability = 0
		a.Broken = true
	}
	return a
}

// GenerateChestArmor rolls the stronger armor found in chests
func GenerateChestArmor(r *stats.Roller, distance int) *Armor {
	budget := stats.BudgetAt(distance + r.Between(3, 5))
	defense := r.Between(3, 6) + budget*r.Between(1, 2)
	durability := r.Between(8, 15) + budget*r.Between(1, 2)
	broken := r.Chance(BrokenSpawnChance)

	a := &Armor{
		Name:          chestArmorNames[r.Pick(len(chestArmorNames))],
		Defense:       defense,
		Durability:    durability,
		MaxDurability: durability,
	}
	if broken {
		a.Durability = 0
		a.Broken = true
	}
	return a
}

// TrollHide is the vault reward armor
func TrollHide(distance int) *Armor {
	budget := stats.BudgetAt(distance)
	return &Armor{
		Name:          "Troll Hide",
		Defense:       6 + budget,
		Durability:    20 + 2*budget,
		MaxDurability: 20 + 2*budget,
	}
}

// StarterSword is the weapon lying next to the training dummy
func StarterSword() *Weapon {
	return &Weapon{
		Name:           "Rusty Sword",
		Kind:           Sword,
		Damage:         5,
		Durability:     10,
		MaxDurability:  10,
		CritChance:     BaseCritChance,
		CritMultiplier: BaseCritMultiplier,
	}
}

// breakWeapon applies the broken-spawn profile. MaxDurability keeps the
// durability the weapon would have had so a repair can restore it.
func breakWeapon(w *Weapon) {
	w.Durability = 0
	w.Broken = true
	if w.HasDamage() {
		w.Damage = int(float64(w.Damage) * BrokenDamageFactor)
		w.CritChance = BrokenCritChance
		w.CritMultiplier = BrokenCritMultiplier
	}
}

func staffManaCost(r *stats.Roller, damage int, broken bool) int {
	jitter := r.Between(-2, 2)
	if broken {
		return max(5, int(float64(damage+jitter)*0.75))
	}
	return max(10, damage+jitter)
}
