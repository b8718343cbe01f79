package tower

import (
	"fmt"

	"github.com/lawnchairsociety/delver/internal/items"
	"github.com/lawnchairsociety/delver/internal/stats"
	"github.com/lawnchairsociety/delver/internal/world"
)

// Shop stocking odds
const (
	firstScrollChance  = 0.40
	secondScrollChance = 0.30
	discountChance     = 0.35
	keyStockChance     = 0.40
	armorStockChance   = 0.35
	lifeCrystalChance  = 0.10
	otherCrystalChance = 0.05
	potionStockChance  = 0.60
	waypointStock      = 0.30
	scrollPriceFactor  = 0.7
)

func (g *Generator) generateShop(c world.Coord, learned []string) *world.Shop {
	distance := stats.Distance(c.X, c.Y)
	shop := &world.Shop{
		SpellScrolls:      make(map[string]int),
		SpellScrollPrices: make(map[string]int),
		Discount:          1,
	}

	for n := g.r.Between(0, 2); n > 0; n-- {
		w := items.GenerateWeapon(g.r, distance)
		bonus := g.r.Between(1, 3)
		w.Name = fmt.Sprintf("%s+%d", w.Name, bonus)
		if w.HasDamage() {
			w.Damage += bonus
		}
		if !w.Broken {
			w.Durability += bonus
		}
		w.MaxDurability += bonus
		shop.Weapons = append(shop.Weapons, world.WeaponListing{Weapon: w, Cost: g.r.Between(10, 25)})
	}

	if g.r.Chance(firstScrollChance) {
		available := g.spells.Unlearned(learned)
		if len(available) > 0 {
			first := g.r.Pick(len(available))
			shop.SpellScrolls[available[first]] = 1
			if g.r.Chance(secondScrollChance) && len(available) > 1 {
				rest := append(append([]string(nil), available[:first]...), available[first+1:]...)
				shop.SpellScrolls[rest[g.r.Pick(len(rest))]] = 1
			}
		}
	}

	if g.r.Chance(discountChance) {
		shop.Discount = world.DiscountMultiplier
	}

	shop.PotionPrice = shop.Price(g.r.Between(8, 15))
	shop.StaminaPotionPrice = shop.Price(g.r.Between(6, 12))
	shop.ManaPotionPrice = shop.Price(g.r.Between(15, 20))

	if g.r.Chance(keyStockChance) {
		shop.GoldenKeys = 1
	}
	shop.KeyPrice = shop.Price(world.KeyBasePrice)

	if g.r.Chance(armorStockChance) {
		shop.Armor = items.GenerateArmor(g.r, distance)
	}
	shop.ArmorPrice = shop.Price(world.ArmorBasePrice)

	shop.LifeCrystal = g.r.Chance(lifeCrystalChance)
	shop.StaminaCrystal = g.r.Chance(otherCrystalChance)
	shop.ManaCrystal = g.r.Chance(otherCrystalChance)
	shop.CrystalPrice = shop.Price(world.CrystalBasePrice)

	shop.HealthPotions = g.r.Between(2, 4)
	if g.r.Chance(potionStockChance) {
		shop.StaminaPotions = g.r.Between(1, 2)
	}
	if g.r.Chance(potionStockChance) {
		shop.ManaPotions = g.r.Between(1, 2)
	}
	if g.r.Chance(waypointStock) {
		shop.WaypointScrolls = g.r.Between(1, 2)
	}
	shop.WaypointScrollPrice = shop.Price(g.r.Between(25, 35))

	for i := range shop.Weapons {
		shop.Weapons[i].Cost = shop.Price(shop.Weapons[i].Cost)
	}
	for _, name := range g.spells.Names() {
		if shop.SpellScrolls[name] == 0 {
			continue
		}
		base := float64(g.r.Between(40, 80)) * scrollPriceFactor
		if shop.IsDiscount() {
			base *= shop.Discount
		}
		shop.SpellScrollPrices[name] = int(base)
	}

	return shop
}
