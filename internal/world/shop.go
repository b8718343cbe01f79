package world

import "github.com/lawnchairsociety/delver/internal/items"

// DiscountMultiplier is applied to every price in a discount shop
const DiscountMultiplier = 0.875

// Base prices before any shop discount
const (
	ArmorBasePrice   = 14
	KeyBasePrice     = 35
	CrystalBasePrice = 21
)

// WeaponListing is a weapon for sale
type WeaponListing struct {
	Weapon *items.Weapon
	Cost   int
}

// Shop is a merchant's stock. Counts are stock left, prices are per unit.
type Shop struct {
	Weapons []WeaponListing

	Armor      *items.Armor
	ArmorPrice int

	HealthPotions      int
	StaminaPotions     int
	ManaPotions        int
	PotionPrice        int
	StaminaPotionPrice int
	ManaPotionPrice    int

	WaypointScrolls     int
	WaypointScrollPrice int

	SpellScrolls      map[string]int
	SpellScrollPrices map[string]int

	GoldenKeys int
	KeyPrice   int

	LifeCrystal    bool
	StaminaCrystal bool
	ManaCrystal    bool
	CrystalPrice   int

	Discount float64
}

// IsDiscount reports whether the shop sells below base prices
func (s *Shop) IsDiscount() bool {
	return s.Discount > 0 && s.Discount < 1
}

// Price applies the shop discount to a base price
func (s *Shop) Price(base int) int {
	if !s.IsDiscount() {
		return base
	}
	return int(float64(base) * s.Discount)
}

// Chest is a locked container opened with a golden key
type Chest struct {
	Weapons     []*items.Weapon
	Armor       *items.Armor
	Potions     int
	LifeCrystal bool
	Locked      bool
}

// Vault is the treasure behind a key door
type Vault struct {
	Looted bool
}

// KeyPickup is a mysterious key lying on the ground
type KeyPickup struct {
	Floor int
}
