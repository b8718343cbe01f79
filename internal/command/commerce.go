package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lawnchairsociety/delver/internal/game"
	"github.com/lawnchairsociety/delver/internal/world"
)

// executeShop shows the shop inventory with buy codes
func (c *Command) executeShop(s *Session) string {
	shop, err := s.Game.Shop()
	if err != nil {
		return describeError(err)
	}
	return describeShop(shop, s.Game.Player.Money)
}

func describeShop(shop *world.Shop, gold int) string {
	var rows [][]string
	for i, l := range shop.Weapons {
		w := l.Weapon
		rows = append(rows, []string{fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%s (dmg %s, dur %d)", w.Name, w.DamageLabel(), w.Durability),
			fmt.Sprintf("%d", l.Cost)})
	}
	if shop.Armor != nil {
		rows = append(rows, []string{game.BuyArmor,
			fmt.Sprintf("%s (def %d, dur %d)", shop.Armor.Name, shop.Armor.Defense, shop.Armor.Durability),
			fmt.Sprintf("%d", shop.ArmorPrice)})
	}
	stock := []struct {
		code  string
		name  string
		count int
		price int
	}{
		{game.BuyHealthPotion, "Health Potion", shop.HealthPotions, shop.PotionPrice},
		{game.BuyStaminaPotion, "Stamina Potion", shop.StaminaPotions, shop.StaminaPotionPrice},
		{game.BuyManaPotion, "Mana Potion", shop.ManaPotions, shop.ManaPotionPrice},
		{game.BuyGoldenKey, "Golden Key", shop.GoldenKeys, shop.KeyPrice},
		{game.BuyWaypointScroll, "Waypoint Scroll", shop.WaypointScrolls, shop.WaypointScrollPrice},
	}
	for _, item := range stock {
		if item.count > 0 {
			rows = append(rows, []string{item.code, fmt.Sprintf("%s x%d", item.name, item.count), fmt.Sprintf("%d", item.price)})
		}
	}
	crystals := []struct {
		code    string
		name    string
		stocked bool
	}{
		{game.BuyLifeCrystal, "Life Crystal", shop.LifeCrystal},
		{game.BuyStaminaCrystal, "Stamina Crystal", shop.StaminaCrystal},
		{game.BuyManaCrystal, "Mana Crystal", shop.ManaCrystal},
	}
	for _, cr := range crystals {
		if cr.stocked {
			rows = append(rows, []string{cr.code, cr.name, fmt.Sprintf("%d", shop.CrystalPrice)})
		}
	}

	scrolls := make([]string, 0, len(shop.SpellScrolls))
	for name, n := range shop.SpellScrolls {
		if n > 0 {
			scrolls = append(scrolls, name)
		}
	}
	sort.Strings(scrolls)
	for _, name := range scrolls {
		rows = append(rows, []string{strings.ToLower(name), name + " Scroll", fmt.Sprintf("%d", shop.SpellScrollPrices[name])})
	}

	if len(rows) == 0 {
		return "The shelves are bare."
	}
	var sb strings.Builder
	if shop.IsDiscount() {
		sb.WriteString("Everything here is discounted!\n")
	}
	sb.WriteString(table([]string{"Code", "Item", "Price"}, rows))
	fmt.Fprintf(&sb, "You have %d gold. Type 'buy <code>'.", gold)
	return sb.String()
}

func (c *Command) executeBuy(s *Session) string {
	if err := c.RequireArgs(1, "Usage: buy <code>"); err != nil {
		return err.Error()
	}
	name, err := s.Game.Buy(c.GetItemName())
	if err != nil {
		return describeError(err)
	}
	return fmt.Sprintf("You buy the %s. Gold left: %d.", name, s.Game.Player.Money)
}

// executeRepair mends a weapon or armor at a shop
func (c *Command) executeRepair(s *Session) string {
	if err := c.RequireArgs(2, "Usage: repair <weapon|armor> <number>"); err != nil {
		return err.Error()
	}
	var target game.RepairTarget
	switch strings.ToLower(c.Args[0]) {
	case "weapon", "w":
		target = game.RepairWeapon
	case "armor", "armour", "a":
		target = game.RepairArmor
	default:
		return "Usage: repair <weapon|armor> <number>"
	}
	i, err := parseIndex(c.Args[1])
	if err != nil {
		return describeError(err)
	}
	cost, err := s.Game.Repair(target, i)
	if err != nil {
		return describeError(err)
	}
	return fmt.Sprintf("The smith repairs it for %d gold.", cost)
}

// executeLoot empties a vault whose guardian has fallen
func (c *Command) executeLoot(s *Session) string {
	haul, err := s.Game.Loot()
	if err != nil {
		return describeError(err)
	}
	lines := []string{
		"Your golden key turns in the lock and the vault door swings open.",
		fmt.Sprintf("You find %d gold and %d health potions.", haul.Gold, haul.Potions),
	}
	if haul.ArmorOnFloor {
		lines = append(lines, fmt.Sprintf("A %s lies here, but your armor bag is full.", haul.Armor.Name))
	} else {
		lines = append(lines, fmt.Sprintf("You take the %s (defense %d).", haul.Armor.Name, haul.Armor.Defense))
	}
	if haul.KeyGranted {
		lines = append(lines, fmt.Sprintf("Among the treasure is the mysterious key for floor %d.", haul.KeyFloor))
	}
	return strings.Join(lines, "\n")
}

// executeOpen unlocks a chest with a golden key
func (c *Command) executeOpen(s *Session) string {
	haul, err := s.Game.Open()
	if err != nil {
		return describeError(err)
	}
	lines := []string{"The golden key opens the chest."}
	for _, w := range haul.Weapons {
		lines = append(lines, fmt.Sprintf("A %s tumbles to the ground.", w.Name))
	}
	if haul.Armor != nil {
		lines = append(lines, fmt.Sprintf("A %s tumbles to the ground.", haul.Armor.Name))
	}
	if haul.Potions > 0 {
		lines = append(lines, fmt.Sprintf("You take %d health potions.", haul.Potions))
	}
	if haul.LifeCrystal {
		lines = append(lines, "A life crystal shatters in your hands and strengthens you.")
	}
	return strings.Join(lines, "\n")
}
