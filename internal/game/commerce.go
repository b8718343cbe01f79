package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lawnchairsociety/delver/internal/gameerr"
	"github.com/lawnchairsociety/delver/internal/items"
	"github.com/lawnchairsociety/delver/internal/player"
	"github.com/lawnchairsociety/delver/internal/world"
)

// Bottled crystal strengths; they are stronger than the shrine kind
const (
	BottledStaminaGain = 20
	BottledManaGain    = 20
)

// Buy codes for shop goods that are not weapons or spell scrolls
const (
	BuyArmor          = "R"
	BuyHealthPotion   = "P"
	BuyStaminaPotion  = "S"
	BuyManaPotion     = "M"
	BuyGoldenKey      = "K"
	BuyLifeCrystal    = "L"
	BuyStaminaCrystal = "T"
	BuyManaCrystal    = "N"
	BuyWaypointScroll = "W"
)

// RepairTarget selects which bag Repair works on
type RepairTarget int

const (
	RepairWeapon RepairTarget = iota
	RepairArmor
)

// Shop returns the merchant in the current room
func (s *State) Shop() (*world.Shop, error) {
	room := s.Room()
	if room.Kind != world.KindShop || room.Shop == nil {
		return nil, fmt.Errorf("no shop here: %w", gameerr.ErrNothingHere)
	}
	return room.Shop, nil
}

// Buy purchases one item by code: a 1-based weapon number, one of the
// letter codes, or a spell name for a spell scroll. It returns the name of
// what was bought.
func (s *State) Buy(code string) (string, error) {
	shop, err := s.Shop()
	if err != nil {
		return "", err
	}
	code = strings.TrimSpace(code)
	if n, err := strconv.Atoi(code); err == nil {
		return s.buyWeapon(shop, n-1)
	}

	p := s.Player
	switch strings.ToUpper(code) {
	case BuyArmor:
		if shop.Armor == nil {
			return "", fmt.Errorf("no armor for sale: %w", gameerr.ErrNothingHere)
		}
		if len(p.Armors) >= items.MaxArmor {
			return "", fmt.Errorf("armor bag: %w", gameerr.ErrInventoryFull)
		}
		if err := p.SpendMoney(shop.ArmorPrice); err != nil {
			return "", err
		}
		a := shop.Armor
		p.AddArmor(a)
		shop.Armor = nil
		return a.Name, nil

	case BuyHealthPotion:
		if err := buyStock(p, &shop.HealthPotions, shop.PotionPrice, &p.HealthPotions); err != nil {
			return "", err
		}
		return "Health Potion", nil
	case BuyStaminaPotion:
		if err := buyStock(p, &shop.StaminaPotions, shop.StaminaPotionPrice, &p.StaminaPotions); err != nil {
			return "", err
		}
		return "Stamina Potion", nil
	case BuyManaPotion:
		if err := buyStock(p, &shop.ManaPotions, shop.ManaPotionPrice, &p.ManaPotions); err != nil {
			return "", err
		}
		return "Mana Potion", nil

	case BuyGoldenKey:
		if shop.GoldenKeys <= 0 {
			return "", fmt.Errorf("no golden keys for sale: %w", gameerr.ErrNothingHere)
		}
		if p.GoldenKeys >= player.MaxGoldenKeys {
			return "", fmt.Errorf("golden keys: %w", gameerr.ErrInventoryFull)
		}
		if err := p.SpendMoney(shop.KeyPrice); err != nil {
			return "", err
		}
		p.AddGoldenKey()
		shop.GoldenKeys--
		return "Golden Key", nil

	case BuyLifeCrystal:
		if err := buyCrystal(p, &shop.LifeCrystal, shop.CrystalPrice); err != nil {
			return "", err
		}
		p.RaiseMaxHP(LifeCrystalMaxHP)
		p.Heal(LifeCrystalHeal)
		return "Life Crystal", nil
	case BuyStaminaCrystal:
		if err := buyCrystal(p, &shop.StaminaCrystal, shop.CrystalPrice); err != nil {
			return "", err
		}
		p.RaiseMaxStamina(BottledStaminaGain)
		p.RestoreStamina(2 * BottledStaminaGain)
		return "Stamina Crystal", nil
	case BuyManaCrystal:
		if err := buyCrystal(p, &shop.ManaCrystal, shop.CrystalPrice); err != nil {
			return "", err
		}
		p.RaiseMaxMana(BottledManaGain)
		p.RestoreMana(2 * BottledManaGain)
		return "Mana Crystal", nil

	case BuyWaypointScroll:
		if shop.WaypointScrolls <= 0 {
			return "", fmt.Errorf("no waypoint scrolls for sale: %w", gameerr.ErrNothingHere)
		}
		if p.WaypointScrolls >= player.MaxWaypointScrolls {
			return "", fmt.Errorf("waypoint scrolls: %w", gameerr.ErrInventoryFull)
		}
		if err := p.SpendMoney(shop.WaypointScrollPrice); err != nil {
			return "", err
		}
		p.AddWaypointScroll()
		shop.WaypointScrolls--
		return "Waypoint Scroll", nil
	}

	return s.buySpellScroll(shop, code)
}

func (s *State) buyWeapon(shop *world.Shop, i int) (string, error) {
	if i < 0 || i >= len(shop.Weapons) {
		return "", fmt.Errorf("no weapon %d for sale: %w", i+1, gameerr.ErrInvalidSelection)
	}
	p := s.Player
	if len(p.Weapons) >= items.MaxWeapons {
		return "", fmt.Errorf("weapon bag: %w", gameerr.ErrInventoryFull)
	}
	listing := shop.Weapons[i]
	if err := p.SpendMoney(listing.Cost); err != nil {
		return "", err
	}
	p.AddWeapon(listing.Weapon)
	items.RemoveAt(&shop.Weapons, i)
	return listing.Weapon.Name, nil
}

func (s *State) buySpellScroll(shop *world.Shop, code string) (string, error) {
	for name, stock := range shop.SpellScrolls {
		if !strings.EqualFold(name, code) || stock <= 0 {
			continue
		}
		if err := s.Player.SpendMoney(shop.SpellScrollPrices[name]); err != nil {
			return "", err
		}
		s.Player.AddSpellScroll(name)
		shop.SpellScrolls[name]--
		if shop.SpellScrolls[name] == 0 {
			delete(shop.SpellScrolls, name)
		}
		return name + " Scroll", nil
	}
	return "", fmt.Errorf("nothing sold as %q: %w", code, gameerr.ErrInvalidSelection)
}

func buyStock(p *player.Player, stock *int, price int, carried *int) error {
	if *stock <= 0 {
		return fmt.Errorf("sold out: %w", gameerr.ErrNothingHere)
	}
	if err := p.SpendMoney(price); err != nil {
		return err
	}
	*stock--
	*carried++
	return nil
}

func buyCrystal(p *player.Player, stocked *bool, price int) error {
	if !*stocked {
		return fmt.Errorf("crystal sold out: %w", gameerr.ErrNothingHere)
	}
	if err := p.SpendMoney(price); err != nil {
		return err
	}
	*stocked = false
	return nil
}

// Repair restores a carried weapon or armor to full durability for gold.
// Only a shop repairs. It returns the gold spent.
func (s *State) Repair(target RepairTarget, i int) (int, error) {
	if _, err := s.Shop(); err != nil {
		return 0, err
	}
	p := s.Player

	switch target {
	case RepairWeapon:
		if i < 0 || i >= len(p.Weapons) {
			return 0, fmt.Errorf("no weapon %d: %w", i+1, gameerr.ErrInvalidSelection)
		}
		w := p.Weapons[i]
		if w.MissingDurability() == 0 {
			return 0, fmt.Errorf("%s is in perfect condition: %w", w.Name, gameerr.ErrNothingHere)
		}
		cost := w.RepairCost()
		if err := p.SpendMoney(cost); err != nil {
			return 0, err
		}
		w.Repair(s.r)
		return cost, nil

	case RepairArmor:
		if i < 0 || i >= len(p.Armors) {
			return 0, fmt.Errorf("no armor %d: %w", i+1, gameerr.ErrInvalidSelection)
		}
		a := p.Armors[i]
		if a.MissingDurability() == 0 {
			return 0, fmt.Errorf("%s is in perfect condition: %w", a.Name, gameerr.ErrNothingHere)
		}
		cost := a.RepairCost()
		if err := p.SpendMoney(cost); err != nil {
			return 0, err
		}
		a.Repair()
		return cost, nil
	}
	return 0, fmt.Errorf("nothing to repair: %w", gameerr.ErrInvalidSelection)
}
