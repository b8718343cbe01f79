package save

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/lawnchairsociety/delver/internal/items"
	"github.com/lawnchairsociety/delver/internal/npc"
	"github.com/lawnchairsociety/delver/internal/player"
	"github.com/lawnchairsociety/delver/internal/tower"
	"github.com/lawnchairsociety/delver/internal/world"
)

// Game is everything a snapshot holds
type Game struct {
	Tower  *tower.Tower
	Player *player.Player
	Pos    world.Coord
}

// Encode writes g as a JSON snapshot
func Encode(g Game) ([]byte, error) {
	data := fileData{Worlds: make(map[string]map[string]*roomData)}

	for _, n := range g.Tower.FloorNumbers() {
		floor, _ := g.Tower.Floor(n)
		rooms := make(map[string]*roomData, floor.RoomCount())
		for key, room := range floor.Rooms() {
			rooms[key] = serializeRoom(room)
		}
		data.Worlds[strconv.Itoa(n)] = rooms
	}

	serializePlayer(&data, g.Player)
	data.PlayerFloor = ptr(g.Pos.Floor)
	data.PlayerX = g.Pos.X
	data.PlayerY = g.Pos.Y

	out, err := json.Marshal(&data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return out, nil
}

func serializePlayer(data *fileData, p *player.Player) {
	data.Inventory = make([]weaponData, 0, len(p.Weapons))
	for _, w := range p.Weapons {
		data.Inventory = append(data.Inventory, serializeWeapon(w))
	}
	data.ArmorInventory = make([]armorData, 0, len(p.Armors))
	for _, a := range p.Armors {
		data.ArmorInventory = append(data.ArmorInventory, serializeArmor(a))
	}
	if a := p.Armor(); a != nil {
		equipped := serializeArmor(a)
		data.EquippedArmor = &equipped
	}
	data.UsingFists = p.UsingFists

	data.PlayerHP = ptr(p.HP)
	data.PlayerMaxHP = ptr(p.MaxHP)
	data.PlayerStamina = ptr(p.Stamina)
	data.PlayerMaxStamina = ptr(p.MaxStamina)
	data.PlayerMana = ptr(p.Mana)
	data.PlayerMaxMana = ptr(p.MaxMana)
	data.PlayerMoney = p.Money
	data.PlayerPotions = p.HealthPotions
	data.StaminaPotions = p.StaminaPotions
	data.ManaPotions = p.ManaPotions

	data.MysteriousKeys = make(map[string]bool)
	for _, floor := range p.Keys.HeldFloors() {
		data.MysteriousKeys[strconv.Itoa(floor)] = true
	}
	data.GoldenKeys = p.GoldenKeys
	data.UnlockedFloors = append([]int{}, p.Keys.UnlockedFloors()...)

	data.Waypoints = make(map[string][]int, len(p.Waypoints))
	for name, c := range p.Waypoints {
		data.Waypoints[name] = []int{c.Floor, c.X, c.Y}
	}
	data.WaypointScrolls = p.WaypointScrolls

	data.DiscoveredEnemies = append([]string{}, p.BestiaryNames()...)
	data.LearnedSpells = append([]string{}, p.Spells...)
	data.SpellScrolls = make(map[string]int, len(p.SpellScrolls))
	for name, n := range p.SpellScrolls {
		data.SpellScrolls[name] = n
	}

	data.PlayerLevel = ptr(p.Level)
	data.PlayerXP = p.XP
	data.PlayerXPToNext = ptr(p.XPToNext)
	data.PlayerSkillPoints = p.SkillPoints

	s := p.Stats
	data.Statistics = &statisticsData{
		EnemiesDefeated:  s.EnemiesDefeated,
		BossesDefeated:   s.BossesDefeated,
		TotalDamageDealt: s.DamageDealt,
		TotalDamageTaken: s.DamageTaken,
		CriticalHits:     s.CriticalHits,
		AttackCount:      s.Attacks,
		RoomsExplored:    s.RoomsExplored,
		FloorsVisited:    append([]int{}, s.Floors()...),
		MoveCount:        s.Moves,
		ItemsCollected:   s.ItemsCollected,
		WeaponsBroken:    s.WeaponsBroken,
		ArmorBroken:      s.ArmorBroken,
		GoldEarned:       s.GoldEarned,
	}

	if len(p.DiscoveredUniques) > 0 {
		data.DiscoveredUniques = make(map[string]uniqueData, len(p.DiscoveredUniques))
		for id, found := range p.DiscoveredUniques {
			data.DiscoveredUniques[id] = uniqueData{Discovered: found, Location: map[string]any{}}
		}
	}
}

func serializeRoom(room *world.Room) *roomData {
	rd := &roomData{
		Description: room.Description,
		Type:        room.Kind.String(),
		Weapons:     make([]weaponData, 0, len(room.Weapons)),
		Armors:      make([]armorData, 0, len(room.Armors)),
	}
	for _, e := range room.Enemies {
		rd.Enemy = append(rd.Enemy, serializeEnemy(e))
	}
	for _, w := range room.Weapons {
		rd.Weapons = append(rd.Weapons, serializeWeapon(w))
	}
	for _, a := range room.Armors {
		rd.Armors = append(rd.Armors, serializeArmor(a))
	}

	rd.RequiresMysteriousKey = room.RequiresKey()
	switch room.Kind {
	case world.KindNormal:
		if room.Crystal != world.CrystalNone {
			rd.CrystalType = ptr(room.Crystal.String())
		}
		if room.Key != nil {
			rd.MysteriousKey = &keyData{
				Floor: room.Key.Floor,
				Name:  fmt.Sprintf("Mysterious Key (Floor %d)", room.Key.Floor),
			}
		}
	case world.KindKeyDoor:
		rd.KeyRequired = true
		rd.TreasureLooted = room.Vault != nil && room.Vault.Looted
	case world.KindChest:
		rd.Chest = serializeChest(room.Chest)
	case world.KindShop:
		rd.Shop = serializeShop(room.Shop)
	}
	return rd
}

func serializeEnemy(e *npc.Enemy) enemyData {
	ed := enemyData{
		Name:            e.Name,
		HP:              e.HP,
		BaseAttack:      e.BaseAttack,
		ArmorPierce:     e.ArmorPierce,
		IsBoss:          e.IsBoss,
		IsTrainingDummy: e.IsTrainingDummy,
		ExtraTurns:      e.ExtraTurns,
		SwarmID:         e.SwarmID,
		Stunned:         e.Effects.Stunned,
	}
	if b := e.Effects.Burning; b != nil {
		ed.Burning = &dotData{Damage: b.Damage, Duration: b.Turns}
	}
	if p := e.Effects.Poisoned; p != nil {
		ed.Poisoned = &dotData{Damage: p.Damage, Duration: p.Turns}
	}
	return ed
}

func serializeWeapon(w *items.Weapon) weaponData {
	return weaponData{
		Name:          w.Name,
		Damage:        damageValue{N: w.Damage, Unknown: !w.HasDamage()},
		Durability:    w.Durability,
		MaxDurability: ptr(w.MaxDurability),
		RequiresMana:  w.RequiresMana,
		ManaCost:      w.ManaCost,
		CritChance:    ptr(w.CritChance),
		CritDamage:    ptr(w.CritMultiplier),
		IsBroken:      w.Broken,
	}
}

func serializeArmor(a *items.Armor) armorData {
	return armorData{
		Name:          a.Name,
		Defense:       a.Defense,
		Durability:    a.Durability,
		MaxDurability: ptr(a.MaxDurability),
		IsBroken:      a.Broken,
	}
}

func serializeChest(c *world.Chest) *chestData {
	if c == nil {
		return nil
	}
	cd := &chestData{
		Weapons:     make([]weaponData, 0, len(c.Weapons)),
		Potions:     c.Potions,
		Locked:      ptr(c.Locked),
		Opened:      !c.Locked,
		LifeCrystal: c.LifeCrystal,
	}
	for _, w := range c.Weapons {
		cd.Weapons = append(cd.Weapons, serializeWeapon(w))
	}
	if c.Armor != nil {
		a := serializeArmor(c.Armor)
		cd.Armor = &a
	}
	return cd
}

func serializeShop(s *world.Shop) *shopData {
	if s == nil {
		return nil
	}
	sd := &shopData{
		Items:               make([]listingData, 0, len(s.Weapons)),
		PotionPrice:         s.PotionPrice,
		StaminaPotionPrice:  s.StaminaPotionPrice,
		ManaPotionPrice:     s.ManaPotionPrice,
		HealthPotions:       s.HealthPotions,
		StaminaPotions:      s.StaminaPotions,
		ManaPotions:         s.ManaPotions,
		GoldenKeys:          s.GoldenKeys,
		KeyPrice:            s.KeyPrice,
		ArmorPrice:          s.ArmorPrice,
		LifeCrystal:         s.LifeCrystal,
		StaminaCrystal:      s.StaminaCrystal,
		ManaCrystal:         s.ManaCrystal,
		CrystalPrice:        s.CrystalPrice,
		WaypointScrolls:     s.WaypointScrolls,
		WaypointScrollPrice: s.WaypointScrollPrice,
		SpellScrolls:        make(map[string]int, len(s.SpellScrolls)),
		SpellScrollPrices:   make(map[string]int, len(s.SpellScrollPrices)),
		IsDiscountShop:      s.IsDiscount(),
	}
	for _, l := range s.Weapons {
		sd.Items = append(sd.Items, listingData{weaponData: serializeWeapon(l.Weapon), Cost: l.Cost})
	}
	if s.Armor != nil {
		a := serializeArmor(s.Armor)
		sd.Armor = &a
	}
	for name, n := range s.SpellScrolls {
		sd.SpellScrolls[name] = n
	}
	for name, price := range s.SpellScrollPrices {
		sd.SpellScrollPrices[name] = price
	}
	if s.IsDiscount() {
		sd.SpellScrollDiscount = s.Discount
	}
	return sd
}
