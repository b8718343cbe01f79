package save

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/lawnchairsociety/delver/internal/gameerr"
	"github.com/lawnchairsociety/delver/internal/items"
	"github.com/lawnchairsociety/delver/internal/npc"
	"github.com/lawnchairsociety/delver/internal/player"
	"github.com/lawnchairsociety/delver/internal/tower"
	"github.com/lawnchairsociety/delver/internal/world"
)

// legacyFloor is where single-floor saves and two-element waypoints land
const legacyFloor = 0

// Decode rebuilds a game from a snapshot. Rooms not in the snapshot are
// generated later with gen. Any malformed content yields ErrCorruptSave.
func Decode(data []byte, gen *tower.Generator) (*Game, error) {
	var fd fileData
	if err := json.Unmarshal(data, &fd); err != nil {
		return nil, corrupt("invalid JSON: %v", err)
	}

	t := tower.NewTower(gen)
	defaultFloor := 1
	switch {
	case fd.Worlds != nil:
		for floorKey, rooms := range fd.Worlds {
			floor, err := strconv.Atoi(floorKey)
			if err != nil {
				return nil, corrupt("floor %q is not a number", floorKey)
			}
			if err := restoreFloor(t, floor, rooms); err != nil {
				return nil, err
			}
		}
	case fd.World != nil:
		if err := restoreFloor(t, legacyFloor, fd.World); err != nil {
			return nil, err
		}
		defaultFloor = legacyFloor
	default:
		return nil, corrupt("no world data")
	}

	p, err := restorePlayer(&fd)
	if err != nil {
		return nil, err
	}

	return &Game{
		Tower:  t,
		Player: p,
		Pos: world.Coord{
			Floor: deref(fd.PlayerFloor, defaultFloor),
			X:     fd.PlayerX,
			Y:     fd.PlayerY,
		},
	}, nil
}

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), gameerr.ErrCorruptSave)
}

func restoreFloor(t *tower.Tower, floor int, rooms map[string]*roomData) error {
	for key, rd := range rooms {
		c, err := world.ParseKey(floor, key)
		if err != nil {
			return corrupt("room %q on floor %d: %v", key, floor, err)
		}
		if rd == nil {
			return corrupt("room %s is empty", c)
		}
		room, err := restoreRoom(rd)
		if err != nil {
			return fmt.Errorf("room %s: %w", c, err)
		}
		t.SetRoom(c, room)
	}
	return nil
}

func restoreRoom(rd *roomData) (*world.Room, error) {
	kind, ok := world.ParseRoomKind(rd.Type)
	if !ok {
		return nil, corrupt("unknown room type %q", rd.Type)
	}
	if rd.Type == "" {
		kind = legacyKind(rd)
	}

	room := &world.Room{Kind: kind, Description: rd.Description}
	for _, ed := range rd.Enemy {
		room.Enemies = append(room.Enemies, restoreEnemy(ed))
	}
	for _, wd := range rd.Weapons {
		room.Weapons = append(room.Weapons, restoreWeapon(wd))
	}
	for _, ad := range rd.Armors {
		room.Armors = append(room.Armors, restoreArmor(ad))
	}

	switch kind {
	case world.KindNormal:
		if rd.CrystalType != nil {
			crystal, ok := world.ParseCrystal(*rd.CrystalType)
			if !ok {
				return nil, corrupt("unknown crystal %q", *rd.CrystalType)
			}
			room.Crystal = crystal
		}
		if rd.MysteriousKey != nil {
			room.Key = &world.KeyPickup{Floor: rd.MysteriousKey.Floor}
		}
	case world.KindKeyDoor:
		room.Vault = &world.Vault{Looted: rd.TreasureLooted}
	case world.KindChest:
		if rd.Chest == nil {
			return nil, corrupt("chest room without a chest")
		}
		room.Chest = restoreChest(rd.Chest)
	case world.KindShop:
		if rd.Shop == nil {
			return nil, corrupt("shop room without a shop")
		}
		room.Shop = restoreShop(rd.Shop)
	}
	return room, nil
}

// legacyKind infers the kind of a room saved before rooms carried a type
func legacyKind(rd *roomData) world.RoomKind {
	switch {
	case rd.RequiresMysteriousKey:
		return world.KindStairwell
	case rd.KeyRequired:
		return world.KindKeyDoor
	case rd.Shop != nil:
		return world.KindShop
	case rd.Chest != nil:
		return world.KindChest
	default:
		return world.KindNormal
	}
}

func restoreEnemy(ed enemyData) *npc.Enemy {
	e := &npc.Enemy{
		Name:            ed.Name,
		HP:              ed.HP,
		BaseAttack:      ed.BaseAttack,
		ArmorPierce:     ed.ArmorPierce,
		IsBoss:          ed.IsBoss,
		IsTrainingDummy: ed.IsTrainingDummy,
		ExtraTurns:      ed.ExtraTurns,
		SwarmID:         ed.SwarmID,
	}
	e.Effects.Stunned = ed.Stunned
	if b := ed.Burning; b != nil {
		e.Effects.Burning = &npc.DamageOverTime{Damage: b.Damage, Turns: b.Duration}
	}
	if p := ed.Poisoned; p != nil {
		e.Effects.Poisoned = &npc.DamageOverTime{Damage: p.Damage, Turns: p.Duration}
	}
	return e
}

func restoreWeapon(wd weaponData) *items.Weapon {
	kind := items.KindFromName(wd.Name)
	if wd.Damage.Unknown {
		kind = items.SpellBook
	}
	return &items.Weapon{
		Name:           wd.Name,
		Kind:           kind,
		Damage:         wd.Damage.N,
		Durability:     wd.Durability,
		MaxDurability:  deref(wd.MaxDurability, wd.Durability),
		RequiresMana:   wd.RequiresMana,
		ManaCost:       wd.ManaCost,
		CritChance:     deref(wd.CritChance, items.BaseCritChance),
		CritMultiplier: deref(wd.CritDamage, items.BaseCritMultiplier),
		Broken:         wd.IsBroken,
	}
}

func restoreArmor(ad armorData) *items.Armor {
	return &items.Armor{
		Name:          ad.Name,
		Defense:       ad.Defense,
		Durability:    ad.Durability,
		MaxDurability: deref(ad.MaxDurability, ad.Durability),
		Broken:        ad.IsBroken,
	}
}

func restoreChest(cd *chestData) *world.Chest {
	c := &world.Chest{
		Potions:     cd.Potions,
		LifeCrystal: cd.LifeCrystal,
		Locked:      deref(cd.Locked, !cd.Opened),
	}
	for _, wd := range cd.Weapons {
		c.Weapons = append(c.Weapons, restoreWeapon(wd))
	}
	if cd.Armor != nil {
		c.Armor = restoreArmor(*cd.Armor)
	}
	return c
}

func restoreShop(sd *shopData) *world.Shop {
	s := &world.Shop{
		PotionPrice:         sd.PotionPrice,
		StaminaPotionPrice:  sd.StaminaPotionPrice,
		ManaPotionPrice:     sd.ManaPotionPrice,
		HealthPotions:       sd.HealthPotions,
		StaminaPotions:      sd.StaminaPotions,
		ManaPotions:         sd.ManaPotions,
		GoldenKeys:          sd.GoldenKeys,
		LifeCrystal:         sd.LifeCrystal,
		StaminaCrystal:      sd.StaminaCrystal,
		ManaCrystal:         sd.ManaCrystal,
		WaypointScrolls:     sd.WaypointScrolls,
		WaypointScrollPrice: sd.WaypointScrollPrice,
		SpellScrolls:        make(map[string]int, len(sd.SpellScrolls)),
		SpellScrollPrices:   make(map[string]int, len(sd.SpellScrollPrices)),
		Discount:            1,
	}
	if sd.IsDiscountShop {
		s.Discount = world.DiscountMultiplier
		if sd.SpellScrollDiscount > 0 && sd.SpellScrollDiscount < 1 {
			s.Discount = sd.SpellScrollDiscount
		}
	}
	if sd.HasKey && s.GoldenKeys == 0 {
		s.GoldenKeys = 1
	}

	s.KeyPrice = orDefault(sd.KeyPrice, s.Price(world.KeyBasePrice))
	s.ArmorPrice = orDefault(sd.ArmorPrice, s.Price(world.ArmorBasePrice))
	s.CrystalPrice = orDefault(sd.CrystalPrice, s.Price(world.CrystalBasePrice))

	for _, l := range sd.Items {
		s.Weapons = append(s.Weapons, world.WeaponListing{Weapon: restoreWeapon(l.weaponData), Cost: l.Cost})
	}
	if sd.Armor != nil {
		s.Armor = restoreArmor(*sd.Armor)
	}
	for name, n := range sd.SpellScrolls {
		s.SpellScrolls[name] = n
	}
	for name, price := range sd.SpellScrollPrices {
		s.SpellScrollPrices[name] = price
	}
	return s
}

func clamp(v, hi int) int {
	return min(max(v, 0), hi)
}

func orDefault(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}

func restorePlayer(fd *fileData) (*player.Player, error) {
	p := player.New(player.DefaultOptions())

	if len(fd.Inventory) > items.MaxWeapons {
		return nil, corrupt("%d weapons carried, limit is %d", len(fd.Inventory), items.MaxWeapons)
	}
	if len(fd.ArmorInventory) > items.MaxArmor {
		return nil, corrupt("%d armors carried, limit is %d", len(fd.ArmorInventory), items.MaxArmor)
	}
	p.Weapons = nil
	for _, wd := range fd.Inventory {
		p.Weapons = append(p.Weapons, restoreWeapon(wd))
	}
	p.Armors = nil
	for _, ad := range fd.ArmorInventory {
		p.Armors = append(p.Armors, restoreArmor(ad))
	}
	p.Equipped = -1
	if fd.EquippedArmor != nil {
		p.Equipped = matchArmor(p.Armors, restoreArmor(*fd.EquippedArmor))
	}
	p.UsingFists = fd.UsingFists

	// Saves without a usable max hp fall back to the starting maximum,
	// raised to the saved hp if that is higher
	if maxHP := deref(fd.PlayerMaxHP, 0); maxHP > 0 {
		p.MaxHP = maxHP
	} else {
		p.MaxHP = max(deref(fd.PlayerHP, 0), p.MaxHP)
	}
	p.HP = clamp(deref(fd.PlayerHP, p.MaxHP), p.MaxHP)
	p.MaxStamina = deref(fd.PlayerMaxStamina, p.MaxStamina)
	p.Stamina = clamp(deref(fd.PlayerStamina, p.MaxStamina), p.MaxStamina)
	p.MaxMana = deref(fd.PlayerMaxMana, p.MaxMana)
	p.Mana = clamp(deref(fd.PlayerMana, p.MaxMana), p.MaxMana)
	p.Money = fd.PlayerMoney
	p.HealthPotions = fd.PlayerPotions
	p.StaminaPotions = fd.StaminaPotions
	p.ManaPotions = fd.ManaPotions

	if fd.GoldenKeys > player.MaxGoldenKeys {
		return nil, corrupt("%d golden keys carried, limit is %d", fd.GoldenKeys, player.MaxGoldenKeys)
	}
	p.GoldenKeys = fd.GoldenKeys
	if fd.WaypointScrolls > player.MaxWaypointScrolls {
		return nil, corrupt("%d waypoint scrolls carried, limit is %d", fd.WaypointScrolls, player.MaxWaypointScrolls)
	}
	p.WaypointScrolls = fd.WaypointScrolls

	if fd.MysteriousKey != nil && *fd.MysteriousKey {
		p.Keys.Grant(legacyFloor)
	}
	for floorKey, held := range fd.MysteriousKeys {
		floor, err := strconv.Atoi(floorKey)
		if err != nil {
			return nil, corrupt("key floor %q is not a number", floorKey)
		}
		if held {
			p.Keys.Grant(floor)
		}
	}
	for _, floor := range fd.UnlockedFloors {
		p.Keys.Unlock(floor)
	}

	for name, parts := range fd.Waypoints {
		c, err := restoreWaypoint(parts)
		if err != nil {
			return nil, fmt.Errorf("waypoint %q: %w", name, err)
		}
		p.Waypoints[name] = c
	}

	for _, name := range fd.DiscoveredEnemies {
		p.Discover(name)
	}
	p.Spells = append([]string(nil), fd.LearnedSpells...)
	for name, n := range fd.SpellScrolls {
		if n > 0 {
			p.SpellScrolls[name] = n
		}
	}

	p.Level = deref(fd.PlayerLevel, p.Level)
	p.XP = fd.PlayerXP
	p.XPToNext = deref(fd.PlayerXPToNext, p.XPToNext)
	p.SkillPoints = fd.PlayerSkillPoints

	if s := fd.Statistics; s != nil {
		p.Stats = &player.Statistics{
			EnemiesDefeated: s.EnemiesDefeated,
			BossesDefeated:  s.BossesDefeated,
			DamageDealt:     s.TotalDamageDealt,
			DamageTaken:     s.TotalDamageTaken,
			CriticalHits:    s.CriticalHits,
			Attacks:         s.AttackCount,
			RoomsExplored:   s.RoomsExplored,
			FloorsVisited:   make(map[int]bool, len(s.FloorsVisited)),
			Moves:           s.MoveCount,
			ItemsCollected:  s.ItemsCollected,
			WeaponsBroken:   s.WeaponsBroken,
			ArmorBroken:     s.ArmorBroken,
			GoldEarned:      s.GoldEarned,
		}
		for _, floor := range s.FloorsVisited {
			p.Stats.FloorsVisited[floor] = true
		}
	}
	for id, u := range fd.DiscoveredUniques {
		p.DiscoveredUniques[id] = u.Discovered
	}
	return p, nil
}

// restoreWaypoint reads [floor, x, y], or the older [x, y] on floor 0
func restoreWaypoint(parts []int) (world.Coord, error) {
	switch len(parts) {
	case 2:
		return world.Coord{Floor: legacyFloor, X: parts[0], Y: parts[1]}, nil
	case 3:
		return world.Coord{Floor: parts[0], X: parts[1], Y: parts[2]}, nil
	default:
		return world.Coord{}, corrupt("%d coordinates", len(parts))
	}
}

// matchArmor finds the first bag entry equal to a, or -1
func matchArmor(bag []*items.Armor, a *items.Armor) int {
	for i, candidate := range bag {
		if *candidate == *a {
			return i
		}
	}
	return -1
}
