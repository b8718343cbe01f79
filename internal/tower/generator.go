package tower

import (
	"github.com/lawnchairsociety/delver/internal/items"
	"github.com/lawnchairsociety/delver/internal/logger"
	"github.com/lawnchairsociety/delver/internal/npc"
	"github.com/lawnchairsociety/delver/internal/spells"
	"github.com/lawnchairsociety/delver/internal/stats"
	"github.com/lawnchairsociety/delver/internal/world"
)

// Room archetype odds, checked in this order; the first hit wins
const (
	stairwellOdds = 25   // 1 in N
	vaultOdds     = 25   // 1 in N
	chestOdds     = 15   // 1 in N
	shopChance    = 0.10 // probability
)

// Normal room odds
const (
	crystalChance  = 0.05
	dualCrystal    = 0.175 // crystal roll below this is a dual crystal
	tripleCrystal  = 0.22  // below this (and not dual) is all three
	weaponChance   = 0.30
	armorChance    = 0.20
	keyOdds        = 50 // 1 in N
	enemyChance    = 0.50
	swarmChance    = 0.15
	chestArmor     = 0.50
	chestCrystal   = 0.20
	chestSecond    = 0.30
	chestPotions   = 2
)

// Generator rolls the content of newly visited rooms
type Generator struct {
	r            *stats.Roller
	roster       *npc.Roster
	spells       *spells.Registry
	descriptions []string
}

// NewGenerator creates a room generator
func NewGenerator(r *stats.Roller, roster *npc.Roster, registry *spells.Registry, descriptions []string) *Generator {
	if len(descriptions) == 0 {
		descriptions = DefaultDescriptions()
	}
	return &Generator{r: r, roster: roster, spells: registry, descriptions: descriptions}
}

// Roller exposes the generator's randomness to callers that share it
func (g *Generator) Roller() *stats.Roller {
	return g.r
}

// IsOrigin reports whether c is the fixed starting room
func IsOrigin(c world.Coord) bool {
	return c.Floor == 1 && c.X == 0 && c.Y == 0
}

// OriginRoom builds the fixed training room
func OriginRoom() *world.Room {
	room := world.NewNormalRoom(world.OriginDescription)
	room.Enemies = []*npc.Enemy{npc.TrainingDummy()}
	room.Weapons = []*items.Weapon{items.StarterSword()}
	return room
}

// GenerateRoom rolls a room for c. learned lists the spells the player
// already knows so shops never offer them.
func (g *Generator) GenerateRoom(c world.Coord, learned []string) *world.Room {
	if IsOrigin(c) {
		return OriginRoom()
	}

	var room *world.Room
	switch {
	case g.r.OneIn(stairwellOdds):
		room = world.NewStairwellRoom()
	case g.r.OneIn(vaultOdds):
		room = world.NewVaultRoom(npc.GenerateBoss(g.r, npc.BossForFloor(c.Floor), c.X, c.Y))
	case g.r.OneIn(chestOdds):
		room = world.NewChestRoom(g.generateChest(c))
	case g.r.Chance(shopChance):
		room = world.NewShopRoom(g.generateShop(c, learned))
	default:
		room = g.generateNormal(c)
	}

	logger.Debug("room generated", "floor", c.Floor, "x", c.X, "y", c.Y, "kind", room.Kind.String())
	return room
}

func (g *Generator) generateChest(c world.Coord) *world.Chest {
	distance := stats.Distance(c.X, c.Y)
	chest := &world.Chest{
		Weapons: []*items.Weapon{items.GenerateChestWeapon(g.r, distance)},
		Potions: chestPotions,
		Locked:  true,
	}
	chest.LifeCrystal = g.r.Chance(chestCrystal)
	if g.r.Chance(chestArmor) {
		chest.Armor = items.GenerateChestArmor(g.r, distance)
	}
	if g.r.Chance(chestSecond) {
		chest.Weapons = append(chest.Weapons, items.GenerateChestWeapon(g.r, distance))
	}
	return chest
}

func (g *Generator) generateNormal(c world.Coord) *world.Room {
	distance := stats.Distance(c.X, c.Y)
	crystal := g.rollCrystal()

	var weapons []*items.Weapon
	if g.r.Chance(weaponChance) {
		weapons = append(weapons, items.GenerateWeapon(g.r, distance))
	}
	var armors []*items.Armor
	if g.r.Chance(armorChance) {
		armors = append(armors, items.GenerateArmor(g.r, distance))
	}

	var key *world.KeyPickup
	if g.r.OneIn(keyOdds) {
		key = &world.KeyPickup{Floor: c.Floor}
	}

	var enemies []*npc.Enemy
	if g.r.Chance(enemyChance) {
		if g.r.Chance(swarmChance) {
			enemies = npc.GenerateSwarm(g.r, c.X, c.Y)
		} else {
			enemies = []*npc.Enemy{g.roster.GenerateEnemy(g.r, c.X, c.Y)}
		}
	}

	room := world.NewNormalRoom(g.descriptions[g.r.Pick(len(g.descriptions))])
	room.Crystal = crystal
	room.Weapons = weapons
	room.Armors = armors
	room.Key = key
	room.Enemies = enemies
	return room
}

func (g *Generator) rollCrystal() world.Crystal {
	if !g.r.Chance(crystalChance) {
		return world.CrystalNone
	}
	roll := g.r.Float()
	switch {
	case roll < dualCrystal:
		if g.r.Chance(0.5) {
			return world.CrystalLifeStamina
		}
		return world.CrystalLifeMana
	case roll < tripleCrystal:
		return world.CrystalAll
	}
	switch g.r.Weighted(0.33, 0.34, 0.33) {
	case 0:
		return world.CrystalLife
	case 1:
		return world.CrystalStamina
	default:
		return world.CrystalMana
	}
}
