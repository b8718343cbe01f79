package npc

import (
	"github.com/lawnchairsociety/delver/internal/stats"
)

// BossKind selects one of the fixed boss stat blocks
type BossKind int

const (
	Troll BossKind = iota
	BabyDragon
)

// String returns the boss name
func (b BossKind) String() string {
	if b == BabyDragon {
		return "Baby Dragon"
	}
	return "Troll"
}

// BossForFloor returns the boss guarding vaults on a floor.
// Floor 2 gets the faster, stronger Baby Dragon.
func BossForFloor(floor int) BossKind {
	if floor == 2 {
		return BabyDragon
	}
	return Troll
}

const defaultBaseAttack = 5

// GenerateEnemy rolls a regular enemy from the roster for (x, y)
func (ros *Roster) GenerateEnemy(r *stats.Roller, x, y int) *Enemy {
	budget := stats.PowerBudget(x, y)
	def := ros.defs[r.Pick(len(ros.defs))]
	variation := r.Between(-3, 3)

	base := defaultBaseAttack
	if def.BaseAttack > 0 {
		base = def.BaseAttack
	}
	attack := base + budget
	if def.AttackFactor != 1 {
		attack = int(float64(attack) * def.AttackFactor)
	}

	return &Enemy{
		Name:        def.Name,
		HP:          max(1, def.BaseHP+variation+budget*r.Between(1, 2)),
		BaseAttack:  attack,
		ArmorPierce: 1 + budget/6,
		ExtraTurns:  def.ExtraTurns,
	}
}

// GenerateBoss builds one of the two boss stat blocks scaled for (x, y)
func GenerateBoss(r *stats.Roller, kind BossKind, x, y int) *Enemy {
	budget := stats.PowerBudget(x, y)
	if kind == BabyDragon {
		variation := r.Between(-5, 5)
		return &Enemy{
			Name:        BabyDragon.String(),
			HP:          75 + variation + budget*r.Between(1, 3),
			BaseAttack:  int(float64(12+budget) * 1.4),
			ArmorPierce: 3 + budget/2,
			IsBoss:      true,
		}
	}
	variation := r.Between(-3, 3)
	return &Enemy{
		Name:        Troll.String(),
		HP:          60 + variation + budget*r.Between(1, 2),
		BaseAttack:  10 + budget,
		ArmorPierce: 2 + budget/3,
		IsBoss:      true,
	}
}

// GenerateSwarm builds 2-4 spiders (50/30/20%) sharing one room
func GenerateSwarm(r *stats.Roller, x, y int) []*Enemy {
	budget := stats.PowerBudget(x, y)
	size := 2 + r.Weighted(0.5, 0.3, 0.2)

	swarm := make([]*Enemy, 0, size)
	for i := 0; i < size; i++ {
		variation := r.Between(-2, 2)
		swarm = append(swarm, &Enemy{
			Name:       "Spider",
			HP:         6 + variation + budget*r.Between(0, 1),
			BaseAttack: 2 + budget,
			SwarmID:    i + 1,
		})
	}
	return swarm
}

// TrainingDummy is the harmless target in the starting room
func TrainingDummy() *Enemy {
	return &Enemy{
		Name:            "Training Dummy",
		HP:              999,
		IsTrainingDummy: true,
	}
}
