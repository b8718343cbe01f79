package player

import "math"

// Leveling constants
const (
	MaxLevel         = 100
	HPPerLevel       = 1
	MaxHPPerLevel    = 2
	StartingXPToNext = 100
)

// baseXP is the reward for each known enemy; anything else is worth defaultXP
var baseXP = map[string]int{
	"Training Dummy": 5,
	"Rat":            8,
	"Hungry Wolf":    12,
	"Orc":            15,
	"Troll":          75,
}

const defaultXP = 10

// XPToNextLevel returns the XP needed to advance from level.
// Uses polynomial curve: 100 * level^1.5
func XPToNextLevel(level int) int {
	if level >= MaxLevel {
		return 0
	}
	if level < 1 {
		level = 1
	}
	return int(100 * math.Pow(float64(level), 1.5))
}

// XPReward returns the experience for defeating name at (floor, x, y).
// Distance from the floor origin adds up to +100% and each floor above the
// first adds 20%.
func XPReward(name string, floor, x, y int) int {
	xp, ok := baseXP[name]
	if !ok {
		xp = defaultXP
	}
	distance := math.Abs(float64(x)) + math.Abs(float64(y))
	distanceMult := math.Min(1+distance/100, 2)
	floorMult := 1 + float64(floor-1)*0.2
	return max(1, int(float64(xp)*distanceMult*floorMult))
}

// LevelUpInfo describes the outcome of a GainXP call
type LevelUpInfo struct {
	LevelsGained int
	NewLevel     int
	HPGain       int
	MaxHPGain    int
}

// GainXP adds experience and applies every level-up it pays for
func (p *Player) GainXP(xp int) LevelUpInfo {
	info := LevelUpInfo{NewLevel: p.Level}
	if xp <= 0 {
		return info
	}
	p.XP += xp
	if p.XPToNext <= 0 {
		p.XPToNext = XPToNextLevel(p.Level)
	}

	for p.Level < MaxLevel && p.XP >= p.XPToNext {
		p.XP -= p.XPToNext
		p.Level++
		p.SkillPoints++
		p.MaxHP += MaxHPPerLevel
		p.HP = min(p.HP+HPPerLevel, p.MaxHP)
		p.XPToNext = XPToNextLevel(p.Level)

		info.LevelsGained++
		info.HPGain += HPPerLevel
		info.MaxHPGain += MaxHPPerLevel
	}
	info.NewLevel = p.Level
	return info
}

// LevelProgress returns progress toward the next level as a percentage
func (p *Player) LevelProgress() float64 {
	if p.XPToNext <= 0 {
		return 100
	}
	return float64(p.XP) / float64(p.XPToNext) * 100
}
