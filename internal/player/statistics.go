package player

import "sort"

// Statistics tracks lifetime activity for the stats screen
type Statistics struct {
	EnemiesDefeated int
	BossesDefeated  int
	DamageDealt     int
	DamageTaken     int
	CriticalHits    int
	Attacks         int
	RoomsExplored   int
	FloorsVisited   map[int]bool
	Moves           int
	ItemsCollected  int
	WeaponsBroken   int
	ArmorBroken     int
	GoldEarned      int
}

// NewStatistics creates a zeroed statistics tracker
func NewStatistics() *Statistics {
	return &Statistics{FloorsVisited: make(map[int]bool)}
}

// RecordKill increments kill counts
func (s *Statistics) RecordKill(boss bool) {
	s.EnemiesDefeated++
	if boss {
		s.BossesDefeated++
	}
}

// RecordAttack counts one attack and its damage
func (s *Statistics) RecordAttack(damage int, critical bool) {
	s.Attacks++
	s.DamageDealt += damage
	if critical {
		s.CriticalHits++
	}
}

// RecordDamageDealt adds damage not tied to an attack, such as burning
func (s *Statistics) RecordDamageDealt(amount int) {
	s.DamageDealt += amount
}

// RecordDamageTaken adds to total damage taken
func (s *Statistics) RecordDamageTaken(amount int) {
	s.DamageTaken += amount
}

// RecordGoldEarned adds to lifetime gold earned
func (s *Statistics) RecordGoldEarned(amount int) {
	s.GoldEarned += amount
}

// RecordMove increments distance traveled
func (s *Statistics) RecordMove() {
	s.Moves++
}

// RecordRoomExplored counts a newly generated room
func (s *Statistics) RecordRoomExplored() {
	s.RoomsExplored++
}

// RecordFloorVisited marks floor as visited
func (s *Statistics) RecordFloorVisited(floor int) {
	if s.FloorsVisited == nil {
		s.FloorsVisited = make(map[int]bool)
	}
	s.FloorsVisited[floor] = true
}

// RecordItemCollected counts an item picked up
func (s *Statistics) RecordItemCollected() {
	s.ItemsCollected++
}

// RecordWeaponBroken counts a weapon worn out in combat
func (s *Statistics) RecordWeaponBroken() {
	s.WeaponsBroken++
}

// RecordArmorBroken counts armor worn out in combat
func (s *Statistics) RecordArmorBroken() {
	s.ArmorBroken++
}

// Floors returns the visited floors, ascending
func (s *Statistics) Floors() []int {
	return sortedKeys(s.FloorsVisited)
}

// CritRate returns the share of attacks that were critical hits
func (s *Statistics) CritRate() float64 {
	if s.Attacks == 0 {
		return 0
	}
	return float64(s.CriticalHits) / float64(s.Attacks)
}

// sortedNames returns the keys of a string set in order
func sortedNames(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for name, ok := range m {
		if ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
