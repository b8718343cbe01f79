package player

import "testing"

func TestStatisticsRecording(t *testing.T) {
	s := NewStatistics()

	s.RecordAttack(8, false)
	s.RecordAttack(16, true)
	s.RecordDamageDealt(3)
	s.RecordKill(false)
	s.RecordKill(true)
	s.RecordFloorVisited(2)
	s.RecordFloorVisited(1)
	s.RecordFloorVisited(2)

	if s.Attacks != 2 || s.CriticalHits != 1 || s.DamageDealt != 27 {
		t.Errorf("attacks %d crits %d damage %d", s.Attacks, s.CriticalHits, s.DamageDealt)
	}
	if s.EnemiesDefeated != 2 || s.BossesDefeated != 1 {
		t.Errorf("enemies %d bosses %d", s.EnemiesDefeated, s.BossesDefeated)
	}
	if floors := s.Floors(); len(floors) != 2 || floors[0] != 1 {
		t.Errorf("Floors() = %v", floors)
	}
	if s.CritRate() != 0.5 {
		t.Errorf("CritRate() = %v", s.CritRate())
	}
}

func TestStatisticsNilFloorMap(t *testing.T) {
	s := &Statistics{}
	s.RecordFloorVisited(4)
	if !s.FloorsVisited[4] {
		t.Error("floor not recorded on zero-value Statistics")
	}
	if (&Statistics{}).CritRate() != 0 {
		t.Error("CritRate with no attacks should be 0")
	}
}
