package npc

import (
	"testing"

	"github.com/lawnchairsociety/delver/internal/spells"
)

func TestTickDamageOverTime(t *testing.T) {
	e := &Enemy{Name: "Orc", HP: 20}
	e.Afflict(&spells.Spell{Effect: spells.EffectBurning, EffectDamage: 3, EffectDuration: 2})
	e.Afflict(&spells.Spell{Effect: spells.EffectPoisoned, EffectDamage: 2, EffectDuration: 1})

	tests := []struct {
		wantDamage   int
		wantHP       int
		wantBurning  bool
		wantPoisoned bool
	}{
		{5, 15, true, false},
		{3, 12, false, false},
		{0, 12, false, false},
	}

	for i, tc := range tests {
		got := e.TickDamageOverTime()
		if got != tc.wantDamage {
			t.Errorf("tick %d: damage = %d, want %d", i+1, got, tc.wantDamage)
		}
		if e.HP != tc.wantHP {
			t.Errorf("tick %d: hp = %d, want %d", i+1, e.HP, tc.wantHP)
		}
		if (e.Effects.Burning != nil) != tc.wantBurning {
			t.Errorf("tick %d: burning present = %v, want %v", i+1, e.Effects.Burning != nil, tc.wantBurning)
		}
		if (e.Effects.Poisoned != nil) != tc.wantPoisoned {
			t.Errorf("tick %d: poisoned present = %v, want %v", i+1, e.Effects.Poisoned != nil, tc.wantPoisoned)
		}
	}
}

func TestConsumeStun(t *testing.T) {
	e := &Enemy{Name: "Goblin", HP: 10}
	e.Afflict(&spells.Spell{Effect: spells.EffectStunned, EffectDuration: 1})

	if !e.ConsumeStun() {
		t.Error("first ConsumeStun should skip the turn")
	}
	if e.ConsumeStun() {
		t.Error("stun should have worn off")
	}
	if e.Effects.Stunned != 0 {
		t.Errorf("Stunned = %d, want 0", e.Effects.Stunned)
	}
}

func TestTrainingDummy(t *testing.T) {
	d := TrainingDummy()
	d.TakeDamage(5000)
	if !d.IsAlive() || d.HP != 999 {
		t.Errorf("dummy after hit: alive=%v hp=%d", d.IsAlive(), d.HP)
	}
	if d.Attacks() != 0 {
		t.Errorf("dummy Attacks() = %d, want 0", d.Attacks())
	}
	if d.BlocksPassage() {
		t.Error("dummy should not block passage")
	}
}

func TestBlocksPassage(t *testing.T) {
	tests := []struct {
		name  string
		enemy Enemy
		want  bool
	}{
		{"living regular", Enemy{HP: 4}, true},
		{"dead regular", Enemy{HP: 0}, false},
		{"boss", Enemy{HP: 60, IsBoss: true}, false},
	}

	for _, tc := range tests {
		if got := tc.enemy.BlocksPassage(); got != tc.want {
			t.Errorf("%s: BlocksPassage() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestAttacks(t *testing.T) {
	if got := (&Enemy{HP: 1}).Attacks(); got != 1 {
		t.Errorf("default Attacks() = %d, want 1", got)
	}
	if got := (&Enemy{HP: 1, ExtraTurns: 2}).Attacks(); got != 2 {
		t.Errorf("rat Attacks() = %d, want 2", got)
	}
}
