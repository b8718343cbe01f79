package npc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lawnchairsociety/delver/internal/stats"
)

func TestGenerateEnemyScripted(t *testing.T) {
	roster := DefaultRoster()

	tests := []struct {
		name       string
		ints       []int
		x, y       int
		wantName   string
		wantHP     int
		wantAttack int
		wantPierce int
		wantTurns  int
	}{
		// pick, hp jitter (index 3 = 0), scale multiplier
		{"goblin at origin", []int{0, 3, 0}, 0, 0, "Goblin", 12, 5, 1, 0},
		{"orc far out", []int{3, 6, 1}, 30, 10, "Orc", 43, 15, 2, 0},
		{"rat", []int{4, 3, 0}, 8, 0, "Rat", 10, 4, 1, 2},
		{"spider", []int{6, 0, 0}, 4, 4, "Spider", 5, 4, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := stats.NewRoller(&stats.ScriptedSource{Ints: tc.ints})
			e := roster.GenerateEnemy(r, tc.x, tc.y)

			if e.Name != tc.wantName {
				t.Fatalf("Name = %q, want %q", e.Name, tc.wantName)
			}
			if e.HP != tc.wantHP {
				t.Errorf("HP = %d, want %d", e.HP, tc.wantHP)
			}
			if e.BaseAttack != tc.wantAttack {
				t.Errorf("BaseAttack = %d, want %d", e.BaseAttack, tc.wantAttack)
			}
			if e.ArmorPierce != tc.wantPierce {
				t.Errorf("ArmorPierce = %d, want %d", e.ArmorPierce, tc.wantPierce)
			}
			if e.ExtraTurns != tc.wantTurns {
				t.Errorf("ExtraTurns = %d, want %d", e.ExtraTurns, tc.wantTurns)
			}
			if e.IsBoss {
				t.Error("regular enemy flagged as boss")
			}
		})
	}
}

func TestGenerateBoss(t *testing.T) {
	tests := []struct {
		kind       BossKind
		ints       []int
		x, y       int
		wantHP     int
		wantAttack int
		wantPierce int
	}{
		{Troll, []int{3, 0}, 0, 0, 60, 10, 2},
		{Troll, []int{6, 1}, 40, 0, 83, 20, 5},
		{BabyDragon, []int{5, 0}, 0, 0, 75, 16, 3},
		{BabyDragon, []int{10, 2}, 16, 0, 92, 22, 5},
	}

	for _, tc := range tests {
		r := stats.NewRoller(&stats.ScriptedSource{Ints: tc.ints})
		e := GenerateBoss(r, tc.kind, tc.x, tc.y)
		if !e.IsBoss || e.Name != tc.kind.String() {
			t.Fatalf("got %+v, want boss %s", e, tc.kind)
		}
		if e.HP != tc.wantHP || e.BaseAttack != tc.wantAttack || e.ArmorPierce != tc.wantPierce {
			t.Errorf("%s at (%d,%d) = hp %d atk %d pierce %d, want %d/%d/%d",
				tc.kind, tc.x, tc.y, e.HP, e.BaseAttack, e.ArmorPierce, tc.wantHP, tc.wantAttack, tc.wantPierce)
		}
	}
}

func TestBossForFloor(t *testing.T) {
	tests := []struct {
		floor int
		want  BossKind
	}{
		{1, Troll},
		{2, BabyDragon},
		{3, Troll},
		{0, Troll},
	}
	for _, tc := range tests {
		if got := BossForFloor(tc.floor); got != tc.want {
			t.Errorf("BossForFloor(%d) = %v, want %v", tc.floor, got, tc.want)
		}
	}
}

func TestGenerateSwarmSizes(t *testing.T) {
	tests := []struct {
		roll float64
		want int
	}{
		{0.1, 2},
		{0.6, 3},
		{0.95, 4},
	}

	for _, tc := range tests {
		r := stats.NewRoller(&stats.ScriptedSource{Floats: []float64{tc.roll}})
		swarm := GenerateSwarm(r, 0, 0)
		if len(swarm) != tc.want {
			t.Fatalf("roll %.2f: swarm size = %d, want %d", tc.roll, len(swarm), tc.want)
		}
		for i, s := range swarm {
			if s.SwarmID != i+1 {
				t.Errorf("spider %d SwarmID = %d", i, s.SwarmID)
			}
			if s.ArmorPierce != 0 || s.BaseAttack != 2 {
				t.Errorf("spider %d attack/pierce = %d/%d, want 2/0", i, s.BaseAttack, s.ArmorPierce)
			}
			if s.HP < 4 || s.HP > 8 {
				t.Errorf("spider %d hp = %d, want 4-8", i, s.HP)
			}
		}
	}
}

func TestLoadRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mobs.yaml")
	content := `enemies:
  - name: Bat
    base_hp: 5
    extra_turns: 3
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	roster, err := LoadRoster(path)
	if err != nil {
		t.Fatalf("LoadRoster: %v", err)
	}
	def, ok := roster.Definition("Bat")
	if !ok || def.AttackFactor != 1 || def.ExtraTurns != 3 {
		t.Errorf("Bat = %+v, ok=%v", def, ok)
	}
}

func TestNewRosterRejectsBadDefinitions(t *testing.T) {
	tests := []struct {
		name   string
		config MobsConfig
	}{
		{"empty", MobsConfig{}},
		{"unnamed", MobsConfig{Enemies: []EnemyDefinition{{BaseHP: 3}}}},
		{"no hp", MobsConfig{Enemies: []EnemyDefinition{{Name: "Ghost"}}}},
		{"duplicate", MobsConfig{Enemies: []EnemyDefinition{{Name: "A", BaseHP: 1}, {Name: "A", BaseHP: 2}}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewRoster(&tc.config); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestDefaultRosterNames(t *testing.T) {
	want := []string{"Goblin", "Skeleton", "Zombie", "Orc", "Rat", "Hungry Wolf", "Spider"}
	got := DefaultRoster().Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
