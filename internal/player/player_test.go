package player

import (
	"errors"
	"testing"

	"github.com/lawnchairsociety/delver/internal/gameerr"
	"github.com/lawnchairsociety/delver/internal/items"
	"github.com/lawnchairsociety/delver/internal/world"
)

func TestNewPlayerDefaults(t *testing.T) {
	p := New(DefaultOptions())

	if p.HP != 50 || p.MaxHP != 50 {
		t.Errorf("HP = %d/%d, want 50/50", p.HP, p.MaxHP)
	}
	if p.Stamina != 20 || p.Mana != 20 {
		t.Errorf("stamina/mana = %d/%d, want 20/20", p.Stamina, p.Mana)
	}
	if p.WaypointScrolls != 1 || p.Money != 0 || p.GoldenKeys != 0 {
		t.Errorf("scrolls=%d money=%d keys=%d", p.WaypointScrolls, p.Money, p.GoldenKeys)
	}
	if p.Level != 1 || p.XPToNext != 100 {
		t.Errorf("level %d xp to next %d", p.Level, p.XPToNext)
	}
	if p.Armor() != nil || p.Weapon() != nil || !p.FightingWithFists() {
		t.Error("new player should be unequipped")
	}
}

func TestResourcesAreClamped(t *testing.T) {
	p := New(DefaultOptions())

	if got := p.Heal(100); got != 0 || p.HP != 50 {
		t.Errorf("Heal at full = %d, HP %d", got, p.HP)
	}
	if got := p.TakeDamage(80); got != 50 || p.HP != 0 {
		t.Errorf("TakeDamage(80) = %d, HP %d", got, p.HP)
	}
	if p.IsAlive() {
		t.Error("player at 0 HP is alive")
	}
	if got := p.Heal(30); got != 30 || p.HP != 30 {
		t.Errorf("Heal(30) = %d, HP %d", got, p.HP)
	}

	p.Stamina = 15
	if got := p.RestoreStamina(10); got != 5 || p.Stamina != 20 {
		t.Errorf("RestoreStamina = %d, stamina %d", got, p.Stamina)
	}

	p.MaxMana = 195
	p.RaiseMaxMana(10)
	if p.MaxMana != MaxManaCap {
		t.Errorf("MaxMana = %d, want cap %d", p.MaxMana, MaxManaCap)
	}
}

func TestSpendFailuresLeaveStateUntouched(t *testing.T) {
	p := New(DefaultOptions())
	p.Money = 5

	tests := []struct {
		name string
		fn   func() error
		want error
	}{
		{"stamina", func() error { return p.SpendStamina(25) }, gameerr.ErrInsufficientResource},
		{"mana", func() error { return p.SpendMana(21) }, gameerr.ErrInsufficientMana},
		{"money", func() error { return p.SpendMoney(6) }, gameerr.ErrInsufficientResource},
		{"golden key", p.SpendGoldenKey, gameerr.ErrInsufficientResource},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.fn(); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}

	if p.Stamina != 20 || p.Mana != 20 || p.Money != 5 {
		t.Errorf("state changed: stamina %d mana %d money %d", p.Stamina, p.Mana, p.Money)
	}
	if err := p.SpendMana(21); !errors.Is(err, gameerr.ErrInsufficientResource) {
		t.Error("mana shortfall should also match ErrInsufficientResource")
	}
}

func TestCarryCaps(t *testing.T) {
	p := New(DefaultOptions())

	for i := 0; i < MaxGoldenKeys; i++ {
		if err := p.AddGoldenKey(); err != nil {
			t.Fatalf("AddGoldenKey #%d: %v", i+1, err)
		}
	}
	if err := p.AddGoldenKey(); !errors.Is(err, gameerr.ErrInventoryFull) {
		t.Errorf("fourth golden key err = %v", err)
	}

	p.WaypointScrolls = MaxWaypointScrolls
	if err := p.AddWaypointScroll(); !errors.Is(err, gameerr.ErrInventoryFull) {
		t.Errorf("fourth waypoint scroll err = %v", err)
	}

	for i := 0; i < items.MaxWeapons; i++ {
		if err := p.AddWeapon(items.StarterSword()); err != nil {
			t.Fatal(err)
		}
	}
	if err := p.AddWeapon(items.StarterSword()); !errors.Is(err, gameerr.ErrInventoryFull) {
		t.Errorf("fourth weapon err = %v", err)
	}
}

func TestWieldAndFists(t *testing.T) {
	p := New(DefaultOptions())
	a := &items.Weapon{Name: "A", Damage: 1, Durability: 1}
	b := &items.Weapon{Name: "B", Damage: 2, Durability: 1}
	p.AddWeapon(a)
	p.AddWeapon(b)

	p.UseFists()
	if !p.FightingWithFists() {
		t.Error("UseFists did not switch to fists")
	}
	if err := p.Wield(1); err != nil {
		t.Fatal(err)
	}
	if p.Weapon() != b || p.FightingWithFists() {
		t.Errorf("wielded %v, fists=%v", p.Weapon().Name, p.FightingWithFists())
	}
	if err := p.Wield(5); !errors.Is(err, gameerr.ErrInvalidSelection) {
		t.Errorf("Wield(5) err = %v", err)
	}

	p.DestroyWeapon()
	if p.Weapon() != a || len(p.Weapons) != 1 {
		t.Errorf("after DestroyWeapon wielding %v", p.Weapon())
	}
}

func TestArmorEquipIndexFollowsRemovals(t *testing.T) {
	p := New(DefaultOptions())
	first := &items.Armor{Name: "first", Defense: 2, Durability: 5}
	second := &items.Armor{Name: "second", Defense: 4, Durability: 5}
	p.AddArmor(first)
	p.AddArmor(second)

	if err := p.Equip(1); err != nil {
		t.Fatal(err)
	}
	if _, err := p.RemoveArmor(0); err != nil {
		t.Fatal(err)
	}
	if p.Armor() != second {
		t.Errorf("equipped = %v, want second", p.Armor())
	}

	p.DestroyArmor()
	if p.Armor() != nil || len(p.Armors) != 0 {
		t.Errorf("DestroyArmor left %d armors, equipped %v", len(p.Armors), p.Armor())
	}

	broken := &items.Armor{Name: "cracked", Defense: 3, MaxDurability: 9, Broken: true}
	p.AddArmor(broken)
	if err := p.Equip(0); !errors.Is(err, gameerr.ErrUnusableItem) {
		t.Errorf("equip broken err = %v", err)
	}
	if p.Armor() != nil {
		t.Error("broken armor was equipped")
	}
}

func TestLearnSpell(t *testing.T) {
	p := New(DefaultOptions())

	if err := p.LearnSpell("Fire"); !errors.Is(err, gameerr.ErrInsufficientResource) {
		t.Errorf("learn without scroll err = %v", err)
	}
	p.AddSpellScroll("Fire")
	p.AddSpellScroll("Stun")
	if err := p.LearnSpell("Stun"); err != nil {
		t.Fatal(err)
	}
	if err := p.LearnSpell("Fire"); err != nil {
		t.Fatal(err)
	}
	if len(p.Spells) != 2 || p.Spells[0] != "Stun" || p.Spells[1] != "Fire" {
		t.Errorf("Spells = %v, want learn order [Stun Fire]", p.Spells)
	}
	if len(p.SpellScrolls) != 0 {
		t.Errorf("scrolls left: %v", p.SpellScrolls)
	}

	p.AddSpellScroll("Fire")
	if err := p.LearnSpell("Fire"); !errors.Is(err, gameerr.ErrInvalidSelection) {
		t.Errorf("relearn err = %v", err)
	}
}

func TestWaypoints(t *testing.T) {
	p := New(DefaultOptions())
	home := world.Coord{Floor: 1, X: 2, Y: 3}

	if err := p.AddWaypoint("home", home); err != nil {
		t.Fatal(err)
	}
	if err := p.AddWaypoint("home", world.Coord{}); !errors.Is(err, gameerr.ErrInvalidSelection) {
		t.Errorf("duplicate err = %v", err)
	}
	if p.Waypoints["home"] != home {
		t.Error("duplicate overwrote the waypoint")
	}

	for i := 1; i < MaxWaypoints; i++ {
		if err := p.AddWaypoint(string(rune('a'+i)), world.Coord{X: i}); err != nil {
			t.Fatal(err)
		}
	}
	if err := p.AddWaypoint("extra", world.Coord{}); !errors.Is(err, gameerr.ErrInventoryFull) {
		t.Errorf("eleventh waypoint err = %v", err)
	}

	if err := p.DeleteWaypoint("home"); err != nil {
		t.Fatal(err)
	}
	if err := p.DeleteWaypoint("home"); !errors.Is(err, gameerr.ErrInvalidSelection) {
		t.Errorf("delete missing err = %v", err)
	}
	if names := p.WaypointNames(); len(names) != MaxWaypoints-1 || names[0] != "b" {
		t.Errorf("WaypointNames() = %v", names)
	}
}

func TestDiscover(t *testing.T) {
	p := New(DefaultOptions())
	if !p.Discover("Goblin") {
		t.Error("first discovery not reported")
	}
	if p.Discover("Goblin") {
		t.Error("repeat discovery reported as new")
	}
	p.Discover("Rat")
	if names := p.BestiaryNames(); len(names) != 2 || names[0] != "Goblin" {
		t.Errorf("BestiaryNames() = %v", names)
	}
}
