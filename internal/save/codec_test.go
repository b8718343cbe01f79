package save

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/lawnchairsociety/delver/internal/gameerr"
	"github.com/lawnchairsociety/delver/internal/items"
	"github.com/lawnchairsociety/delver/internal/npc"
	"github.com/lawnchairsociety/delver/internal/player"
	"github.com/lawnchairsociety/delver/internal/spells"
	"github.com/lawnchairsociety/delver/internal/stats"
	"github.com/lawnchairsociety/delver/internal/tower"
	"github.com/lawnchairsociety/delver/internal/world"
)

func newTestGenerator() *tower.Generator {
	return tower.NewGenerator(stats.NewRoller(&stats.ScriptedSource{}), npc.DefaultRoster(), spells.DefaultRegistry(), nil)
}

// sampleGame builds a game with one room of every kind spread over two floors
func sampleGame() Game {
	t := tower.NewTower(newTestGenerator())

	origin := tower.OriginRoom()
	t.SetRoom(world.Coord{Floor: 1}, origin)

	normal := world.NewNormalRoom("A damp cave.")
	normal.Crystal = world.CrystalLifeMana
	normal.Key = &world.KeyPickup{Floor: 1}
	normal.Armors = []*items.Armor{{Name: "Iron Mail", Defense: 7, Durability: 3, MaxDurability: 12}}
	normal.Enemies = []*npc.Enemy{
		{Name: "Giant Spider", HP: 6, BaseAttack: 3, SwarmID: 1},
		{Name: "Giant Spider", HP: 4, BaseAttack: 3, SwarmID: 1,
			Effects: npc.StatusEffects{Burning: &npc.DamageOverTime{Damage: 2, Turns: 3}, Stunned: 1}},
	}
	t.SetRoom(world.Coord{Floor: 1, X: 1}, normal)

	t.SetRoom(world.Coord{Floor: 1, X: 2}, world.NewStairwellRoom())

	vault := world.NewVaultRoom(&npc.Enemy{Name: "Troll", HP: 80, BaseAttack: 9, IsBoss: true})
	t.SetRoom(world.Coord{Floor: 1, Y: -1}, vault)

	chest := world.NewChestRoom(&world.Chest{
		Weapons:     []*items.Weapon{{Name: "Spell Book", Kind: items.SpellBook, Durability: 9, MaxDurability: 9, CritChance: 0.05, CritMultiplier: 2}},
		Armor:       &items.Armor{Name: "Enchanted Mail", Defense: 9, Durability: 15, MaxDurability: 15},
		Potions:     2,
		LifeCrystal: true,
		Locked:      true,
	})
	t.SetRoom(world.Coord{Floor: 2, X: 3, Y: 4}, chest)

	shop := &world.Shop{
		Weapons:             []world.WeaponListing{{Weapon: &items.Weapon{Name: "Axe+2", Kind: items.Axe, Damage: 11, Durability: 12, MaxDurability: 12, CritChance: 0.05, CritMultiplier: 2}, Cost: 18}},
		HealthPotions:       2,
		PotionPrice:         8,
		StaminaPotionPrice:  6,
		ManaPotionPrice:     14,
		SpellScrolls:        map[string]int{"Fire": 1},
		SpellScrollPrices:   map[string]int{"Fire": 35},
		GoldenKeys:          1,
		KeyPrice:            30,
		ArmorPrice:          12,
		CrystalPrice:        18,
		StaminaCrystal:      true,
		WaypointScrollPrice: 20,
		Discount:            world.DiscountMultiplier,
	}
	t.SetRoom(world.Coord{Floor: 2, X: -1}, world.NewShopRoom(shop))

	p := player.New(player.DefaultOptions())
	p.HP = 33
	p.Weapons = []*items.Weapon{items.StarterSword()}
	p.Armors = []*items.Armor{
		{Name: "Leather Armor", Defense: 4, Durability: 5, MaxDurability: 8},
		{Name: "Troll Hide", Defense: 6, Durability: 20, MaxDurability: 20},
	}
	p.Equipped = 1
	p.Money = 77
	p.GoldenKeys = 2
	p.Keys.Grant(2)
	p.Keys.Unlock(1)
	p.Waypoints["camp"] = world.Coord{Floor: 2, X: 3, Y: 4}
	p.Discover("Giant Spider")
	p.Spells = []string{"Poison", "Fire"}
	p.SpellScrolls["Stun"] = 1
	p.Stats.RecordMove()
	p.Stats.RecordFloorVisited(1)
	p.Stats.RecordFloorVisited(2)

	return Game{Tower: t, Player: p, Pos: world.Coord{Floor: 2, X: 3, Y: 4}}
}

func TestRoundTripPreservesGame(t *testing.T) {
	g := sampleGame()

	data, err := Encode(g)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data, newTestGenerator())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got.Pos != g.Pos {
		t.Errorf("Pos = %v, want %v", got.Pos, g.Pos)
	}
	if !reflect.DeepEqual(got.Tower.FloorNumbers(), []int{1, 2}) {
		t.Errorf("floors = %v, want [1 2]", got.Tower.FloorNumbers())
	}
	if got.Tower.RoomCount() != g.Tower.RoomCount() {
		t.Errorf("RoomCount = %d, want %d", got.Tower.RoomCount(), g.Tower.RoomCount())
	}

	for _, n := range g.Tower.FloorNumbers() {
		floor, _ := g.Tower.Floor(n)
		for key, want := range floor.Rooms() {
			c, _ := world.ParseKey(n, key)
			room := got.Tower.Peek(c)
			if room == nil {
				t.Errorf("room %s missing after round trip", c)
				continue
			}
			if !reflect.DeepEqual(room, want) {
				t.Errorf("room %s = %+v, want %+v", c, room, want)
			}
		}
	}

	p := got.Player
	if p.Keys.State(1) != player.KeyUnlocked || p.Keys.State(2) != player.KeyHeld {
		t.Errorf("key states = %v/%v, want unlocked/held", p.Keys.State(1), p.Keys.State(2))
	}
	if p.Armor() == nil || p.Armor().Name != "Troll Hide" {
		t.Errorf("equipped armor = %v, want Troll Hide", p.Armor())
	}
	if p.HP != 33 || p.Money != 77 || p.GoldenKeys != 2 {
		t.Errorf("hp/money/keys = %d/%d/%d", p.HP, p.Money, p.GoldenKeys)
	}
	if !reflect.DeepEqual(p.Spells, []string{"Poison", "Fire"}) {
		t.Errorf("Spells = %v", p.Spells)
	}
	if p.Waypoints["camp"] != (world.Coord{Floor: 2, X: 3, Y: 4}) {
		t.Errorf("waypoint camp = %v", p.Waypoints["camp"])
	}
	if !reflect.DeepEqual(p.Stats, g.Player.Stats) {
		t.Errorf("Stats = %+v, want %+v", p.Stats, g.Player.Stats)
	}
	if !reflect.DeepEqual(p.Weapons, g.Player.Weapons) {
		t.Errorf("Weapons = %+v", p.Weapons)
	}
}

func TestDecodeLegacyWorld(t *testing.T) {
	data := `{
		"world": {
			"0,0": {"description": "Start.", "enemy": null, "weapons": [], "type": "normal"},
			"0,1": {"description": "Stairs.", "enemy": null, "weapons": [], "requires_mysterious_key": true}
		},
		"inventory": [{"name": "Rusty Sword", "damage": 5, "durability": 10}],
		"player_x": 0, "player_y": 1,
		"player_hp": 50, "player_max_hp": 50,
		"mysterious_key": true,
		"waypoints": {"home": [0, 0]}
	}`

	g, err := Decode([]byte(data), newTestGenerator())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if !reflect.DeepEqual(g.Tower.FloorNumbers(), []int{0}) {
		t.Fatalf("floors = %v, want exactly floor 0", g.Tower.FloorNumbers())
	}
	if g.Pos != (world.Coord{Floor: 0, X: 0, Y: 1}) {
		t.Errorf("Pos = %v", g.Pos)
	}
	if room := g.Tower.Peek(world.Coord{Floor: 0, Y: 1}); room == nil || room.Kind != world.KindStairwell {
		t.Errorf("untyped stairwell room = %+v", room)
	}
	if g.Player.Keys.State(0) != player.KeyHeld {
		t.Errorf("floor 0 key state = %v, want held", g.Player.Keys.State(0))
	}
	if g.Player.Waypoints["home"] != (world.Coord{}) {
		t.Errorf("legacy waypoint = %v, want floor 0 origin", g.Player.Waypoints["home"])
	}
}

func TestDecodeDefaults(t *testing.T) {
	data := `{
		"worlds": {"1": {}},
		"inventory": [{"name": "Magic Staff", "damage": 7, "durability": 6}],
		"player_hp": 40, "player_max_hp": 50
	}`

	g, err := Decode([]byte(data), newTestGenerator())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	p := g.Player

	if g.Pos.Floor != 1 {
		t.Errorf("default floor = %d, want 1", g.Pos.Floor)
	}
	if p.Stamina != 20 || p.MaxStamina != 20 || p.Mana != 20 || p.MaxMana != 20 {
		t.Errorf("stamina/mana = %d/%d %d/%d, want 20/20 20/20", p.Stamina, p.MaxStamina, p.Mana, p.MaxMana)
	}
	if p.Level != 1 || p.XPToNext != player.StartingXPToNext {
		t.Errorf("level = %d xp_to_next = %d", p.Level, p.XPToNext)
	}
	if p.Equipped != -1 {
		t.Errorf("Equipped = %d, want -1", p.Equipped)
	}

	w := p.Weapons[0]
	if w.Kind != items.MagicStaff || w.MaxDurability != 6 {
		t.Errorf("weapon kind/max = %v/%d, want Magic Staff/6", w.Kind, w.MaxDurability)
	}
	if w.CritChance != items.BaseCritChance || w.CritMultiplier != items.BaseCritMultiplier {
		t.Errorf("crit = %v x%v, want base profile", w.CritChance, w.CritMultiplier)
	}
}

func TestDecodeHitPoints(t *testing.T) {
	start := player.DefaultOptions().HP
	tests := []struct {
		name      string
		fields    string
		hp, maxHP int
	}{
		{"both saved", `"player_hp": 40, "player_max_hp": 60`, 40, 60},
		{"legacy without max", `"player_hp": 40`, 40, start},
		{"legacy above starting max", `"player_hp": 80`, 80, 80},
		{"zero max", `"player_hp": 30, "player_max_hp": 0`, 30, start},
		{"hp above max", `"player_hp": 90, "player_max_hp": 60`, 60, 60},
		{"negative hp", `"player_hp": -5, "player_max_hp": 60`, 0, 60},
		{"defeated", `"player_hp": 0, "player_max_hp": 60`, 0, 60},
		{"neither saved", ``, start, start},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := `{"world": {"0,0": {"description": "x"}}`
			if tt.fields != "" {
				data += ", " + tt.fields
			}
			data += "}"
			g, err := Decode([]byte(data), newTestGenerator())
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			p := g.Player
			if p.HP != tt.hp || p.MaxHP != tt.maxHP {
				t.Errorf("hp = %d/%d, want %d/%d", p.HP, p.MaxHP, tt.hp, tt.maxHP)
			}
		})
	}
}

func TestLegacySaveSurvivesHealing(t *testing.T) {
	data := `{"world": {"0,0": {"description": "x"}}, "player_hp": 40}`
	g, err := Decode([]byte(data), newTestGenerator())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	p := g.Player
	p.Heal(5)
	if !p.IsAlive() || p.HP != 45 {
		t.Errorf("after Heal(5) hp = %d/%d, want 45 and alive", p.HP, p.MaxHP)
	}
}

func TestDecodeEnemyShapes(t *testing.T) {
	tests := []struct {
		name  string
		enemy string
		want  int
	}{
		{"null", `null`, 0},
		{"object", `{"name": "Rat", "hp": 5, "base_attack": 2, "is_boss": false}`, 1},
		{"array", `[{"name": "Rat", "hp": 5}, {"name": "Rat", "hp": 4}, {"name": "Rat", "hp": 3}]`, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := `{"worlds": {"1": {"2,2": {"description": "x", "type": "normal", "enemy": ` + tt.enemy + `}}}}`
			g, err := Decode([]byte(data), newTestGenerator())
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			room := g.Tower.Peek(world.Coord{Floor: 1, X: 2, Y: 2})
			if len(room.Enemies) != tt.want {
				t.Errorf("enemies = %d, want %d", len(room.Enemies), tt.want)
			}
			if tt.want == 0 && room.Enemies != nil {
				t.Error("cleared room should have a nil enemy slot")
			}
		})
	}
}

func TestEncodeEnemyShapes(t *testing.T) {
	tests := []struct {
		name    string
		enemies []enemyData
		want    string
	}{
		{"none", nil, "null"},
		{"one", []enemyData{{Name: "Rat", HP: 5}}, `{"name":"Rat"`},
		{"many", []enemyData{{Name: "Rat"}, {Name: "Rat"}}, `[{"name":"Rat"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := enemyList(tt.enemies).MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON: %v", err)
			}
			if !strings.HasPrefix(string(out), tt.want) {
				t.Errorf("MarshalJSON = %s, want prefix %s", out, tt.want)
			}
		})
	}
}

func TestSerializeRoomMarksStairwells(t *testing.T) {
	tests := []struct {
		name string
		room *world.Room
		want bool
	}{
		{"stairwell", world.NewStairwellRoom(), true},
		{"normal", world.NewNormalRoom("x"), false},
		{"vault", world.NewVaultRoom(npc.TrainingDummy()), false},
	}
	for _, tt := range tests {
		rd := serializeRoom(tt.room)
		if rd.RequiresMysteriousKey != tt.want {
			t.Errorf("%s: requires_mysterious_key = %v, want %v", tt.name, rd.RequiresMysteriousKey, tt.want)
		}
	}
}

func TestUnknownDamage(t *testing.T) {
	data := `{"worlds": {"1": {}}, "inventory": [{"name": "Tome", "damage": "???", "durability": 8}]}`

	g, err := Decode([]byte(data), newTestGenerator())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	w := g.Player.Weapons[0]
	if w.Kind != items.SpellBook || w.HasDamage() {
		t.Errorf("weapon = %+v, want a spell book without damage", w)
	}

	out, err := Encode(*g)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(string(out), `"damage":"???"`) {
		t.Errorf("encoded spell book damage not written as ???: %s", out)
	}
}

func TestDecodeCorrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"worlds":`},
		{"no world", `{"player_hp": 10}`},
		{"wrong type", `{"worlds": {"1": {}}, "player_hp": "lots"}`},
		{"bad floor", `{"worlds": {"one": {}}}`},
		{"bad room key", `{"worlds": {"1": {"north": {"type": "normal"}}}}`},
		{"unknown room type", `{"worlds": {"1": {"0,1": {"type": "castle"}}}}`},
		{"unknown crystal", `{"worlds": {"1": {"0,1": {"type": "normal", "crystal_type": "fire"}}}}`},
		{"chest without payload", `{"worlds": {"1": {"0,1": {"type": "chest"}}}}`},
		{"bad damage", `{"worlds": {"1": {}}, "inventory": [{"name": "Axe", "damage": "lots"}]}`},
		{"too many weapons", `{"worlds": {"1": {}}, "inventory": [{"name": "a"}, {"name": "b"}, {"name": "c"}, {"name": "d"}]}`},
		{"bad waypoint", `{"worlds": {"1": {}}, "waypoints": {"x": [1]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.data), newTestGenerator()); !errors.Is(err, gameerr.ErrCorruptSave) {
				t.Errorf("Decode error = %v, want ErrCorruptSave", err)
			}
		})
	}
}
