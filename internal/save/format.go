// Package save encodes a game to the JSON snapshot format and back, and
// stores snapshots in named slots on disk or in a database.
//
// The snapshot layout is shared with saves written by older versions of the
// game. Decoding upgrades those: a single-floor "world" map becomes floor 0,
// two-element waypoints land on floor 0 and the old boolean mysterious key
// becomes the floor 0 key.
package save

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// unknownDamage is how weapons without numeric damage are written
const unknownDamage = "???"

// fileData is the top-level snapshot document
type fileData struct {
	Worlds map[string]map[string]*roomData `json:"worlds,omitempty"`
	World  map[string]*roomData            `json:"world,omitempty"` // legacy single floor

	Inventory      []weaponData `json:"inventory"`
	ArmorInventory []armorData  `json:"armor_inventory"`
	EquippedArmor  *armorData   `json:"equipped_armor"`
	UsingFists     bool         `json:"using_fists"`

	PlayerFloor *int `json:"player_floor,omitempty"`
	PlayerX     int  `json:"player_x"`
	PlayerY     int  `json:"player_y"`

	PlayerHP         *int `json:"player_hp"`
	PlayerMaxHP      *int `json:"player_max_hp"`
	PlayerStamina    *int `json:"player_stamina,omitempty"`
	PlayerMaxStamina *int `json:"player_max_stamina,omitempty"`
	PlayerMana       *int `json:"player_mana,omitempty"`
	PlayerMaxMana    *int `json:"player_max_mana,omitempty"`
	PlayerMoney      int  `json:"player_money"`
	PlayerPotions    int  `json:"player_potions"`
	StaminaPotions   int  `json:"stamina_potions"`
	ManaPotions      int  `json:"mana_potions"`

	MysteriousKey  *bool           `json:"mysterious_key,omitempty"` // legacy
	MysteriousKeys map[string]bool `json:"mysterious_keys"`
	GoldenKeys     int             `json:"golden_keys"`
	UnlockedFloors []int           `json:"unlocked_floors"`

	Waypoints       map[string][]int `json:"waypoints"`
	WaypointScrolls int              `json:"waypoint_scrolls"`

	DiscoveredEnemies []string       `json:"discovered_enemies"`
	LearnedSpells     []string       `json:"learned_spells"`
	SpellScrolls      map[string]int `json:"spell_scrolls"`

	PlayerLevel       *int `json:"player_level,omitempty"`
	PlayerXP          int  `json:"player_xp"`
	PlayerXPToNext    *int `json:"player_xp_to_next,omitempty"`
	PlayerSkillPoints int  `json:"player_skill_points"`

	Statistics        *statisticsData       `json:"statistics,omitempty"`
	DiscoveredUniques map[string]uniqueData `json:"discovered_uniques,omitempty"`
}

type roomData struct {
	Description           string       `json:"description"`
	Type                  string       `json:"type"`
	Enemy                 enemyList    `json:"enemy"`
	Weapons               []weaponData `json:"weapons"`
	Armors                []armorData  `json:"armors"`
	Shop                  *shopData    `json:"shop"`
	Chest                 *chestData   `json:"chest"`
	CrystalType           *string      `json:"crystal_type"`
	KeyRequired           bool         `json:"key_required,omitempty"`
	RequiresMysteriousKey bool         `json:"requires_mysterious_key,omitempty"`
	TreasureLooted        bool         `json:"treasure_looted,omitempty"`
	MysteriousKey         *keyData     `json:"mysterious_key"`
}

type keyData struct {
	Floor int    `json:"floor"`
	Name  string `json:"name"`
}

type enemyData struct {
	Name            string   `json:"name"`
	HP              int      `json:"hp"`
	BaseAttack      int      `json:"base_attack"`
	ArmorPierce     int      `json:"armor_pierce,omitempty"`
	IsBoss          bool     `json:"is_boss"`
	IsTrainingDummy bool     `json:"is_training_dummy,omitempty"`
	ExtraTurns      int      `json:"extra_turns,omitempty"`
	SwarmID         int      `json:"swarm_id,omitempty"`
	Burning         *dotData `json:"Burning,omitempty"`
	Poisoned        *dotData `json:"Poisoned,omitempty"`
	Stunned         int      `json:"Stunned,omitempty"`
}

type dotData struct {
	Damage   int `json:"damage"`
	Duration int `json:"duration"`
}

// enemyList is a room's "enemy" field: null, one object, or an array
type enemyList []enemyData

// MarshalJSON writes a lone enemy as an object and a swarm as an array
func (l enemyList) MarshalJSON() ([]byte, error) {
	switch len(l) {
	case 0:
		return []byte("null"), nil
	case 1:
		return json.Marshal(l[0])
	default:
		return json.Marshal([]enemyData(l))
	}
}

// UnmarshalJSON accepts null, an object or an array
func (l *enemyList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*l = nil
		return nil
	case len(data) > 0 && data[0] == '[':
		var many []enemyData
		if err := json.Unmarshal(data, &many); err != nil {
			return err
		}
		*l = many
		return nil
	default:
		var one enemyData
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*l = enemyList{one}
		return nil
	}
}

// damageValue is a weapon's damage: a number, or "???" when unknown
type damageValue struct {
	N       int
	Unknown bool
}

// MarshalJSON writes the number or "???"
func (d damageValue) MarshalJSON() ([]byte, error) {
	if d.Unknown {
		return json.Marshal(unknownDamage)
	}
	return []byte(strconv.Itoa(d.N)), nil
}

// UnmarshalJSON accepts a number or the string "???"
func (d *damageValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != unknownDamage {
			return fmt.Errorf("weapon damage %q is not a number", s)
		}
		*d = damageValue{Unknown: true}
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*d = damageValue{N: n}
	return nil
}

type weaponData struct {
	Name          string      `json:"name"`
	Damage        damageValue `json:"damage"`
	Durability    int         `json:"durability"`
	MaxDurability *int        `json:"max_durability,omitempty"`
	RequiresMana  bool        `json:"requires_mana,omitempty"`
	ManaCost      int         `json:"mana_cost,omitempty"`
	CritChance    *float64    `json:"crit_chance,omitempty"`
	CritDamage    *float64    `json:"crit_damage,omitempty"`
	IsBroken      bool        `json:"is_broken,omitempty"`
}

type armorData struct {
	Name          string `json:"name"`
	Defense       int    `json:"defense"`
	Durability    int    `json:"durability"`
	MaxDurability *int   `json:"max_durability,omitempty"`
	IsBroken      bool   `json:"is_broken,omitempty"`
}

type listingData struct {
	weaponData
	Cost int `json:"cost"`
}

type shopData struct {
	Items []listingData `json:"items"`

	PotionPrice        int `json:"potion_price"`
	StaminaPotionPrice int `json:"stamina_potion_price"`
	ManaPotionPrice    int `json:"mana_potion_price"`
	HealthPotions      int `json:"health_potions"`
	StaminaPotions     int `json:"stamina_potions"`
	ManaPotions        int `json:"mana_potions"`

	HasKey     bool `json:"has_key,omitempty"` // legacy single key stock
	GoldenKeys int  `json:"golden_keys"`
	KeyPrice   int  `json:"key_price,omitempty"`

	Armor      *armorData `json:"armor"`
	ArmorPrice int        `json:"armor_price,omitempty"`

	LifeCrystal    bool `json:"life_crystal"`
	StaminaCrystal bool `json:"stamina_crystal"`
	ManaCrystal    bool `json:"mana_crystal"`
	CrystalPrice   int  `json:"crystal_price,omitempty"`

	WaypointScrolls     int `json:"waypoint_scrolls"`
	WaypointScrollPrice int `json:"waypoint_scroll_price"`

	SpellScrolls        map[string]int `json:"spell_scrolls"`
	SpellScrollPrices   map[string]int `json:"spell_scroll_prices"`
	SpellScrollDiscount float64        `json:"spell_scroll_discount,omitempty"`
	IsDiscountShop      bool           `json:"is_discount_shop"`
}

type chestData struct {
	Weapons     []weaponData `json:"weapons"`
	Potions     int          `json:"potions"`
	Locked      *bool        `json:"locked,omitempty"`
	Opened      bool         `json:"opened"`
	LifeCrystal bool         `json:"life_crystal"`
	Armor       *armorData   `json:"armor"`
}

type statisticsData struct {
	EnemiesDefeated  int   `json:"enemies_defeated"`
	BossesDefeated   int   `json:"bosses_defeated"`
	TotalDamageDealt int   `json:"total_damage_dealt"`
	TotalDamageTaken int   `json:"total_damage_taken"`
	CriticalHits     int   `json:"critical_hits"`
	AttackCount      int   `json:"attack_count"`
	RoomsExplored    int   `json:"rooms_explored"`
	FloorsVisited    []int `json:"floors_visited"`
	MoveCount        int   `json:"move_count"`
	ItemsCollected   int   `json:"items_collected"`
	WeaponsBroken    int   `json:"weapons_broken"`
	ArmorBroken      int   `json:"armor_broken"`
	GoldEarned       int   `json:"gold_earned"`
}

type uniqueData struct {
	Discovered bool           `json:"discovered"`
	Location   map[string]any `json:"location"`
	Timestamp  string         `json:"timestamp"`
}

func ptr[T any](v T) *T {
	return &v
}

func deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
