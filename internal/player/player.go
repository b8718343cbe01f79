package player

import (
	"fmt"
	"sort"

	"github.com/lawnchairsociety/delver/internal/gameerr"
	"github.com/lawnchairsociety/delver/internal/items"
	"github.com/lawnchairsociety/delver/internal/world"
)

// Carry limits
const (
	MaxGoldenKeys      = 3
	MaxWaypointScrolls = 3
	MaxWaypoints       = 10
	MaxManaCap         = 200
)

// Options are the starting values of a new character
type Options struct {
	HP              int
	Stamina         int
	Mana            int
	WaypointScrolls int
}

// DefaultOptions returns the standard starting character
func DefaultOptions() Options {
	return Options{HP: 50, Stamina: 20, Mana: 20, WaypointScrolls: 1}
}

// Player is the delver's full state apart from its position
type Player struct {
	HP         int
	MaxHP      int
	Stamina    int
	MaxStamina int
	Mana       int
	MaxMana    int
	Money      int

	HealthPotions   int
	StaminaPotions  int
	ManaPotions     int
	WaypointScrolls int
	GoldenKeys      int

	Keys      *KeyRing
	Waypoints map[string]world.Coord
	Bestiary  map[string]bool

	// Spells is ordered; the order is the cast menu order
	Spells       []string
	SpellScrolls map[string]int

	// Weapons[0] is the wielded weapon
	Weapons    []*items.Weapon
	Armors     []*items.Armor
	Equipped   int // index into Armors, -1 for none
	UsingFists bool

	Level       int
	XP          int
	XPToNext    int
	SkillPoints int

	Stats             *Statistics
	DiscoveredUniques map[string]bool
}

// New creates a player from opts
func New(opts Options) *Player {
	return &Player{
		HP:                opts.HP,
		MaxHP:             opts.HP,
		Stamina:           opts.Stamina,
		MaxStamina:        opts.Stamina,
		Mana:              opts.Mana,
		MaxMana:           opts.Mana,
		WaypointScrolls:   min(opts.WaypointScrolls, MaxWaypointScrolls),
		Keys:              NewKeyRing(),
		Waypoints:         make(map[string]world.Coord),
		Bestiary:          make(map[string]bool),
		SpellScrolls:      make(map[string]int),
		Equipped:          -1,
		Level:             1,
		XPToNext:          StartingXPToNext,
		Stats:             NewStatistics(),
		DiscoveredUniques: make(map[string]bool),
	}
}

// IsAlive reports whether the player has HP left
func (p *Player) IsAlive() bool {
	return p.HP > 0
}

// Heal restores HP up to MaxHP and returns the amount restored
func (p *Player) Heal(amount int) int {
	before := p.HP
	p.HP = clamp(p.HP+amount, p.MaxHP)
	return p.HP - before
}

// TakeDamage removes HP, never below zero, and returns the amount removed
func (p *Player) TakeDamage(amount int) int {
	before := p.HP
	p.HP = clamp(p.HP-amount, p.MaxHP)
	return before - p.HP
}

// RestoreStamina adds stamina up to MaxStamina
func (p *Player) RestoreStamina(amount int) int {
	before := p.Stamina
	p.Stamina = clamp(p.Stamina+amount, p.MaxStamina)
	return p.Stamina - before
}

// SpendStamina removes stamina or fails without changing anything
func (p *Player) SpendStamina(amount int) error {
	if p.Stamina < amount {
		return fmt.Errorf("need %d stamina, have %d: %w", amount, p.Stamina, gameerr.ErrInsufficientResource)
	}
	p.Stamina -= amount
	return nil
}

// RestoreMana adds mana up to MaxMana
func (p *Player) RestoreMana(amount int) int {
	before := p.Mana
	p.Mana = clamp(p.Mana+amount, p.MaxMana)
	return p.Mana - before
}

// SpendMana removes mana or fails with ErrInsufficientMana
func (p *Player) SpendMana(amount int) error {
	if p.Mana < amount {
		return fmt.Errorf("need %d, have %d: %w", amount, p.Mana, gameerr.ErrInsufficientMana)
	}
	p.Mana -= amount
	return nil
}

// RaiseMaxHP increases MaxHP
func (p *Player) RaiseMaxHP(amount int) {
	p.MaxHP += amount
}

// RaiseMaxStamina increases MaxStamina
func (p *Player) RaiseMaxStamina(amount int) {
	p.MaxStamina += amount
}

// RaiseMaxMana increases MaxMana up to MaxManaCap
func (p *Player) RaiseMaxMana(amount int) {
	p.MaxMana = max(p.MaxMana, min(p.MaxMana+amount, MaxManaCap))
}

// AddMoney adds gold
func (p *Player) AddMoney(amount int) {
	if amount > 0 {
		p.Money += amount
	}
}

// SpendMoney removes gold or fails without changing anything
func (p *Player) SpendMoney(amount int) error {
	if p.Money < amount {
		return fmt.Errorf("costs %d gold, have %d: %w", amount, p.Money, gameerr.ErrInsufficientResource)
	}
	p.Money -= amount
	return nil
}

// AddGoldenKey adds one golden key, up to MaxGoldenKeys
func (p *Player) AddGoldenKey() error {
	if p.GoldenKeys >= MaxGoldenKeys {
		return fmt.Errorf("golden keys: %w", gameerr.ErrInventoryFull)
	}
	p.GoldenKeys++
	return nil
}

// RequireGoldenKey fails unless a golden key is carried
func (p *Player) RequireGoldenKey() error {
	if p.GoldenKeys <= 0 {
		return fmt.Errorf("no golden key: %w", gameerr.ErrInsufficientResource)
	}
	return nil
}

// SpendGoldenKey uses up one golden key
func (p *Player) SpendGoldenKey() error {
	if err := p.RequireGoldenKey(); err != nil {
		return err
	}
	p.GoldenKeys--
	return nil
}

// AddWaypointScroll adds one scroll, up to MaxWaypointScrolls
func (p *Player) AddWaypointScroll() error {
	if p.WaypointScrolls >= MaxWaypointScrolls {
		return fmt.Errorf("waypoint scrolls: %w", gameerr.ErrInventoryFull)
	}
	p.WaypointScrolls++
	return nil
}

// SpendWaypointScroll uses up one waypoint scroll
func (p *Player) SpendWaypointScroll() error {
	if p.WaypointScrolls <= 0 {
		return fmt.Errorf("no waypoint scroll: %w", gameerr.ErrInsufficientResource)
	}
	p.WaypointScrolls--
	return nil
}

// Weapon returns the wielded weapon, or nil when empty handed
func (p *Player) Weapon() *items.Weapon {
	if len(p.Weapons) == 0 {
		return nil
	}
	return p.Weapons[0]
}

// FightingWithFists reports whether an attack would use bare hands
func (p *Player) FightingWithFists() bool {
	return p.UsingFists || len(p.Weapons) == 0
}

// AddWeapon puts w in the weapon bag
func (p *Player) AddWeapon(w *items.Weapon) error {
	return items.Add(&p.Weapons, w, items.MaxWeapons)
}

// RemoveWeapon takes the weapon at index i out of the bag
func (p *Player) RemoveWeapon(i int) (*items.Weapon, error) {
	return items.RemoveAt(&p.Weapons, i)
}

// Wield moves weapon i to the wielded slot and stops fighting with fists
func (p *Player) Wield(i int) error {
	if err := items.MoveToFront(p.Weapons, i); err != nil {
		return err
	}
	p.UsingFists = false
	return nil
}

// UseFists switches to bare hands without dropping any weapon
func (p *Player) UseFists() {
	p.UsingFists = true
}

// DestroyWeapon removes a worn out wielded weapon
func (p *Player) DestroyWeapon() {
	if len(p.Weapons) > 0 {
		p.Weapons = p.Weapons[1:]
	}
}

// Armor returns the equipped armor, or nil
func (p *Player) Armor() *items.Armor {
	if p.Equipped < 0 || p.Equipped >= len(p.Armors) {
		return nil
	}
	return p.Armors[p.Equipped]
}

// AddArmor puts a in the armor bag
func (p *Player) AddArmor(a *items.Armor) error {
	return items.Add(&p.Armors, a, items.MaxArmor)
}

// RemoveArmor takes armor i out of the bag, unequipping it if worn
func (p *Player) RemoveArmor(i int) (*items.Armor, error) {
	a, err := items.RemoveAt(&p.Armors, i)
	if err != nil {
		return nil, err
	}
	switch {
	case i == p.Equipped:
		p.Equipped = -1
	case i < p.Equipped:
		p.Equipped--
	}
	return a, nil
}

// Equip wears armor i. Broken armor cannot be worn.
func (p *Player) Equip(i int) error {
	if i < 0 || i >= len(p.Armors) {
		return fmt.Errorf("no armor %d: %w", i+1, gameerr.ErrInvalidSelection)
	}
	if !p.Armors[i].Usable() {
		return fmt.Errorf("%s: %w", p.Armors[i].Name, gameerr.ErrUnusableItem)
	}
	p.Equipped = i
	return nil
}

// DestroyArmor removes the worn out equipped armor
func (p *Player) DestroyArmor() {
	if p.Armor() == nil {
		return
	}
	p.RemoveArmor(p.Equipped)
}

// Discover adds name to the bestiary and reports whether it was new
func (p *Player) Discover(name string) bool {
	if p.Bestiary[name] {
		return false
	}
	p.Bestiary[name] = true
	return true
}

// BestiaryNames returns the discovered enemy names in order
func (p *Player) BestiaryNames() []string {
	return sortedNames(p.Bestiary)
}

// KnowsSpell reports whether name has been learned
func (p *Player) KnowsSpell(name string) bool {
	for _, s := range p.Spells {
		if s == name {
			return true
		}
	}
	return false
}

// AddSpellScroll adds an unredeemed scroll for name
func (p *Player) AddSpellScroll(name string) {
	p.SpellScrolls[name]++
}

// LearnSpell redeems a scroll for name and appends it to the cast menu
func (p *Player) LearnSpell(name string) error {
	if p.KnowsSpell(name) {
		return fmt.Errorf("%s already known: %w", name, gameerr.ErrInvalidSelection)
	}
	if p.SpellScrolls[name] <= 0 {
		return fmt.Errorf("no %s scroll: %w", name, gameerr.ErrInsufficientResource)
	}
	p.SpellScrolls[name]--
	if p.SpellScrolls[name] == 0 {
		delete(p.SpellScrolls, name)
	}
	p.Spells = append(p.Spells, name)
	return nil
}

// AddWaypoint records c under name
func (p *Player) AddWaypoint(name string, c world.Coord) error {
	if name == "" {
		return fmt.Errorf("empty waypoint name: %w", gameerr.ErrInvalidSelection)
	}
	if _, exists := p.Waypoints[name]; exists {
		return fmt.Errorf("waypoint %q exists: %w", name, gameerr.ErrInvalidSelection)
	}
	if len(p.Waypoints) >= MaxWaypoints {
		return fmt.Errorf("waypoints: %w", gameerr.ErrInventoryFull)
	}
	p.Waypoints[name] = c
	return nil
}

// DeleteWaypoint forgets the waypoint name
func (p *Player) DeleteWaypoint(name string) error {
	if _, exists := p.Waypoints[name]; !exists {
		return fmt.Errorf("no waypoint %q: %w", name, gameerr.ErrInvalidSelection)
	}
	delete(p.Waypoints, name)
	return nil
}

// WaypointNames returns waypoint names in order
func (p *Player) WaypointNames() []string {
	names := make([]string, 0, len(p.Waypoints))
	for name := range p.Waypoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func clamp(v, hi int) int {
	return max(0, min(v, hi))
}
