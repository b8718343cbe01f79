package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lawnchairsociety/delver/internal/combat"
	"github.com/lawnchairsociety/delver/internal/game"
	"github.com/lawnchairsociety/delver/internal/gameerr"
	"github.com/lawnchairsociety/delver/internal/player"
	"github.com/lawnchairsociety/delver/internal/world"
)

var titleCaser = cases.Title(language.English)

// title capitalises each word: "fire" becomes "Fire"
func title(s string) string {
	return titleCaser.String(strings.ToLower(s))
}

// table lays rows out in columns padded to their widest cell. Widths are
// measured in terminal cells so wide glyphs stay aligned.
func table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if i == len(widths)-1 {
				sb.WriteString(cell)
			} else {
				sb.WriteString(runewidth.FillRight(cell, widths[i]+2))
			}
		}
		sb.WriteString("\n")
	}

	writeRow(headers)
	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	writeRow(rule)
	for _, row := range rows {
		writeRow(row)
	}
	return sb.String()
}

// describeError turns a failed action into a line for the player
func describeError(err error) string {
	prefix := "You can't do that"
	switch {
	case errors.Is(err, gameerr.ErrInsufficientMana):
		prefix = "Not enough mana"
	case errors.Is(err, gameerr.ErrInsufficientResource):
		prefix = "You don't have enough"
	case errors.Is(err, gameerr.ErrInventoryFull):
		prefix = "You can't carry any more"
	case errors.Is(err, gameerr.ErrUnusableItem):
		prefix = "That item is broken"
	case errors.Is(err, gameerr.ErrNothingHere):
		prefix = "There's nothing here for that"
	case errors.Is(err, gameerr.ErrBlocked):
		prefix = "Something stands in your way"
	case errors.Is(err, gameerr.ErrCorruptSave):
		prefix = "That save is damaged"
	case errors.Is(err, gameerr.ErrInvalidSelection):
		prefix = "Invalid choice"
	}
	return fmt.Sprintf("%s (%v).", prefix, err)
}

// describeRoom renders the room the player stands in
func describeRoom(g *game.State) string {
	room := g.Room()
	var sb strings.Builder

	fmt.Fprintf(&sb, "[Floor %d, (%d, %d)]\n", g.Pos.Floor, g.Pos.X, g.Pos.Y)
	sb.WriteString(room.Description)
	sb.WriteString("\n")

	if room.HasEnemies() {
		names := make([]string, 0, len(room.Enemies))
		for i, e := range room.Enemies {
			label := e.Name
			if !e.IsTrainingDummy {
				label = fmt.Sprintf("%s (%d HP)", e.Name, e.HP)
			}
			if room.IsSwarm() {
				label = fmt.Sprintf("%d) %s", i+1, label)
			}
			names = append(names, label)
		}
		fmt.Fprintf(&sb, "Enemies: %s\n", strings.Join(names, ", "))
	}

	if ground := g.Ground(); len(ground) > 0 {
		listed := make([]string, 0, len(ground))
		for i, name := range ground {
			listed = append(listed, fmt.Sprintf("%d) %s", i+1, name))
		}
		fmt.Fprintf(&sb, "On the ground: %s\n", strings.Join(listed, ", "))
	}

	if room.Crystal != world.CrystalNone {
		fmt.Fprintf(&sb, "A %s crystal glows here.\n", strings.ReplaceAll(room.Crystal.String(), "_", " and "))
	}
	switch room.Kind {
	case world.KindStairwell:
		switch g.Player.Keys.State(g.Pos.Floor) {
		case player.KeyUnlocked:
			sb.WriteString("The way down is open.\n")
		case player.KeyHeld:
			sb.WriteString("Your mysterious key fits the lock. Type 'descend'.\n")
		default:
			sb.WriteString("The stairwell is sealed. You need this floor's mysterious key.\n")
		}
	case world.KindKeyDoor:
		if room.Vault.Looted {
			sb.WriteString("The vault stands empty.\n")
		}
	case world.KindChest:
		if !room.Chest.Locked {
			sb.WriteString("The chest lies open and empty.\n")
		}
	case world.KindShop:
		sb.WriteString("Type 'shop' to see the wares.\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// describeOutcome narrates one combat round
func describeOutcome(out combat.Outcome) string {
	var lines []string

	switch {
	case out.SpellCast != "":
		lines = append(lines, fmt.Sprintf("You cast %s at the %s for %d damage.", out.SpellCast, out.Target, out.DamageDealt))
	default:
		lines = append(lines, fmt.Sprintf("You hit the %s for %d damage.", out.Target, out.DamageDealt))
	}
	if out.Critical {
		lines = append(lines, "Critical hit!")
	}
	if out.WeaponBroke {
		lines = append(lines, "Your weapon shatters!")
	}
	if out.StatusDamage > 0 {
		lines = append(lines, fmt.Sprintf("Lingering effects deal %d more damage.", out.StatusDamage))
	}

	if out.TargetDefeated {
		lines = append(lines, fmt.Sprintf("You defeated the %s!", out.Target))
		loot := out.Loot
		if loot.Gold > 0 {
			lines = append(lines, fmt.Sprintf("You find %d gold.", loot.Gold))
		}
		if loot.XP > 0 {
			lines = append(lines, fmt.Sprintf("You gain %d XP.", loot.XP))
		}
		if loot.LevelsGained > 0 {
			lines = append(lines, fmt.Sprintf("You feel stronger! (+%d level)", loot.LevelsGained))
		}
		if loot.NewEntry {
			lines = append(lines, fmt.Sprintf("The %s is added to your bestiary.", out.Target))
		}
		switch {
		case loot.KeyGranted:
			lines = append(lines, fmt.Sprintf("It dropped the mysterious key for floor %d.", loot.KeyFloor))
		case loot.KeyAlreadyHeld:
			lines = append(lines, fmt.Sprintf("It dropped a key for floor %d, but you already have one.", loot.KeyFloor))
		}
	}

	if out.EnemyStunned {
		lines = append(lines, "Your foe is stunned and can't strike back.")
	}
	for _, hit := range out.EnemyHits {
		lines = append(lines, fmt.Sprintf("You take %d damage.", hit))
	}
	if out.ArmorBroke {
		lines = append(lines, "Your armor falls apart!")
	}
	if out.PlayerDefeated {
		lines = append(lines, fmt.Sprintf("The %s has defeated you. Type 'restart' to begin again.", out.Target))
	}
	return strings.Join(lines, "\n")
}

// describeInventory renders the player's bags
func describeInventory(p *player.Player) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "HP %d/%d  Stamina %d/%d  Mana %d/%d  Gold %d\n",
		p.HP, p.MaxHP, p.Stamina, p.MaxStamina, p.Mana, p.MaxMana, p.Money)
	fmt.Fprintf(&sb, "Potions: %d health, %d stamina, %d mana\n", p.HealthPotions, p.StaminaPotions, p.ManaPotions)
	fmt.Fprintf(&sb, "Golden keys: %d  Waypoint scrolls: %d\n", p.GoldenKeys, p.WaypointScrolls)

	if held := p.Keys.HeldFloors(); len(held) > 0 {
		floors := make([]string, 0, len(held))
		for _, f := range held {
			floors = append(floors, fmt.Sprintf("%d", f))
		}
		fmt.Fprintf(&sb, "Mysterious keys for floors: %s\n", strings.Join(floors, ", "))
	}

	sb.WriteString("\n")
	if len(p.Weapons) == 0 {
		sb.WriteString("You carry no weapons.\n")
	} else {
		rows := make([][]string, 0, len(p.Weapons))
		for i, w := range p.Weapons {
			state := ""
			switch {
			case !w.Usable():
				state = "broken"
			case i == 0 && !p.FightingWithFists():
				state = "wielded"
			}
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1), w.Name, w.DamageLabel(),
				fmt.Sprintf("%d/%d", w.Durability, w.MaxDurability), state,
			})
		}
		sb.WriteString(table([]string{"#", "Weapon", "Damage", "Durability", ""}, rows))
	}
	if p.FightingWithFists() {
		sb.WriteString("You are fighting with your fists.\n")
	}

	sb.WriteString("\n")
	if len(p.Armors) == 0 {
		sb.WriteString("You carry no armor.\n")
	} else {
		rows := make([][]string, 0, len(p.Armors))
		for i, a := range p.Armors {
			state := ""
			switch {
			case !a.Usable():
				state = "broken"
			case i == p.Equipped:
				state = "worn"
			}
			// Drop numbers armor after the weapons
			rows = append(rows, []string{
				fmt.Sprintf("%d", len(p.Weapons)+i+1), a.Name, fmt.Sprintf("%d", a.Defense),
				fmt.Sprintf("%d/%d", a.Durability, a.MaxDurability), state,
			})
		}
		sb.WriteString(table([]string{"#", "Armor", "Defense", "Durability", ""}, rows))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// describeStats renders lifetime statistics
func describeStats(p *player.Player) string {
	s := p.Stats
	floors := make([]string, 0, len(s.FloorsVisited))
	for _, f := range s.Floors() {
		floors = append(floors, fmt.Sprintf("%d", f))
	}
	rows := [][]string{
		{"Enemies defeated", fmt.Sprintf("%d", s.EnemiesDefeated)},
		{"Bosses defeated", fmt.Sprintf("%d", s.BossesDefeated)},
		{"Damage dealt", fmt.Sprintf("%d", s.DamageDealt)},
		{"Damage taken", fmt.Sprintf("%d", s.DamageTaken)},
		{"Attacks", fmt.Sprintf("%d", s.Attacks)},
		{"Critical hits", fmt.Sprintf("%d (%.1f%%)", s.CriticalHits, 100*s.CritRate())},
		{"Rooms explored", fmt.Sprintf("%d", s.RoomsExplored)},
		{"Floors visited", strings.Join(floors, ", ")},
		{"Moves", fmt.Sprintf("%d", s.Moves)},
		{"Items collected", fmt.Sprintf("%d", s.ItemsCollected)},
		{"Weapons broken", fmt.Sprintf("%d", s.WeaponsBroken)},
		{"Armor broken", fmt.Sprintf("%d", s.ArmorBroken)},
		{"Gold earned", fmt.Sprintf("%d", s.GoldEarned)},
	}
	return strings.TrimRight(table([]string{"Statistic", "Value"}, rows), "\n")
}

func describeBestiary(p *player.Player) string {
	names := p.BestiaryNames()
	if len(names) == 0 {
		return "Your bestiary is empty."
	}
	rows := make([][]string, 0, len(names))
	for i, name := range names {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), name})
	}
	return strings.TrimRight(table([]string{"#", "Creature"}, rows), "\n")
}

func describeLevel(p *player.Player) string {
	if p.Level >= player.MaxLevel {
		return fmt.Sprintf("Level %d (max). Skill points: %d", p.Level, p.SkillPoints)
	}
	return fmt.Sprintf("Level %d  XP %d/%d (%.0f%%)  Skill points: %d",
		p.Level, p.XP, p.XPToNext, p.LevelProgress(), p.SkillPoints)
}

// describeSpells lists learned spells in cast order, then unread scrolls
func describeSpells(g *game.State) string {
	p := g.Player
	if len(p.Spells) == 0 && len(p.SpellScrolls) == 0 {
		return "You know no spells."
	}
	rows := make([][]string, 0, len(p.Spells))
	for i, name := range p.Spells {
		cost, effect := "", ""
		if sp, ok := g.Spells().Get(name); ok {
			cost = fmt.Sprintf("%d", sp.ManaCost)
			effect = title(string(sp.Effect))
		}
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), name, cost, effect})
	}

	var sb strings.Builder
	if len(rows) > 0 {
		sb.WriteString(table([]string{"#", "Spell", "Mana", "Effect"}, rows))
	}
	for name, n := range p.SpellScrolls {
		fmt.Fprintf(&sb, "Unread scroll: %s x%d (type 'learn %s')\n", name, n, strings.ToLower(name))
	}
	return strings.TrimRight(sb.String(), "\n")
}
