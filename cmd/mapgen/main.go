// mapgen draws the explored part of a saved game as ASCII maps, one per floor.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lawnchairsociety/delver/internal/npc"
	"github.com/lawnchairsociety/delver/internal/save"
	"github.com/lawnchairsociety/delver/internal/spells"
	"github.com/lawnchairsociety/delver/internal/stats"
	"github.com/lawnchairsociety/delver/internal/tower"
	"github.com/lawnchairsociety/delver/internal/world"
)

func main() {
	inputFile := flag.String("input", "saves/savegame.json", "Path to a save file")
	floorNum := flag.Int("floor", -1, "Floor number to display (-1 for all floors)")
	outputFile := flag.String("output", "", "Output file (empty for stdout)")
	showLegend := flag.Bool("legend", true, "Show legend")
	flag.Parse()

	data, err := os.ReadFile(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	registry := spells.DefaultRegistry()
	gen := tower.NewGenerator(stats.NewSeededRoller(0), npc.DefaultRoster(), registry, nil)
	g, err := save.Decode(data, gen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading save: %v\n", err)
		os.Exit(1)
	}

	var output strings.Builder
	fmt.Fprintf(&output, "Delver Map (%d rooms explored, player on floor %d)\n", g.Tower.RoomCount(), g.Pos.Floor)
	output.WriteString(strings.Repeat("=", 60) + "\n\n")

	for _, n := range g.Tower.FloorNumbers() {
		if *floorNum >= 0 && n != *floorNum {
			continue
		}
		floor, _ := g.Tower.Floor(n)
		renderFloor(&output, floor, g.Pos)
		output.WriteString("\n")
	}

	if *showLegend {
		output.WriteString(getLegend())
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output.String()), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Map written to %s\n", *outputFile)
	} else {
		fmt.Print(output.String())
	}
}

// renderFloor draws a floor with north at the top. Unexplored cells inside
// the bounding box are blank.
func renderFloor(output *strings.Builder, floor *tower.Floor, player world.Coord) {
	fmt.Fprintf(output, "Floor %d (%d rooms)\n", floor.Number, floor.RoomCount())
	output.WriteString(strings.Repeat("-", 40) + "\n")

	cells := make(map[world.Coord]*world.Room)
	first := true
	var minX, maxX, minY, maxY int
	for key, room := range floor.Rooms() {
		c, err := world.ParseKey(floor.Number, key)
		if err != nil {
			continue
		}
		cells[c] = room
		if first {
			minX, maxX, minY, maxY = c.X, c.X, c.Y, c.Y
			first = false
			continue
		}
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	if first {
		output.WriteString("(nothing explored)\n")
		return
	}

	fmt.Fprintf(output, "x %d..%d, y %d..%d\n", minX, maxX, minY, maxY)
	for y := maxY; y >= minY; y-- {
		var row strings.Builder
		for x := minX; x <= maxX; x++ {
			c := world.Coord{Floor: floor.Number, X: x, Y: y}
			room, ok := cells[c]
			switch {
			case c == player:
				row.WriteString("[@]")
			case !ok:
				row.WriteString("   ")
			default:
				row.WriteString("[" + getRoomSymbol(room) + "]")
			}
		}
		output.WriteString(strings.TrimRight(row.String(), " ") + "\n")
	}
}

func getRoomSymbol(room *world.Room) string {
	switch room.Kind {
	case world.KindStairwell:
		return "v"
	case world.KindKeyDoor:
		if room.HasEnemies() {
			return "B"
		}
		return "$"
	case world.KindChest:
		if room.Chest != nil && room.Chest.Locked {
			return "C"
		}
		return "c"
	case world.KindShop:
		return "M"
	}

	switch {
	case room.HasEnemies():
		return "!"
	case room.Key != nil:
		return "K"
	case room.Crystal != world.CrystalNone:
		return "*"
	case room.GroundCount() > 0:
		return "i"
	default:
		return "."
	}
}

func getLegend() string {
	return `
Legend:
  [@] You
  [v] Stairwell (to next floor)
  [B] Vault with its boss
  [$] Vault, boss defeated
  [C] Locked chest   [c] Opened chest
  [M] Merchant/Shop
  [!] Enemies
  [K] Mysterious key
  [*] Crystal
  [i] Items on the ground
  [.] Empty room
`
}
