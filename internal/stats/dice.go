package stats

import (
	"math/rand"
	"regexp"
	"strconv"
)

// Source is the randomness a Roller draws from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Roller wraps a Source with the probability helpers the generators use
type Roller struct {
	src Source
}

// NewRoller creates a Roller over src
func NewRoller(src Source) *Roller {
	return &Roller{src: src}
}

// NewSeededRoller creates a Roller backed by math/rand seeded with seed
func NewSeededRoller(seed int64) *Roller {
	return &Roller{src: rand.New(rand.NewSource(seed))}
}

// Between returns a uniform integer in [lo, hi], both inclusive
func (r *Roller) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.src.Intn(hi-lo+1)
}

// Chance returns true with probability p
func (r *Roller) Chance(p float64) bool {
	return r.src.Float64() < p
}

// OneIn returns true with probability 1/n
func (r *Roller) OneIn(n int) bool {
	if n <= 1 {
		return true
	}
	return r.src.Intn(n) == 0
}

// Pick returns a uniform index in [0, n)
func (r *Roller) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	return r.src.Intn(n)
}

// Float returns a uniform float in [0, 1)
func (r *Roller) Float() float64 {
	return r.src.Float64()
}

// Weighted picks an index with probability proportional to weights
func (r *Roller) Weighted(weights ...float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	roll := r.src.Float64() * total
	for i, w := range weights {
		if roll < w {
			return i
		}
		roll -= w
	}
	return len(weights) - 1
}

// Roll rolls n dice with the specified number of sides and returns the total
func (r *Roller) Roll(n, sides int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += r.Between(1, sides)
	}
	return total
}

// diceNotationRegex matches dice notation like "1d6", "2d4+1", "1d8-2"
var diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)

// ParseDice rolls dice notation such as "1d6" or "2d4+1".
// Returns 0 if the notation is invalid.
func (r *Roller) ParseDice(notation string) int {
	matches := diceNotationRegex.FindStringSubmatch(notation)
	if matches == nil {
		return 0
	}

	count, _ := strconv.Atoi(matches[1])
	sides, _ := strconv.Atoi(matches[2])

	bonus := 0
	if matches[3] != "" {
		bonus, _ = strconv.Atoi(matches[3])
	}

	return r.Roll(count, sides) + bonus
}

// ValidDice reports whether notation parses as dice
func ValidDice(notation string) bool {
	return diceNotationRegex.MatchString(notation)
}
