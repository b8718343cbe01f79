package stats

// ScriptedSource replays fixed values, for deterministic replays of a
// generation or combat sequence.
//
// Intn returns the next scripted int reduced into [0, n); once exhausted it
// returns n-1 so OneIn checks fail and Between yields its upper bound.
// Float64 returns the next scripted float; once exhausted it returns 0.999
// so every Chance check below certainty fails.
type ScriptedSource struct {
	Ints   []int
	Floats []float64
}

// Intn implements Source
func (s *ScriptedSource) Intn(n int) int {
	if len(s.Ints) == 0 {
		return n - 1
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < 0 {
		v = 0
	}
	return v % n
}

// Float64 implements Source
func (s *ScriptedSource) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0.999
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}
