package balance

// RunSpellComparison fights the encounter once per iteration with each
// spell in the registry, casting it every round until mana runs out. The
// result label is the spell name.
func (s *Simulator) RunSpellComparison(l Loadout, e Encounter, distance, iterations int) []SimulationResult {
	names := s.registry.Names()
	results := make([]SimulationResult, 0, len(names))
	for _, name := range names {
		l.Spell = name
		l.Generated = false
		r := s.RunSimulation(l, e, distance, iterations)
		r.Label = name
		results = append(results, r)
	}
	return results
}
