package balance

// LevelingResult reports how long a player took to reach a level
type LevelingResult struct {
	Distance    int
	TargetLevel int
	Runs        int
	Reached     int     // runs that reached TargetLevel within the fight limit
	AvgFights   float64 // over the runs that reached it
	AvgDeaths   float64 // over all runs
	AvgGold     float64 // over all runs
}

// RunLevelingSim fights regular enemies at distance until the player
// reaches targetLevel or has fought maxFights times. Between fights the
// player is healed, its mana restored and a lost weapon replaced; a death
// counts and the player is revived at full HP.
func (s *Simulator) RunLevelingSim(l Loadout, distance, targetLevel, maxFights, runs int) LevelingResult {
	result := LevelingResult{Distance: distance, TargetLevel: targetLevel, Runs: runs}
	if runs <= 0 {
		return result
	}

	c := at(distance)
	var totalFights, totalDeaths, totalGold int
	for i := 0; i < runs; i++ {
		p := s.NewPlayer(l, distance)
		fights := 0
		for p.Level < targetLevel && fights < maxFights {
			r := s.SimulateCombat(p, s.Spawn(EncounterRegular, c), c)
			fights++
			if !r.PlayerWon {
				totalDeaths++
			}
			p.Heal(p.MaxHP)
			p.RestoreMana(p.MaxMana)
			s.arm(p, l, distance)
		}
		if p.Level >= targetLevel {
			result.Reached++
			totalFights += fights
		}
		totalGold += p.Money
	}

	result.AvgDeaths = float64(totalDeaths) / float64(runs)
	result.AvgGold = float64(totalGold) / float64(runs)
	if result.Reached > 0 {
		result.AvgFights = float64(totalFights) / float64(result.Reached)
	}
	return result
}
