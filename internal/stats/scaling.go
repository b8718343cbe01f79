package stats

// Content scaling by distance from a floor's origin

// PowerCap is the distance beyond which generated content stops scaling
const PowerCap = 100

// Distance returns the Manhattan distance of (x, y) from the origin
func Distance(x, y int) int {
	return abs(x) + abs(y)
}

// PowerBudget returns the bonus budget for content generated at (x, y).
// Formula: min(|x|+|y|, 100) / 4
func PowerBudget(x, y int) int {
	return BudgetAt(Distance(x, y))
}

// BudgetAt is PowerBudget for an already computed distance
func BudgetAt(distance int) int {
	if distance < 0 {
		distance = 0
	}
	if distance > PowerCap {
		distance = PowerCap
	}
	return distance / 4
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
