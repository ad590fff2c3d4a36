package search

// Manhattan returns |Δrow| + |Δcol| between s and goal.
// It never overestimates on 4-connected grids whose cells cost at least 1.
func Manhattan(s, goal State) float64 {
	return float64(abs(s.Row-goal.Row) + abs(s.Col-goal.Col))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// zeroHeuristic is used by every uninformed strategy.
func zeroHeuristic(State, State) float64 { return 0 }
