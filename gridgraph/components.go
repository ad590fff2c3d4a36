package gridgraph

import "github.com/katalvlaran/pathfinder/search"

// ConnectedComponents finds all contiguous regions of passable cells
// according to gg.Conn connectivity.
// Components are listed in row-major order of their first cell; cells inside
// a component appear in breadth-first order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]search.State {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]search.State

	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			s := search.State{Row: r, Col: c}
			if !gg.Passable(s) || seen[gg.index(s)] {
				continue
			}
			comps = append(comps, gg.flood(s, seen))
		}
	}
	return comps
}

// ComponentOf returns the component containing s, or nil if s is a wall
// or out of bounds.
func (gg *GridGraph) ComponentOf(s search.State) []search.State {
	if !gg.Passable(s) {
		return nil
	}
	return gg.flood(s, make([]bool, gg.Width*gg.Height))
}

// flood collects every cell reachable from s, marking them in seen.
func (gg *GridGraph) flood(s search.State, seen []bool) []search.State {
	seen[gg.index(s)] = true
	queue := []search.State{s}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range gg.Neighbors(queue[qi]) {
			if i := gg.index(n.State); !seen[i] {
				seen[i] = true
				queue = append(queue, n.State)
			}
		}
	}
	return queue
}
