package search_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathfinder/search"
)

// matrixGrid is a 4-connected grid; negative costs are walls.
type matrixGrid struct {
	costs      [][]float64
	start, end search.State
}

func newMatrixGrid(costs [][]float64, start, end search.State) *matrixGrid {
	return &matrixGrid{costs: costs, start: start, end: end}
}

// uniformGrid returns an open h×w grid where every cell costs 1.
func uniformGrid(h, w int, start, end search.State) *matrixGrid {
	costs := make([][]float64, h)
	for r := range costs {
		costs[r] = make([]float64, w)
		for c := range costs[r] {
			costs[r][c] = 1
		}
	}
	return newMatrixGrid(costs, start, end)
}

func (g *matrixGrid) Start() search.State { return g.start }
func (g *matrixGrid) End() search.State   { return g.end }

func (g *matrixGrid) open(s search.State) bool {
	return s.Row >= 0 && s.Row < len(g.costs) && s.Col >= 0 && s.Col < len(g.costs[s.Row]) &&
		g.costs[s.Row][s.Col] >= 0
}

func (g *matrixGrid) Neighbors(s search.State) []search.Successor {
	moves := []struct {
		a      search.Action
		dr, dc int
	}{{"up", -1, 0}, {"right", 0, 1}, {"down", 1, 0}, {"left", 0, -1}}
	var out []search.Successor
	for _, m := range moves {
		n := search.State{Row: s.Row + m.dr, Col: s.Col + m.dc}
		if g.open(n) {
			out = append(out, search.Successor{Action: m.a, State: n})
		}
	}
	return out
}

func (g *matrixGrid) Cost(s search.State) (float64, error) {
	if !g.open(s) {
		return 0, fmt.Errorf("no cell at %v", s)
	}
	return g.costs[s.Row][s.Col], nil
}

// adjacent reports whether b is a 4-neighbor of a.
func adjacent(a, b search.State) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}

// reachable floods from the grid start and returns every reachable state.
func reachable(g search.Grid) map[search.State]bool {
	seen := map[search.State]bool{g.Start(): true}
	queue := []search.State{g.Start()}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, s := range g.Neighbors(cur) {
			if !seen[s.State] {
				seen[s.State] = true
				queue = append(queue, s.State)
			}
		}
	}
	return seen
}

// minEdges returns the fewest moves from start to end, or -1.
func minEdges(g search.Grid) int {
	depth := map[search.State]int{g.Start(): 0}
	queue := []search.State{g.Start()}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == g.End() {
			return depth[cur]
		}
		for _, s := range g.Neighbors(cur) {
			if _, ok := depth[s.State]; !ok {
				depth[s.State] = depth[cur] + 1
				queue = append(queue, s.State)
			}
		}
	}
	return -1
}

// minCost runs a quadratic Dijkstra and returns the cheapest start→end
// cost, or +Inf when the end is unreachable.
func minCost(g search.Grid) float64 {
	dist := map[search.State]float64{g.Start(): 0}
	done := map[search.State]bool{}
	for {
		best, found := search.State{}, false
		for s, d := range dist {
			if done[s] {
				continue
			}
			if !found || d < dist[best] {
				best, found = s, true
			}
		}
		if !found {
			return math.Inf(1)
		}
		if best == g.End() {
			return dist[best]
		}
		done[best] = true
		for _, n := range g.Neighbors(best) {
			c, _ := g.Cost(n.State)
			if d, ok := dist[n.State]; !ok || dist[best]+c < d {
				dist[n.State] = dist[best] + c
			}
		}
	}
}

// linkGrid is an explicit directed graph dressed as a Grid.
type linkGrid struct {
	start, end search.State
	links      map[search.State][]search.State
	costs      map[search.State]float64
}

func (g *linkGrid) Start() search.State { return g.start }
func (g *linkGrid) End() search.State   { return g.end }

func (g *linkGrid) Neighbors(s search.State) []search.Successor {
	out := make([]search.Successor, 0, len(g.links[s]))
	for _, n := range g.links[s] {
		out = append(out, search.Successor{Action: search.Action("to" + n.String()), State: n})
	}
	return out
}

func (g *linkGrid) Cost(s search.State) (float64, error) {
	c, ok := g.costs[s]
	if !ok {
		return 0, fmt.Errorf("unknown state %v", s)
	}
	return c, nil
}

func st(row, col int) search.State { return search.State{Row: row, Col: col} }
