// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a weighted graph that satisfies search.Grid.
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/search"
)

// compile-time check
var _ search.Grid = (*GridGraph)(nil)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// with the given endpoints. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrOutOfBounds if an endpoint
// lies outside the grid and ErrBlockedEndpoint if an endpoint is a wall.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, start, end search.State, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		copy(cells[r], values[r])
	}
	moves := orthogonalMoves
	if opts.Conn == Conn8 {
		moves = append(append([]move{}, orthogonalMoves...), diagonalMoves...)
	}
	gg := &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		start:         start,
		end:           end,
		moves:         moves,
	}
	for _, p := range []search.State{start, end} {
		if !gg.InBounds(p.Row, p.Col) {
			return nil, fmt.Errorf("%w: endpoint %v in %dx%d grid", ErrOutOfBounds, p, h, w)
		}
		if !gg.Passable(p) {
			return nil, fmt.Errorf("%w: %v", ErrBlockedEndpoint, p)
		}
	}

	return gg, nil
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(row, col int) bool {
	return row >= 0 && row < gg.Height && col >= 0 && col < gg.Width
}

// Passable reports whether s is inside the grid and not a wall.
func (gg *GridGraph) Passable(s search.State) bool {
	return gg.InBounds(s.Row, s.Col) && gg.CellValues[s.Row][s.Col] >= gg.LandThreshold
}

// Start returns the start cell.
func (gg *GridGraph) Start() search.State { return gg.start }

// End returns the goal cell.
func (gg *GridGraph) End() search.State { return gg.end }

// Neighbors returns the passable cells adjacent to s, in move order.
// Complexity: O(d).
func (gg *GridGraph) Neighbors(s search.State) []search.Successor {
	out := make([]search.Successor, 0, len(gg.moves))
	for _, m := range gg.moves {
		n := search.State{Row: s.Row + m.dRow, Col: s.Col + m.dCol}
		if gg.Passable(n) {
			out = append(out, search.Successor{Action: m.action, State: n})
		}
	}
	return out
}

// Cost returns the value of cell s as the cost of entering it.
// Complexity: O(1).
func (gg *GridGraph) Cost(s search.State) (float64, error) {
	if !gg.InBounds(s.Row, s.Col) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, s)
	}
	v := gg.CellValues[s.Row][s.Col]
	if v < gg.LandThreshold {
		return 0, fmt.Errorf("%w: %v", ErrWall, s)
	}
	return float64(v), nil
}

// index maps a state to a row‑major index: row*Width + col.
// Complexity: O(1).
func (gg *GridGraph) index(s search.State) int {
	return s.Row*gg.Width + s.Col
}

// Coordinate converts a row‑major index back to a state.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) search.State {
	return search.State{Row: idx / gg.Width, Col: idx % gg.Width}
}
