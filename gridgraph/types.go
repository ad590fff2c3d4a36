package gridgraph

import "github.com/katalvlaran/pathfinder/search"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, right, down, left.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals: up-right, down-right, down-left, up-left.
	Conn8
)

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered passable.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are passable), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// move is one precomputed neighbor offset together with its action label.
type move struct {
	action     search.Action
	dRow, dCol int
}

var (
	orthogonalMoves = []move{
		{"up", -1, 0}, {"right", 0, 1}, {"down", 1, 0}, {"left", 0, -1},
	}
	diagonalMoves = []move{
		{"up-right", -1, 1}, {"down-right", 1, 1}, {"down-left", 1, -1}, {"up-left", -1, -1},
	}
)

// GridGraph treats a 2D integer grid as a weighted graph. It is immutable once built.
// Width and Height define dimensions; CellValues[row][col] holds the original input value.
// Conn and LandThreshold are set from GridOptions during construction.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	Conn          Connectivity
	LandThreshold int
	start, end    search.State
	moves         []move
}
