// Package search defines the state, grid and strategy types together with
// the sentinel errors shared by every strategy.
package search

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned when a nil Grid is passed to Search.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownStrategy is returned for a Strategy outside BFS..AStar
	// or an unparseable strategy name.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrMalformedGrid is returned when the start, the end or a generated
	// neighbor has no defined cost in the grid.
	ErrMalformedGrid = errors.New("search: malformed grid")

	// ErrEmptyFrontier is returned by Frontier.Pop on an empty frontier.
	ErrEmptyFrontier = errors.New("search: frontier is empty")
)

// State identifies a grid cell.
type State struct {
	Row, Col int
}

// String formats the state as "(row,col)".
func (s State) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

// Action labels the move that leads from a parent state to a child state.
type Action string

// Successor is one move offered by Grid.Neighbors.
type Successor struct {
	Action Action
	State  State
}

// Grid is the read-only view of the world a search runs on.
//
// Neighbors must return successors in a deterministic order. Cost returns the
// price of entering a state; it must fail for states outside the grid.
// Both methods must be free of side effects.
type Grid interface {
	Start() State
	End() State
	Neighbors(s State) []Successor
	Cost(s State) (float64, error)
}

// Strategy selects the search algorithm.
type Strategy int

const (
	// BFS is breadth-first search.
	BFS Strategy = iota
	// DFS is depth-first search.
	DFS
	// UCS is uniform-cost search.
	UCS
	// AStar is A* search.
	AStar
)

// Strategies lists every supported strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{BFS, DFS, UCS, AStar}
}

// String returns the lower-case short name of the strategy.
func (s Strategy) String() string {
	switch s {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	case UCS:
		return "ucs"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Valid reports whether s is one of the four strategies.
func (s Strategy) Valid() bool {
	return s >= BFS && s <= AStar
}

// ParseStrategy maps a case-insensitive name to a Strategy.
// Accepted names: bfs, dfs, ucs, astar, a*.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "ucs":
		return UCS, nil
	case "astar", "a*":
		return AStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
