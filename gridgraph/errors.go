package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a state outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: state out of bounds")
	// ErrBlockedEndpoint indicates the start or end cell is a wall.
	ErrBlockedEndpoint = errors.New("gridgraph: endpoint is a wall")
	// ErrWall indicates a wall cell has no traversal cost.
	ErrWall = errors.New("gridgraph: cell is a wall")
)
