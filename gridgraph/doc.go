// Package gridgraph treats a 2D grid of weighted cells as a search.Grid.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - Cells with value ≥ LandThreshold are passable; the value is the cost of
//     entering the cell. Cells below the threshold are walls.
//   - Neighbors are generated in a fixed order (up, right, down, left, then the
//     diagonals under Conn8) so every search over the grid is reproducible.
//   - Identifies connected components of passable cells.
//
// Why:
//
//   - Mazes and game maps with terrain costs.
//   - Diagnosing unreachable goals: the component of the start is exactly what
//     an exhaustive search explores.
//
// Complexity:
//
//   - NewGridGraph:        O(W×H), Memory: O(W×H).
//   - Neighbors, Cost:     O(d) and O(1)   (d = 4 or 8).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered passable.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//     Manhattan distance overestimates diagonal moves, so A* with the default
//     heuristic is only guaranteed optimal under Conn4.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a state or endpoint lies outside the grid.
//   - ErrBlockedEndpoint: start or end is a wall.
//   - ErrWall: Cost was asked for a wall cell.
package gridgraph
