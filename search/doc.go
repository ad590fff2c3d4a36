// Package search implements best-path search over a weighted 2-D grid.
//
// What
//
//   - Four strategies share one engine: breadth-first (BFS), depth-first (DFS),
//     uniform-cost (UCS) and A* (AStar).
//   - The engine expands a frontier of partial paths from Grid.Start toward
//     Grid.End. Strategies differ only in frontier discipline, priority key,
//     goal-test timing and the rule used to re-admit an already-seen cell.
//   - Every call returns a Result: either a *Solution (goal node, path and
//     explored set) or a *NoSolution (explored set only).
//
// Strategy table
//
//	Strategy  Frontier         Goal test       Re-admission
//	BFS       queue (FIFO)     at admission    never
//	DFS       stack (LIFO)     after pop       never (explored marked on pop)
//	UCS       heap on g        after pop       if strictly cheaper
//	AStar     heap on g+h      after pop       if strictly cheaper
//
// Guarantees
//
//   - UCS and AStar return a minimum-cost path when Grid.Cost is non-negative.
//     AStar additionally needs a consistent heuristic; the default Manhattan
//     heuristic is consistent on 4-connected grids whose cells cost at least 1.
//   - BFS returns a path with the fewest edges. DFS returns some valid path.
//   - Results are deterministic: the priority frontier breaks ties by
//     insertion order and neighbors are consumed in the order the Grid yields.
//
// Lazy decrease-key
//
//	The priority frontier has no decrease-key. A cheaper path to a queued cell
//	pushes a second entry; when an entry whose cost is above the best recorded
//	cost is popped it is skipped and counted in Stats.StaleSkips.
//
// Complexity (V = cells, E = moves)
//
//   - BFS, DFS: O(V + E) time, O(V) memory.
//   - UCS, AStar: O((V + E) log E) time, O(V + E) memory.
//
// Options
//
//   - WithContext(ctx):        cancellation, checked once per expansion.
//   - WithMaxExpansions(n):    stop after n expansions with a truncated NoSolution.
//   - WithHeuristic(h):        replace Manhattan for AStar.
//   - WithOnExpand(fn):        hook called for every expanded node; an error aborts.
//   - WithLogger(l):           logger used for the per-search debug record.
//
// Errors
//
//   - ErrNilGrid             if the grid is nil.
//   - ErrUnknownStrategy     if the strategy value is not one of the four.
//   - ErrOptionViolation     if an option was given an invalid value.
//   - ErrMalformedGrid       if start, end or a neighbor has no defined cost.
//   - ErrEmptyFrontier       internal; returned only by Frontier.Pop.
//
// A search call owns all of its state. Concurrent calls are safe as long as
// the Grid's Neighbors and Cost methods are safe for concurrent reads.
package search
