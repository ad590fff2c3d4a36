// Package pathfinder is a small playground for uninformed and informed
// search on weighted grids: one engine, four strategies, and the tooling to
// feed it mazes and show what it did.
//
// 🚀 What is in the box?
//
//	search/      the engine: BFS, DFS, UCS and A* over any search.Grid
//	gridgraph/   weighted 2D grids implementing search.Grid (4- or 8-connected)
//	maze/        text and YAML maze formats, ASCII rendering of results
//	server/      HTTP API (chi) with prometheus metrics
//	config/      YAML configuration for the binary
//	cmd/pathfinder  CLI: solve maze files or serve the API
//
// Quick ASCII example:
//
//	A9B      AoB
//	...  →   *** (UCS walks around the 9, cost 4)
//
// BFS takes the two-move route through the 9 (cost 10); UCS and A* return the
// cheapest route; DFS returns whatever its stack finds first.
//
//	go install github.com/katalvlaran/pathfinder/cmd/pathfinder@latest
package pathfinder
