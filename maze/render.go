package maze

import (
	"strings"

	"github.com/katalvlaran/pathfinder/gridgraph"
	"github.com/katalvlaran/pathfinder/search"
)

// Overlay symbols used by Render.
const (
	PathSymbol     = '*'
	ExploredSymbol = 'o'
)

// Render draws the grid of m with res on top of it. Path cells are drawn
// as '*', explored cells off the path as 'o', endpoints as 'A' and 'B'.
// res may be nil, in which case only the maze is drawn.
func Render(m *Maze, res search.Result) string {
	return RenderGrid(m.Grid, res)
}

// RenderGrid is Render for a bare grid.
func RenderGrid(gg *gridgraph.GridGraph, res search.Result) string {
	onPath := make(map[search.State]bool)
	var explored search.Explored
	if res != nil {
		explored = res.Explored()
		if sol, ok := res.(*search.Solution); ok {
			for _, s := range sol.States() {
				onPath[s] = true
			}
		}
	}

	var b strings.Builder
	b.Grow((gg.Width + 1) * gg.Height)
	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			s := search.State{Row: r, Col: c}
			switch {
			case s == gg.Start():
				b.WriteRune(startSymbol)
			case s == gg.End():
				b.WriteRune(endSymbol)
			case !gg.Passable(s):
				b.WriteRune(wallSymbol)
			case onPath[s]:
				b.WriteRune(PathSymbol)
			case explored.Contains(s):
				b.WriteRune(ExploredSymbol)
			default:
				b.WriteRune(cellSymbol(gg.CellValues[r][c]))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// cellSymbol is the text symbol for an open cell of cost v.
func cellSymbol(v int) rune {
	switch {
	case v <= 1:
		return '.'
	case v <= 9:
		return rune('0' + v)
	default:
		return '+'
	}
}
