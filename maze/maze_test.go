package maze_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/gridgraph"
	"github.com/katalvlaran/pathfinder/maze"
	"github.com/katalvlaran/pathfinder/search"
)

func TestParse_Basic(t *testing.T) {
	m, err := maze.ParseString("A.3\n#.B\n")
	require.NoError(t, err)

	gg := m.Grid
	assert.Equal(t, 3, gg.Width)
	assert.Equal(t, 2, gg.Height)
	assert.Equal(t, search.State{Row: 0, Col: 0}, gg.Start())
	assert.Equal(t, search.State{Row: 1, Col: 2}, gg.End())
	assert.Equal(t, [][]int{{1, 1, 3}, {0, 1, 1}}, gg.CellValues)
	assert.False(t, gg.Passable(search.State{Row: 1, Col: 0}))
}

func TestParse_PadsShortRows(t *testing.T) {
	m, err := maze.ParseString("A....\n.\n...B\n\n")
	require.NoError(t, err)

	assert.Equal(t, 5, m.Grid.Width)
	assert.Equal(t, 3, m.Grid.Height)
	assert.Equal(t, []int{1, 0, 0, 0, 0}, m.Grid.CellValues[1])
	assert.Equal(t, []int{1, 1, 1, 1, 0}, m.Grid.CellValues[2])
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		layout string
		want   error
	}{
		{"Empty", "", gridgraph.ErrEmptyGrid},
		{"NoStart", "..B", maze.ErrNoStart},
		{"NoEnd", "A..", maze.ErrNoEnd},
		{"TwoStarts", "A.A\n..B", maze.ErrDuplicateEndpoint},
		{"TwoEnds", "A.B\n..B", maze.ErrDuplicateEndpoint},
		{"BadSymbol", "A.x.B", maze.ErrBadSymbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.ParseString(tc.layout)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_BadSymbolPosition(t *testing.T) {
	_, err := maze.ParseString("A..\n.?B")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2 column 2")
}

func TestParseYAML(t *testing.T) {
	doc := []byte(`
name: swamp
connectivity: 8
costs:
  "~": 5
  "x": 0
layout: |
  A~x
  ~~B
`)
	m, err := maze.ParseYAML(doc)
	require.NoError(t, err)

	assert.Equal(t, "swamp", m.Name)
	assert.Equal(t, gridgraph.Conn8, m.Grid.Conn)
	assert.Equal(t, [][]int{{1, 5, 0}, {5, 5, 1}}, m.Grid.CellValues)

	res, err := search.UniformCost(m.Grid)
	require.NoError(t, err)
	sol, ok := res.(*search.Solution)
	require.True(t, ok)
	assert.Equal(t, 6.0, sol.Cost())
	assert.Equal(t, 2, sol.Len())
}

func TestParseYAML_Errors(t *testing.T) {
	_, err := maze.ParseYAML([]byte("connectivity: 6\nlayout: AB\n"))
	assert.ErrorIs(t, err, maze.ErrBadConnectivity)

	_, err = maze.ParseYAML([]byte("costs: {A: 3}\nlayout: AB\n"))
	assert.ErrorIs(t, err, maze.ErrBadSymbol)

	_, err = maze.ParseYAML([]byte("costs: {ab: 3}\nlayout: AB\n"))
	assert.ErrorIs(t, err, maze.ErrBadSymbol)

	_, err = maze.ParseYAML([]byte("layout: [unterminated"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "corridor.txt")
	require.NoError(t, os.WriteFile(txt, []byte("A..B\n"), 0o600))
	yml := filepath.Join(dir, "named.yaml")
	require.NoError(t, os.WriteFile(yml, []byte("name: lake\nlayout: |\n  A9B\n"), 0o600))

	m, err := maze.LoadFile(txt)
	require.NoError(t, err)
	assert.Equal(t, "corridor", m.Name)
	assert.Equal(t, 4, m.Grid.Width)

	m, err = maze.LoadFile(yml)
	require.NoError(t, err)
	assert.Equal(t, "lake", m.Name)
	assert.Equal(t, []int{1, 9, 1}, m.Grid.CellValues[0])

	_, err = maze.LoadFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRender(t *testing.T) {
	m, err := maze.ParseString("A.#\n..#\n#.B\n")
	require.NoError(t, err)

	assert.Equal(t, "A.#\n..#\n#.B\n", maze.Render(m, nil))

	res, err := search.BreadthFirst(m.Grid)
	require.NoError(t, err)
	assert.Equal(t, "A*#\no*#\n#*B\n", maze.Render(m, res))
}

func TestRender_NoSolution(t *testing.T) {
	m, err := maze.ParseString("A.#B\n7.#.\n")
	require.NoError(t, err)

	res, err := search.AStarSearch(m.Grid)
	require.NoError(t, err)
	require.False(t, res.Found())
	assert.Equal(t, "Ao#B\noo#.\n", maze.Render(m, res))
}
