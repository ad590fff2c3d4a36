package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathfinder/gridgraph"
	"github.com/katalvlaran/pathfinder/search"
)

// Sentinel errors for maze parsing.
var (
	// ErrNoStart indicates the layout has no A.
	ErrNoStart = errors.New("maze: no start (A)")
	// ErrNoEnd indicates the layout has no B.
	ErrNoEnd = errors.New("maze: no end (B)")
	// ErrDuplicateEndpoint indicates more than one A or B.
	ErrDuplicateEndpoint = errors.New("maze: duplicate endpoint")
	// ErrBadSymbol indicates an unknown layout symbol.
	ErrBadSymbol = errors.New("maze: unknown symbol")
	// ErrBadConnectivity indicates a YAML connectivity other than 4 or 8.
	ErrBadConnectivity = errors.New("maze: connectivity must be 4 or 8")
)

const (
	startSymbol = 'A'
	endSymbol   = 'B'
	wallSymbol  = '#'
)

// Maze is a parsed maze description.
type Maze struct {
	Name string
	Grid *gridgraph.GridGraph
}

// Description is the YAML form of a maze.
type Description struct {
	Name         string         `yaml:"name"`
	Connectivity int            `yaml:"connectivity"`
	Costs        map[string]int `yaml:"costs"`
	Layout       string         `yaml:"layout"`
}

// defaultCosts maps the built-in symbols to cell values. Walls map to 0.
func defaultCosts() map[rune]int {
	costs := map[rune]int{
		wallSymbol:  0,
		'.':         1,
		' ':         1,
		startSymbol: 1,
		endSymbol:   1,
	}
	for d := '1'; d <= '9'; d++ {
		costs[d] = int(d - '0')
	}
	return costs
}

// Parse reads a maze in text format.
func Parse(r io.Reader) (*Maze, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read: %w", err)
	}
	return build("", lines, defaultCosts(), gridgraph.Conn4)
}

// ParseString is Parse over a string.
func ParseString(s string) (*Maze, error) {
	return Parse(strings.NewReader(s))
}

// ParseYAML reads a maze in YAML format.
func ParseYAML(data []byte) (*Maze, error) {
	var d Description
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("maze: yaml: %w", err)
	}
	return d.Build()
}

// Build turns a Description into a Maze.
func (d Description) Build() (*Maze, error) {
	conn := gridgraph.Conn4
	switch d.Connectivity {
	case 0, 4:
	case 8:
		conn = gridgraph.Conn8
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadConnectivity, d.Connectivity)
	}
	costs := defaultCosts()
	for sym, c := range d.Costs {
		runes := []rune(sym)
		if len(runes) != 1 || runes[0] == startSymbol || runes[0] == endSymbol {
			return nil, fmt.Errorf("%w: cost key %q", ErrBadSymbol, sym)
		}
		if c < 1 {
			c = 0
		}
		costs[runes[0]] = c
	}
	lines := strings.Split(strings.TrimRight(d.Layout, "\n"), "\n")
	return build(d.Name, lines, costs, conn)
}

// LoadFile reads a maze from path; .yaml and .yml files use the YAML format,
// anything else the text format. The file name becomes the default maze name.
func LoadFile(path string) (*Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	slog.Debug("loading maze", "path", path, "bytes", len(data))

	var m *Maze
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		m, err = ParseYAML(data)
	default:
		m, err = ParseString(string(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

// build converts layout lines into a GridGraph.
func build(name string, lines []string, costs map[rune]int, conn gridgraph.Connectivity) (*Maze, error) {
	// drop trailing blank lines
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	if len(lines) == 0 || width == 0 {
		return nil, gridgraph.ErrEmptyGrid
	}

	var start, end *search.State
	values := make([][]int, len(lines))
	for r, l := range lines {
		values[r] = make([]int, width) // padding stays 0: wall
		for c, ch := range []rune(l) {
			v, ok := costs[ch]
			if !ok {
				return nil, fmt.Errorf("%w %q at line %d column %d", ErrBadSymbol, ch, r+1, c+1)
			}
			values[r][c] = v
			pos := search.State{Row: r, Col: c}
			switch ch {
			case startSymbol:
				if start != nil {
					return nil, fmt.Errorf("%w: second A at line %d column %d", ErrDuplicateEndpoint, r+1, c+1)
				}
				start = &pos
			case endSymbol:
				if end != nil {
					return nil, fmt.Errorf("%w: second B at line %d column %d", ErrDuplicateEndpoint, r+1, c+1)
				}
				end = &pos
			}
		}
	}
	if start == nil {
		return nil, ErrNoStart
	}
	if end == nil {
		return nil, ErrNoEnd
	}

	gg, err := gridgraph.NewGridGraph(values, *start, *end, gridgraph.GridOptions{LandThreshold: 1, Conn: conn})
	if err != nil {
		return nil, err
	}
	return &Maze{Name: name, Grid: gg}, nil
}
