package search

import "sort"

// Explored maps every state seen by a search to the best cost known for it.
// BFS and DFS use it as a membership set; the costs are still recorded.
type Explored map[State]float64

// Contains reports whether s was explored.
func (e Explored) Contains(s State) bool {
	_, ok := e[s]
	return ok
}

// States returns the explored states in row-major order.
func (e Explored) States() []State {
	out := make([]State, 0, len(e))
	for s := range e {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Stats counts the work done by one search.
type Stats struct {
	Strategy    Strategy
	Expansions  int // nodes whose successors were generated
	Generated   int // child nodes admitted to the tree
	StaleSkips  int // popped entries discarded as outdated or duplicate
	MaxFrontier int // largest frontier size observed
}

// Result is the terminal outcome of a search: *Solution or *NoSolution.
type Result interface {
	// Found reports whether a path to the goal was found.
	Found() bool
	// Explored returns the explored set.
	Explored() Explored
	// ExploredStates returns the explored states in row-major order.
	ExploredStates() []State
	// Stats returns the work counters of the search.
	Stats() Stats
}

// Step is one element of a path: the state reached and the action taken.
// The first step of a path carries an empty action.
type Step struct {
	State  State
	Action Action
}

// Solution is a successful search outcome. It owns only the node chain from
// start to goal; the rest of the search tree is released.
type Solution struct {
	chain    []Node
	explored Explored
	stats    Stats
}

func newSolution(t *tree, goal int, explored Explored, stats Stats) *Solution {
	return &Solution{chain: t.chain(goal), explored: explored, stats: stats}
}

// Found always reports true.
func (s *Solution) Found() bool { return true }

// Explored returns the explored set.
func (s *Solution) Explored() Explored { return s.explored }

// ExploredStates returns the explored states in row-major order.
func (s *Solution) ExploredStates() []State { return s.explored.States() }

// Stats returns the work counters of the search.
func (s *Solution) Stats() Stats { return s.stats }

// Goal returns the goal node.
func (s *Solution) Goal() Node { return s.chain[len(s.chain)-1] }

// Cost returns the accumulated cost of the path.
func (s *Solution) Cost() float64 { return s.Goal().Cost }

// Len returns the number of moves in the path.
func (s *Solution) Len() int { return len(s.chain) - 1 }

// Nodes returns a copy of the node chain from start to goal.
func (s *Solution) Nodes() []Node {
	out := make([]Node, len(s.chain))
	copy(out, s.chain)
	return out
}

// Path returns the steps from start to goal, both inclusive.
func (s *Solution) Path() []Step {
	out := make([]Step, len(s.chain))
	for i, n := range s.chain {
		out[i] = Step{State: n.State, Action: n.Action}
	}
	return out
}

// States returns the states along the path from start to goal.
func (s *Solution) States() []State {
	out := make([]State, len(s.chain))
	for i, n := range s.chain {
		out[i] = n.State
	}
	return out
}

// NoSolution is the outcome of a search that did not reach the goal.
type NoSolution struct {
	explored  Explored
	stats     Stats
	truncated bool
}

// Found always reports false.
func (n *NoSolution) Found() bool { return false }

// Explored returns the explored set.
func (n *NoSolution) Explored() Explored { return n.explored }

// ExploredStates returns the explored states in row-major order.
func (n *NoSolution) ExploredStates() []State { return n.explored.States() }

// Stats returns the work counters of the search.
func (n *NoSolution) Stats() Stats { return n.stats }

// Truncated reports whether the search stopped at the expansion limit
// rather than exhausting the frontier.
func (n *NoSolution) Truncated() bool { return n.truncated }
