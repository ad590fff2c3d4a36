package search

import "fmt"

// engine encapsulates the mutable state of one search call.
type engine struct {
	grid     Grid
	pol      policy
	opts     Options
	heur     Heuristic
	goal     State
	nodes    *tree
	frontier Frontier
	explored Explored
	stats    Stats
}

func newEngine(g Grid, pol policy, o Options) *engine {
	heur := zeroHeuristic
	if pol.informed {
		heur = o.Heuristic
	}
	return &engine{
		grid:     g,
		pol:      pol,
		opts:     o,
		heur:     heur,
		goal:     g.End(),
		nodes:    newTree(64),
		frontier: pol.newFrontier(),
		explored: make(Explored),
		stats:    Stats{Strategy: pol.strategy},
	}
}

// run executes the shared search loop.
func (e *engine) run() (Result, error) {
	start := e.grid.Start()
	if _, err := e.grid.Cost(start); err != nil {
		return nil, fmt.Errorf("%w: start %v: %v", ErrMalformedGrid, start, err)
	}
	if _, err := e.grid.Cost(e.goal); err != nil {
		return nil, fmt.Errorf("%w: end %v: %v", ErrMalformedGrid, e.goal, err)
	}

	root := e.nodes.root(start, e.heur(start, e.goal))
	if !e.pol.markOnPop {
		e.explored[start] = 0
	}
	if e.pol.earlyStartGoal && start == e.goal {
		e.explored[start] = 0
		return newSolution(e.nodes, root, e.explored, e.stats), nil
	}
	e.push(root)

	for {
		// cancellation check (once per loop)
		select {
		case <-e.opts.Ctx.Done():
			return nil, e.opts.Ctx.Err()
		default:
		}

		if e.frontier.IsEmpty() {
			return &NoSolution{explored: e.explored, stats: e.stats}, nil
		}
		id, err := e.frontier.Pop()
		if err != nil {
			return nil, err
		}
		n := e.nodes.at(id)

		if e.stale(n) {
			e.stats.StaleSkips++
			continue
		}
		if !e.pol.goalOnAdmit && n.State == e.goal {
			return newSolution(e.nodes, id, e.explored, e.stats), nil
		}
		if e.opts.MaxExpansions > 0 && e.stats.Expansions >= e.opts.MaxExpansions {
			return &NoSolution{explored: e.explored, stats: e.stats, truncated: true}, nil
		}

		if err = e.opts.OnExpand(n); err != nil {
			return nil, fmt.Errorf("search: OnExpand error at %v: %w", n.State, err)
		}
		e.stats.Expansions++
		goal, err := e.expand(id)
		if err != nil {
			return nil, err
		}
		if goal >= 0 {
			return newSolution(e.nodes, goal, e.explored, e.stats), nil
		}
	}
}

// stale decides whether a popped node must be discarded. For DFS it also
// marks the state explored.
func (e *engine) stale(n Node) bool {
	if e.pol.markOnPop {
		if e.explored.Contains(n.State) {
			return true
		}
		e.explored[n.State] = n.Cost
		return false
	}
	if e.pol.costAware {
		return n.Cost > e.explored[n.State]
	}
	return false
}

// expand generates the successors of node id and admits the ones the
// policy accepts. It returns the index of a goal child when the policy tests
// the goal at admission time, -1 otherwise.
func (e *engine) expand(id int) (int, error) {
	parent := e.nodes.at(id)
	for _, succ := range e.grid.Neighbors(parent.State) {
		step, err := e.grid.Cost(succ.State)
		if err != nil {
			return -1, fmt.Errorf("%w: neighbor %v of %v: %v", ErrMalformedGrid, succ.State, parent.State, err)
		}
		if e.pol.costAware && step < 0 {
			return -1, fmt.Errorf("%w: negative cost %v at %v", ErrMalformedGrid, step, succ.State)
		}
		cost := parent.Cost + step
		if !e.pol.admits(e.explored, succ.State, cost) {
			continue
		}

		child := e.nodes.child(id, succ.Action, succ.State, cost, e.heur(succ.State, e.goal))
		e.stats.Generated++
		if !e.pol.markOnPop {
			e.explored[succ.State] = cost
		}
		if e.pol.goalOnAdmit && succ.State == e.goal {
			return child, nil
		}
		e.push(child)
	}
	return -1, nil
}

func (e *engine) push(id int) {
	e.frontier.Add(id, e.nodes.at(id).Priority())
	if l := e.frontier.Len(); l > e.stats.MaxFrontier {
		e.stats.MaxFrontier = l
	}
}
