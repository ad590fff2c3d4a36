package search

// Search runs strategy s on g, applying any number of functional Options.
//
// It returns a *Solution when the goal is reached and a *NoSolution when the
// frontier is exhausted or the expansion limit is hit. Errors are reserved
// for invalid input (ErrNilGrid, ErrUnknownStrategy, ErrOptionViolation,
// ErrMalformedGrid), cancellation and OnExpand failures.
func Search(g Grid, s Strategy, opts ...Option) (Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	pol, err := policyFor(s)
	if err != nil {
		return nil, err
	}

	e := newEngine(g, pol, o)
	res, err := e.run()
	if err != nil {
		o.Logger.Debug("search failed", "strategy", s.String(), "err", err)
		return nil, err
	}
	st := res.Stats()
	o.Logger.Debug("search finished",
		"strategy", s.String(),
		"found", res.Found(),
		"expansions", st.Expansions,
		"generated", st.Generated,
		"stale", st.StaleSkips,
		"explored", len(res.Explored()),
		"nodes", e.nodes.len(),
	)
	return res, nil
}

// BreadthFirst runs BFS on g.
func BreadthFirst(g Grid, opts ...Option) (Result, error) { return Search(g, BFS, opts...) }

// DepthFirst runs DFS on g.
func DepthFirst(g Grid, opts ...Option) (Result, error) { return Search(g, DFS, opts...) }

// UniformCost runs UCS on g.
func UniformCost(g Grid, opts ...Option) (Result, error) { return Search(g, UCS, opts...) }

// AStarSearch runs A* on g.
func AStarSearch(g Grid, opts ...Option) (Result, error) { return Search(g, AStar, opts...) }
