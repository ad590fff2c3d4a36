package search

import "fmt"

// policy captures everything that distinguishes one strategy from another.
type policy struct {
	strategy Strategy

	// newFrontier builds the pending-node container.
	newFrontier func() Frontier

	// informed adds the heuristic estimate to each node.
	informed bool

	// goalOnAdmit tests children against the goal before they are queued
	// instead of testing popped nodes.
	goalOnAdmit bool

	// earlyStartGoal returns a Solution before the loop when start==goal.
	earlyStartGoal bool

	// markOnPop records states in the explored set when popped instead of
	// when admitted; popped states already explored are skipped.
	markOnPop bool

	// costAware re-admits a seen state when a strictly cheaper path to it is
	// found and skips popped entries costlier than the recorded best.
	costAware bool
}

func policyFor(s Strategy) (policy, error) {
	switch s {
	case BFS:
		return policy{
			strategy:       BFS,
			newFrontier:    func() Frontier { return NewQueueFrontier() },
			goalOnAdmit:    true,
			earlyStartGoal: true,
		}, nil
	case DFS:
		return policy{
			strategy:       DFS,
			newFrontier:    func() Frontier { return NewStackFrontier() },
			earlyStartGoal: true,
			markOnPop:      true,
		}, nil
	case UCS:
		return policy{
			strategy:    UCS,
			newFrontier: func() Frontier { return NewPriorityFrontier() },
			costAware:   true,
		}, nil
	case AStar:
		return policy{
			strategy:    AStar,
			newFrontier: func() Frontier { return NewPriorityFrontier() },
			informed:    true,
			costAware:   true,
		}, nil
	}
	return policy{}, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
}

// admits reports whether a state reached at cost should become a new node,
// given the explored set.
func (p policy) admits(explored Explored, s State, cost float64) bool {
	best, seen := explored[s]
	if !seen {
		return true
	}
	return p.costAware && cost < best
}
