package search

// Node is one vertex of the search tree.
//
// Parent is the index of the parent node inside the tree that owns this
// node, or -1 for the root. A node is always stored after its parent, so
// parent chains are acyclic and at most as long as the tree.
type Node struct {
	State     State
	Cost      float64 // accumulated cost from the start
	Heuristic float64 // remaining-cost estimate, 0 for uninformed strategies
	Parent    int
	Action    Action // move taken from the parent; empty for the root
}

// IsRoot reports whether n has no parent.
func (n Node) IsRoot() bool { return n.Parent < 0 }

// Priority is the key used by the priority frontier: Cost + Heuristic.
func (n Node) Priority() float64 { return n.Cost + n.Heuristic }

// tree is the per-search node arena. Nodes refer to their parents by index.
type tree struct {
	nodes []Node
}

func newTree(capacity int) *tree {
	return &tree{nodes: make([]Node, 0, capacity)}
}

// root stores the start node and returns its index.
func (t *tree) root(s State, h float64) int {
	t.nodes = append(t.nodes, Node{State: s, Heuristic: h, Parent: -1})
	return len(t.nodes) - 1
}

// child stores a node reached from parent via a and returns its index.
func (t *tree) child(parent int, a Action, s State, cost, h float64) int {
	t.nodes = append(t.nodes, Node{State: s, Cost: cost, Heuristic: h, Parent: parent, Action: a})
	return len(t.nodes) - 1
}

func (t *tree) at(id int) Node { return t.nodes[id] }

func (t *tree) len() int { return len(t.nodes) }

// chain walks parent links from id to the root and returns the nodes in
// start→id order. Parent indices are rewritten to point into the returned
// slice so the chain can outlive the arena.
func (t *tree) chain(id int) []Node {
	depth := 0
	for cur := id; cur >= 0; cur = t.nodes[cur].Parent {
		depth++
	}
	out := make([]Node, depth)
	i := depth - 1
	for cur := id; cur >= 0; cur = t.nodes[cur].Parent {
		n := t.nodes[cur]
		n.Parent = i - 1
		out[i] = n
		i--
	}
	return out
}
