package mdd

// Layer is a set of Nodes keyed by StateRepresentation: inserting a node
// whose state already exists merges it in place instead of duplicating
// it. Go maps require comparable keys and StateRepresentation isn't one,
// so Layer buckets nodes by their state's Hash and disambiguates
// collisions with Equals, in the spirit of a hand-rolled unique table.
//
// Iteration (Nodes) is in insertion order, which is what makes Layer.Best
// and the default selectors deterministic.
type Layer struct {
	nodes   []*Node
	buckets map[uint64][]int // hash -> indices into nodes
}

// NewLayer returns an empty layer.
func NewLayer() *Layer {
	return &Layer{buckets: make(map[uint64][]int)}
}

// SingletonLayer returns a layer containing exactly one node.
func SingletonLayer(n *Node) *Layer {
	l := NewLayer()
	l.Add(n)
	return l
}

// Len returns the number of distinct states currently in the layer.
func (l *Layer) Len() int { return len(l.nodes) }

// Width is an alias for Len.
func (l *Layer) Width() int { return l.Len() }

// Nodes returns the layer's nodes in insertion order. The caller must not
// retain the slice past the next call to Add or Remove.
func (l *Layer) Nodes() []*Node { return l.nodes }

// Add inserts node into the layer, merging it into an existing node with
// the same state if one exists: Value becomes the max of the two, Exact
// becomes the AND of the two. Add never mutates the node passed in.
func (l *Layer) Add(node *Node) {
	h := node.State.Hash()
	for _, idx := range l.buckets[h] {
		existing := l.nodes[idx]
		if existing.State.Equals(node.State) {
			exact := existing.Exact && node.Exact
			winner := existing
			if node.Value > winner.Value {
				winner = node
			}
			merged := *winner
			merged.Exact = exact
			l.nodes[idx] = &merged
			return
		}
	}
	l.buckets[h] = append(l.buckets[h], len(l.nodes))
	l.nodes = append(l.nodes, node)
}

// Best returns the node of maximum Value, breaking ties by insertion
// order (the first-inserted node with that value wins). Best panics if
// the layer is empty.
func (l *Layer) Best() *Node {
	if len(l.nodes) == 0 {
		panic(ContractViolation{Component: "Layer.Best", Reason: "called on an empty layer"})
	}
	best := l.nodes[0]
	for _, n := range l.nodes[1:] {
		if n.Value > best.Value {
			best = n
		}
	}
	return best
}

// Exact reports whether every node currently in the layer is exact. It
// says nothing about ancestors; the MDD engine tracks that separately.
func (l *Layer) Exact() bool {
	for _, n := range l.nodes {
		if !n.Exact {
			return false
		}
	}
	return true
}

// Remove deletes the given nodes from the layer. It is a contract
// violation to ask to remove a node that isn't present.
func (l *Layer) Remove(toRemove []*Node) {
	remove := make(map[*Node]bool, len(toRemove))
	for _, n := range toRemove {
		remove[n] = true
	}
	kept := make([]*Node, 0, len(l.nodes))
	for _, n := range l.nodes {
		if !remove[n] {
			kept = append(kept, n)
		}
	}
	if len(kept) != len(l.nodes)-len(toRemove) {
		panic(ContractViolation{Component: "Layer.Remove", Reason: "asked to remove a node not present in the layer"})
	}
	l.rebuild(kept)
}

func (l *Layer) rebuild(nodes []*Node) {
	l.nodes = nodes
	l.buckets = make(map[uint64][]int, len(nodes))
	for i, n := range nodes {
		h := n.State.Hash()
		l.buckets[h] = append(l.buckets[h], i)
	}
}

// Replace removes the nodes in toRemove and inserts replacement, in one
// step, used by the relaxation path to swap a set of merged nodes for
// their merge.
func (l *Layer) Replace(toRemove []*Node, replacement *Node) {
	l.Remove(toRemove)
	l.Add(replacement)
}
