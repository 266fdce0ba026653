package problems

import (
	"math"

	"github.com/crillab/gomdd/mdd"
)

// MinLA is a linear arrangement problem: given a weighted graph on n
// vertices, find an assignment of vertices to positions 0..n-1
// maximizing the sum, over edges (u, v, w), of w times the distance
// between u's and v's assigned positions.
type MinLA struct {
	n    int
	g    []map[int]float64
	root *mdd.Node
}

// NewMinLA builds a MinLA instance over n vertices (ids 0..n-1) and the
// given weighted edges. Parallel edges between the same pair are summed.
func NewMinLA(n int, edges []Edge) *MinLA {
	g := adjacency(n, edges)

	variables := make([]mdd.Variable, n)
	for i := range variables {
		variables[i] = mdd.NewVariable(i)
	}
	root := mdd.NewRoot(newMinLAState(n), variables)

	return &MinLA{n: n, g: g, root: root}
}

// Root returns a fresh copy of the initial, fully-unbound node.
func (p *MinLA) Root() *mdd.Node {
	return p.root.Detach()
}

// NVariables returns the number of vertices.
func (p *MinLA) NVariables() int { return p.n }

// Successors expands n by choosing, for the branching position n is
// currently at, which free vertex to place there. For every remaining
// free vertex j, and every already-bound vertex (including the one
// placed at this position), the edge weight to j is folded into the
// running value once per layer it stays free — accumulating, by the
// time j is itself placed, exactly weight(u, j) times the distance
// between u's and j's positions, for every pair (u, j). Recomputing the
// already-bound contributions from scratch at every expansion costs
// O(n^2) per successor rather than tracking a precomputed contribution vector,
// trading some redundant work for a simpler successor function.
func (p *MinLA) Successors(n *mdd.Node, v mdd.Variable) []*mdd.Node {
	pos := n.LayerNumber
	state := n.State.(*MinLAState)

	var succs []*mdd.Node
	state.free.each(func(i int) bool {
		succFree := state.free.clone()
		succFree.clear(i)

		value := n.Value
		succFree.each(func(j int) bool {
			if w, ok := p.g[i][j]; ok {
				value += w
			}
			for k := 0; k < pos; k++ {
				u := n.Variable(k).Value
				if w, ok := p.g[u][j]; ok {
					value += w
				}
			}
			return true
		})

		succState := &MinLAState{free: succFree}
		succs = append(succs, n.Successor(succState, value, pos, i))
		return true
	})

	if len(succs) == 0 {
		// Dead end: no free vertex to place. A node built by Successors
		// alone has n-pos free vertices while pos < n, but a node built
		// by Merge (an intersection of free sets) can have fewer and run
		// out early. It passes through as the Problem contract documents:
		// a no-op copy of the parent, advanced one layer.
		succs = append(succs, n.Successor(state.Copy(), n.Value, pos, 0))
	}
	return succs
}

// Merge returns a node whose MinLAState is the intersection of the
// merged states' free-vertex sets (a sound over-approximation: a vertex
// free in the merge is free in at least one input, so no feasible
// completion is lost), whose Value is the maximum of the inputs, and
// whose Variables/Indexes are copied from the best-value input.
func (p *MinLA) Merge(states []*mdd.Node) *mdd.Node {
	if len(states) < 2 {
		panic(mdd.ContractViolation{Component: "MinLA.Merge", Reason: "fewer than 2 states to merge"})
	}
	merged := states[0].State.(*MinLAState).free.clone()
	best := states[0]
	for _, s := range states[1:] {
		merged.and(s.State.(*MinLAState).free)
		if s.Value > best.Value {
			best = s
		}
	}

	variables := make([]mdd.Variable, len(best.Variables))
	copy(variables, best.Variables)

	return &mdd.Node{
		State:        &MinLAState{free: merged},
		Value:        best.Value,
		RelaxedValue: math.Inf(1),
		Variables:    variables,
		Indexes:      best.Indexes,
		LayerNumber:  best.LayerNumber,
		Exact:        false,
	}
}
