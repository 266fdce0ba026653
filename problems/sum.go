package problems

import (
	"math"

	"github.com/crillab/gomdd/mdd"
)

// Sum is the simplest possible mdd.Problem: n boolean variables, each
// assignable to 0 or 1, with objective equal to the sum of the assigned
// values. It exists to give a tiny, easy-to-reason-about instance to
// exercise the solver against.
type Sum struct {
	n    int
	root *mdd.Node
}

// NewSum returns a Sum instance over n boolean variables.
func NewSum(n int) *Sum {
	variables := make([]mdd.Variable, n)
	for i := range variables {
		variables[i] = mdd.NewVariable(i)
	}
	root := mdd.NewRoot(sumState(0), variables)
	return &Sum{n: n, root: root}
}

// Root returns a fresh copy of the initial, fully-unbound node.
func (p *Sum) Root() *mdd.Node { return p.root.Detach() }

// NVariables returns n.
func (p *Sum) NVariables() int { return p.n }

// Successors returns two nodes, one for assigning v to 0 and one for
// assigning it to 1, each adding the assigned value to the running sum.
// The new state encodes the full 0/1 prefix (as a binary number with an
// implicit leading 1), so that two different assignment prefixes of the
// same length never collide: unlike a real domain problem, nothing here
// makes two distinct prefixes genuinely equivalent, and collapsing them
// anyway would silently turn every restriction into a no-op.
func (p *Sum) Successors(n *mdd.Node, v mdd.Variable) []*mdd.Node {
	pos := n.LayerNumber
	id := int64(n.State.(sumState))
	succs := make([]*mdd.Node, 0, 2)
	for _, value := range []int{0, 1} {
		state := sumState(id*2 + int64(value) + 1)
		succs = append(succs, n.Successor(state, n.Value+float64(value), pos, value))
	}
	return succs
}

// Merge returns a node whose Value is the max of the merged states'
// values and whose Variables/Indexes match the best-value input.
func (p *Sum) Merge(states []*mdd.Node) *mdd.Node {
	if len(states) < 2 {
		panic(mdd.ContractViolation{Component: "Sum.Merge", Reason: "fewer than 2 states to merge"})
	}
	best := states[0]
	for _, s := range states[1:] {
		if s.Value > best.Value {
			best = s
		}
	}
	variables := make([]mdd.Variable, len(best.Variables))
	copy(variables, best.Variables)
	return &mdd.Node{
		State:        sumState(-1),
		Value:        best.Value,
		RelaxedValue: math.Inf(1),
		Variables:    variables,
		Indexes:      best.Indexes,
		LayerNumber:  best.LayerNumber,
		Exact:        false,
	}
}

// sumState encodes an assignment prefix as a distinct integer, the same
// technique mdd's own internal tests use for a dedup-free toy state.
type sumState int64

// Equals reports whether s and other encode the same prefix.
func (s sumState) Equals(other mdd.StateRepresentation) bool {
	o, ok := other.(sumState)
	return ok && s == o
}

// Hash returns s itself, already a small dense integer.
func (s sumState) Hash() uint64 { return uint64(s) }

// Copy returns s unchanged: sumState is an immutable value.
func (s sumState) Copy() mdd.StateRepresentation { return s }

// Rank returns the node's value, keeping higher-value nodes over
// lower-value ones when merging/deleting.
func (sumState) Rank(n *mdd.Node) float64 { return n.Value }
