package mdd

import "math"

// Node is an MDD node: a state, the current longest-path value from the
// global root, an assignment prefix, an exactness flag, and a relaxed
// upper bound used by the Solver's priority queue.
type Node struct {
	State StateRepresentation

	// Value is the longest-path value from the global root through this
	// node: the current best known prefix cost of reaching State.
	Value float64

	// RelaxedValue is an upper bound on the best completion of the
	// subproblem rooted at this node. Initialized to +Inf and tightened
	// when a node is inherited as a subproblem from a relaxed MDD's
	// terminal value.
	RelaxedValue float64

	// Exact is true iff every path reaching this node went only through
	// exact (non-merged, non-deleted) transitions.
	Exact bool

	// Variables holds one entry per problem variable; entries at indices
	// below LayerNumber are bound.
	Variables []Variable

	// Indexes maps branching position to variable id, so that
	// LayerNumber counts assignments made so far.
	Indexes []int

	// LayerNumber is the number of variables bound on this node's prefix,
	// in [0, n].
	LayerNumber int

	// seq is a monotonic insertion sequence number, used only to break
	// ties deterministically in the Solver's priority queue.
	seq int64
}

// NewRoot returns the Node at LayerNumber 0 for a problem with the given
// unbound variables and initial state.
func NewRoot(state StateRepresentation, variables []Variable) *Node {
	indexes := make([]int, len(variables))
	for i := range indexes {
		indexes[i] = i
	}
	return &Node{
		State:        state,
		Value:        0,
		RelaxedValue: math.Inf(1),
		Exact:        true,
		Variables:    variables,
		Indexes:      indexes,
		LayerNumber:  0,
	}
}

// Successor returns a new Node obtained from n by assigning the variable
// at branching position pos to assignedValue, reaching newState with
// cumulative value newValue. n is not mutated; the returned node's
// Variables slice is a fresh copy with the assignment recorded.
func (n *Node) Successor(newState StateRepresentation, newValue float64, pos int, assignedValue int) *Node {
	if pos < 0 || pos >= len(n.Indexes) {
		panic(ContractViolation{Component: "Node.Successor", Reason: "branching position out of range"})
	}
	variables := make([]Variable, len(n.Variables))
	copy(variables, n.Variables)
	variables[n.Indexes[pos]] = variables[n.Indexes[pos]].Assign(assignedValue)

	return &Node{
		State:        newState,
		Value:        newValue,
		RelaxedValue: math.Inf(1),
		Exact:        n.Exact,
		Variables:    variables,
		Indexes:      n.Indexes,
		LayerNumber:  pos + 1,
	}
}

// Variable returns the variable bound (or not) at branching position pos.
func (n *Node) Variable(pos int) Variable {
	return n.Variables[n.Indexes[pos]]
}

// Detach returns a copy of n with its state deep-copied, suitable for
// outliving the compilation that produced it (e.g. a cutset node).
func (n *Node) Detach() *Node {
	m := *n
	m.State = n.State.Copy()
	variables := make([]Variable, len(n.Variables))
	copy(variables, n.Variables)
	m.Variables = variables
	return &m
}
