package mdd

// Problem is the contract a caller implements to describe a discrete
// maximization problem to the solver. Problem, its StateRepresentation,
// and any custom Selectors must be pure with respect to external state:
// no hidden mutation across calls. The core mutates only its own layer
// buffers.
type Problem interface {
	// Root returns the Node at LayerNumber 0, with a fresh, unbound
	// Variable sequence of length NVariables.
	Root() *Node

	// NVariables returns the number of variables of the problem, a
	// positive integer.
	NVariables() int

	// Successors returns, in order, one Node per value variable may take
	// from state's node, updating state, cumulative Value and the
	// Variables sequence accordingly. An empty result denotes a dead-end;
	// implementations may instead return a copy of the parent unchanged
	// to pass through non-branching layers.
	Successors(n *Node, v Variable) []*Node

	// Merge returns a Node whose state over-approximates (e.g. unions)
	// the given states, whose Value is the maximum over the inputs,
	// whose Variables/Indexes match the best-value input, and whose
	// Exact flag is false.
	Merge(states []*Node) *Node
}
