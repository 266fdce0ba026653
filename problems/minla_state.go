package problems

import "github.com/crillab/gomdd/mdd"

// MinLAState is the StateRepresentation for MinLA: the set of vertices
// not yet assigned a position.
type MinLAState struct {
	free *bitset
}

func newMinLAState(n int) *MinLAState {
	return &MinLAState{free: full(n)}
}

// Equals reports whether s and other track the same free-vertex set.
func (s *MinLAState) Equals(other mdd.StateRepresentation) bool {
	o, ok := other.(*MinLAState)
	return ok && s.free.equals(o.free)
}

// Hash returns a deterministic hash of the free-vertex set.
func (s *MinLAState) Hash() uint64 {
	return s.free.hash()
}

// Copy returns a deep copy of s.
func (s *MinLAState) Copy() mdd.StateRepresentation {
	return &MinLAState{free: s.free.clone()}
}

// Rank returns the node's value, so the default merge/delete selectors
// keep the highest-value nodes and discard the rest.
func (s *MinLAState) Rank(n *mdd.Node) float64 {
	return n.Value
}
