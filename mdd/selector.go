package mdd

import "sort"

// VariableSelector picks the next variable to branch on, given the
// current layer and the ordered ids of the still-unbound variables.
// Implementations must be pure and deterministic.
type VariableSelector interface {
	Select(layer *Layer, unbound []int) int
}

// MergeSelector picks exactly k nodes of a layer to be collapsed into
// one, when building a relaxed MDD. k is always >= 2.
type MergeSelector interface {
	Select(layer *Layer, k int) []*Node
}

// DeleteSelector picks exactly k nodes of a layer to be dropped, when
// building a restricted MDD.
type DeleteSelector interface {
	Select(layer *Layer, k int) []*Node
}

// SimpleVariableSelector always branches on the lowest remaining variable
// id, the default variable ordering.
type SimpleVariableSelector struct{}

// Select returns the smallest id in unbound. unbound must not be empty.
func (SimpleVariableSelector) Select(layer *Layer, unbound []int) int {
	if len(unbound) == 0 {
		panic(ContractViolation{Component: "SimpleVariableSelector", Reason: "no unbound variable to select"})
	}
	min := unbound[0]
	for _, v := range unbound[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// rankedNodes returns the layer's nodes sorted by ascending Rank, ties
// broken by insertion order (a stable sort over the insertion-ordered
// slice already achieves that).
func rankedNodes(layer *Layer) []*Node {
	nodes := append([]*Node(nil), layer.Nodes()...)
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].State.Rank(nodes[i]) < nodes[j].State.Rank(nodes[j])
	})
	return nodes
}

// MinRankMergeSelector selects the k nodes of smallest Rank to be merged.
type MinRankMergeSelector struct{}

// Select returns the k lowest-ranked nodes of layer. k must be >= 2 and
// <= layer.Len(); violating this is a contract violation.
func (MinRankMergeSelector) Select(layer *Layer, k int) []*Node {
	if k < 2 || k > layer.Len() {
		panic(ContractViolation{Component: "MinRankMergeSelector", Reason: "k out of range, must be in [2, layer width]"})
	}
	return rankedNodes(layer)[:k]
}

// MinRankDeleteSelector selects the k nodes of smallest Rank to be
// deleted.
type MinRankDeleteSelector struct{}

// Select returns the k lowest-ranked nodes of layer. k must be in
// [1, layer.Len()].
func (MinRankDeleteSelector) Select(layer *Layer, k int) []*Node {
	if k < 1 || k > layer.Len() {
		panic(ContractViolation{Component: "MinRankDeleteSelector", Reason: "k out of range, must be in [1, layer width]"})
	}
	return rankedNodes(layer)[:k]
}
