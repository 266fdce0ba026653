package mdd

import "fmt"

// ContractViolation reports a programming error in a Problem or Selector
// implementation: malformed output that breaks a documented invariant
// (e.g. a MergeSelector returning fewer than 2 nodes, a successor with an
// inconsistent LayerNumber). The core panics with a ContractViolation
// rather than threading an error return through every internal call; an
// embedder that wants to recover can do so with a type assertion on the
// recovered value.
type ContractViolation struct {
	Component string // the collaborator that violated its contract
	Reason    string
}

func (e ContractViolation) Error() string {
	return fmt.Sprintf("mdd: contract violation in %s: %s", e.Component, e.Reason)
}
