package mdd

// Result is what Solver.Solve returns: the best assignment found so far,
// the bounds that frame it, and whether the search was cut short by its
// time budget rather than proving optimality.
type Result struct {
	// Incumbent is the best complete assignment found, or nil if the
	// search completed (or timed out) without finding any feasible
	// solution.
	Incumbent *Node

	// LowerBound is the incumbent's value (-Inf if Incumbent is nil).
	LowerBound float64

	// UpperBound is the tightest known bound on the optimum. It equals
	// LowerBound when the search proved optimality.
	UpperBound float64

	// TimedOut is true iff the search returned because its time budget
	// was exceeded, not because the open-subproblem queue emptied.
	TimedOut bool
}

// Gap reports how far LowerBound and UpperBound still are, in [0, 1]. See
// Solver.Gap for the formula.
func (r Result) Gap() float64 {
	return gap(r.LowerBound, r.UpperBound)
}
