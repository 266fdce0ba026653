package mdd

import "math"

// Mode selects whether a compilation restricts (deletes nodes) or
// relaxes (merges nodes) a layer whose width exceeds the bound.
type Mode byte

const (
	// Restricted compilations delete nodes when a layer is too wide,
	// producing a feasible but possibly suboptimal solution.
	Restricted = Mode(iota)
	// Relaxed compilations merge nodes when a layer is too wide,
	// producing an over-approximation (an upper bound).
	Relaxed
)

func (m Mode) String() string {
	switch m {
	case Restricted:
		return "restricted"
	case Relaxed:
		return "relaxed"
	default:
		panic(ContractViolation{Component: "Mode.String", Reason: "invalid mode"})
	}
}

// MDD compiles a Problem, layer by layer, from a given initial Node into
// a bounded-width diagram, tracking whether any restriction/relaxation
// ever occurred and the deepest exact layer (the cutset).
type MDD struct {
	problem  Problem
	variable VariableSelector
	merge    MergeSelector
	del      DeleteSelector

	layers []*Layer
	exact  bool
	cutset *Layer
}

// NewMDD returns an MDD compiler for problem using the given selectors.
func NewMDD(problem Problem, variable VariableSelector, merge MergeSelector, del DeleteSelector) *MDD {
	return &MDD{problem: problem, variable: variable, merge: merge, del: del}
}

// Exact reports whether the last Compile completed without ever
// restricting or relaxing a layer (and without dead-ending). A true
// result means the compiled diagram is exact, not an approximation.
func (d *MDD) Exact() bool { return d.exact }

// Cutset returns the deepest layer of the last Compile in which every
// node was exact and no ancestor of any node in that layer had been
// touched by a restriction or relaxation. Only meaningful after a Relaxed
// compilation; for a Restricted compilation it still reflects the same
// bookkeeping but its nodes are not used as subproblems.
func (d *MDD) Cutset() []*Node {
	if d.cutset == nil {
		return nil
	}
	return d.cutset.Nodes()
}

// Compile builds the diagram rooted at root, mode-bounded to width, and
// returns the terminal node of maximum value. n must be the number of
// problem variables. If a whole layer has no successor, Compile stops
// there and returns a sentinel node of Value -Inf instead.
func (d *MDD) Compile(root *Node, n int, width int, mode Mode) *Node {
	l0 := SingletonLayer(root)
	d.layers = []*Layer{l0}
	d.exact = true
	if l0.Exact() {
		d.cutset = l0
	} else {
		d.cutset = nil
	}

	current := l0
	for pos := root.LayerNumber; pos < n; pos++ {
		unbound := make([]int, 0, n-pos)
		for _, idx := range current.Nodes()[0].Indexes[pos:] {
			unbound = append(unbound, idx)
		}
		v := d.variable.Select(current, unbound)

		next := NewLayer()
		for _, u := range current.Nodes() {
			successors := d.problem.Successors(u, u.Variables[v])
			for _, s := range successors {
				if s.LayerNumber != pos+1 {
					panic(ContractViolation{Component: "Problem.Successors", Reason: "successor has inconsistent LayerNumber"})
				}
				next.Add(s)
			}
		}

		if next.Width() == 0 {
			// Every node of the current layer dead-ended: no successor
			// exists for any of them. There is no completion of this
			// subproblem to report, so it must not be able to look like
			// an improvement over whatever incumbent the Solver already
			// holds.
			d.exact = false
			return &Node{Value: math.Inf(-1), RelaxedValue: math.Inf(-1)}
		}

		if next.Width() > width {
			switch mode {
			case Restricted:
				k := next.Width() - width
				drop := d.del.Select(next, k)
				next.Remove(drop)
				d.exact = false
			case Relaxed:
				k := next.Width() - width + 1
				toMerge := d.merge.Select(next, k)
				if len(toMerge) < 2 {
					panic(ContractViolation{Component: "MergeSelector", Reason: "selected fewer than 2 nodes to merge"})
				}
				merged := d.problem.Merge(toMerge)
				merged.Exact = false
				next.Replace(toMerge, merged)
				d.exact = false
			}
		}

		d.layers = append(d.layers, next)
		current = next

		if d.exact && current.Exact() {
			d.cutset = current
		}
	}

	return current.Best()
}
