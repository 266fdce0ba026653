package mdd

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Stats are statistics about the resolution of a problem. They are
// provided for information purposes only.
type Stats struct {
	NbSubproblems    int // how many nodes were popped off the open queue
	NbRestrictedMDDs int // how many restricted compilations were run
	NbRelaxedMDDs    int // how many relaxed compilations were run
	NbMerges         int // how many relaxed compilations performed at least one merge
	NbDeletes        int // how many restricted compilations performed at least one delete
	NbCutsetNodes    int // how many cutset nodes were ever enqueued
}

// Solver drives a best-first branch-and-bound search over the MDDs
// compiled from a Problem. It maintains a priority queue of open
// subproblems keyed by relaxed value, runs a restricted then (if not
// exact) a relaxed compilation at each, updates the global bounds, and
// enqueues the relaxed compilation's exact cutset as new subproblems.
type Solver struct {
	// Verbose indicates whether the solver should print incumbent/bound
	// updates to stdout while solving. False by default.
	Verbose bool

	// Stats about the resolution process, populated as Solve runs.
	Stats Stats

	problem  Problem
	mdd      *MDD
	adaptive bool
	width    int

	startTime time.Time

	lowerBound float64
	upperBound float64
}

// NewSolver returns a Solver for problem using the default heuristics:
// lowest-id-first variable selection, min-rank merge and delete.
func NewSolver(problem Problem) *Solver {
	return NewSolverWithSelectors(problem, SimpleVariableSelector{}, MinRankMergeSelector{}, MinRankDeleteSelector{})
}

// NewSolverWithSelectors returns a Solver for problem using the given
// heuristics.
func NewSolverWithSelectors(problem Problem, variable VariableSelector, merge MergeSelector, del DeleteSelector) *Solver {
	return &Solver{
		problem:  problem,
		mdd:      NewMDD(problem, variable, merge, del),
		adaptive: true,
	}
}

// SetWidth fixes the maximum width of every compiled MDD, disabling the
// default adaptive width (number of unbound variables).
func (s *Solver) SetWidth(width int) {
	s.adaptive = false
	s.width = width
}

func (s *Solver) widthFor(node *Node) int {
	if s.adaptive {
		return s.problem.NVariables() - node.LayerNumber
	}
	return s.width
}

// Solve runs the branch-and-bound search until the open-subproblem queue
// empties (optimality proved) or ctx is done (cooperative, graceful
// cancellation: the best incumbent found so far is returned, with
// TimedOut set and no claim of optimality).
//
// A cutset node's RelaxedValue is inherited from the relaxed MDD's
// terminal value — a bound on the whole relaxed root, not independently
// tightened per cutset node. This can make UpperBound looser than it has
// to be, but keeps the bookkeeping simple.
func (s *Solver) Solve(ctx context.Context) Result {
	s.startTime = time.Now()

	s.lowerBound = math.Inf(-1)
	s.upperBound = math.Inf(1)

	var incumbent *Node

	q := newNodeQueue()
	q.push(s.problem.Root())

	n := s.problem.NVariables()

	for !q.empty() {
		select {
		case <-ctx.Done():
			return s.result(incumbent, true)
		default:
		}

		node := q.popMin()

		if node.RelaxedValue <= s.lowerBound {
			continue
		}
		s.Stats.NbSubproblems++

		width := s.widthFor(node)

		restricted := s.mdd.Compile(node, n, width, Restricted)
		s.Stats.NbRestrictedMDDs++
		restrictedExact := s.mdd.Exact()
		if !restrictedExact {
			s.Stats.NbDeletes++
		}

		select {
		case <-ctx.Done():
			return s.result(incumbent, true)
		default:
		}

		if restricted.Value > s.lowerBound {
			incumbent = restricted
			s.lowerBound = restricted.Value
			s.printInfo(true)
		}

		if restrictedExact {
			continue
		}

		relaxed := s.mdd.Compile(node, n, width, Relaxed)
		s.Stats.NbRelaxedMDDs++
		s.Stats.NbMerges++

		select {
		case <-ctx.Done():
			return s.result(incumbent, true)
		default:
		}

		if relaxed.Value > s.lowerBound {
			for _, c := range s.mdd.Cutset() {
				child := c.Detach()
				child.RelaxedValue = relaxed.Value
				q.push(child)
				s.Stats.NbCutsetNodes++
			}
		}

		if !q.empty() {
			queueUpperBound := math.Inf(-1)
			for _, c := range q.all() {
				if c.RelaxedValue > queueUpperBound {
					queueUpperBound = c.RelaxedValue
				}
			}
			if queueUpperBound < s.upperBound {
				s.upperBound = queueUpperBound
				s.printInfo(false)
			}
		}
	}

	s.upperBound = s.lowerBound
	return s.result(incumbent, false)
}

func (s *Solver) result(incumbent *Node, timedOut bool) Result {
	return Result{
		Incumbent:  incumbent,
		LowerBound: s.lowerBound,
		UpperBound: s.upperBound,
		TimedOut:   timedOut,
	}
}

// Gap is undefined when lowerBound is 0 and upperBound > 0; the
// documented formula gives 1.0 in that case, and this is preserved
// rather than special-cased.
func gap(lowerBound, upperBound float64) float64 {
	if math.IsInf(upperBound, 1) {
		return 1
	}
	if upperBound < 0 {
		return math.Abs(upperBound-lowerBound) / math.Abs(lowerBound)
	}
	return (upperBound - lowerBound) / upperBound
}

// Gap reports how far lowerBound and upperBound still are, in [0, 1]: 1
// when upperBound is unknown (+Inf); else the relative gap, taking the
// sign of lowerBound into account.
func (s *Solver) Gap() float64 {
	return gap(s.lowerBound, s.upperBound)
}

func (s *Solver) printInfo(newIncumbent bool) {
	if !s.Verbose {
		return
	}
	mark := " "
	if newIncumbent {
		mark = "*"
	}
	elapsed := time.Since(s.startTime).Seconds()
	gapPct := 100 * s.Gap()
	if math.IsInf(s.upperBound, 1) {
		fmt.Printf("   |  Best sol.  Best bound |         Gap |        Time\n")
		fmt.Printf("%2s | %10.3f  %10s | %10.3f%% | %10.3fs\n", mark, s.lowerBound, "inf", gapPct, elapsed)
	} else {
		fmt.Printf("%2s | %10.3f  %10.3f | %10.3f%% | %10.3fs\n", mark, s.lowerBound, s.upperBound, gapPct, elapsed)
	}
}
