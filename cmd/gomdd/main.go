package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/crillab/gomdd/mdd"
	"github.com/crillab/gomdd/problems"
)

func main() {
	var (
		verbose bool
		width   int
		timeout time.Duration
	)
	flag.BoolVar(&verbose, "verbose", false, "sets verbose mode on")
	flag.IntVar(&width, "width", 0, "fixes the maximum MDD width (0 means adaptive)")
	flag.DurationVar(&timeout, "timeout", 0, "time budget for the search (0 means unbounded)")
	flag.Parse()

	if len(flag.Args()) != 1 {
		fmt.Fprintf(os.Stderr, "Syntax: %s [options] (sum-3|sum-10|k3|k5|disconnected)\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	pb, err := build(flag.Args()[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not build instance: %v\n", err)
		os.Exit(1)
	}

	solve(pb, verbose, width, timeout)
}

// build resolves one of the CLI's built-in instances. There is no
// on-disk instance format in scope: minla selections pick from a
// handful of named demo graphs instead of parsing a file.
func build(name string) (mdd.Problem, error) {
	switch name {
	case "sum-3":
		return problems.NewSum(3), nil
	case "sum-10":
		return problems.NewSum(10), nil
	case "k3":
		return problems.NewMinLA(3, []problems.Edge{
			{U: 0, V: 1, Weight: 1},
			{U: 0, V: 2, Weight: 1},
			{U: 1, V: 2, Weight: 1},
		}), nil
	case "k5":
		edges := make([]problems.Edge, 0, 10)
		for i := 0; i < 5; i++ {
			for j := i + 1; j < 5; j++ {
				edges = append(edges, problems.Edge{U: i, V: j, Weight: 1})
			}
		}
		return problems.NewMinLA(5, edges), nil
	case "disconnected":
		// two components, sizes 2 and 3, sharing no edge. Weights are
		// positive, so the solver maximizes total stretch and the best
		// arrangement interleaves the components: its value (12) exceeds
		// the sum of the two independent optima (2 + 4).
		return problems.NewMinLA(5, []problems.Edge{
			{U: 0, V: 1, Weight: 2},
			{U: 2, V: 3, Weight: 1},
			{U: 3, V: 4, Weight: 1},
			{U: 2, V: 4, Weight: 1},
		}), nil
	default:
		return nil, fmt.Errorf("unknown instance %q", name)
	}
}

func solve(pb mdd.Problem, verbose bool, width int, timeout time.Duration) {
	s := mdd.NewSolver(pb)
	s.Verbose = verbose
	if width > 0 {
		s.SetWidth(width)
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	result := s.Solve(ctx)
	elapsed := time.Since(start)

	if result.Incumbent == nil {
		fmt.Println("NO FEASIBLE SOLUTION")
		return
	}

	fmt.Printf("best value: %.3f\n", result.Incumbent.Value)
	fmt.Print("assignment:")
	for _, v := range result.Incumbent.Variables {
		fmt.Printf(" x%d=%d", v.ID, v.Value)
	}
	fmt.Println()
	fmt.Printf("lower bound: %.3f\nupper bound: %.3f\ngap: %.3f%%\n", result.LowerBound, result.UpperBound, 100*result.Gap())
	fmt.Printf("timed out: %t\nelapsed: %.3fs\n", result.TimedOut, elapsed.Seconds())
	if verbose {
		fmt.Printf("subproblems: %d, restricted MDDs: %d, relaxed MDDs: %d, merges: %d, deletes: %d, cutset nodes: %d\n",
			s.Stats.NbSubproblems, s.Stats.NbRestrictedMDDs, s.Stats.NbRelaxedMDDs, s.Stats.NbMerges, s.Stats.NbDeletes, s.Stats.NbCutsetNodes)
	}
}
