package mdd

import (
	"context"
	"math"
	"testing"
)

func TestSolverFindsOptimumWithAdaptiveWidth(t *testing.T) {
	s := NewSolver(&binaryProblem{n: 4})
	result := s.Solve(context.Background())

	if result.TimedOut {
		t.Fatal("Solve should not time out on a trivial problem")
	}
	if result.Incumbent == nil || result.Incumbent.Value != 4 {
		t.Fatalf("Incumbent.Value = %v, want 4", result.Incumbent.Value)
	}
	if result.LowerBound != result.UpperBound {
		t.Fatalf("LowerBound (%v) != UpperBound (%v): search should have proved optimality", result.LowerBound, result.UpperBound)
	}
	if result.Gap() != 0 {
		t.Fatalf("Gap() = %v, want 0 at optimality", result.Gap())
	}
}

func TestSolverFindsOptimumWithNarrowFixedWidth(t *testing.T) {
	s := NewSolver(&binaryProblem{n: 5})
	s.SetWidth(1)
	result := s.Solve(context.Background())

	if result.Incumbent == nil || result.Incumbent.Value != 5 {
		t.Fatalf("Incumbent.Value = %v, want 5 even at width 1", result.Incumbent.Value)
	}
}

func TestSolverRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSolver(&binaryProblem{n: 20})
	result := s.Solve(ctx)

	if !result.TimedOut {
		t.Fatal("Solve should report TimedOut for an already-canceled context")
	}
}

func TestSolverStatsCountSubproblems(t *testing.T) {
	s := NewSolver(&binaryProblem{n: 3})
	s.SetWidth(1)
	s.Solve(context.Background())

	if s.Stats.NbSubproblems == 0 {
		t.Fatal("NbSubproblems should be > 0 after solving")
	}
	if s.Stats.NbRestrictedMDDs == 0 {
		t.Fatal("NbRestrictedMDDs should be > 0 after solving")
	}
}

func TestGapFormula(t *testing.T) {
	cases := []struct {
		lower, upper, want float64
	}{
		{5, math.Inf(1), 1},
		{-10, -5, 0.5},
		{5, 10, 0.5},
		{0, 10, 1},
		{3, 3, 0},
	}
	for _, c := range cases {
		if got := gap(c.lower, c.upper); !almostEqual(got, c.want) {
			t.Errorf("gap(%v, %v) = %v, want %v", c.lower, c.upper, got, c.want)
		}
	}
}
