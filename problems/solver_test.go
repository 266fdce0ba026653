package problems

import (
	"context"
	"testing"
	"time"

	"github.com/crillab/gomdd/mdd"
)

func cycleEdges(n int) []Edge {
	edges := make([]Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, Edge{U: i, V: (i + 1) % n, Weight: float64(1 + i%3)})
	}
	return edges
}

func TestMinLAReturnsPromptlyOnAnAlreadyExpiredContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()

	s := mdd.NewSolver(NewMinLA(12, cycleEdges(12)))
	start := time.Now()
	result := s.Solve(ctx)
	elapsed := time.Since(start)

	if !result.TimedOut {
		t.Fatal("an already-expired context should produce a TimedOut result")
	}
	if elapsed > time.Second {
		t.Fatalf("Solve took %v to return after an expired context, want well under 1s", elapsed)
	}
}

func TestMinLADeterministicAcrossRuns(t *testing.T) {
	edges := cycleEdges(8)
	a := mdd.NewSolver(NewMinLA(8, edges)).Solve(context.Background())
	b := mdd.NewSolver(NewMinLA(8, edges)).Solve(context.Background())

	if a.Incumbent.Value != b.Incumbent.Value {
		t.Fatalf("incumbent values differ across identical runs: %v vs %v", a.Incumbent.Value, b.Incumbent.Value)
	}
	if a.LowerBound != b.LowerBound || a.UpperBound != b.UpperBound {
		t.Fatal("bounds differ across identical runs")
	}
	for i, v := range a.Incumbent.Variables {
		if v.Value != b.Incumbent.Variables[i].Value {
			t.Fatalf("final assignment differs at variable %d: %d vs %d", i, v.Value, b.Incumbent.Variables[i].Value)
		}
	}
}

func TestMinLANarrowWidthNeverUnderestimatesTheFinalBound(t *testing.T) {
	edges := cycleEdges(10)
	exact := mdd.NewSolver(NewMinLA(10, edges)).Solve(context.Background())

	narrow := mdd.NewSolver(NewMinLA(10, edges))
	narrow.SetWidth(2)
	narrowResult := narrow.Solve(context.Background())

	if narrowResult.LowerBound != exact.LowerBound {
		t.Fatalf("a completed search must find the same optimum regardless of width: got %v, want %v", narrowResult.LowerBound, exact.LowerBound)
	}
}
