package mdd

import "testing"

func TestNodeQueuePopsInAscendingOrder(t *testing.T) {
	q := newNodeQueue()
	for _, v := range []float64{5, 1, 4, 2, 3} {
		n := nodeAt(testState(int(v)), 0)
		n.RelaxedValue = v
		q.push(n)
	}

	var got []float64
	for !q.empty() {
		got = append(got, q.popMin().RelaxedValue)
	}

	want := []float64{1, 2, 3, 4, 5}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("pop order = %v, want %v", got, want)
		}
	}
}

func TestNodeQueueBreaksTiesFIFO(t *testing.T) {
	q := newNodeQueue()
	first := nodeAt(testState(0), 0)
	first.RelaxedValue = 1
	second := nodeAt(testState(1), 0)
	second.RelaxedValue = 1
	q.push(first)
	q.push(second)

	if got := q.popMin(); got != first {
		t.Fatal("equal-priority nodes should pop in FIFO (insertion) order")
	}
}

func TestNodeQueueLenAndEmpty(t *testing.T) {
	q := newNodeQueue()
	if !q.empty() {
		t.Fatal("a fresh queue should be empty")
	}
	q.push(nodeAt(testState(0), 1))
	if q.empty() || q.len() != 1 {
		t.Fatalf("len() = %d, empty() = %v; want 1, false", q.len(), q.empty())
	}
}
