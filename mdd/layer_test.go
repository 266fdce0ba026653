package mdd

import "testing"

func TestLayerAddMergesSameState(t *testing.T) {
	l := NewLayer()
	low := nodeAt(testState(0), 1)
	high := nodeAt(testState(0), 2)
	high.Exact = false

	l.Add(low)
	l.Add(high)

	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (same state must merge)", l.Len())
	}
	merged := l.Nodes()[0]
	if merged.Value != 2 {
		t.Fatalf("merged Value = %v, want 2 (max)", merged.Value)
	}
	if merged.Exact {
		t.Fatal("merged Exact should be false: low.Exact && high.Exact = true && false")
	}
}

func TestLayerAddKeepsWinnerVariables(t *testing.T) {
	l := NewLayer()

	low := testRoot(testState(0), 1).Successor(testState(0), 1, 0, 0)
	high := testRoot(testState(0), 1).Successor(testState(0), 2, 0, 1)

	l.Add(low)
	l.Add(high)

	merged := l.Nodes()[0]
	if merged.Value != 2 {
		t.Fatalf("merged Value = %v, want 2", merged.Value)
	}
	if got := merged.Variable(0).Value; got != 1 {
		t.Fatalf("merged assignment = %d, want 1 (the higher-value node's own assignment)", got)
	}
}

func TestLayerAddDistinctStatesDoNotMerge(t *testing.T) {
	l := NewLayer()
	l.Add(nodeAt(testState(0), 1))
	l.Add(nodeAt(testState(1), 2))

	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (distinct states)", l.Len())
	}
}

func TestLayerBestBreaksTiesByInsertionOrder(t *testing.T) {
	l := NewLayer()
	first := nodeAt(testState(0), 3)
	second := nodeAt(testState(1), 3)
	l.Add(first)
	l.Add(second)

	if got := l.Best(); got != first {
		t.Fatal("Best() should return the first-inserted node on a tie")
	}
}

func TestLayerBestPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on an empty layer")
		}
	}()
	NewLayer().Best()
}

func TestLayerExact(t *testing.T) {
	l := NewLayer()
	l.Add(nodeAt(testState(0), 1))
	l.Add(nodeAt(testState(1), 1))
	if !l.Exact() {
		t.Fatal("a layer of all-exact nodes should be Exact")
	}

	inexact := nodeAt(testState(2), 1)
	inexact.Exact = false
	l.Add(inexact)
	if l.Exact() {
		t.Fatal("a layer with one inexact node should not be Exact")
	}
}

func TestLayerRemove(t *testing.T) {
	l := NewLayer()
	a := nodeAt(testState(0), 1)
	b := nodeAt(testState(1), 1)
	l.Add(a)
	l.Add(b)

	l.Remove([]*Node{a})
	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after removing one of two nodes", l.Len())
	}
	if l.Nodes()[0] != b {
		t.Fatal("Remove removed the wrong node")
	}
}

func TestLayerRemoveUnknownNodePanics(t *testing.T) {
	l := NewLayer()
	l.Add(nodeAt(testState(0), 1))

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic when removing a node not present in the layer")
		}
	}()
	l.Remove([]*Node{nodeAt(testState(99), 1)})
}

func TestLayerReplace(t *testing.T) {
	l := NewLayer()
	a := nodeAt(testState(0), 1)
	b := nodeAt(testState(1), 1)
	l.Add(a)
	l.Add(b)

	replacement := nodeAt(testState(2), 5)
	l.Replace([]*Node{a, b}, replacement)

	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after replacing both nodes with one", l.Len())
	}
	if l.Nodes()[0] != replacement {
		t.Fatal("Replace did not insert the replacement")
	}
}
