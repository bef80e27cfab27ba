package isotown

import "testing"

// --- HitIndex ---

func TestHitIndexPickTopmost(t *testing.T) {
	var idx HitIndex
	far := &Building{Name: "far"}
	near := &Building{Name: "near"}

	// Overlapping boxes added in paint order: far first, near on top.
	idx.Add(Rect{0, 0, 100, 100}, far)
	idx.Add(Rect{50, 50, 100, 100}, near)

	if got := idx.Pick(75, 75); got != near {
		t.Errorf("Pick in overlap = %v, want near", got)
	}
	if got := idx.Pick(10, 10); got != far {
		t.Errorf("Pick outside overlap = %v, want far", got)
	}
}

func TestHitIndexPickMiss(t *testing.T) {
	var idx HitIndex
	idx.Add(Rect{0, 0, 10, 10}, &Building{})

	if got := idx.Pick(50, 50); got != nil {
		t.Errorf("Pick miss = %v, want nil", got)
	}
}

func TestHitIndexEdgeInclusive(t *testing.T) {
	var idx HitIndex
	b := &Building{}
	idx.Add(Rect{10, 10, 20, 20}, b)

	if got := idx.Pick(10, 10); got != b {
		t.Error("top-left corner should hit")
	}
	if got := idx.Pick(30, 30); got != b {
		t.Error("bottom-right corner should hit")
	}
}

func TestHitIndexReset(t *testing.T) {
	var idx HitIndex
	idx.Add(Rect{0, 0, 100, 100}, &Building{})
	idx.Reset()

	if idx.Len() != 0 {
		t.Fatalf("Len after Reset = %d, want 0", idx.Len())
	}
	if got := idx.Pick(50, 50); got != nil {
		t.Errorf("Pick after Reset = %v, want nil", got)
	}
}
