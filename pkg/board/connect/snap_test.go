package connect

import (
	"testing"

	"github.com/matzehuels/blockboard/pkg/board"
)

func TestSnapTopWithinTolerance(t *testing.T) {
	e, s := newTestEngine()
	m := s.Metrics()
	parent := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 100, Y: 100}})
	b := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 110, Y: 190}})

	got := e.SnapOnRelease(b)

	if got != parent {
		t.Fatalf("SnapOnRelease = %q, want %q", got, parent)
	}
	if s.Block(b).Top != parent {
		t.Errorf("Top = %q, want %q", s.Block(b).Top, parent)
	}
	want := board.Point{X: 100, Y: 100 + m.SnapOffset()}
	if got := s.Block(b).Position; got != want {
		t.Errorf("snapped position = %v, want %v", got, want)
	}
	if s.Block(b).ZOrder <= s.Block(parent).ZOrder {
		t.Error("snapped block must render above its parent")
	}
}

func TestSnapToleranceBoundaries(t *testing.T) {
	e, s := newTestEngine()
	m := s.Metrics()
	parent := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 100, Y: 100}})

	tests := []struct {
		name string
		pos  board.Point
		want bool
	}{
		{"just inside vertically", board.Point{X: 100, Y: 100 + m.BlockHeight + m.ConnectToleranceY - 1}, true},
		{"at vertical tolerance", board.Point{X: 100, Y: 100 + m.BlockHeight + m.ConnectToleranceY}, false},
		{"just inside horizontally", board.Point{X: 100 + m.ConnectToleranceX - 1, Y: 100 + m.BlockHeight}, true},
		{"at horizontal tolerance", board.Point{X: 100 + m.ConnectToleranceX, Y: 100 + m.BlockHeight}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := s.Create(board.Block{Type: board.TypeAction, Position: tt.pos})
			snapped := e.SnapOnRelease(b) == parent
			if snapped != tt.want {
				t.Errorf("snapped = %v, want %v", snapped, tt.want)
			}
			if snapped {
				s.Disconnect(parent, b)
			}
			s.Delete(b)
		})
	}
}

func TestSnapPicksNearestCandidate(t *testing.T) {
	e, s := newTestEngine()
	far := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 130, Y: 95}})
	near := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 100, Y: 100}})
	b := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 100, Y: 185}})

	if got := e.SnapOnRelease(b); got != near {
		t.Errorf("SnapOnRelease = %q, want nearest %q (not %q)", got, near, far)
	}
}

func TestSnapSkipsOccupiedBottoms(t *testing.T) {
	e, s := newTestEngine()
	parent := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 100, Y: 100}})
	first := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 100, Y: 183}})
	s.Connect(parent, first)

	b := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 110, Y: 190}})
	// parent's single bottom slot is taken; the only other candidate is
	// first itself, whose bottom anchor is too far away.
	if got := e.SnapOnRelease(b); got != "" {
		t.Errorf("SnapOnRelease = %q, want no snap", got)
	}
}

func TestSnapSwitchAcceptsFanOut(t *testing.T) {
	e, s := newTestEngine()
	sw := s.Create(board.Block{Type: board.TypeSwitch, Position: board.Point{X: 100, Y: 100}})
	first := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 100, Y: 183}})
	s.Connect(sw, first)

	// A second branch released over the switch connects despite the
	// occupied bottom, because switches fan out.
	b := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 110, Y: 190}})
	if got := e.SnapOnRelease(b); got != sw {
		t.Errorf("SnapOnRelease = %q, want branch target %q", got, sw)
	}
}

func TestSnapBottomPlacesAboveChild(t *testing.T) {
	e, s := newTestEngine()
	m := s.Metrics()
	child := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 105, Y: 190}})
	// A Start block has no top anchor, so the top-first search cannot fire.
	b := s.Create(board.Block{Type: board.TypeStart, Position: board.Point{X: 100, Y: 100}})

	got := e.SnapOnRelease(b)

	if got != child {
		t.Fatalf("SnapOnRelease = %q, want %q", got, child)
	}
	if s.Block(child).Top != b {
		t.Errorf("child Top = %q, want %q", s.Block(child).Top, b)
	}
	want := board.Point{X: 105, Y: 190 - m.SnapOffset()}
	if got := s.Block(b).Position; got != want {
		t.Errorf("position = %v, want %v", got, want)
	}
}

func TestSnapCreatesAtMostOneEdge(t *testing.T) {
	e, s := newTestEngine()
	above := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 100, Y: 100}})
	below := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 100, Y: 266}})
	// b sits in snapping range of both: above's bottom anchor and below's top.
	b := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 100, Y: 185}})

	got := e.SnapOnRelease(b)

	if got != above {
		t.Fatalf("SnapOnRelease = %q, want top-anchor match %q first", got, above)
	}
	if len(s.Connections()) != 1 {
		t.Errorf("edges = %d, want 1", len(s.Connections()))
	}
	if s.Block(below).Top != "" {
		t.Error("bottom-anchor search must not run after a top snap")
	}
}

func TestSnapBracketEndsNeverSnap(t *testing.T) {
	e, s := newTestEngine()
	s.Create(board.Block{ID: "parent", Type: board.TypeAction, Position: board.Point{X: 100, Y: 100}})
	end := s.Create(board.Block{Type: board.TypeSwitchEnd, Position: board.Point{X: 100, Y: 185}})
	s.Patch(end, func(b *board.Block) { b.PairedWith = "parent" })

	if got := e.SnapOnRelease(end); got != "" {
		t.Errorf("bracket end snapped to %q", got)
	}
}

func TestSnapNeverConnectsBelowOwnChain(t *testing.T) {
	e, s := newTestEngine()
	a := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 100, Y: 100}})
	b := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 100, Y: 183}})
	s.Connect(a, b)

	// The chain root lands just below its own tail, within snapping range of
	// the tail's bottom anchor.
	s.Block(a).Position = board.Point{X: 110, Y: 273}

	if got := e.SnapOnRelease(a); got != "" {
		t.Fatalf("SnapOnRelease = %q, want no snap onto a descendant", got)
	}
	if got := s.Block(b).Bottom; len(got) != 0 {
		t.Errorf("tail Bottom = %v, want empty", got)
	}
	if s.Block(b).Top != a {
		t.Error("existing edge lost")
	}
	if got := len(s.Connections()); got != 1 {
		t.Errorf("edges = %d, want 1", got)
	}
}

func TestSnapBottomSkipsOwnAncestor(t *testing.T) {
	e, s := newTestEngine()
	root := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 100, Y: 100}})
	mid := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 100, Y: 183}})
	tail := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 100, Y: 266}})
	s.Connect(root, mid)
	s.Connect(mid, tail)

	// The tail's bottom anchor hovers over the root's free top anchor; the
	// bottom-direction search must not wrap the chain into a loop.
	s.Block(tail).Position = board.Point{X: 110, Y: 20}

	if got := e.SnapOnRelease(tail); got != "" {
		t.Fatalf("SnapOnRelease = %q, want no snap onto an ancestor", got)
	}
	if got := len(s.Connections()); got != 2 {
		t.Errorf("edges = %d, want 2", got)
	}
}

func TestSnapPassesOverDescendantToLegalParent(t *testing.T) {
	e, s := newTestEngine()
	a := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 100, Y: 100}})
	b := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 100, Y: 183}})
	s.Connect(a, b)
	p := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 130, Y: 180}})

	// Both b's and p's bottom anchors are in range, b's slightly nearer. The
	// descendant is skipped rather than aborting the whole snap.
	s.Block(a).Position = board.Point{X: 110, Y: 273}

	if got := e.SnapOnRelease(a); got != p {
		t.Fatalf("SnapOnRelease = %q, want legal parent %q", got, p)
	}
	if s.Block(a).Top != p {
		t.Errorf("Top = %q, want %q", s.Block(a).Top, p)
	}
}

func TestSnapDragsClosureAlong(t *testing.T) {
	e, s := newTestEngine()
	s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 100, Y: 100}})
	b := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 110, Y: 190}})
	tail := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 110, Y: 273}})
	s.Connect(b, tail)

	e.SnapOnRelease(b)

	if got := s.Block(b).Position; got != (board.Point{X: 100, Y: 183}) {
		t.Fatalf("snapped position = %v, want {100 183}", got)
	}
	// tail keeps its offset relative to b: moved by the same {-10, -7}.
	if got := s.Block(tail).Position; got != (board.Point{X: 100, Y: 266}) {
		t.Errorf("tail position = %v, want {100 266}", got)
	}
}
