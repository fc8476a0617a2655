package connect

import (
	"testing"

	"github.com/matzehuels/blockboard/pkg/board"
)

func TestCanStartLink(t *testing.T) {
	e, s := newTestEngine()

	tests := []struct {
		typ  board.BlockType
		want bool
	}{
		{board.TypeSwitch, true},
		{board.TypeCollection, true},
		{board.TypeFlow, true},
		{board.TypeAction, false},
		{board.TypeStart, false},
		{board.TypeSwitchEnd, false},
	}
	for _, tt := range tests {
		id := s.Create(board.Block{Type: tt.typ})
		if got := e.CanStartLink(id); got != tt.want {
			t.Errorf("CanStartLink(%s) = %v, want %v", tt.typ, got, tt.want)
		}
	}
	if e.CanStartLink("missing") {
		t.Error("CanStartLink on unknown id")
	}
}

func TestLinkSwitchFanOut(t *testing.T) {
	e, s := newTestEngine()
	sw := s.Create(board.Block{Type: board.TypeSwitch, ZOrder: 4})
	a := s.Create(board.Block{Type: board.TypeAction, ZOrder: 1, Position: board.Point{X: 300, Y: 300}})
	b := s.Create(board.Block{Type: board.TypeAction, ZOrder: 2, Position: board.Point{X: 600, Y: 300}})

	if !e.Link(sw, a) || !e.Link(sw, b) {
		t.Fatal("switch must link any number of branch targets")
	}
	if got := len(s.Block(sw).Bottom); got != 2 {
		t.Errorf("switch fan-out = %d, want 2", got)
	}
	if s.Block(a).ZOrder <= s.Block(sw).ZOrder {
		t.Error("linked target not raised above source")
	}
}

func TestLinkCollectionRecordsMembership(t *testing.T) {
	e, s := newTestEngine()
	col := s.Create(board.Block{Type: board.TypeCollection})
	a := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 300, Y: 300}})

	if !e.Link(col, a) {
		t.Fatal("link failed")
	}
	if !s.Block(col).HasInternal(a) {
		t.Error("linked block missing from bracketed set")
	}
}

func TestLinkRejectsBottomCycle(t *testing.T) {
	e, s := newTestEngine()
	head := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 100, Y: 100}})
	sw := s.Create(board.Block{Type: board.TypeSwitch, Position: board.Point{X: 100, Y: 183}})
	s.Connect(head, sw)

	// Linking the switch back onto the free top of its own ancestor would
	// close a bottom cycle.
	if e.CanLink(sw, head) {
		t.Error("CanLink permitted a cycle-closing edge")
	}
	if e.Link(sw, head) {
		t.Fatal("Link created a cycle-closing edge")
	}
	if got := len(s.Connections()); got != 1 {
		t.Errorf("edges = %d, want 1", got)
	}
	if s.Block(head).Top != "" {
		t.Errorf("head Top = %q, want free", s.Block(head).Top)
	}
}

func TestLinkCollectionSkipsUnbracketableMembership(t *testing.T) {
	e, s := newTestEngine()
	col := s.Create(board.Block{Type: board.TypeCollection})
	flow := s.Create(board.Block{Type: board.TypeFlow, Position: board.Point{X: 400, Y: 300}})

	if !e.Link(col, flow) {
		t.Fatal("link failed")
	}
	// The edge exists, but a Flow never joins the bracketed set.
	if !s.Block(col).HasBottom(flow) {
		t.Error("edge missing")
	}
	if s.Block(col).HasInternal(flow) {
		t.Error("Flow recorded in bracketed set")
	}
}

func TestLinkRejections(t *testing.T) {
	e, s := newTestEngine()
	flow := s.Create(board.Block{Type: board.TypeFlow})
	action := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 300, Y: 0}})
	occupied := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 600, Y: 0}})
	s.Connect(action, occupied)
	start := s.Create(board.Block{Type: board.TypeStart, Position: board.Point{X: 900, Y: 0}})
	taken := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 0, Y: 300}})
	if !e.Link(flow, taken) {
		t.Fatal("setup link failed")
	}

	tests := []struct {
		name     string
		src, dst string
	}{
		{"plain source", action, start},
		{"self link", flow, flow},
		{"occupied top", flow, occupied},
		{"no top anchor", flow, start},
		{"source arity exhausted", flow, action},
		{"unknown target", flow, "missing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if e.Link(tt.src, tt.dst) {
				t.Error("illegal link succeeded")
			}
		})
	}
}
