package board

import "testing"

func TestAbsolutePosition(t *testing.T) {
	s := newTestStore()
	s.Create(Block{ID: "flow", Type: TypeFlow, Position: Point{X: 200, Y: 300}})
	s.Create(Block{ID: "free", Type: TypeAction, Position: Point{X: 50, Y: 60}})
	s.Create(Block{ID: "member", Type: TypeAction, Position: Point{X: 20, Y: 28}, ParentContainer: "flow"})
	s.Create(Block{ID: "orphaned", Type: TypeAction, Position: Point{X: 5, Y: 5}, ParentContainer: "ghost"})

	if got := s.AbsolutePosition(s.Block("free")); got != (Point{X: 50, Y: 60}) {
		t.Errorf("free block AbsolutePosition = %v", got)
	}
	if got := s.AbsolutePosition(s.Block("member")); got != (Point{X: 220, Y: 328}) {
		t.Errorf("member AbsolutePosition = %v, want {220 328}", got)
	}
	// Dangling container reference degrades to absolute.
	if got := s.AbsolutePosition(s.Block("orphaned")); got != (Point{X: 5, Y: 5}) {
		t.Errorf("orphaned AbsolutePosition = %v", got)
	}
	if got := s.AbsolutePosition(nil); got != (Point{}) {
		t.Errorf("nil AbsolutePosition = %v", got)
	}
}

func TestLocalPositionInvertsAbsolute(t *testing.T) {
	s := newTestStore()
	s.Create(Block{ID: "flow", Type: TypeFlow, Position: Point{X: 200, Y: 300}})

	abs := Point{X: 220, Y: 328}
	local := s.LocalPosition(abs, "flow")
	if local != (Point{X: 20, Y: 28}) {
		t.Errorf("LocalPosition = %v, want {20 28}", local)
	}
	if got := s.LocalPosition(abs, "ghost"); got != abs {
		t.Errorf("LocalPosition with unknown container = %v, want unchanged", got)
	}
}

func TestAnchorPoints(t *testing.T) {
	s := newTestStore()
	m := s.Metrics()
	s.Create(Block{ID: "a", Type: TypeAction, Position: Point{X: 100, Y: 200}})
	b := s.Block("a")

	top := s.TopAnchorPoint(b)
	if top != (Point{X: 100 + m.BlockWidth/2, Y: 200}) {
		t.Errorf("TopAnchorPoint = %v", top)
	}
	bottom := s.BottomAnchorPoint(b)
	if bottom != (Point{X: 100 + m.BlockWidth/2, Y: 200 + m.BlockHeight}) {
		t.Errorf("BottomAnchorPoint = %v", bottom)
	}
}

func TestFlowEffectiveSize(t *testing.T) {
	s := newTestStore()
	m := s.Metrics()
	s.Create(Block{ID: "flow", Type: TypeFlow, Position: Point{X: 0, Y: 0}})

	// Before any reflow the Flow falls back to its minimum size.
	bounds := s.AbsoluteBounds(s.Block("flow"))
	if bounds.W != m.FlowMinWidth || bounds.H != m.FlowMinHeight {
		t.Errorf("empty flow bounds = %vx%v, want %vx%v", bounds.W, bounds.H, m.FlowMinWidth, m.FlowMinHeight)
	}

	s.Patch("flow", func(f *Block) { f.Width = 190; f.Height = 400 })
	bounds = s.AbsoluteBounds(s.Block("flow"))
	if bounds.H != 400 {
		t.Errorf("derived flow height = %v, want 400", bounds.H)
	}
}
