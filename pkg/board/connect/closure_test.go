package connect

import (
	"slices"
	"testing"

	"github.com/matzehuels/blockboard/pkg/board"
)

func newTestEngine() (*Engine, *board.Store) {
	s := board.NewStore(board.DefaultMetrics())
	return New(s), s
}

func TestBelowClosureFollowsBottomEdges(t *testing.T) {
	e, s := newTestEngine()
	a := s.Create(board.Block{ID: "a", Type: board.TypeAction})
	b := s.Create(board.Block{ID: "b", Type: board.TypeAction, Position: board.Point{Y: 83}})
	c := s.Create(board.Block{ID: "c", Type: board.TypeAction, Position: board.Point{Y: 166}})
	s.Connect(a, b)
	s.Connect(b, c)

	got := e.BelowClosure(a)

	if len(got) != 2 || !slices.Contains(got, b) || !slices.Contains(got, c) {
		t.Errorf("BelowClosure(%s) = %v, want {%s %s}", a, got, b, c)
	}
	if slices.Contains(got, a) {
		t.Error("closure includes the start block")
	}
}

func TestBelowClosureIncludesBracketAndFlowContents(t *testing.T) {
	e, s := newTestEngine()
	col := s.Create(board.Block{ID: "col", Type: board.TypeCollection})
	end := s.Create(board.Block{ID: "end", Type: board.TypeCollectionEnd, Position: board.Point{Y: 150}})
	s.Patch(col, func(b *board.Block) { b.PairedWith = end })
	s.Patch(end, func(b *board.Block) { b.PairedWith = col })
	s.Connect(col, end)

	member := s.Create(board.Block{ID: "member", Type: board.TypeAction, Position: board.Point{Y: 60}})
	s.Patch(col, func(b *board.Block) { b.Internal = append(b.Internal, member) })

	flow := s.Create(board.Block{ID: "flow", Type: board.TypeFlow, Position: board.Point{Y: 260}})
	inFlow := s.Create(board.Block{ID: "inflow", Type: board.TypeAction})
	s.Patch(inFlow, func(b *board.Block) { b.ParentContainer = flow; b.Position = board.Point{X: 20, Y: 20} })
	s.Patch(flow, func(b *board.Block) { b.Children = append(b.Children, inFlow) })
	s.Connect(end, flow)

	got := e.BelowClosure(col)

	for _, want := range []string{end, member, flow, inFlow} {
		if !slices.Contains(got, want) {
			t.Errorf("closure %v missing %s", got, want)
		}
	}
}

func TestBelowClosureCycleSafe(t *testing.T) {
	e, s := newTestEngine()
	a := s.Create(board.Block{ID: "a", Type: board.TypeAction})
	b := s.Create(board.Block{ID: "b", Type: board.TypeAction})
	s.Connect(a, b)
	// Force a cycle through the raw block state.
	s.Patch(b, func(blk *board.Block) { blk.Bottom = append(blk.Bottom, a) })

	got := e.BelowClosure(a)

	if len(got) != 2 {
		t.Errorf("BelowClosure = %v, want exactly {%s %s}", got, a, b)
	}
}

func TestTranslateMovesClosure(t *testing.T) {
	e, s := newTestEngine()
	a := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 100, Y: 100}})
	b := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 100, Y: 183}})
	s.Connect(a, b)
	bystander := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 500, Y: 500}})

	e.Translate(a, board.Point{X: 10, Y: -20})

	if got := s.Block(a).Position; got != (board.Point{X: 110, Y: 80}) {
		t.Errorf("root position = %v, want {110 80}", got)
	}
	if got := s.Block(b).Position; got != (board.Point{X: 110, Y: 163}) {
		t.Errorf("child position = %v, want {110 163}", got)
	}
	if got := s.Block(bystander).Position; got != (board.Point{X: 500, Y: 500}) {
		t.Errorf("bystander moved to %v", got)
	}
}

func TestTranslateSkipsMembersOfMovedFlow(t *testing.T) {
	e, s := newTestEngine()
	a := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 100, Y: 100}})
	flow := s.Create(board.Block{Type: board.TypeFlow, Position: board.Point{X: 100, Y: 183}})
	member := s.Create(board.Block{Type: board.TypeAction, Position: board.Point{X: 20, Y: 20}})
	s.Patch(member, func(b *board.Block) { b.ParentContainer = flow })
	s.Patch(flow, func(b *board.Block) { b.Children = append(b.Children, member) })
	s.Connect(a, flow)

	e.Translate(a, board.Point{X: 0, Y: 50})

	if got := s.Block(flow).Position; got != (board.Point{X: 100, Y: 233}) {
		t.Errorf("flow position = %v, want {100 233}", got)
	}
	// Local coordinates ride along with the container.
	if got := s.Block(member).Position; got != (board.Point{X: 20, Y: 20}) {
		t.Errorf("member local position = %v, want {20 20}", got)
	}
}
