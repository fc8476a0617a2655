package contain

import (
	"sort"

	"github.com/matzehuels/blockboard/pkg/board"
)

// Engine manipulates containment state on a single store.
type Engine struct {
	store *board.Store
}

// New creates a containment engine over the given store.
func New(s *board.Store) *Engine { return &Engine{store: s} }

// Reflow re-stacks a Flow's members into its fixed vertical lane and derives
// the Flow's size. Members are ordered by their current local Y, so a member
// dragged between two others settles into that slot on the next pass. The
// operation is idempotent: a second call observes the assigned positions and
// reproduces them exactly.
//
// Reflow also pins the Flow's z-order strictly below all of its members, so
// the container never paints over its contents.
func (e *Engine) Reflow(flowID string) {
	flow := e.store.Block(flowID)
	if flow == nil || flow.Type != board.TypeFlow {
		return
	}
	m := e.store.Metrics()

	members := make([]*board.Block, 0, len(flow.Children))
	for _, id := range flow.Children {
		if b := e.store.Block(id); b != nil {
			members = append(members, b)
		}
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Position.Y < members[j].Position.Y
	})

	for i, b := range members {
		b.Position = board.Point{
			X: m.FlowPadding,
			Y: m.FlowPadding + float64(i)*(m.BlockHeight+m.FlowSpacing),
		}
	}

	n := float64(len(members))
	height := m.FlowMinHeight
	if n > 0 {
		if h := n*m.BlockHeight + (n-1)*m.FlowSpacing + 2*m.FlowPadding; h > height {
			height = h
		}
	}
	flow.Height = height
	flow.Width = m.FlowMinWidth

	lowest := flow.ZOrder
	for _, b := range members {
		if b.ZOrder < lowest {
			lowest = b.ZOrder
		}
	}
	for _, b := range members {
		if b.ZOrder <= lowest {
			b.ZOrder = lowest + 1
		}
	}
	flow.ZOrder = lowest
}

// Attach makes the block a member of the Flow, converting its position into
// the Flow's local frame. Types that cannot be contained (containers, bracket
// end markers) are rejected; attaching a block already in the Flow, or to a
// non-Flow id, is a no-op. Any connection between the block and the Flow is
// severed: a member cannot stay chained to its own container. The caller is
// expected to schedule a Reflow of the Flow afterwards.
func (e *Engine) Attach(blockID, flowID string) {
	b := e.store.Block(blockID)
	flow := e.store.Block(flowID)
	if b == nil || flow == nil || flow.Type != board.TypeFlow {
		return
	}
	if !b.Type.CanBeContained() || b.ParentContainer == flowID {
		return
	}
	if b.ParentContainer != "" {
		e.Detach(blockID)
	}
	e.store.Disconnect(blockID, flowID)
	e.store.Disconnect(flowID, blockID)
	abs := e.store.AbsolutePosition(b)
	b.Position = e.store.LocalPosition(abs, flowID)
	b.ParentContainer = flowID
	flow.Children = append(flow.Children, blockID)
}

// Detach removes the block from its enclosing Flow, converting its position
// back to the absolute frame. Blocks outside any Flow are no-ops. The caller
// is expected to schedule a Reflow of the former Flow afterwards.
func (e *Engine) Detach(blockID string) {
	b := e.store.Block(blockID)
	if b == nil || b.ParentContainer == "" {
		return
	}
	former := b.ParentContainer
	abs := e.store.AbsolutePosition(b)
	b.ParentContainer = ""
	b.Position = abs
	e.store.Patch(former, func(f *board.Block) {
		for i, id := range f.Children {
			if id == blockID {
				f.Children = append(f.Children[:i], f.Children[i+1:]...)
				break
			}
		}
	})
}

// FlowUnder returns the id of the Flow whose absolute bounds contain the
// block's visual center, or "" if there is none. Containers themselves are
// never "over" a Flow. The test carries no mutation; it is re-evaluated on
// every drag tick to pick a reparent target.
func (e *Engine) FlowUnder(blockID string) string {
	b := e.store.Block(blockID)
	if b == nil || !b.Type.CanBeContained() {
		return ""
	}
	center := e.store.AbsoluteBounds(b).Center()
	for _, cand := range e.store.Blocks() {
		if cand.Type != board.TypeFlow || cand.ID == blockID {
			continue
		}
		if e.store.AbsoluteBounds(cand).Contains(center) {
			return cand.ID
		}
	}
	return ""
}
