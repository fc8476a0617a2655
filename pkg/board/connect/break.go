package connect

import (
	"math"

	"github.com/matzehuels/blockboard/pkg/board"
)

// BreakOnDrag evaluates the auto-disconnect heuristic for a block that is
// being moved. If the block has a parent on its top anchor and the drag has
// pulled the two anchors apart beyond the break tolerances, the edge is
// removed immediately. It reports whether an edge was broken.
//
// Protected edges are never broken by drag distance, only by explicit
// deletion: edges out of a Switch or Collection parent, and the edge between
// the two halves of a bracket pair.
func (e *Engine) BreakOnDrag(id string) bool {
	b := e.store.Block(id)
	if b == nil || b.Top == "" {
		return false
	}
	parent := e.store.Block(b.Top)
	if parent == nil {
		return false
	}
	if parent.Type == board.TypeSwitch || parent.Type == board.TypeCollection {
		return false
	}
	if b.PairedWith != "" && b.PairedWith == parent.ID {
		return false
	}

	m := e.store.Metrics()
	parentAnchor := e.store.BottomAnchorPoint(parent)
	topAt := e.store.TopAnchorPoint(b)
	if math.Abs(parentAnchor.Y-topAt.Y) <= m.BreakToleranceY &&
		math.Abs(parentAnchor.X-topAt.X) <= m.BreakToleranceX {
		return false
	}

	e.store.Disconnect(parent.ID, id)
	return true
}
