package connect

import (
	"math"

	"github.com/matzehuels/blockboard/pkg/board"
)

// SnapOnRelease runs the proximity auto-connect for a just-released block.
// The top-anchor search is attempted first; the bottom-anchor search only if
// it did not succeed, so at most one edge is created per release. Bracket
// end markers never snap, and candidates already hanging below the released
// block are skipped so a release never closes a bottom cycle. It returns the
// id of the new neighbor, or "".
//
// On a successful top snap the block is pulled directly beneath its new
// parent, its z-order is raised above the parent's, and its whole
// below-closure is translated by the same delta. A bottom snap mirrors this,
// placing the block directly above its new child.
func (e *Engine) SnapOnRelease(id string) string {
	b := e.store.Block(id)
	if b == nil || b.Type.IsBracketEnd() {
		return ""
	}
	if target := e.snapTop(b); target != "" {
		return target
	}
	return e.snapBottom(b)
}

// snapTop looks for a block whose bottom anchor can feed this block's top.
func (e *Engine) snapTop(b *board.Block) string {
	if !b.Type.HasTopAnchor() || b.Top != "" {
		return ""
	}
	m := e.store.Metrics()
	topAt := e.store.TopAnchorPoint(b)
	closure := e.BelowClosure(b.ID)
	below := make(map[string]bool, len(closure))
	for _, id := range closure {
		below[id] = true
	}

	target := e.nearest(b, func(cand *board.Block) (board.Point, bool) {
		if cand.Type.IsBracketEnd() && cand.PairedWith == "" {
			return board.Point{}, false
		}
		if len(cand.Bottom) > 0 && !cand.Type.MultiBottom() {
			return board.Point{}, false
		}
		// Connecting under a descendant would close a bottom cycle.
		if below[cand.ID] {
			return board.Point{}, false
		}
		anchor := e.store.BottomAnchorPoint(cand)
		if math.Abs(anchor.Y-topAt.Y) >= m.ConnectToleranceY ||
			math.Abs(anchor.X-topAt.X) >= m.ConnectToleranceX {
			return board.Point{}, false
		}
		return anchor, true
	}, topAt)
	if target == nil {
		return ""
	}

	targetAbs := e.store.AbsolutePosition(target)
	newAbs := board.Point{X: targetAbs.X, Y: targetAbs.Y + m.SnapOffset()}
	delta := newAbs.Sub(e.store.AbsolutePosition(b))
	if !e.store.Connect(target.ID, b.ID) {
		return ""
	}
	// Applying the delta in the block's stored frame works for both absolute
	// and Flow-local positions.
	b.Position = b.Position.Add(delta)
	e.translateIDs(closure, delta)
	if b.ZOrder <= target.ZOrder {
		b.ZOrder = target.ZOrder + 1
	}
	return target.ID
}

// snapBottom looks for a parentless block this block's bottom can feed.
func (e *Engine) snapBottom(b *board.Block) string {
	if limit := b.Type.MaxBottom(); limit >= 0 && len(b.Bottom) >= limit {
		return ""
	}
	m := e.store.Metrics()
	bottomAt := e.store.BottomAnchorPoint(b)

	target := e.nearest(b, func(cand *board.Block) (board.Point, bool) {
		if !cand.Type.HasTopAnchor() || cand.Top != "" {
			return board.Point{}, false
		}
		// A candidate the released block already hangs below would close a
		// bottom cycle.
		if e.InBelowClosure(cand.ID, b.ID) {
			return board.Point{}, false
		}
		anchor := e.store.TopAnchorPoint(cand)
		if math.Abs(anchor.Y-bottomAt.Y) >= m.ConnectToleranceY ||
			math.Abs(anchor.X-bottomAt.X) >= m.ConnectToleranceX {
			return board.Point{}, false
		}
		return anchor, true
	}, bottomAt)
	if target == nil {
		return ""
	}

	targetAbs := e.store.AbsolutePosition(target)
	newAbs := board.Point{X: targetAbs.X, Y: targetAbs.Y - m.SnapOffset()}
	delta := newAbs.Sub(e.store.AbsolutePosition(b))
	closure := e.BelowClosure(b.ID)
	if !e.store.Connect(b.ID, target.ID) {
		return ""
	}
	b.Position = b.Position.Add(delta)
	e.translateIDs(closure, delta)
	if b.ZOrder <= target.ZOrder {
		b.ZOrder = target.ZOrder + 1
	}
	return target.ID
}

// nearest scans all other blocks with the given qualifier and returns the
// candidate whose anchor lies closest to at, by squared distance.
func (e *Engine) nearest(b *board.Block, qualify func(*board.Block) (board.Point, bool), at board.Point) *board.Block {
	var best *board.Block
	bestDist := math.MaxFloat64
	for _, cand := range e.store.Blocks() {
		if cand.ID == b.ID {
			continue
		}
		anchor, ok := qualify(cand)
		if !ok {
			continue
		}
		dx, dy := anchor.X-at.X, anchor.Y-at.Y
		if d := dx*dx + dy*dy; d < bestDist {
			bestDist = d
			best = cand
		}
	}
	return best
}

// translateIDs shifts the given blocks by delta, skipping Flow members whose
// container is itself among the moved set.
func (e *Engine) translateIDs(ids []string, delta board.Point) {
	moved := make(map[string]bool, len(ids))
	for _, id := range ids {
		moved[id] = true
	}
	for _, id := range ids {
		b := e.store.Block(id)
		if b == nil {
			continue
		}
		if b.ParentContainer != "" && moved[b.ParentContainer] {
			continue
		}
		b.Position = b.Position.Add(delta)
	}
}
