package connect

import "github.com/matzehuels/blockboard/pkg/board"

// CanStartLink reports whether the block exposes the explicit bottom-anchor
// connect affordance. Only Switch, Collection and Flow blocks do.
func (e *Engine) CanStartLink(id string) bool {
	b := e.store.Block(id)
	return b != nil && b.Type.ExplicitConnect()
}

// CanLink reports whether an armed explicit connection from src can complete
// on dst's top anchor: dst must exist, accept top connections, have its top
// anchor free, and not already sit above src, which would close a bottom
// cycle.
func (e *Engine) CanLink(srcID, dstID string) bool {
	src := e.store.Block(srcID)
	dst := e.store.Block(dstID)
	if src == nil || dst == nil || srcID == dstID {
		return false
	}
	if !src.Type.ExplicitConnect() {
		return false
	}
	if limit := src.Type.MaxBottom(); limit >= 0 && len(src.Bottom) >= limit {
		return false
	}
	if !dst.Type.HasTopAnchor() || dst.Top != "" {
		return false
	}
	return !e.InBelowClosure(dstID, srcID)
}

// Link completes an explicit connection from src's bottom anchor to dst's
// top anchor. The target's z-order is raised above the source's, and if the
// source is a Collection the target joins its bracketed set. It reports
// whether the edge was created; an illegal attempt leaves state unchanged.
func (e *Engine) Link(srcID, dstID string) bool {
	if !e.CanLink(srcID, dstID) {
		return false
	}
	if !e.store.Connect(srcID, dstID) {
		return false
	}
	src := e.store.Block(srcID)
	dst := e.store.Block(dstID)
	if dst.ZOrder <= src.ZOrder {
		dst.ZOrder = src.ZOrder + 1
	}
	if src.Type == board.TypeCollection && dst.Type.CanBeBracketed() && !src.HasInternal(dstID) {
		src.Internal = append(src.Internal, dstID)
	}
	return true
}
