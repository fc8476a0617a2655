package contain

import "github.com/matzehuels/blockboard/pkg/board"

// CascadeDelete removes a block together with whatever its type drags along:
//
//   - Plain blocks (Action, Table, Start, End) lose only their own edges;
//     the store clears the dangling references on former neighbors.
//   - A bracket marker (Switch, Collection, or either end) takes its paired
//     partner with it, edges included. Enclosed blocks survive; the one that
//     was directly attached becomes a chain root with an empty top.
//   - A Flow does not delete its members: each is detached back to absolute
//     coordinates first, then the container itself goes.
//
// A marker whose partner is already gone falls back to single-block removal.
// Unknown ids are no-ops.
func (e *Engine) CascadeDelete(id string) {
	b := e.store.Block(id)
	if b == nil {
		return
	}
	switch {
	case b.Type == board.TypeFlow:
		for _, child := range append([]string(nil), b.Children...) {
			e.Detach(child)
		}
		e.store.Delete(id)
	case b.Type.IsBracketStart() || b.Type.IsBracketEnd():
		partner := b.PairedWith
		e.store.Delete(id)
		if partner != "" {
			e.store.Delete(partner)
		}
	default:
		e.store.Delete(id)
	}
}
