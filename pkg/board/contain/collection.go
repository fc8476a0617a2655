package contain

import "github.com/matzehuels/blockboard/pkg/board"

// enclosed returns the bracketable ids transitively reachable from the
// Collection via bottom connections, up to but excluding its paired end
// marker. Types that cannot be bracketed are traversed through but not
// collected. Traversal walks a snapshot of each block's bottom list and is
// cycle-safe.
func (e *Engine) enclosed(col *board.Block) []string {
	endID := col.PairedWith
	visited := map[string]bool{col.ID: true, endID: true}
	var out []string
	stack := append([]string(nil), col.Bottom...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		b := e.store.Block(id)
		if b == nil {
			continue
		}
		if b.Type.CanBeBracketed() {
			out = append(out, id)
		}
		stack = append(stack, b.Bottom...)
	}
	return out
}

// RecomputeEnd re-derives a Collection's bracketed set and trails the end
// marker below it. With nothing enclosed the end sits the default gap below
// the start marker; otherwise it clears the lowest enclosed block by the
// collection margin. The end marker's X always mirrors the start marker's.
//
// The pass reads the post-mutation graph and is idempotent, so it is safe to
// run from the deferred queue any number of times. A Collection whose end
// marker has been deleted is skipped.
func (e *Engine) RecomputeEnd(collectionID string) {
	col := e.store.Block(collectionID)
	if col == nil || col.Type != board.TypeCollection {
		return
	}
	end := e.store.Block(col.PairedWith)
	if end == nil {
		return
	}
	m := e.store.Metrics()

	// The bracketed set is the connection closure plus any positional
	// members recorded during a drag that still exist.
	ids := e.enclosed(col)
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	for _, id := range col.Internal {
		if seen[id] || id == col.ID || id == col.PairedWith {
			continue
		}
		if b := e.store.Block(id); b == nil || !b.Type.CanBeBracketed() {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	col.Internal = ids

	colAbs := e.store.AbsolutePosition(col)
	endY := colAbs.Y + m.CollectionGap
	if len(ids) > 0 {
		maxBottom := colAbs.Y
		for _, id := range ids {
			b := e.store.Block(id)
			if b == nil {
				continue
			}
			if bottom := e.store.AbsolutePosition(b).Y + b.TypeHeight(m); bottom > maxBottom {
				maxBottom = bottom
			}
		}
		endY = maxBottom + m.CollectionMargin
	}

	// End markers are never Flow members, so the derived position is
	// always absolute.
	end.Position = board.Point{X: colAbs.X, Y: endY}
}

// AddMember records the block inside the Collection's bracket. The caller is
// expected to schedule a RecomputeEnd afterwards, which reconciles the set
// against the connection closure.
func (e *Engine) AddMember(collectionID, blockID string) {
	col := e.store.Block(collectionID)
	if col == nil || col.Type != board.TypeCollection || col.HasInternal(blockID) {
		return
	}
	if blockID == collectionID || blockID == col.PairedWith {
		return
	}
	b := e.store.Block(blockID)
	if b == nil || !b.Type.CanBeBracketed() {
		return
	}
	col.Internal = append(col.Internal, blockID)
}

// RemoveMember drops the block from the Collection's bracketed set.
func (e *Engine) RemoveMember(collectionID, blockID string) {
	col := e.store.Block(collectionID)
	if col == nil || col.Type != board.TypeCollection {
		return
	}
	for i, id := range col.Internal {
		if id == blockID {
			col.Internal = append(col.Internal[:i], col.Internal[i+1:]...)
			return
		}
	}
}

// InsideCollection reports whether the block's absolute position falls within
// the Collection's horizontal span (with tolerance) and strictly between the
// start marker's bottom edge and the end marker's top edge. Blocks whose type
// cannot join a bracketed set are never inside.
func (e *Engine) InsideCollection(collectionID, blockID string) bool {
	col := e.store.Block(collectionID)
	b := e.store.Block(blockID)
	if col == nil || b == nil || col.Type != board.TypeCollection {
		return false
	}
	if !b.Type.CanBeBracketed() {
		return false
	}
	if blockID == collectionID || blockID == col.PairedWith {
		return false
	}
	end := e.store.Block(col.PairedWith)
	if end == nil {
		return false
	}
	m := e.store.Metrics()
	colAbs := e.store.AbsolutePosition(col)
	endAbs := e.store.AbsolutePosition(end)
	pos := e.store.AbsolutePosition(b)

	if pos.X < colAbs.X-m.SpanTolerance || pos.X > colAbs.X+col.TypeWidth(m)+m.SpanTolerance {
		return false
	}
	return pos.Y > colAbs.Y+col.TypeHeight(m) && pos.Y < endAbs.Y
}
