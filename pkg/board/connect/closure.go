package connect

import "github.com/matzehuels/blockboard/pkg/board"

// Engine computes connectivity over a single store.
type Engine struct {
	store *board.Store
}

// New creates a connectivity engine over the given store.
func New(s *board.Store) *Engine { return &Engine{store: s} }

// BelowClosure returns every block hanging below the given one: all
// transitive bottom-connection targets, plus a Collection's paired end and
// bracketed set, plus a Flow's members. The start block itself is excluded.
// Traversal is cycle-safe and the result is deduplicated, in visit order.
func (e *Engine) BelowClosure(id string) []string {
	start := e.store.Block(id)
	if start == nil {
		return nil
	}
	visited := map[string]bool{id: true}
	var out []string
	stack := expand(start)
	for len(stack) > 0 {
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[next] {
			continue
		}
		visited[next] = true
		b := e.store.Block(next)
		if b == nil {
			continue
		}
		out = append(out, next)
		stack = append(stack, expand(b)...)
	}
	return out
}

// InBelowClosure reports whether target hangs somewhere below root.
func (e *Engine) InBelowClosure(root, target string) bool {
	for _, id := range e.BelowClosure(root) {
		if id == target {
			return true
		}
	}
	return false
}

// expand lists a block's direct below-neighbors: bottom targets, a
// Collection's end marker and bracketed set, a Flow's members.
func expand(b *board.Block) []string {
	out := append([]string(nil), b.Bottom...)
	switch b.Type {
	case board.TypeCollection:
		if b.PairedWith != "" {
			out = append(out, b.PairedWith)
		}
		out = append(out, b.Internal...)
	case board.TypeFlow:
		out = append(out, b.Children...)
	}
	return out
}

// Translate moves the block and its entire below-closure by delta. Flow
// members whose container is also moving are skipped, since their local
// coordinates follow the container for free.
func (e *Engine) Translate(id string, delta board.Point) {
	b := e.store.Block(id)
	if b == nil {
		return
	}
	moved := map[string]bool{id: true}
	closure := e.BelowClosure(id)
	for _, cid := range closure {
		moved[cid] = true
	}
	for _, cid := range append(closure, id) {
		blk := e.store.Block(cid)
		if blk == nil {
			continue
		}
		if blk.ParentContainer != "" && moved[blk.ParentContainer] {
			continue
		}
		blk.Position = blk.Position.Add(delta)
	}
}
