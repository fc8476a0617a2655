package board

import (
	"slices"

	"github.com/google/uuid"
)

// Store is the authoritative owner of all blocks and connections on one
// canvas. It exposes atomic mutation primitives; the containment and
// connectivity engines compose them into higher-level operations.
//
// Blocks are indexed by id and additionally kept in a stable insertion-order
// slice so global iteration is deterministic. The zero value is not usable;
// use NewStore.
type Store struct {
	metrics Metrics
	blocks  map[string]*Block
	order   []string
	edges   []Connection
}

// NewStore creates an empty store measuring against the given metrics.
func NewStore(m Metrics) *Store {
	return &Store{
		metrics: m,
		blocks:  make(map[string]*Block),
	}
}

// Metrics returns the geometry constants the store was built with.
func (s *Store) Metrics() Metrics { return s.metrics }

// Create adds a block and returns its id. An empty ID is replaced with a
// fresh UUID; a duplicate id is a no-op returning the existing id unchanged.
func (s *Store) Create(b Block) string {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if _, exists := s.blocks[b.ID]; exists {
		return b.ID
	}
	blk := &b
	s.blocks[blk.ID] = blk
	s.order = append(s.order, blk.ID)
	return blk.ID
}

// Block returns the live block record for id, or nil if unknown. The editor
// is single-threaded; callers mutate records only through store primitives.
func (s *Store) Block(id string) *Block { return s.blocks[id] }

// Len returns the number of blocks.
func (s *Store) Len() int { return len(s.order) }

// Blocks returns all blocks in insertion order. The slice is freshly
// allocated; the pointed-to records are live.
func (s *Store) Blocks() []*Block {
	out := make([]*Block, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.blocks[id])
	}
	return out
}

// IDs returns a snapshot of all block ids in insertion order. Engines
// traverse snapshots like this one so that mutation during a pass never
// aliases the collection being iterated.
func (s *Store) IDs() []string { return slices.Clone(s.order) }

// Connections returns a snapshot of the edge list.
func (s *Store) Connections() []Connection { return slices.Clone(s.edges) }

// Patch applies fn to the block with the given id. Unknown ids are no-ops.
func (s *Store) Patch(id string, fn func(*Block)) {
	if b, ok := s.blocks[id]; ok {
		fn(b)
	}
}

// Connect creates the bottom→top edge from→to and synchronizes the
// block-local adjacency fields. It reports whether the edge was created.
// The attempt is silently rejected when either endpoint is unknown, the
// endpoints coincide, the edge already exists, the target's top anchor is
// occupied, the target has no top anchor, the source is a chain type that
// already holds a bottom edge, or the edge would close a bottom cycle.
func (s *Store) Connect(from, to string) bool {
	src, ok := s.blocks[from]
	if !ok {
		return false
	}
	dst, ok := s.blocks[to]
	if !ok || from == to {
		return false
	}
	if !dst.Type.HasTopAnchor() || dst.Top != "" {
		return false
	}
	if src.HasBottom(to) {
		return false
	}
	if limit := src.Type.MaxBottom(); limit >= 0 && len(src.Bottom) >= limit {
		return false
	}
	if s.reachesViaBottom(to, from) {
		return false
	}
	src.Bottom = append(src.Bottom, to)
	dst.Top = from
	s.edges = append(s.edges, Connection{
		From: from, FromAnchor: AnchorBottom,
		To: to, ToAnchor: AnchorTop,
	})
	return true
}

// reachesViaBottom reports whether walking bottom edges from start arrives at
// target. Connect consults it so the bottom direction stays acyclic.
func (s *Store) reachesViaBottom(start, target string) bool {
	visited := make(map[string]bool)
	stack := []string{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == target {
			return true
		}
		if visited[id] {
			continue
		}
		visited[id] = true
		if b, ok := s.blocks[id]; ok {
			stack = append(stack, b.Bottom...)
		}
	}
	return false
}

// Disconnect removes the edge from→to if present, clearing both block-local
// references. Unknown ids or a missing edge are no-ops.
func (s *Store) Disconnect(from, to string) {
	s.edges = slices.DeleteFunc(s.edges, func(c Connection) bool {
		return c.From == from && c.To == to
	})
	if src, ok := s.blocks[from]; ok {
		src.Bottom = slices.DeleteFunc(src.Bottom, func(id string) bool { return id == to })
	}
	if dst, ok := s.blocks[to]; ok && dst.Top == from {
		dst.Top = ""
	}
}

// DisconnectAt removes the edge at the given index in the edge list.
// Out-of-range indices are no-ops.
func (s *Store) DisconnectAt(i int) {
	if i < 0 || i >= len(s.edges) {
		return
	}
	c := s.edges[i]
	s.Disconnect(c.From, c.To)
}

// Delete removes the block and scrubs every reference to it: edges at either
// endpoint, neighbors' top/bottom fields, Flow membership and Collection
// internal sets. Type-specific cascades (paired bracket markers, Flow child
// detachment) are layered on top by the containment engine; Delete itself is
// the type-neutral base that leaves no dangling reference behind.
func (s *Store) Delete(id string) {
	if _, ok := s.blocks[id]; !ok {
		return
	}
	s.edges = slices.DeleteFunc(s.edges, func(c Connection) bool { return c.Touches(id) })
	for _, other := range s.blocks {
		if other.ID == id {
			continue
		}
		if other.Top == id {
			other.Top = ""
		}
		other.Bottom = slices.DeleteFunc(other.Bottom, func(t string) bool { return t == id })
		other.Children = slices.DeleteFunc(other.Children, func(t string) bool { return t == id })
		other.Internal = slices.DeleteFunc(other.Internal, func(t string) bool { return t == id })
		if other.ParentContainer == id {
			other.ParentContainer = ""
		}
		if other.PairedWith == id {
			other.PairedWith = ""
		}
	}
	delete(s.blocks, id)
	s.order = slices.DeleteFunc(s.order, func(t string) bool { return t == id })
}
