package board

import "slices"

// Block is a node in the diagram. Position semantics depend on containment:
// absolute canvas coordinates when ParentContainer is empty, local to the
// enclosing Flow's origin otherwise.
//
// Adjacency lives on the block (Top back-reference, ordered Bottom list) and
// must stay synchronized with the store's edge list; only store mutation
// primitives may change it.
type Block struct {
	ID       string
	Type     BlockType
	Title    string
	Position Point
	ZOrder   int

	// Top is the id of the block feeding into this block's top anchor,
	// or empty. Weak reference: lookup only, never owning.
	Top string
	// Bottom is the ordered set of forward references out of the bottom
	// anchor. At most one unless Type.MultiBottom().
	Bottom []string

	// ParentContainer is the enclosing Flow's id, or empty. When set,
	// Position is Flow-local.
	ParentContainer string
	// Children is the Flow's member set (Flow only); exact inverse of the
	// members' ParentContainer fields.
	Children []string

	// PairedWith is the symmetric partner reference for bracket pairs
	// (Switch/SwitchEnd, Collection/CollectionEnd). Immutable once set.
	PairedWith string
	// Internal is the set of block ids bracketed by a Collection: the
	// transitive bottom-closure below it, excluding the paired end.
	Internal []string

	// Width and Height are derived Flow geometry; zero for other types.
	Width  float64
	Height float64
}

// HasBottom reports whether id is among the block's bottom targets.
func (b *Block) HasBottom(id string) bool { return slices.Contains(b.Bottom, id) }

// HasChild reports whether id is a member of this Flow.
func (b *Block) HasChild(id string) bool { return slices.Contains(b.Children, id) }

// HasInternal reports whether id is bracketed by this Collection.
func (b *Block) HasInternal(id string) bool { return slices.Contains(b.Internal, id) }

// TypeHeight returns the block's effective height: the derived height for a
// Flow, the nominal block height for everything else.
func (b *Block) TypeHeight(m Metrics) float64 {
	if b.Type == TypeFlow {
		if b.Height > 0 {
			return b.Height
		}
		return m.FlowMinHeight
	}
	return m.BlockHeight
}

// TypeWidth returns the block's effective width, mirroring TypeHeight.
func (b *Block) TypeWidth(m Metrics) float64 {
	if b.Type == TypeFlow {
		if b.Width > 0 {
			return b.Width
		}
		return m.FlowMinWidth
	}
	return m.BlockWidth
}

// Connection is a directed edge between two anchors. The canonical edge runs
// from a bottom anchor into a top anchor; the anchor fields are kept explicit
// so the wire list renders without consulting block types.
type Connection struct {
	From       string
	FromAnchor Anchor
	To         string
	ToAnchor   Anchor
}

// Touches reports whether the edge has id at either endpoint.
func (c Connection) Touches(id string) bool { return c.From == id || c.To == id }
