package board

// AbsolutePosition resolves a block's stored position to absolute canvas
// coordinates. Blocks outside a Flow store absolute coordinates already;
// Flow members store coordinates local to the Flow's origin. Containment is
// a single level deep, so resolution never recurses. A dangling parent
// reference degrades to treating the position as absolute.
func (s *Store) AbsolutePosition(b *Block) Point {
	if b == nil {
		return Point{}
	}
	if b.ParentContainer == "" {
		return b.Position
	}
	parent, ok := s.blocks[b.ParentContainer]
	if !ok {
		return b.Position
	}
	return parent.Position.Add(b.Position)
}

// LocalPosition converts an absolute point into the coordinate frame of the
// given Flow. It is the inverse of AbsolutePosition, used when reparenting a
// block into a Flow. An unknown container id returns the point unchanged.
func (s *Store) LocalPosition(abs Point, containerID string) Point {
	parent, ok := s.blocks[containerID]
	if !ok {
		return abs
	}
	return abs.Sub(parent.Position)
}

// AbsoluteBounds returns the block's bounding rectangle in absolute canvas
// coordinates, using the effective per-type dimensions.
func (s *Store) AbsoluteBounds(b *Block) Rect {
	p := s.AbsolutePosition(b)
	return Rect{X: p.X, Y: p.Y, W: b.TypeWidth(s.metrics), H: b.TypeHeight(s.metrics)}
}

// TopAnchorPoint returns the absolute position of the block's top anchor,
// the midpoint of its upper edge.
func (s *Store) TopAnchorPoint(b *Block) Point {
	p := s.AbsolutePosition(b)
	return Point{X: p.X + b.TypeWidth(s.metrics)/2, Y: p.Y}
}

// BottomAnchorPoint returns the absolute position of the block's bottom
// anchor, the midpoint of its lower edge.
func (s *Store) BottomAnchorPoint(b *Block) Point {
	p := s.AbsolutePosition(b)
	return Point{X: p.X + b.TypeWidth(s.metrics)/2, Y: p.Y + b.TypeHeight(s.metrics)}
}
