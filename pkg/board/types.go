package board

// =============================================================================
// Geometry Primitives
// =============================================================================

// Point is a position on the canvas in pixels. Whether it is absolute or
// local to an enclosing Flow depends on the owning block's containment state.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }

// Sub returns p translated by -d.
func (p Point) Sub(d Point) Point { return Point{X: p.X - d.X, Y: p.Y - d.Y} }

// Rect is an axis-aligned rectangle identified by its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies within the rectangle (inclusive edges).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// =============================================================================
// Anchors
// =============================================================================

// Anchor identifies a connection point on a block.
type Anchor string

// The two anchors every connectable block exposes.
const (
	AnchorTop    Anchor = "top"
	AnchorBottom Anchor = "bottom"
)

// =============================================================================
// Block Types
// =============================================================================

// BlockType is the closed set of node variants. Capability predicates on the
// type, not string comparisons at call sites, decide what a block may do:
// whether it accepts a top connection, how many bottom edges it may fan out,
// whether it is one half of a bracket pair, and whether it can contain or be
// contained by other blocks.
type BlockType int

const (
	// TypeAction is a plain step in a chain.
	TypeAction BlockType = iota
	// TypeTable is a data node; connection-wise it behaves like an Action.
	TypeTable
	// TypeSwitch opens a branch bracket and fans out multiple bottom edges.
	TypeSwitch
	// TypeStart is a chain root; it has no top anchor.
	TypeStart
	// TypeEnd terminates a chain.
	TypeEnd
	// TypeSwitchEnd closes the bracket opened by its paired Switch.
	TypeSwitchEnd
	// TypeFlow is the free-form container that vertically stacks its members.
	TypeFlow
	// TypeCollection opens a paired bracket whose end marker auto-trails the
	// run of blocks it encloses.
	TypeCollection
	// TypeCollectionEnd closes the bracket opened by its paired Collection.
	TypeCollectionEnd
)

var typeNames = map[BlockType]string{
	TypeAction:        "Action",
	TypeTable:         "Table",
	TypeSwitch:        "Switch",
	TypeStart:         "Start",
	TypeEnd:           "End",
	TypeSwitchEnd:     "SwitchEnd",
	TypeFlow:          "Flow",
	TypeCollection:    "Collection",
	TypeCollectionEnd: "CollectionEnd",
}

// String returns the canonical variant name.
func (t BlockType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "Unknown"
}

// HasTopAnchor reports whether blocks of this type accept an incoming top
// connection. Only chain roots do not.
func (t BlockType) HasTopAnchor() bool { return t != TypeStart }

// MultiBottom reports whether blocks of this type may hold more than one
// outgoing bottom edge (branch semantics). Everything else is a chain link
// with at most one.
func (t BlockType) MultiBottom() bool { return t == TypeSwitch || t == TypeCollection }

// MaxBottom returns the bottom-edge arity limit for the type; <0 means
// unbounded. This is the single place the chain/branch distinction lives.
func (t BlockType) MaxBottom() int {
	if t.MultiBottom() {
		return -1
	}
	return 1
}

// IsBracketStart reports whether the type opens a paired bracket.
func (t BlockType) IsBracketStart() bool { return t == TypeSwitch || t == TypeCollection }

// IsBracketEnd reports whether the type closes a paired bracket.
func (t BlockType) IsBracketEnd() bool { return t == TypeSwitchEnd || t == TypeCollectionEnd }

// BracketEnd returns the closing type for a bracket-start type, or the type
// itself if it does not open a bracket.
func (t BlockType) BracketEnd() BlockType {
	switch t {
	case TypeSwitch:
		return TypeSwitchEnd
	case TypeCollection:
		return TypeCollectionEnd
	default:
		return t
	}
}

// IsContainer reports whether the type is a Flow container.
func (t BlockType) IsContainer() bool { return t == TypeFlow }

// CanBeContained reports whether blocks of this type may become Flow
// members. Containers cannot (nesting depth is one), and bracket end
// markers cannot: their position is derived, not placed.
func (t BlockType) CanBeContained() bool {
	return t != TypeFlow && !t.IsBracketEnd()
}

// CanBeBracketed reports whether blocks of this type may be recorded in a
// Collection's bracketed set. Brackets do not nest Flows or other
// Collections, and end markers have derived positions, so none of those
// join a bracketed set.
func (t BlockType) CanBeBracketed() bool {
	return t.CanBeContained() && t != TypeCollection
}

// ExplicitConnect reports whether the type exposes the click-to-link
// affordance on its bottom anchor.
func (t BlockType) ExplicitConnect() bool {
	return t == TypeSwitch || t == TypeCollection || t == TypeFlow
}

// =============================================================================
// Metrics - Geometry Constants
// =============================================================================

// Metrics holds the layout constants the engines measure against. All values
// are canvas pixels. Zero-value fields are not usable; obtain a Metrics from
// DefaultMetrics (or the config package) and treat it as immutable.
type Metrics struct {
	BlockHeight  float64 // Nominal height of a non-Flow block
	BlockWidth   float64 // Nominal width of a non-Flow block
	ConnectorGap float64 // Vertical gap left between snapped blocks

	FlowPadding   float64 // Inset from a Flow's edge to its first member
	FlowSpacing   float64 // Vertical gap between stacked Flow members
	FlowMinWidth  float64 // Fixed Flow width (no horizontal packing)
	FlowMinHeight float64 // Height of an empty Flow

	CollectionGap    float64 // Collection→End distance with nothing enclosed
	CollectionMargin float64 // Clearance below the lowest enclosed block

	ConnectToleranceY float64 // Max vertical anchor distance to auto-connect
	ConnectToleranceX float64 // Max horizontal center offset to auto-connect
	BreakToleranceY   float64 // Vertical drag separation that breaks an edge
	BreakToleranceX   float64 // Horizontal drag separation that breaks an edge

	SpanTolerance float64 // Horizontal slack for the Collection inside-test
}

// DefaultMetrics returns the stock geometry. The snap offset between a target
// block and a block connected beneath it works out to
// BlockHeight+ConnectorGap (83px with these values).
func DefaultMetrics() Metrics {
	return Metrics{
		BlockHeight:       75,
		BlockWidth:        150,
		ConnectorGap:      8,
		FlowPadding:       20,
		FlowSpacing:       8,
		FlowMinWidth:      190,
		FlowMinHeight:     100,
		CollectionGap:     150,
		CollectionMargin:  8,
		ConnectToleranceY: 30,
		ConnectToleranceX: 40,
		BreakToleranceY:   15,
		BreakToleranceX:   30,
		SpanTolerance:     20,
	}
}

// SnapOffset is the vertical distance from a target block's origin to the
// origin of a block snapped directly beneath it.
func (m Metrics) SnapOffset() float64 { return m.BlockHeight + m.ConnectorGap }
