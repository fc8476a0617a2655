package editor

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blockboard/pkg/board"
	"github.com/matzehuels/blockboard/pkg/board/connect"
	"github.com/matzehuels/blockboard/pkg/board/contain"
	"github.com/matzehuels/blockboard/pkg/observability"
)

// State enumerates the interaction controller's states.
type State int

const (
	// StateIdle means no interaction is in progress.
	StateIdle State = iota
	// StateDragging means a block follows the pointer.
	StateDragging
	// StateConnecting means an explicit connection is armed and awaits a
	// target anchor.
	StateConnecting
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateConnecting:
		return "connecting"
	default:
		return "unknown"
	}
}

// dragZ is the transient z-order the actively dragged block is promoted to.
// It sits far above the normal counter so the block paints over everything
// until release demotes it back into the counter sequence.
const dragZ = 1 << 20

// Controller owns one canvas: the graph store, the containment and
// connectivity engines, the interaction state machine, z-order assignment
// and the deferred recompute queue. It is not safe for concurrent use.
type Controller struct {
	store   *board.Store
	contain *contain.Engine
	connect *connect.Engine
	log     *log.Logger

	state      State
	dragID     string
	dragOffset board.Point
	hovered    string
	linkSource string

	nextZ  int
	titles map[board.BlockType]int
	queue  []task
}

// New creates a controller over a fresh store with the given metrics.
// A nil logger discards output.
func New(m board.Metrics, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := board.NewStore(m)
	return &Controller{
		store:   s,
		contain: contain.New(s),
		connect: connect.New(s),
		log:     logger,
		titles:  make(map[board.BlockType]int),
	}
}

// Store exposes the underlying store for read access (rendering, hit
// testing). Front-ends must not mutate through it.
func (c *Controller) Store() *board.Store { return c.store }

// Blocks returns all blocks in insertion order.
func (c *Controller) Blocks() []*board.Block { return c.store.Blocks() }

// Connections returns a snapshot of the wire list.
func (c *Controller) Connections() []board.Connection { return c.store.Connections() }

// State returns the current interaction state.
func (c *Controller) State() State { return c.state }

// DragID returns the id of the block being dragged, or "".
func (c *Controller) DragID() string {
	if c.state != StateDragging {
		return ""
	}
	return c.dragID
}

// HoveredContainer returns the Flow currently under the dragged block, or
// "". It is advisory only, exposed for highlighting; the reparent happens on
// release.
func (c *Controller) HoveredContainer() string {
	if c.state != StateDragging {
		return ""
	}
	return c.hovered
}

// Connecting returns the armed explicit-connect source, if any.
func (c *Controller) Connecting() (sourceID string, armed bool) {
	if c.state != StateConnecting {
		return "", false
	}
	return c.linkSource, true
}

// zNext advances the normal z-order counter.
func (c *Controller) zNext() int {
	c.nextZ++
	return c.nextZ
}

// title mints a display label for a new block of the given type.
func (c *Controller) title(t board.BlockType) string {
	c.titles[t]++
	return fmt.Sprintf("%s %d", t, c.titles[t])
}

// CreateBlock places a new block of the given type at an absolute canvas
// position and returns its id. Bracket types (Switch, Collection) are
// created as an atomic pair: the end marker appears the default gap below
// the start marker, on the same vertical axis, already connected by the
// bracketing edge. Creating an end-marker type directly is rejected with an
// empty id; ends only exist through their pair.
func (c *Controller) CreateBlock(t board.BlockType, at board.Point) string {
	if t.IsBracketEnd() {
		return ""
	}
	if t.IsBracketStart() {
		return c.createPair(t, at)
	}
	id := c.store.Create(board.Block{
		Type:     t,
		Title:    c.title(t),
		Position: at,
		ZOrder:   c.zNext(),
	})
	observability.Editor().OnBlockCreate(id, t.String())
	c.log.Debug("created block", "id", id, "type", t.String())
	if t == board.TypeFlow {
		c.scheduleReflow(id)
	}
	c.drain()
	return id
}

// createPair creates a bracket start marker and its end marker together.
// The pairing reference is symmetric and immutable for the pair's lifetime.
func (c *Controller) createPair(t board.BlockType, at board.Point) string {
	m := c.store.Metrics()
	c.titles[t]++
	n := c.titles[t]

	startID := c.store.Create(board.Block{
		Type:     t,
		Title:    fmt.Sprintf("%s %d", t, n),
		Position: at,
		ZOrder:   c.zNext(),
	})
	endID := c.store.Create(board.Block{
		Type:     t.BracketEnd(),
		Title:    fmt.Sprintf("%s %d", t.BracketEnd(), n),
		Position: board.Point{X: at.X, Y: at.Y + m.CollectionGap},
		ZOrder:   c.zNext(),
	})
	c.store.Patch(startID, func(b *board.Block) { b.PairedWith = endID })
	c.store.Patch(endID, func(b *board.Block) { b.PairedWith = startID })
	c.store.Connect(startID, endID)

	observability.Editor().OnBlockCreate(startID, t.String())
	observability.Editor().OnBlockCreate(endID, t.BracketEnd().String())
	observability.Editor().OnConnect(startID, endID, observability.CauseBracket)
	c.log.Debug("created pair", "start", startID, "end", endID, "type", t.String())

	if t == board.TypeCollection {
		c.scheduleEndRecompute(startID)
	}
	c.drain()
	return startID
}

// DeleteBlock removes a block with its type's cascade: bracket markers take
// their partner along, Flows detach their members first, plain blocks just
// lose their edges. Any interaction involving the deleted block is reset.
func (c *Controller) DeleteBlock(id string) {
	b := c.store.Block(id)
	if b == nil {
		return
	}
	kind := b.Type.String()
	partner := b.PairedWith
	formerFlow := b.ParentContainer

	if c.state == StateDragging && (c.dragID == id || c.dragID == partner) {
		c.state = StateIdle
		c.dragID = ""
		c.hovered = ""
	}
	if c.state == StateConnecting && (c.linkSource == id || c.linkSource == partner) {
		c.state = StateIdle
		c.linkSource = ""
	}

	before := c.store.Len()
	c.contain.CascadeDelete(id)
	removed := before - c.store.Len()

	c.scheduleReflow(formerFlow)
	c.scheduleAllEnds()
	observability.Editor().OnBlockDelete(id, kind, removed)
	c.log.Debug("deleted block", "id", id, "type", kind, "removed", removed)
	c.drain()
}

// RemoveConnection deletes the wire at the given index in the connection
// list. If the wire left a Collection's bottom anchor, the target also
// leaves the bracketed set. Out-of-range indices are no-ops.
func (c *Controller) RemoveConnection(i int) {
	edges := c.store.Connections()
	if i < 0 || i >= len(edges) {
		return
	}
	e := edges[i]
	if from := c.store.Block(e.From); from != nil && from.Type == board.TypeCollection {
		c.contain.RemoveMember(e.From, e.To)
	}
	c.store.DisconnectAt(i)
	c.scheduleAllEnds()
	observability.Editor().OnDisconnect(e.From, e.To, observability.CauseManual)
	c.drain()
}
