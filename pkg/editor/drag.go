package editor

import (
	"github.com/matzehuels/blockboard/pkg/board"
	"github.com/matzehuels/blockboard/pkg/observability"
)

// BeginDrag starts dragging the block under the pointer. If an explicit
// connection is armed and the pressed block is a legal target, the press
// completes that connection instead and no drag starts. An armed connection
// whose press lands on anything else is cancelled before the drag begins.
//
// The dragged block is promoted to the transient top of the z-order for the
// duration of the drag.
func (c *Controller) BeginDrag(id string, pointer board.Point) {
	b := c.store.Block(id)
	if b == nil || c.state == StateDragging {
		return
	}
	if c.state == StateConnecting {
		if c.connect.CanLink(c.linkSource, id) {
			c.completeLink(id)
			return
		}
		c.state = StateIdle
		c.linkSource = ""
	}

	c.state = StateDragging
	c.dragID = id
	c.dragOffset = pointer.Sub(c.store.AbsolutePosition(b))
	c.hovered = ""
	b.ZOrder = dragZ
	observability.Editor().OnDragStart(id)
}

// UpdateDrag moves the dragged block to follow the pointer and re-evaluates
// the per-tick heuristics: which Flow is hovered (advisory, for
// highlighting), whether the drag distance broke the block's top connection,
// and whether the block crossed into or out of a Collection's bracket span.
func (c *Controller) UpdateDrag(pointer board.Point) {
	if c.state != StateDragging {
		return
	}
	b := c.store.Block(c.dragID)
	if b == nil {
		c.state = StateIdle
		c.dragID = ""
		return
	}

	abs := pointer.Sub(c.dragOffset)
	if b.ParentContainer != "" {
		b.Position = c.store.LocalPosition(abs, b.ParentContainer)
	} else {
		b.Position = abs
	}

	c.hovered = c.contain.FlowUnder(c.dragID)

	if c.connect.BreakOnDrag(c.dragID) {
		observability.Editor().OnDisconnect("", c.dragID, observability.CauseBreak)
		c.log.Debug("drag broke connection", "id", c.dragID)
		c.scheduleAllEnds()
	}

	c.trackBracketSpans(b)
	c.drain()
}

// trackBracketSpans keeps Collection membership roughly in step with the
// dragged block's position. The deferred end recompute reconciles the set
// against the connection closure, so positional membership here is transient
// feedback, not the source of truth.
func (c *Controller) trackBracketSpans(b *board.Block) {
	for _, id := range c.store.IDs() {
		col := c.store.Block(id)
		if col == nil || col.Type != board.TypeCollection {
			continue
		}
		inside := c.contain.InsideCollection(id, b.ID)
		switch {
		case inside && !col.HasInternal(b.ID):
			c.contain.AddMember(id, b.ID)
			c.scheduleEndRecompute(id)
		case !inside && col.HasInternal(b.ID):
			c.contain.RemoveMember(id, b.ID)
			c.scheduleEndRecompute(id)
		}
	}
}

// EndDrag releases the dragged block. If a Flow is hovered the block
// reparents into it; a block dragged out of its Flow detaches; otherwise the
// proximity auto-connect runs. The block's z-order is folded back into the
// normal counter, every affected container is rescheduled, and the queue is
// drained before returning.
func (c *Controller) EndDrag() {
	if c.state != StateDragging {
		return
	}
	id := c.dragID
	c.state = StateIdle
	c.dragID = ""
	hovered := c.hovered
	c.hovered = ""

	b := c.store.Block(id)
	if b == nil {
		return
	}

	// Demote before any snap so a successful connect can still raise the
	// block relative to its new neighbor.
	b.ZOrder = c.zNext()

	connected := false
	switch {
	case hovered != "" && hovered != b.ParentContainer:
		former := b.ParentContainer
		c.contain.Attach(id, hovered)
		c.scheduleReflow(former)
		c.scheduleReflow(hovered)
		c.log.Debug("reparented into flow", "id", id, "flow", hovered)
	case hovered != "":
		// Released over its own container: let the members resettle.
		c.scheduleReflow(hovered)
	case b.ParentContainer != "":
		former := b.ParentContainer
		c.contain.Detach(id)
		c.scheduleReflow(former)
		c.log.Debug("detached from flow", "id", id, "flow", former)
	default:
		if target := c.connect.SnapOnRelease(id); target != "" {
			connected = true
			observability.Editor().OnConnect(target, id, observability.CauseSnap)
			c.log.Debug("snapped", "id", id, "neighbor", target)
		}
	}

	c.scheduleAllEnds()
	observability.Editor().OnDragEnd(id, connected)
	c.drain()
}
