package editor

import (
	"github.com/matzehuels/blockboard/pkg/board"
	"github.com/matzehuels/blockboard/pkg/observability"
)

// ClickAnchor handles a click on a block's anchor.
//
// Idle + bottom anchor of a Switch, Collection or Flow: arms an explicit
// connection with that block as source. Connecting + the armed source's own
// anchor: cancels. Connecting + a legal target's top anchor: commits the
// edge. Anything else is ignored; an illegal target leaves the pending state
// armed so the user can try again.
func (c *Controller) ClickAnchor(id string, anchor board.Anchor) {
	if c.store.Block(id) == nil || c.state == StateDragging {
		return
	}
	switch c.state {
	case StateIdle:
		if anchor == board.AnchorBottom && c.connect.CanStartLink(id) {
			c.state = StateConnecting
			c.linkSource = id
			c.log.Debug("armed connection", "source", id)
		}
	case StateConnecting:
		if id == c.linkSource {
			c.state = StateIdle
			c.linkSource = ""
			c.log.Debug("cancelled connection", "source", id)
			return
		}
		if anchor == board.AnchorTop && c.connect.CanLink(c.linkSource, id) {
			c.completeLink(id)
		}
	}
}

// completeLink commits the armed explicit connection onto the target and
// returns the controller to idle.
func (c *Controller) completeLink(targetID string) {
	src := c.linkSource
	c.state = StateIdle
	c.linkSource = ""
	if !c.connect.Link(src, targetID) {
		return
	}
	observability.Editor().OnConnect(src, targetID, observability.CauseExplicit)
	c.log.Debug("linked", "source", src, "target", targetID)
	c.scheduleAllEnds()
	c.drain()
}
