package editor

import (
	"time"

	"github.com/matzehuels/blockboard/pkg/board"
	"github.com/matzehuels/blockboard/pkg/observability"
)

// taskKind identifies a deferred recompute pass.
type taskKind int

const (
	// taskReflow re-stacks a Flow's members and re-derives its size.
	taskReflow taskKind = iota
	// taskEndRecompute re-derives a Collection's bracketed set and trails
	// its end marker.
	taskEndRecompute
)

func (k taskKind) String() string {
	switch k {
	case taskReflow:
		return "reflow"
	case taskEndRecompute:
		return "end-recompute"
	default:
		return "unknown"
	}
}

// task is one enqueued recompute. Tasks referencing since-deleted blocks are
// skipped by the engines, not errored.
type task struct {
	kind taskKind
	id   string
}

// scheduleReflow enqueues a Flow re-stack. Duplicate tasks are collapsed;
// the pass is idempotent so running once is enough.
func (c *Controller) scheduleReflow(flowID string) {
	if flowID == "" {
		return
	}
	c.schedule(task{kind: taskReflow, id: flowID})
}

// scheduleEndRecompute enqueues a Collection end reposition.
func (c *Controller) scheduleEndRecompute(collectionID string) {
	if collectionID == "" {
		return
	}
	c.schedule(task{kind: taskEndRecompute, id: collectionID})
}

// scheduleAllEnds enqueues an end reposition for every Collection on the
// board. Used after mutations whose reach over bracket closures is not worth
// computing precisely; the passes are cheap and idempotent.
func (c *Controller) scheduleAllEnds() {
	for _, b := range c.store.Blocks() {
		if b.Type == board.TypeCollection {
			c.scheduleEndRecompute(b.ID)
		}
	}
}

func (c *Controller) schedule(t task) {
	for _, q := range c.queue {
		if q == t {
			return
		}
	}
	c.queue = append(c.queue, t)
}

// drain runs every queued recompute against the committed graph. Tasks
// enqueued while draining run in the same drain. Called at the tail of every
// mutating command, so callers always observe settled derived layout.
func (c *Controller) drain() {
	if len(c.queue) == 0 {
		return
	}
	start := time.Now()
	ran := 0
	for len(c.queue) > 0 {
		t := c.queue[0]
		c.queue = c.queue[1:]
		ran++
		tickStart := time.Now()
		switch t.kind {
		case taskReflow:
			c.contain.Reflow(t.id)
		case taskEndRecompute:
			c.contain.RecomputeEnd(t.id)
		}
		observability.Recompute().OnRecompute(t.kind.String(), t.id, time.Since(tickStart))
	}
	observability.Recompute().OnQueueDrain(ran, time.Since(start))
	c.log.Debug("drained recompute queue", "tasks", ran)
}
