package editor

import (
	"testing"
	"time"

	"github.com/matzehuels/blockboard/pkg/board"
	"github.com/matzehuels/blockboard/pkg/observability"
)

type recordingRecompute struct {
	passes []string
	drains int
}

func (r *recordingRecompute) OnRecompute(kind, id string, _ time.Duration) {
	r.passes = append(r.passes, kind+":"+id)
}

func (r *recordingRecompute) OnQueueDrain(tasks int, _ time.Duration) { r.drains++ }

func TestScheduleCollapsesDuplicates(t *testing.T) {
	rec := &recordingRecompute{}
	observability.SetRecomputeHooks(rec)
	defer observability.Reset()

	c := newTestController()
	flow := c.CreateBlock(board.TypeFlow, board.Point{X: 100, Y: 100})
	rec.passes = nil

	c.scheduleReflow(flow)
	c.scheduleReflow(flow)
	c.scheduleReflow(flow)
	c.drain()

	if len(rec.passes) != 1 {
		t.Errorf("passes = %v, want a single collapsed reflow", rec.passes)
	}
}

func TestDrainRunsQueuedKinds(t *testing.T) {
	rec := &recordingRecompute{}
	observability.SetRecomputeHooks(rec)
	defer observability.Reset()

	c := newTestController()
	flow := c.CreateBlock(board.TypeFlow, board.Point{X: 100, Y: 100})
	col := c.CreateBlock(board.TypeCollection, board.Point{X: 400, Y: 100})
	rec.passes = nil
	rec.drains = 0

	c.scheduleReflow(flow)
	c.scheduleEndRecompute(col)
	c.drain()

	want := []string{"reflow:" + flow, "end-recompute:" + col}
	if len(rec.passes) != 2 || rec.passes[0] != want[0] || rec.passes[1] != want[1] {
		t.Errorf("passes = %v, want %v", rec.passes, want)
	}
	if rec.drains != 1 {
		t.Errorf("drains = %d, want 1", rec.drains)
	}
}

func TestDrainOnEmptyQueueIsSilent(t *testing.T) {
	rec := &recordingRecompute{}
	observability.SetRecomputeHooks(rec)
	defer observability.Reset()

	c := newTestController()
	c.drain()

	if rec.drains != 0 {
		t.Errorf("drains = %d, want 0 for an empty queue", rec.drains)
	}
}

func TestScheduleIgnoresEmptyIDs(t *testing.T) {
	c := newTestController()
	c.scheduleReflow("")
	c.scheduleEndRecompute("")
	if len(c.queue) != 0 {
		t.Errorf("queue = %v, want empty", c.queue)
	}
}
