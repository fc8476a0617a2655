// Package observability provides hooks for instrumenting the editor.
//
// The package uses the hooks pattern: interfaces for event categories, no-op
// default implementations, and a global registry populated at startup. This
// keeps the editor core free of hard dependencies on any observability
// backend while letting a front-end or test harness observe every graph
// mutation and recompute pass.
//
// Register hooks at application startup:
//
//	observability.SetEditorHooks(&myEditorHooks{})
//
// The editor calls hooks as it works:
//
//	observability.Editor().OnBlockCreate(id, kind)
package observability

import (
	"sync"
	"time"
)

// EditorHooks receives events from editor interactions and graph mutations.
type EditorHooks interface {
	// Block lifecycle
	OnBlockCreate(id, kind string)
	OnBlockDelete(id, kind string, cascaded int)

	// Connection events
	OnConnect(fromID, toID, cause string)
	OnDisconnect(fromID, toID, cause string)

	// Drag lifecycle
	OnDragStart(id string)
	OnDragEnd(id string, connected bool)
}

// RecomputeHooks receives events from deferred recompute passes.
type RecomputeHooks interface {
	// OnRecompute records one drained recompute task.
	OnRecompute(kind, id string, duration time.Duration)

	// OnQueueDrain records a full drain of the deferred queue.
	OnQueueDrain(tasks int, duration time.Duration)
}

// Causes reported by connection events.
const (
	CauseSnap     = "snap"     // proximity auto-connect on release
	CauseBreak    = "break"    // threshold auto-disconnect during drag
	CauseExplicit = "explicit" // click-to-link
	CauseBracket  = "bracket"  // pair-creation bracketing edge
	CauseManual   = "manual"   // wire removed by index
)

// NoopEditorHooks is a no-op implementation of EditorHooks.
type NoopEditorHooks struct{}

func (NoopEditorHooks) OnBlockCreate(string, string)        {}
func (NoopEditorHooks) OnBlockDelete(string, string, int)   {}
func (NoopEditorHooks) OnConnect(string, string, string)    {}
func (NoopEditorHooks) OnDisconnect(string, string, string) {}
func (NoopEditorHooks) OnDragStart(string)                  {}
func (NoopEditorHooks) OnDragEnd(string, bool)              {}

// NoopRecomputeHooks is a no-op implementation of RecomputeHooks.
type NoopRecomputeHooks struct{}

func (NoopRecomputeHooks) OnRecompute(string, string, time.Duration) {}
func (NoopRecomputeHooks) OnQueueDrain(int, time.Duration)           {}

var (
	editorHooks    EditorHooks    = NoopEditorHooks{}
	recomputeHooks RecomputeHooks = NoopRecomputeHooks{}
	hooksMu        sync.RWMutex
)

// SetEditorHooks registers custom editor hooks.
// Call once at application startup before any editing begins.
func SetEditorHooks(h EditorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		editorHooks = h
	}
}

// SetRecomputeHooks registers custom recompute hooks.
// Call once at application startup before any editing begins.
func SetRecomputeHooks(h RecomputeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		recomputeHooks = h
	}
}

// Editor returns the registered editor hooks.
func Editor() EditorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return editorHooks
}

// Recompute returns the registered recompute hooks.
func Recompute() RecomputeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return recomputeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	editorHooks = NoopEditorHooks{}
	recomputeHooks = NoopRecomputeHooks{}
}
