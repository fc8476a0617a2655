// Package pkg provides the core libraries for the blockboard diagram editor.
//
// # Overview
//
// Blockboard is an interactive box-and-wire editor: typed blocks are placed
// on a canvas, wired into vertical chains, and grouped by Flow containers and
// Collection brackets. The pkg directory is organized into four areas:
//
//  1. [board] - The graph store: blocks, connections, coordinate frames
//  2. [board/contain] - Containment engines (Flow stacking, Collection brackets)
//  3. [board/connect] - Connectivity engines (snap, break, explicit links, closures)
//  4. [editor] - The interaction controller (state machine, z-order, recompute queue)
//
// # Architecture
//
// The typical flow of a user interaction:
//
//	Front-end event (press, move, release, anchor click)
//	         ↓
//	    [editor] package (state machine, command methods)
//	         ↓
//	    [board/connect] + [board/contain] (graph and layout mutations)
//	         ↓
//	    [board] package (dual-representation store)
//	         ↓
//	    deferred recompute queue (reflow, end trailing), drained per command
//
// # Quick Start
//
// Create a controller and drive it directly:
//
//	import (
//	    "github.com/matzehuels/blockboard/pkg/board"
//	    "github.com/matzehuels/blockboard/pkg/editor"
//	)
//
//	ctl := editor.New(board.DefaultMetrics(), nil)
//	a := ctl.CreateBlock(board.TypeAction, board.Point{X: 100, Y: 40})
//	b := ctl.CreateBlock(board.TypeAction, board.Point{X: 600, Y: 400})
//
//	// Drag b under a; release snaps them together.
//	ctl.BeginDrag(b, board.Point{X: 610, Y: 410})
//	ctl.UpdateDrag(board.Point{X: 110, Y: 140})
//	ctl.EndDrag()
//
// # Main Packages
//
// [board] - Block and connection types, the insertion-ordered store, and
// coordinate resolution between absolute and Flow-local frames. The store
// keeps the graph in dual representation: an edge list for rendering wires
// and per-block Top/Bottom fields for traversal.
//
// [board/contain] - Flow member stacking (Reflow), Collection end trailing
// (RecomputeEnd), bracket span hit testing, and type-aware deletion cascades.
//
// [board/connect] - Proximity auto-connect on release, threshold
// auto-disconnect during drag, click-to-link for branch sources, and
// below-closure traversal used to move whole chains.
//
// [editor] - The interaction controller owning the idle/dragging/connecting
// state machine, display titles, z-order assignment and the deferred
// idempotent recompute queue.
//
// [config] - Optional TOML configuration layering over the stock metrics.
//
// [errors] - Structured error codes shared across packages.
//
// [observability] - Hook interfaces for instrumenting editor mutations and
// recompute passes, with no-op defaults.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...             # All tests
//	go test ./pkg/board/...       # Specific package
//	go test -run Example          # Examples only
//
// [board]: https://pkg.go.dev/github.com/matzehuels/blockboard/pkg/board
// [board/contain]: https://pkg.go.dev/github.com/matzehuels/blockboard/pkg/board/contain
// [board/connect]: https://pkg.go.dev/github.com/matzehuels/blockboard/pkg/board/connect
// [editor]: https://pkg.go.dev/github.com/matzehuels/blockboard/pkg/editor
// [config]: https://pkg.go.dev/github.com/matzehuels/blockboard/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/blockboard/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/blockboard/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/blockboard/pkg/buildinfo
package pkg
