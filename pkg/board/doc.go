// Package board implements the data model and graph store for the diagram
// editor: typed blocks placed on a canvas, directed connections between their
// anchors, and the two containment relations (Flow membership and
// Collection bracketing).
//
// The store keeps the dual representation the engines depend on: adjacency is
// stored on the blocks themselves (top back-reference, ordered bottom list)
// for O(1) local traversal, and as a flat edge list for global iteration and
// removal by index. Every mutation primitive keeps both in lockstep.
//
// All operations are total over valid ids. Operating on an unknown id is a
// deliberate no-op rather than an error, so deferred recomputes scheduled
// before a deletion can run safely after it.
//
// The package also provides the coordinate resolver: a block's stored
// position is absolute canvas coordinates unless the block is a member of a
// Flow, in which case it is local to the Flow's origin. Nesting is a single
// level deep (a Flow is never itself contained), so resolution never recurses.
//
// board is not safe for concurrent use; the editor is single-threaded and
// event-driven.
package board
