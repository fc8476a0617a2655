// Package contain implements the containment engine: the two container kinds
// built on top of the board store and the deletion cascades that keep them
// consistent.
//
// A Flow is a free-form container. Members live in the Flow's local
// coordinate frame and are re-stacked into a single vertical lane by Reflow,
// which also derives the Flow's size. A Collection is a paired bracket: the
// start marker and its end marker are created together, and RecomputeEnd
// trails the end marker below whatever run of blocks the bracket currently
// encloses.
//
// Engine methods mutate synchronously and are idempotent; the editor decides
// when to run them (typically from the deferred recompute queue, after the
// triggering mutation has committed). Unknown ids are no-ops throughout.
package contain
