// Package editor implements the interaction controller: the pointer-driven
// state machine (idle → dragging → connecting) that sequences graph store
// mutations and containment/connectivity recomputes, owns z-order
// assignment, and drains the deferred recompute queue after each completed
// interaction.
//
// The controller is the single write surface of the system. Front-ends
// (rendering, pointer capture, toolbars) call its command methods and read
// state back through the store; they hold no graph logic of their own.
//
// Everything is synchronous and single-threaded: a command mutates the
// store, enqueues whatever derived-layout passes the mutation invalidated
// (Flow re-stacking, Collection end repositioning), and drains the queue
// before returning, so every recompute observes the committed post-mutation
// graph. Recomputes are idempotent; running one against state a later
// mutation already superseded is wasted work, never corruption.
package editor
