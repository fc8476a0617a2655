// Package connect implements the connectivity engine: transitive
// below-closures over bottom connections and containment edges, the
// proximity heuristics that snap blocks together on release and break edges
// during a drag, and the legality rules for the explicit click-to-link
// affordance on bracket and container blocks.
//
// The heuristics operate on absolute coordinates and the tolerances carried
// by the store's metrics. All candidate scans iterate a snapshot of the
// store, and the snap search selects the nearest qualifying anchor rather
// than the first encountered, so results do not depend on iteration order.
package connect
