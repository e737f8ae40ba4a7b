// Package flex computes two-dimensional box layouts for a tree of styled
// nodes according to a subset of the CSS flexbox model.
//
// Given a root *Node with a Style attached, a parent size and a writing
// direction, CalculateLayout produces, for every node in the tree, a
// measured width and height, a position relative to its parent, and
// resolved per-edge padding, border and margin, all readable from the
// node's Layout field.
//
// The engine is a pure function over a mutable tree: it never spawns a
// goroutine and never blocks. A layout call runs to completion on the
// calling goroutine and mutates the tree it was given (see Node.Clone for
// the copy-on-write escape hatch when a tree is shared).
package flex
