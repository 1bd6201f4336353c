// Package rbtree implements an ordered set backed by a red-black tree.
//
// Elements are kept in binary-search order under a total-order comparator
// and the usual coloring rules bound the height at O(log n). Nodes live in
// an index-addressed arena: child links are indices and the parent link is a
// plain back-reference, so rebalancing can walk upward without pointer
// cycles.
//
// A Tree is not safe for concurrent mutation. Callers sharing one tree must
// serialize Insert against every other call; concurrent Contains calls are
// fine on their own.
package rbtree
