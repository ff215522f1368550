// Package tree provides the generic labeled tree node shared by every stage
// of the vecc pipeline: the Src expression tree handed in by the surface
// parser, and the Dst assignment tree produced by the expansion engine and
// mutated in place by the optimization passes.
//
// A Node carries a Kind tag, an optional leaf Value, an optional ordered
// list of Children, and a back-link to its Parent. NewLeaf builds a
// value-bearing, childless node and NewInner a children-bearing,
// value-less one. Dst trees keep to those two shapes; Src inner nodes
// (KindLet, KindBinaryOp, …) also carry a Value, set after NewInner, as
// kinds_src.go documents. Nothing in this package enforces either shape.
//
// Mutation (Reassign, Append, RemoveChild, ReplaceChild) is the province of
// the alias resolver in package alias and the optimization passes in
// package optimize; expansion code in package expand builds trees
// bottom-up with NewLeaf/NewInner and never mutates a tree once built. Clone always detaches: the returned subtree's Parent
// is nil and every descendant's Parent points within the clone, never into
// the original.
package tree
