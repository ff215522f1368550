// Package value implements the three Src value sorts: Num (scalar),
// Vector, and Matrix. All three are value-semantic — every operation
// returns a new value, never mutating its receiver — and all three
// ultimately bottom out in Num, whose deferred op-queue is folded into a
// Dst expression tree by Evaluate.
//
// Num composes many scalar operations in O(1) per step instead of
// materializing an expression tree after every call: unary and binary
// append to an immutable queue, and Evaluate walks that queue once,
// lazily recursing into any queued binary operand's own queue. An
// equivalent eager-tree representation would be observably identical;
// the queue is kept here because it mirrors the deferred-evaluation
// shape the compiler's expansion engine threads values through.
//
// Vector and Matrix lift Num's scalar operations pointwise (map/premap/
// postmap/apply) and add their own sort-specific operations (reductions,
// dot, concat, reverse, transpose, matrix multiply). Operator names are
// passed to Num unchanged: no vec_/mat_ prefix is stripped here, so a
// prefixed name such as "vec_add" is queued and emitted as that Kind.
// The Src vocabulary in package tree (KindApply, KindMap, …) carries the
// plain scalar operator name.
package value
