// Package env implements the compilation environment: four disjoint
// namespaces — variables, macros, imports, exports — plus the monotonic
// per-sort counters package value's Assign methods consume to allocate
// fresh Dst identifiers (N<idx>, V<idx>_e<i>, M<idx>_r<i>_c<j>).
//
// Environment gathers named, typed storage plus small validated mutators
// in a single struct, with no locking: a Src compilation runs
// single-threaded inside package expand, so there is no concurrent
// access to guard against. What it does carry is a copy-on-write
// discipline: every mutator on Environment returns a new *Environment
// sharing no mutable storage with its receiver, so two branches of
// expansion (e.g. speculative macro substitution) can hold independent
// environments without aliasing each other's definitions.
package env
