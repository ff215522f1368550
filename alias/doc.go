// Package alias implements the alias resolver: the two-step rewrite that
// turns the compiler's internal N<index>/V<index>_e<i>/M<index>_r<i>_c<j>
// identifiers into the user-chosen names given by import and export
// statements, decoupling allocation order from external naming while
// preserving stable per-element suffixes.
//
// The rewrite walks the source structure in place (mutate, return the
// transformed result) following the same sentinel-error and wrapping
// conventions used throughout packages tree/env/diag.
package alias
