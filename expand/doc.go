// Package expand implements the expansion engine: three mutually
// recursive expanders — expandScalar, expandVector, expandMatrix — each
// taking (environment, Src expression) and returning (environment,
// value), plus the statement-level handlers (let, define, using, import,
// export) that drive them over a whole program.
//
// The package is structured the way a single-entry-point tree walk
// usually is: one exported entry point, an unexported walker/state
// struct, small mutually-recursive private methods, every method
// returning (result, error). Here the "algorithm" is tree-to-tree
// lowering rather than graph search, but the calling convention is the
// same.
package expand
