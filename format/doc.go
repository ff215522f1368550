// Package format renders a resolved, optimized Dst program (package tree's
// KindProgram/KindLine/KindAssignment shape) as text or as a JSON AST.
//
// These serializers sit outside the compiler pipeline proper: they are
// thin ambient CLI plumbing so the repository is runnable end-to-end,
// built directly against package tree rather than against any compiler
// internals. No third-party library in the dependency set fits an
// expression-precedence text printer or an AST-JSON encoder better than
// stdlib strings.Builder and encoding/json, so those are used directly.
package format
