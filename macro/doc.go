// Package macro implements the macro value: a captured parameter list,
// return sort, and body tree, substitutable by textual tree substitution
// at call sites (package expand).
//
// Two invariants are enforced at construction, failing fast: parameter
// names must be unique, and every free variable in the body must be one
// of the parameters. A third invariant — no recursion — is enforced
// across the whole macro set at install time (Environment.DefineMacro,
// package env), not per-macro at construction, because mutual recursion
// (A calls B calls A) can only be detected once every macro that might be
// called is known. The cycle detector here uses a plain directed-graph
// three-color (white/gray/black) DFS.
package macro
