// Package vecc compiles a high-level vector/matrix numeric language (Src)
// into a restricted low-level scalar-assignment language (Dst).
//
// A Src program declares scalar, vector, and matrix values and macros over
// them; compiling it expands every vector/matrix operation and macro call
// down to individual scalar assignments, resolves the result to exported
// Dst identifiers, and optimizes the resulting assignment list.
//
// The module is organized as:
//
//	tree/      — the generic labeled tree both Src and Dst are built from
//	value/     — scalar/vector/matrix value shapes over tree-valued cells
//	macro/     — macro declarations and call-graph validation
//	env/       — the compile-time environment (variables, macros, imports, exports)
//	library/   — on-disk library loading for `using` statements
//	expand/    — the expansion engine: lowers Src to a flat Dst assignment list
//	alias/     — rewrites expanded names to the exported identifier scheme
//	optimize/  — constant propagation/folding, dead-code elimination, mangling
//	numeric/   — decimal arithmetic backing constant folding
//	diag/      — error categories and context-carrying diagnostics
//	format/    — Dst text and JSON ("cylon") rendering
//	compiler/  — Compile, the single orchestrating entry point
//	cmd/vecc/  — the command-line front end
//
// Package compiler.Compile is the library's one public entry point; see its
// doc comment for the pass pipeline and Options.
package vecc
