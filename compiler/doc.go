// Package compiler is the single public entry point of the pipeline:
// Compile takes a parsed Src tree and runs expansion, alias resolution,
// and the three optimization passes in a fixed order, returning the
// resolved Dst program plus the import/export name sets alias resolution
// produced.
//
// Option/Options uses a functional-options shape: an Options struct with
// unexported fields, a public Option func(*Options) type, and WithX
// constructors, so -no-elim/-no-reduce/-no-mangle/-lib have a library-level home
// rather than being CLI-only booleans — the CLI flags need a Go API
// underneath them.
package compiler
