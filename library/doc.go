// Package library implements the library loader: given a library name,
// it resolves `**/<name>.lib.src` under a configured search root via
// github.com/bmatcuk/doublestar/v4 (stdlib path/filepath.Glob has no `**`
// support), reads the one matching file, hands its contents to a
// caller-supplied Parser, and validates that every top-level statement in
// the result is a macro definition (or a comment, which is skipped)
// before converting each into a *macro.Macro.
//
// The surface-grammar parser is an external collaborator: Loader depends
// on the small Parser interface in parser.go rather than a concrete
// implementation, so this package never needs to know how Src source
// text is tokenized or parsed.
package library
