package library

import "errors"

// Sentinel errors for library resolution and loading.
var (
	// ErrLibraryNotFound indicates no file matched `**/<name>.lib.src`
	// under the search root.
	ErrLibraryNotFound = errors.New("library: no matching file found")

	// ErrAmbiguousLibrary indicates more than one file matched.
	ErrAmbiguousLibrary = errors.New("library: multiple matching files found")

	// ErrNonMacroStatement indicates the library file contained a
	// top-level statement that is neither a macro definition nor a
	// comment.
	ErrNonMacroStatement = errors.New("library: statement is not a macro definition")

	// ErrMalformedDefine indicates a KindDefine node did not carry the
	// [signature, body] shape package tree documents.
	ErrMalformedDefine = errors.New("library: malformed macro definition")

	// ErrUnknownSortTag indicates a SortTag value other than number,
	// vector, or matrix.
	ErrUnknownSortTag = errors.New("library: unknown sort tag")
)
