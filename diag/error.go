package diag

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vecc/tree"
)

// Category classifies an Error for readable messages; it is not a
// distinct error type — every vecc subsystem raises the same uniform
// *Error kind, distinguished only by Category.
type Category string

// Error categories.
const (
	CategoryParse        Category = "parse"
	CategoryResolution   Category = "resolution"
	CategoryRedefinition Category = "redefinition"
	CategorySortMismatch Category = "sort mismatch"
	CategoryShapeMismatch Category = "shape mismatch"
	CategoryIndexRange   Category = "index out of range"
	CategorySemantic     Category = "semantic"
)

// Error is the uniform, free-form-message error kind every vecc
// subsystem returns. Cause, when non-nil, is wrapped so that
// errors.Is/errors.As against package-level sentinels still works.
type Error struct {
	Category Category
	Message  string
	Cause    error

	// Statement/Expression are the Src nodes being processed when the
	// error was raised, captured by Reporter.EnterStatement and
	// Reporter.EnterExpression. Either may be nil.
	Statement  *tree.Node
	Expression *tree.Node
}

// Error implements the error interface, rendering category, message, and
// whatever context the reporter had captured.
func (e *Error) Error() string {
	msg := fmt.Sprintf("vecc: %s: %s", e.Category, e.Message)
	if e.Statement != nil {
		msg += fmt.Sprintf(" (in statement: %s)", describe(e.Statement))
	}
	if e.Expression != nil {
		msg += fmt.Sprintf(" (at expression: %s)", describe(e.Expression))
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}

	return msg
}

// Unwrap exposes Cause so errors.Is/errors.As see through to the
// underlying sentinel from the originating package (tree, value, macro,
// env, library, numeric, …).
func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds a context-free *Error. Reporter.Wrap is the usual entry
// point; New is exposed for callers (such as package compiler, wrapping
// alias and reduce-pass errors) that have no statement context to attach.
func New(category Category, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
		Cause:    cause,
	}
}

// Is reports whether err is a *diag.Error with the given category,
// independent of message text — used by tests that only care that a
// sort-mismatch (for example) was raised, not its exact wording.
func Is(err error, category Category) bool {
	var de *Error
	if !errors.As(err, &de) {
		return false
	}

	return de.Category == category
}
