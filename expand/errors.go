package expand

import "errors"

// Sentinel errors for the expansion engine. Each is surfaced wrapped in
// a *diag.Error carrying the appropriate category.
var (
	// ErrUndefinedVariable indicates a variable_ref names no bound
	// variable.
	ErrUndefinedVariable = errors.New("expand: undefined variable")

	// ErrUndefinedExternal indicates an external_ref names no import.
	ErrUndefinedExternal = errors.New("expand: undefined external reference")

	// ErrUndefinedMacro indicates a macro_call names no defined macro.
	ErrUndefinedMacro = errors.New("expand: undefined macro")

	// ErrSortMismatch indicates a value was used at a sort other than
	// its declared or expected one.
	ErrSortMismatch = errors.New("expand: sort mismatch")

	// ErrArgCount indicates a macro call supplied the wrong number of
	// arguments.
	ErrArgCount = errors.New("expand: wrong argument count")

	// ErrUnknownStatement indicates a top-level Src node kind the
	// expander does not recognize as a statement.
	ErrUnknownStatement = errors.New("expand: unknown statement kind")

	// ErrUnknownExpression indicates a Src node kind the expander does
	// not recognize as an expression.
	ErrUnknownExpression = errors.New("expand: unknown expression kind")

	// ErrNoLibraryLoader indicates a using statement was encountered but
	// the walker was built without a library.Loader.
	ErrNoLibraryLoader = errors.New("expand: using statement requires a library loader")
)
