package env

import "errors"

// Sentinel errors for environment mutation.
var (
	// ErrVariableRedefined indicates a second assignment to an identifier
	// already bound as a variable (single-assignment).
	ErrVariableRedefined = errors.New("env: variable already assigned")

	// ErrNameCollidesWithMacro indicates a variable identifier collides
	// with an already-defined macro name.
	ErrNameCollidesWithMacro = errors.New("env: identifier collides with a macro name")

	// ErrNameCollidesWithVariable indicates a macro identifier collides
	// with an already-bound variable name.
	ErrNameCollidesWithVariable = errors.New("env: identifier collides with a variable name")

	// ErrMacroRedefined indicates a second definition of the same macro
	// name.
	ErrMacroRedefined = errors.New("env: macro already defined")

	// ErrDuplicateImportAlias indicates two imports share an alias.
	ErrDuplicateImportAlias = errors.New("env: duplicate import alias")

	// ErrDuplicateExportAlias indicates two exports share an alias.
	ErrDuplicateExportAlias = errors.New("env: duplicate export alias")

	// ErrTargetCollision indicates an import and an export (or two
	// imports, or two exports) name the same external target.
	ErrTargetCollision = errors.New("env: import/export target collision")

	// ErrUnknownVariable indicates a lookup for a variable identifier
	// that was never assigned.
	ErrUnknownVariable = errors.New("env: unknown variable")

	// ErrUnknownMacro indicates a lookup/call for a macro identifier that
	// was never defined.
	ErrUnknownMacro = errors.New("env: unknown macro")
)
