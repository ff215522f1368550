package env

import (
	"fmt"

	"github.com/katalvlaran/vecc/macro"
	"github.com/katalvlaran/vecc/value"
)

// Binding is what the variables namespace stores per identifier: the
// bound value (exactly one of the three fields is meaningful, selected by
// Sort) and the per-sort index that was allocated for it when it was
// assigned — the index that feeds value.Num/Vector/Matrix's Assign
// methods when the expander lowers this binding to Dst.
type Binding struct {
	Sort   value.Sort
	Index  int
	Scalar value.Num
	Vector value.Vector
	Matrix value.Matrix
}

// Environment holds four disjoint namespaces (variables, macros,
// imports, exports) plus three monotonic per-sort counters. Every
// mutator returns a new *Environment; the receiver is never modified —
// a copy-on-write discipline (see package doc).
type Environment struct {
	variables map[string]Binding
	macros    map[string]*macro.Macro
	imports   map[string]string // alias -> target
	exports   map[string]string // alias -> target

	nextScalar int
	nextVector int
	nextMatrix int
}

// New returns an empty Environment.
func New() *Environment {
	return &Environment{
		variables: make(map[string]Binding),
		macros:    make(map[string]*macro.Macro),
		imports:   make(map[string]string),
		exports:   make(map[string]string),
	}
}

// clone returns a shallow *Environment copy whose namespace maps are
// fresh (so the clone's mutations never touch e's maps) but whose
// Binding/*macro.Macro values are shared, since both are treated as
// immutable once stored.
func (e *Environment) clone() *Environment {
	c := &Environment{
		variables:  make(map[string]Binding, len(e.variables)),
		macros:     make(map[string]*macro.Macro, len(e.macros)),
		imports:    make(map[string]string, len(e.imports)),
		exports:    make(map[string]string, len(e.exports)),
		nextScalar: e.nextScalar,
		nextVector: e.nextVector,
		nextMatrix: e.nextMatrix,
	}
	for k, v := range e.variables {
		c.variables[k] = v
	}
	for k, v := range e.macros {
		c.macros[k] = v
	}
	for k, v := range e.imports {
		c.imports[k] = v
	}
	for k, v := range e.exports {
		c.exports[k] = v
	}

	return c
}

// DefineScalar binds name to a scalar value, allocating the next scalar
// index. Returns the new environment and the index allocated (for the
// caller to pass to value.Num.Assign).
//
// DefineScalar composes ReserveScalarIndex and BindScalar; package expand
// uses the split form directly because it must call value.Num.Assign
// with the index *before* the post-assignment value is known.
func (e *Environment) DefineScalar(name string, v value.Num) (*Environment, int, error) {
	c, idx := e.ReserveScalarIndex()
	c, err := c.BindScalar(name, idx, v)
	if err != nil {
		return nil, 0, err
	}

	return c, idx, nil
}

// DefineVector binds name to a vector value, allocating the next vector
// index.
func (e *Environment) DefineVector(name string, v value.Vector) (*Environment, int, error) {
	c, idx := e.ReserveVectorIndex()
	c, err := c.BindVector(name, idx, v)
	if err != nil {
		return nil, 0, err
	}

	return c, idx, nil
}

// DefineMatrix binds name to a matrix value, allocating the next matrix
// index.
func (e *Environment) DefineMatrix(name string, v value.Matrix) (*Environment, int, error) {
	c, idx := e.ReserveMatrixIndex()
	c, err := c.BindMatrix(name, idx, v)
	if err != nil {
		return nil, 0, err
	}

	return c, idx, nil
}

// ReserveScalarIndex bumps and returns the next scalar index, without
// binding any name. Used by package expand to obtain the index a
// value.Num.Assign call needs before the post-assignment value (which
// BindScalar then stores) exists.
func (e *Environment) ReserveScalarIndex() (*Environment, int) {
	c := e.clone()
	idx := c.nextScalar
	c.nextScalar++

	return c, idx
}

// ReserveVectorIndex bumps and returns the next vector index.
func (e *Environment) ReserveVectorIndex() (*Environment, int) {
	c := e.clone()
	idx := c.nextVector
	c.nextVector++

	return c, idx
}

// ReserveMatrixIndex bumps and returns the next matrix index.
func (e *Environment) ReserveMatrixIndex() (*Environment, int) {
	c := e.clone()
	idx := c.nextMatrix
	c.nextMatrix++

	return c, idx
}

// BindScalar binds name to v at the given (already reserved) index,
// checking the single-assignment and variable/macro disjointness
// invariants.
func (e *Environment) BindScalar(name string, index int, v value.Num) (*Environment, error) {
	c, err := e.defineCheck(name)
	if err != nil {
		return nil, err
	}
	c.variables[name] = Binding{Sort: value.SortScalar, Index: index, Scalar: v}

	return c, nil
}

// BindVector binds name to v at the given (already reserved) index.
func (e *Environment) BindVector(name string, index int, v value.Vector) (*Environment, error) {
	c, err := e.defineCheck(name)
	if err != nil {
		return nil, err
	}
	c.variables[name] = Binding{Sort: value.SortVector, Index: index, Vector: v}

	return c, nil
}

// BindMatrix binds name to v at the given (already reserved) index.
func (e *Environment) BindMatrix(name string, index int, v value.Matrix) (*Environment, error) {
	c, err := e.defineCheck(name)
	if err != nil {
		return nil, err
	}
	c.variables[name] = Binding{Sort: value.SortMatrix, Index: index, Matrix: v}

	return c, nil
}

// defineCheck validates the single-assignment and variable/macro
// disjointness invariants and returns a clone ready for the caller to
// populate variables[name]. Counters are not touched here.
func (e *Environment) defineCheck(name string) (*Environment, error) {
	if _, bound := e.variables[name]; bound {
		return nil, fmt.Errorf("%w: %q", ErrVariableRedefined, name)
	}
	if _, isMacro := e.macros[name]; isMacro {
		return nil, fmt.Errorf("%w: %q", ErrNameCollidesWithMacro, name)
	}

	return e.clone(), nil
}

// Lookup returns the Binding for name and whether it was found.
func (e *Environment) Lookup(name string) (Binding, bool) {
	b, ok := e.variables[name]

	return b, ok
}

// DefineMacro installs m, checking name disjointness against the
// variable namespace and re-running whole-call-graph recursion detection
// (package macro) over the updated macro set, since mutual recursion
// between m and an existing macro can only be seen once every macro that
// might be called is known.
func (e *Environment) DefineMacro(m *macro.Macro) (*Environment, error) {
	if _, bound := e.variables[m.Name]; bound {
		return nil, fmt.Errorf("%w: %q", ErrNameCollidesWithVariable, m.Name)
	}
	if _, dup := e.macros[m.Name]; dup {
		return nil, fmt.Errorf("%w: %q", ErrMacroRedefined, m.Name)
	}

	c := e.clone()
	c.macros[m.Name] = m
	if err := macro.DetectRecursion(c.macros); err != nil {
		return nil, err
	}

	return c, nil
}

// LookupMacro returns the macro named name and whether it was found.
func (e *Environment) LookupMacro(name string) (*macro.Macro, bool) {
	m, ok := e.macros[name]

	return m, ok
}

// DefineImport records alias -> target, checking alias uniqueness and
// target disjointness against every existing import and export target.
func (e *Environment) DefineImport(alias, target string) (*Environment, error) {
	if _, dup := e.imports[alias]; dup {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateImportAlias, alias)
	}
	if e.targetTaken(target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetCollision, target)
	}

	c := e.clone()
	c.imports[alias] = target

	return c, nil
}

// DefineExport records alias -> target, checking alias uniqueness and
// target disjointness against every existing import and export target.
func (e *Environment) DefineExport(alias, target string) (*Environment, error) {
	if _, dup := e.exports[alias]; dup {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateExportAlias, alias)
	}
	if e.targetTaken(target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetCollision, target)
	}

	c := e.clone()
	c.exports[alias] = target

	return c, nil
}

func (e *Environment) targetTaken(target string) bool {
	for _, t := range e.imports {
		if t == target {
			return true
		}
	}
	for _, t := range e.exports {
		if t == target {
			return true
		}
	}

	return false
}

// ImportTarget resolves alias to its external target, if imported.
func (e *Environment) ImportTarget(alias string) (string, bool) {
	t, ok := e.imports[alias]

	return t, ok
}

// Imports returns a defensive copy of the alias -> target import map.
func (e *Environment) Imports() map[string]string {
	return copyStringMap(e.imports)
}

// Exports returns a defensive copy of the alias -> target export map.
func (e *Environment) Exports() map[string]string {
	return copyStringMap(e.exports)
}

func copyStringMap(m map[string]string) map[string]string {
	cp := make(map[string]string, len(m))
	for k, v := range m {
		cp[k] = v
	}

	return cp
}
