package expand

import (
	"fmt"

	"github.com/katalvlaran/vecc/diag"
	"github.com/katalvlaran/vecc/env"
	"github.com/katalvlaran/vecc/macro"
	"github.com/katalvlaran/vecc/tree"
	"github.com/katalvlaran/vecc/value"
)

// statement dispatches one top-level Src statement node, returning the
// updated environment.
func (w *walker) statement(e *env.Environment, stmt *tree.Node) (*env.Environment, error) {
	pop := w.reporter.EnterStatement(stmt)
	defer pop()

	switch stmt.Kind {
	case tree.KindComment:
		return e, nil
	case tree.KindLet:
		return w.letStatement(e, stmt)
	case tree.KindDefine:
		return w.defineStatement(e, stmt)
	case tree.KindUsing:
		return w.usingStatement(e, stmt)
	case tree.KindImport:
		return w.importStatement(e, stmt)
	case tree.KindImportGroup:
		for _, imp := range stmt.Children {
			var err error
			e, err = w.importStatement(e, imp)
			if err != nil {
				return nil, err
			}
		}
		return e, nil
	case tree.KindExport:
		return w.exportStatement(e, stmt)
	default:
		return nil, w.reporter.Wrap(diag.CategorySemantic, ErrUnknownStatement, "%s", stmt.Kind)
	}
}

// letStatement expands `let <sort> name = expr`: expands expr under the
// sort named by stmt.Value, allocates a fresh per-sort index, calls
// assign(index) (emitting one Dst line), and binds name to the
// post-assignment value.
func (w *walker) letStatement(e *env.Environment, stmt *tree.Node) (*env.Environment, error) {
	if len(stmt.Children) != 2 {
		return nil, w.reporter.Wrap(diag.CategoryParse, nil, "let: expected [ident, expr], got %d children", len(stmt.Children))
	}
	name := stmt.Children[0].Value
	exprNode := stmt.Children[1]

	switch tree.SortTag(stmt.Value) {
	case tree.SortTagNumber:
		e2, v, err := w.expandScalar(e, exprNode)
		if err != nil {
			return nil, err
		}
		e3, idx := e2.ReserveScalarIndex()
		assignment, bound := v.Assign(idx)
		w.emit([]*tree.Node{assignment})
		e4, err := e3.BindScalar(name, idx, bound)
		if err != nil {
			return nil, w.reporter.Wrap(diag.CategoryRedefinition, err, "%s", name)
		}
		return e4, nil
	case tree.SortTagVector:
		e2, v, err := w.expandVector(e, exprNode)
		if err != nil {
			return nil, err
		}
		e3, idx := e2.ReserveVectorIndex()
		assignments, bound := v.Assign(idx)
		w.emit(assignments)
		e4, err := e3.BindVector(name, idx, bound)
		if err != nil {
			return nil, w.reporter.Wrap(diag.CategoryRedefinition, err, "%s", name)
		}
		return e4, nil
	case tree.SortTagMatrix:
		e2, v, err := w.expandMatrix(e, exprNode)
		if err != nil {
			return nil, err
		}
		e3, idx := e2.ReserveMatrixIndex()
		assignments, bound := v.Assign(idx)
		w.emit(assignments)
		e4, err := e3.BindMatrix(name, idx, bound)
		if err != nil {
			return nil, w.reporter.Wrap(diag.CategoryRedefinition, err, "%s", name)
		}
		return e4, nil
	default:
		return nil, w.reporter.Wrap(diag.CategorySortMismatch, nil, "let: unknown sort tag %q", stmt.Value)
	}
}

// defineStatement installs a macro definition: the signature's children
// are KindParam nodes, the second child is the body. macro.New enforces
// parameter uniqueness and closure; env.DefineMacro enforces name
// disjointness and whole-call-graph recursion freedom.
func (w *walker) defineStatement(e *env.Environment, stmt *tree.Node) (*env.Environment, error) {
	signature := stmt.Children[0]
	body := stmt.Children[1]

	returnSort, err := sortFromTag(tree.SortTag(signature.Value))
	if err != nil {
		return nil, w.reporter.Wrap(diag.CategorySortMismatch, err, "define %s", stmt.Value)
	}

	params := make([]macro.Param, 0, len(signature.Children))
	for _, p := range signature.Children {
		paramSort, err := sortFromTag(tree.SortTag(p.Value))
		if err != nil {
			return nil, w.reporter.Wrap(diag.CategorySortMismatch, err, "define %s", stmt.Value)
		}
		params = append(params, macro.Param{Name: p.Children[0].Value, Sort: paramSort})
	}

	m, err := macro.New(stmt.Value, params, returnSort, body)
	if err != nil {
		return nil, w.reporter.Wrap(diag.CategorySemantic, err, "define %s", stmt.Value)
	}

	e2, err := e.DefineMacro(m)
	if err != nil {
		return nil, w.reporter.Wrap(diag.CategoryRedefinition, err, "define %s", stmt.Value)
	}

	return e2, nil
}

// usingStatement loads a library and installs every macro it defines
// into the environment via the same path as in-file definitions.
func (w *walker) usingStatement(e *env.Environment, stmt *tree.Node) (*env.Environment, error) {
	if w.loader == nil {
		return nil, w.reporter.Wrap(diag.CategorySemantic, ErrNoLibraryLoader, "using %s", stmt.Value)
	}
	macros, err := w.loader.Load(stmt.Value)
	if err != nil {
		return nil, w.reporter.Wrap(diag.CategorySemantic, err, "using %s", stmt.Value)
	}
	for _, m := range macros {
		var err error
		e, err = e.DefineMacro(m)
		if err != nil {
			return nil, w.reporter.Wrap(diag.CategoryRedefinition, err, "using %s", stmt.Value)
		}
	}

	return e, nil
}

func (w *walker) importStatement(e *env.Environment, stmt *tree.Node) (*env.Environment, error) {
	target := stmt.Children[0].Value
	e2, err := e.DefineImport(stmt.Value, target)
	if err != nil {
		return nil, w.reporter.Wrap(diag.CategoryRedefinition, err, "import %s", stmt.Value)
	}

	return e2, nil
}

func (w *walker) exportStatement(e *env.Environment, stmt *tree.Node) (*env.Environment, error) {
	target := stmt.Children[0].Value
	e2, err := e.DefineExport(stmt.Value, target)
	if err != nil {
		return nil, w.reporter.Wrap(diag.CategoryRedefinition, err, "export %s", stmt.Value)
	}

	return e2, nil
}

func sortFromTag(tag tree.SortTag) (value.Sort, error) {
	switch tag {
	case tree.SortTagNumber:
		return value.SortScalar, nil
	case tree.SortTagVector:
		return value.SortVector, nil
	case tree.SortTagMatrix:
		return value.SortMatrix, nil
	default:
		return 0, fmt.Errorf("expand: unknown sort tag %q", tag)
	}
}
