package expand

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/vecc/diag"
	"github.com/katalvlaran/vecc/env"
	"github.com/katalvlaran/vecc/tree"
	"github.com/katalvlaran/vecc/value"
)

// expandScalar is one of the three mutually recursive expanders of the
// expansion engine: it lowers a Src expression known (or expected) to be
// scalar-sorted into a value.Num, threading the environment through.
func (w *walker) expandScalar(e *env.Environment, node *tree.Node) (*env.Environment, value.Num, error) {
	pop := w.reporter.EnterExpression(node)
	defer pop()

	switch node.Kind {
	case tree.KindNumberLiteral:
		return e, value.FromLiteral(node.Value), nil

	case tree.KindVariableRef:
		b, ok := e.Lookup(node.Value)
		if !ok {
			return nil, value.Num{}, w.reporter.Wrap(diag.CategoryResolution, ErrUndefinedVariable, "%s", node.Value)
		}
		if b.Sort != value.SortScalar {
			return nil, value.Num{}, w.reporter.Wrap(diag.CategorySortMismatch, ErrSortMismatch, "%s is not a number", node.Value)
		}
		return e, b.Scalar, nil

	case tree.KindExternalRef:
		if _, ok := e.ImportTarget(node.Value); !ok {
			return nil, value.Num{}, w.reporter.Wrap(diag.CategoryResolution, ErrUndefinedExternal, "%s", node.Value)
		}
		return e, value.FromVariable(node.Value), nil

	case tree.KindMacroCall:
		return w.expandScalarMacroCall(e, node)

	case tree.KindUnaryOp:
		e2, operand, err := w.expandScalar(e, node.Children[0])
		if err != nil {
			return nil, value.Num{}, err
		}
		return e2, operand.Unary(node.Value), nil

	case tree.KindBinaryOp:
		e2, left, err := w.expandScalar(e, node.Children[0])
		if err != nil {
			return nil, value.Num{}, err
		}
		e3, right, err := w.expandScalar(e2, node.Children[1])
		if err != nil {
			return nil, value.Num{}, err
		}
		return e3, left.Binary(node.Value, right), nil

	case tree.KindReduce:
		e2, v, err := w.expandVector(e, node.Children[0])
		if err != nil {
			return nil, value.Num{}, err
		}
		result, err := v.Reduce(node.Value)
		if err != nil {
			return nil, value.Num{}, w.reporter.Wrap(diag.CategoryShapeMismatch, err, "reduce %s", node.Value)
		}
		return e2, result, nil

	case tree.KindDot:
		e2, left, err := w.expandVector(e, node.Children[0])
		if err != nil {
			return nil, value.Num{}, err
		}
		e3, right, err := w.expandVector(e2, node.Children[1])
		if err != nil {
			return nil, value.Num{}, err
		}
		result, err := left.Dot(right)
		if err != nil {
			return nil, value.Num{}, w.reporter.Wrap(diag.CategoryShapeMismatch, err, "dot")
		}
		return e3, result, nil

	case tree.KindLen:
		e2, v, err := w.expandVector(e, node.Children[0])
		if err != nil {
			return nil, value.Num{}, err
		}
		return e2, v.Len(), nil

	case tree.KindRowsOf:
		e2, m, err := w.expandMatrix(e, node.Children[0])
		if err != nil {
			return nil, value.Num{}, err
		}
		return e2, m.RowsCount(), nil

	case tree.KindColsOf:
		e2, m, err := w.expandMatrix(e, node.Children[0])
		if err != nil {
			return nil, value.Num{}, err
		}
		return e2, m.ColsCount(), nil

	case tree.KindElem:
		return w.expandElem(e, node)

	default:
		return nil, value.Num{}, w.reporter.Wrap(diag.CategorySortMismatch, ErrUnknownExpression, "%s is not a number expression", node.Kind)
	}
}

// expandElem handles KindElem, whose shape (2 children: vector index, or
// 3 children: matrix row/col) disambiguates which operand sort applies.
func (w *walker) expandElem(e *env.Environment, node *tree.Node) (*env.Environment, value.Num, error) {
	switch len(node.Children) {
	case 2:
		e2, v, err := w.expandVector(e, node.Children[0])
		if err != nil {
			return nil, value.Num{}, err
		}
		idx, err := strconv.Atoi(node.Children[1].Value)
		if err != nil {
			return nil, value.Num{}, w.reporter.Wrap(diag.CategoryParse, err, "elem index %q", node.Children[1].Value)
		}
		result, err := v.Elem(idx)
		if err != nil {
			return nil, value.Num{}, w.reporter.Wrap(diag.CategoryIndexRange, err, "elem(%d)", idx)
		}
		return e2, result, nil

	case 3:
		e2, m, err := w.expandMatrix(e, node.Children[0])
		if err != nil {
			return nil, value.Num{}, err
		}
		row, err := strconv.Atoi(node.Children[1].Value)
		if err != nil {
			return nil, value.Num{}, w.reporter.Wrap(diag.CategoryParse, err, "elem row %q", node.Children[1].Value)
		}
		col, err := strconv.Atoi(node.Children[2].Value)
		if err != nil {
			return nil, value.Num{}, w.reporter.Wrap(diag.CategoryParse, err, "elem col %q", node.Children[2].Value)
		}
		result, err := m.Elem(row, col)
		if err != nil {
			return nil, value.Num{}, w.reporter.Wrap(diag.CategoryIndexRange, err, "elem(%d,%d)", row, col)
		}
		return e2, result, nil

	default:
		return nil, value.Num{}, w.reporter.Wrap(diag.CategoryParse, nil, "elem: expected 2 or 3 children, got %d", len(node.Children))
	}
}

// expandScalarMacroCall handles a macro_call expected to produce a
// scalar, under call-by-name semantics: arguments are sort-checked
// against the declared parameter sorts (without being evaluated — the
// check is a dry run over the raw argument subtree, its env thrown
// away), the macro body is cloned with parameter leaves substituted by
// the raw argument subtrees, and the result is re-expanded under the
// current environment.
func (w *walker) expandScalarMacroCall(e *env.Environment, node *tree.Node) (*env.Environment, value.Num, error) {
	args, err := w.substituteMacroArgs(e, node, value.SortScalar)
	if err != nil {
		return nil, value.Num{}, err
	}

	return w.expandScalar(e, args)
}

// substituteMacroArgs resolves node's macro, checks its return sort
// against want, sort-checks and substitutes its arguments, and returns
// the substituted body ready for re-expansion by the caller's matching
// expander.
func (w *walker) substituteMacroArgs(e *env.Environment, node *tree.Node, want value.Sort) (*tree.Node, error) {
	m, ok := e.LookupMacro(node.Value)
	if !ok {
		return nil, w.reporter.Wrap(diag.CategoryResolution, ErrUndefinedMacro, "%s", node.Value)
	}
	if m.ReturnSort != want {
		return nil, w.reporter.Wrap(diag.CategorySortMismatch, ErrSortMismatch, "%s returns %s, not %s", node.Value, m.ReturnSort, want)
	}
	if len(node.Children) != len(m.Params) {
		return nil, w.reporter.Wrap(diag.CategorySemantic, ErrArgCount, "%s expects %d argument(s), got %d", node.Value, len(m.Params), len(node.Children))
	}

	args := make(map[string]*tree.Node, len(m.Params))
	for i, param := range m.Params {
		argNode := node.Children[i]
		if err := w.checkArgSort(e, argNode, param.Sort); err != nil {
			return nil, w.reporter.Wrap(diag.CategorySortMismatch, err, "%s argument %q", node.Value, param.Name)
		}
		args[param.Name] = argNode
	}

	return m.Substitute(args), nil
}

// checkArgSort dry-runs the expander matching sort over argNode, purely
// to validate it belongs to that sort; the resulting value and
// environment are discarded (call-by-name substitution, not call-by-value
// evaluation, re-expands the argument subtree again once substituted).
func (w *walker) checkArgSort(e *env.Environment, argNode *tree.Node, sort value.Sort) error {
	switch sort {
	case value.SortScalar:
		_, _, err := w.expandScalar(e, argNode)
		return err
	case value.SortVector:
		_, _, err := w.expandVector(e, argNode)
		return err
	case value.SortMatrix:
		_, _, err := w.expandMatrix(e, argNode)
		return err
	default:
		return fmt.Errorf("expand: unknown param sort %v", sort)
	}
}
