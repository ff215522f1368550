package expand

import (
	"strconv"

	"github.com/katalvlaran/vecc/diag"
	"github.com/katalvlaran/vecc/env"
	"github.com/katalvlaran/vecc/tree"
	"github.com/katalvlaran/vecc/value"
)

// expandVector is one of the three mutually recursive expanders of the
// expansion engine: it lowers a Src expression known (or expected) to be
// vector-sorted into a value.Vector.
func (w *walker) expandVector(e *env.Environment, node *tree.Node) (*env.Environment, value.Vector, error) {
	pop := w.reporter.EnterExpression(node)
	defer pop()

	switch node.Kind {
	case tree.KindVectorLiteral:
		elems := make([]value.Num, 0, len(node.Children))
		cur := e
		for _, child := range node.Children {
			e2, v, err := w.expandScalar(cur, child)
			if err != nil {
				return nil, value.Vector{}, err
			}
			cur = e2
			elems = append(elems, v)
		}
		return cur, value.NewVector(elems), nil

	case tree.KindVariableRef:
		b, ok := e.Lookup(node.Value)
		if !ok {
			return nil, value.Vector{}, w.reporter.Wrap(diag.CategoryResolution, ErrUndefinedVariable, "%s", node.Value)
		}
		if b.Sort != value.SortVector {
			return nil, value.Vector{}, w.reporter.Wrap(diag.CategorySortMismatch, ErrSortMismatch, "%s is not a vector", node.Value)
		}
		return e, b.Vector, nil

	case tree.KindMacroCall:
		return w.expandVectorMacroCall(e, node)

	case tree.KindMap:
		e2, v, err := w.expandVector(e, node.Children[0])
		if err != nil {
			return nil, value.Vector{}, err
		}
		return e2, v.Map(node.Value), nil

	case tree.KindPremap:
		e2, v, err := w.expandVector(e, node.Children[0])
		if err != nil {
			return nil, value.Vector{}, err
		}
		e3, n, err := w.expandScalar(e2, node.Children[1])
		if err != nil {
			return nil, value.Vector{}, err
		}
		return e3, v.Premap(node.Value, n), nil

	case tree.KindPostmap:
		e2, n, err := w.expandScalar(e, node.Children[0])
		if err != nil {
			return nil, value.Vector{}, err
		}
		e3, v, err := w.expandVector(e2, node.Children[1])
		if err != nil {
			return nil, value.Vector{}, err
		}
		return e3, v.Postmap(n, node.Value), nil

	case tree.KindApply:
		e2, left, err := w.expandVector(e, node.Children[0])
		if err != nil {
			return nil, value.Vector{}, err
		}
		e3, right, err := w.expandVector(e2, node.Children[1])
		if err != nil {
			return nil, value.Vector{}, err
		}
		result, err := left.Apply(node.Value, right)
		if err != nil {
			return nil, value.Vector{}, w.reporter.Wrap(diag.CategoryShapeMismatch, err, "apply %s", node.Value)
		}
		return e3, result, nil

	case tree.KindConcat:
		e2, left, err := w.expandVector(e, node.Children[0])
		if err != nil {
			return nil, value.Vector{}, err
		}
		e3, right, err := w.expandVector(e2, node.Children[1])
		if err != nil {
			return nil, value.Vector{}, err
		}
		return e3, left.Concat(right), nil

	case tree.KindReverse:
		e2, v, err := w.expandVector(e, node.Children[0])
		if err != nil {
			return nil, value.Vector{}, err
		}
		return e2, v.Reverse(), nil

	case tree.KindRow:
		e2, m, err := w.expandMatrix(e, node.Children[0])
		if err != nil {
			return nil, value.Vector{}, err
		}
		idx, err := strconv.Atoi(node.Children[1].Value)
		if err != nil {
			return nil, value.Vector{}, w.reporter.Wrap(diag.CategoryParse, err, "row index %q", node.Children[1].Value)
		}
		result, err := m.Row(idx)
		if err != nil {
			return nil, value.Vector{}, w.reporter.Wrap(diag.CategoryIndexRange, err, "row(%d)", idx)
		}
		return e2, result, nil

	case tree.KindCol:
		e2, m, err := w.expandMatrix(e, node.Children[0])
		if err != nil {
			return nil, value.Vector{}, err
		}
		idx, err := strconv.Atoi(node.Children[1].Value)
		if err != nil {
			return nil, value.Vector{}, w.reporter.Wrap(diag.CategoryParse, err, "col index %q", node.Children[1].Value)
		}
		result, err := m.Col(idx)
		if err != nil {
			return nil, value.Vector{}, w.reporter.Wrap(diag.CategoryIndexRange, err, "col(%d)", idx)
		}
		return e2, result, nil

	default:
		return nil, value.Vector{}, w.reporter.Wrap(diag.CategorySortMismatch, ErrUnknownExpression, "%s is not a vector expression", node.Kind)
	}
}

// expandVectorMacroCall mirrors expandScalarMacroCall for a macro whose
// declared return sort is vector.
func (w *walker) expandVectorMacroCall(e *env.Environment, node *tree.Node) (*env.Environment, value.Vector, error) {
	args, err := w.substituteMacroArgs(e, node, value.SortVector)
	if err != nil {
		return nil, value.Vector{}, err
	}

	return w.expandVector(e, args)
}
