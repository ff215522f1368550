package expand

import (
	"github.com/katalvlaran/vecc/diag"
	"github.com/katalvlaran/vecc/env"
	"github.com/katalvlaran/vecc/tree"
	"github.com/katalvlaran/vecc/value"
)

// expandMatrix is one of the three mutually recursive expanders of the
// expansion engine: it lowers a Src expression known (or expected) to be
// matrix-sorted into a value.Matrix.
func (w *walker) expandMatrix(e *env.Environment, node *tree.Node) (*env.Environment, value.Matrix, error) {
	pop := w.reporter.EnterExpression(node)
	defer pop()

	switch node.Kind {
	case tree.KindMatrixLiteral:
		rows := make([]value.Vector, 0, len(node.Children))
		cur := e
		for _, child := range node.Children {
			e2, v, err := w.expandVector(cur, child)
			if err != nil {
				return nil, value.Matrix{}, err
			}
			cur = e2
			rows = append(rows, v)
		}
		m, err := value.NewMatrix(rows)
		if err != nil {
			return nil, value.Matrix{}, w.reporter.Wrap(diag.CategoryShapeMismatch, err, "matrix literal")
		}
		return cur, m, nil

	case tree.KindVariableRef:
		b, ok := e.Lookup(node.Value)
		if !ok {
			return nil, value.Matrix{}, w.reporter.Wrap(diag.CategoryResolution, ErrUndefinedVariable, "%s", node.Value)
		}
		if b.Sort != value.SortMatrix {
			return nil, value.Matrix{}, w.reporter.Wrap(diag.CategorySortMismatch, ErrSortMismatch, "%s is not a matrix", node.Value)
		}
		return e, b.Matrix, nil

	case tree.KindMacroCall:
		return w.expandMatrixMacroCall(e, node)

	case tree.KindMap:
		e2, m, err := w.expandMatrix(e, node.Children[0])
		if err != nil {
			return nil, value.Matrix{}, err
		}
		return e2, m.Map(node.Value), nil

	case tree.KindPremap:
		e2, m, err := w.expandMatrix(e, node.Children[0])
		if err != nil {
			return nil, value.Matrix{}, err
		}
		e3, n, err := w.expandScalar(e2, node.Children[1])
		if err != nil {
			return nil, value.Matrix{}, err
		}
		return e3, m.Premap(node.Value, n), nil

	case tree.KindPostmap:
		e2, n, err := w.expandScalar(e, node.Children[0])
		if err != nil {
			return nil, value.Matrix{}, err
		}
		e3, m, err := w.expandMatrix(e2, node.Children[1])
		if err != nil {
			return nil, value.Matrix{}, err
		}
		return e3, m.Postmap(n, node.Value), nil

	case tree.KindApply:
		e2, left, err := w.expandMatrix(e, node.Children[0])
		if err != nil {
			return nil, value.Matrix{}, err
		}
		e3, right, err := w.expandMatrix(e2, node.Children[1])
		if err != nil {
			return nil, value.Matrix{}, err
		}
		result, err := left.Apply(node.Value, right)
		if err != nil {
			return nil, value.Matrix{}, w.reporter.Wrap(diag.CategoryShapeMismatch, err, "apply %s", node.Value)
		}
		return e3, result, nil

	case tree.KindTranspose:
		e2, m, err := w.expandMatrix(e, node.Children[0])
		if err != nil {
			return nil, value.Matrix{}, err
		}
		return e2, m.Transpose(), nil

	case tree.KindMatmul:
		e2, left, err := w.expandMatrix(e, node.Children[0])
		if err != nil {
			return nil, value.Matrix{}, err
		}
		e3, right, err := w.expandMatrix(e2, node.Children[1])
		if err != nil {
			return nil, value.Matrix{}, err
		}
		result, err := left.Matmul(right)
		if err != nil {
			return nil, value.Matrix{}, w.reporter.Wrap(diag.CategoryShapeMismatch, err, "matmul")
		}
		return e3, result, nil

	default:
		return nil, value.Matrix{}, w.reporter.Wrap(diag.CategorySortMismatch, ErrUnknownExpression, "%s is not a matrix expression", node.Kind)
	}
}

// expandMatrixMacroCall mirrors expandScalarMacroCall for a macro whose
// declared return sort is matrix.
func (w *walker) expandMatrixMacroCall(e *env.Environment, node *tree.Node) (*env.Environment, value.Matrix, error) {
	args, err := w.substituteMacroArgs(e, node, value.SortMatrix)
	if err != nil {
		return nil, value.Matrix{}, err
	}

	return w.expandMatrix(e, args)
}
