package value

import (
	"fmt"

	"github.com/katalvlaran/vecc/tree"
)

// Matrix is an ordered sequence of equal-length Vectors (rows).
// Value-semantic like Vector and Num.
type Matrix struct {
	rows []Vector
}

// NewMatrix builds a Matrix from rows, validating that every row has the
// same length. Fails with ErrEmptyMatrix on zero rows, ErrRaggedMatrix on
// unequal row lengths.
func NewMatrix(rows []Vector) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, ErrEmptyMatrix
	}
	cols := rows[0].Length()
	cp := make([]Vector, len(rows))
	for i, r := range rows {
		if r.Length() != cols {
			return Matrix{}, fmt.Errorf("%w: row 0 has %d cols, row %d has %d", ErrRaggedMatrix, cols, i, r.Length())
		}
		cp[i] = r
	}

	return Matrix{rows: cp}, nil
}

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return len(m.rows)
}

// Cols returns the length shared by every row (0 for a Matrix with no
// rows, which NewMatrix never produces but the zero Matrix{} does).
func (m Matrix) Cols() int {
	if len(m.rows) == 0 {
		return 0
	}

	return m.rows[0].Length()
}

// Map applies a unary scalar op to every cell.
func (m Matrix) Map(op string) Matrix {
	out := make([]Vector, m.Rows())
	for i, r := range m.rows {
		out[i] = r.Map(op)
	}

	return Matrix{rows: out}
}

// Premap applies a binary scalar op with n as the right operand to every
// cell: result[i][j] = op(m[i][j], n).
func (m Matrix) Premap(op string, n Num) Matrix {
	out := make([]Vector, m.Rows())
	for i, r := range m.rows {
		out[i] = r.Premap(op, n)
	}

	return Matrix{rows: out}
}

// Postmap applies a binary scalar op with n as the left operand to every
// cell: result[i][j] = op(n, m[i][j]).
func (m Matrix) Postmap(n Num, op string) Matrix {
	out := make([]Vector, m.Rows())
	for i, r := range m.rows {
		out[i] = r.Postmap(n, op)
	}

	return Matrix{rows: out}
}

// Apply (matbinary) combines m and other pointwise under op. Fails with
// ErrDimensionMismatch when shapes differ.
func (m Matrix) Apply(op string, other Matrix) (Matrix, error) {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return Matrix{}, fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, m.Rows(), m.Cols(), other.Rows(), other.Cols())
	}
	out := make([]Vector, m.Rows())
	for i := range m.rows {
		combined, err := m.rows[i].Apply(op, other.rows[i])
		if err != nil {
			return Matrix{}, err
		}
		out[i] = combined
	}

	return Matrix{rows: out}, nil
}

// Transpose swaps rows and columns.
func (m Matrix) Transpose() Matrix {
	rows, cols := m.Rows(), m.Cols()
	out := make([][]Num, cols)
	for j := 0; j < cols; j++ {
		out[j] = make([]Num, rows)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j][i] = m.rows[i].elems[j]
		}
	}
	outRows := make([]Vector, cols)
	for j := range out {
		outRows[j] = Vector{elems: out[j]}
	}

	return Matrix{rows: outRows}
}

// Matmul computes the standard O(rows·cols·inner) matrix product m×other.
// Fails with ErrDimensionMismatch unless m.Cols() == other.Rows().
func (m Matrix) Matmul(other Matrix) (Matrix, error) {
	if m.Cols() != other.Rows() {
		return Matrix{}, fmt.Errorf("%w: m is %dx%d, other is %dx%d", ErrDimensionMismatch, m.Rows(), m.Cols(), other.Rows(), other.Cols())
	}
	otherT := other.Transpose() // so each output cell is a dot of two rows
	out := make([]Vector, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		cells := make([]Num, other.Cols())
		for j := 0; j < other.Cols(); j++ {
			dot, err := m.rows[i].Dot(otherT.rows[j])
			if err != nil {
				return Matrix{}, err
			}
			cells[j] = dot
		}
		out[i] = Vector{elems: cells}
	}

	return Matrix{rows: out}, nil
}

// Row returns the i-th row. Fails with ErrIndexOutOfRange when i is out
// of bounds.
func (m Matrix) Row(i int) (Vector, error) {
	if i < 0 || i >= m.Rows() {
		return Vector{}, fmt.Errorf("%w: row %d, rows %d", ErrIndexOutOfRange, i, m.Rows())
	}

	return m.rows[i], nil
}

// Col returns the j-th column as a Vector. Fails with ErrIndexOutOfRange
// when j is out of bounds.
func (m Matrix) Col(j int) (Vector, error) {
	if j < 0 || j >= m.Cols() {
		return Vector{}, fmt.Errorf("%w: col %d, cols %d", ErrIndexOutOfRange, j, m.Cols())
	}
	out := make([]Num, m.Rows())
	for i, r := range m.rows {
		out[i] = r.elems[j]
	}

	return Vector{elems: out}, nil
}

// Elem returns m[i][j]. Fails with ErrIndexOutOfRange when either index
// is out of bounds.
func (m Matrix) Elem(i, j int) (Num, error) {
	row, err := m.Row(i)
	if err != nil {
		return Num{}, err
	}

	return row.Elem(j)
}

// RowsCount returns rows as a scalar literal Num, backing the "rows" op.
func (m Matrix) RowsCount() Num {
	return FromLiteral(fmt.Sprintf("%d", m.Rows()))
}

// ColsCount returns cols as a scalar literal Num, backing the "cols" op.
func (m Matrix) ColsCount() Num {
	return FromLiteral(fmt.Sprintf("%d", m.Cols()))
}

// Assign allocates one Dst assignment per cell, named M<index>_r<i>_c<j>,
// grouped into the single Dst line the caller wraps them in.
func (m Matrix) Assign(index int) ([]*tree.Node, Matrix) {
	var assignments []*tree.Node
	outRows := make([]Vector, m.Rows())
	for i, r := range m.rows {
		elems := make([]Num, r.Length())
		for j, e := range r.elems {
			ident := fmt.Sprintf("M%d_r%d_c%d", index, i, j)
			lhs := tree.NewLeaf(tree.KindVariable, ident)
			assignments = append(assignments, tree.NewInner(tree.KindAssignment, lhs, e.Evaluate()))
			elems[j] = FromVariable(ident)
		}
		outRows[i] = Vector{elems: elems}
	}

	return assignments, Matrix{rows: outRows}
}
