package value

import (
	"fmt"

	"github.com/katalvlaran/vecc/tree"
)

// Vector is an ordered sequence of Num. Value-semantic: every operation
// returns a new Vector. Length is always >= 1 for a Vector actually bound
// to an Src variable; NewVector itself accepts an empty slice so that
// intermediate construction (e.g. while expanding a literal) can build up
// incrementally, but Reduce rejects an empty Vector.
type Vector struct {
	elems []Num
}

// NewVector builds a Vector from elems, copying the slice so the caller's
// backing array can't alias it.
func NewVector(elems []Num) Vector {
	cp := make([]Num, len(elems))
	copy(cp, elems)

	return Vector{elems: cp}
}

// Length returns the number of elements.
func (v Vector) Length() int {
	return len(v.elems)
}

// Elems returns a defensive copy of v's elements.
func (v Vector) Elems() []Num {
	cp := make([]Num, len(v.elems))
	copy(cp, v.elems)

	return cp
}

// Map applies a unary scalar op pointwise: result[i] = op(v[i]).
func (v Vector) Map(op string) Vector {
	out := make([]Num, len(v.elems))
	for i, e := range v.elems {
		out[i] = e.Unary(op)
	}

	return Vector{elems: out}
}

// Premap applies a binary scalar op with n as the right operand pointwise:
// result[i] = op(v[i], n).
func (v Vector) Premap(op string, n Num) Vector {
	out := make([]Num, len(v.elems))
	for i, e := range v.elems {
		out[i] = e.Binary(op, n)
	}

	return Vector{elems: out}
}

// Postmap applies a binary scalar op with n as the left operand pointwise:
// result[i] = op(n, v[i]).
func (v Vector) Postmap(n Num, op string) Vector {
	out := make([]Num, len(v.elems))
	for i, e := range v.elems {
		out[i] = n.Binary(op, e)
	}

	return Vector{elems: out}
}

// Apply (vecbinary) combines v and u pointwise under op: result[i] =
// op(v[i], u[i]). Fails with ErrDimensionMismatch when lengths differ.
func (v Vector) Apply(op string, u Vector) (Vector, error) {
	if v.Length() != u.Length() {
		return Vector{}, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, v.Length(), u.Length())
	}
	out := make([]Num, v.Length())
	for i := range v.elems {
		out[i] = v.elems[i].Binary(op, u.elems[i])
	}

	return Vector{elems: out}, nil
}

// Concat returns v followed by u.
func (v Vector) Concat(u Vector) Vector {
	out := make([]Num, 0, v.Length()+u.Length())
	out = append(out, v.elems...)
	out = append(out, u.elems...)

	return Vector{elems: out}
}

// Reverse returns v with its elements in reverse order.
func (v Vector) Reverse() Vector {
	out := make([]Num, v.Length())
	for i, e := range v.elems {
		out[len(out)-1-i] = e
	}

	return Vector{elems: out}
}

// Dot returns Σ v[i]·u[i]. Fails with ErrDimensionMismatch when lengths
// differ.
func (v Vector) Dot(u Vector) (Num, error) {
	if v.Length() != u.Length() {
		return Num{}, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, v.Length(), u.Length())
	}
	if v.Length() == 0 {
		return FromLiteral("0"), nil
	}
	sum := v.elems[0].Binary(OpMul, u.elems[0])
	for i := 1; i < v.Length(); i++ {
		sum = sum.Binary(OpAdd, v.elems[i].Binary(OpMul, u.elems[i]))
	}

	return sum, nil
}

// Len returns v's length as a scalar literal Num.
func (v Vector) Len() Num {
	return FromLiteral(fmt.Sprintf("%d", v.Length()))
}

// Reduce left-folds v's elements under op: ((e0 op e1) op e2) op …
// Fails with ErrEmptyVector on a zero-length vector.
func (v Vector) Reduce(op string) (Num, error) {
	if v.Length() == 0 {
		return Num{}, ErrEmptyVector
	}
	acc := v.elems[0]
	for i := 1; i < v.Length(); i++ {
		acc = acc.Binary(op, v.elems[i])
	}

	return acc, nil
}

// Elem returns v[i]. Fails with ErrIndexOutOfRange when i is out of
// bounds.
func (v Vector) Elem(i int) (Num, error) {
	if i < 0 || i >= v.Length() {
		return Num{}, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, v.Length())
	}

	return v.elems[i], nil
}

// Assign allocates one Dst assignment per element, named V<index>_e<i>,
// grouped into the single Dst line the caller (package expand) wraps
// them in. It returns the assignments and a Vector of variable-Nums
// referencing the newly stored intermediates.
func (v Vector) Assign(index int) ([]*tree.Node, Vector) {
	assignments := make([]*tree.Node, v.Length())
	elems := make([]Num, v.Length())
	for i, e := range v.elems {
		ident := fmt.Sprintf("V%d_e%d", index, i)
		lhs := tree.NewLeaf(tree.KindVariable, ident)
		assignments[i] = tree.NewInner(tree.KindAssignment, lhs, e.Evaluate())
		elems[i] = FromVariable(ident)
	}

	return assignments, Vector{elems: elems}
}
