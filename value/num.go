package value

import (
	"fmt"

	"github.com/katalvlaran/vecc/tree"
)

// Base unary operators. Most unary calls simply queue one of these; a
// handful of extra unary names are intercepted by Unary and rewritten
// into a composition of these instead of being queued themselves.
const (
	OpNeg    = "neg"
	OpAbs    = "abs"
	OpSqrt   = "sqrt"
	OpSin    = "sin"
	OpCos    = "cos"
	OpTan    = "tan"
	OpArcsin = "arcsin"
	OpArccos = "arccos"
	OpArctan = "arctan"
	OpNot    = "not"
)

// Base binary operators. nand/nor/xor are accepted by Binary but never
// queued: they expand into a composition of and/or/not instead.
const (
	OpAdd = "add"
	OpSub = "sub"
	OpMul = "mul"
	OpDiv = "div"
	OpMod = "mod"
	OpExp = "exp"
	OpLt  = "lt"
	OpLe  = "le"
	OpGt  = "gt"
	OpGe  = "ge"
	OpEq  = "eq"
	OpNe  = "ne"
	OpAnd = "and"
	OpOr  = "or"
)

// queueEntry is one deferred operation in a Num's op-queue: either a unary
// op (Other is the zero Num) or a binary op against Other.
type queueEntry struct {
	op     string
	binary bool
	other  Num
}

// Num is a deferred scalar computation: an initial literal or identifier,
// plus an ordered queue of operations to fold into a Dst expression tree
// at Evaluate time. Num is immutable; Unary and Binary return new values.
type Num struct {
	literal bool
	initial string
	queue   []queueEntry
}

// FromLiteral builds a Num whose initial value is a decimal literal
// (already formatted the way package numeric would render it).
func FromLiteral(literal string) Num {
	return Num{literal: true, initial: literal}
}

// FromVariable builds a Num whose initial value is an identifier — either
// a bound Src variable's allocated Dst name, or an import alias.
func FromVariable(name string) Num {
	return Num{literal: false, initial: name}
}

// Unary returns a new Num with op appended to the queue. The seven names
// csc, sec, cot, arccsc, arcsec, arccot, and ln are intercepted here and
// rewritten to a composition of base ops instead of being queued
// themselves.
func (n Num) Unary(op string) Num {
	switch op {
	case "ln":
		return lnSeries(n)
	case "csc":
		return reciprocal(n.Unary(OpSin))
	case "sec":
		return reciprocal(n.Unary(OpCos))
	case "cot":
		return reciprocal(n.Unary(OpTan))
	case "arccsc":
		return reciprocal(n.Unary(OpArcsin))
	case "arcsec":
		return reciprocal(n.Unary(OpArccos))
	case "arccot":
		return reciprocal(n.Unary(OpArctan))
	default:
		return n.queueUnary(op)
	}
}

func (n Num) queueUnary(op string) Num {
	next := n.clone()
	next.queue = append(next.queue, queueEntry{op: op})

	return next
}

// Binary returns a new Num with op appended to the queue against other.
// nand, nor, and xor are intercepted and rewritten to a composition of
// and/or/not instead of being queued themselves.
func (n Num) Binary(op string, other Num) Num {
	switch op {
	case "nand":
		return n.Binary(OpAnd, other).Unary(OpNot)
	case "nor":
		return n.Binary(OpOr, other).Unary(OpNot)
	case "xor":
		left := n.Binary(OpOr, other)
		right := n.Binary(OpAnd, other).Unary(OpNot)
		return left.Binary(OpAnd, right)
	default:
		return n.queueBinary(op, other)
	}
}

func (n Num) queueBinary(op string, other Num) Num {
	next := n.clone()
	next.queue = append(next.queue, queueEntry{op: op, binary: true, other: other})

	return next
}

// clone returns a Num sharing the same initial value but with its own
// queue backing array, so appends never alias a sibling Num's queue.
func (n Num) clone() Num {
	q := make([]queueEntry, len(n.queue), len(n.queue)+1)
	copy(q, n.queue)

	return Num{literal: n.literal, initial: n.initial, queue: q}
}

// Evaluate folds n's queue into a Dst expression tree: the leaf is a
// number or variable node built from initial, and each queue entry wraps
// the tree built so far under an interior node named for its operator.
// A binary entry's Other is folded recursively first.
func (n Num) Evaluate() *tree.Node {
	var cur *tree.Node
	if n.literal {
		cur = tree.NewLeaf(tree.KindNumber, n.initial)
	} else {
		cur = tree.NewLeaf(tree.KindVariable, n.initial)
	}
	for _, e := range n.queue {
		if e.binary {
			cur = tree.NewInner(tree.Kind(e.op), cur, e.other.Evaluate())
		} else {
			cur = tree.NewInner(tree.Kind(e.op), cur)
		}
	}

	return cur
}

// Assign allocates the scalar intermediate identifier N<index>, builds
// the assignment "N<index> = Evaluate()", and returns it alongside a
// fresh Num whose initial is that identifier — further uses of the
// returned value reference the stored intermediate rather than
// regrowing n's queue.
func (n Num) Assign(index int) (*tree.Node, Num) {
	ident := fmt.Sprintf("N%d", index)
	lhs := tree.NewLeaf(tree.KindVariable, ident)
	assignment := tree.NewInner(tree.KindAssignment, lhs, n.Evaluate())

	return assignment, FromVariable(ident)
}

// reciprocal returns the Num 1 / n. It is the composition every
// csc/sec/cot/arccsc/arcsec/arccot rewrite bottoms out in: each is a
// reciprocal of sin/cos/tan/arcsin/arccos/arctan respectively.
func reciprocal(n Num) Num {
	return FromLiteral("1").Binary(OpDiv, n)
}

// lnSeries builds ln(z) ≈ 2 · Σ_{k=0..3} (1/(2k+1)) · ((z−1)/(z+1))^(2k+1)
// entirely out of Num.Unary/Binary compositions. The coefficients
// 1/(2k+1) are left as symbolic divisions (1 div (2k+1)) so that the
// reduce pass's constant folding — not this package — performs the
// actual decimal rounding.
func lnSeries(z Num) Num {
	ratio := z.Binary(OpSub, FromLiteral("1")).Binary(OpDiv, z.Binary(OpAdd, FromLiteral("1")))

	sum := FromLiteral("0")
	for k := 0; k <= 3; k++ {
		power := ratio
		for i := 0; i < 2*k; i++ {
			power = power.Binary(OpMul, ratio)
		}
		coeff := FromLiteral("1").Binary(OpDiv, FromLiteral(fmt.Sprintf("%d", 2*k+1)))
		term := power.Binary(OpMul, coeff)
		sum = sum.Binary(OpAdd, term)
	}

	return sum.Binary(OpMul, FromLiteral("2"))
}
