package optimize

import (
	"fmt"

	"github.com/katalvlaran/vecc/numeric"
	"github.com/katalvlaran/vecc/tree"
)

// binaryOpKinds lists the Dst binary operator Kinds the fold phase below
// evaluates, matching package numeric's supported operator set exactly
// so a node's Kind can be passed straight through to numeric.Binary.
var binaryOpKinds = map[tree.Kind]numeric.Op{
	tree.Kind(numeric.OpAdd): numeric.OpAdd,
	tree.Kind(numeric.OpSub): numeric.OpSub,
	tree.Kind(numeric.OpMul): numeric.OpMul,
	tree.Kind(numeric.OpDiv): numeric.OpDiv,
	tree.Kind(numeric.OpMod): numeric.OpMod,
	tree.Kind(numeric.OpExp): numeric.OpExp,
	tree.Kind(numeric.OpLt):  numeric.OpLt,
	tree.Kind(numeric.OpLe):  numeric.OpLe,
	tree.Kind(numeric.OpGt):  numeric.OpGt,
	tree.Kind(numeric.OpGe):  numeric.OpGe,
	tree.Kind(numeric.OpEq):  numeric.OpEq,
	tree.Kind(numeric.OpNe):  numeric.OpNe,
	tree.Kind(numeric.OpAnd): numeric.OpAnd,
	tree.Kind(numeric.OpOr):  numeric.OpOr,
}

// ReducePass alternates propagation and folding over program in place
// until neither phase changes anything. Every successful rewrite either
// renames a variable leaf to the name it was assigned from, replaces a
// variable leaf with a variable-free expression (one fewer variable
// reference), or replaces a binary node with an operand or a literal
// (one fewer binary node).
func ReducePass(program *tree.Node) error {
	for {
		rhsByName, lhsSet := indexAssignments(program)
		changedProp := propagate(program, rhsByName, lhsSet)
		changedFold, err := fold(program)
		if err != nil {
			return err
		}
		if !changedProp && !changedFold {
			return nil
		}
	}
}

// indexAssignments collects, for the current shape of program, every
// assignment's LHS name mapped to its RHS subtree, plus the set of LHS
// node pointers themselves (propagation must never rewrite a variable's
// own defining occurrence).
func indexAssignments(program *tree.Node) (map[string]*tree.Node, map[*tree.Node]struct{}) {
	rhsByName := make(map[string]*tree.Node)
	lhsSet := make(map[*tree.Node]struct{})
	for _, line := range program.Children {
		for _, assignment := range line.Children {
			lhs, rhs := assignment.Children[0], assignment.Children[1]
			lhsSet[lhs] = struct{}{}
			rhsByName[lhs.Value] = rhs
		}
	}

	return rhsByName, lhsSet
}

// propagate implements the propagation phase: every variable occurrence
// that is not itself an assignment's LHS is replaced by a copy of its
// binding's RHS when that RHS is either a bare variable (a rename) or a
// variable-free expression (a constant, substituted whole so folding can
// reach it next phase).
func propagate(program *tree.Node, rhsByName map[string]*tree.Node, lhsSet map[*tree.Node]struct{}) bool {
	changed := false
	program.Walk(func(n *tree.Node) bool {
		if n.Kind != tree.KindVariable {
			return true
		}
		if _, isLHS := lhsSet[n]; isLHS {
			return true
		}
		rhs, bound := rhsByName[n.Value]
		if !bound {
			return true // external/imported name: nothing to propagate
		}
		if rhs.Kind == tree.KindVariable {
			if n.Value != rhs.Value {
				n.Reassign(rhs.Value)
				changed = true
			}
			return true
		}
		if n.Parent != nil && !containsVariable(rhs) {
			if err := n.Parent.ReplaceChildPtr(n, rhs.Clone()); err == nil {
				changed = true
			}
		}
		return true
	})

	return changed
}

// containsVariable reports whether any descendant of n (including n
// itself) is a KindVariable leaf.
func containsVariable(n *tree.Node) bool {
	found := false
	n.Walk(func(c *tree.Node) bool {
		if c.Kind == tree.KindVariable {
			found = true
			return false
		}
		return true
	})

	return found
}

// fold implements the folding phase: every binary expression node is
// simplified by an algebraic identity when one applies, or else evaluated
// outright when both operands are already numeric literals.
func fold(program *tree.Node) (bool, error) {
	changed := false
	var foldErr error
	program.Walk(func(n *tree.Node) bool {
		if foldErr != nil {
			return false
		}
		op, isBinary := binaryOpKinds[n.Kind]
		if !isBinary || len(n.Children) != 2 || n.Parent == nil {
			return true
		}
		left, right := n.Children[0], n.Children[1]

		if replacement, ok := identity(op, left, right); ok {
			if err := n.Parent.ReplaceChildPtr(n, replacement); err == nil {
				changed = true
			}
			return false
		}

		if left.Kind == tree.KindNumber && right.Kind == tree.KindNumber {
			result, err := evalLiterals(op, left.Value, right.Value)
			if err != nil {
				foldErr = err
				return false
			}
			if err := n.Parent.ReplaceChildPtr(n, tree.NewLeaf(tree.KindNumber, result)); err == nil {
				changed = true
			}
			return false
		}

		return true
	})

	return changed, foldErr
}

// isZero and isOne report whether n is the numeric literal "0"/"1".
func isZero(n *tree.Node) bool { return n.Kind == tree.KindNumber && n.Value == "0" }
func isOne(n *tree.Node) bool  { return n.Kind == tree.KindNumber && n.Value == "1" }

// identity applies algebraic simplifications, returning the node that
// should take op(left, right)'s place. Nodes reused from the
// existing tree (left or right themselves) are returned as-is; ReplaceChildPtr
// re-parents them, so no clone is needed since the replaced node is discarded.
//
// x^0 and 1^x fold to 1 unconditionally: the resolved Open Question defines
// 0^0 as 1 (package numeric's power evaluates a zero integer exponent to 1
// regardless of base), so no x≠0/x≠0 guard is needed for those two. 0^x → 0
// only applies when x is a nonzero literal, since the identity does not hold
// at x = 0 and a non-literal x's runtime value is not known here.
func identity(op numeric.Op, left, right *tree.Node) (*tree.Node, bool) {
	switch op {
	case numeric.OpAdd:
		if isZero(left) {
			return right, true
		}
		if isZero(right) {
			return left, true
		}
	case numeric.OpSub:
		if isZero(right) {
			return left, true
		}
	case numeric.OpMul:
		if isZero(left) {
			return left, true
		}
		if isZero(right) {
			return right, true
		}
		if isOne(left) {
			return right, true
		}
		if isOne(right) {
			return left, true
		}
	case numeric.OpDiv:
		if isOne(right) {
			return left, true
		}
	case numeric.OpExp:
		if right.Kind == tree.KindNumber && right.Value == "0" {
			return tree.NewLeaf(tree.KindNumber, "1"), true
		}
		if isOne(left) {
			return tree.NewLeaf(tree.KindNumber, "1"), true
		}
		if isOne(right) {
			return left, true
		}
		if isZero(left) && right.Kind == tree.KindNumber && right.Value != "0" {
			return tree.NewLeaf(tree.KindNumber, "0"), true
		}
	}

	return nil, false
}

// evalLiterals parses a and b as decimals and evaluates op over them via
// package numeric, formatting the result back into a Dst number literal.
func evalLiterals(op numeric.Op, a, b string) (string, error) {
	da, err := numeric.Parse(a)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFold, err)
	}
	db, err := numeric.Parse(b)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFold, err)
	}
	result, err := numeric.Binary(op, da, db)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFold, err)
	}

	return numeric.Format(result), nil
}
