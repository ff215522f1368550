package format

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/vecc/tree"
)

// LineWidth is the per-output-line soft limit. An assignment that alone
// exceeds LineWidth is still emitted whole, on its own line, and reported
// back to the caller as a warning rather than truncated.
const LineWidth = 70

// binaryOp describes one infix operator's rendering: its precedence and
// its surface token.
type binaryOp struct {
	prec int
	tok  string
}

var binaryOps = map[tree.Kind]binaryOp{
	tree.Kind("exp"): {80, "^"},
	tree.Kind("mul"): {70, "*"},
	tree.Kind("div"): {70, "/"},
	tree.Kind("mod"): {70, "%"},
	tree.Kind("add"): {60, "+"},
	tree.Kind("sub"): {60, "-"},
	tree.Kind("lt"):  {50, "<"},
	tree.Kind("le"):  {50, "<="},
	tree.Kind("gt"):  {50, ">"},
	tree.Kind("ge"):  {50, ">="},
	tree.Kind("eq"):  {40, "=="},
	tree.Kind("ne"):  {40, "!="},
	tree.Kind("or"):  {30, " or "},
	tree.Kind("and"): {20, " and "},
}

// unarySymbols are the two operators rendered as true prefix operators;
// every other unary op (abs, sqrt, sin, cos, …)
// is rendered as a function call "name(operand)", which is always
// self-delimiting and so needs no precedence-driven parenthesization.
var unarySymbols = map[tree.Kind]string{
	tree.Kind("neg"): "-",
	tree.Kind("not"): "!",
}

// unaryPrec is the precedence neg/not's operand is compared against.
const unaryPrec = 100

// Text renders program as Dst surface syntax, greedily packing assignments
// onto output lines within LineWidth, and returns any per-assignment
// overflow warnings.
func Text(program *tree.Node) (string, []string) {
	var rendered []string
	for _, ln := range program.Children {
		for _, assignment := range ln.Children {
			rendered = append(rendered, renderAssignment(assignment))
		}
	}

	return pack(rendered)
}

func renderAssignment(assignment *tree.Node) string {
	lhs, rhs := assignment.Children[0], assignment.Children[1]

	return fmt.Sprintf("%s=%s", lhs.Value, renderExpr(rhs))
}

// pack greedily fills output lines up to LineWidth, space-separating the
// assignments sharing a line; an over-width assignment gets its own line
// plus a warning.
func pack(assignments []string) (string, []string) {
	var b strings.Builder
	var warnings []string
	var current []string
	currentLen := 0

	flush := func() {
		if len(current) == 0 {
			return
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Join(current, " "))
		current = nil
		currentLen = 0
	}

	for _, a := range assignments {
		if len(a) > LineWidth {
			flush()
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(a)
			warnings = append(warnings, fmt.Sprintf("assignment exceeds %d characters: %s", LineWidth, a))
			continue
		}
		next := currentLen + len(a)
		if len(current) > 0 {
			next++ // separating space
		}
		if next > LineWidth {
			flush()
		}
		if len(current) > 0 {
			currentLen++
		}
		current = append(current, a)
		currentLen += len(a)
	}
	flush()

	return b.String(), warnings
}

// renderExpr renders an expression subtree with minimal parenthesization:
// a child is wrapped in parens only when its own precedence would
// otherwise be swallowed by its parent's (lower, or equal on the right,
// since every operator here is left-associative).
func renderExpr(n *tree.Node) string {
	if n.IsLeaf() {
		return n.Value
	}
	if len(n.Children) == 1 {
		if sym, ok := unarySymbols[n.Kind]; ok {
			return sym + renderOperand(n.Children[0], unaryPrec, false)
		}

		return string(n.Kind) + "(" + renderExpr(n.Children[0]) + ")"
	}

	op := binaryOps[n.Kind]
	left := renderOperand(n.Children[0], op.prec, false)
	right := renderOperand(n.Children[1], op.prec, true)

	return left + op.tok + right
}

// renderOperand renders child, parenthesizing it if its precedence is
// lower than parentPrec, or equal while sitting in the right-hand slot
// (left-associativity requires explicit grouping there).
func renderOperand(child *tree.Node, parentPrec int, isRight bool) string {
	prec, has := operandPrecedence(child)
	s := renderExpr(child)
	if has && (prec < parentPrec || (prec == parentPrec && isRight)) {
		return "(" + s + ")"
	}

	return s
}

// operandPrecedence reports child's own precedence, if rendering it
// produces something an outer operator could misparse without grouping.
// Leaves and function-call-style unary ops are always self-delimited.
func operandPrecedence(child *tree.Node) (int, bool) {
	if child.IsLeaf() {
		return 0, false
	}
	if len(child.Children) == 1 {
		if _, ok := unarySymbols[child.Kind]; ok {
			return unaryPrec, true
		}

		return 0, false
	}
	op, ok := binaryOps[child.Kind]
	if !ok {
		return 0, false
	}

	return op.prec, true
}
