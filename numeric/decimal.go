package numeric

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// RoundPolicy is the number of fractional decimal digits every binary
// result is rounded to.
const RoundPolicy = 4

// Sentinel errors surfaced by Binary. The caller (package optimize's
// reduce pass) reports any of them as its ErrFold and aborts the pass.
var (
	// ErrDivByZero is returned by the "div" and "mod" operators when the
	// right operand is exactly zero.
	ErrDivByZero = errors.New("numeric: division by zero")

	// ErrUnknownOp is returned when Binary is asked to evaluate an
	// operator name outside the supported set.
	ErrUnknownOp = errors.New("numeric: unknown binary operator")

	// ErrOverflow is returned when exponentiation produces a
	// non-finite (±Inf/NaN) result.
	ErrOverflow = errors.New("numeric: arithmetic overflow")

	// ErrMalformedLiteral is returned by Parse when a string does not
	// denote a decimal number.
	ErrMalformedLiteral = errors.New("numeric: malformed number literal")
)

// Op enumerates the binary operators the decimal evaluator supports,
// matching the Dst operator names exactly so that optimize.ReducePass
// can pass a Dst node's Kind straight through.
type Op string

// Supported binary operators.
const (
	OpAdd Op = "add"
	OpSub Op = "sub"
	OpMul Op = "mul"
	OpDiv Op = "div"
	OpMod Op = "mod"
	OpExp Op = "exp"
	OpLt  Op = "lt"
	OpLe  Op = "le"
	OpGt  Op = "gt"
	OpGe  Op = "ge"
	OpEq  Op = "eq"
	OpNe  Op = "ne"
	OpAnd Op = "and"
	OpOr  Op = "or"
)

var trueValue = decimal.NewFromInt(1)
var falseValue = decimal.NewFromInt(0)

// Parse converts a Dst number literal into a decimal.Decimal.
func Parse(literal string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(literal)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrMalformedLiteral, literal)
	}

	return d, nil
}

// Format renders d as a Dst number literal: integer-valued results have no
// decimal point, everything else is rendered to RoundPolicy digits with
// trailing zeros trimmed.
func Format(d decimal.Decimal) string {
	d = d.Round(RoundPolicy)
	if d.IsInteger() {
		return d.StringFixed(0)
	}

	return d.String()
}

// isTruthy treats any nonzero decimal as Boolean true.
func isTruthy(d decimal.Decimal) bool {
	return !d.IsZero()
}

func boolDecimal(b bool) decimal.Decimal {
	if b {
		return trueValue
	}

	return falseValue
}

// Binary evaluates a op b and rounds the result to RoundPolicy fractional
// digits. Comparison and Boolean operators always return exactly 0 or 1.
func Binary(op Op, a, b decimal.Decimal) (decimal.Decimal, error) {
	switch op {
	case OpAdd:
		return a.Add(b).Round(RoundPolicy), nil
	case OpSub:
		return a.Sub(b).Round(RoundPolicy), nil
	case OpMul:
		return a.Mul(b).Round(RoundPolicy), nil
	case OpDiv:
		if b.IsZero() {
			return decimal.Decimal{}, ErrDivByZero
		}
		return a.DivRound(b, RoundPolicy), nil
	case OpMod:
		if b.IsZero() {
			return decimal.Decimal{}, ErrDivByZero
		}
		return a.Mod(b).Round(RoundPolicy), nil
	case OpExp:
		return power(a, b)
	case OpLt:
		return boolDecimal(a.LessThan(b)), nil
	case OpLe:
		return boolDecimal(a.LessThanOrEqual(b)), nil
	case OpGt:
		return boolDecimal(a.GreaterThan(b)), nil
	case OpGe:
		return boolDecimal(a.GreaterThanOrEqual(b)), nil
	case OpEq:
		return boolDecimal(a.Equal(b)), nil
	case OpNe:
		return boolDecimal(!a.Equal(b)), nil
	case OpAnd:
		return boolDecimal(isTruthy(a) && isTruthy(b)), nil
	case OpOr:
		return boolDecimal(isTruthy(a) || isTruthy(b)), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}
}

// power computes a^b. Integer exponents are evaluated by repeated decimal
// multiplication to stay exact; non-integer exponents fall back to
// float64 math.Pow, which is the one place this evaluator tolerates
// binary-floating-point rounding: fractional exponents need not be exact,
// only produce a value or report an overflow.
func power(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsInteger() {
		exp := b.IntPart()
		if exp < 0 {
			if a.IsZero() {
				return decimal.Decimal{}, ErrDivByZero
			}
			base, err := power(a, decimal.NewFromInt(-exp))
			if err != nil {
				return decimal.Decimal{}, err
			}
			return decimal.NewFromInt(1).DivRound(base, RoundPolicy), nil
		}
		result := decimal.NewFromInt(1)
		for i := int64(0); i < exp; i++ {
			result = result.Mul(a)
		}
		return result.Round(RoundPolicy), nil
	}

	af, _ := a.Float64()
	bf, _ := b.Float64()
	res := math.Pow(af, bf)
	if math.IsNaN(res) || math.IsInf(res, 0) {
		return decimal.Decimal{}, ErrOverflow
	}

	return decimal.NewFromFloat(res).Round(RoundPolicy), nil
}
