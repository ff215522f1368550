// Package numeric implements the decimal evaluator: the four-decimal-place
// rounded arithmetic used by the reduce pass's constant
// folding (package optimize) to collapse a Dst expression whose leaves are
// all number literals into a single number literal.
//
// Values are represented with github.com/shopspring/decimal, which carries
// enough precision to apply one arithmetic step without the rounding drift
// float64 would introduce; every result is then rounded to four fractional
// decimal digits (RoundPolicy) before being handed back to the caller, and
// an integer-valued result is serialized without a decimal point.
package numeric
