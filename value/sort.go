package value

// Sort is a three-case tagged variant in place of string-matched sort
// tags: every Src value is exactly one of scalar, vector, or matrix.
type Sort int

// The three sorts.
const (
	SortScalar Sort = iota
	SortVector
	SortMatrix
)

// String renders a Sort the way diagnostics and the Src surface syntax
// name it ("let number|vector|matrix").
func (s Sort) String() string {
	switch s {
	case SortScalar:
		return "number"
	case SortVector:
		return "vector"
	case SortMatrix:
		return "matrix"
	default:
		return "unknown"
	}
}
