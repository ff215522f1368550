package diag

import "github.com/katalvlaran/vecc/tree"

// Reporter tracks the Src statement and sub-expression currently being
// expanded so that errors raised from deep within the expansion engine
// can be annotated without threading two extra parameters through every
// call. One Reporter is created per compilation (package compiler) and
// passed by pointer into package expand; it is never shared across
// concurrent compilations — the environment and its supporting state are
// single-owner per compilation.
type Reporter struct {
	statement  *tree.Node
	expression *tree.Node
}

// NewReporter returns an empty Reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// EnterStatement records stmt as the current top-level statement,
// returning a restore function the caller defers to pop back to the
// previous statement once the handler returns.
func (r *Reporter) EnterStatement(stmt *tree.Node) func() {
	prev := r.statement
	r.statement = stmt

	return func() { r.statement = prev }
}

// EnterExpression records expr as the current sub-expression, returning
// a restore function, mirroring EnterStatement.
func (r *Reporter) EnterExpression(expr *tree.Node) func() {
	prev := r.expression
	r.expression = expr

	return func() { r.expression = prev }
}

// Wrap builds an *Error with the reporter's current statement/expression
// context attached.
func (r *Reporter) Wrap(category Category, cause error, format string, args ...interface{}) *Error {
	e := New(category, cause, format, args...)
	e.Statement = r.statement
	e.Expression = r.expression

	return e
}
