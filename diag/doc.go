// Package diag implements the context reporter and the single uniform
// error kind it attaches context to.
//
// Every subsystem returns *diag.Error upward; there is no silent recovery
// and no partial output. Rather than a process-global slot, a
// *diag.Reporter is threaded explicitly through the expansion engine's
// traversal (package expand) and the compiler's top-level driver (package
// compiler): each statement-level handler and each of the three
// sort-specialized expanders calls Reporter.EnterStatement or
// Reporter.EnterExpression on entry, so that an
// error raised deep in a nested expression carries the statement and
// expression that were being processed when it occurred.
package diag
