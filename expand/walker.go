package expand

import (
	"github.com/katalvlaran/vecc/diag"
	"github.com/katalvlaran/vecc/env"
	"github.com/katalvlaran/vecc/library"
	"github.com/katalvlaran/vecc/tree"
)

// walker carries the state one call to Program threads through the
// mutually recursive expanders and the statement-level handlers: the
// context reporter, an optional library loader (nil if the program never
// uses a `using` statement), and the accumulated Dst lines emitted so
// far. It is an unexported per-call state struct rather than a
// package-level global.
type walker struct {
	reporter *diag.Reporter
	loader   *library.Loader
	lines    []*tree.Node
}

// Program expands every top-level statement of src (a tree.KindSrcProgram
// root) in order, threading the environment through each, and returns
// the resulting Dst program (tree.KindProgram, one tree.KindLine per
// `let`), the final environment, and the first error encountered.
//
// reporter may be nil, in which case a fresh one is used internally and
// errors still carry the statement/expression context it records.
// loader may be nil if the program is known not to contain a
// `using` statement; encountering one without a loader is
// ErrNoLibraryLoader.
func Program(reporter *diag.Reporter, loader *library.Loader, src *tree.Node) (*tree.Node, *env.Environment, error) {
	if reporter == nil {
		reporter = diag.NewReporter()
	}
	w := &walker{reporter: reporter, loader: loader}

	e := env.New()
	var err error
	for _, stmt := range src.Children {
		e, err = w.statement(e, stmt)
		if err != nil {
			return nil, nil, err
		}
	}

	return tree.NewInner(tree.KindProgram, w.lines...), e, nil
}

// emit appends a freshly built Dst line (one or more assignments) to the
// walker's accumulated output.
func (w *walker) emit(assignments []*tree.Node) {
	w.lines = append(w.lines, tree.NewInner(tree.KindLine, assignments...))
}
