package optimize

import "github.com/katalvlaran/vecc/tree"

// walker accumulates the liveness closure over the Dst assignment
// dependency graph: a FIFO queue plus a visited set, the standard shape
// for a breadth-first reachability search with no weights, depth limit,
// or cancellation to honor.
type walker struct {
	rhsByName map[string]*tree.Node
	queue     []string
	live      map[string]struct{}
}

// DeadCodeEliminate removes every assignment whose identifier is not
// reachable from roots (the resolved export targets) by following
// variable references in RHS expressions, and drops any line left with
// no assignments, mutating program in place.
func DeadCodeEliminate(program *tree.Node, roots map[string]struct{}) {
	rhsByName, _ := indexAssignments(program)
	w := &walker{rhsByName: rhsByName, live: make(map[string]struct{}, len(rhsByName))}
	for name := range roots {
		w.enqueue(name)
	}
	w.loop()
	removeDead(program, w.live)
}

func (w *walker) enqueue(name string) {
	if _, seen := w.live[name]; seen {
		return
	}
	w.live[name] = struct{}{}
	w.queue = append(w.queue, name)
}

// loop drains the queue, following each live name to the variables its
// assignment's RHS references (names with no assignment are externals:
// they are live but contribute no further neighbors).
func (w *walker) loop() {
	for len(w.queue) > 0 {
		name := w.queue[0]
		w.queue = w.queue[1:]
		rhs, known := w.rhsByName[name]
		if !known {
			continue
		}
		rhs.Walk(func(n *tree.Node) bool {
			if n.Kind == tree.KindVariable {
				w.enqueue(n.Value)
			}
			return true
		})
	}
}

// removeDead drops every assignment whose LHS is not in live, then drops
// every line left with no assignments, rewriting program's Children in
// place.
func removeDead(program *tree.Node, live map[string]struct{}) {
	keptLines := program.Children[:0]
	for _, ln := range program.Children {
		keptAssignments := ln.Children[:0]
		for _, assignment := range ln.Children {
			lhs := assignment.Children[0]
			if _, ok := live[lhs.Value]; ok {
				keptAssignments = append(keptAssignments, assignment)
			}
		}
		ln.Children = keptAssignments
		if len(ln.Children) > 0 {
			keptLines = append(keptLines, ln)
		}
	}
	program.Children = keptLines
}
