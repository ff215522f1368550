package macro

import "sort"

// Three-color DFS state: White (unvisited), Gray (on the current call
// stack), Black (fully explored).
const (
	white = 0
	gray  = 1
	black = 2
)

// DetectRecursion walks the call graph implied by macros (name → the
// macros it calls, via Macro.Calls) and reports the first cycle found —
// a direct self-call or a mutual-recursion cycle through any number of
// intermediate macros. This graph is always directed and never has a
// loops-allowed escape hatch: recursion is banned outright, so any cycle
// at all is an error.
func DetectRecursion(macros map[string]*Macro) error {
	state := make(map[string]int, len(macros))

	// Deterministic iteration order keeps error messages stable across
	// runs.
	names := make([]string, 0, len(macros))
	for name := range macros {
		names = append(names, name)
	}
	sort.Strings(names)

	var path []string
	for _, name := range names {
		if state[name] == white {
			if cyc := visit(name, macros, state, &path); cyc != nil {
				return errRecursionCycle(cyc)
			}
		}
	}

	return nil
}

func visit(name string, macros map[string]*Macro, state map[string]int, path *[]string) []string {
	state[name] = gray
	*path = append(*path, name)

	m, known := macros[name]
	if known {
		for _, callee := range m.Calls() {
			switch state[callee] {
			case white:
				if _, stillKnown := macros[callee]; stillKnown {
					if cyc := visit(callee, macros, state, path); cyc != nil {
						return cyc
					}
				}
			case gray:
				return closeCycle(*path, callee)
			}
		}
	}

	*path = (*path)[:len(*path)-1]
	state[name] = black

	return nil
}

// closeCycle extracts the cycle segment from where callee first appears
// in path through the end, closing it by appending callee again.
func closeCycle(path []string, callee string) []string {
	idx := 0
	for i, n := range path {
		if n == callee {
			idx = i
			break
		}
	}
	cyc := append([]string(nil), path[idx:]...)
	cyc = append(cyc, callee)

	return cyc
}

func errRecursionCycle(cycle []string) error {
	msg := ErrRecursion.Error() + ": "
	for i, name := range cycle {
		if i > 0 {
			msg += " -> "
		}
		msg += name
	}

	return &cycleError{message: msg}
}

// cycleError wraps ErrRecursion so errors.Is(err, macro.ErrRecursion)
// still matches, while the rendered message names the offending cycle.
type cycleError struct {
	message string
}

func (e *cycleError) Error() string { return e.message }

func (e *cycleError) Unwrap() error { return ErrRecursion }
