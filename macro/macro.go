package macro

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vecc/tree"
	"github.com/katalvlaran/vecc/value"
)

// Sentinel errors for macro construction.
var (
	// ErrDuplicateParam indicates two parameters share a name.
	ErrDuplicateParam = errors.New("macro: duplicate parameter name")

	// ErrUnboundVariable indicates a free variable in the body that is not
	// among the parameters.
	ErrUnboundVariable = errors.New("macro: unbound variable in body")

	// ErrRecursion indicates a macro call graph cycle (direct or mutual).
	ErrRecursion = errors.New("macro: recursive macro definition")

	// ErrArgCount indicates a call site passed the wrong number of
	// arguments.
	ErrArgCount = errors.New("macro: wrong argument count")

	// ErrArgSort indicates a call-site argument's sort does not match the
	// corresponding parameter's declared sort.
	ErrArgSort = errors.New("macro: argument sort mismatch")
)

// Param is one (sort, name) declaration in a macro's parameter list.
type Param struct {
	Name string
	Sort value.Sort
}

// Macro is a definition: name, parameters, return sort, and body.
type Macro struct {
	Name       string
	Params     []Param
	ReturnSort value.Sort
	Body       *tree.Node
}

// New constructs a Macro, validating unique parameter names and a closed
// body (every KindVariableRef in Body names a parameter).
func New(name string, params []Param, returnSort value.Sort, body *tree.Node) (*Macro, error) {
	seen := make(map[string]struct{}, len(params))
	bound := make(map[string]struct{}, len(params))
	for _, p := range params {
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("%w: %q in macro %q", ErrDuplicateParam, p.Name, name)
		}
		seen[p.Name] = struct{}{}
		bound[p.Name] = struct{}{}
	}

	var unbound string
	body.Walk(func(n *tree.Node) bool {
		if n.Kind == tree.KindVariableRef {
			if _, ok := bound[n.Value]; !ok {
				unbound = n.Value
			}
		}
		return true
	})
	if unbound != "" {
		return nil, fmt.Errorf("%w: %q in macro %q", ErrUnboundVariable, unbound, name)
	}

	return &Macro{Name: name, Params: params, ReturnSort: returnSort, Body: body}, nil
}

// Calls returns the set of macro names directly invoked (KindMacroCall)
// anywhere in m's body, for call-graph construction.
func (m *Macro) Calls() []string {
	var calls []string
	m.Body.Walk(func(n *tree.Node) bool {
		if n.Kind == tree.KindMacroCall {
			calls = append(calls, n.Value)
		}
		return true
	})

	return calls
}

// Substitute returns a detached clone of m.Body with every KindVariableRef
// leaf naming a parameter replaced by the corresponding argument subtree
// (also cloned, so the caller's argument tree is never aliased into two
// places). This is call-by-name substitution: arguments are not evaluated
// first, only textually substituted; the caller (package expand)
// re-expands the result under the current environment.
func (m *Macro) Substitute(args map[string]*tree.Node) *tree.Node {
	return substitute(m.Body, args)
}

func substitute(n *tree.Node, args map[string]*tree.Node) *tree.Node {
	if n.Kind == tree.KindVariableRef {
		if arg, ok := args[n.Value]; ok {
			return arg.Clone()
		}

		return n.Clone()
	}
	clone := &tree.Node{Kind: n.Kind, Value: n.Value}
	if len(n.Children) > 0 {
		clone.Children = make([]*tree.Node, len(n.Children))
		for i, c := range n.Children {
			cc := substitute(c, args)
			cc.Parent = clone
			clone.Children[i] = cc
		}
	}

	return clone
}
