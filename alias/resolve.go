package alias

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/vecc/env"
	"github.com/katalvlaran/vecc/tree"
	"github.com/katalvlaran/vecc/value"
)

// Resolve rewrites every compiler-generated identifier in root to the
// user-chosen name imports/exports ask for, mutating root's variable
// leaves in place (it is the same *tree.Node tree, returned for call-site
// convenience) and returning the resolved imported and exported sets.
func Resolve(e *env.Environment, root *tree.Node) (*tree.Node, map[string]struct{}, map[string]struct{}, error) {
	imported := rewriteImports(root, e.Imports())

	exported, err := rewriteExports(root, e)
	if err != nil {
		return nil, nil, nil, err
	}

	return root, imported, exported, nil
}

// rewriteImports renames every variable leaf equal to an import alias to
// that import's target, which joins the imported set.
func rewriteImports(root *tree.Node, imports map[string]string) map[string]struct{} {
	imported := make(map[string]struct{})
	root.Walk(func(n *tree.Node) bool {
		if n.Kind != tree.KindVariable {
			return true
		}
		if target, ok := imports[n.Value]; ok {
			n.Reassign(target)
			imported[target] = struct{}{}
		}
		return true
	})

	return imported
}

// rewriteExports rewrites exported identifiers: for every (alias, target)
// export, the allocated compiler prefix for alias's bound variable
// (N<index>, V<index>, or M<index>) is computed, every variable leaf
// carrying that prefix (exactly, or followed by a `_e<i>`/`_r<i>_c<j>`
// suffix) is rewritten to target plus that same suffix, and the rewritten
// name joins the exported set.
func rewriteExports(root *tree.Node, e *env.Environment) (map[string]struct{}, error) {
	exported := make(map[string]struct{})
	for aliasName, target := range e.Exports() {
		b, ok := e.Lookup(aliasName)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrExportTargetUnresolved, aliasName)
		}
		prefix := compilerPrefix(b.Sort, b.Index)

		root.Walk(func(n *tree.Node) bool {
			if n.Kind != tree.KindVariable {
				return true
			}
			suffix, ok := matchPrefix(n.Value, prefix)
			if !ok {
				return true
			}
			newName := target + suffix
			n.Reassign(newName)
			exported[newName] = struct{}{}
			return true
		})
	}

	return exported, nil
}

// compilerPrefix names the allocation prefix for a binding of the given
// sort and index, per the scheme adopted in package value's Assign
// methods: N<index> (scalar), V<index> (vector, callers append
// `_e<i>`), M<index> (matrix, callers append `_r<i>_c<j>`).
func compilerPrefix(sort value.Sort, index int) string {
	switch sort {
	case value.SortVector:
		return fmt.Sprintf("V%d", index)
	case value.SortMatrix:
		return fmt.Sprintf("M%d", index)
	default:
		return fmt.Sprintf("N%d", index)
	}
}

// matchPrefix reports whether name is exactly prefix (the scalar case)
// or prefix followed by an element/cell suffix beginning with "_" (the
// vector/matrix case), returning that suffix (empty for the exact-match
// case).
func matchPrefix(name, prefix string) (string, bool) {
	if name == prefix {
		return "", true
	}
	if rest, ok := strings.CutPrefix(name, prefix); ok && strings.HasPrefix(rest, "_") {
		return rest, true
	}

	return "", false
}
