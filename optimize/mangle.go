package optimize

import "github.com/katalvlaran/vecc/tree"

// Mangle renames every variable leaf not named in reserved (the resolved
// import/export names alias.Resolve produced) to a fresh identifier drawn
// from a deterministic lowercase stream — "a", "b", ..., "z", "aa", "ab",
// ... — with every occurrence of the same original name mapped to the
// same fresh name. It mutates program in place and returns the
// old-to-new mapping it applied.
//
// The identifier stream is a base-26 lowercase letter sequence, the same
// shape spreadsheet column names use; a candidate colliding with a
// reserved name is skipped rather than reused.
func Mangle(program *tree.Node, reserved map[string]struct{}) map[string]string {
	memo := make(map[string]string)
	next := 0
	program.Walk(func(n *tree.Node) bool {
		if n.Kind != tree.KindVariable {
			return true
		}
		if _, keep := reserved[n.Value]; keep {
			return true
		}
		newName, seen := memo[n.Value]
		if !seen {
			newName, next = nextFreshName(next, reserved)
			memo[n.Value] = newName
		}
		n.Reassign(newName)

		return true
	})

	return memo
}

// nextFreshName draws identifiers from the stream starting at idx until it
// finds one not in reserved, returning that name and the stream position
// to resume from.
func nextFreshName(idx int, reserved map[string]struct{}) (string, int) {
	for {
		candidate := excelColumnLower(idx)
		idx++
		if _, taken := reserved[candidate]; !taken {
			return candidate, idx
		}
	}
}

// excelColumnLower renders idx (zero-based) as a lowercase spreadsheet-style
// column name: 0 -> "a", 25 -> "z", 26 -> "aa".
func excelColumnLower(idx int) string {
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('a'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
