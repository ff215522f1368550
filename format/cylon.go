package format

import (
	"encoding/json"

	"github.com/katalvlaran/vecc/tree"
)

// CylonVersion is the schema version stamped into every --cylon document.
const CylonVersion = "1"

// Cylon renders program as a JSON AST: a versioned document of nested
// line/statement/expression nodes, one entry per assignment.
func Cylon(program *tree.Node) ([]byte, error) {
	doc := map[string]interface{}{
		"version": CylonVersion,
		"program": map[string]interface{}{
			"type":  "program",
			"lines": cylonLines(program),
		},
	}

	return json.MarshalIndent(doc, "", "  ")
}

func cylonLines(program *tree.Node) []interface{} {
	lines := make([]interface{}, 0, len(program.Children))
	for _, ln := range program.Children {
		code := make([]interface{}, 0, len(ln.Children))
		for _, assignment := range ln.Children {
			code = append(code, cylonAssignment(assignment))
		}
		lines = append(lines, map[string]interface{}{
			"type": "line",
			"code": code,
		})
	}

	return lines
}

func cylonAssignment(assignment *tree.Node) map[string]interface{} {
	lhs, rhs := assignment.Children[0], assignment.Children[1]

	return map[string]interface{}{
		"type":       "statement::assignment",
		"identifier": lhs.Value,
		"operator":   "=",
		"value":      cylonExpr(rhs),
	}
}

func cylonExpr(n *tree.Node) map[string]interface{} {
	if n.IsLeaf() {
		if n.Kind == tree.KindNumber {
			return map[string]interface{}{
				"type":  "expression::number",
				"value": n.Value,
			}
		}

		return map[string]interface{}{
			"type": "expression::identifier",
			"name": n.Value,
		}
	}
	if len(n.Children) == 1 {
		return map[string]interface{}{
			"type":     "expression::unary_op",
			"operator": string(n.Kind),
			"operand":  cylonExpr(n.Children[0]),
		}
	}

	return map[string]interface{}{
		"type":     "expression::binary_op",
		"operator": string(n.Kind),
		"left":     cylonExpr(n.Children[0]),
		"right":    cylonExpr(n.Children[1]),
	}
}
