package library

import "github.com/katalvlaran/vecc/tree"

// Parser turns library source text into a Src tree rooted at
// tree.KindSrcProgram. The surface grammar is out of scope for this
// module; callers (typically package compiler, wiring a real parser at
// the program's edge) supply one.
type Parser interface {
	Parse(source string) (*tree.Node, error)
}
