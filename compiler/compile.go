package compiler

import (
	"github.com/katalvlaran/vecc/alias"
	"github.com/katalvlaran/vecc/diag"
	"github.com/katalvlaran/vecc/expand"
	"github.com/katalvlaran/vecc/library"
	"github.com/katalvlaran/vecc/optimize"
	"github.com/katalvlaran/vecc/tree"
)

// Result is everything Compile produces: the resolved Dst program and the
// final (post-mangle) import/export name sets, which a caller formatting
// output needs to know which identifiers are user-chosen rather than
// compiler-generated.
type Result struct {
	Program  *tree.Node
	Imported map[string]struct{}
	Exported map[string]struct{}
}

// Compile runs the full pipeline over src (a parsed Src tree) end to end:
// expansion, alias resolution, then reduce, dead-code elimination, and
// mangling in that fixed order, each individually skippable via Option.
// It is the one function a front-end or the CLI calls.
func Compile(src *tree.Node, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	var loader *library.Loader
	if o.libRoot != "" && o.libParser != nil {
		loader = library.New(o.libRoot, o.libParser)
	}

	reporter := diag.NewReporter()
	dst, e, err := expand.Program(reporter, loader, src)
	if err != nil {
		return nil, err
	}

	dst, imported, exported, err := alias.Resolve(e, dst)
	if err != nil {
		return nil, diag.New(diag.CategoryResolution, err, "alias resolution")
	}

	if o.reduce {
		if err := optimize.ReducePass(dst); err != nil {
			return nil, diag.New(diag.CategorySemantic, err, "reduce pass")
		}
	}
	if o.eliminate {
		optimize.DeadCodeEliminate(dst, exported)
	}
	if o.mangle {
		reserved := reservedNames(imported, exported)
		optimize.Mangle(dst, reserved)
	}

	return &Result{Program: dst, Imported: imported, Exported: exported}, nil
}

// reservedNames merges imported and exported into the set mangle must
// never rename — both are user-chosen surface names, not compiler
// intermediates.
func reservedNames(imported, exported map[string]struct{}) map[string]struct{} {
	reserved := make(map[string]struct{}, len(imported)+len(exported))
	for name := range imported {
		reserved[name] = struct{}{}
	}
	for name := range exported {
		reserved[name] = struct{}{}
	}

	return reserved
}
