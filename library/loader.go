package library

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/katalvlaran/vecc/macro"
	"github.com/katalvlaran/vecc/tree"
	"github.com/katalvlaran/vecc/value"
)

// Loader resolves and loads `using <name>` libraries.
type Loader struct {
	fsys   fs.FS
	parser Parser
}

// New builds a Loader that resolves library files under root using
// doublestar's `**` glob support, parsing matches with parser.
func New(root string, parser Parser) *Loader {
	return &Loader{fsys: os.DirFS(root), parser: parser}
}

// NewFromFS builds a Loader over an arbitrary fs.FS, primarily so tests
// can exercise Load without touching the real filesystem (fstest.MapFS
// satisfies fs.FS).
func NewFromFS(fsys fs.FS, parser Parser) *Loader {
	return &Loader{fsys: fsys, parser: parser}
}

// Load resolves `**/<name>.lib.src`, parses it, and returns the macro
// definitions it contains in source order. Every top-level statement in
// the loaded program must be a macro definition (comments are skipped);
// anything else is ErrNonMacroStatement.
func (l *Loader) Load(name string) ([]*macro.Macro, error) {
	pattern := fmt.Sprintf("**/%s.lib.src", name)
	matches, err := doublestar.Glob(l.fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("library: glob %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrLibraryNotFound, name)
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("%w: %q matched %v", ErrAmbiguousLibrary, name, matches)
	}

	data, err := fs.ReadFile(l.fsys, matches[0])
	if err != nil {
		return nil, fmt.Errorf("library: read %q: %w", matches[0], err)
	}

	root, err := l.parser.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("library: parse %q: %w", matches[0], err)
	}

	return statementsToMacros(root)
}

// statementsToMacros converts every KindDefine child of root into a
// *macro.Macro, skipping KindComment and rejecting any other statement
// kind.
func statementsToMacros(root *tree.Node) ([]*macro.Macro, error) {
	macros := make([]*macro.Macro, 0, len(root.Children))
	for _, stmt := range root.Children {
		switch stmt.Kind {
		case tree.KindComment:
			continue
		case tree.KindDefine:
			m, err := defineToMacro(stmt)
			if err != nil {
				return nil, err
			}
			macros = append(macros, m)
		default:
			return nil, fmt.Errorf("%w: %q", ErrNonMacroStatement, stmt.Kind)
		}
	}

	return macros, nil
}

// defineToMacro converts one KindDefine node (Value: macro name;
// Children: [KindSignature, body]) into a *macro.Macro.
func defineToMacro(def *tree.Node) (*macro.Macro, error) {
	if len(def.Children) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedDefine, def.Value)
	}
	signature := def.Children[0]
	if signature.Kind != tree.KindSignature {
		return nil, fmt.Errorf("%w: %q", ErrMalformedDefine, def.Value)
	}
	returnSort, err := sortFromTag(tree.SortTag(signature.Value))
	if err != nil {
		return nil, err
	}

	params := make([]macro.Param, 0, len(signature.Children))
	for _, p := range signature.Children {
		if p.Kind != tree.KindParam || len(p.Children) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedDefine, def.Value)
		}
		paramSort, err := sortFromTag(tree.SortTag(p.Value))
		if err != nil {
			return nil, err
		}
		params = append(params, macro.Param{Name: p.Children[0].Value, Sort: paramSort})
	}

	return macro.New(def.Value, params, returnSort, def.Children[1])
}

func sortFromTag(tag tree.SortTag) (value.Sort, error) {
	switch tag {
	case tree.SortTagNumber:
		return value.SortScalar, nil
	case tree.SortTagVector:
		return value.SortVector, nil
	case tree.SortTagMatrix:
		return value.SortMatrix, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSortTag, tag)
	}
}
