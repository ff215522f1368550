package library_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/katalvlaran/vecc/library"
	"github.com/katalvlaran/vecc/tree"
	"github.com/stretchr/testify/require"
)

// stubParser ignores the source text and returns a pre-built tree keyed
// by the text itself, so tests can control exactly what "parsing" a
// given file's contents produces without a real Src grammar.
type stubParser struct {
	programs map[string]*tree.Node
	err      error
}

func (p *stubParser) Parse(source string) (*tree.Node, error) {
	if p.err != nil {
		return nil, p.err
	}
	prog, ok := p.programs[source]
	if !ok {
		return nil, errors.New("stubParser: no program registered for source")
	}

	return prog, nil
}

func dblMacroProgram() *tree.Node {
	param := tree.NewInner(tree.KindParam, tree.NewLeaf(tree.KindIdent, "n"))
	param.Value = string(tree.SortTagNumber)
	signature := tree.NewInner(tree.KindSignature, param)
	signature.Value = string(tree.SortTagNumber)
	body := tree.NewInner(tree.KindBinaryOp, tree.NewLeaf(tree.KindVariableRef, "n"), tree.NewLeaf(tree.KindNumberLiteral, "2"))
	body.Value = "mul"
	define := tree.NewInner(tree.KindDefine, signature, body)
	define.Value = "dbl"

	return tree.NewInner(tree.KindSrcProgram, define)
}

func TestLoadParsesMacroDefinitions(t *testing.T) {
	fsys := fstest.MapFS{
		"libs/math.lib.src": &fstest.MapFile{Data: []byte("dbl-source")},
	}
	parser := &stubParser{programs: map[string]*tree.Node{"dbl-source": dblMacroProgram()}}
	loader := library.NewFromFS(fsys, parser)

	macros, err := loader.Load("math")
	require.NoError(t, err)
	require.Len(t, macros, 1)
	require.Equal(t, "dbl", macros[0].Name)
	require.Len(t, macros[0].Params, 1)
	require.Equal(t, "n", macros[0].Params[0].Name)
}

func TestLoadRejectsNonMacroStatement(t *testing.T) {
	stray := tree.NewLeaf(tree.KindLet, "x")
	program := tree.NewInner(tree.KindSrcProgram, stray)
	fsys := fstest.MapFS{
		"libs/bad.lib.src": &fstest.MapFile{Data: []byte("bad-source")},
	}
	parser := &stubParser{programs: map[string]*tree.Node{"bad-source": program}}
	loader := library.NewFromFS(fsys, parser)

	_, err := loader.Load("bad")
	require.ErrorIs(t, err, library.ErrNonMacroStatement)
}

func TestLoadSkipsComments(t *testing.T) {
	comment := tree.NewLeaf(tree.KindComment, "# a comment")
	program := tree.NewInner(tree.KindSrcProgram, comment, dblMacroProgram().Children[0])
	fsys := fstest.MapFS{
		"libs/commented.lib.src": &fstest.MapFile{Data: []byte("commented-source")},
	}
	parser := &stubParser{programs: map[string]*tree.Node{"commented-source": program}}
	loader := library.NewFromFS(fsys, parser)

	macros, err := loader.Load("commented")
	require.NoError(t, err)
	require.Len(t, macros, 1)
}

func TestLoadReportsMissingLibrary(t *testing.T) {
	fsys := fstest.MapFS{}
	loader := library.NewFromFS(fsys, &stubParser{})

	_, err := loader.Load("missing")
	require.ErrorIs(t, err, library.ErrLibraryNotFound)
}

func TestLoadReportsAmbiguousLibrary(t *testing.T) {
	fsys := fstest.MapFS{
		"a/dup.lib.src": &fstest.MapFile{Data: []byte("one")},
		"b/dup.lib.src": &fstest.MapFile{Data: []byte("two")},
	}
	loader := library.NewFromFS(fsys, &stubParser{})

	_, err := loader.Load("dup")
	require.ErrorIs(t, err, library.ErrAmbiguousLibrary)
}
