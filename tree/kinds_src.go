package tree

// Src node kinds. An external surface parser is the producer of these;
// every consumer in this repository (package macro, package library,
// package expand) agrees on this vocabulary since it is the one place
// that vocabulary is pinned down. Each constant's doc notes its Value and
// Children shape.
const (
	// KindSrcProgram is the root: Children are top-level statements in
	// source order.
	KindSrcProgram Kind = "src_program"

	// Statements.

	// KindImport: Value is the alias; one child, KindIdent, is the target
	// external name.
	KindImport Kind = "import"
	// KindImportGroup: Children are KindImport nodes.
	KindImportGroup Kind = "import_group"
	// KindExport: Value is the alias; one child, KindIdent, is the target
	// external name.
	KindExport Kind = "export"
	// KindLet: Value is the SortTag; Children are [KindIdent(name), expr].
	KindLet Kind = "let"
	// KindDefine: Value is the macro name; Children are
	// [KindSignature, body-expr].
	KindDefine Kind = "define"
	// KindSignature: Value is the return SortTag; Children are KindParam.
	KindSignature Kind = "signature"
	// KindParam: Value is the SortTag; one child, KindIdent, is the name.
	KindParam Kind = "param"
	// KindUsing: Value is the library name; no children.
	KindUsing Kind = "using"
	// KindComment: Value is the comment text; skipped by every consumer.
	KindComment Kind = "comment"
	// KindIdent is a bare identifier appearing in a binding position (let
	// name, param name, import/export target, library name reference).
	KindIdent Kind = "ident"

	// Expressions.

	// KindNumberLiteral: leaf; Value is the literal text.
	KindNumberLiteral Kind = "number_literal"
	// KindVectorLiteral: Children are scalar-sort expr subtrees.
	KindVectorLiteral Kind = "vector_literal"
	// KindMatrixLiteral: Children are vector-sort expr subtrees (rows).
	KindMatrixLiteral Kind = "matrix_literal"
	// KindVariableRef: leaf; Value is the bound identifier's name.
	KindVariableRef Kind = "variable_ref"
	// KindExternalRef: leaf; Value is the import alias.
	KindExternalRef Kind = "external_ref"
	// KindMacroCall: Value is the macro name; Children are argument expr
	// subtrees in parameter order.
	KindMacroCall Kind = "macro_call"
	// KindUnaryOp: Value is the op name; one child, the operand.
	KindUnaryOp Kind = "unary_op"
	// KindBinaryOp: Value is the op name; two children, left and right.
	KindBinaryOp Kind = "binary_op"
	// KindReduce: Value is the op name; one child, a vector expr.
	KindReduce Kind = "reduce"
	// KindDot: two children, both vector exprs.
	KindDot Kind = "dot"
	// KindMatmul: two children, both matrix exprs.
	KindMatmul Kind = "matmul"
	// KindMap: Value is the op name; one child, a vector or matrix expr.
	KindMap Kind = "map"
	// KindPremap: Value is the op name; Children are [vector/matrix expr,
	// scalar expr].
	KindPremap Kind = "premap"
	// KindPostmap: Value is the op name; Children are [scalar expr,
	// vector/matrix expr].
	KindPostmap Kind = "postmap"
	// KindApply: Value is the op name; two children of matching sort
	// (vecbinary/matbinary, disambiguated by the expanded sort).
	KindApply Kind = "apply"
	// KindConcat: two children, both vector exprs.
	KindConcat Kind = "concat"
	// KindReverse: one child, a vector expr.
	KindReverse Kind = "reverse"
	// KindLen: one child, a vector expr.
	KindLen Kind = "len"
	// KindElem: Children are [vector-or-matrix expr, index literal(s)]:
	// length 2 for a vector, length 3 (row, col) for a matrix.
	KindElem Kind = "elem"
	// KindRow: Children are [matrix expr, index literal].
	KindRow Kind = "row"
	// KindCol: Children are [matrix expr, index literal].
	KindCol Kind = "col"
	// KindTranspose: one child, a matrix expr.
	KindTranspose Kind = "transpose"
	// KindRowsOf: one child, a matrix expr.
	KindRowsOf Kind = "rows_of"
	// KindColsOf: one child, a matrix expr.
	KindColsOf Kind = "cols_of"
)

// SortTag names the sort annotation carried on KindLet/KindParam/
// KindSignature nodes' Value.
type SortTag string

// Sort tags as they appear in Src surface syntax.
const (
	SortTagNumber SortTag = "number"
	SortTagVector SortTag = "vector"
	SortTagMatrix SortTag = "matrix"
)
