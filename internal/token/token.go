// Package token defines the flat, span-indexed token model the parser
// builds: a single contiguous vector where compound nodes reference their
// children by index range rather than by pointer.
package token

import (
	"github.com/wisplang/wisp/internal/lexer"
	"github.com/wisplang/wisp/internal/types"
)

// DeclKind discriminates a Decl token between "let" and "const".
type DeclKind int

const (
	DeclLet DeclKind = iota
	DeclConst
)

// ExprKind discriminates an Expr token's payload.
type ExprKind int

const (
	// ExprFnCall identifies a function-call expression; its arguments
	// occupy items[self_index+1 : End).
	ExprFnCall ExprKind = iota
	// ExprVar identifies a bare variable reference.
	ExprVar
	// ExprValue identifies a literal value.
	ExprValue
)

// Kind discriminates the variant a Token holds. Exactly the fields
// documented for that variant below are meaningful.
type Kind int

const (
	KindDecl Kind = iota
	KindFnDef
	KindFnDefParam
	KindFlowIf
	KindExpr
	KindReturn
	KindBlock
	KindImport
	// KindDummy is a transient placeholder reserved for a not-yet-parsed
	// child; no KindDummy token may survive in a Module's final Items.
	KindDummy
)

// Token is one entry in a Module's Items vector. Compound nodes reference
// children by TSpan/index into the same vector rather than by pointer.
type Token struct {
	Kind Kind

	// Decl
	DeclKind DeclKind
	TypeName types.Symbol // zero Symbol if inferred
	Name     types.Symbol
	HasValue bool // if true, items[self_index+1] is the value expression

	// FnDef. Name/TypeName are the function's own name and optional return
	// type, stored in the fields above (shared with Decl/FnDefParam since
	// this is a flat tagged union).
	Params types.TSpan // [slot+1, param_end)
	Body   types.TSpan // [param_end, items.len()) at commit time

	// FnDefParam shares TypeName/Name/HasValue with Decl.

	// Flow (If)
	CondSpan types.TSpan
	ElseSpan types.TSpan // zero value (Empty()) if no else

	// Expr
	ExprKind      ExprKind
	End           int  // exclusive upper bound on this node's descendants
	TrailingComma bool // ExprFnCall only

	// Expr/Value: the literal's kind and its source text, interned as-is
	// (quotes, prefixes, and suffixes included) since the lexeme itself
	// carries no payload.
	LitKind lexer.LiteralKind
	LitText types.Symbol

	// Return carries no extra fields: its expression is items[self_index+1].

	// Block
	Block types.TSpan // Block.From == the index of this token itself

	// Import
	Defer bool
}

// Module is the parser's top-level output: an interned name and the flat
// token vector built for it.
type Module struct {
	Name  types.Symbol
	Items []Token
}
