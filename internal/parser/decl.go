package parser

import (
	"github.com/wisplang/wisp/internal/token"
	"github.com/wisplang/wisp/internal/types"
)

// declHeadExpected is the expected-set for the first identifier after
// "let"/"const".
//
//nolint:gochecknoglobals
var declHeadExpected = []types.LexKind{types.KindIdent, types.KindRawIdent}

// declEqExpected is the expected-set once a Decl has committed to the
// two-identifier (typed) form, which strictly requires '='.
//
//nolint:gochecknoglobals
var declEqExpected = []types.LexKind{types.KindEq}

// parseDecl parses a let/const declaration (spec.md §4.4). The grammar has
// two shapes sharing one leading identifier:
//
//	let Name [= Expr]              — single identifier, value optional
//	let Type Name = Expr            — two identifiers, value mandatory
//
// The slot is reserved up front and patched in place on success; any
// failure truncates back to the reserved slot so no Dummy ever escapes.
func (r *Reader) parseDecl(kind token.DeclKind) {
	slot := len(r.items)
	r.items = append(r.items, token.Token{Kind: token.KindDummy})

	first := r.peek()
	if first.lex.Kind != types.KindIdent && first.lex.Kind != types.KindRawIdent {
		r.truncateTo(slot)
		r.emitEofOrExpected(first, declHeadExpected)
		return
	}
	r.advance()
	firstName := types.Intern(r.text(first.span))

	next := r.peek()
	switch next.lex.Kind {
	case types.KindEq:
		r.advance()
		r.finishDecl(slot, kind, types.NoSymbol, firstName)
	case types.KindIdent, types.KindRawIdent:
		r.advance()
		secondName := types.Intern(r.text(next.span))
		eq := r.peek()
		if eq.lex.Kind != types.KindEq {
			r.truncateTo(slot)
			r.emitEofOrExpected(eq, declEqExpected)
			return
		}
		r.advance()
		r.finishDecl(slot, kind, firstName, secondName)
	case types.KindEof:
		r.items[slot] = token.Token{Kind: token.KindDecl, DeclKind: kind, Name: firstName, HasValue: false}
	default:
		r.items[slot] = token.Token{Kind: token.KindDecl, DeclKind: kind, Name: firstName, HasValue: false}
	}
}

// finishDecl parses the mandatory value expression once '=' has been
// consumed, committing the Decl token at slot on success or truncating and
// propagating the failure on an unparseable value.
func (r *Reader) finishDecl(slot int, kind token.DeclKind, typeName, name types.Symbol) {
	res := r.parseExpr()
	if !res.ok() {
		r.truncateTo(slot)
		r.reportExprFailure(res)
		return
	}
	r.items[slot] = token.Token{Kind: token.KindDecl, DeclKind: kind, TypeName: typeName, Name: name, HasValue: true}
}
