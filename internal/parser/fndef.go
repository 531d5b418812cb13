package parser

import (
	"github.com/wisplang/wisp/internal/token"
	"github.com/wisplang/wisp/internal/types"
)

// fnDefParenExpected is the expected-set once a FnDef's name (and optional
// return type) has been read and only the parameter list's '(' remains.
//
//nolint:gochecknoglobals
var fnDefParenExpected = []types.LexKind{types.KindOpenParen}

// fnDefBraceExpected is the expected-set for the body block's opening '{'.
//
//nolint:gochecknoglobals
var fnDefBraceExpected = []types.LexKind{types.KindOpenBrace}

// paramExpected is the expected-set for the start of a parameter list entry.
//
//nolint:gochecknoglobals
var paramExpected = []types.LexKind{types.KindIdent, types.KindRawIdent, types.KindCloseParen}

// parseFnDef parses a function definition (spec.md §4.4):
//
//	fn [Type] Name ( Params ) { Body }
//
// As with Decl, one or two leading identifiers share a slot: a single
// identifier is the function's own name; two identifiers are a return type
// followed by the name.
func (r *Reader) parseFnDef() {
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

	typeName := types.NoSymbol
	name := firstName
	if next := r.peek(); next.lex.Kind == types.KindIdent || next.lex.Kind == types.KindRawIdent {
		r.advance()
		typeName = firstName
		name = types.Intern(r.text(next.span))
	}

	open := r.peek()
	if open.lex.Kind != types.KindOpenParen {
		r.truncateTo(slot)
		r.emitEofOrExpected(open, fnDefParenExpected)
		return
	}
	r.advance()

	paramEnd, ok := r.parseParamList(slot)
	if !ok {
		return
	}

	brace := r.peek()
	if brace.lex.Kind != types.KindOpenBrace {
		r.truncateTo(slot)
		r.emitEofOrExpected(brace, fnDefBraceExpected)
		return
	}
	r.advance()

	r.items[slot] = token.Token{
		Kind: token.KindFnDef, TypeName: typeName, Name: name,
		Params: types.NewTSpan(slot+1, paramEnd),
	}
	r.pushBlock(brace.span, ownerFnBody, slot)
}

// parseParamList parses a parenthesized parameter list; the '(' has already
// been consumed. On success it returns the exclusive upper bound of the
// params' token range. On failure the whole FnDef (back to fnSlot) has
// already been truncated and diagnosed.
func (r *Reader) parseParamList(fnSlot int) (int, bool) {
	commaFound := true
	firstIter := true
	for {
		tok := r.peek()
		switch tok.lex.Kind {
		case types.KindCloseParen:
			r.advance()
			return len(r.items), true
		case types.KindComma:
			r.advance()
			if commaFound {
				if firstIter {
					r.diags.Append(types.Expected(tok.span, paramExpected))
				} else {
					r.diags.Append(types.DupeComma(tok.span))
				}
			}
			commaFound = true
		case types.KindEof:
			r.truncateTo(fnSlot)
			r.diags.Append(types.EofAt(types.ByteOffset(r.cursor.Position())))
			return 0, false
		case types.KindIdent, types.KindRawIdent:
			if !r.parseParam(fnSlot) {
				return 0, false
			}
			commaFound = false
		default:
			r.truncateTo(fnSlot)
			r.diags.Append(types.Expected(tok.span, paramExpected))
			return 0, false
		}
		firstIter = false
	}
}

// parseParam parses one "Type Name [= Expr]" parameter entry. fnSlot is
// where the whole FnDef gets truncated to on failure.
func (r *Reader) parseParam(fnSlot int) bool {
	slot := len(r.items)
	r.items = append(r.items, token.Token{Kind: token.KindDummy})

	typeTok := r.peek()
	r.advance()
	typeName := types.Intern(r.text(typeTok.span))

	nameTok := r.peek()
	if nameTok.lex.Kind != types.KindIdent && nameTok.lex.Kind != types.KindRawIdent {
		r.truncateTo(fnSlot)
		r.emitEofOrExpected(nameTok, declHeadExpected)
		return false
	}
	r.advance()
	name := types.Intern(r.text(nameTok.span))

	hasValue := false
	if r.peek().lex.Kind == types.KindEq {
		r.advance()
		res := r.parseExpr()
		if !res.ok() {
			r.truncateTo(fnSlot)
			r.reportExprFailure(res)
			return false
		}
		hasValue = true
	}

	r.items[slot] = token.Token{Kind: token.KindFnDefParam, TypeName: typeName, Name: name, HasValue: hasValue}
	return true
}
