package parser

import (
	"github.com/wisplang/wisp/internal/token"
	"github.com/wisplang/wisp/internal/types"
)

// callArgExpected is the expected-set reported for a misplaced comma or an
// invalid argument inside a function call's argument list.
//
//nolint:gochecknoglobals
var callArgExpected = []types.LexKind{types.KindIdent, types.KindRawIdent, types.KindLiteral, types.KindCloseParen}

// parseTopLevelExpr handles the "anything else" top-level dispatch case
// (spec.md §4.4): push the already-consumed identifier as a Var expression,
// then fold it into a call if a '(' immediately follows.
func (r *Reader) parseTopLevelExpr(text string, _ types.BSpan) {
	name := types.Intern(text)
	if r.peek().lex.Kind == types.KindOpenParen {
		r.advance()
		if res := r.parseCall(name); !res.ok() {
			r.reportExprFailure(res)
		}
		return
	}
	idx := len(r.items)
	r.items = append(r.items, token.Token{Kind: token.KindExpr, ExprKind: token.ExprVar, Name: name, End: idx})
}

// reportExprFailure emits the one diagnostic for a failed expression
// production: Eof at the position more input was expected, or Expected
// against the argument set. Emission happens at the production that decided
// to stop unwinding, so a failure deep inside a nested call is reported
// exactly once.
func (r *Reader) reportExprFailure(res filtered[int]) {
	if res.state == filteredInputEnd {
		r.diags.Append(types.EofAt(types.ByteOffset(r.cursor.Position())))
		return
	}
	r.diags.Append(types.Expected(res.other.span, callArgExpected))
}

// parseExpr parses a single expression: an identifier (optionally folded
// into a call) or a literal value. It is shared by every expression-valued
// production: decl/param values, return, if-conditions, and call arguments.
func (r *Reader) parseExpr() filtered[int] {
	tok := r.peek()
	switch tok.lex.Kind {
	case types.KindEof:
		return inputEnd[int]()
	case types.KindIdent, types.KindRawIdent:
		r.advance()
		name := types.Intern(r.text(tok.span))
		if r.peek().lex.Kind == types.KindOpenParen {
			r.advance()
			return r.parseCall(name)
		}
		idx := len(r.items)
		r.items = append(r.items, token.Token{Kind: token.KindExpr, ExprKind: token.ExprVar, Name: name, End: idx})
		return correct(idx)
	case types.KindLiteral:
		r.advance()
		idx := len(r.items)
		r.items = append(r.items, token.Token{
			Kind: token.KindExpr, ExprKind: token.ExprValue, End: idx,
			LitKind: tok.info.Kind, LitText: types.Intern(r.text(tok.span)),
		})
		return correct(idx)
	default:
		return unexpected[int](tok)
	}
}

// maxCallDepth bounds nested-call recursion so pathological input cannot
// grow the host stack without limit (spec.md §5); a call past the limit
// fails like any other bad argument and the outer loop recovers.
const maxCallDepth = 128

// parseCall parses a function call's argument list; the '(' has already
// been consumed by the caller. Per spec.md §4.4: a comma_found flag
// (initialized true, permitting an empty list) tracks whether a comma is
// currently "active"; a comma seen while it is already active is a
// duplicate (DupeComma), except the very first lexeme of the whole list,
// which is instead an Expected error (a comma can't open an argument list).
// Failures truncate back to the reserved slot here but are diagnosed by the
// enclosing production, never twice.
func (r *Reader) parseCall(name types.Symbol) filtered[int] {
	if r.callDepth >= maxCallDepth {
		r.diags.AppendOther("call nesting deeper than %d at byte %d", maxCallDepth, r.cursor.Position())
		return unexpected[int](r.peek())
	}
	r.callDepth++
	defer func() { r.callDepth-- }()

	slot := len(r.items)
	r.items = append(r.items, token.Token{Kind: token.KindDummy})

	commaFound := true
	firstIter := true
	trailingComma := false

	for {
		tok := r.peek()
		switch tok.lex.Kind {
		case types.KindCloseParen:
			r.advance()
			r.items[slot] = token.Token{
				Kind: token.KindExpr, ExprKind: token.ExprFnCall, Name: name,
				End: len(r.items), TrailingComma: trailingComma,
			}
			return correct(slot)
		case types.KindComma:
			r.advance()
			if commaFound {
				if firstIter {
					r.diags.Append(types.Expected(tok.span, callArgExpected))
				} else {
					r.diags.Append(types.DupeComma(tok.span))
				}
			}
			commaFound = true
			trailingComma = true
		case types.KindEof:
			r.truncateTo(slot)
			return inputEnd[int]()
		default:
			res := r.parseExpr()
			switch res.state {
			case filteredInputEnd:
				r.truncateTo(slot)
				return inputEnd[int]()
			case filteredOther:
				r.truncateTo(slot)
				return unexpected[int](res.other)
			}
			commaFound = false
			trailingComma = false
		}
		firstIter = false
	}
}
