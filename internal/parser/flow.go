package parser

import (
	"github.com/wisplang/wisp/internal/token"
	"github.com/wisplang/wisp/internal/types"
)

// ifBraceExpected is the expected-set once an if's condition has parsed and
// only the then-block's opening '{' remains.
//
//nolint:gochecknoglobals
var ifBraceExpected = []types.LexKind{types.KindOpenBrace}

// elseContinuationExpected is the expected-set right after a matched "else":
// either a nested "if" (an else-if chain) or the else-block's '{'.
//
//nolint:gochecknoglobals
var elseContinuationExpected = []types.LexKind{types.KindIdent, types.KindOpenBrace}

// parseIf parses a top-level if statement.
func (r *Reader) parseIf() {
	r.parseIfCore()
}

// parseIfCore parses "Expr { Block }" (the "if" keyword itself has already
// been consumed by the caller) and returns the slot of the committed FlowIf
// token, or -1 if the production failed and was truncated. It is shared by
// parseIf and handleElse's else-if continuation, since both need the
// resulting slot: a top-level if discards it, an else-if patches the parent
// If's ElseSpan with it.
func (r *Reader) parseIfCore() int {
	condStart := len(r.items)
	res := r.parseExpr()
	if !res.ok() {
		r.truncateTo(condStart)
		r.reportExprFailure(res)
		return -1
	}

	ifSlot := len(r.items)
	brace := r.peek()
	if brace.lex.Kind != types.KindOpenBrace {
		r.truncateTo(condStart)
		r.emitEofOrExpected(brace, ifBraceExpected)
		return -1
	}
	r.advance()

	r.items = append(r.items, token.Token{Kind: token.KindFlowIf, CondSpan: types.NewTSpan(condStart, ifSlot)})
	r.pushFlow(ifSlot)
	r.pushBlock(brace.span, ownerNone, 0)
	return ifSlot
}

// handleElse handles an "else" keyword already consumed from the lookahead
// queue. Per spec.md §4.4 and the grounding in
// original_source/src/parse/secure.rs's Reader::last_flow, an else only
// continues the flow at the front of the pending-if queue, and only when
// that if's then-block closed at exactly the current position (i.e. this
// else is the very next thing after its matching '}'). A front entry that
// doesn't match is left in place rather than discarded, and this else is
// reported unexpected.
func (r *Reader) handleElse(lex sigLex) {
	headIdx, ok := r.tryContinueFlow()
	if !ok {
		r.diags.Append(types.Expected(lex.span, r.currentExpected()))
		return
	}

	next := r.peek()
	switch {
	case next.lex.Kind == types.KindIdent && r.text(next.span) == "if":
		r.advance()
		if nested := r.parseIfCore(); nested >= 0 {
			r.items[headIdx].ElseSpan = types.NewTSpan(nested, nested+1)
		}
	case next.lex.Kind == types.KindOpenBrace:
		r.advance()
		r.pushBlock(next.span, ownerIfElse, headIdx)
	default:
		r.diags.Append(types.Expected(next.span, elseContinuationExpected))
	}
}
