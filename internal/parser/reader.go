// Package parser implements the Reader (spec.md §4.4): a recursive-descent
// front end that owns a character cursor, an output token vector, a
// diagnostic collection, an open-block backlog, and a flow queue for
// pending if/else continuations.
package parser

import (
	"log/slog"

	"github.com/wisplang/wisp/internal/cursor"
	"github.com/wisplang/wisp/internal/lexer"
	"github.com/wisplang/wisp/internal/token"
	"github.com/wisplang/wisp/internal/types"
)

// ownerKind tags what a closing '}' should patch besides the generic Block
// token it always writes at the reserved slot.
type ownerKind int

const (
	ownerNone ownerKind = iota
	ownerFnBody
	ownerIfElse
)

// blockEntry is one entry of the open-block backlog: the reserved slot for
// the eventual Block token, the byte span of the opening '{', and (for
// function bodies and else-blocks) which other token to patch on close.
type blockEntry struct {
	slot  int
	open  types.BSpan
	kind  ownerKind
	owner int
}

// Reader parses a single module. It is not safe for concurrent use; create
// one Reader per source buffer (spec.md §5).
type Reader struct {
	cursor *cursor.Cursor
	source []byte

	items []token.Token
	diags types.Diagnostics

	lookahead []sigLex
	blocks    []blockEntry
	flow      []int // FIFO of pending if-slot indices
	callDepth int

	types.Logger
}

// New creates a Reader over source. logger is optional; pass nil to disable
// logging, matching the teacher's "optional logger, zero cost when absent"
// convention.
func New(source []byte, logger *slog.Logger) *Reader {
	return &Reader{
		cursor: cursor.New(source),
		source: source,
		Logger: types.Logger{L: logger},
	}
}

// ParseModule runs the top-level loop (spec.md §4.4) to completion and
// returns the built module alongside whatever diagnostics accumulated. The
// module is always well-formed, even if partial.
func (r *Reader) ParseModule(name string) (*token.Module, types.Diagnostics) {
	r.Debug("parse module start", slog.String("module", name))
	for {
		lex, ok := r.nextSignificant()
		if !ok {
			break
		}
		r.nextOrCloseBrace(lex)
	}
	r.drainBlocks()
	r.Debug("parse module done",
		slog.String("module", name),
		slog.Int("items", len(r.items)),
		slog.Int("diagnostics", len(r.diags.Lexical)))
	return &token.Module{Name: types.Intern(name), Items: r.items}, r.diags
}

// text returns the source slice covered by span.
func (r *Reader) text(span types.BSpan) string {
	return string(r.cursor.Slice(int(span.From), int(span.To)))
}

// lexOne scans one raw lexeme directly off the cursor, recording its byte
// span.
func (r *Reader) lexOne() sigLex {
	start := r.cursor.Position()
	lex, info := lexer.AdvanceLexeme(r.cursor)
	end := r.cursor.Position()
	if r.TraceEnabled() {
		r.Trace("lexeme",
			slog.String("kind", lex.Kind.String()),
			slog.Int("from", start),
			slog.Int("to", end))
	}
	return sigLex{lex: lex, info: info, span: types.NewBSpan(types.ByteOffset(start), types.ByteOffset(end))}
}

// fill ensures the lookahead queue holds at least n+1 entries, skipping
// trivia (whitespace, comments) and recording diagnostics for unterminated
// block comments as it goes.
func (r *Reader) fill(n int) {
	for len(r.lookahead) <= n {
		lex := r.lexOne()
		switch lex.lex.Kind {
		case types.KindWhitespace, types.KindLineComment:
			continue
		case types.KindBlockComment:
			if !lex.lex.Terminated {
				r.diags.Append(types.Unclosed(lex.span))
			}
			continue
		}
		r.lookahead = append(r.lookahead, lex)
	}
}

// peek returns the next significant lexeme without consuming it.
func (r *Reader) peek() sigLex {
	r.fill(0)
	return r.lookahead[0]
}

// peekAt returns the nth (0-based) significant lexeme ahead without
// consuming anything.
func (r *Reader) peekAt(n int) sigLex {
	r.fill(n)
	return r.lookahead[n]
}

// advance consumes and returns the next significant lexeme.
func (r *Reader) advance() sigLex {
	r.fill(0)
	lex := r.lookahead[0]
	r.lookahead = r.lookahead[1:]
	return lex
}

// nextSignificant consumes and returns the next significant lexeme, or
// (zero, false) at end of input.
func (r *Reader) nextSignificant() (sigLex, bool) {
	lex := r.advance()
	if lex.lex.Kind == types.KindEof {
		return sigLex{}, false
	}
	return lex, true
}

// topLevelExpected is the expected-set used outside any open block.
//
//nolint:gochecknoglobals
var topLevelExpected = []types.LexKind{types.KindIdent, types.KindRawIdent, types.KindOpenBrace, types.KindEof}

// blockExpected is the expected-set used inside an open block, which
// additionally admits a closing brace.
//
//nolint:gochecknoglobals
var blockExpected = []types.LexKind{types.KindIdent, types.KindRawIdent, types.KindOpenBrace, types.KindCloseBrace, types.KindEof}

// currentExpected returns the expected-set for the Reader's current nesting:
// the block-level set if any block is open, else the top-level set.
func (r *Reader) currentExpected() []types.LexKind {
	if len(r.blocks) > 0 {
		return blockExpected
	}
	return topLevelExpected
}

// nextOrCloseBrace dispatches one already-lexed significant lexeme per
// spec.md §4.4.
func (r *Reader) nextOrCloseBrace(lex sigLex) {
	switch lex.lex.Kind {
	case types.KindIdent, types.KindRawIdent:
		r.dispatchIdent(lex)
	case types.KindOpenBrace:
		r.pushBlock(lex.span, ownerNone, 0)
	case types.KindCloseBrace:
		r.closeBrace(lex)
	default:
		r.reportUnexpected(lex.span)
	}
}

// dispatchIdent performs the keyword dispatch on an identifier/raw-identifier
// lexeme's source text.
func (r *Reader) dispatchIdent(lex sigLex) {
	text := r.text(lex.span)
	switch text {
	case "let":
		r.parseDecl(token.DeclLet)
	case "const":
		r.parseDecl(token.DeclConst)
	case "fn":
		r.parseFnDef()
	case "if":
		r.parseIf()
	case "else":
		r.handleElse(lex)
	case "return":
		r.parseReturn()
	default:
		r.parseTopLevelExpr(text, lex.span)
	}
}

// reportUnexpected emits a coalescing Expected diagnostic for a lexeme that
// matched none of the current context's dispatch cases.
func (r *Reader) reportUnexpected(span types.BSpan) {
	r.diags.Append(types.Expected(span, r.currentExpected()))
}

// closeBrace pops the block stack and patches the popped slot, or (if the
// stack is empty) treats the brace as an unexpected top-level lexeme.
func (r *Reader) closeBrace(lex sigLex) {
	if len(r.blocks) == 0 {
		r.reportUnexpected(lex.span)
		return
	}
	entry := r.blocks[len(r.blocks)-1]
	r.blocks = r.blocks[:len(r.blocks)-1]
	r.closeBlockEntry(entry)
}

// closeBlockEntry writes the Block token for entry and, for a function body
// or an else-block, patches the owning token's span too.
func (r *Reader) closeBlockEntry(entry blockEntry) {
	to := len(r.items)
	r.items[entry.slot] = token.Token{Kind: token.KindBlock, Block: types.NewTSpan(entry.slot, to)}
	switch entry.kind {
	case ownerFnBody:
		r.items[entry.owner].Body = types.NewTSpan(entry.slot, to)
	case ownerIfElse:
		r.items[entry.owner].ElseSpan = types.NewTSpan(entry.slot, to)
	}
}

// pushBlock reserves a Dummy slot for a '{' just consumed and records the
// backlog entry that the matching '}' will later close.
func (r *Reader) pushBlock(open types.BSpan, kind ownerKind, owner int) int {
	slot := len(r.items)
	r.items = append(r.items, token.Token{Kind: token.KindDummy})
	r.blocks = append(r.blocks, blockEntry{slot: slot, open: open, kind: kind, owner: owner})
	return slot
}

// drainBlocks runs at end of input: every residual block-stack entry becomes
// an Unclosed diagnostic spanning its opening brace to the current (EOF)
// position, emitted outermost first, and the items vector is truncated back
// to the outermost residual slot. A surviving FnDef whose body slot was
// truncated away gets an empty Body span at its params' upper bound, so
// Params.To == Body.From holds even for a function that never closed.
func (r *Reader) drainBlocks() {
	if len(r.blocks) == 0 {
		return
	}
	pos := types.ByteOffset(r.cursor.Position())
	for _, entry := range r.blocks {
		r.diags.Append(types.Unclosed(types.NewBSpan(entry.open.From, pos)))
	}
	cut := r.blocks[0].slot
	r.items = r.items[:cut]
	for _, entry := range r.blocks {
		if entry.kind == ownerFnBody && entry.owner < cut {
			r.items[entry.owner].Body = types.NewTSpan(entry.slot, entry.slot)
		}
	}
	r.blocks = nil
}

// pushFlow enqueues an if-slot awaiting a possible else continuation.
func (r *Reader) pushFlow(ifSlot int) {
	r.flow = append(r.flow, ifSlot)
}

// tryContinueFlow reports whether the front of the flow queue is an If whose
// then-block closed exactly at the current position; if so it is popped and
// its slot returned. A non-matching front is left in place (grounded on
// original_source/src/parse/secure.rs's Reader::last_flow, which only pops
// on a match), so a stale pending if can block a later unrelated else.
func (r *Reader) tryContinueFlow() (int, bool) {
	if len(r.flow) == 0 {
		return 0, false
	}
	head := r.flow[0]
	ifTok := r.items[head]
	thenBlock := r.items[head+1]
	if ifTok.Kind != token.KindFlowIf || thenBlock.Kind != token.KindBlock {
		return 0, false
	}
	if thenBlock.Block.To != len(r.items) {
		return 0, false
	}
	r.flow = r.flow[1:]
	return head, true
}

// truncateTo drops items back to slot, discarding any descendants a failed
// production appended.
func (r *Reader) truncateTo(slot int) {
	r.items = r.items[:slot]
}

// emitEofOrExpected reports tok as the reason a production stopped: an Eof
// diagnostic if tok is actually end of input, else an Expected diagnostic
// against want. tok is left unconsumed either way.
func (r *Reader) emitEofOrExpected(tok sigLex, want []types.LexKind) {
	if tok.lex.Kind == types.KindEof {
		r.diags.Append(types.EofAt(types.ByteOffset(r.cursor.Position())))
		return
	}
	r.diags.Append(types.Expected(tok.span, want))
}
