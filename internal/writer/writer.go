// Package writer implements the deterministic token-flattener test oracle
// (spec.md §4.5): it walks a parsed Module's flat token vector and yields the
// sequence of lexical fragments a human would read off it, without
// attempting to reconstruct exact source whitespace. It exists for golden
// tests, grounded loosely on the original implementation's
// original_source/src/parse/test/write.rs prototype (which only handled
// Decl/Expr/Value); this version generalizes the same walk-and-emit idea to
// the full flat token model, including blocks and if/else chains.
package writer

import (
	"github.com/wisplang/wisp/internal/token"
)

// writer holds the state of one flattening pass.
type writer struct {
	items     []token.Token
	condOwner map[int]int // CondSpan.From -> owning FlowIf slot
	pending   map[int][]string
	frags     []string
}

// Write flattens mod into its sequence of lexical fragments.
func Write(mod *token.Module) []string {
	w := &writer{
		items:     mod.Items,
		condOwner: map[int]int{},
		pending:   map[int][]string{},
	}
	for i, tok := range w.items {
		if tok.Kind == token.KindFlowIf {
			w.condOwner[tok.CondSpan.From] = i
		}
	}
	w.walk(0, len(w.items))
	return w.frags
}

func (w *writer) emit(s string) {
	w.frags = append(w.frags, s)
}

// schedule arranges for s to be emitted the moment the walk reaches pos,
// before whatever token lives there is rendered.
func (w *writer) schedule(pos int, s string) {
	w.pending[pos] = append(w.pending[pos], s)
}

func (w *writer) flushPending(pos int) {
	for _, s := range w.pending[pos] {
		w.emit(s)
	}
	delete(w.pending, pos)
}

// walk renders every item in [pos, end), honoring scheduled fragments and
// the cond/if redirection, and returns end.
func (w *writer) walk(pos, end int) int {
	for pos < end {
		w.flushPending(pos)
		if owner, ok := w.condOwner[pos]; ok {
			pos = w.renderFlowIf(owner)
			continue
		}
		pos = w.renderItem(pos)
	}
	w.flushPending(end)
	return end
}

// renderItem dispatches a single flat-array slot that isn't the start of a
// registered if-condition.
func (w *writer) renderItem(pos int) int {
	tok := w.items[pos]
	switch tok.Kind {
	case token.KindDecl:
		return w.renderDecl(pos, tok)
	case token.KindFnDef:
		return w.renderFnDef(pos, tok)
	case token.KindFnDefParam:
		return w.renderParam(pos)
	case token.KindReturn:
		w.emit("return")
		return w.renderExpr(pos + 1)
	case token.KindExpr:
		return w.renderExpr(pos)
	case token.KindBlock:
		return w.renderBlock(pos)
	case token.KindImport:
		return w.renderImport(pos, tok)
	default:
		return pos + 1
	}
}

// renderDecl renders "let"/"const" [Type] Name [= Value].
func (w *writer) renderDecl(pos int, tok token.Token) int {
	if tok.DeclKind == token.DeclConst {
		w.emit("const")
	} else {
		w.emit("let")
	}
	if !tok.TypeName.IsZero() {
		w.emit(tok.TypeName.String())
	}
	w.emit(tok.Name.String())
	if tok.HasValue {
		w.emit("=")
		return w.renderExpr(pos + 1)
	}
	return pos + 1
}

// renderParam renders one "[Type] Name [= Value]" parameter slot.
func (w *writer) renderParam(pos int) int {
	tok := w.items[pos]
	if !tok.TypeName.IsZero() {
		w.emit(tok.TypeName.String())
	}
	w.emit(tok.Name.String())
	if tok.HasValue {
		w.emit("=")
		return w.renderExpr(pos + 1)
	}
	return pos + 1
}

// renderFnDef renders "fn [Type] Name ( Params )" and then its body block.
func (w *writer) renderFnDef(pos int, tok token.Token) int {
	w.emit("fn")
	if !tok.TypeName.IsZero() {
		w.emit(tok.TypeName.String())
	}
	w.emit(tok.Name.String())
	w.emit("(")
	child := pos + 1
	first := true
	for child < tok.Params.To {
		if !first {
			w.emit(",")
		}
		first = false
		child = w.renderParam(child)
	}
	w.emit(")")
	return w.renderBlock(tok.Params.To)
}

// renderFlowIf renders "if Cond" then the then-block, scheduling "else" to
// fire the instant the then-block's span ends. Scheduling on the then-span's
// To (rather than the else-span's From) matters for else-if chains, where
// the walk redirects into the nested if at its condition tokens, before the
// nested if's own slot is ever visited.
func (w *writer) renderFlowIf(ifSlot int) int {
	tok := w.items[ifSlot]
	w.emit("if")
	w.renderExpr(tok.CondSpan.From)
	if ifSlot+1 >= len(w.items) || w.items[ifSlot+1].Kind != token.KindBlock {
		// Then-block truncated by error recovery; nothing left to render.
		return ifSlot + 1
	}
	if !tok.ElseSpan.Empty() {
		w.schedule(w.items[ifSlot+1].Block.To, "else")
	}
	return w.renderBlock(ifSlot + 1)
}

// renderBlock skips the Block token itself (blocks never render literal
// braces; spec.md §8 scenario 5's `if true {} else if true {}` flattens to
// no brace fragments at all) and walks its contents.
func (w *writer) renderBlock(pos int) int {
	end := w.items[pos].Block.To
	w.walk(pos+1, end)
	return end
}

// renderImport renders an import/use token. The parser never actually
// constructs one (spec.md's surface has no import keyword), so this exists
// only so the writer's dispatch stays exhaustive over token.Kind.
func (w *writer) renderImport(pos int, tok token.Token) int {
	if tok.Defer {
		w.emit("defer")
	}
	w.emit("import")
	return pos + 1
}

// renderExpr renders the expression rooted at pos (Var, Value, or a call and
// its argument list) and returns the index one past its full subtree.
func (w *writer) renderExpr(pos int) int {
	tok := w.items[pos]
	switch tok.ExprKind {
	case token.ExprVar:
		w.emit(tok.Name.String())
		return pos + 1
	case token.ExprValue:
		w.emit(tok.LitText.String())
		return pos + 1
	case token.ExprFnCall:
		w.emit(tok.Name.String())
		w.emit("(")
		child := pos + 1
		first := true
		for child < tok.End {
			if !first {
				w.emit(",")
			}
			first = false
			child = w.renderExpr(child)
		}
		w.emit(")")
		return tok.End
	default:
		return pos + 1
	}
}
