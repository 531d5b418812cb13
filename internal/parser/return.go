package parser

import "github.com/wisplang/wisp/internal/token"

// parseReturn parses "return Expr" (spec.md §4.4). The "return" keyword
// itself has already been consumed by the caller.
func (r *Reader) parseReturn() {
	slot := len(r.items)
	r.items = append(r.items, token.Token{Kind: token.KindDummy})

	res := r.parseExpr()
	if !res.ok() {
		r.truncateTo(slot)
		r.reportExprFailure(res)
		return
	}
	r.items[slot] = token.Token{Kind: token.KindReturn}
}
