package parser

import (
	"testing"

	"github.com/wisplang/wisp/internal/testutil"
	"github.com/wisplang/wisp/internal/token"
	"github.com/wisplang/wisp/internal/types"
)

func parse(src string) (*token.Module, types.Diagnostics) {
	return New([]byte(src), nil).ParseModule("test")
}

func noDummy(t *testing.T, items []token.Token) {
	t.Helper()
	for i, tok := range items {
		testutil.True(t, tok.Kind != token.KindDummy, "dummy survived at index %d", i)
	}
}

func TestDeclInferredNoValue(t *testing.T) {
	mod, diags := parse("let yeah")
	testutil.True(t, diags.Empty(), "diagnostics: %v", diags.Lexical)
	testutil.Len(t, mod.Items, 1)
	noDummy(t, mod.Items)
	tok := mod.Items[0]
	testutil.Equal(t, token.KindDecl, tok.Kind)
	testutil.Equal(t, token.DeclLet, tok.DeclKind)
	testutil.True(t, tok.TypeName.IsZero())
	testutil.Equal(t, "yeah", tok.Name.String())
	testutil.False(t, tok.HasValue)
}

func TestDeclInferredWithValue(t *testing.T) {
	mod, diags := parse("let yeah = 3")
	testutil.True(t, diags.Empty(), "diagnostics: %v", diags.Lexical)
	testutil.Len(t, mod.Items, 2)
	noDummy(t, mod.Items)
	testutil.True(t, mod.Items[0].HasValue)
	testutil.Equal(t, token.ExprValue, mod.Items[1].ExprKind)
	testutil.Equal(t, "3", mod.Items[1].LitText.String())
}

func TestDeclTypedRequiresEquals(t *testing.T) {
	// Once a Decl commits to the two-identifier (typed) form, '=' is
	// mandatory; running out of input right there is an Eof, not an
	// Expected, diagnostic.
	mod, diags := parse("const string yeah")
	testutil.Len(t, mod.Items, 0)
	testutil.Len(t, diags.Lexical, 1)
	testutil.Equal(t, types.DiagEof, diags.Lexical[0].Kind)
}

func TestDeclTypedWrongFollowupReported(t *testing.T) {
	// A non-'=' token after the two-identifier form is reported and left
	// unconsumed, so the main loop reprocesses it as its own top-level
	// statement (here, another unexpected-lexeme diagnostic at top level).
	mod, diags := parse("const string yeah 5")
	testutil.Len(t, mod.Items, 0)
	testutil.Len(t, diags.Lexical, 2)
	testutil.Equal(t, types.DiagExpected, diags.Lexical[0].Kind)
	testutil.SliceEqual(t, []types.LexKind{types.KindEq}, diags.Lexical[0].Expected)
	testutil.Equal(t, types.DiagExpected, diags.Lexical[1].Kind)
}

func TestFnDefNoParams(t *testing.T) {
	mod, diags := parse("fn greet() {}")
	testutil.True(t, diags.Empty(), "diagnostics: %v", diags.Lexical)
	noDummy(t, mod.Items)
	testutil.Len(t, mod.Items, 2) // FnDef, Block
	fn := mod.Items[0]
	testutil.Equal(t, token.KindFnDef, fn.Kind)
	testutil.True(t, fn.TypeName.IsZero())
	testutil.Equal(t, "greet", fn.Name.String())
	testutil.True(t, fn.Params.Empty())
	testutil.Equal(t, 2, fn.Body.To)
}

func TestFnDefTypedWithParams(t *testing.T) {
	mod, diags := parse("fn int add(int a, int b = 1) { return a }")
	testutil.True(t, diags.Empty(), "diagnostics: %v", diags.Lexical)
	noDummy(t, mod.Items)
	fn := mod.Items[0]
	testutil.Equal(t, "int", fn.TypeName.String())
	testutil.Equal(t, "add", fn.Name.String())
	// 3, not 2: param b's "= 1" value expression occupies its own extra
	// slot within the Params range (mirroring Decl's value-expr layout).
	testutil.Equal(t, 3, fn.Params.Len())

	paramA := mod.Items[fn.Params.From]
	testutil.Equal(t, token.KindFnDefParam, paramA.Kind)
	testutil.Equal(t, "a", paramA.Name.String())
	testutil.False(t, paramA.HasValue)

	paramB := mod.Items[fn.Params.From+1]
	testutil.Equal(t, "b", paramB.Name.String())
	testutil.True(t, paramB.HasValue)
}

func TestIfElseChain(t *testing.T) {
	mod, diags := parse("if true {} else if true {}")
	testutil.True(t, diags.Empty(), "diagnostics: %v", diags.Lexical)
	noDummy(t, mod.Items)
	var ifCount int
	for _, tok := range mod.Items {
		if tok.Kind == token.KindFlowIf {
			ifCount++
		}
	}
	testutil.Equal(t, 2, ifCount)
	testutil.False(t, mod.Items[1].ElseSpan.Empty())
}

func TestDanglingElseUnexpected(t *testing.T) {
	// The "else" has no preceding if to continue (spec.md §4.4): it is
	// reported and otherwise ignored, and the empty block that follows it
	// parses on its own as an ordinary top-level block.
	mod, diags := parse("else {}")
	testutil.Len(t, diags.Lexical, 1)
	testutil.Equal(t, types.DiagExpected, diags.Lexical[0].Kind)
	testutil.Len(t, mod.Items, 1)
	testutil.Equal(t, token.KindBlock, mod.Items[0].Kind)
}

func TestReturnExpr(t *testing.T) {
	mod, diags := parse("return yeah")
	testutil.True(t, diags.Empty(), "diagnostics: %v", diags.Lexical)
	testutil.Len(t, mod.Items, 2)
	testutil.Equal(t, token.KindReturn, mod.Items[0].Kind)
	testutil.Equal(t, token.ExprVar, mod.Items[1].ExprKind)
}

func TestUnclosedBlockDrains(t *testing.T) {
	mod, diags := parse("fn f() {")
	testutil.Len(t, diags.Lexical, 1)
	testutil.Equal(t, types.DiagUnclosed, diags.Lexical[0].Kind)
	// The FnDef token itself was already committed before its body's '{'
	// opened, so it survives the drain; only the body's reserved Dummy slot
	// is discarded, and FnDef.Body is patched to an empty span at Params.To.
	testutil.Len(t, mod.Items, 1)
	testutil.Equal(t, token.KindFnDef, mod.Items[0].Kind)
	testutil.True(t, mod.Items[0].Body.Empty())
	testutil.Equal(t, mod.Items[0].Params.To, mod.Items[0].Body.From)
}

func TestCallFailureReportedOnce(t *testing.T) {
	// A nested call running off the end of input must surface a single
	// Eof diagnostic, not one per unwound production.
	mod, diags := parse("let x = f(g(")
	testutil.Len(t, mod.Items, 0)
	testutil.Len(t, diags.Lexical, 1)
	testutil.Equal(t, types.DiagEof, diags.Lexical[0].Kind)
}

func TestCallDepthGuard(t *testing.T) {
	src := "f("
	for range 200 {
		src += "f("
	}
	mod, diags := parse(src)
	noDummy(t, mod.Items)
	testutil.NotEmpty(t, diags.Other)
}
