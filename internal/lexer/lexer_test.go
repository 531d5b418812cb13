package lexer

import (
	"testing"

	"github.com/wisplang/wisp/internal/cursor"
	"github.com/wisplang/wisp/internal/testutil"
	"github.com/wisplang/wisp/internal/types"
)

func lexAll(src string) []Lexeme {
	c := cursor.New([]byte(src))
	var out []Lexeme
	for {
		lex, _ := AdvanceLexeme(c)
		out = append(out, lex)
		if lex.Kind == types.KindEof {
			return out
		}
	}
}

func kinds(lexes []Lexeme) []types.LexKind {
	ks := make([]types.LexKind, len(lexes))
	for i, l := range lexes {
		ks[i] = l.Kind
	}
	return ks
}

func TestWhitespaceAndIdent(t *testing.T) {
	lexes := lexAll("let  yeah")
	testutil.SliceEqual(t, []types.LexKind{
		types.KindIdent, types.KindWhitespace, types.KindIdent, types.KindEof,
	}, kinds(lexes))
	testutil.Equal(t, 3, lexes[0].Len)
	testutil.Equal(t, 2, lexes[1].Len)
	testutil.Equal(t, 4, lexes[2].Len)
}

func TestPunctuators(t *testing.T) {
	lexes := lexAll("(){}[],.;")
	want := []types.LexKind{
		types.KindOpenParen, types.KindCloseParen, types.KindOpenBrace, types.KindCloseBrace,
		types.KindOpenBracket, types.KindCloseBracket, types.KindComma, types.KindDot, types.KindSemi,
		types.KindEof,
	}
	testutil.SliceEqual(t, want, kinds(lexes))
}

func TestLineComment(t *testing.T) {
	c := cursor.New([]byte("// plain\n"))
	lex, _ := AdvanceLexeme(c)
	testutil.Equal(t, types.KindLineComment, lex.Kind)
	testutil.Equal(t, DocNone, lex.DocStyle)
	testutil.Equal(t, 8, lex.Len)

	c = cursor.New([]byte("//! inner"))
	lex, _ = AdvanceLexeme(c)
	testutil.Equal(t, DocInner, lex.DocStyle)

	c = cursor.New([]byte("/// outer"))
	lex, _ = AdvanceLexeme(c)
	testutil.Equal(t, DocOuter, lex.DocStyle)

	c = cursor.New([]byte("//// not doc"))
	lex, _ = AdvanceLexeme(c)
	testutil.Equal(t, DocNone, lex.DocStyle)
}

func TestBlockCommentNesting(t *testing.T) {
	c := cursor.New([]byte("/* outer /* inner */ still */rest"))
	lex, _ := AdvanceLexeme(c)
	testutil.Equal(t, types.KindBlockComment, lex.Kind)
	testutil.True(t, lex.Terminated)
	testutil.Equal(t, len("/* outer /* inner */ still */"), lex.Len)
}

func TestBlockCommentUnterminated(t *testing.T) {
	c := cursor.New([]byte("/* never closes"))
	lex, _ := AdvanceLexeme(c)
	testutil.Equal(t, types.KindBlockComment, lex.Kind)
	testutil.False(t, lex.Terminated)
}

func TestBlockCommentDocStyles(t *testing.T) {
	c := cursor.New([]byte("/*! inner */"))
	lex, _ := AdvanceLexeme(c)
	testutil.Equal(t, DocInner, lex.DocStyle)

	c = cursor.New([]byte("/** outer */"))
	lex, _ = AdvanceLexeme(c)
	testutil.Equal(t, DocOuter, lex.DocStyle)

	c = cursor.New([]byte("/**/"))
	lex, _ = AdvanceLexeme(c)
	testutil.Equal(t, DocNone, lex.DocStyle)

	c = cursor.New([]byte("/*** not doc */"))
	lex, _ = AdvanceLexeme(c)
	testutil.Equal(t, DocNone, lex.DocStyle)
}

func TestIntegerLiteral(t *testing.T) {
	c := cursor.New([]byte("3"))
	lex, info := AdvanceLexeme(c)
	testutil.Equal(t, types.KindLiteral, lex.Kind)
	testutil.Equal(t, LitInt, info.Kind)
	testutil.Equal(t, BaseDecimal, info.Base)
	testutil.False(t, info.Empty)

	c = cursor.New([]byte("0xff"))
	lex, info = AdvanceLexeme(c)
	testutil.Equal(t, BaseHex, info.Base)
	testutil.Equal(t, 4, lex.Len)

	c = cursor.New([]byte("0b"))
	_, info = AdvanceLexeme(c)
	testutil.True(t, info.Empty)
}

func TestFloatLiteral(t *testing.T) {
	c := cursor.New([]byte("1.5"))
	_, info := AdvanceLexeme(c)
	testutil.Equal(t, LitFloat, info.Kind)
	testutil.False(t, info.Empty)

	c = cursor.New([]byte("1e10"))
	_, info = AdvanceLexeme(c)
	testutil.Equal(t, LitFloat, info.Kind)

	c = cursor.New([]byte("1e"))
	_, info = AdvanceLexeme(c)
	testutil.True(t, info.Empty)
}

func TestRangeNotFloat(t *testing.T) {
	// "0..2" must not consume the dot as a decimal point.
	c := cursor.New([]byte("0..2"))
	lex, info := AdvanceLexeme(c)
	testutil.Equal(t, types.KindLiteral, lex.Kind)
	testutil.Equal(t, LitInt, info.Kind)
	testutil.Equal(t, 1, lex.Len)
}

func TestStringLiteral(t *testing.T) {
	c := cursor.New([]byte(`"hi \" there"`))
	lex, info := AdvanceLexeme(c)
	testutil.Equal(t, types.KindLiteral, lex.Kind)
	testutil.True(t, lex.Terminated)
	testutil.Equal(t, LitStr, info.Kind)

	c = cursor.New([]byte(`"unterminated`))
	lex, _ = AdvanceLexeme(c)
	testutil.False(t, lex.Terminated)
}

func TestEmptyStringLiteral(t *testing.T) {
	c := cursor.New([]byte(`""`))
	lex, _ := AdvanceLexeme(c)
	testutil.True(t, lex.Terminated)
	testutil.Equal(t, 2, lex.Len)

	// A lone escaped quote never closes the string.
	c = cursor.New([]byte(`"\"`))
	lex, _ = AdvanceLexeme(c)
	testutil.False(t, lex.Terminated)
	testutil.Equal(t, 3, lex.Len)
}

func TestLiteralSuffix(t *testing.T) {
	c := cursor.New([]byte("3px"))
	lex, info := AdvanceLexeme(c)
	testutil.Equal(t, LitInt, info.Kind)
	testutil.Equal(t, 3, lex.Len)
	testutil.Equal(t, 1, info.SuffixStart)

	// A suffix must start with an identifier-start codepoint; a digit
	// after a char literal is a separate lexeme.
	c = cursor.New([]byte("'a'2"))
	lex, info = AdvanceLexeme(c)
	testutil.Equal(t, 3, lex.Len)
	testutil.Equal(t, 3, info.SuffixStart)

	c = cursor.New([]byte("'a'z8"))
	lex, info = AdvanceLexeme(c)
	testutil.Equal(t, 5, lex.Len)
	testutil.Equal(t, 3, info.SuffixStart)
}

func TestCharLiteralShortForm(t *testing.T) {
	c := cursor.New([]byte("'a'"))
	lex, info := AdvanceLexeme(c)
	testutil.Equal(t, types.KindLiteral, lex.Kind)
	testutil.True(t, lex.Terminated)
	testutil.Equal(t, LitChar, info.Kind)
	testutil.Equal(t, 3, lex.Len)
}

func TestCharLiteralEdges(t *testing.T) {
	c := cursor.New([]byte("''"))
	lex, _ := AdvanceLexeme(c)
	testutil.True(t, lex.Terminated)
	testutil.Equal(t, 2, lex.Len)

	c = cursor.New([]byte(`'\''`))
	lex, _ = AdvanceLexeme(c)
	testutil.True(t, lex.Terminated)
	testutil.Equal(t, 4, lex.Len)

	// A slash aborts the scan so a following comment isn't swallowed.
	c = cursor.New([]byte("'x // comment"))
	lex, _ = AdvanceLexeme(c)
	testutil.False(t, lex.Terminated)
}

func TestByteStringAndByteLiteral(t *testing.T) {
	c := cursor.New([]byte(`b"hi"`))
	_, info := AdvanceLexeme(c)
	testutil.Equal(t, LitByteStr, info.Kind)

	c = cursor.New([]byte(`b'x'`))
	_, info = AdvanceLexeme(c)
	testutil.Equal(t, LitByte, info.Kind)
}

func TestCStringLiteral(t *testing.T) {
	c := cursor.New([]byte(`c"hi"`))
	_, info := AdvanceLexeme(c)
	testutil.Equal(t, LitCStr, info.Kind)
}

func TestRawString(t *testing.T) {
	c := cursor.New([]byte(`r#"a "quoted" thing"#`))
	lex, info := AdvanceLexeme(c)
	testutil.Equal(t, types.KindLiteral, lex.Kind)
	testutil.True(t, lex.Terminated)
	testutil.Equal(t, LitRawStr, info.Kind)
	testutil.Equal(t, 1, info.NHashes)

	c = cursor.New([]byte(`r"plain raw"`))
	_, info = AdvanceLexeme(c)
	testutil.Equal(t, 0, info.NHashes)
}

func TestRawStringNearMiss(t *testing.T) {
	c := cursor.New([]byte(`r##"x"#`))
	lex, info := AdvanceLexeme(c)
	testutil.False(t, lex.Terminated)
	testutil.Equal(t, NoTerminator, info.NHashes)
	// The hint points at the first hash of the longest near-miss close.
	testutil.Equal(t, 6, info.PossibleTerminatorOffset)

	// Extra trailing hashes stay outside the lexeme.
	c = cursor.New([]byte(`r#"x"##`))
	lex, info = AdvanceLexeme(c)
	testutil.True(t, lex.Terminated)
	testutil.Equal(t, 1, info.NHashes)
	testutil.Equal(t, 6, lex.Len)
}

func TestBinaryBasePrefixEatsDecimalRun(t *testing.T) {
	// Out-of-range digits extend the lexeme; validity is a later layer's
	// concern, not a lexeme boundary.
	c := cursor.New([]byte("0b102"))
	lex, info := AdvanceLexeme(c)
	testutil.Equal(t, LitInt, info.Kind)
	testutil.Equal(t, BaseBinary, info.Base)
	testutil.False(t, info.Empty)
	testutil.Equal(t, 5, lex.Len)
}

func TestRawIdentifier(t *testing.T) {
	c := cursor.New([]byte(`r#fn`))
	lex, _ := AdvanceLexeme(c)
	testutil.Equal(t, types.KindRawIdent, lex.Kind)
	testutil.Equal(t, 4, lex.Len)
}

func TestInvalidPrefix(t *testing.T) {
	c := cursor.New([]byte(`foo"bar"`))
	lex, _ := AdvanceLexeme(c)
	testutil.Equal(t, types.KindInvalidPrefix, lex.Kind)
	testutil.Equal(t, 3, lex.Len)
}

func TestInvalidIdentEmojiStart(t *testing.T) {
	c := cursor.New([]byte("🎉name"))
	lex, _ := AdvanceLexeme(c)
	testutil.Equal(t, types.KindInvalidIdent, lex.Kind)
}

func TestEOF(t *testing.T) {
	c := cursor.New(nil)
	lex, _ := AdvanceLexeme(c)
	testutil.Equal(t, types.KindEof, lex.Kind)
	testutil.Equal(t, 0, lex.Len)
}
