package lexer

import (
	"github.com/wisplang/wisp/internal/cursor"
	"github.com/wisplang/wisp/internal/types"
)

// kindLiteral is a local shorthand for the shared LexKind enum's literal
// member, used throughout this package's scanning helpers.
const kindLiteral = types.KindLiteral

// AdvanceLexeme scans a single lexeme starting at the cursor's current
// position. It resets the cursor's lexeme span, dispatches on the leading
// codepoint, and returns the lexeme plus (for Kind == types.KindLiteral)
// the literal-specific detail that doesn't fit in Lexeme's flat fields.
func AdvanceLexeme(c *cursor.Cursor) (Lexeme, LiteralInfo) {
	c.ResetLexemeSpan()
	if c.IsEOF() {
		return Lexeme{Kind: types.KindEof, Len: 0}, LiteralInfo{}
	}

	first, _ := c.Bump()

	switch {
	case first == '/':
		switch c.First() {
		case '/':
			return lineComment(c)
		case '*':
			return blockComment(c)
		}
		return punctLexeme(c, first)

	case isWhitespace(first):
		c.EatWhile(isWhitespace)
		return Lexeme{Kind: types.KindWhitespace, Len: c.LexemeLen()}, LiteralInfo{}

	case first == '\'':
		return charOrByteLiteral(c, false)

	case first == '"':
		return strLiteral(c, LitStr)

	case first == 'r':
		if lex, info, ok := tryRawPrefix(c, false, false); ok {
			return lex, info
		}
		return identOrInvalidPrefix(c)

	case first == 'b':
		switch c.First() {
		case '\'':
			c.Bump()
			return charOrByteLiteral(c, true)
		case '"':
			c.Bump()
			return strLiteral(c, LitByteStr)
		case 'r':
			if lex, info, ok := tryRawPrefixAfter(c, true, false); ok {
				return lex, info
			}
		}
		return identOrInvalidPrefix(c)

	case first == 'c':
		switch c.First() {
		case '"':
			c.Bump()
			return strLiteral(c, LitCStr)
		case 'r':
			if lex, info, ok := tryRawPrefixAfter(c, false, true); ok {
				return lex, info
			}
		}
		return identOrInvalidPrefix(c)

	case isDecDigit(first):
		return numericLiteral(c, first)

	case isIDStart(first):
		return identOrInvalidPrefix(c)

	case isEmoji(first):
		// Identifier starting with an emoji; lexed only for graceful
		// error recovery.
		return fakeIdentOrInvalidPrefix(c)

	default:
		return punctLexeme(c, first)
	}
}

// tryRawPrefix handles a leading 'r' (already consumed) that may start a
// raw string or a raw identifier.
func tryRawPrefix(c *cursor.Cursor, isByte, isC bool) (Lexeme, LiteralInfo, bool) {
	switch c.First() {
	case '#':
		if isIDStart(c.Second()) {
			c.Bump() // '#'
			c.EatWhile(isIDContinue)
			return Lexeme{Kind: types.KindRawIdent, Len: c.LexemeLen()}, LiteralInfo{}, true
		}
		lex, info := rawString(c, isByte, isC)
		return lex, info, true
	case '"':
		lex, info := rawString(c, isByte, isC)
		return lex, info, true
	}
	return Lexeme{}, LiteralInfo{}, false
}

// tryRawPrefixAfter handles a 'b'/'c' prefix (already consumed) immediately
// followed by 'r' that may start a raw byte/c string. The 'r' itself is
// still unconsumed on entry.
func tryRawPrefixAfter(c *cursor.Cursor, isByte, isC bool) (Lexeme, LiteralInfo, bool) {
	if c.Second() != '#' && c.Second() != '"' {
		return Lexeme{}, LiteralInfo{}, false
	}
	c.Bump() // 'r'
	lex, info, ok := tryRawPrefix(c, isByte, isC)
	return lex, info, ok
}

// identOrInvalidPrefix scans a generic identifier starting at the already-
// consumed first codepoint, reclassifying it as InvalidPrefix when
// immediately followed (no intervening whitespace) by '#', '"', or '\'',
// and degrading to the invalid-identifier scan when an emoji codepoint
// appears mid-run.
func identOrInvalidPrefix(c *cursor.Cursor) (Lexeme, LiteralInfo) {
	c.EatWhile(isIDContinue)
	switch {
	case c.First() == '#' || c.First() == '"' || c.First() == '\'':
		return Lexeme{Kind: types.KindInvalidPrefix, Len: c.LexemeLen()}, LiteralInfo{}
	case isEmoji(c.First()):
		return fakeIdentOrInvalidPrefix(c)
	}
	return Lexeme{Kind: types.KindIdent, Len: c.LexemeLen()}, LiteralInfo{}
}

// fakeIdentOrInvalidPrefix scans an identifier-like run that contains emoji:
// identifier-continue codepoints, emoji, and zero-width joiners all extend
// it. The trailing '#'/'"'/'\'' reclassification still applies.
func fakeIdentOrInvalidPrefix(c *cursor.Cursor) (Lexeme, LiteralInfo) {
	c.EatWhile(func(r rune) bool { return isIDContinue(r) || isEmoji(r) || r == ZWJ })
	switch c.First() {
	case '#', '"', '\'':
		return Lexeme{Kind: types.KindInvalidPrefix, Len: c.LexemeLen()}, LiteralInfo{}
	}
	return Lexeme{Kind: types.KindInvalidIdent, Len: c.LexemeLen()}, LiteralInfo{}
}

// lineComment scans "//" plus inner-doc ("//!"), outer-doc ("///" but not
// "////"), or plain, up to (excluding) the next newline. The two leading
// slashes: the first was consumed by the caller's dispatch, this consumes
// the second.
func lineComment(c *cursor.Cursor) (Lexeme, LiteralInfo) {
	c.Bump() // second '/'
	doc := DocNone
	switch {
	case c.First() == '!':
		doc = DocInner
		c.Bump()
	case c.First() == '/' && c.Second() != '/':
		doc = DocOuter
		c.Bump()
	}
	c.EatWhile(func(r rune) bool { return r != '\n' })
	return Lexeme{Kind: types.KindLineComment, Len: c.LexemeLen(), DocStyle: doc}, LiteralInfo{}
}

// blockComment scans "/*" plus inner-doc ("/*!"), outer-doc ("/**" but not
// "/***" nor "/**/"), or plain, with nested depth counting. Unterminated
// at EOF yields Terminated == false.
func blockComment(c *cursor.Cursor) (Lexeme, LiteralInfo) {
	c.Bump() // '*'
	doc := DocNone
	switch {
	case c.First() == '!':
		doc = DocInner
		c.Bump()
	case c.First() == '*' && c.Second() != '*' && c.Second() != '/':
		doc = DocOuter
		c.Bump()
	}

	depth := 1
	terminated := false
	for !c.IsEOF() {
		switch {
		case c.First() == '/' && c.Second() == '*':
			c.Bump()
			c.Bump()
			depth++
		case c.First() == '*' && c.Second() == '/':
			c.Bump()
			c.Bump()
			depth--
			if depth == 0 {
				terminated = true
			}
		default:
			c.Bump()
		}
		if terminated {
			break
		}
	}
	return Lexeme{Kind: types.KindBlockComment, Len: c.LexemeLen(), DocStyle: doc, Terminated: terminated}, LiteralInfo{}
}

// punctLexeme classifies a single already-consumed byte-range punctuator.
// first must be an ASCII codepoint for PunctKind's byte lookup to apply.
func punctLexeme(c *cursor.Cursor, first rune) (Lexeme, LiteralInfo) {
	if first < 128 {
		if kind, ok := types.PunctKind(byte(first)); ok {
			return Lexeme{Kind: kind, Len: c.LexemeLen()}, LiteralInfo{}
		}
	}
	return Lexeme{Kind: types.KindUnknown, Len: c.LexemeLen()}, LiteralInfo{}
}
