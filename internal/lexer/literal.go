package lexer

import "github.com/wisplang/wisp/internal/cursor"

func isDecDigit(r rune) bool { return r >= '0' && r <= '9' }
func isHexDigit(r rune) bool {
	return isDecDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// eatDigits consumes a run of digits matching isDigit, allowing '_' as a
// separator that does not itself count toward "at least one digit seen".
// Returns whether any digit (not counting separators) was consumed.
func eatDigits(c *cursor.Cursor, isDigit func(rune) bool) bool {
	seen := false
	for {
		switch {
		case c.First() == '_':
			c.Bump()
		case isDigit(c.First()):
			seen = true
			c.Bump()
		default:
			return seen
		}
	}
}

// eatFloatExponent consumes an optional sign and then a run of decimal
// digits; returns whether at least one digit was consumed.
func eatFloatExponent(c *cursor.Cursor) bool {
	if c.First() == '-' || c.First() == '+' {
		c.Bump()
	}
	return eatDigits(c, isDecDigit)
}

// eatSuffix consumes a literal suffix: an identifier-shaped run, which must
// begin with an identifier-start codepoint. A digit directly after a literal
// is not a suffix.
func eatSuffix(c *cursor.Cursor) {
	if !isIDStart(c.First()) {
		return
	}
	c.Bump()
	c.EatWhile(isIDContinue)
}

// intLexeme finishes an integer literal: the suffix begins at the current
// position and is consumed unconditionally, empty or not.
func intLexeme(c *cursor.Cursor, base Base, empty bool) (Lexeme, LiteralInfo) {
	suffixStart := c.LexemeLen()
	eatSuffix(c)
	return Lexeme{Kind: kindLiteral, Len: c.LexemeLen()}, LiteralInfo{
		Kind: LitInt, Base: base, Empty: empty, SuffixStart: suffixStart,
		NHashes: NoTerminator, PossibleTerminatorOffset: NoTerminator,
	}
}

// floatLexeme finishes a float literal the same way.
func floatLexeme(c *cursor.Cursor, base Base, emptyExponent bool) (Lexeme, LiteralInfo) {
	suffixStart := c.LexemeLen()
	eatSuffix(c)
	return Lexeme{Kind: kindLiteral, Len: c.LexemeLen()}, LiteralInfo{
		Kind: LitFloat, Base: base, Empty: emptyExponent, SuffixStart: suffixStart,
		NHashes: NoTerminator, PossibleTerminatorOffset: NoTerminator,
	}
}

// numericLiteral scans an integer or float literal. first is the already-
// consumed leading digit. Note that a binary or octal base prefix still
// consumes a full decimal digit run; out-of-range digits are a later
// layer's problem, not a lexeme boundary.
func numericLiteral(c *cursor.Cursor, first rune) (Lexeme, LiteralInfo) {
	base := BaseDecimal
	if first == '0' {
		switch {
		case c.First() == 'b':
			c.Bump()
			base = BaseBinary
			if !eatDigits(c, isDecDigit) {
				return intLexeme(c, base, true)
			}
		case c.First() == 'o':
			c.Bump()
			base = BaseOctal
			if !eatDigits(c, isDecDigit) {
				return intLexeme(c, base, true)
			}
		case c.First() == 'x':
			c.Bump()
			base = BaseHex
			if !eatDigits(c, isHexDigit) {
				return intLexeme(c, base, true)
			}
		case isDecDigit(c.First()) || c.First() == '_':
			eatDigits(c, isDecDigit)
		case c.First() == '.' || c.First() == 'e' || c.First() == 'E':
			// A lone 0 with a float continuation; handled below.
		default:
			// Just a 0.
			return intLexeme(c, base, false)
		}
	} else {
		eatDigits(c, isDecDigit)
	}

	switch {
	// Don't be greedy if this is actually an integer literal followed by
	// field/method access or a range pattern (`0..2`, `12.foo()`).
	case c.First() == '.' && c.Second() != '.' && !isIDStart(c.Second()):
		c.Bump()
		emptyExponent := false
		if isDecDigit(c.First()) {
			eatDigits(c, isDecDigit)
			if c.First() == 'e' || c.First() == 'E' {
				c.Bump()
				emptyExponent = !eatFloatExponent(c)
			}
		}
		return floatLexeme(c, base, emptyExponent)
	case c.First() == 'e' || c.First() == 'E':
		c.Bump()
		return floatLexeme(c, base, !eatFloatExponent(c))
	default:
		return intLexeme(c, base, false)
	}
}

// scanCharBody consumes the body of a char/byte literal, the opening quote
// already eaten, and reports whether it found a valid closing quote. The
// single-symbol short form (`c c '` where the first c is not a backslash)
// is handled up front.
func scanCharBody(c *cursor.Cursor) bool {
	if c.Second() == '\'' && c.First() != '\\' {
		c.Bump()
		c.Bump()
		return true
	}

	for !c.IsEOF() {
		switch c.First() {
		case '\'':
			c.Bump()
			return true
		case '\\':
			// An escaped character counts as one symbol; bump twice.
			c.Bump()
			c.Bump()
		case '/':
			// Probably the beginning of a comment; don't swallow it into
			// the error report.
			return false
		case '\n':
			if c.Second() != '\'' {
				return false
			}
			c.Bump()
		default:
			c.Bump()
		}
	}
	return false
}

// charOrByteLiteral scans a char/byte literal. The opening quote has already
// been consumed by the caller.
func charOrByteLiteral(c *cursor.Cursor, isByte bool) (Lexeme, LiteralInfo) {
	kind := LitChar
	if isByte {
		kind = LitByte
	}
	terminated := scanCharBody(c)
	suffixStart := c.LexemeLen()
	if terminated {
		eatSuffix(c)
	}
	return Lexeme{Kind: kindLiteral, Len: c.LexemeLen(), Terminated: terminated},
		LiteralInfo{Kind: kind, SuffixStart: suffixStart, NHashes: NoTerminator, PossibleTerminatorOffset: NoTerminator}
}

// strLiteral scans a double-quoted string, byte-string, or c-string,
// honoring only the \\ and \" two-character escapes. The opening quote has
// already been consumed by the caller.
func strLiteral(c *cursor.Cursor, kind LiteralKind) (Lexeme, LiteralInfo) {
	terminated := false
	for {
		r, ok := c.Bump()
		if !ok {
			break
		}
		if r == '"' {
			terminated = true
			break
		}
		if r == '\\' && (c.First() == '\\' || c.First() == '"') {
			c.Bump()
		}
	}
	suffixStart := c.LexemeLen()
	if terminated {
		eatSuffix(c)
	}
	return Lexeme{Kind: kindLiteral, Len: c.LexemeLen(), Terminated: terminated},
		LiteralInfo{Kind: kind, SuffixStart: suffixStart, NHashes: NoTerminator, PossibleTerminatorOffset: NoTerminator}
}

// maxRawHashes is the largest raw-string delimiter count that fits the
// 8-bit budget; more opening hashes invalidate the whole literal even when
// a matching terminator exists.
const maxRawHashes = 255

// rawString scans a raw/raw-byte/raw-c string. The cursor is positioned
// just past the 'r' (and any byte/c prefix already consumed by the
// caller), before the hash run and opening quote.
func rawString(c *cursor.Cursor, isByte, isC bool) (Lexeme, LiteralInfo) {
	kind := LitRawStr
	switch {
	case isByte:
		kind = LitRawByteStr
	case isC:
		kind = LitRawCStr
	}

	nHashesOpen := 0
	for c.First() == '#' {
		c.Bump()
		nHashesOpen++
	}

	// The quote must come next; whatever is there instead is consumed so
	// the bad starter lands inside this lexeme rather than re-dispatching.
	if r, ok := c.Bump(); !ok || r != '"' {
		return Lexeme{Kind: kindLiteral, Len: c.LexemeLen()},
			LiteralInfo{Kind: kind, SuffixStart: c.LexemeLen(), NHashes: NoTerminator, PossibleTerminatorOffset: NoTerminator}
	}

	terminated := false
	possibleTerminatorOffset := NoTerminator
	maxCloseSeen := 0
	for {
		c.EatWhile(func(r rune) bool { return r != '"' })
		if c.IsEOF() {
			break
		}
		c.Bump() // closing "

		// This will not consume extra trailing hashes: r###"abcde"#### is
		// the 3-hash raw string followed by a lone '#' lexeme.
		nHashesClose := 0
		for c.First() == '#' && nHashesClose < nHashesOpen {
			c.Bump()
			nHashesClose++
		}
		if nHashesClose == nHashesOpen {
			terminated = true
			break
		}
		if nHashesClose > maxCloseSeen {
			// Track the longest near-miss as a hint about where the
			// terminator was probably intended.
			maxCloseSeen = nHashesClose
			possibleTerminatorOffset = c.LexemeLen() - nHashesClose
		}
	}

	nHashesResult := NoTerminator
	if terminated && nHashesOpen <= maxRawHashes {
		nHashesResult = nHashesOpen
	}
	suffixStart := c.LexemeLen()
	if nHashesResult != NoTerminator {
		eatSuffix(c)
	}
	return Lexeme{Kind: kindLiteral, Len: c.LexemeLen(), Terminated: nHashesResult != NoTerminator}, LiteralInfo{
		Kind: kind, NHashes: nHashesResult, SuffixStart: suffixStart,
		PossibleTerminatorOffset: possibleTerminatorOffset,
	}
}
