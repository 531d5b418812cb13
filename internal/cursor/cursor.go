// Package cursor implements the streaming character cursor the lexer reads
// from: a forward-only, UTF-8-aware reader over a source buffer with cheap
// 1/2/3-codepoint lookahead and lexeme-length tracking.
package cursor

import "unicode/utf8"

// EOFChar is the sentinel returned by First/Second/Third when the cursor is
// at or past the end of input. Callers must disambiguate a genuine NUL byte
// in the source from end-of-input via IsEOF.
const EOFChar rune = 0

// Cursor is a forward-only reader over a UTF-8 byte slice. It never copies
// the source; position and lexeme-start are both byte offsets into it.
type Cursor struct {
	src   []byte
	pos   int
	start int
}

// New creates a Cursor over src, positioned at the start.
func New(src []byte) *Cursor {
	return &Cursor{src: src}
}

// Position returns the byte offset of the next character to consume.
func (c *Cursor) Position() int {
	return c.pos
}

// LexemeStart returns the byte offset of the start of the lexeme currently
// under construction.
func (c *Cursor) LexemeStart() int {
	return c.start
}

// LexemeLen returns the number of bytes consumed since the last
// ResetLexemeSpan (or since the cursor was created, if never reset).
func (c *Cursor) LexemeLen() int {
	return c.pos - c.start
}

// ResetLexemeSpan marks the current position as the new lexeme start.
func (c *Cursor) ResetLexemeSpan() {
	c.start = c.pos
}

// IsEOF reports whether the cursor has consumed the entire source.
func (c *Cursor) IsEOF() bool {
	return c.pos >= len(c.src)
}

// First peeks the next codepoint without consuming it. Returns EOFChar at
// end of input.
func (c *Cursor) First() rune {
	return c.nth(0)
}

// Second peeks the codepoint after First without consuming.
func (c *Cursor) Second() rune {
	return c.nth(1)
}

// Third peeks the codepoint after Second without consuming.
func (c *Cursor) Third() rune {
	return c.nth(2)
}

// nth returns the nth (0-based) codepoint ahead of the cursor, or EOFChar
// if the source ends before reaching it.
func (c *Cursor) nth(n int) rune {
	off := c.pos
	for range n {
		if off >= len(c.src) {
			return EOFChar
		}
		_, size := utf8.DecodeRune(c.src[off:])
		off += size
	}
	if off >= len(c.src) {
		return EOFChar
	}
	r, _ := utf8.DecodeRune(c.src[off:])
	return r
}

// Bump advances one codepoint, returning it and true, or (0, false) at end
// of input. Advances the byte position by the codepoint's UTF-8 length.
func (c *Cursor) Bump() (rune, bool) {
	if c.IsEOF() {
		return 0, false
	}
	r, size := utf8.DecodeRune(c.src[c.pos:])
	c.pos += size
	return r, true
}

// EatWhile advances the cursor while pred holds for First() and the cursor
// has not reached end of input.
func (c *Cursor) EatWhile(pred func(rune) bool) {
	for !c.IsEOF() && pred(c.First()) {
		c.Bump()
	}
}

// Slice returns the source bytes covered by [from, to).
func (c *Cursor) Slice(from, to int) []byte {
	return c.src[from:to]
}

// Len returns the total length of the source in bytes.
func (c *Cursor) Len() int {
	return len(c.src)
}
