package lexer

import "unicode"

// isWhitespace reports whether r is one of the codepoints spec.md §4.2
// classifies as whitespace: tab, LF, VT, FF, CR, space, NEL (U+0085),
// left-to-right/right-to-left marks (U+200E/U+200F), and the Unicode
// line/paragraph separators (U+2028/U+2029).
func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u0085', '\u200E', '\u200F', '\u2028', '\u2029':
		return true
	}
	return false
}

// isIDStart approximates Unicode XID_Start: Go's unicode package has no
// XID_Start/XID_Continue tables, so this combines IsLetter with the Nl
// (letter-number, e.g. Roman numerals) category plus underscore, which is
// the closest stdlib-only approximation available.
func isIDStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

// isIDContinue approximates Unicode XID_Continue: letters, digits,
// underscore, and the combining-mark/connector-punctuation categories
// XID_Continue additionally admits.
func isIDContinue(r rune) bool {
	if isIDStart(r) || unicode.IsDigit(r) {
		return true
	}
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Pc, r)
}

// emojiRange is a closed codepoint range.
type emojiRange struct {
	lo, hi rune
}

// emojiRanges approximates the Unicode "emoji presentation" property with
// the handful of blocks that account for the overwhelming majority of
// emoji in practice. No corpus or ecosystem library in reach of this
// module ships an Emoji property table, so this is a hand-written
// approximation rather than a derived one; see DESIGN.md.
//
//nolint:gochecknoglobals
var emojiRanges = []emojiRange{
	{0x2190, 0x21FF}, // arrows
	{0x2300, 0x23FF}, // misc technical
	{0x25A0, 0x25FF}, // geometric shapes
	{0x2600, 0x27BF}, // misc symbols + dingbats
	{0x2B00, 0x2BFF}, // misc symbols and arrows
	{0x1F000, 0x1F0FF},
	{0x1F100, 0x1F1FF}, // regional indicators
	{0x1F200, 0x1F2FF},
	{0x1F300, 0x1F5FF}, // misc symbols and pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport and map
	{0x1F700, 0x1F77F},
	{0x1F900, 0x1F9FF}, // supplemental symbols and pictographs
	{0x1FA70, 0x1FAFF},
}

// ZWJ is the zero-width joiner codepoint, admitted inside emoji-started
// invalid-identifier runs (spec.md §4.2).
const ZWJ = '\u200D'

// isEmoji reports whether r falls in one of the emoji blocks above.
func isEmoji(r rune) bool {
	for _, rg := range emojiRanges {
		if r >= rg.lo && r <= rg.hi {
			return true
		}
	}
	return false
}
