// Package lexer turns a cursor into a stream of lexemes: {kind, length}
// pairs with no text payload. The caller slices the source at the running
// byte offset to recover lexeme text.
package lexer

import "github.com/wisplang/wisp/internal/types"

// DocStyle classifies a comment as plain, inner-doc (//! or /*!), or
// outer-doc (/// or /**).
type DocStyle int

const (
	DocNone DocStyle = iota
	DocInner
	DocOuter
)

// LiteralKind discriminates the literal-kind field of a Literal lexeme.
type LiteralKind int

const (
	LitInt LiteralKind = iota
	LitFloat
	LitChar
	LitByte
	LitStr
	LitByteStr
	LitCStr
	LitRawStr
	LitRawByteStr
	LitRawCStr
)

// Base is the numeric base of an integer or float literal.
type Base int

const (
	BaseBinary  Base = 2
	BaseOctal   Base = 8
	BaseDecimal Base = 10
	BaseHex     Base = 16
)

// Lexeme is the lexer's output unit: a classification and a byte length,
// plus the handful of per-kind flags spec.md §4.2 calls out (doc style,
// terminated). Literal-specific detail (base, empty flags, suffix offset,
// raw-string hash counts) travels separately in a LiteralInfo, returned
// alongside the Lexeme only when Kind is types.KindLiteral — the Lexeme
// itself never carries literal text or a variant payload.
type Lexeme struct {
	Kind types.LexKind
	Len  int

	// DocStyle is meaningful only for LineComment and BlockComment.
	DocStyle DocStyle
	// Terminated is meaningful for BlockComment and the Char/Byte/Str/
	// ByteStr/CStr/RawStr/RawByteStr/RawCStr literal kinds.
	Terminated bool
}

// NoTerminator is the NHashes/PossibleTerminatorOffset sentinel meaning
// "not applicable" or "no terminator found".
const NoTerminator = -1

// LiteralInfo carries the detail specific to a Literal lexeme: which
// literal kind it is, its numeric base, whether it was empty where a
// digit/exponent was required, where its suffix starts, and (for raw
// string kinds) its hash-delimiter bookkeeping.
type LiteralInfo struct {
	Kind LiteralKind
	Base Base // meaningful for LitInt/LitFloat

	// Empty is empty_int for LitInt, empty_exponent for LitFloat.
	Empty bool

	// SuffixStart is the byte offset, relative to the lexeme start, where
	// the literal suffix (if any) begins.
	SuffixStart int

	// NHashes is the raw string's matched hash count, or NoTerminator if no
	// valid terminator was found. Meaningful for LitRawStr/LitRawByteStr/
	// LitRawCStr.
	NHashes int

	// PossibleTerminatorOffset is the byte offset (from the lexeme start: the
	// 'r', or the 'b'/'c' prefix when there is one) of the first hash of a
	// closing hash run that exceeded the previous best match but fell short of the
	// goal, or NoTerminator if none was seen. Diagnostic-quality detail only.
	PossibleTerminatorOffset int
}
