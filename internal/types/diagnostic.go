package types

import "fmt"

// DiagKind discriminates the lexical diagnostic variants the parser emits.
type DiagKind int

const (
	// DiagUnclosed covers an unterminated block comment or an open-block
	// slot still on the stack at end of input. An unterminated string
	// literal is not reported with it.
	DiagUnclosed DiagKind = iota
	// DiagExpected covers an unexpected lexeme in a position where a
	// specific, known set of lexeme kinds was valid.
	DiagExpected
	// DiagDupeComma covers a repeated comma in a function-call argument list
	// or a function definition's parameter list.
	DiagDupeComma
	// DiagEof covers an unexpected end of input mid-production.
	DiagEof
)

// Diagnostic is a single lexical diagnostic. Exactly the fields relevant to
// Kind are meaningful: Span for Unclosed/DupeComma, Span+Expected for
// Expected, Offset for Eof.
type Diagnostic struct {
	Kind     DiagKind
	Span     BSpan
	Expected []LexKind // only for DiagExpected
	Offset   ByteOffset // only for DiagEof
}

// Unclosed builds an Unclosed diagnostic over span.
func Unclosed(span BSpan) Diagnostic {
	return Diagnostic{Kind: DiagUnclosed, Span: span}
}

// Expected builds an Expected diagnostic: span saw something other than one
// of the listed kinds.
func Expected(span BSpan, want []LexKind) Diagnostic {
	return Diagnostic{Kind: DiagExpected, Span: span, Expected: want}
}

// DupeComma builds a DupeComma diagnostic over the repeated comma's span.
func DupeComma(span BSpan) Diagnostic {
	return Diagnostic{Kind: DiagDupeComma, Span: span}
}

// EofAt builds an Eof diagnostic at the given byte offset.
func EofAt(offset ByteOffset) Diagnostic {
	return Diagnostic{Kind: DiagEof, Offset: offset}
}

// String renders a diagnostic for test failure output and debug logging.
func (d Diagnostic) String() string {
	switch d.Kind {
	case DiagUnclosed:
		return fmt.Sprintf("unclosed at %d..%d", d.Span.From, d.Span.To)
	case DiagExpected:
		return fmt.Sprintf("expected %v at %d..%d", d.Expected, d.Span.From, d.Span.To)
	case DiagDupeComma:
		return fmt.Sprintf("duplicate comma at %d..%d", d.Span.From, d.Span.To)
	case DiagEof:
		return fmt.Sprintf("unexpected end of input at %d", d.Offset)
	default:
		return "unknown diagnostic"
	}
}

// sameExpectedSet reports whether a and b contain the same kinds in the
// same order — merges only fire when the parser asked for the identical
// production twice in a row, not merely an overlapping one.
func sameExpectedSet(a, b []LexKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Diagnostics is the append-only collection the Reader accumulates: lexical
// diagnostics with structural coalescing, plus a side channel of free-form
// internal-invariant messages that never merge.
type Diagnostics struct {
	Lexical []Diagnostic
	Other   []string
}

// Append adds d to the collection, coalescing it into the tail entry when
// the coalescing rule (spec §4.3) applies:
//   - Expected merges into a tail Expected with an identical expected set
//     when new.Span.From == tail.Span.To.
//   - DupeComma merges into an adjacent tail DupeComma the same way.
//   - Everything else is pushed verbatim.
func (ds *Diagnostics) Append(d Diagnostic) {
	if n := len(ds.Lexical); n > 0 {
		tail := &ds.Lexical[n-1]
		switch d.Kind {
		case DiagExpected:
			if tail.Kind == DiagExpected && sameExpectedSet(tail.Expected, d.Expected) && d.Span.From == tail.Span.To {
				tail.Span.To = d.Span.To
				return
			}
		case DiagDupeComma:
			if tail.Kind == DiagDupeComma && d.Span.From == tail.Span.To {
				tail.Span.To = d.Span.To
				return
			}
		case DiagUnclosed, DiagEof:
		}
	}
	ds.Lexical = append(ds.Lexical, d)
}

// AppendOther records a free-form internal-invariant diagnostic. These never
// coalesce; they are for states that indicate a bug in the parser itself
// rather than a malformed program.
func (ds *Diagnostics) AppendOther(message string, args ...any) {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	ds.Other = append(ds.Other, message)
}

// Empty reports whether no diagnostics of either kind were recorded.
func (ds *Diagnostics) Empty() bool {
	return len(ds.Lexical) == 0 && len(ds.Other) == 0
}
