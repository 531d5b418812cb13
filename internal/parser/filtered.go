package parser

import (
	"github.com/wisplang/wisp/internal/lexer"
	"github.com/wisplang/wisp/internal/types"
)

// sigLex is one lexed-and-classified lexeme buffered for lookahead: trivia
// (whitespace, comments) has already been stripped out by the time a sigLex
// reaches the Reader's lookahead queue.
type sigLex struct {
	lex  lexer.Lexeme
	info lexer.LiteralInfo
	span types.BSpan
}

// filteredState discriminates the three outcomes a grammar helper can reach,
// mirroring the original implementation's tri-state parse result (spec.md
// §4.4 "Error recovery"; SPEC_FULL.md's original_source note on
// src/parse/iter.rs's result shape).
type filteredState int

const (
	filteredCorrect filteredState = iota
	filteredInputEnd
	filteredOther
)

// filtered is the tri-state result every grammar helper returns: normal
// progress carrying a value, end of input, or an unexpected lexeme the
// caller didn't ask for. The offending lexeme (state == filteredOther) is
// never consumed by the helper that reports it — it stays in the Reader's
// lookahead queue so whichever level chooses to stop unwinding can decide
// whether to reprocess it.
type filtered[T any] struct {
	state filteredState
	value T
	other sigLex
}

func correct[T any](v T) filtered[T] {
	return filtered[T]{state: filteredCorrect, value: v}
}

func inputEnd[T any]() filtered[T] {
	return filtered[T]{state: filteredInputEnd}
}

func unexpected[T any](lex sigLex) filtered[T] {
	return filtered[T]{state: filteredOther, other: lex}
}

// ok reports whether the filtered result carries a usable value.
func (f filtered[T]) ok() bool {
	return f.state == filteredCorrect
}
