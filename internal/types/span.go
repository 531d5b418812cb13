package types

// ByteOffset is a byte position in source text.
type ByteOffset uint32

// BSpan is a half-open byte range into the source buffer.
type BSpan struct {
	From ByteOffset
	To   ByteOffset
}

// NewBSpan creates a BSpan from start and end byte offsets.
func NewBSpan(from, to ByteOffset) BSpan {
	return BSpan{From: from, To: to}
}

// Empty reports whether the span covers no bytes.
func (s BSpan) Empty() bool {
	return s.From == s.To
}

// Len returns the number of bytes the span covers.
func (s BSpan) Len() ByteOffset {
	return s.To - s.From
}

// TSpan is a half-open index range into a Module's token vector.
type TSpan struct {
	From int
	To   int
}

// NewTSpan creates a TSpan from start and end token indices.
func NewTSpan(from, to int) TSpan {
	return TSpan{From: from, To: to}
}

// Empty reports whether the span covers no tokens.
func (s TSpan) Empty() bool {
	return s.From == s.To
}

// Len returns the number of tokens the span covers.
func (s TSpan) Len() int {
	return s.To - s.From
}
