package errors

import "fmt"

// Span is a contiguous range of the source text.
// Offset and Length count characters (runes), not bytes.
type Span struct {
	Offset int
	Length int
}

func NewSpan(offset int, length int) Span {
	return Span{
		Offset: offset,
		Length: length,
	}
}

// Combine produces a span starting at the receiver which reaches up to the end of `end`.
// The receiver must be the span of the first token of a construct and `end` the span of its last token.
// The result is order-sensitive and only meaningful for left-to-right, non-overlapping spans.
func (self Span) Combine(end Span) Span {
	gap := end.Offset - self.Offset
	if gap < 0 {
		gap = -gap
	}

	return Span{
		Offset: self.Offset,
		Length: self.Length + end.Length + (gap - 1),
	}
}

// Bounds returns the half-open range [start, end) covered by this span.
func (self Span) Bounds() (start int, end int) {
	return self.Offset, self.Offset + self.Length
}

func (self Span) String() string {
	return fmt.Sprintf("(%d+%d)", self.Offset, self.Length)
}
