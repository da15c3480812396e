package errors

import "fmt"

// Position is a human-readable source location (both fields start at 1).
// It is only used for display, never for range arithmetic.
type Position struct {
	Line   int
	Column int
}

func NewPosition() Position {
	return Position{
		Line:   1,
		Column: 1,
	}
}

// Advance moves the position past one character.
func (self *Position) Advance(newline bool) {
	if newline {
		self.Column = 1
		self.Line += 1
	} else {
		self.Column += 1
	}
}

func (self Position) String() string {
	return fmt.Sprintf("%d:%d", self.Line, self.Column)
}
