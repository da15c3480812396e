package util

import "unicode"

//
// Rune range helper functions
//

type RuneRange struct {
	min rune
	max rune
}

func IsRuneInRange(char rune, ranges ...RuneRange) bool {
	for _, ran := range ranges {
		if char >= ran.min && char <= ran.max {
			return true
		}
	}
	return false
}

// Only ASCII digits start a number so that every number lexeme remains parsable as a float.
func IsDigit(char rune) bool  { return IsRuneInRange(char, RuneRange{min: '0', max: '9'}) }
func IsLetter(char rune) bool { return unicode.IsLetter(char) }

func IsAlphanumeric(char rune) bool {
	return IsLetter(char) || unicode.IsDigit(char)
}

// IsWhitespace reports characters which are skipped without changing the line.
func IsWhitespace(char rune) bool {
	return char == ' ' || char == '\t' || char == '\r'
}
