package lexer

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/smarthome-go/juno/juno/errors"
)

type Token struct {
	Kind   TokenKind
	Span   errors.Span
	Pos    errors.Position
	Lexeme string
}

func newToken(kind TokenKind, lexeme string, span errors.Span, pos errors.Position) Token {
	return Token{
		Kind:   kind,
		Span:   span,
		Pos:    pos,
		Lexeme: lexeme,
	}
}

func (self Token) String() string {
	return fmt.Sprintf("(%s) | (%s) %s (%s)", self.Span, self.Pos, self.Kind.Name(), self.Lexeme)
}

type TokenKind uint8

const (
	EOF TokenKind = iota

	Identifier // foobar
	Number     // 42, 3.1415
	String     // "foo" (the lexeme excludes the quotes)

	Plus  // +
	Minus // -
	Star  // *
	Slash // /

	Equals // =
	Arrow  // ->
	Caret  // ^

	Semicolon // ;
	Comma     // ,

	LParen // (
	RParen // )
)

// Kinds lists every token kind in declaration order.
var Kinds = []TokenKind{
	EOF,
	Identifier,
	Number,
	String,
	Plus,
	Minus,
	Star,
	Slash,
	Equals,
	Arrow,
	Caret,
	Semicolon,
	Comma,
	LParen,
	RParen,
}

func (self TokenKind) String() string {
	var display string
	switch self {
	case EOF:
		display = "EOF"
	case Identifier:
		display = "identifier"
	case Number:
		display = "number"
	case String:
		display = "string"
	case Plus:
		display = "+"
	case Minus:
		display = "-"
	case Star:
		display = "*"
	case Slash:
		display = "/"
	case Equals:
		display = "="
	case Arrow:
		display = "->"
	case Caret:
		display = "^"
	case Semicolon:
		display = ";"
	case Comma:
		display = ","
	case LParen:
		display = "("
	case RParen:
		display = ")"
	default:
		panic("A new token kind was added without updating this code")
	}
	return display
}

// Name returns the identifier-like name of the kind, as used in token dumps.
func (self TokenKind) Name() string {
	switch self {
	case EOF:
		return "EndOfInput"
	case Identifier:
		return "Identifier"
	case Number:
		return "Number"
	case String:
		return "String"
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case Star:
		return "Star"
	case Slash:
		return "Slash"
	case Equals:
		return "Equals"
	case Arrow:
		return "Arrow"
	case Caret:
		return "Caret"
	case Semicolon:
		return "Semicolon"
	case Comma:
		return "Comma"
	case LParen:
		return "LeftParen"
	case RParen:
		return "RightParen"
	default:
		panic("A new token kind was added without updating this code")
	}
}

// ParseTokenKind looks up a kind by its name (case-insensitive).
// Unknown names produce an error which suggests the closest valid name.
func ParseTokenKind(name string) (TokenKind, error) {
	bestDistance := -1
	bestName := ""

	for _, kind := range Kinds {
		if strings.EqualFold(kind.Name(), name) {
			return kind, nil
		}

		distance := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(kind.Name()))
		if bestDistance == -1 || distance < bestDistance {
			bestDistance = distance
			bestName = kind.Name()
		}
	}

	return EOF, fmt.Errorf("Unknown token kind `%s`: did you mean `%s`?", name, bestName)
}
