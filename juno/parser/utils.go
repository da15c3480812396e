package parser

import (
	"github.com/smarthome-go/juno/juno/diagnostic"
	"github.com/smarthome-go/juno/juno/errors"
	"github.com/smarthome-go/juno/juno/lexer"
)

func (self Parser) syntaxErr(message string, span errors.Span, pos errors.Position) *diagnostic.Diagnostic {
	return diagnostic.NewSyntaxError(message, self.Filename, span, pos)
}

func (self Parser) syntaxErrAt(message string, token lexer.Token) *diagnostic.Diagnostic {
	return self.syntaxErr(message, token.Span, token.Pos)
}

func (self Parser) parseErrAt(message string, token lexer.Token) *diagnostic.Diagnostic {
	return diagnostic.New(diagnostic.ParseError, message, self.Filename, token.Span, token.Pos)
}

func isBinaryOperator(kind lexer.TokenKind) bool {
	switch kind {
	case lexer.Plus, lexer.Minus, lexer.Star, lexer.Slash:
		return true
	default:
		return false
	}
}
