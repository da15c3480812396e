package parser

import (
	"github.com/smarthome-go/juno/juno/diagnostic"
	"github.com/smarthome-go/juno/juno/lexer"
	"github.com/smarthome-go/juno/juno/parser/ast"
)

type Parser struct {
	Tokens   []lexer.Token
	Errors   []diagnostic.Diagnostic
	Filename string
	// Index of the current token, may point beyond the end of `Tokens`.
	position int
}

// NewParser lexes the whole program eagerly.
// Lexical errors become the first entries of the parser's `Errors`.
func NewParser(program string, filename string) Parser {
	tokens, errs := lexer.Tokenize(program, filename)

	return Parser{
		Tokens:   tokens,
		Errors:   errs,
		Filename: filename,
		position: 0,
	}
}

// Parse parses exactly one top-level construct.
// A failed construct is not added to the returned nodes, its diagnostic is appended to `Errors` instead.
func (self *Parser) Parse() ([]ast.Node, []diagnostic.Diagnostic) {
	nodes := make([]ast.Node, 0, 1)

	node, err := self.node()
	if err != nil {
		self.Errors = append(self.Errors, *err)
		return nodes, self.Errors
	}

	nodes = append(nodes, node)
	self.position++

	return nodes, self.Errors
}

// current and lookahead never fail: past either end of the stream they yield the nearest token.
// Because the stream always ends with EOF, reading past the end yields EOF repeatedly.
func (self Parser) current() lexer.Token {
	return self.tokenAt(self.position)
}

func (self Parser) lookahead() lexer.Token {
	return self.tokenAt(self.position + 1)
}

func (self Parser) tokenAt(index int) lexer.Token {
	if index < 0 {
		index = 0
	}
	if index > len(self.Tokens)-1 {
		index = len(self.Tokens) - 1
	}
	return self.Tokens[index]
}
