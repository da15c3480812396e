package lexer

import (
	"fmt"

	"github.com/smarthome-go/juno/juno/diagnostic"
	"github.com/smarthome-go/juno/juno/errors"
	"github.com/smarthome-go/juno/juno/lexer/util"
)

//
// Lexer
//

type Lexer struct {
	currentIndex int
	currentChar  *rune
	nextChar     *rune
	program      []rune
	location     errors.Position
	filename     string
	// Lexical errors never stop the lexer, they are collected here instead.
	Errors []diagnostic.Diagnostic
}

func NewLexer(programSource string, filename string) Lexer {
	program := []rune(programSource)
	programLen := len(program)
	var currentChar *rune
	var nextChar *rune

	if programLen == 0 {
		currentChar = nil
		nextChar = nil
	} else if programLen == 1 {
		currentChar = &program[0]
		nextChar = nil
	} else {
		currentChar = &program[0]
		nextChar = &program[1]
	}

	return Lexer{
		currentIndex: 0,
		currentChar:  currentChar,
		nextChar:     nextChar,
		program:      program,
		location:     errors.NewPosition(),
		filename:     filename,
		Errors:       make([]diagnostic.Diagnostic, 0),
	}
}

// Tokenize lexes the entire program.
// The returned token slice always ends with exactly one EOF token.
func Tokenize(program string, filename string) ([]Token, []diagnostic.Diagnostic) {
	lexer := NewLexer(program, filename)
	tokens := make([]Token, 0)

	for {
		token := lexer.NextToken()
		tokens = append(tokens, token)
		if token.Kind == EOF {
			break
		}
	}

	return tokens, lexer.Errors
}

func (self *Lexer) advance() {
	self.location.Advance(self.currentChar != nil && *self.currentChar == '\n')

	self.currentIndex++
	programLen := len(self.program)

	if self.currentIndex >= programLen {
		self.currentChar = nil
	} else {
		self.currentChar = &self.program[self.currentIndex]
	}

	if self.currentIndex+1 >= programLen {
		self.nextChar = nil
	} else {
		self.nextChar = &self.program[self.currentIndex+1]
	}
}

func (self *Lexer) diagnostic(kind diagnostic.Kind, message string, span errors.Span, pos errors.Position) {
	self.Errors = append(self.Errors, *diagnostic.New(kind, message, self.filename, span, pos))
}

// NextToken returns the next token of the program.
// Tokens carry the position of their last character.
// Once the end of the program is reached, every call returns an EOF token.
func (self *Lexer) NextToken() Token {
	for self.currentChar != nil {
		char := *self.currentChar

		if util.IsWhitespace(char) || char == '\n' {
			self.advance()
			continue
		}

		switch char {
		case '"':
			if token, ok := self.makeString(); ok {
				return token
			}
			continue
		case '(':
			return self.makeSingleChar(LParen)
		case ')':
			return self.makeSingleChar(RParen)
		case '=':
			return self.makeSingleChar(Equals)
		case '+':
			return self.makeSingleChar(Plus)
		case '*':
			return self.makeSingleChar(Star)
		case '/':
			return self.makeSingleChar(Slash)
		case ';':
			return self.makeSingleChar(Semicolon)
		case '^':
			return self.makeSingleChar(Caret)
		case ',':
			return self.makeSingleChar(Comma)
		case '-':
			return self.makeMinus()
		}

		if util.IsDigit(char) {
			return self.makeNumber()
		}
		if util.IsLetter(char) {
			return self.makeName()
		}

		self.diagnostic(
			diagnostic.IllegalChar,
			fmt.Sprintf("illegal character: %c", char),
			errors.NewSpan(self.currentIndex, 1),
			self.location,
		)
		self.advance()
	}

	return newToken(
		EOF,
		"",
		errors.NewSpan(self.currentIndex, 0),
		self.location,
	)
}

func (self *Lexer) makeSingleChar(kind TokenKind) Token {
	token := newToken(
		kind,
		string(*self.currentChar),
		errors.NewSpan(self.currentIndex, 1),
		self.location,
	)
	self.advance()
	return token
}

func (self *Lexer) makeMinus() Token {
	if self.nextChar != nil && *self.nextChar == '>' {
		startIndex := self.currentIndex
		self.advance()

		token := newToken(
			Arrow,
			"->",
			errors.NewSpan(startIndex, 2),
			self.location,
		)
		self.advance()
		return token
	}

	return self.makeSingleChar(Minus)
}

// makeNumber does not validate the number, this is left to the parser.
func (self *Lexer) makeNumber() Token {
	return self.makeWhile(Number, func(char rune) bool {
		return util.IsDigit(char) || char == '.'
	})
}

func (self *Lexer) makeName() Token {
	return self.makeWhile(Identifier, func(char rune) bool {
		return util.IsAlphanumeric(char) || char == '.'
	})
}

func (self *Lexer) makeWhile(kind TokenKind, accept func(char rune) bool) Token {
	startIndex := self.currentIndex
	endLocation := self.location

	value := []rune{*self.currentChar}
	self.advance()

	for self.currentChar != nil && accept(*self.currentChar) {
		value = append(value, *self.currentChar)
		endLocation = self.location
		self.advance()
	}

	return newToken(
		kind,
		string(value),
		errors.NewSpan(startIndex, len(value)),
		endLocation,
	)
}

// makeString returns false if the string is never closed.
// In this case a diagnostic is emitted and no token is produced.
func (self *Lexer) makeString() (Token, bool) {
	startIndex := self.currentIndex
	endLocation := self.location
	valueBuf := make([]rune, 0)

	// skip opening quote
	self.advance()

	for self.currentChar != nil && *self.currentChar != '"' {
		valueBuf = append(valueBuf, *self.currentChar)
		endLocation = self.location
		self.advance()
	}

	if self.currentChar == nil {
		// reported at the last character of the program
		self.diagnostic(
			diagnostic.SyntaxError,
			"unterminated string literal",
			errors.NewSpan(startIndex, len(self.program)-startIndex),
			endLocation,
		)
		return Token{}, false
	}

	token := newToken(
		String,
		string(valueBuf),
		// covers the opening quote and the contents
		errors.NewSpan(startIndex, len(valueBuf)+1),
		// position of the closing quote
		self.location,
	)

	// skip closing quote
	self.advance()
	return token, true
}
