package parser

import (
	"strconv"

	"github.com/smarthome-go/juno/juno/diagnostic"
	"github.com/smarthome-go/juno/juno/lexer"
	"github.com/smarthome-go/juno/juno/parser/ast"
)

// Rules consume tokens up to and including the last token of their construct,
// leaving it as the current token.

func (self *Parser) node() (ast.Node, *diagnostic.Diagnostic) {
	return self.assign()
}

// assign: binary (('->' | '=') binary)?
func (self *Parser) assign() (ast.Node, *diagnostic.Diagnostic) {
	start := self.current()

	expr, err := self.binary()
	if err != nil {
		return nil, err
	}

	operator := self.lookahead().Kind
	if operator != lexer.Arrow && operator != lexer.Equals {
		return expr, nil
	}

	// skip the expression and the operator
	self.position += 2

	target, isIdent := expr.(ast.Identifier)
	if !isIdent {
		return nil, self.syntaxErr("expected symbol", expr.Span(), start.Pos)
	}

	value, err := self.binary()
	if err != nil {
		return nil, err
	}

	span := start.Span.Combine(self.current().Span)

	if operator == lexer.Arrow {
		return ast.Mutation{
			Target: target,
			Value:  value,
			Range:  span,
		}, nil
	}

	return ast.Declaration{
		Name:        target,
		Initializer: value,
		Range:       span,
	}, nil
}

// binary: call (('+' | '-' | '*' | '/') binary)?
// All operators share one precedence level and associate to the right.
func (self *Parser) binary() (ast.Node, *diagnostic.Diagnostic) {
	start := self.current()

	lhs, err := self.call()
	if err != nil {
		return nil, err
	}

	if !isBinaryOperator(self.lookahead().Kind) {
		return lhs, nil
	}

	// skip the expression
	self.position++
	operator := self.current().Kind
	// skip the operator
	self.position++

	rhs, err := self.binary()
	if err != nil {
		return nil, err
	}

	return ast.BinaryOp{
		Left:     lhs,
		Right:    rhs,
		Operator: operator,
		Range:    start.Span.Combine(self.current().Span),
	}, nil
}

// call: atom ('(' node (',' node)* ')')?
func (self *Parser) call() (ast.Node, *diagnostic.Diagnostic) {
	start := self.current()

	callee, err := self.atom()
	if err != nil {
		return nil, err
	}

	if self.lookahead().Kind != lexer.LParen {
		return callee, nil
	}

	// skip the callee and the opening parenthesis
	self.position += 2

	args := make([]ast.Node, 0)
	for {
		arg, err := self.node()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		switch self.lookahead().Kind {
		case lexer.Comma:
			self.position += 2
			continue
		case lexer.RParen:
			self.position++
		default:
			return nil, self.syntaxErrAt("expected closing parenthesis", start)
		}
		break
	}

	return ast.Call{
		Callee:    callee,
		Arguments: args,
		Range:     start.Span.Combine(self.current().Span),
	}, nil
}

// atom: identifier | number
func (self *Parser) atom() (ast.Node, *diagnostic.Diagnostic) {
	token := self.current()

	switch token.Kind {
	case lexer.Identifier:
		return ast.Identifier{
			Name:  token.Lexeme,
			Range: token.Span,
		}, nil
	case lexer.Number:
		value, err := strconv.ParseFloat(token.Lexeme, 64)
		// out-of-range literals saturate to +-Inf instead of failing
		if err != nil && err.(*strconv.NumError).Err != strconv.ErrRange {
			return nil, self.parseErrAt("error parsing literal", token)
		}
		return ast.NumberLiteral{
			Value: value,
			Range: token.Span,
		}, nil
	default:
		return nil, self.syntaxErrAt("expected expression", token)
	}
}
