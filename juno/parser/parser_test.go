package parser

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarthome-go/juno/juno/diagnostic"
	"github.com/smarthome-go/juno/juno/errors"
	"github.com/smarthome-go/juno/juno/lexer"
	"github.com/smarthome-go/juno/juno/parser/ast"
)

const EXAMPLE_DIR = "../../examples/"

func parse(t *testing.T, program string) ([]ast.Node, []diagnostic.Diagnostic) {
	t.Helper()
	p := NewParser(program, "testpath.juno")
	nodes, errs := p.Parse()
	require.LessOrEqual(t, len(nodes), 1, spew.Sdump(nodes))
	return nodes, errs
}

func mustParse(t *testing.T, program string) ast.Node {
	t.Helper()
	nodes, errs := parse(t, program)
	require.Empty(t, errs, spew.Sdump(errs))
	require.Len(t, nodes, 1)
	return nodes[0]
}

func TestMutationWithCall(t *testing.T) {
	program := "x -> add (1, 2)"
	node := mustParse(t, program)
	t.Log("\n" + ast.Dump(node))

	mutation, ok := node.(ast.Mutation)
	require.True(t, ok, spew.Sdump(node))
	assert.Equal(t, errors.NewSpan(0, 15), mutation.Span())
	assert.Equal(t, "x", mutation.Target.Name)

	call, ok := mutation.Value.(ast.Call)
	require.True(t, ok, spew.Sdump(mutation.Value))
	assert.Equal(t, ast.Identifier{Name: "add", Range: errors.NewSpan(5, 3)}, call.Callee)
	assert.Equal(t, errors.NewSpan(5, 12), call.Range)
	assert.Equal(t, []ast.Node{
		ast.NumberLiteral{Value: 1.0, Range: errors.NewSpan(10, 1)},
		ast.NumberLiteral{Value: 2.0, Range: errors.NewSpan(13, 1)},
	}, call.Arguments)
}

func TestDeclaration(t *testing.T) {
	node := mustParse(t, "x = 5 - 10")

	decl, ok := node.(ast.Declaration)
	require.True(t, ok, spew.Sdump(node))
	assert.Equal(t, errors.NewSpan(0, 10), decl.Range)
	assert.Equal(t, "x", decl.Name.Name)
	assert.Equal(t, ast.BinaryOp{
		Left:     ast.NumberLiteral{Value: 5, Range: errors.NewSpan(4, 1)},
		Right:    ast.NumberLiteral{Value: 10, Range: errors.NewSpan(8, 2)},
		Operator: lexer.Minus,
		Range:    errors.NewSpan(4, 6),
	}, decl.Initializer)
}

func TestBinaryOperatorsAreRightAssociative(t *testing.T) {
	tests := []struct {
		program  string
		expected string
	}{
		{"1 - 2 - 3", "(1 - (2 - 3))"},
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 * 2 + 3", "(1 * (2 + 3))"},
		{"a / b / c", "(a / (b / c))"},
		{"f(1) + g(2)", "(f(1) + g(2))"},
	}

	for _, test := range tests {
		t.Run(test.program, func(t *testing.T) {
			assert.Equal(t, test.expected, mustParse(t, test.program).String())
		})
	}
}

func TestNestedCalls(t *testing.T) {
	node := mustParse(t, "f(g(1), x = 2, y -> 3)")
	assert.Equal(t, "f(g(1), x = 2, y -> 3)", node.String())

	call := node.(ast.Call)
	assert.Equal(t, 3, call.Arity())
	assert.Equal(t, ast.CallKind, call.Arguments[0].Kind())
	assert.Equal(t, ast.DeclarationKind, call.Arguments[1].Kind())
	assert.Equal(t, ast.MutationKind, call.Arguments[2].Kind())
}

func TestOnlyFirstStatementIsParsed(t *testing.T) {
	nodes, errs := parse(t, "x = 1; y = 2")
	assert.Empty(t, errs)
	require.Len(t, nodes, 1)
	assert.Equal(t, "x = 1", nodes[0].String())

	// trailing input is ignored
	nodes, errs = parse(t, "x y")
	assert.Empty(t, errs)
	require.Len(t, nodes, 1)
	assert.Equal(t, ast.Identifier{Name: "x", Range: errors.NewSpan(0, 1)}, nodes[0])
}

func TestEmptyProgram(t *testing.T) {
	nodes, errs := parse(t, "")
	assert.Empty(t, nodes)

	require.Len(t, errs, 1)
	assert.Equal(t, diagnostic.SyntaxError, errs[0].Kind)
	assert.Equal(t, "expected expression", errs[0].Message)
	assert.Equal(t, errors.NewSpan(0, 0), errs[0].Span)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		program string
		kind    diagnostic.Kind
		message string
		span    errors.Span
		pos     errors.Position
	}{
		{"1.2.3", diagnostic.ParseError, "error parsing literal", errors.NewSpan(0, 5), errors.Position{Line: 1, Column: 5}},
		{"x = 1..2", diagnostic.ParseError, "error parsing literal", errors.NewSpan(4, 4), errors.Position{Line: 1, Column: 8}},
		{"1 = 2", diagnostic.SyntaxError, "expected symbol", errors.NewSpan(0, 1), errors.Position{Line: 1, Column: 1}},
		{"f(x) -> 2", diagnostic.SyntaxError, "expected symbol", errors.NewSpan(0, 4), errors.Position{Line: 1, Column: 1}},
		{"add(1 2)", diagnostic.SyntaxError, "expected closing parenthesis", errors.NewSpan(0, 3), errors.Position{Line: 1, Column: 3}},
		{"add(1, 2", diagnostic.SyntaxError, "expected closing parenthesis", errors.NewSpan(0, 3), errors.Position{Line: 1, Column: 3}},
		{"add()", diagnostic.SyntaxError, "expected expression", errors.NewSpan(4, 1), errors.Position{Line: 1, Column: 5}},
		{"x = 5 +", diagnostic.SyntaxError, "expected expression", errors.NewSpan(7, 0), errors.Position{Line: 1, Column: 8}},
		{"greeting = \"hello\"", diagnostic.SyntaxError, "expected expression", errors.NewSpan(11, 6), errors.Position{Line: 1, Column: 18}},
		{"x -> \"hello\"", diagnostic.SyntaxError, "expected expression", errors.NewSpan(5, 6), errors.Position{Line: 1, Column: 12}},
		{"print(\"hi\")", diagnostic.SyntaxError, "expected expression", errors.NewSpan(6, 3), errors.Position{Line: 1, Column: 10}},
		{"\n  ;", diagnostic.SyntaxError, "expected expression", errors.NewSpan(3, 1), errors.Position{Line: 2, Column: 3}},
	}

	for _, test := range tests {
		t.Run(test.program, func(t *testing.T) {
			nodes, errs := parse(t, test.program)
			assert.Empty(t, nodes)
			require.Len(t, errs, 1, spew.Sdump(errs))

			assert.Equal(t, test.kind, errs[0].Kind)
			assert.Equal(t, test.message, errs[0].Message)
			assert.Equal(t, test.span, errs[0].Span)
			assert.Equal(t, test.pos, errs[0].Pos)
			assert.Equal(t, "testpath.juno", errs[0].Filename)
		})
	}
}

func TestUnterminatedString(t *testing.T) {
	nodes, errs := parse(t, "x = \"abc")
	assert.Empty(t, nodes)

	// the lexical error comes first, followed by the parse error it causes
	require.Len(t, errs, 2)
	assert.Equal(t, diagnostic.SyntaxError, errs[0].Kind)
	assert.Equal(t, "unterminated string literal", errs[0].Message)
	assert.Equal(t, "expected expression", errs[1].Message)
}

func TestLexicalErrorsDoNotStopParsing(t *testing.T) {
	nodes, errs := parse(t, "x $= 1")
	require.Len(t, nodes, 1)
	assert.Equal(t, "x = 1", nodes[0].String())

	require.Len(t, errs, 1)
	assert.Equal(t, diagnostic.IllegalChar, errs[0].Kind)
}

func TestHugeNumberSaturates(t *testing.T) {
	node := mustParse(t, "1"+strings.Repeat("0", 400))
	number, ok := node.(ast.NumberLiteral)
	require.True(t, ok)
	assert.True(t, number.Value > 1e308)
}

func TestCursorIsClamped(t *testing.T) {
	p := NewParser("a", "testpath.juno")

	p.position = 10
	assert.Equal(t, lexer.EOF, p.current().Kind)
	assert.Equal(t, lexer.EOF, p.lookahead().Kind)

	p.position = -5
	assert.Equal(t, lexer.Identifier, p.current().Kind)
}

func TestErrorsAccumulateAcrossCalls(t *testing.T) {
	p := NewParser("x = 1 ;", "testpath.juno")

	nodes, errs := p.Parse()
	assert.Len(t, nodes, 1)
	assert.Empty(t, errs)

	// the cursor now rests on `;`
	nodes, errs = p.Parse()
	assert.Empty(t, nodes)
	require.Len(t, errs, 1)
	assert.Equal(t, errors.NewSpan(6, 1), errs[0].Span)
}

func FuzzParser(f *testing.F) {
	files, err := os.ReadDir(EXAMPLE_DIR)
	if err != nil {
		panic(err.Error())
	}

	for _, file := range files {
		content, err := os.ReadFile(fmt.Sprintf("%s/%s", EXAMPLE_DIR, file.Name()))
		if err != nil {
			panic(err.Error())
		}
		f.Add(string(content))
	}

	f.Fuzz(func(t *testing.T, input string) {
		p := NewParser(input, t.Name())
		nodes, _ := p.Parse()

		if len(nodes) > 1 {
			t.Errorf("Parser produced %d nodes for input: %q", len(nodes), input)
		}

		if p.Tokens[len(p.Tokens)-1].Kind != lexer.EOF {
			t.Errorf("Token stream does not end in EOF for input: %q", input)
		}
	})
}
