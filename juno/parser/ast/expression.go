package ast

import (
	"fmt"
	"strings"

	"github.com/smarthome-go/juno/juno/errors"
	"github.com/smarthome-go/juno/juno/lexer"
)

//
// Binary operation
//

type BinaryOp struct {
	Left     Node
	Right    Node
	Operator lexer.TokenKind
	Range    errors.Span
}

func (self BinaryOp) Kind() NodeKind    { return BinaryOpKind }
func (self BinaryOp) Span() errors.Span { return self.Range }
func (self BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", self.Left, self.Operator, self.Right)
}
func (BinaryOp) node() {}

//
// Call
//

type Call struct {
	Callee    Node
	Arguments []Node
	Range     errors.Span
}

func (self Call) Kind() NodeKind    { return CallKind }
func (self Call) Span() errors.Span { return self.Range }
func (self Call) String() string {
	args := make([]string, 0, len(self.Arguments))
	for _, arg := range self.Arguments {
		args = append(args, arg.String())
	}
	return fmt.Sprintf("%s(%s)", self.Callee, strings.Join(args, ", "))
}
func (Call) node() {}

// Arity is the number of arguments passed to the callee.
func (self Call) Arity() int { return len(self.Arguments) }
