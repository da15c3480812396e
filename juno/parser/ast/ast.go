package ast

import (
	"github.com/smarthome-go/juno/juno/errors"
)

// Node is implemented by the closed set of node types in this package.
type Node interface {
	Kind() NodeKind
	Span() errors.Span
	String() string
	node()
}

type NodeKind uint8

const (
	NumberLiteralKind NodeKind = iota
	StringLiteralKind
	IdentifierKind
	BinaryOpKind
	MutationKind
	CallKind
	DeclarationKind
)

func (self NodeKind) String() string {
	switch self {
	case NumberLiteralKind:
		return "NumberLiteral"
	case StringLiteralKind:
		return "StringLiteral"
	case IdentifierKind:
		return "Identifier"
	case BinaryOpKind:
		return "BinaryOp"
	case MutationKind:
		return "Mutation"
	case CallKind:
		return "Call"
	case DeclarationKind:
		return "Declaration"
	default:
		panic("A new node kind was added without updating this code")
	}
}

// Children returns the direct child nodes in source order.
func Children(node Node) []Node {
	switch node := node.(type) {
	case NumberLiteral, StringLiteral, Identifier:
		return nil
	case BinaryOp:
		return []Node{node.Left, node.Right}
	case Mutation:
		return []Node{node.Target, node.Value}
	case Call:
		return append([]Node{node.Callee}, node.Arguments...)
	case Declaration:
		if node.Initializer == nil {
			return []Node{node.Name}
		}
		return []Node{node.Name, node.Initializer}
	default:
		panic("A new node kind was added without updating this code")
	}
}

// Walk visits `node` and its descendants in pre-order.
// Returning false from `visit` skips the children of the current node.
func Walk(node Node, visit func(node Node) bool) {
	if !visit(node) {
		return
	}
	for _, child := range Children(node) {
		Walk(child, visit)
	}
}
