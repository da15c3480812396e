package ast

import (
	"fmt"
	"strings"
)

// Dump renders a node and all of its children as an indented tree for inspection.
func Dump(node Node) string {
	var output strings.Builder
	dump(&output, node, 0, "")
	return output.String()
}

func dump(output *strings.Builder, node Node, indent int, label string) {
	spaces := strings.Repeat("  ", indent)
	fmt.Fprintf(output, "%s%s", spaces, label)

	switch node := node.(type) {
	case NumberLiteral:
		fmt.Fprintf(output, "NUMBER(%s) %s\n", node, node.Range)
	case StringLiteral:
		fmt.Fprintf(output, "STRING(%q) %s\n", node.Value, node.Range)
	case Identifier:
		fmt.Fprintf(output, "SYMBOL(%s) %s\n", node.Name, node.Range)
	case BinaryOp:
		fmt.Fprintf(output, "BINARY %s (\n", node.Range)
		dump(output, node.Left, indent+1, "LHS: ")
		fmt.Fprintf(output, "%s  OP: %s\n", spaces, node.Operator.Name())
		dump(output, node.Right, indent+1, "RHS: ")
		fmt.Fprintf(output, "%s)\n", spaces)
	case Mutation:
		fmt.Fprintf(output, "MUTATION %s (\n", node.Range)
		dump(output, node.Target, indent+1, "SYM: ")
		dump(output, node.Value, indent+1, "VAL: ")
		fmt.Fprintf(output, "%s)\n", spaces)
	case Call:
		fmt.Fprintf(output, "CALL[%d] %s (\n", node.Arity(), node.Range)
		dump(output, node.Callee, indent+1, "NAME: ")
		fmt.Fprintf(output, "%s  ARGS(\n", spaces)
		for _, arg := range node.Arguments {
			dump(output, arg, indent+2, "")
		}
		fmt.Fprintf(output, "%s  )\n%s)\n", spaces, spaces)
	case Declaration:
		fmt.Fprintf(output, "ASSIGN %s (\n", node.Range)
		dump(output, node.Name, indent+1, "NAME: ")
		if node.Initializer != nil {
			dump(output, node.Initializer, indent+1, "INIT: ")
		}
		fmt.Fprintf(output, "%s)\n", spaces)
	default:
		panic("A new node kind was added without updating this code")
	}
}
