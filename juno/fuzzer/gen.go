package fuzzer

import (
	"fmt"
	"math/rand"
	"strings"
)

var identifiers = []string{"x", "y", "foo", "add", "std.print", "value1", "ÿ"}
var numbers = []string{"0", "1", "42", "3.5", "0.25", "4711"}
var operators = []string{"+", "-", "*", "/"}
var separators = []string{" ", "  ", "\t", "\n", " \r\n "}

// Program is a randomly generated statement.
// `Canonical` is what the parsed tree renders as via `String()`.
type Program struct {
	Source    string
	Canonical string
}

type Generator struct {
	randSource rand.Source
	maxDepth   uint
}

func NewGenerator(seed int64, maxDepth uint) Generator {
	return Generator{
		randSource: rand.NewSource(seed),
		maxDepth:   maxDepth,
	}
}

func ChoseRandom[T any](input []T, randSource rand.Source) T {
	r := rand.New(randSource)
	chosenIndex := r.Intn(len(input))
	return input[chosenIndex]
}

func (self *Generator) chance(percent int) bool {
	return rand.New(self.randSource).Intn(100) < percent
}

// fragment is a token sequence together with its canonical rendering.
type fragment struct {
	tokens    []string
	canonical string
}

func (self *Generator) Program() Program {
	statement := self.node(0)

	var source strings.Builder
	for idx, token := range statement.tokens {
		if idx > 0 {
			source.WriteString(ChoseRandom(separators, self.randSource))
		}
		source.WriteString(token)
	}

	return Program{
		Source:    source.String(),
		Canonical: statement.canonical,
	}
}

func (self *Generator) node(depth uint) fragment {
	value := self.binary(depth)

	if !self.chance(40) {
		return value
	}

	name := ChoseRandom(identifiers, self.randSource)
	operator := ChoseRandom([]string{"=", "->"}, self.randSource)

	return fragment{
		tokens:    append([]string{name, operator}, value.tokens...),
		canonical: fmt.Sprintf("%s %s %s", name, operator, value.canonical),
	}
}

func (self *Generator) binary(depth uint) fragment {
	lhs := self.call(depth)

	if depth >= self.maxDepth || !self.chance(50) {
		return lhs
	}

	operator := ChoseRandom(operators, self.randSource)
	rhs := self.binary(depth + 1)

	tokens := append(lhs.tokens, operator)
	return fragment{
		tokens:    append(tokens, rhs.tokens...),
		canonical: fmt.Sprintf("(%s %s %s)", lhs.canonical, operator, rhs.canonical),
	}
}

func (self *Generator) call(depth uint) fragment {
	callee := self.atom()

	if depth >= self.maxDepth || !self.chance(30) {
		return callee
	}

	tokens := append(callee.tokens, "(")
	args := make([]string, 0)

	argCount := rand.New(self.randSource).Intn(3) + 1
	for i := 0; i < argCount; i++ {
		if i > 0 {
			tokens = append(tokens, ",")
		}
		arg := self.node(depth + 1)
		tokens = append(tokens, arg.tokens...)
		args = append(args, arg.canonical)
	}

	return fragment{
		tokens:    append(tokens, ")"),
		canonical: fmt.Sprintf("%s(%s)", callee.canonical, strings.Join(args, ", ")),
	}
}

func (self *Generator) atom() fragment {
	if self.chance(50) {
		name := ChoseRandom(identifiers, self.randSource)
		return fragment{tokens: []string{name}, canonical: name}
	}

	number := ChoseRandom(numbers, self.randSource)
	return fragment{tokens: []string{number}, canonical: number}
}
