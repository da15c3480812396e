package ast

import (
	"fmt"
	"strconv"

	"github.com/smarthome-go/juno/juno/errors"
)

//
// Number literal
//

type NumberLiteral struct {
	Value float64
	Range errors.Span
}

func (self NumberLiteral) Kind() NodeKind    { return NumberLiteralKind }
func (self NumberLiteral) Span() errors.Span { return self.Range }
func (self NumberLiteral) String() string    { return strconv.FormatFloat(self.Value, 'g', -1, 64) }
func (NumberLiteral) node()                  {}

//
// String literal
//

type StringLiteral struct {
	Value string
	Range errors.Span
}

func (self StringLiteral) Kind() NodeKind    { return StringLiteralKind }
func (self StringLiteral) Span() errors.Span { return self.Range }
func (self StringLiteral) String() string    { return fmt.Sprintf("\"%s\"", self.Value) }
func (StringLiteral) node()                  {}

//
// Identifier
//

type Identifier struct {
	Name  string
	Range errors.Span
}

func (self Identifier) Kind() NodeKind    { return IdentifierKind }
func (self Identifier) Span() errors.Span { return self.Range }
func (self Identifier) String() string    { return self.Name }
func (Identifier) node()                  {}
