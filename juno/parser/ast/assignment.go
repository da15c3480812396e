package ast

import (
	"fmt"

	"github.com/smarthome-go/juno/juno/errors"
)

//
// Mutation (`x -> value`)
//

type Mutation struct {
	Target Identifier
	Value  Node
	Range  errors.Span
}

func (self Mutation) Kind() NodeKind    { return MutationKind }
func (self Mutation) Span() errors.Span { return self.Range }
func (self Mutation) String() string    { return fmt.Sprintf("%s -> %s", self.Target, self.Value) }
func (Mutation) node()                  {}

//
// Declaration (`x = value`)
//

type Declaration struct {
	Name Identifier
	// Initializer is nil if the declaration has no initial value.
	Initializer Node
	Range       errors.Span
}

func (self Declaration) Kind() NodeKind    { return DeclarationKind }
func (self Declaration) Span() errors.Span { return self.Range }
func (self Declaration) String() string {
	if self.Initializer == nil {
		return self.Name.String()
	}
	return fmt.Sprintf("%s = %s", self.Name, self.Initializer)
}
func (Declaration) node() {}
