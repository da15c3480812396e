package juno

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/smarthome-go/juno/juno/diagnostic"
	"github.com/smarthome-go/juno/juno/lexer"
	"github.com/smarthome-go/juno/juno/parser"
	"github.com/smarthome-go/juno/juno/parser/ast"
)

// Source is a program together with the name of the file it was read from.
type Source struct {
	Filename string
	Program  string
}

type Result struct {
	Source
	Tokens []lexer.Token
	Nodes  []ast.Node
	Errors []diagnostic.Diagnostic
}

// HasErrors reports whether lexing or parsing produced any diagnostic.
func (self Result) HasErrors() bool {
	return len(self.Errors) > 0
}

func Tokenize(program string, filename string) ([]lexer.Token, []diagnostic.Diagnostic) {
	return lexer.Tokenize(program, filename)
}

// Parse lexes and parses the first top-level construct of the given program.
func Parse(program string, filename string) Result {
	p := parser.NewParser(program, filename)
	nodes, errs := p.Parse()

	return Result{
		Source: Source{
			Filename: filename,
			Program:  program,
		},
		Tokens: p.Tokens,
		Nodes:  nodes,
		Errors: errs,
	}
}

// ParseFiles parses independent sources concurrently using at most `workers` goroutines.
// A non-positive `workers` means no limit.
// Results are returned in the order of `sources`, the only error is the cancellation of `ctx`.
func ParseFiles(ctx context.Context, sources []Source, workers int) ([]Result, error) {
	results := make([]Result, len(sources))

	group, groupCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		group.SetLimit(workers)
	}

	for idx, source := range sources {
		idx, source := idx, source
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			results[idx] = Parse(source.Program, source.Filename)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
