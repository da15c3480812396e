package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smarthome-go/juno/juno"
	"github.com/smarthome-go/juno/juno/config"
)

func TestPrinterFallsBackToSummary(t *testing.T) {
	out := newPrinter(config.ColorNever)

	// the error points at EOF which lies outside of the program
	program := "x = 5 +"
	result := juno.Parse(program, "main.juno")
	assert.Len(t, result.Errors, 1)

	output := out.diagnostic(result.Errors[0], program)
	assert.Equal(t, "error: (SyntaxError) in (main.juno:1:8)\nexpected expression\n", output)
}

func TestPrinterRendersExcerpt(t *testing.T) {
	out := newPrinter(config.ColorNever)

	program := "1 = 2"
	result := juno.Parse(program, "main.juno")
	assert.Len(t, result.Errors, 1)

	output := out.diagnostic(result.Errors[0], program)
	assert.Equal(t, result.Errors[0].Display(program), output)
}

func TestPrinterAlwaysColors(t *testing.T) {
	out := newPrinter(config.ColorAlways)
	defer newPrinter(config.ColorNever)

	program := "1 = 2"
	result := juno.Parse(program, "main.juno")
	assert.Contains(t, out.diagnostic(result.Errors[0], program), "\x1b[")
}
