package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/smarthome-go/juno/juno/config"
	"github.com/smarthome-go/juno/juno/diagnostic"
)

type printer struct {
	colored bool
}

func newPrinter(mode config.ColorMode) printer {
	colored := false

	switch mode {
	case config.ColorAlways:
		colored = true
	case config.ColorAuto:
		colored = term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
	}

	color.NoColor = !colored
	return printer{colored: colored}
}

func (self printer) diagnostics(diagnostics []diagnostic.Diagnostic, program string) {
	for _, item := range diagnostics {
		fmt.Println(self.diagnostic(item, program))
	}
}

// Diagnostics pointing at the end of the program (e.g. at EOF) have no excerpt to show.
func (self printer) diagnostic(item diagnostic.Diagnostic, program string) string {
	if !item.Renderable(program) {
		return color.New(color.Bold, color.FgRed).Sprint(item.Summary())
	}

	if self.colored {
		return item.Colored(program)
	}
	return item.Display(program)
}
