package diagnostic

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/smarthome-go/juno/juno/errors"
)

type Kind uint8

const (
	SyntaxError Kind = iota
	ParseError
	IllegalChar
)

func (self Kind) String() string {
	switch self {
	case SyntaxError:
		return "SyntaxError"
	case ParseError:
		return "ParseError"
	case IllegalChar:
		return "IllegalChar"
	default:
		panic("A new diagnostic kind was added without updating this code")
	}
}

//
// Diagnostic
//

type Diagnostic struct {
	Kind     Kind            `json:"kind"`
	Message  string          `json:"message"`
	Filename string          `json:"filename"`
	Span     errors.Span     `json:"span"`
	Pos      errors.Position `json:"pos"`
}

func New(kind Kind, message string, filename string, span errors.Span, pos errors.Position) *Diagnostic {
	return &Diagnostic{
		Kind:     kind,
		Message:  message,
		Filename: filename,
		Span:     span,
		Pos:      pos,
	}
}

func NewSyntaxError(message string, filename string, span errors.Span, pos errors.Position) *Diagnostic {
	return New(SyntaxError, message, filename, span, pos)
}

func (self Diagnostic) Error() string {
	return fmt.Sprintf("%s:%s: %s: %s", self.Filename, self.Pos, self.Kind, self.Message)
}

// Summary renders the header and the message without a source excerpt.
func (self Diagnostic) Summary() string {
	return fmt.Sprintf("%s\n%s\n", self.header(), self.Message)
}

// Renderable reports whether the span starts inside `program`.
// Only renderable diagnostics may be passed to `Render`, `Display` or `Colored`.
func (self Diagnostic) Renderable(program string) bool {
	return self.Span.Offset >= 0 && self.Span.Offset < len([]rune(program))
}

// Render writes the diagnostic including an underlined source excerpt.
// Panics if the span does not start inside `program`.
func (self Diagnostic) Render(writer io.Writer, program string) error {
	_, err := io.WriteString(writer, self.render(program, plainStyle))
	return err
}

func (self Diagnostic) Display(program string) string {
	return self.render(program, plainStyle)
}

// Colored is like `Display` but paints the output using ANSI escape sequences.
func (self Diagnostic) Colored(program string) string {
	return self.render(program, colorStyle())
}

func (self Diagnostic) header() string {
	return fmt.Sprintf("error: (%s) in (%s:%s)", self.Kind, self.Filename, self.Pos)
}

func (self Diagnostic) render(program string, style style) string {
	source := []rune(program)
	start, end := self.Span.Bounds()

	if start < 0 || start >= len(source) {
		panic(fmt.Sprintf("diagnostic span %s does not start inside the program (%d characters)", self.Span, len(source)))
	}
	if end > len(source) {
		end = len(source)
	}

	excerpt := strings.Map(func(char rune) rune {
		switch char {
		case '\n', '\t', '\r':
			return ' '
		}
		return char
	}, string(source[start:end]))

	markers := "^"
	if self.Span.Length > 1 {
		markers += strings.Repeat("~", self.Span.Length-1)
	}

	lineNumber := fmt.Sprint(self.Pos.Line)
	padding := strings.Repeat(" ", len(lineNumber))

	var output strings.Builder
	fmt.Fprintln(&output, style.header(self.header()))
	fmt.Fprintf(&output, "%s\n", style.gutter(padding+" |"))
	fmt.Fprintf(&output, "%s %s\n", style.gutter(lineNumber+" |"), excerpt)
	fmt.Fprintf(&output, "%s %s\n", style.gutter(padding+" |"), style.marker(markers))
	fmt.Fprintln(&output, style.message(self.Message))
	return output.String()
}

//
// Styles
//

type style struct {
	header  func(a ...interface{}) string
	gutter  func(a ...interface{}) string
	marker  func(a ...interface{}) string
	message func(a ...interface{}) string
}

var plainStyle = style{
	header:  fmt.Sprint,
	gutter:  fmt.Sprint,
	marker:  fmt.Sprint,
	message: fmt.Sprint,
}

func colorStyle() style {
	paint := func(attributes ...color.Attribute) func(a ...interface{}) string {
		col := color.New(attributes...)
		col.EnableColor()
		return col.SprintFunc()
	}

	return style{
		header:  paint(color.Bold, color.FgRed),
		gutter:  paint(color.FgHiBlack),
		marker:  paint(color.Bold, color.FgRed),
		message: paint(color.Bold),
	}
}
