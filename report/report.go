// Package report collects the diagnostics emitted while scanning,
// parsing and evaluating. Diagnostics are advisory: no stage stops
// because of one, and nothing returns a count to the caller.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Sink receives diagnostics from every stage of the pipeline
type Sink interface {
	Error(line, column int, message string)
	Warning(line, column int, message string)
}

type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is one recorded message with its source position
type Diagnostic struct {
	Severity Severity
	Line     int
	Column   int
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s on line [%d:%d]", d.Severity, d.Message, d.Line, d.Column)
}

// Console writes diagnostics as
//
//	error: <message> on line [<line>:<column>]
//
// with the severity prefix coloured when colour is enabled.
type Console struct {
	out           io.Writer
	errorPrefix   *color.Color
	warningPrefix *color.Color
}

// NewConsole returns a Console writing to out. Colour is forced on or off
// regardless of whether out is a terminal.
func NewConsole(out io.Writer, colored bool) *Console {
	c := &Console{
		out:           out,
		errorPrefix:   color.New(color.FgRed, color.Bold),
		warningPrefix: color.New(color.FgYellow, color.Bold),
	}
	for _, prefix := range []*color.Color{c.errorPrefix, c.warningPrefix} {
		if colored {
			prefix.EnableColor()
		} else {
			prefix.DisableColor()
		}
	}
	return c
}

func (c *Console) Error(line, column int, message string) {
	c.write(c.errorPrefix, Diagnostic{Severity: SeverityError, Line: line, Column: column, Message: message})
}

func (c *Console) Warning(line, column int, message string) {
	c.write(c.warningPrefix, Diagnostic{Severity: SeverityWarning, Line: line, Column: column, Message: message})
}

// Failure reports an error that has no source position, such as an
// unreadable input file.
func (c *Console) Failure(message string) {
	_, _ = fmt.Fprintf(c.out, "%s%s\n", c.errorPrefix.Sprint("error: "), message)
}

func (c *Console) write(prefix *color.Color, d Diagnostic) {
	_, _ = fmt.Fprintf(c.out, "%s%s on line [%d:%d]\n",
		prefix.Sprint(d.Severity.String()+": "), d.Message, d.Line, d.Column)
}

// Recorder keeps diagnostics in memory
type Recorder struct {
	Diagnostics []Diagnostic
}

func (r *Recorder) Error(line, column int, message string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Severity: SeverityError, Line: line, Column: column, Message: message})
}

func (r *Recorder) Warning(line, column int, message string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Severity: SeverityWarning, Line: line, Column: column, Message: message})
}

// Count returns the number of recorded diagnostics of the given severity
func (r *Recorder) Count(severity Severity) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity == severity {
			n++
		}
	}
	return n
}

var (
	_ Sink = (*Console)(nil)
	_ Sink = (*Recorder)(nil)
)
