package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"

	"github.com/chidiwilliams/minilox/env"
	"github.com/chidiwilliams/minilox/interpret"
	"github.com/chidiwilliams/minilox/parse"
	"github.com/chidiwilliams/minilox/report"
	"github.com/chidiwilliams/minilox/scan"
)

const usage = "usage: minilox [file]"

// maxLineSize is the longest line the prompt accepts
const maxLineSize = 1 << 20

func main() {
	opts, optind, err := getopt.Getopts(os.Args, "")
	if err != nil || len(opts) > 0 || len(os.Args[optind:]) > 1 {
		fmt.Println(usage)
		os.Exit(64)
	}
	args := os.Args[optind:]

	r := newRunner(os.Stdout, true, os.Exit)
	if len(args) == 0 {
		if err := r.runPrompt(os.Stdin); err != nil {
			r.console.Failure(err.Error())
			os.Exit(74)
		}
		return
	}

	if err := r.runFile(args[0]); err != nil {
		r.console.Failure(err.Error())
		os.Exit(66)
	}
}

// runner owns the pipeline for one invocation. Diagnostics and print
// output both go to stdOut.
type runner struct {
	stdOut      io.Writer
	console     *report.Console
	interpreter *interpret.Interpreter
	prompt      *color.Color
	exit        func(code int)
	exited      bool
}

func newRunner(stdOut io.Writer, colored bool, exit func(code int)) *runner {
	console := report.NewConsole(stdOut, colored)
	prompt := color.New(color.FgWhite, color.Bold)
	if colored {
		prompt.EnableColor()
	} else {
		prompt.DisableColor()
	}

	return &runner{
		stdOut:      stdOut,
		console:     console,
		interpreter: interpret.NewInterpreter(stdOut, console),
		prompt:      prompt,
		exit:        exit,
	}
}

// runPrompt reads and runs one line at a time. Every line shares
// the same environment, so variables persist between prompts.
// End of input ends the session; a failed read is returned.
func (r *runner) runPrompt(in io.Reader) error {
	environment := env.New()
	inputScanner := bufio.NewScanner(in)
	inputScanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for !r.exited {
		_, _ = r.prompt.Fprint(r.stdOut, ">>> ")
		if !inputScanner.Scan() {
			_, _ = fmt.Fprintln(r.stdOut)
			break
		}

		r.run(inputScanner.Text(), environment)
	}

	if err := inputScanner.Err(); err != nil {
		return fmt.Errorf("could not read input: %w", err)
	}
	return nil
}

func (r *runner) runFile(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}

	r.runLines(string(file))
	return nil
}

// runLines runs every line of source as a separate program with its
// own environment: a variable declared on one line is undefined on
// the next.
func (r *runner) runLines(source string) {
	lines := strings.Split(source, "\n")
	if n := len(lines); lines[n-1] == "" {
		lines = lines[:n-1]
	}

	for _, line := range lines {
		if r.exited {
			return
		}
		r.run(line, env.New())
	}
}

func (r *runner) run(source string, environment *env.Environment) {
	scanner := scan.NewScanner(source, r.console, scan.WithExit(r.terminate))
	tokens := scanner.ScanTokens()

	parser := parse.NewParser(tokens, r.console)
	statements := parser.Parse()

	r.interpreter.Execute(statements, environment)
}

func (r *runner) terminate(code int) {
	r.exited = true
	r.exit(code)
}
