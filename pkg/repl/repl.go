//go:generate mockgen -source=repl.go -destination=../../internal/mock/pkg/repl/repl.go -package=mock_repl

// Package repl implements an interactive read-eval-print loop.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wetware/lispy/pkg/lang/core"
	"github.com/wetware/lispy/pkg/lang/reader"
)

// ErrInterrupt may be returned by Input to discard the pending input, e.g.
// when the user presses Ctrl+C.  The loop keeps running.
var ErrInterrupt = errors.New("interrupt")

// Input supplies lines of source text.  Readline returns io.EOF when input
// is exhausted.
type Input interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// Evaluator parses and evaluates one unit of input.  Parse failures are
// returned as errors.
type Evaluator interface {
	EvalSource(name, src string) (core.Value, error)
}

// Printer renders results and parse failures.
type Printer interface {
	Fprintln(w io.Writer, val any) error
}

// REPL reads input, evaluates it and prints the result until the input is
// exhausted or the context expires.
type REPL struct {
	eval    Evaluator
	input   Input
	output  io.Writer
	printer Printer

	banner            string
	prompt, multiline string
}

// New REPL.  By default it reads from stdin and prints to stdout.
func New(eval Evaluator, opt ...Option) *REPL {
	r := &REPL{eval: eval}
	for _, option := range withDefaults(opt) {
		option(r)
	}

	return r
}

// Loop until the input returns io.EOF or ctx expires.  The context is only
// checked between units of input;  an evaluation in progress is never
// interrupted.
func (r *REPL) Loop(ctx context.Context) error {
	if r.banner != "" {
		if _, err := fmt.Fprintln(r.output, r.banner); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := r.step()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}
	}
}

// step reads a complete unit of input, evaluates it and prints the result.
func (r *REPL) step() error {
	var src strings.Builder

	r.input.SetPrompt(r.prompt)
	for {
		line, err := r.input.Readline()
		if errors.Is(err, ErrInterrupt) {
			return nil
		}

		if err != nil {
			return err
		}

		src.WriteString(line)
		if strings.TrimSpace(src.String()) == "" {
			return nil
		}

		val, err := r.eval.EvalSource("<stdin>", src.String())
		if reader.IsIncomplete(err) {
			src.WriteByte('\n')
			r.input.SetPrompt(r.multiline)
			continue
		}

		if err != nil {
			return r.printer.Fprintln(r.output, err)
		}

		return r.printer.Fprintln(r.output, val)
	}
}

// Option configures a REPL.
type Option func(*REPL)

// WithBanner sets a message that is printed once, when the loop starts.
func WithBanner(banner string) Option {
	return func(r *REPL) {
		r.banner = strings.TrimRight(banner, "\n")
	}
}

// WithPrompts sets the standard prompt and the prompt shown while a form is
// incomplete.
func WithPrompts(prompt, multiline string) Option {
	return func(r *REPL) {
		r.prompt = prompt
		r.multiline = multiline
	}
}

// WithInput sets the source of input lines.  If in is nil, lines are read
// from stdin.
func WithInput(in Input) Option {
	if in == nil {
		in = NewLineReader(os.Stdin)
	}

	return func(r *REPL) {
		r.input = in
	}
}

// WithOutput sets the writer for results.  Defaults to stdout.
func WithOutput(w io.Writer) Option {
	if w == nil {
		w = os.Stdout
	}

	return func(r *REPL) {
		r.output = w
	}
}

// WithPrinter sets the printer.  If p is nil, the default printer is used.
func WithPrinter(p Printer) Option {
	if p == nil {
		p = DefaultPrinter{}
	}

	return func(r *REPL) {
		r.printer = p
	}
}

func withDefaults(opt []Option) []Option {
	return append([]Option{
		WithPrompts("lispy> ", "  ...> "),
		WithInput(nil),
		WithOutput(nil),
		WithPrinter(nil),
	}, opt...)
}
