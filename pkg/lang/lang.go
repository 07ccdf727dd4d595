// Package lang contains the lispy interpreter.
//
// An Interpreter owns the global scope.  It is created with New, which binds
// the builtins and loads the prelude, and released with Close.  Values
// evaluated by one Interpreter observe every global binding made through it.
package lang

import (
	"context"
	_ "embed"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lthibault/log"
	"github.com/pkg/errors"

	"github.com/wetware/lispy"
	"github.com/wetware/lispy/pkg/lang/builtin"
	"github.com/wetware/lispy/pkg/lang/core"
	"github.com/wetware/lispy/pkg/lang/reader"
)

//go:embed prelude.lspy
var prelude string

// ErrClosed is returned when evaluating with a closed Interpreter.
var ErrClosed = errors.New("interpreter closed")

// Interpreter evaluates lispy forms against a single, persistent global
// scope.  It is not safe for concurrent use.
type Interpreter struct {
	log     log.Logger
	metrics lispy.Metrics
	stdout  io.Writer
	open    builtin.Opener
	prelude bool

	global   *core.Env
	builtins *builtin.Registry
}

// New interpreter.  The global scope holds the builtins and, unless disabled
// with WithPrelude(false), the definitions from the prelude.
func New(opt ...Option) (*Interpreter, error) {
	in := &Interpreter{}
	for _, option := range withDefaults(opt) {
		option(in)
	}

	in.builtins = builtin.New(
		builtin.WithLogger(in.log),
		builtin.WithStdout(in.stdout),
		builtin.WithOpener(in.open))

	in.global = core.NewEnv(nil)
	in.builtins.Bind(in.global)

	if in.prelude {
		if err := in.loadPrelude(); err != nil {
			return nil, errors.Wrap(err, "prelude")
		}
	}

	in.metrics.Incr("interpreters")
	in.log.WithField("symbols", in.global.Len()).
		Trace("interpreter ready")

	return in, nil
}

// Close releases the global scope.  The Interpreter cannot be used
// afterwards.  Calling Close more than once has no further effect.
func (in *Interpreter) Close() error {
	if in.global == nil {
		return nil
	}

	in.global = nil
	in.metrics.Decr("interpreters")
	in.metrics.Flush()
	return nil
}

// Env returns the global scope, or nil if the interpreter is closed.
func (in *Interpreter) Env() *core.Env { return in.global }

// Builtins returns the registry of native functions.
func (in *Interpreter) Builtins() *builtin.Registry { return in.builtins }

// Eval reduces v in the global scope.
func (in *Interpreter) Eval(v core.Value) core.Value {
	if in.global == nil {
		return errClosed()
	}

	defer in.measure(time.Now())
	in.metrics.Incr("eval.forms")

	res := core.Eval(in.global, v)
	if err, ok := res.(*core.Error); ok {
		in.metrics.Incr("eval.errors." + strings.ToLower(err.Type.String()))
		in.log.WithField("error_kind", err.Type).
			WithField("error", err.Msg).
			Trace("evaluation failed")
	}

	return res
}

// EvalSource parses src as a single line of input and evaluates it.  The
// top-level forms are wrapped in an SExpr, so "+ 1 2" evaluates to 3.
//
// Parse failures are returned as errors and never reach the evaluator.
func (in *Interpreter) EvalSource(name, src string) (core.Value, error) {
	if in.global == nil {
		return nil, ErrClosed
	}

	tree, err := reader.ParseString(src, name)
	if err != nil {
		return nil, err
	}

	return in.Eval(core.Read(tree)), nil
}

// Load evaluates each top-level form of the file at path in the global
// scope.  It returns the first error value it encounters, or an empty SExpr.
func (in *Interpreter) Load(path string) core.Value {
	v, _ := in.LoadContext(context.Background(), path)
	return v
}

// LoadContext is like Load, but stops before the next top-level form once
// ctx expires, returning the context's error.
func (in *Interpreter) LoadContext(ctx context.Context, path string) (core.Value, error) {
	if in.global == nil {
		return errClosed(), nil
	}

	in.metrics.Incr("load.files")
	return in.builtins.LoadFile(ctx, in.global, path)
}

// Call the named builtin with args in the global scope.  Names are resolved
// through the registry, not the scope, so rebinding a builtin's symbol does
// not affect Call.
func (in *Interpreter) Call(name string, args ...core.Value) core.Value {
	if in.global == nil {
		return errClosed()
	}

	return in.builtins.Call(in.global, name, args...)
}

func (in *Interpreter) loadPrelude() error {
	tree, err := reader.ParseString(prelude, "prelude.lspy")
	if err != nil {
		return err
	}

	for _, form := range core.Read(tree).(core.SExpr) {
		if v := core.Eval(in.global, form); core.IsError(v) {
			return v.(*core.Error)
		}
	}

	return nil
}

func errClosed() *core.Error {
	return core.Errorf(core.Closed, "%v", ErrClosed)
}

func (in *Interpreter) measure(t time.Time) {
	in.metrics.Duration("eval.duration", time.Since(t))
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger sets the interpreter's logger.
func WithLogger(l log.Logger) Option {
	if l == nil {
		l = log.New()
	}

	return func(in *Interpreter) {
		in.log = l
	}
}

// WithMetrics sets the interpreter's metrics sink.  If m is nil, metrics
// are discarded.
func WithMetrics(m lispy.Metrics) Option {
	if m == nil {
		m = lispy.NopMetrics
	}

	return func(in *Interpreter) {
		in.metrics = m
	}
}

// WithStdout sets the writer for the 'print' builtin.  Defaults to
// os.Stdout.
func WithStdout(w io.Writer) Option {
	if w == nil {
		w = os.Stdout
	}

	return func(in *Interpreter) {
		in.stdout = w
	}
}

// WithOpener sets the function used by 'load' to open files.  Defaults to
// os.Open.
func WithOpener(open builtin.Opener) Option {
	return func(in *Interpreter) {
		in.open = open
	}
}

// WithPrelude controls whether the prelude is loaded.  Enabled by default.
func WithPrelude(enable bool) Option {
	return func(in *Interpreter) {
		in.prelude = enable
	}
}

func withDefaults(opt []Option) []Option {
	return append([]Option{
		WithLogger(nil),
		WithMetrics(nil),
		WithStdout(nil),
		WithOpener(nil),
		WithPrelude(true),
	}, opt...)
}
