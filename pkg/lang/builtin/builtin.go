// Package builtin contains the native functions of the lispy language.
package builtin

import (
	"io"
	"os"
	"sort"

	"github.com/lthibault/log"

	"github.com/wetware/lispy/pkg/lang/core"
)

// Opener opens a source file for the 'load' builtin.
type Opener func(path string) (io.ReadCloser, error)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used by I/O builtins.
func WithLogger(l log.Logger) Option {
	if l == nil {
		l = log.New()
	}

	return func(r *Registry) {
		r.log = l
	}
}

// WithStdout sets the writer used by 'print'.
func WithStdout(w io.Writer) Option {
	if w == nil {
		w = os.Stdout
	}

	return func(r *Registry) {
		r.stdout = w
	}
}

// WithOpener sets the function used by 'load' to open files.
func WithOpener(open Opener) Option {
	if open == nil {
		open = func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		}
	}

	return func(r *Registry) {
		r.open = open
	}
}

// Registry is the fixed set of native functions.
type Registry struct {
	log    log.Logger
	stdout io.Writer
	open   Opener

	fns map[string]*core.Builtin
}

// New registry.
func New(opt ...Option) *Registry {
	r := &Registry{fns: make(map[string]*core.Builtin)}
	for _, option := range withDefaults(opt) {
		option(r)
	}

	for _, b := range []*core.Builtin{
		// lists
		{Name: "list", Fn: List},
		{Name: "head", Fn: Head},
		{Name: "tail", Fn: Tail},
		{Name: "join", Fn: Join},
		{Name: "eval", Fn: Eval},

		// arithmetic
		{Name: "+", Fn: Add},
		{Name: "-", Fn: Sub},
		{Name: "*", Fn: Mul},
		{Name: "/", Fn: Div},

		// comparison
		{Name: ">", Fn: Gt},
		{Name: "<", Fn: Lt},
		{Name: ">=", Fn: Ge},
		{Name: "<=", Fn: Le},
		{Name: "==", Fn: Eq},
		{Name: "!=", Fn: Ne},
		{Name: "if", Fn: If},

		// bindings
		{Name: "def", Fn: Def},
		{Name: "=", Fn: Put},
		{Name: "\\", Fn: Lambda},

		// I/O
		{Name: "load", Fn: r.Load},
		{Name: "print", Fn: r.Print},
		{Name: "error", Fn: Error},
	} {
		r.fns[b.Name] = b
	}

	return r
}

// Bind every builtin into env.  Builtins are ordinary values, so they can be
// shadowed or rebound like any other symbol.
func (r *Registry) Bind(env *core.Env) {
	for name, b := range r.fns {
		env.Put(name, b)
	}
}

// Lookup a builtin by name.  A miss produces an UnknownFunction error.
func (r *Registry) Lookup(name string) (*core.Builtin, *core.Error) {
	if b, ok := r.fns[name]; ok {
		return b, nil
	}

	return nil, core.Errorf(core.UnknownFunction, "Unknown Function '%s'", name)
}

// Call the named builtin directly, bypassing symbol lookup in env.
func (r *Registry) Call(env *core.Env, name string, args ...core.Value) core.Value {
	b, err := r.Lookup(name)
	if err != nil {
		return err
	}

	return b.Call(env, args)
}

// Names of all builtins, in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.fns))
	for name := range r.fns {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func withDefaults(opt []Option) []Option {
	return append([]Option{
		WithLogger(nil),
		WithStdout(nil),
		WithOpener(nil),
	}, opt...)
}
