package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/wetware/lispy/pkg/lang/core"
	"github.com/wetware/lispy/pkg/lang/reader"
)

// Load parses the file named by its String argument and evaluates each
// top-level form in the global scope.  It stops at the first error value and
// returns it.  On success it returns an empty SExpr.
func (r *Registry) Load(env *core.Env, args []core.Value) core.Value {
	if err := count("load", args, 1); err != nil {
		return err
	}

	if err := kind("load", args, 0, core.KindString); err != nil {
		return err
	}

	v, _ := r.LoadFile(context.Background(), env, string(args[0].(core.String)))
	return v
}

// LoadFile evaluates the top-level forms of the file at path in the global
// scope.  The context is checked between forms;  if it expires, LoadFile
// returns the context's error and the remaining forms are skipped.
func (r *Registry) LoadFile(ctx context.Context, env *core.Env, path string) (core.Value, error) {
	log := r.log.WithField("path", path)

	f, err := r.open(path)
	if err != nil {
		log.WithError(err).Debug("failed to open file")
		return core.Errorf(core.LoadError, "Could not load Library %v", err), nil
	}
	defer f.Close()

	tree, err := reader.Parse(f, path)
	if err != nil {
		log.WithError(err).Debug("failed to parse file")
		return reader.AsError(err), nil
	}

	forms := core.QExpr(core.Read(tree).(core.SExpr))
	log.WithField("forms", len(forms)).Debug("loading file")

	global := env.Root()
	for _, form := range forms {
		if err = ctx.Err(); err != nil {
			log.WithError(err).Debug("load interrupted")
			return core.SExpr{}, err
		}

		if v := core.Eval(global, form); core.IsError(v) {
			return v, nil
		}
	}

	return core.SExpr{}, nil
}

// Print writes its arguments to stdout, separated by spaces and followed by
// a newline.
func (r *Registry) Print(_ *core.Env, args []core.Value) core.Value {
	ss := make([]string, len(args))
	for i, arg := range args {
		ss[i] = arg.String()
	}

	fmt.Fprintln(r.stdout, strings.Join(ss, " "))
	return core.SExpr{}
}

// Error returns a UserError whose message is its String argument.
func Error(_ *core.Env, args []core.Value) core.Value {
	if err := count("error", args, 1); err != nil {
		return err
	}

	if err := kind("error", args, 0, core.KindString); err != nil {
		return err
	}

	return core.Errorf(core.UserError, "%s", args[0].(core.String))
}
