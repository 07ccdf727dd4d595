package run

import (
	"context"
	"fmt"
	"io"

	"github.com/lthibault/log"

	"github.com/wetware/lispy/pkg/lang/core"
)

// Loader evaluates a source file and returns the first error value it
// produced, or the empty expression.  A non-nil error means ctx expired
// before the file was fully evaluated.
type Loader interface {
	LoadContext(ctx context.Context, path string) (core.Value, error)
}

// batch loads files in order.  Failures are written to Stderr in the
// same form the REPL prints them.
type batch struct {
	Loader   Loader
	Log      log.Logger
	Stderr   io.Writer
	FailFast bool
}

// Run returns the number of files that failed.  The error is non-nil
// only if ctx expired before every form of every file was evaluated.
func (b batch) Run(ctx context.Context, paths []string) (failed int, err error) {
	for _, path := range paths {
		if err = ctx.Err(); err != nil {
			return
		}

		var v core.Value
		if v, err = b.Loader.LoadContext(ctx, path); err != nil {
			return
		}

		e, ok := v.(*core.Error)
		if !ok {
			continue
		}

		failed++
		fmt.Fprintln(b.Stderr, e.String())
		b.Log.WithField("path", path).
			WithField("error_kind", e.Type).
			Warn(e.Msg)

		if b.FailFast {
			return
		}
	}

	return
}
