package debug

import (
	"errors"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/wetware/lispy/pkg/lang/core"
)

// writer returns the destination for profiling output.  Closing the
// application's writer is a no-op.
func writer(c *cli.Context) (io.WriteCloser, error) {
	if c.Bool("stdout") {
		return nopCloser{c.App.Writer}, nil
	}

	if c.IsSet("out") {
		return os.Create(c.Path("out"))
	}

	return nil, errors.New("must pass -out or -stdout")
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// load each file named in the arguments, stopping at the first failure.
func load(c *cli.Context) error {
	if !c.Args().Present() {
		return cli.Exit("no input files", 2)
	}

	for _, path := range c.Args().Slice() {
		if e, ok := interp.Load(path).(*core.Error); ok {
			logger.WithField("path", path).
				WithField("error_kind", e.Type).
				Debug("load failed")
			return cli.Exit(e.String(), 1)
		}
	}

	return nil
}
