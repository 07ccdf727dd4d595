// Package debug contains the `lispy debug` command implementation.
package debug

import (
	"github.com/lthibault/log"
	"github.com/urfave/cli/v2"

	logutil "github.com/wetware/lispy/internal/util/log"
	"github.com/wetware/lispy/pkg/lang"
)

var (
	interp *lang.Interpreter
	logger log.Logger
)

var subcommands = []*cli.Command{
	env(),
	syntax(),
	profile(),
	trace(),
}

func Command() *cli.Command {
	return &cli.Command{
		Name:        "debug",
		Usage:       "inspect the interpreter",
		Subcommands: subcommands,
		Before:      setup(),
		After:       teardown(),
	}
}

func setup() cli.BeforeFunc {
	return func(c *cli.Context) (err error) {
		logger = logutil.New(c)
		interp, err = lang.New(
			lang.WithLogger(logger),
			lang.WithStdout(c.App.Writer),
			lang.WithPrelude(!c.Bool("no-prelude")))
		return
	}
}

func teardown() cli.AfterFunc {
	return func(c *cli.Context) error {
		if interp == nil {
			return nil
		}

		return interp.Close()
	}
}
