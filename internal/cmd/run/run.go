// Package run contains the `lispy run` command implementation.
package run

import (
	"fmt"

	"github.com/urfave/cli/v2"

	ctxutil "github.com/wetware/lispy/internal/util/ctx"
	logutil "github.com/wetware/lispy/internal/util/log"
	statsdutil "github.com/wetware/lispy/internal/util/statsd"
	"github.com/wetware/lispy/pkg/lang"
)

var flags = []cli.Flag{
	&cli.BoolFlag{
		Name:    "fail-fast",
		Usage:   "stop at the first file that fails to load",
		EnvVars: []string{"LISPY_FAIL_FAST"},
	},
}

// Command constructor
func Command() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "evaluate source files in order",
		ArgsUsage: "FILE [FILE...]",
		Flags:     flags,
		Action:    Run,
	}
}

// Run loads each file named in the arguments into a single interpreter.
// It exits with status 1 if any file fails, 2 if no file is given, and 130
// if interrupted.  An interrupt takes effect between top-level forms.
func Run(c *cli.Context) error {
	if !c.Args().Present() {
		return cli.Exit("no input files", 2)
	}

	log := logutil.New(c)
	metrics := statsdutil.New(c, log)
	defer metrics.Flush()

	in, err := lang.New(
		lang.WithLogger(log),
		lang.WithMetrics(metrics.WithPrefix("run")),
		lang.WithStdout(c.App.Writer),
		lang.WithPrelude(!c.Bool("no-prelude")))
	if err != nil {
		return err
	}
	defer in.Close()

	ctx, cancel := ctxutil.WithInterrupt(c.Context)
	defer cancel()

	b := batch{
		Loader:   in,
		Log:      log,
		Stderr:   c.App.ErrWriter,
		FailFast: c.Bool("fail-fast"),
	}

	failed, err := b.Run(ctx, c.Args().Slice())
	if err != nil {
		return cli.Exit(err.Error(), 130)
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d files failed", failed, c.NArg()), 1)
	}

	return nil
}
