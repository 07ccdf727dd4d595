package debug

import (
	rtrace "runtime/trace"

	"github.com/urfave/cli/v2"
)

func trace() *cli.Command {
	return &cli.Command{
		Name:      "trace",
		Usage:     "load source files under the runtime tracer",
		ArgsUsage: "FILE [FILE...]",
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:  "out",
				Usage: "output file",
			},
			&cli.BoolFlag{
				Name:    "stdout",
				Aliases: []string{"s"},
				Usage:   "output samples to stdout",
			},
		},
		Action: runTrace(),
	}
}

func runTrace() cli.ActionFunc {
	return func(c *cli.Context) error {
		w, err := writer(c)
		if err != nil {
			return err
		}
		defer w.Close()

		if err = rtrace.Start(w); err != nil {
			return err
		}
		defer rtrace.Stop()

		return load(c)
	}
}
