package debug

import (
	"runtime/pprof"

	"github.com/urfave/cli/v2"
)

func profile() *cli.Command {
	return &cli.Command{
		Name:      "profile",
		Usage:     "load source files under the pprof CPU profiler",
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
		Action: runPprof(),
	}
}

func runPprof() cli.ActionFunc {
	return func(c *cli.Context) error {
		w, err := writer(c)
		if err != nil {
			return err
		}
		defer w.Close()

		if err = pprof.StartCPUProfile(w); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()

		return load(c)
	}
}
