/*
	Lispy - a small lisp with first-class closures
	Copyright 2020, Louis Thibault.  All rights reserved.
*/

package main

import (
	"os"

	"github.com/lthibault/log"
	"github.com/urfave/cli/v2"

	"github.com/wetware/lispy"
	"github.com/wetware/lispy/internal/cmd/debug"
	"github.com/wetware/lispy/internal/cmd/run"
	"github.com/wetware/lispy/internal/cmd/shell"
)

var flags = []cli.Flag{
	// Logging
	&cli.StringFlag{
		Name:    "logfmt",
		Aliases: []string{"f"},
		Usage:   "`format` logs as text, json or none",
		Value:   "text",
		EnvVars: []string{"LISPY_LOGFMT"},
	},
	&cli.StringFlag{
		Name:    "loglvl",
		Usage:   "set logging `level` to trace, debug, info, warn, error or fatal",
		Value:   "info",
		EnvVars: []string{"LISPY_LOGLVL"},
	},
	// Statsd
	&cli.StringFlag{
		Name:        "metrics",
		Aliases:     []string{"statsd"},
		Usage:       "send metrics to udp `host:port`",
		EnvVars:     []string{"LISPY_METRICS", "LISPY_STATSD"},
		DefaultText: "disabled",
	},
	// Interpreter
	&cli.BoolFlag{
		Name:    "no-prelude",
		Usage:   "start without the standard library",
		EnvVars: []string{"LISPY_NO_PRELUDE"},
	},
	// Misc.
	&cli.BoolFlag{
		Name:    "prettyprint",
		Aliases: []string{"pp"},
		Usage:   "pretty-print JSON output",
		Hidden:  true,
	},
}

var commands = []*cli.Command{
	shell.Command(),
	run.Command(),
	debug.Command(),
}

func main() {
	app := &cli.App{
		Name:                 "lispy",
		HelpName:             "lispy",
		Usage:                "a small lisp with first-class closures",
		UsageText:            "lispy [global options] [command] [FILE...]",
		Copyright:            "2020 The Wetware Project",
		Version:              lispy.Version,
		EnableBashCompletion: true,
		Flags:                flags,
		Commands:             commands,
		Action:               action,
		Metadata: map[string]interface{}{
			"version": lispy.Version,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// action loads the files named on the command line, or starts an
// interactive session if there are none.
func action(c *cli.Context) error {
	if c.Args().Present() {
		return run.Run(c)
	}

	return shell.Run(c)
}
