// Package shell contains the `lispy shell` command implementation.
package shell

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"text/template"

	"github.com/google/uuid"
	"github.com/lthibault/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/wetware/lispy"
	"github.com/wetware/lispy/internal/util/config"
	ctxutil "github.com/wetware/lispy/internal/util/ctx"
	logutil "github.com/wetware/lispy/internal/util/log"
	statsdutil "github.com/wetware/lispy/internal/util/statsd"
	"github.com/wetware/lispy/pkg/lang"
	"github.com/wetware/lispy/pkg/lang/core"
	"github.com/wetware/lispy/pkg/repl"
)

const bannerTemplate = `Lispy Version {{.App.Version}}
Press Ctrl+c to Exit
`

var (
	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "suppress banner message on interactive startup",
			EnvVars: []string{"LISPY_QUIET"},
		},
		&cli.PathFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "read shell settings from YAML `file`",
			EnvVars: []string{"LISPY_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "history",
			Usage:   "persist line history to `file`",
			EnvVars: []string{"LISPY_HISTORY"},
		},
		&cli.StringSliceFlag{
			Name:    "load",
			Aliases: []string{"l"},
			Usage:   "load source `file` before the first prompt",
		},

		// debug flags (hidden)
		&cli.BoolFlag{
			Name:   "log-fx",
			Usage:  "output fx dependency injection logs",
			Hidden: true,
		},
	}
)

// Command constructor
func Command() *cli.Command {
	return &cli.Command{
		Name:   "shell",
		Usage:  "start an interactive REPL session",
		Flags:  flags,
		Action: Run,
	}
}

// Run an interactive session.  Flags that are not declared in c resolve
// to their zero value, so Run also serves as the root command's action.
func Run(c *cli.Context) error {
	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	app := fx.New(fxLogger(c),
		fx.Supply(c),
		fx.Provide(
			newConfig,
			newLogger,
			newMetrics,
			newInterpreter,
			newInput,
			newBanner,
			newPrinter),
		fx.Invoke(
			preload,
			loop))

	if err := app.Start(ctx); err != nil {
		return err
	}

	return app.Stop(ctx)
}

func loop(f replFactory) error {
	ctx, cancel := ctxutil.WithInterrupt(f.C.Context)
	defer cancel()

	return serve(ctx, f.New())
}

// serve runs the REPL until its input is exhausted or ctx expires.  An
// expired context, whether canceled or interrupted by a signal, is a clean
// exit.
func serve(ctx context.Context, r *repl.REPL) error {
	if err := r.Loop(ctx); ctx.Err() == nil {
		return err
	}

	return nil
}

type replFactory struct {
	fx.In

	C       *cli.Context
	Config  config.Shell
	Eval    *lang.Interpreter
	Banner  string `name:"banner"`
	Input   repl.Input
	Printer repl.Printer
}

func (f replFactory) New() *repl.REPL {
	return repl.New(f.Eval,
		repl.WithBanner(f.Banner),
		repl.WithPrompts(f.Config.Prompt, f.Config.Multiline),
		repl.WithInput(f.Input),
		repl.WithOutput(f.C.App.Writer),
		repl.WithPrinter(f.Printer))
}

func newConfig(c *cli.Context) (config.Shell, error) {
	cfg, err := config.Load(c.Path("config"))
	if err != nil {
		return cfg, err
	}

	if c.IsSet("history") {
		cfg.History = config.ExpandHome(c.String("history"))
	}

	cfg.Quiet = cfg.Quiet || c.Bool("quiet")
	cfg.Load = append(cfg.Load, c.StringSlice("load")...)
	return cfg, nil
}

func newLogger(c *cli.Context) log.Logger {
	return logutil.New(c).WithField("session", uuid.New())
}

func newMetrics(c *cli.Context, log log.Logger, lx fx.Lifecycle) lispy.Metrics {
	m := statsdutil.New(c, log)
	lx.Append(fx.Hook{
		OnStop: func(context.Context) error {
			m.Flush()
			return nil
		},
	})

	return m.WithPrefix("shell")
}

func newInterpreter(c *cli.Context, log log.Logger, m lispy.Metrics, lx fx.Lifecycle) (*lang.Interpreter, error) {
	in, err := lang.New(
		lang.WithLogger(log),
		lang.WithMetrics(m),
		lang.WithStdout(c.App.Writer),
		lang.WithPrelude(!c.Bool("no-prelude")))
	if err == nil {
		lx.Append(closehook(in))
	}

	return in, err
}

func newPrinter() repl.Printer { return repl.DefaultPrinter{} }

// preload evaluates the configured source files.  A file that fails to
// load is reported and the session continues.
func preload(c *cli.Context, cfg config.Shell, in *lang.Interpreter, log log.Logger) {
	for _, path := range cfg.Load {
		if e, ok := in.Load(path).(*core.Error); ok {
			fmt.Fprintln(c.App.ErrWriter, e.String())
			log.WithField("path", path).
				WithField("error_kind", e.Type).
				Warn("failed to load file")
		}
	}
}

type banner struct {
	fx.Out

	Banner string `name:"banner"`
}

func newBanner(c *cli.Context, cfg config.Shell) (b banner, err error) {
	if cfg.Quiet {
		return
	}

	var buf bytes.Buffer
	templ := template.Must(template.New("banner").Parse(bannerTemplate))
	if err = templ.Execute(&buf, struct {
		*cli.Context
		GoVersion, GOOS string
	}{
		Context:   c,
		GoVersion: runtime.Version(),
		GOOS:      runtime.GOOS,
	}); err == nil {
		b.Banner = buf.String()
	}

	return
}

func fxLogger(c *cli.Context) fx.Option {
	if c.Bool("log-fx") {
		return fx.Options()
	}

	return fx.NopLogger
}

func closehook(c io.Closer) fx.Hook {
	return fx.Hook{
		OnStop: func(context.Context) error {
			return c.Close()
		},
	}
}
