// Package logutil contains shared utilities for configuring loggers from a cli context.
package logutil

import (
	"io"

	"github.com/lthibault/log"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/wetware/lispy"
)

// New logger from a cli context.  The first call builds the logger and
// binds it to the application; subsequent calls return the same instance.
func New(c *cli.Context) log.Logger {
	if logger := get(c); logger != nil {
		return logger
	}

	return bind(c)
}

// WithLevel returns a log.Option that configures a logger's level.
func WithLevel(c *cli.Context) (opt log.Option) {
	var level = log.FatalLevel
	defer func() {
		opt = log.WithLevel(level)
	}()

	if c.String("logfmt") == "none" {
		return
	}

	switch c.String("loglvl") {
	case "trace", "t":
		level = log.TraceLevel
	case "debug", "d":
		level = log.DebugLevel
	case "info", "i":
		level = log.InfoLevel
	case "warn", "warning", "w":
		level = log.WarnLevel
	case "error", "err", "e":
		level = log.ErrorLevel
	case "fatal", "f":
		level = log.FatalLevel
	default:
		level = log.InfoLevel
	}

	return
}

// WithFormat returns an option that configures a logger's format.
func WithFormat(c *cli.Context) log.Option {
	switch c.String("logfmt") {
	case "json":
		return log.WithFormatter(&logrus.JSONFormatter{
			PrettyPrint: c.Bool("prettyprint"),
		})
	default:
		return log.WithFormatter(new(logrus.TextFormatter))
	}
}

// withErrWriter sends log output to the application's error stream.
// The "none" format discards everything.
func withErrWriter(c *cli.Context) log.Option {
	if c.String("logfmt") == "none" || c.App.ErrWriter == nil {
		return log.WithWriter(io.Discard)
	}

	return log.WithWriter(c.App.ErrWriter)
}

// key with random component to avoid collision
const key = "lispy.util.log:q7#Vd}2m@Lx^0(wE"

func bind(c *cli.Context) log.Logger {
	logger := log.New(
		WithLevel(c),
		WithFormat(c),
		withErrWriter(c)).
		WithField("version", lispy.Version)

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]interface{})
	}

	c.App.Metadata[key] = func() log.Logger {
		return logger
	}

	return logger
}

func get(c *cli.Context) log.Logger {
	if logger, ok := c.App.Metadata[key].(func() log.Logger); ok {
		return logger()
	}

	return nil
}
