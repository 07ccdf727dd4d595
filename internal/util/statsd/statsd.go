// Package statsdutil reports interpreter metrics to a statsd daemon.
package statsdutil

import (
	"time"

	"github.com/lthibault/log"
	"gopkg.in/alexcesaro/statsd.v2"

	"github.com/wetware/lispy"
)

// Env supplies command-line settings.  It is satisfied by *cli.Context.
type Env interface {
	IsSet(string) bool
	String(string) string
}

// Metrics wraps a statsd client and satisfies lispy.Metrics.
type Metrics struct{ *statsd.Client }

// New statsd client.  The client is muted unless the "metrics" flag
// names a daemon address.
func New(env Env, log log.Logger) lispy.Metrics {
	m, err := statsd.New(
		addr(env),
		muted(env),
		logger(env, log),
		statsd.Prefix("lispy"),
		statsd.FlushPeriod(time.Millisecond*250))
	if err != nil {
		log.WithError(err).
			Warn("setup failed for statsd metrics")
		return lispy.NopMetrics
	}

	return Metrics{m}
}

func (m Metrics) Incr(bucket string) {
	m.Client.Count(bucket, 1)
}

func (m Metrics) Decr(bucket string) {
	m.Client.Count(bucket, -1)
}

func (m Metrics) Duration(bucket string, d time.Duration) {
	m.Client.Timing(bucket, d.Microseconds())
}

func (m Metrics) WithPrefix(prefix string) lispy.Metrics {
	return Metrics{
		Client: m.Client.Clone(statsd.Prefix(prefix)),
	}
}

func addr(env Env) statsd.Option {
	if env.IsSet("metrics") {
		return statsd.Address(env.String("metrics"))
	}

	return statsd.Address(":8125")
}

func logger(env Env, log log.Logger) statsd.Option {
	return statsd.ErrorHandler(func(err error) {
		log.WithError(err).
			WithField("metrics", env.String("metrics")).
			Warn("failed to send metrics")
	})
}

func muted(env Env) statsd.Option {
	return statsd.Mute(!env.IsSet("metrics"))
}
