//go:generate mockgen -source=lispy.go -destination=internal/mock/lispy/lispy.go -package=mock_lispy

// Package lispy is the root package of the lispy interpreter.
package lispy

import "time"

const Version = "0.1.0"

// Metrics receives interpreter instrumentation.
type Metrics interface {
	Incr(bucket string)
	Decr(bucket string)
	Duration(bucket string, d time.Duration)
	WithPrefix(prefix string) Metrics
	Flush()
}

// NopMetrics discards all measurements.
var NopMetrics Metrics = nopMetrics{}

type nopMetrics struct{}

func (nopMetrics) Incr(string)                    {}
func (nopMetrics) Decr(string)                    {}
func (nopMetrics) Duration(string, time.Duration) {}
func (nopMetrics) WithPrefix(string) Metrics      { return nopMetrics{} }
func (nopMetrics) Flush()                         {}
