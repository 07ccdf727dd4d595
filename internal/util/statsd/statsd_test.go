package statsdutil_test

import (
	"net"
	"strings"
	"testing"
	"time"

	"github.com/lthibault/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	statsdutil "github.com/wetware/lispy/internal/util/statsd"
)

type env map[string]string

func (e env) IsSet(key string) bool {
	_, ok := e[key]
	return ok
}

func (e env) String(key string) string { return e[key] }

func TestMuted(t *testing.T) {
	t.Parallel()

	m := statsdutil.New(env{}, log.New())
	require.IsType(t, statsdutil.Metrics{}, m)

	assert.NotPanics(t, func() {
		m.Incr("eval.forms")
		m.Decr("eval.forms")
		m.Duration("eval.duration", time.Millisecond)
		m.WithPrefix("shell.").Incr("eval.forms")
		m.Flush()
	})
}

func TestReport(t *testing.T) {
	t.Parallel()

	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer conn.Close()

	m := statsdutil.New(env{"metrics": conn.LocalAddr().String()}, log.New())
	m.WithPrefix("run.").Incr("eval.forms")
	m.Flush()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))

	// The client checks the port with empty datagrams before sending.
	var got string
	buf := make([]byte, 512)
	for got == "" {
		n, _, err := conn.ReadFrom(buf)
		require.NoError(t, err)
		got = string(buf[:n])
	}

	assert.True(t, strings.HasPrefix(got, "lispy.run.eval.forms:1|c"),
		"unexpected payload %q", got)
}
