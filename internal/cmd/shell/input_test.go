package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wetware/lispy/pkg/lang"
)

func TestCompleter(t *testing.T) {
	t.Parallel()

	in, err := lang.New()
	require.NoError(t, err)
	defer in.Close()

	c := completer{Env: in.Env()}

	for _, tt := range []struct {
		name, line string
		want       []string
		length     int
	}{
		{name: "Empty", line: ""},
		{name: "AfterParen", line: "(", want: nil},
		{name: "Unique", line: "(fol", want: []string{"dl"}, length: 3},
		{name: "Many", line: "{he", want: []string{"ad"}, length: 2},
		{name: "Complete", line: "head"},
		{name: "Prefix", line: "(ta", want: []string{"il", "ke"}, length: 2},
	} {
		line := []rune(tt.line)
		got, n := c.Do(line, len(line))

		var suffixes []string
		for _, s := range got {
			suffixes = append(suffixes, string(s))
		}

		assert.Equal(t, tt.want, suffixes, tt.name)
		assert.Equal(t, tt.length, n, tt.name)
	}
}

func TestSymbolBefore(t *testing.T) {
	t.Parallel()

	line := []rune("(map fib {1 2})")
	assert.Equal(t, "ma", symbolBefore(line, 3))
	assert.Equal(t, "fib", symbolBefore(line, 8))
	assert.Equal(t, "", symbolBefore(line, 9))
	assert.Equal(t, "", symbolBefore(line, 0))
}
