package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/wetware/lispy/pkg/lang/core"
)

// DefaultPrinter renders values with their String method, so error values
// print as "Error: <message>".  Other Go errors are printed as-is.
type DefaultPrinter struct{}

func (DefaultPrinter) Fprintln(w io.Writer, val any) (err error) {
	switch v := val.(type) {
	case core.Value:
		_, err = fmt.Fprintln(w, v.String())
	case error:
		_, err = fmt.Fprintf(w, "%v\n", v)
	default:
		_, err = fmt.Fprintln(w, v)
	}

	return
}

// LineReader is a bare Input that reads lines from an io.Reader.  It does
// not print prompts, so it suits piped input and tests.
type LineReader struct {
	scanner *bufio.Scanner
}

// NewLineReader returns an Input that reads from r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{scanner: bufio.NewScanner(r)}
}

// SetPrompt is a nop.
func (*LineReader) SetPrompt(string) {}

func (lr *LineReader) Readline() (string, error) {
	if lr.scanner.Scan() {
		return lr.scanner.Text(), nil
	}

	if err := lr.scanner.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}
