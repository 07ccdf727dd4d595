package shell

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/wetware/lispy/internal/util/config"
	"github.com/wetware/lispy/pkg/lang"
	"github.com/wetware/lispy/pkg/lang/core"
	"github.com/wetware/lispy/pkg/repl"
)

func newInput(c *cli.Context, cfg config.Shell, in *lang.Interpreter, lx fx.Lifecycle) (repl.Input, error) {
	r, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.History,
		Stdout:      c.App.Writer,
		Stderr:      c.App.ErrWriter,

		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		AutoComplete: completer{Env: in.Env()},
	})

	if err == nil {
		lx.Append(closehook(r))
	}

	return linereader{r}, err
}

type linereader struct{ *readline.Instance }

func (l linereader) Readline() (string, error) {
	line, err := l.Instance.Readline()
	if err == readline.ErrInterrupt {
		return "", repl.ErrInterrupt
	}

	return line, err
}

// completer suggests names bound in the global scope for the symbol
// under the cursor.
type completer struct{ *core.Env }

func (c completer) Do(line []rune, pos int) (suffixes [][]rune, length int) {
	prefix := symbolBefore(line, pos)
	if prefix == "" {
		return
	}

	for _, name := range c.Env.Names() {
		if strings.HasPrefix(name, prefix) && name != prefix {
			suffixes = append(suffixes, []rune(name[len(prefix):]))
		}
	}

	if len(suffixes) > 0 {
		length = len([]rune(prefix))
	}

	return
}

func symbolBefore(line []rune, pos int) string {
	if pos > len(line) {
		pos = len(line)
	}

	start := pos
	for start > 0 && !isDelim(line[start-1]) {
		start--
	}

	return string(line[start:pos])
}

func isDelim(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '(', ')', '{', '}', '"', ';':
		return true
	}

	return false
}
