package debug

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/wetware/lispy/pkg/lang/ast"
	"github.com/wetware/lispy/pkg/lang/reader"
)

func syntax() *cli.Command {
	return &cli.Command{
		Name:      "ast",
		Usage:     "print the syntax tree of source files",
		ArgsUsage: "[FILE...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "expr",
				Aliases: []string{"e"},
				Usage:   "parse `EXPR` instead of files",
			},
		},
		Action: printTrees(),
	}
}

func printTrees() cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.IsSet("expr") {
			tree, err := reader.ParseString(c.String("expr"), "<expr>")
			if err != nil {
				return err
			}

			return printTree(c, tree)
		}

		for _, path := range c.Args().Slice() {
			tree, err := parseFile(path)
			if err != nil {
				return err
			}

			if err = printTree(c, tree); err != nil {
				return err
			}
		}

		return nil
	}
}

func parseFile(path string) (*ast.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return reader.Parse(f, path)
}

func printTree(c *cli.Context, tree *ast.Node) error {
	_, err := fmt.Fprint(c.App.Writer, tree)
	return err
}
