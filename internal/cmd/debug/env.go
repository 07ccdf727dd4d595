package debug

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/wetware/lispy/pkg/lang/core"
)

func env() *cli.Command {
	return &cli.Command{
		Name:  "env",
		Usage: "display the global bindings of a new interpreter",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "json",
				Usage:   "print results as json",
				EnvVars: []string{"LISPY_FMT_JSON"},
			},
		},
		Action: listBindings(),
	}
}

type binding struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

func listBindings() cli.ActionFunc {
	return func(c *cli.Context) error {
		return renderBindings(c, bindings(interp.Env()))
	}
}

func bindings(env *core.Env) []binding {
	names := env.Names()
	bs := make([]binding, len(names))
	for i, name := range names {
		v := env.Get(name)
		bs[i] = binding{
			Name:  name,
			Kind:  v.Kind().String(),
			Value: v.String(),
		}
	}

	return bs
}

func renderBindings(c *cli.Context, bs []binding) error {
	if c.Bool("json") {
		return json.NewEncoder(c.App.Writer).Encode(bs)
	}

	for _, b := range bs {
		if _, err := fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\n", b.Name, b.Kind, b.Value); err != nil {
			return err
		}
	}

	return nil
}
