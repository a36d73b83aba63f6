package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if failed := checkInputs(cfg.MainConfig, cc.Out, inputs(cc, args)); failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkInputs parses every input, reporting each failure on its own line,
// and returns the number of failures.
func checkInputs(cfg *MainConfig, w io.Writer, ins []input) int {
	failed := 0
	for _, in := range ins {
		root, err := parseInput(cfg, in)
		if err != nil {
			failed++
			fmt.Fprintln(w, err)
			continue
		}
		fmt.Fprintf(w, "%s: ok (%d tags)\n", in.name, countTags(root))
	}
	return failed
}
