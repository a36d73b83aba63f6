package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-sdl"
	"github.com/KimNorgaard/go-sdl/ast"
	"github.com/KimNorgaard/go-sdl/query"
)

func queryCmd(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, a tag path", cli.ErrUsage)
	}
	sel, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return queryInputs(cfg, cc.Out, sel, inputs(cc, args[1:]))
}

func queryInputs(cfg *QueryConfig, w io.Writer, sel *query.Selector, ins []input) error {
	enc := sdl.NewEncoder(w, cfg.encOpts(w)...)
	for _, in := range ins {
		root, err := parseInput(cfg.MainConfig, in)
		if err != nil {
			return err
		}
		tags, err := sel.Select(root)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", in.name, sel, err)
		}
		if cfg.Count {
			if _, err := fmt.Fprintf(w, "%d\n", len(tags)); err != nil {
				return err
			}
			continue
		}
		for _, t := range tags {
			if err := enc.Encode(t); err != nil {
				return err
			}
		}
	}
	return nil
}

func countTags(root *ast.Tag) int {
	n := 0
	root.Walk(func(t *ast.Tag) bool {
		if t != root {
			n++
		}
		return true
	})
	return n
}
