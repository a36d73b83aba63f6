package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-sdl"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return viewInputs(cfg.MainConfig, cc.Out, inputs(cc, args))
}

func viewInputs(cfg *MainConfig, w io.Writer, ins []input) error {
	enc := sdl.NewEncoder(w, cfg.encOpts(w)...)
	for i, in := range ins {
		root, err := parseInput(cfg, in)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := enc.Encode(root); err != nil {
			return fmt.Errorf("error encoding %s: %w", in.name, err)
		}
	}
	return nil
}
