package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-sdl"
	"github.com/KimNorgaard/go-sdl/ast"
)

func sdlMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.setup(); err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// input is one document to process; "-" names standard input.
type input struct {
	name string
	r    io.Reader
}

// inputs returns the documents named by args, or standard input when there
// are none. Files are opened by parseInput.
func inputs(cc *cli.Context, args []string) []input {
	if len(args) == 0 {
		return []input{{name: "-", r: cc.In}}
	}
	res := make([]input, len(args))
	for i, a := range args {
		res[i] = input{name: a}
		if a == "-" {
			res[i].r = cc.In
		}
	}
	return res
}

func parseInput(cfg *MainConfig, in input) (*ast.Tag, error) {
	if in.r != nil {
		root, err := sdl.ParseReader(in.r, cfg.parseOpts()...)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", in.name, err)
		}
		return root, nil
	}
	f, err := os.Open(in.name)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", in.name, err)
	}
	defer f.Close()
	root, err := sdl.ParseReader(f, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", in.name, err)
	}
	return root, nil
}
