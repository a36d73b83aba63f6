package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/KimNorgaard/go-sdl"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	ins := inputs(cc, args)
	a, err := canonical(cfg.MainConfig, ins[0])
	if err != nil {
		return err
	}
	b, err := canonical(cfg.MainConfig, ins[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	differs, err := writeDiff(cc.Out, a, b, cfg.Context, cfg.colors(cc.Out))
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// canonical returns the encoding of in without colors, so that documents
// differing only in layout compare equal.
func canonical(cfg *MainConfig, in input) (string, error) {
	root, err := parseInput(cfg, in)
	if err != nil {
		return "", err
	}
	out, err := sdl.Marshal(root, sdl.Indent(cfg.Indent))
	if err != nil {
		return "", fmt.Errorf("error encoding %s: %w", in.name, err)
	}
	return string(out), nil
}

type diffLine struct {
	op   diffpatch.Operation
	text string
}

// lineDiff diffs a and b line by line.
func lineDiff(a, b string) []diffLine {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var res []diffLine
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, l := range strings.Split(text, "\n") {
			res = append(res, diffLine{op: d.Type, text: l})
		}
	}
	return res
}

// writeDiff writes the changed lines of a and b with up to context
// unchanged lines around each change. It reports whether they differ.
func writeDiff(w io.Writer, a, b string, context int, colored bool) (bool, error) {
	lines := lineDiff(a, b)
	keep := make([]bool, len(lines))
	differs := false
	for i, l := range lines {
		if l.op == diffpatch.DiffEqual {
			continue
		}
		differs = true
		for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
			keep[j] = true
		}
	}
	if !differs {
		return false, nil
	}

	del, ins := fmt.Sprint, fmt.Sprint
	if colored {
		del = color.New(color.FgRed).Sprint
		ins = color.New(color.FgGreen).Sprint
	}
	skipped := false
	for i, l := range lines {
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped {
			if _, err := io.WriteString(w, "@@\n"); err != nil {
				return true, err
			}
			skipped = false
		}
		var s string
		switch l.op {
		case diffpatch.DiffDelete:
			s = del("-" + l.text)
		case diffpatch.DiffInsert:
			s = ins("+" + l.text)
		default:
			s = " " + l.text
		}
		if _, err := io.WriteString(w, s+"\n"); err != nil {
			return true, err
		}
	}
	return true, nil
}
