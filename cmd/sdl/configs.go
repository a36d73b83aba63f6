package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"go.uber.org/zap"

	"github.com/KimNorgaard/go-sdl"
	"github.com/KimNorgaard/go-sdl/ast"
	"github.com/KimNorgaard/go-sdl/internal/debug"
)

type MainConfig struct {
	Indent     int    `cli:"name=indent desc='spaces per nesting level'"`
	Style      string `cli:"name=style desc='comment style: keep, slash, hash or dash'"`
	IgnoreTZ   bool   `cli:"name=ignoreTZ desc='accept and drop datetime timezones'"`
	NoComments bool   `cli:"name=nc desc='drop comments'"`
	Color      bool   `cli:"name=color desc='encode with color'"`
	Verbose    bool   `cli:"name=v desc='trace parsing to stderr'"`

	Main *cli.Command
}

// setup applies the options that act on the process rather than on a
// single document.
func (cfg *MainConfig) setup() error {
	if cfg.Indent < 0 {
		return fmt.Errorf("%w: -indent must not be negative", cli.ErrUsage)
	}
	if _, err := cfg.style(); err != nil {
		return err
	}
	if cfg.Verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("could not create logger: %w", err)
		}
		debug.Enable(l)
	}
	return nil
}

func (cfg *MainConfig) style() (*ast.CommentStyle, error) {
	if cfg.Style == "" || cfg.Style == "keep" {
		return nil, nil
	}
	s, err := ast.ParseCommentStyle(cfg.Style)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return &s, nil
}

func (cfg *MainConfig) parseOpts() []sdl.Option {
	var res []sdl.Option
	if cfg.IgnoreTZ {
		res = append(res, sdl.IgnoreTimezone())
	}
	if cfg.NoComments {
		res = append(res, sdl.SkipComments())
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []sdl.Option {
	res := []sdl.Option{sdl.Indent(cfg.Indent)}
	if s, _ := cfg.style(); s != nil {
		res = append(res, sdl.Style(*s))
	}
	if cfg.colors(w) {
		res = append(res, sdl.WithColors(sdl.NewColors()))
	}
	return res
}

// colors reports whether output to w is colored: always with -color, never
// when -color was given as false, otherwise when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		color.NoColor = false
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return false
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Count bool `cli:"name=n desc='print the number of matches only'"`
	Query *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Context int  `cli:"name=U desc='lines of context around changes'"`

	Diff *cli.Command
}

type YAMLConfig struct {
	*MainConfig

	Comments bool `cli:"name=comments desc='include comments'"`
	YAML     *cli.Command
}
