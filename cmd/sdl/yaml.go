package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-sdl/ast"
	"github.com/KimNorgaard/go-sdl/literal"
)

func toYAML(cfg *YAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.YAML.Parse(cc, args)
	if err != nil {
		return err
	}
	return yamlInputs(cfg, cc.Out, inputs(cc, args))
}

func yamlInputs(cfg *YAMLConfig, w io.Writer, ins []input) error {
	for i, in := range ins {
		root, err := parseInput(cfg.MainConfig, in)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(yamlNodes(root.Children(), cfg.Comments))
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", in.name, err)
		}
		if i > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		if _, err := w.Write(out); err != nil {
			return err
		}
	}
	return nil
}

// yamlNodes maps nodes to a YAML sequence. Each tag becomes a mapping with
// its name and, when present, its values, attributes and children.
func yamlNodes(nodes []ast.Node, comments bool) []any {
	res := []any{}
	for _, n := range nodes {
		switch n := n.(type) {
		case *ast.Tag:
			res = append(res, yamlTag(n, comments))
		case *ast.Comment:
			if comments {
				res = append(res, yaml.MapSlice{{Key: "comment", Value: n.Text}})
			}
		}
	}
	return res
}

func yamlTag(t *ast.Tag, comments bool) yaml.MapSlice {
	m := yaml.MapSlice{{Key: "name", Value: t.Name()}}
	if vs := t.Values(); len(vs) > 0 {
		values := make([]any, len(vs))
		for i, v := range vs {
			values[i] = yamlValue(v)
		}
		m = append(m, yaml.MapItem{Key: "values", Value: values})
	}
	if names := t.AttributeNames(); len(names) > 0 {
		attrs := make(yaml.MapSlice, len(names))
		for i, name := range names {
			attrs[i] = yaml.MapItem{Key: name, Value: yamlValue(t.Attribute(name))}
		}
		m = append(m, yaml.MapItem{Key: "attributes", Value: attrs})
	}
	if t.HasChildren() {
		children := yamlNodes(t.Children(), comments)
		if len(children) > 0 {
			m = append(m, yaml.MapItem{Key: "children", Value: children})
		}
	}
	return m
}

// yamlValue keeps strings, booleans, null and fixed size numbers as native
// YAML scalars. Other kinds are written in their SDL encoding.
func yamlValue(l literal.Literal) any {
	switch l.Kind() {
	case literal.KindString, literal.KindRawString, literal.KindBool, literal.KindNull,
		literal.KindInt, literal.KindLong, literal.KindFloat, literal.KindDouble:
		return l.Value()
	default:
		return l.String()
	}
}
