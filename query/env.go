package query

import (
	"fmt"
	"time"

	"github.com/expr-lang/expr"
	"github.com/shopspring/decimal"

	"github.com/KimNorgaard/go-sdl/ast"
)

// env is what a predicate sees of a candidate tag.
type env struct {
	Name   string         `expr:"name"`
	Value  any            `expr:"value"`
	Values []any          `expr:"values"`
	Attrs  map[string]any `expr:"attrs"`

	Attr  func(string) any  `expr:"attr"`
	Has   func(string) bool `expr:"has"`
	Child func(string) any  `expr:"child"`
	Count func(string) int  `expr:"count"`
}

func newEnv(t *ast.Tag) env {
	e := env{
		Name:   t.Name(),
		Values: t.NativeValues(),
		Attrs:  t.NativeAttributes(),
		Attr: func(name string) any {
			if l := t.Attribute(name); l != nil {
				return l.Value()
			}
			return nil
		},
		Has: t.HasAttribute,
		Child: func(name string) any {
			c := t.Child(name)
			if c == nil || c.Value() == nil {
				return nil
			}
			return c.Value().Value()
		},
		Count: func(name string) int { return len(t.ChildrenByName(name)) },
	}
	if len(e.Values) > 0 {
		e.Value = e.Values[0]
	}
	return e
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(env{}),
		expr.AsBool(),
		expr.Function("num", func(params ...any) (any, error) {
			return toFloat(params[0])
		},
			new(func(any) float64)),
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case decimal.Decimal:
		return n.InexactFloat64(), nil
	case time.Duration:
		return n.Seconds(), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("num: cannot convert %T to a number", v)
	}
}
