// Package debug holds environment driven debug switches and the logger the
// parser and literal registry trace through.
package debug

import (
	"os"
	"strconv"
	"sync/atomic"

	"go.uber.org/zap"
)

type debug struct {
	Parse   atomic.Bool
	Literal atomic.Bool
}

var (
	d      debug
	logger atomic.Pointer[zap.SugaredLogger]
)

func init() {
	d.Parse.Store(boolEnv("SDL_DEBUG_PARSE"))
	d.Literal.Store(boolEnv("SDL_DEBUG_LITERAL"))

	l := zap.NewNop()
	if d.Parse.Load() || d.Literal.Load() {
		if dev, err := zap.NewDevelopment(); err == nil {
			l = dev
		}
	}
	logger.Store(l.Sugar())
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Parse reports whether parser state transitions are traced.
func Parse() bool {
	return d.Parse.Load()
}

// Literal reports whether literal classification fallbacks are traced.
func Literal() bool {
	return d.Literal.Load()
}

// Enable turns tracing on for both the parser and the literal registry and
// installs l as the logger.
func Enable(l *zap.Logger) {
	SetLogger(l)
	d.Parse.Store(true)
	d.Literal.Store(true)
}

// Logger returns the current logger. It is a no-op logger unless tracing was
// enabled.
func Logger() *zap.SugaredLogger {
	return logger.Load()
}

// SetLogger replaces the logger. A nil logger restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l.Sugar())
}
