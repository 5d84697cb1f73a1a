package log

import (
	"context"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger registers the process wide *log.Logger.
//
// Components log as "Component: message", so the prefix is printed after the
// timestamp.
type InitLogger struct {
	Prefix string `config:"LOG_PREFIX" default:"-"`
	Clock  string `config:"LOG_CLOCK" default:"utc"`
	out    io.Writer
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(il.newLogger())
	return ctx, nil
}

func (il InitLogger) newLogger() *log.Logger {
	out := il.out
	if out == nil {
		out = os.Stdout
	}
	prefix := il.Prefix
	if prefix == "-" {
		prefix = ""
	}
	flags := log.LstdFlags | log.Lmsgprefix
	if !strings.EqualFold(il.Clock, "local") {
		flags |= log.LUTC
	}
	return log.New(out, prefix, flags)
}
