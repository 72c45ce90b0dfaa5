// Package logger wraps zerolog with the constructors the service uses and a
// context helper for request-scoped loggers.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so the whole zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// New builds a logger writing to stdout. Production emits JSON; every other
// environment gets a human-readable console writer.
func New(production bool, level string) *Logger {
	var w io.Writer = os.Stdout
	if !production {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return NewWithWriter(w, level)
}

// NewWithWriter builds a JSON logger writing to w at the given level. An
// unknown level falls back to info.
func NewWithWriter(w io.Writer, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	l := zerolog.New(w).Level(lvl).With().
		Timestamp().
		Str("service", "skypath").
		Logger()

	return &Logger{l}
}

func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// With returns a child logger carrying the given string fields.
func (l *Logger) With(kv ...string) *Logger {
	c := l.Logger.With()
	for i := 0; i+1 < len(kv); i += 2 {
		c = c.Str(kv[i], kv[i+1])
	}
	return &Logger{c.Logger()}
}

// FromContext returns the logger attached with zerolog's WithContext. When
// none is attached zerolog's default logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
