package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type requestIDKey struct{}

type implLogger struct {
	zl zerolog.Logger
}

// New creates a console Logger writing to stdout at the given level
func New(level string) Logger {
	return NewWithFormat(level, "text", os.Stdout)
}

// NewWithFormat creates a Logger with an explicit format ("text" or "json") and writer
func NewWithFormat(level, format string, w io.Writer) Logger {
	var out io.Writer = w
	if strings.ToLower(format) != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "2006/01/02 15:04:05"}
	}

	return &implLogger{
		zl: zerolog.New(out).Level(parseLevel(level)).With().Timestamp().Logger(),
	}
}

// Nop returns a Logger that discards everything
func Nop() Logger {
	return &implLogger{zl: zerolog.Nop()}
}

// WithRequestID stores a request id in ctx; entries logged with ctx carry it
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id stored in ctx, if any
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

func (l *implLogger) event(ctx context.Context, e *zerolog.Event) *zerolog.Event {
	if id := RequestID(ctx); id != "" {
		e = e.Str("request_id", id)
	}
	return e
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.event(ctx, l.zl.Debug()).Msgf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.event(ctx, l.zl.Info()).Msgf(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.event(ctx, l.zl.Warn()).Msgf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.event(ctx, l.zl.Error()).Msgf(msg, args...)
}

func (l *implLogger) With(key string, value interface{}) Logger {
	return &implLogger{zl: l.zl.With().Interface(key, value).Logger()}
}
