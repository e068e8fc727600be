package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

type runIDKey struct{}

type implLogger struct {
	logger *log.Logger
	slog   *slog.Logger
	level  string
}

// Options configures a Logger. Format is "text" (default) or "json".
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// New creates a text Logger writing to stdout
func New(level string) Logger {
	return NewWithOptions(Options{Level: level})
}

// NewWithOptions creates a Logger from explicit options
func NewWithOptions(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	l := &implLogger{level: strings.ToLower(opts.Level)}
	if strings.EqualFold(opts.Format, "json") {
		l.slog = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		l.logger = log.New(out, "", log.LstdFlags)
	}
	return l
}

// WithRunID returns a context whose log lines are tagged with id
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunID returns the run ID attached to ctx, if any
func RunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

func (l *implLogger) shouldLog(level string) bool {
	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) write(ctx context.Context, level string, msg string, args []interface{}) {
	if !l.shouldLog(level) {
		return
	}

	text := fmt.Sprintf(msg, args...)
	runID := RunID(ctx)

	if l.slog != nil {
		attrs := []any{}
		if runID != "" {
			attrs = append(attrs, "run_id", runID)
		}
		l.slog.Log(context.Background(), slogLevel(level), text, attrs...)
		return
	}

	prefix := "[" + strings.ToUpper(level) + "] "
	if runID != "" {
		prefix += "[run=" + shortID(runID) + "] "
	}
	l.logger.Print(prefix + text)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "debug", msg, args)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "info", msg, args)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "warn", msg, args)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "error", msg, args)
}

func slogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
