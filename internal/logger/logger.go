package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var levelVar = new(slog.LevelVar)

var L = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: levelVar}))

// SetLevel configures the global log level (debug, info, warn, error).
func SetLevel(lvl string) {
	switch strings.ToLower(lvl) {
	case "debug":
		levelVar.Set(slog.LevelDebug)
	case "warn":
		levelVar.Set(slog.LevelWarn)
	case "error":
		levelVar.Set(slog.LevelError)
	default:
		levelVar.Set(slog.LevelInfo)
	}
}

// SetOutput replaces the global logger with one writing to w. Format is
// "text" or "json" (default).
func SetOutput(w io.Writer, format string) {
	opts := &slog.HandlerOptions{Level: levelVar}
	if strings.EqualFold(format, "text") {
		L = slog.New(slog.NewTextHandler(w, opts))
		return
	}
	L = slog.New(slog.NewJSONHandler(w, opts))
}
