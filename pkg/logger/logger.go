package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

// Init sets up the shared JSON logger. Debug level is only enabled in
// development; production stays at Info to keep request logs compact.
func Init(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
