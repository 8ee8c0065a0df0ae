package telemetry

import (
	"log/slog"
	"os"
)

// InitSlog installs the default text handler. Debug mode lowers the
// level so scraper request logs become visible.
func InitSlog(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
