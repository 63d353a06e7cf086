package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/polkiloo/shopapi/internal/config"
)

// New creates a preconfigured slog.Logger tagged with the service name.
func New(cfg *config.Config) *slog.Logger {
	return newWithWriter(os.Stdout, cfg)
}

func newWithWriter(w io.Writer, cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(
		slog.String("service", cfg.ServiceName),
		slog.String("version", cfg.AppVersion),
	)
}
