package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/chatexport"
)

// Ensure LoggingLoader implements chatexport.Loader.
var _ chatexport.Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with logging.
type LoggingLoader struct {
	next   chatexport.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next chatexport.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) Load(ctx context.Context, path string) (html string, err error) {
	defer func(begin time.Time) {
		l.logger.Info("load HTML",
			"path", path,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, path)
}
