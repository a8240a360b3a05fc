package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/chatexport"
)

// Ensure LoggingHistoryWriter implements chatexport.HistoryWriter.
var _ chatexport.HistoryWriter = (*LoggingHistoryWriter)(nil)

// LoggingHistoryWriter wraps a HistoryWriter with logging.
type LoggingHistoryWriter struct {
	next   chatexport.HistoryWriter
	logger *slog.Logger
}

// NewLoggingHistoryWriter creates a new LoggingHistoryWriter.
func NewLoggingHistoryWriter(next chatexport.HistoryWriter, logger *slog.Logger) *LoggingHistoryWriter {
	return &LoggingHistoryWriter{next: next, logger: logger}
}

// WriteHistory delegates to the wrapped writer and logs the operation.
func (w *LoggingHistoryWriter) WriteHistory(ctx context.Context, path string, history []*chatexport.ChatMessage) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write chat history",
			"path", path,
			"messages", len(history),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteHistory(ctx, path, history)
}
