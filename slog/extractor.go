// Package slog provides logging decorators for chatexport services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/chatexport"
)

// Ensure LoggingExtractor implements chatexport.Extractor.
var _ chatexport.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   chatexport.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next chatexport.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) (result *chatexport.Extraction, err error) {
	defer func(begin time.Time) {
		attrs := []any{"bytes", len(html)}
		if result != nil {
			attrs = append(attrs,
				"strategy", result.Strategy,
				"found", result.Found,
				"messages", len(result.Messages),
				"skipped", len(result.Skipped),
			)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		e.logger.Info("extract chat history", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
