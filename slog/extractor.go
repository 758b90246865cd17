// Package slog provides logging decorators for dibkb interfaces.
package slog

import (
	"log/slog"
	"time"

	dibkb "github.com/dibkb/dibkb-scraper"
)

// Ensure LoggingExtractor implements dibkb.ProductExtractor.
var _ dibkb.ProductExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a ProductExtractor with debug logging.
type LoggingExtractor struct {
	next   dibkb.ProductExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next dibkb.ProductExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs a summary of the result.
func (e *LoggingExtractor) Extract(html string) (resp *dibkb.ProductResponse) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"bytes", len(html),
			"title", resp.Product.Title,
			"reviews", len(resp.Product.Reviews),
			"duration", time.Since(begin),
			"error", resp.Error,
		)
	}(time.Now())
	return e.next.Extract(html)
}
