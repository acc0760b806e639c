// Package slog provides logging decorators for wikidaily services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikidaily"
)

// Ensure LoggingTemplateLoader implements wikidaily.TemplateLoader.
var _ wikidaily.TemplateLoader = (*LoggingTemplateLoader)(nil)

// LoggingTemplateLoader wraps a TemplateLoader with debug logging.
type LoggingTemplateLoader struct {
	next   wikidaily.TemplateLoader
	logger *slog.Logger
}

// NewLoggingTemplateLoader creates a new LoggingTemplateLoader.
func NewLoggingTemplateLoader(next wikidaily.TemplateLoader, logger *slog.Logger) *LoggingTemplateLoader {
	return &LoggingTemplateLoader{next: next, logger: logger}
}

// LoadTemplate delegates to the wrapped loader and logs the operation.
func (l *LoggingTemplateLoader) LoadTemplate(ctx context.Context, endpoint string) (html string, err error) {
	defer func(begin time.Time) {
		l.logger.Debug("load template",
			"url", endpoint,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadTemplate(ctx, endpoint)
}
