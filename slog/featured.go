package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikidaily"
)

// Ensure LoggingFeaturedService implements wikidaily.FeaturedService.
var _ wikidaily.FeaturedService = (*LoggingFeaturedService)(nil)

// LoggingFeaturedService wraps a FeaturedService with debug logging.
type LoggingFeaturedService struct {
	next   wikidaily.FeaturedService
	logger *slog.Logger
}

// NewLoggingFeaturedService creates a new LoggingFeaturedService.
func NewLoggingFeaturedService(next wikidaily.FeaturedService, logger *slog.Logger) *LoggingFeaturedService {
	return &LoggingFeaturedService{next: next, logger: logger}
}

// FetchFeatured delegates to the wrapped service and logs the operation.
func (s *LoggingFeaturedService) FetchFeatured(ctx context.Context, lang string, date time.Time) (feed *wikidaily.FeaturedFeed, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("fetch featured",
			"lang", lang,
			"date", date.UTC().Format(time.DateOnly),
			"tfa", feed != nil && feed.TFA != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchFeatured(ctx, lang, date)
}
