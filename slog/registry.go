package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/wikidaily"
)

// Ensure LoggingRegistry implements wikidaily.WordExtractorRegistry.
var _ wikidaily.WordExtractorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a WordExtractorRegistry so that every extractor
// it hands out logs its extractions.
type LoggingRegistry struct {
	next   wikidaily.WordExtractorRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next wikidaily.WordExtractorRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Get returns the wrapped registry's extractor for kind, decorated with
// logging. Returns nil when the wrapped registry has none.
func (r *LoggingRegistry) Get(kind wikidaily.SourceKind) wikidaily.WordExtractor {
	ext := r.next.Get(kind)
	if ext == nil {
		r.logger.Debug("no extractor", "kind", kind.String())
		return nil
	}
	return &loggingExtractor{next: ext, kind: kind, logger: r.logger}
}

type loggingExtractor struct {
	next   wikidaily.WordExtractor
	kind   wikidaily.SourceKind
	logger *slog.Logger
}

func (e *loggingExtractor) Extract(html string) (rec *wikidaily.WordRecord, err error) {
	defer func(begin time.Time) {
		var word, date string
		var defs int
		if rec != nil {
			word, date, defs = rec.Word, rec.Date, len(rec.Definitions)
		}
		e.logger.Debug("extract",
			"kind", e.kind.String(),
			"word", word,
			"date", date,
			"definitions", defs,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
