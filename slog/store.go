package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikidaily"
)

// Ensure LoggingStore implements wikidaily.Store.
var _ wikidaily.Store = (*LoggingStore)(nil)

// LoggingStore wraps a Store with debug logging.
type LoggingStore struct {
	next   wikidaily.Store
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next wikidaily.Store, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Save(ctx context.Context, name string, data []byte) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("save",
			"file", name,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, name, data)
}

// Files delegates to the wrapped store.
func (s *LoggingStore) Files() []wikidaily.OutputFile {
	return s.next.Files()
}
