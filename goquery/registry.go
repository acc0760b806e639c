package goquery

import (
	"slices"
	"time"

	"github.com/fwojciec/wikidaily"
)

var _ wikidaily.WordExtractorRegistry = (*Registry)(nil)

// Registry binds source kinds to their extractors. Kinds without an
// extractor, including wikidaily.KindUnimplemented, resolve to nil.
type Registry struct {
	extractors map[wikidaily.SourceKind]wikidaily.WordExtractor
}

// NewRegistry creates a Registry with every known extractor registered.
// The clock is used by templates that publish week numbers instead of dates.
func NewRegistry(now func() time.Time) *Registry {
	r := &Registry{
		extractors: make(map[wikidaily.SourceKind]wikidaily.WordExtractor),
	}
	r.Register(wikidaily.KindEnWOTD, NewEnWOTDExtractor())
	r.Register(wikidaily.KindEnFWOTD, NewEnFWOTDExtractor())
	r.Register(wikidaily.KindJaWOTW, NewJaWOTWExtractor(now))
	r.Register(wikidaily.KindZhWOTD, NewZhWOTDExtractor())
	r.Register(wikidaily.KindZhFWOTD, NewZhFWOTDExtractor())
	return r
}

// Get returns the extractor for a kind.
// Returns nil if no extractor is registered for the kind.
func (r *Registry) Get(kind wikidaily.SourceKind) wikidaily.WordExtractor {
	if kind == wikidaily.KindUnimplemented {
		return nil
	}
	return r.extractors[kind]
}

// Register adds an extractor for a kind, replacing any existing one.
// KindUnimplemented cannot be bound.
func (r *Registry) Register(kind wikidaily.SourceKind, extractor wikidaily.WordExtractor) {
	if kind == wikidaily.KindUnimplemented {
		return
	}
	r.extractors[kind] = extractor
}

// Kinds returns all registered kinds in ascending order.
func (r *Registry) Kinds() []wikidaily.SourceKind {
	kinds := make([]wikidaily.SourceKind, 0, len(r.extractors))
	for k := range r.extractors {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}
