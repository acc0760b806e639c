package mock

import (
	"context"

	"github.com/fwojciec/wikidaily"
)

var _ wikidaily.TemplateLoader = (*TemplateLoader)(nil)

// TemplateLoader is a mock implementation of wikidaily.TemplateLoader.
type TemplateLoader struct {
	LoadTemplateFn func(ctx context.Context, endpoint string) (string, error)
}

func (l *TemplateLoader) LoadTemplate(ctx context.Context, endpoint string) (string, error) {
	return l.LoadTemplateFn(ctx, endpoint)
}

var _ wikidaily.WordExtractor = (*WordExtractor)(nil)

// WordExtractor is a mock implementation of wikidaily.WordExtractor.
type WordExtractor struct {
	ExtractFn func(html string) (*wikidaily.WordRecord, error)
}

func (e *WordExtractor) Extract(html string) (*wikidaily.WordRecord, error) {
	return e.ExtractFn(html)
}

var _ wikidaily.WordExtractorRegistry = (*WordExtractorRegistry)(nil)

// WordExtractorRegistry is a mock implementation of wikidaily.WordExtractorRegistry.
type WordExtractorRegistry struct {
	GetFn func(kind wikidaily.SourceKind) wikidaily.WordExtractor
}

func (r *WordExtractorRegistry) Get(kind wikidaily.SourceKind) wikidaily.WordExtractor {
	return r.GetFn(kind)
}
