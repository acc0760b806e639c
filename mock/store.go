package mock

import (
	"context"

	"github.com/fwojciec/wikidaily"
)

var _ wikidaily.Store = (*Store)(nil)

// Store is a mock implementation of wikidaily.Store.
type Store struct {
	SaveFn  func(ctx context.Context, name string, data []byte) error
	FilesFn func() []wikidaily.OutputFile
}

func (s *Store) Save(ctx context.Context, name string, data []byte) error {
	return s.SaveFn(ctx, name, data)
}

func (s *Store) Files() []wikidaily.OutputFile {
	return s.FilesFn()
}

var _ wikidaily.SitemapBuilder = (*SitemapBuilder)(nil)

// SitemapBuilder is a mock implementation of wikidaily.SitemapBuilder.
type SitemapBuilder struct {
	BuildFn func(baseURL string, names []string, lastMod string) ([]byte, error)
}

func (b *SitemapBuilder) Build(baseURL string, names []string, lastMod string) ([]byte, error) {
	return b.BuildFn(baseURL, names, lastMod)
}

var _ wikidaily.IndexRenderer = (*IndexRenderer)(nil)

// IndexRenderer is a mock implementation of wikidaily.IndexRenderer.
type IndexRenderer struct {
	RenderIndexFn func(page *wikidaily.IndexPage) ([]byte, error)
}

func (r *IndexRenderer) RenderIndex(page *wikidaily.IndexPage) ([]byte, error) {
	return r.RenderIndexFn(page)
}
