package publish

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/wikidaily"
	"github.com/google/uuid"
)

// Site file names written by Finish.
const (
	IndexFile    = "index.html"
	SitemapFile  = "sitemap.xml"
	ManifestFile = "manifest.json"
)

// Site writes the files that describe a finished run: the landing page,
// an optional sitemap, and the manifest.
type Site struct {
	Store   wikidaily.Store
	Index   wikidaily.IndexRenderer
	Sitemap wikidaily.SitemapBuilder

	// BaseURL is the public URL of the output directory. The sitemap is
	// only written when both BaseURL and Sitemap are set.
	BaseURL string

	// RunID identifies the run in the manifest.
	RunID string
}

// NewSite creates a Site with a fresh run id.
func NewSite(store wikidaily.Store, index wikidaily.IndexRenderer) *Site {
	return &Site{
		Store: store,
		Index: index,
		RunID: uuid.NewString(),
	}
}

// Finish writes index.html listing the written featured and word files,
// then sitemap.xml when configured, then manifest.json covering every
// file saved before it.
func (s *Site) Finish(ctx context.Context, now time.Time, featured, words []Outcome) error {
	stamp := wikidaily.FormatTimestamp(now)

	page, err := s.Index.RenderIndex(&wikidaily.IndexPage{
		UpdatedAt: stamp,
		Featured:  Names(featured),
		Words:     Names(words),
	})
	if err != nil {
		return fmt.Errorf("rendering index: %w", err)
	}
	if err := s.Store.Save(ctx, IndexFile, page); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}

	if s.Sitemap != nil && s.BaseURL != "" {
		var names []string
		for _, f := range s.Store.Files() {
			names = append(names, f.Name)
		}
		xml, err := s.Sitemap.Build(s.BaseURL, names, now.UTC().Format(time.DateOnly))
		if err != nil {
			return fmt.Errorf("building sitemap: %w", err)
		}
		if err := s.Store.Save(ctx, SitemapFile, xml); err != nil {
			return fmt.Errorf("writing sitemap: %w", err)
		}
	}

	manifest := &wikidaily.Manifest{
		RunID:       s.RunID,
		GeneratedAt: stamp,
		Files:       s.Store.Files(),
	}
	if manifest.Files == nil {
		manifest.Files = []wikidaily.OutputFile{}
	}
	if err := save(ctx, s.Store, ManifestFile, manifest); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
