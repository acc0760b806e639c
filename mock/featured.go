package mock

import (
	"context"
	"time"

	"github.com/fwojciec/wikidaily"
)

var _ wikidaily.FeaturedService = (*FeaturedService)(nil)

// FeaturedService is a mock implementation of wikidaily.FeaturedService.
type FeaturedService struct {
	FetchFeaturedFn func(ctx context.Context, lang string, date time.Time) (*wikidaily.FeaturedFeed, error)
}

func (s *FeaturedService) FetchFeatured(ctx context.Context, lang string, date time.Time) (*wikidaily.FeaturedFeed, error) {
	return s.FetchFeaturedFn(ctx, lang, date)
}
