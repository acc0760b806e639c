package publish_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/wikidaily"
	"github.com/fwojciec/wikidaily/mock"
	"github.com/fwojciec/wikidaily/publish"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestLatestFeatured(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)

	t.Run("stops at first day with an article", func(t *testing.T) {
		t.Parallel()

		var dates []string
		svc := &mock.FeaturedService{
			FetchFeaturedFn: func(_ context.Context, lang string, date time.Time) (*wikidaily.FeaturedFeed, error) {
				assert.Equal(t, "en", lang)
				dates = append(dates, date.Format(time.DateOnly))
				switch len(dates) {
				case 1:
					return &wikidaily.FeaturedFeed{}, nil
				case 2, 3:
					return nil, wikidaily.Errorf(wikidaily.ETRANSPORT, "HTTP 404 for en %s", date.Format(time.DateOnly))
				}
				return &wikidaily.FeaturedFeed{TFA: &wikidaily.FeaturedArticle{Title: "Dune"}}, nil
			},
		}

		article, used, err := publish.LatestFeatured(context.Background(), svc, "en", base, 60)

		require.NoError(t, err)
		assert.Equal(t, "Dune", article.Title)
		assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), used)
		assert.Equal(t, []string{"2024-03-08", "2024-03-07", "2024-03-06", "2024-03-05"}, dates)
	})

	t.Run("exhausted window reports last error", func(t *testing.T) {
		t.Parallel()

		var calls int
		svc := &mock.FeaturedService{
			FetchFeaturedFn: func(_ context.Context, _ string, date time.Time) (*wikidaily.FeaturedFeed, error) {
				calls++
				return nil, wikidaily.Errorf(wikidaily.ETRANSPORT, "HTTP 404 for de %s", date.Format(time.DateOnly))
			},
		}

		_, _, err := publish.LatestFeatured(context.Background(), svc, "de", base, 2)

		require.Error(t, err)
		assert.Equal(t, 3, calls)
		assert.Equal(t, wikidaily.EUNAVAILABLE, wikidaily.ErrorCode(err))
		assert.Equal(t, "No TFA found for de within 2 days. Last error: HTTP 404 for de 2024-03-06", wikidaily.ErrorMessage(err))
	})

	t.Run("window without errors reports n/a", func(t *testing.T) {
		t.Parallel()

		svc := &mock.FeaturedService{
			FetchFeaturedFn: func(_ context.Context, _ string, _ time.Time) (*wikidaily.FeaturedFeed, error) {
				return &wikidaily.FeaturedFeed{}, nil
			},
		}

		_, _, err := publish.LatestFeatured(context.Background(), svc, "sd", base, 1)

		assert.Equal(t, "No TFA found for sd within 1 days. Last error: n/a", wikidaily.ErrorMessage(err))
	})

	t.Run("default window makes sixty-one attempts", func(t *testing.T) {
		t.Parallel()

		var calls int
		svc := &mock.FeaturedService{
			FetchFeaturedFn: func(_ context.Context, _ string, _ time.Time) (*wikidaily.FeaturedFeed, error) {
				calls++
				return nil, errors.New("boom")
			},
		}

		_, _, err := publish.LatestFeatured(context.Background(), svc, "en", base, wikidaily.DefaultLookbackDays)

		require.Error(t, err)
		assert.Equal(t, 61, calls)
		assert.Contains(t, wikidaily.ErrorMessage(err), "Last error: boom")
	})

	t.Run("stops on canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		var calls int
		svc := &mock.FeaturedService{
			FetchFeaturedFn: func(_ context.Context, _ string, _ time.Time) (*wikidaily.FeaturedFeed, error) {
				calls++
				cancel()
				return nil, context.Canceled
			},
		}

		_, _, err := publish.LatestFeatured(ctx, svc, "en", base, 60)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

func TestFeaturedPublisher_Run(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)

	t.Run("writes record or nulled record per language", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		requested := map[string][]string{}
		svc := &mock.FeaturedService{
			FetchFeaturedFn: func(_ context.Context, lang string, date time.Time) (*wikidaily.FeaturedFeed, error) {
				mu.Lock()
				requested[lang] = append(requested[lang], date.Format(time.DateOnly))
				mu.Unlock()
				if lang == "de" {
					return nil, wikidaily.Errorf(wikidaily.ETRANSPORT, "HTTP 404 for de %s", date.Format(time.DateOnly))
				}
				return &wikidaily.FeaturedFeed{TFA: &wikidaily.FeaturedArticle{
					Titles:      &wikidaily.FeaturedTitles{Display: "<i>Dune</i>", Normalized: "Dune"},
					Title:       "Dune",
					Description: strPtr("1965 novel"),
					Extract:     strPtr("Dune is a novel."),
					ExtractHTML: strPtr("<p>Dune</p>"),
				}}, nil
			},
		}
		store := newMemStore()
		var logs bytes.Buffer

		p := publish.NewFeaturedPublisher(svc, store.mock(), newBufferLogger(&logs))
		p.LookbackDays = 2
		outcomes := p.Run(context.Background(), now, []string{"en", "de"})

		require.Len(t, outcomes, 2)
		assert.Equal(t, "en.json", outcomes[0].Name)
		assert.Equal(t, "2024-03-08", outcomes[0].Date)
		assert.NoError(t, outcomes[0].Err)
		assert.Equal(t, "de.json", outcomes[1].Name)
		assert.Equal(t, wikidaily.EUNAVAILABLE, wikidaily.ErrorCode(outcomes[1].Err))
		assert.True(t, outcomes[1].Written())

		en, ok := store.get("en.json")
		require.True(t, ok)
		assert.Equal(t, `{
  "timestamp": "2024-03-08T00:00:00.000Z",
  "title": "<i>Dune</i>",
  "description": "1965 novel",
  "extract": "Dune is a novel.",
  "extract_html": "<p>Dune</p>"
}`, en)

		de, ok := store.get("de.json")
		require.True(t, ok)
		assert.Equal(t, `{
  "timestamp": null,
  "title": null,
  "description": null,
  "extract": null,
  "extract_html": null
}`, de)

		assert.Equal(t, []string{"2024-03-08"}, requested["en"])
		assert.Equal(t, []string{"2024-03-08", "2024-03-07", "2024-03-06"}, requested["de"])

		output := logs.String()
		assert.Contains(t, output, "msg=wrote file=en.json date=2024-03-08")
		assert.Contains(t, output, "msg=failed lang=de")
	})

	t.Run("every language shares one anchor", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var dates []time.Time
		svc := &mock.FeaturedService{
			FetchFeaturedFn: func(_ context.Context, _ string, date time.Time) (*wikidaily.FeaturedFeed, error) {
				mu.Lock()
				dates = append(dates, date)
				mu.Unlock()
				return &wikidaily.FeaturedFeed{TFA: &wikidaily.FeaturedArticle{Title: "X"}}, nil
			},
		}

		p := publish.NewFeaturedPublisher(svc, newMemStore().mock(), nil)
		p.Run(context.Background(), time.Date(2024, 3, 7, 13, 30, 0, 0, time.UTC), wikidaily.DefaultLanguages())

		require.Len(t, dates, 12)
		for _, d := range dates {
			assert.Equal(t, time.Date(2024, 3, 8, 1, 30, 0, 0, time.UTC), d)
		}
	})

	t.Run("records write failure", func(t *testing.T) {
		t.Parallel()

		svc := &mock.FeaturedService{
			FetchFeaturedFn: func(_ context.Context, _ string, _ time.Time) (*wikidaily.FeaturedFeed, error) {
				return &wikidaily.FeaturedFeed{TFA: &wikidaily.FeaturedArticle{Title: "X"}}, nil
			},
		}
		store := newMemStore()
		store.fail["en.json"] = errors.New("disk full")

		p := publish.NewFeaturedPublisher(svc, store.mock(), nil)
		outcomes := p.Run(context.Background(), now, []string{"en", "ja"})

		require.Len(t, outcomes, 2)
		assert.False(t, outcomes[0].Written())
		assert.True(t, outcomes[1].Written())
		_, ok := store.get("ja.json")
		assert.True(t, ok)
	})
}
