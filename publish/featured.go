package publish

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikidaily"
)

// LatestFeatured searches backward from base for the most recent day with
// a featured article, trying offsets 0 through maxLookback days. The first
// day with an article wins. Fetch errors are remembered and the search
// continues; exhausting the window returns EUNAVAILABLE carrying the last
// error's message.
func LatestFeatured(ctx context.Context, svc wikidaily.FeaturedService, lang string, base time.Time, maxLookback int) (*wikidaily.FeaturedArticle, time.Time, error) {
	var lastErr error
	for i := 0; i <= maxLookback; i++ {
		if err := ctx.Err(); err != nil {
			return nil, time.Time{}, err
		}

		date := base.Add(-time.Duration(i) * 24 * time.Hour)
		feed, err := svc.FetchFeatured(ctx, lang, date)
		if err != nil {
			lastErr = err
			continue
		}
		if feed != nil && feed.TFA != nil {
			return feed.TFA, date, nil
		}
	}

	last := "n/a"
	if lastErr != nil {
		last = wikidaily.ErrorText(lastErr)
	}
	return nil, time.Time{}, wikidaily.Errorf(wikidaily.EUNAVAILABLE,
		"No TFA found for %s within %d days. Last error: %s", lang, maxLookback, last)
}

// FeaturedPublisher writes one featured-article record per language.
type FeaturedPublisher struct {
	Service      wikidaily.FeaturedService
	Store        wikidaily.Store
	Logger       *slog.Logger
	LookbackDays int
}

// NewFeaturedPublisher creates a FeaturedPublisher with the default
// lookback window.
func NewFeaturedPublisher(svc wikidaily.FeaturedService, store wikidaily.Store, logger *slog.Logger) *FeaturedPublisher {
	return &FeaturedPublisher{
		Service:      svc,
		Store:        store,
		Logger:       logger,
		LookbackDays: wikidaily.DefaultLookbackDays,
	}
}

// Run publishes {lang}.json for every language. All languages share one
// day anchor derived from now. A language whose search fails gets a record
// with every field null, so each language always yields a file.
func (p *FeaturedPublisher) Run(ctx context.Context, now time.Time, langs []string) []Outcome {
	logger := loggerOrDiscard(p.Logger)
	base := wikidaily.DayAnchor(now)

	logger.Info("fetching featured articles", "languages", len(langs), "anchor", base.Format(time.DateOnly))

	outcomes := make([]Outcome, 0, len(langs))
	for _, lang := range langs {
		out := Outcome{Name: lang + ".json", Key: lang}

		rec := &wikidaily.FeaturedRecord{}
		article, used, err := LatestFeatured(ctx, p.Service, lang, base, p.LookbackDays)
		if err != nil {
			out.Err = err
			logger.Error("failed", "lang", lang, "err", wikidaily.ErrorText(err))
		} else {
			rec = wikidaily.NewFeaturedRecord(article, used)
			out.Date = used.Format(time.DateOnly)
		}

		out.WriteErr = save(ctx, p.Store, out.Name, rec)
		if out.WriteErr != nil {
			logger.Error("write failed", "file", out.Name, "err", out.WriteErr)
		} else if out.Err == nil {
			logger.Info("wrote", "file", out.Name, "date", out.Date)
		}
		outcomes = append(outcomes, out)
	}
	return outcomes
}

// save encodes v and writes it to name.
func save(ctx context.Context, store wikidaily.Store, name string, v any) error {
	data, err := wikidaily.Encode(v)
	if err != nil {
		return wikidaily.Errorf(wikidaily.EINTERNAL, "encoding %s: %v", name, err)
	}
	return store.Save(ctx, name, data)
}
