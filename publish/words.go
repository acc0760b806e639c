package publish

import (
	"context"
	"log/slog"

	"github.com/fwojciec/wikidaily"
)

// WordPublisher writes one word record per configured source.
type WordPublisher struct {
	Loader   wikidaily.TemplateLoader
	Registry wikidaily.WordExtractorRegistry
	Store    wikidaily.Store
	Logger   *slog.Logger
}

// Extract loads the source's template and applies its extraction rule.
// It returns (nil, nil) when the source's kind has no rule.
func (p *WordPublisher) Extract(ctx context.Context, src wikidaily.SourceConfig) (*wikidaily.WordRecord, error) {
	html, err := p.Loader.LoadTemplate(ctx, src.Endpoint)
	if err != nil {
		return nil, err
	}

	ext := p.Registry.Get(src.Kind())
	if ext == nil {
		return nil, nil
	}
	return ext.Extract(html)
}

// Run publishes {id}.json for every source, in order. A failing source
// gets an error record and processing continues with the next one.
// Sources without an extraction rule get a placeholder record.
func (p *WordPublisher) Run(ctx context.Context, sources []wikidaily.SourceConfig) []Outcome {
	logger := loggerOrDiscard(p.Logger)
	logger.Info("fetching words", "sources", len(sources))

	outcomes := make([]Outcome, 0, len(sources))
	for _, src := range sources {
		out := Outcome{Name: src.ID + ".json", Key: src.ID}

		var v any
		rec, err := p.Extract(ctx, src)
		switch {
		case err != nil:
			out.Err = err
			v = wikidaily.NewErrorRecord(src, err)
			logger.Error("failed", "id", src.ID, "err", wikidaily.ErrorText(err))
		case rec == nil:
			v = wikidaily.NewPlaceholderRecord(src.Language, src.Type)
		default:
			v = rec
			out.Date = rec.Date
		}

		out.WriteErr = save(ctx, p.Store, out.Name, v)
		if out.WriteErr != nil {
			logger.Error("write failed", "file", out.Name, "err", out.WriteErr)
		} else {
			logger.Info("wrote", "file", out.Name, "date", dateOrNA(out.Date))
		}
		outcomes = append(outcomes, out)
	}
	return outcomes
}
