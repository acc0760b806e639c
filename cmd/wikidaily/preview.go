package main

import (
	"fmt"

	"github.com/fwojciec/wikidaily"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	src, err := findSource(deps.Sources, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikidaily.ErrorMessage(err))
		return err
	}

	rec, err := deps.Words.Extract(deps.Ctx, src)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikidaily.ErrorText(err))
		return err
	}

	if rec == nil {
		fmt.Fprintln(deps.Stdout, wikidaily.NewPlaceholderRecord(src.Language, src.Type).Todo)
		return nil
	}

	if c.JSON {
		data, err := wikidaily.Encode(rec)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(data))
		return nil
	}

	fmt.Fprint(deps.Stdout, wikidaily.FormatWordRecord(src.ID, rec, deps.Converter))
	return nil
}

func findSource(sources []wikidaily.SourceConfig, id string) (wikidaily.SourceConfig, error) {
	for _, src := range sources {
		if src.ID == id {
			return src, nil
		}
	}
	return wikidaily.SourceConfig{}, wikidaily.Errorf(wikidaily.ENOTFOUND, "Unknown source %q. Run 'wikidaily sources' to list them.", id)
}
