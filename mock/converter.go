package mock

import "github.com/fwojciec/wikidaily"

var _ wikidaily.Converter = (*Converter)(nil)

// Converter is a mock implementation of wikidaily.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
