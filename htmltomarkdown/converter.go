// Package htmltomarkdown renders sanitized record markup as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/wikidaily"
)

// Ensure Converter implements wikidaily.Converter at compile time.
var _ wikidaily.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert record fragments to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms an HTML fragment into Markdown. Surrounding
// whitespace is trimmed so fragments fit inline.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", wikidaily.Errorf(wikidaily.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", wikidaily.Errorf(wikidaily.EPARSE, "converting markup: %v", err)
	}

	return strings.TrimSpace(result), nil
}
