package wikidaily_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/wikidaily"
	"github.com/fwojciec/wikidaily/mock"
	"github.com/stretchr/testify/assert"
)

func TestFormatWordRecord(t *testing.T) {
	t.Parallel()

	upper := &mock.Converter{
		ConvertFn: func(html string) (string, error) {
			return strings.ToUpper(html) + "\n", nil
		},
	}

	t.Run("formats word, metadata and numbered definitions", func(t *testing.T) {
		t.Parallel()

		rec := &wikidaily.WordRecord{
			Word:         "dog",
			PartOfSpeech: "noun",
			Definitions:  []string{"an animal", "a villain"},
			Date:         "2024-03-07",
		}

		got := wikidaily.FormatWordRecord("en_wotd", rec, upper)

		want := "## DOG\n_noun_ · 2024-03-07 · en_wotd\n\n1. AN ANIMAL\n2. A VILLAIN\n"
		assert.Equal(t, want, got)
	})

	t.Run("includes language and placeholder date", func(t *testing.T) {
		t.Parallel()

		lang := "French"
		rec := &wikidaily.WordRecord{Language: &lang, Word: "chien"}

		got := wikidaily.FormatWordRecord("en_fwotd", rec, nil)

		assert.Equal(t, "## chien\nFrench · n/a · en_fwotd\n", got)
	})

	t.Run("keeps markup when conversion fails", func(t *testing.T) {
		t.Parallel()

		failing := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", errors.New("bad html")
			},
		}
		rec := &wikidaily.WordRecord{Word: "<b>x</b>"}

		got := wikidaily.FormatWordRecord("id", rec, failing)

		assert.True(t, strings.HasPrefix(got, "## <b>x</b>\n"))
	})
}
