package wikidaily_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/wikidaily"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterEmpty(t *testing.T) {
	t.Parallel()

	t.Run("drops empty and whitespace entries", func(t *testing.T) {
		t.Parallel()

		got := wikidaily.FilterEmpty([]string{"", " ", "valid text"})
		assert.Equal(t, []string{"valid text"}, got)
	})

	t.Run("preserves order", func(t *testing.T) {
		t.Parallel()

		got := wikidaily.FilterEmpty([]string{"b", "\n\t", "a", "", "c"})
		assert.Equal(t, []string{"b", "a", "c"}, got)
	})

	t.Run("returns empty slice for nil", func(t *testing.T) {
		t.Parallel()

		got := wikidaily.FilterEmpty(nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestWordRecord_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("english word of the day uses descriptions", func(t *testing.T) {
		t.Parallel()

		rec := wikidaily.WordRecord{
			Word:         "serendipity",
			PartOfSpeech: "noun",
			Definitions:  []string{"A <em class=\"ib-content\">(rare)</em> find."},
			ListKey:      wikidaily.KeyDescriptions,
			Date:         "2024-03-07",
		}

		b, err := wikidaily.Encode(rec)
		require.NoError(t, err)

		want := `{
  "word": "serendipity",
  "partOfSpeech": "noun",
  "descriptions": [
    "A <em class=\"ib-content\">(rare)</em> find."
  ],
  "date": "2024-03-07"
}`
		assert.Equal(t, want, string(b))
	})

	t.Run("foreign word puts lang first and uses definitions", func(t *testing.T) {
		t.Parallel()

		lang := "法語"
		rec := wikidaily.WordRecord{
			Language:     &lang,
			Word:         "bonjour",
			PartOfSpeech: "感嘆詞",
			Date:         "",
		}

		b, err := wikidaily.Encode(rec)
		require.NoError(t, err)

		want := `{
  "lang": "法語",
  "word": "bonjour",
  "partOfSpeech": "感嘆詞",
  "definitions": [],
  "date": ""
}`
		assert.Equal(t, want, string(b))
	})

	t.Run("empty language is still written for foreign word", func(t *testing.T) {
		t.Parallel()

		lang := ""
		b, err := wikidaily.Encode(wikidaily.WordRecord{Language: &lang, ListKey: wikidaily.KeyDescriptions})
		require.NoError(t, err)

		assert.Contains(t, string(b), `"lang": ""`)
		assert.Contains(t, string(b), `"descriptions": []`)
	})
}

func TestNewErrorRecord(t *testing.T) {
	t.Parallel()

	src := wikidaily.SourceConfig{ID: "en_wotd", Language: "en", Type: "wotd", Endpoint: "https://x"}
	rec := wikidaily.NewErrorRecord(src, errors.New("boom"))

	b, err := wikidaily.Encode(rec)
	require.NoError(t, err)

	want := `{
  "id": "en_wotd",
  "lang": "en",
  "type": "wotd",
  "error": "boom"
}`
	assert.Equal(t, want, string(b))
}

func TestNewPlaceholderRecord(t *testing.T) {
	t.Parallel()

	rec := wikidaily.NewPlaceholderRecord("de", "wotd")
	assert.Equal(t, "Parsing for lang=de, type=wotd not yet implemented", rec.Todo)
}
