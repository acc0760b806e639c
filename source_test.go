package wikidaily_test

import (
	"testing"

	"github.com/fwojciec/wikidaily"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang string
		typ  string
		want wikidaily.SourceKind
	}{
		{"en", "wotd", wikidaily.KindEnWOTD},
		{"en", "fwotd", wikidaily.KindEnFWOTD},
		{"ja", "wotw", wikidaily.KindJaWOTW},
		{"zh", "wotd", wikidaily.KindZhWOTD},
		{"zh", "fwotd", wikidaily.KindZhFWOTD},
		{"ja", "wotd", wikidaily.KindUnimplemented},
		{"de", "wotd", wikidaily.KindUnimplemented},
		{"", "", wikidaily.KindUnimplemented},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"_"+tt.typ, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, wikidaily.KindOf(tt.lang, tt.typ))
		})
	}
}

func TestSourceKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "en_wotd", wikidaily.KindEnWOTD.String())
	assert.Equal(t, "zh_fwotd", wikidaily.KindZhFWOTD.String())
	assert.Equal(t, "unimplemented", wikidaily.KindUnimplemented.String())
}

func TestDefaultSources(t *testing.T) {
	t.Parallel()

	sources := wikidaily.DefaultSources()
	require.Len(t, sources, 5)

	seen := make(map[string]bool)
	for _, s := range sources {
		require.NoError(t, s.Validate())
		assert.False(t, seen[s.ID], "duplicate source id %s", s.ID)
		seen[s.ID] = true
		assert.NotEqual(t, wikidaily.KindUnimplemented, s.Kind(), "source %s has no extraction rule", s.ID)
		assert.Contains(t, s.Endpoint, "action=parse&page=Template:")
	}
}

func TestSourceConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires id", func(t *testing.T) {
		t.Parallel()

		s := wikidaily.SourceConfig{Language: "en", Type: "wotd", Endpoint: "https://x"}
		err := s.Validate()
		assert.Equal(t, wikidaily.EINVALID, wikidaily.ErrorCode(err))
	})

	t.Run("requires url", func(t *testing.T) {
		t.Parallel()

		s := wikidaily.SourceConfig{ID: "en_wotd", Language: "en", Type: "wotd"}
		err := s.Validate()
		assert.Equal(t, wikidaily.EINVALID, wikidaily.ErrorCode(err))
		assert.Contains(t, wikidaily.ErrorMessage(err), "en_wotd")
	})
}
