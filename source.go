package wikidaily

import "context"

// UserAgent is sent with every request. Wikimedia asks for a descriptive
// agent string; change it when running a fork.
const UserAgent = "wikipedia-featured-json/1.0 (GitHub Actions)"

// Template types used by the Wiktionary word sources.
const (
	TypeWOTD  = "wotd"  // word of the day
	TypeFWOTD = "fwotd" // foreign word of the day
	TypeWOTW  = "wotw"  // word of the week
)

// SourceConfig identifies one word-of-the-day scrape target.
type SourceConfig struct {
	ID       string `json:"id" yaml:"id"`
	Language string `json:"lang" yaml:"lang"`
	Type     string `json:"type" yaml:"type"`
	Endpoint string `json:"url" yaml:"url"`
}

// Validate returns an error if the source contains invalid fields.
func (s *SourceConfig) Validate() error {
	if s.ID == "" {
		return Errorf(EINVALID, "source id required")
	}
	if s.Language == "" {
		return Errorf(EINVALID, "source %q language required", s.ID)
	}
	if s.Type == "" {
		return Errorf(EINVALID, "source %q type required", s.ID)
	}
	if s.Endpoint == "" {
		return Errorf(EINVALID, "source %q url required", s.ID)
	}
	return nil
}

// Kind returns the extraction rule bound to the source.
func (s *SourceConfig) Kind() SourceKind {
	return KindOf(s.Language, s.Type)
}

// DefaultSources returns the word sources published by default.
func DefaultSources() []SourceConfig {
	return []SourceConfig{
		{
			ID:       "en_wotd",
			Language: "en",
			Type:     TypeWOTD,
			Endpoint: "https://en.wiktionary.org/w/api.php?action=parse&page=Template:Word_of_the_day&prop=text&formatversion=2&format=json",
		},
		{
			ID:       "en_fwotd",
			Language: "en",
			Type:     TypeFWOTD,
			Endpoint: "https://en.wiktionary.org/w/api.php?action=parse&page=Template:Foreign_Word_of_the_Day&prop=text&formatversion=2&format=json",
		},
		{
			ID:       "ja_wotw",
			Language: "ja",
			Type:     TypeWOTW,
			Endpoint: "https://ja.wiktionary.org/w/api.php?action=parse&page=Template:Word_of_the_week&prop=text&formatversion=2&format=json",
		},
		{
			ID:       "zh_wotd",
			Language: "zh",
			Type:     TypeWOTD,
			Endpoint: "https://zh.wiktionary.org/w/api.php?action=parse&page=Template:%E6%AF%8F%E6%97%A5%E4%B8%80%E8%A9%9E&prop=text&formatversion=2&format=json",
		},
		{
			ID:       "zh_fwotd",
			Language: "zh",
			Type:     TypeFWOTD,
			Endpoint: "https://zh.wiktionary.org/w/api.php?action=parse&page=Template:%E5%A4%96%E8%AA%9E%E6%AF%8F%E6%97%A5%E4%B8%80%E8%A9%9E&prop=text&formatversion=2&format=json",
		},
	}
}

// SourceKind identifies the extraction rule for a (language, template type) pair.
type SourceKind int

// Known extraction rules. KindUnimplemented covers every other pair.
const (
	KindUnimplemented SourceKind = iota
	KindEnWOTD
	KindEnFWOTD
	KindJaWOTW
	KindZhWOTD
	KindZhFWOTD
)

// String returns the kind's identifier (e.g., "en_wotd").
func (k SourceKind) String() string {
	switch k {
	case KindEnWOTD:
		return "en_wotd"
	case KindEnFWOTD:
		return "en_fwotd"
	case KindJaWOTW:
		return "ja_wotw"
	case KindZhWOTD:
		return "zh_wotd"
	case KindZhFWOTD:
		return "zh_fwotd"
	}
	return "unimplemented"
}

// KindOf maps a language and template type to its extraction rule.
func KindOf(lang, templateType string) SourceKind {
	switch {
	case lang == "en" && templateType == TypeWOTD:
		return KindEnWOTD
	case lang == "en" && templateType == TypeFWOTD:
		return KindEnFWOTD
	case lang == "ja" && templateType == TypeWOTW:
		return KindJaWOTW
	case lang == "zh" && templateType == TypeWOTD:
		return KindZhWOTD
	case lang == "zh" && templateType == TypeFWOTD:
		return KindZhFWOTD
	}
	return KindUnimplemented
}

// TemplateLoader retrieves the rendered markup of a wiki template page.
type TemplateLoader interface {
	// LoadTemplate requests the parse API endpoint and returns the
	// parse.text markup. Non-2xx responses return ETRANSPORT; a malformed
	// envelope returns EPARSE.
	LoadTemplate(ctx context.Context, endpoint string) (html string, err error)
}

// WordExtractor turns template markup into a WordRecord.
type WordExtractor interface {
	// Extract parses the markup and applies the template's rules.
	// Missing anchors produce empty fields, never an error.
	Extract(html string) (*WordRecord, error)
}

// WordExtractorRegistry binds source kinds to extractors.
type WordExtractorRegistry interface {
	// Get returns the extractor for a kind, or nil if none is registered.
	Get(kind SourceKind) WordExtractor
}
