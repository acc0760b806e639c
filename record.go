package wikidaily

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ListKey names the JSON key holding a WordRecord's senses. The English
// templates call them descriptions, the others definitions.
type ListKey string

// ListKey values.
const (
	KeyDefinitions  ListKey = "definitions"
	KeyDescriptions ListKey = "descriptions"
)

// WordRecord is the normalized output of a word-of-the-day template.
type WordRecord struct {
	// Language is the word's language, set only for foreign-word templates.
	Language *string

	// Word is the headword as markup.
	Word string

	PartOfSpeech string

	// Definitions holds sanitized markup in document order, empty entries removed.
	Definitions []string
	ListKey     ListKey

	// Date is an ISO-8601 date, or empty when it could not be recovered.
	Date string
}

type wordDocument struct {
	Lang         *string   `json:"lang,omitempty"`
	Word         string    `json:"word"`
	PartOfSpeech string    `json:"partOfSpeech"`
	Descriptions *[]string `json:"descriptions,omitempty"`
	Definitions  *[]string `json:"definitions,omitempty"`
	Date         string    `json:"date"`
}

// MarshalJSON writes the record with the field order and list key of its template.
func (r WordRecord) MarshalJSON() ([]byte, error) {
	defs := r.Definitions
	if defs == nil {
		defs = []string{}
	}

	doc := wordDocument{
		Lang:         r.Language,
		Word:         r.Word,
		PartOfSpeech: r.PartOfSpeech,
		Date:         r.Date,
	}
	if r.ListKey == KeyDescriptions {
		doc.Descriptions = &defs
	} else {
		doc.Definitions = &defs
	}
	return marshal(doc, "")
}

// PlaceholderRecord is written for a source whose (language, type) pair
// has no extraction rule.
type PlaceholderRecord struct {
	Todo string `json:"todo"`
}

// NewPlaceholderRecord returns the placeholder for an unimplemented pair.
func NewPlaceholderRecord(lang, templateType string) *PlaceholderRecord {
	return &PlaceholderRecord{
		Todo: "Parsing for lang=" + lang + ", type=" + templateType + " not yet implemented",
	}
}

// ErrorRecord is written in place of a WordRecord when fetching or
// extraction fails, so every source always yields a file.
type ErrorRecord struct {
	ID       string `json:"id"`
	Language string `json:"lang"`
	Type     string `json:"type"`
	Error    string `json:"error"`
}

// NewErrorRecord returns the error record for a failed source.
func NewErrorRecord(src SourceConfig, err error) *ErrorRecord {
	return &ErrorRecord{
		ID:       src.ID,
		Language: src.Language,
		Type:     src.Type,
		Error:    ErrorText(err),
	}
}

// FilterEmpty drops entries that are empty or whitespace-only,
// preserving the order of the rest.
func FilterEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Encode returns v as JSON indented by two spaces, without HTML escaping
// and without a trailing newline.
func Encode(v any) ([]byte, error) {
	return marshal(v, "  ")
}

func marshal(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
