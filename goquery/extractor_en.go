package goquery

import (
	"regexp"

	"github.com/fwojciec/wikidaily"
)

var (
	// enViewHref matches the archive link behind the "view" caption,
	// e.g. .../Word_of_the_day/2024/March_7.
	enViewHref = regexp.MustCompile(`/(\d+)/(\w+)_(\d+)$`)

	// enArchivePath matches the archive page path that the foreign word
	// template leaves at the end of a line in its markup.
	enArchivePath = regexp.MustCompile(`/(\d+)/(\w+)_(\d+)\n`)
)

// Ensure extractors implement wikidaily.WordExtractor at compile time.
var (
	_ wikidaily.WordExtractor = (*EnWOTDExtractor)(nil)
	_ wikidaily.WordExtractor = (*EnFWOTDExtractor)(nil)
)

// EnWOTDExtractor reads English Wiktionary's Template:Word_of_the_day.
type EnWOTDExtractor struct{}

// NewEnWOTDExtractor creates a new EnWOTDExtractor.
func NewEnWOTDExtractor() *EnWOTDExtractor {
	return &EnWOTDExtractor{}
}

// Extract reads the word from #WOTD-rss-title, the part of speech from
// the <i> following its <b>, the descriptions from
// #WOTD-rss-description's list and the date from the "view" link.
func (e *EnWOTDExtractor) Extract(html string) (*wikidaily.WordRecord, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	return &wikidaily.WordRecord{
		Word:         doc.Find("#WOTD-rss-title").Text(),
		PartOfSpeech: doc.Find("b:has(#WOTD-rss-title) + i").Text(),
		Definitions:  sanitizeEach(doc.Find("#WOTD-rss-description > ol > li"), nil),
		ListKey:      wikidaily.KeyDescriptions,
		Date:         matchMonthNameDate(enViewHref, captionHref(doc, "view")),
	}, nil
}

// EnFWOTDExtractor reads English Wiktionary's Template:Foreign_Word_of_the_Day.
type EnFWOTDExtractor struct{}

// NewEnFWOTDExtractor creates a new EnFWOTDExtractor.
func NewEnFWOTDExtractor() *EnFWOTDExtractor {
	return &EnFWOTDExtractor{}
}

// Extract reads the language from #FWOTD-rss-language, the word and part
// of speech from the headword line and the descriptions from
// #FWOTD-rss-description's list. The date is recovered from the archive
// path in the serialized markup.
func (e *EnFWOTDExtractor) Extract(html string) (*wikidaily.WordRecord, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	lang := doc.Find("#FWOTD-rss-language > a").Text()

	return &wikidaily.WordRecord{
		Language:     &lang,
		Word:         doc.Find(".headword-line a").Text(),
		PartOfSpeech: doc.Find(".headword-line").NextFiltered("i").Text(),
		Definitions:  sanitizeEach(doc.Find("#FWOTD-rss-description > ol > li"), nil),
		ListKey:      wikidaily.KeyDescriptions,
		Date:         matchMonthNameDate(enArchivePath, documentHTML(doc)),
	}, nil
}
