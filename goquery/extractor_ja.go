package goquery

import (
	"regexp"
	"strconv"
	"time"

	"github.com/fwojciec/wikidaily"
)

// jaWeekPath matches the week archive page, 今週の言葉/一覧/<week>.
var jaWeekPath = regexp.MustCompile(`今週の言葉/一覧/(\d+)`)

var _ wikidaily.WordExtractor = (*JaWOTWExtractor)(nil)

// JaWOTWExtractor reads Japanese Wiktionary's Template:Word_of_the_week.
type JaWOTWExtractor struct {
	// Now supplies the year the week number belongs to. Defaults to time.Now.
	Now func() time.Time
}

// NewJaWOTWExtractor creates a new JaWOTWExtractor using the given clock.
func NewJaWOTWExtractor(now func() time.Time) *JaWOTWExtractor {
	return &JaWOTWExtractor{Now: now}
}

// Extract reads the word markup from the linked Japanese headword, the part
// of speech from the <i> beside its <b>, and definitions from list items
// and nested example lines. The week number in the archive path becomes
// the week's Monday in the current year.
func (e *JaWOTWExtractor) Extract(html string) (*wikidaily.WordRecord, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	headword := doc.Find("b > .Jpan > a")
	word, err := headword.Html()
	if err != nil {
		word = ""
	}

	// The part of speech sits in an <i> sibling of the <b> holding the headword.
	partOfSpeech := headword.Parent().Parent().Parent().ChildrenFiltered("i").Text()

	return &wikidaily.WordRecord{
		Word:         word,
		PartOfSpeech: partOfSpeech,
		Definitions:  sanitizeEach(doc.Find("ol > li, dl > dd > dl > dd > i"), nil),
		ListKey:      wikidaily.KeyDefinitions,
		Date:         e.weekDate(documentHTML(doc)),
	}, nil
}

func (e *JaWOTWExtractor) weekDate(markup string) string {
	m := jaWeekPath.FindStringSubmatch(markup)
	if m == nil {
		return ""
	}
	week, err := strconv.Atoi(m[1])
	if err != nil {
		return ""
	}
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	return wikidaily.FirstDayOfISOWeek(now().Year(), week)
}
