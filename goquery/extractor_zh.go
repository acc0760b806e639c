package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikidaily"
)

// zhViewHref matches the percent-encoded archive path behind the "檢視"
// link: /<year>年/<month>月<day>日.
var zhViewHref = regexp.MustCompile(`/(\d+)%E5%B9%B4/(\d+)%E6%9C%88(\d+)%E6%97%A5`)

var _ wikidaily.WordExtractor = (*ZhExtractor)(nil)

// ZhExtractor reads Chinese Wiktionary's 每日一詞 and 外語每日一詞 templates,
// which share one layout. Foreign adds the language taken from the
// category link.
type ZhExtractor struct {
	Foreign bool
}

// NewZhWOTDExtractor creates an extractor for Template:每日一詞.
func NewZhWOTDExtractor() *ZhExtractor {
	return &ZhExtractor{}
}

// NewZhFWOTDExtractor creates an extractor for Template:外語每日一詞.
func NewZhFWOTDExtractor() *ZhExtractor {
	return &ZhExtractor{Foreign: true}
}

// Extract reads the word from the bold headword in .mf-wotd's first row,
// the part of speech from the rest of that row, and definitions from
// #WOTD-rss-description's list items and paragraphs with their bold
// labels removed.
func (e *ZhExtractor) Extract(html string) (*wikidaily.WordRecord, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	head := doc.Find(".mf-wotd > div:first-child")

	rest := head.Clone()
	rest.Find("b").Remove()

	definitions := sanitizeEach(
		doc.Find("#WOTD-rss-description > ol > li, #WOTD-rss-description > p"),
		func(item *goquery.Selection) {
			item.ChildrenFiltered("b").Remove()
		},
	)

	rec := &wikidaily.WordRecord{
		Word:         Sanitize(head.ChildrenFiltered("b")),
		PartOfSpeech: strings.TrimSpace(rest.Text()),
		Definitions:  definitions,
		ListKey:      wikidaily.KeyDefinitions,
		Date:         e.date(captionHref(doc, "檢視")),
	}
	if e.Foreign {
		lang := doc.Find(`a[href^="/wiki/Category:"]`).Text()
		rec.Language = &lang
	}
	return rec, nil
}

func (e *ZhExtractor) date(href string) string {
	m := zhViewHref.FindStringSubmatch(href)
	if m == nil {
		return ""
	}
	return wikidaily.ComposeFromNumericParts(m[1], m[2], m[3])
}
