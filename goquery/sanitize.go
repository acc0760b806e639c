// Package goquery implements the word-of-the-day extractors on top of
// CSS-selector queries over the parsed template markup.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikidaily"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// labelSelector matches the qualifier labels ("(archaic)", "(slang)")
// rendered by the Wiktionary label templates.
const labelSelector = "span.ib-content"

// Sanitize returns the inner markup of the first node in sel with every
// hyperlink unwrapped and every label span retagged as <em>. It works on
// a copy; sel is never modified. Empty or absent input yields "".
func Sanitize(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}

	clone := sel.First().Clone()
	clone.Find("a").Each(func(_ int, a *goquery.Selection) {
		unwrap(a.Get(0))
	})
	clone.Find(labelSelector).Each(func(_ int, label *goquery.Selection) {
		n := label.Get(0)
		n.Data = "em"
		n.DataAtom = atom.Em
	})

	inner, err := clone.Html()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(inner)
}

// unwrap replaces n with its children.
func unwrap(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
	}
	parent.RemoveChild(n)
}

// sanitizeEach sanitizes every node in sel, in document order, and drops
// entries that come out empty.
func sanitizeEach(sel *goquery.Selection, prepare func(*goquery.Selection)) []string {
	entries := make([]string, 0, sel.Length())
	sel.Each(func(_ int, item *goquery.Selection) {
		if prepare != nil {
			item = item.Clone()
			prepare(item)
		}
		entries = append(entries, Sanitize(item))
	})
	return wikidaily.FilterEmpty(entries)
}

func parseDocument(markup string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, wikidaily.Errorf(wikidaily.EPARSE, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// captionHref returns the href of the first link whose visible text is caption.
func captionHref(doc *goquery.Document, caption string) string {
	link := doc.Find("a").FilterFunction(func(_ int, a *goquery.Selection) bool {
		return strings.TrimSpace(a.Text()) == caption
	}).First()
	href, _ := link.Attr("href")
	return href
}

// documentHTML serializes the whole document, for templates whose date
// sits outside any queryable anchor.
func documentHTML(doc *goquery.Document) string {
	markup, err := doc.Html()
	if err != nil {
		return ""
	}
	return markup
}

// matchMonthNameDate applies re to s and composes (year, month name, day)
// from its three groups. Unmatched input or an unknown month yields "".
func matchMonthNameDate(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	date, err := wikidaily.ComposeFromMonthName(m[1], m[2], m[3])
	if err != nil {
		return ""
	}
	return date
}
