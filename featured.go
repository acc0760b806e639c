package wikidaily

import (
	"context"
	"time"
)

// DefaultLookbackDays is how many days before the anchor the featured
// search may go.
const DefaultLookbackDays = 60

// DayAnchorOffset shifts the run clock forward before taking the UTC date,
// so the first day tried is the latest one published anywhere.
const DayAnchorOffset = 12 * time.Hour

// DefaultLanguages returns the Wikipedia editions whose featured article is published.
func DefaultLanguages() []string {
	return []string{"bn", "de", "el", "en", "he", "hu", "ja", "sd", "sv", "ur", "vi", "zh"}
}

// DayAnchor returns the instant the featured search starts from. The same
// anchor is shared by every language.
func DayAnchor(now time.Time) time.Time {
	return now.Add(DayAnchorOffset).UTC()
}

// FeaturedFeed is the response of the Wikimedia featured feed.
type FeaturedFeed struct {
	TFA *FeaturedArticle `json:"tfa"`
}

// FeaturedArticle is the "tfa" member of the featured feed.
type FeaturedArticle struct {
	Titles      *FeaturedTitles `json:"titles"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Extract     *string         `json:"extract"`
	ExtractHTML *string         `json:"extract_html"`
}

// FeaturedTitles holds the alternative titles of a featured article.
type FeaturedTitles struct {
	Display    string `json:"display"`
	Normalized string `json:"normalized"`
}

// PickTitle resolves the article title: display title, then normalized
// title, then plain title. Empty values fall through; nil means none.
func PickTitle(a *FeaturedArticle) *string {
	if a == nil {
		return nil
	}
	if a.Titles != nil {
		if a.Titles.Display != "" {
			return &a.Titles.Display
		}
		if a.Titles.Normalized != "" {
			return &a.Titles.Normalized
		}
	}
	if a.Title != "" {
		return &a.Title
	}
	return nil
}

// FeaturedService retrieves the featured feed for one language and day.
type FeaturedService interface {
	// FetchFeatured returns the feed for the UTC calendar date of date.
	// A feed without an article is returned with a nil TFA.
	FetchFeatured(ctx context.Context, lang string, date time.Time) (*FeaturedFeed, error)
}

// FeaturedRecord is the normalized output for one language. Every field
// is null when no article could be found.
type FeaturedRecord struct {
	Timestamp   *string `json:"timestamp"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Extract     *string `json:"extract"`
	ExtractHTML *string `json:"extract_html"`
}

// NewFeaturedRecord builds the record for an article found on usedDate.
func NewFeaturedRecord(a *FeaturedArticle, usedDate time.Time) *FeaturedRecord {
	ts := FormatTimestamp(usedDate)
	return &FeaturedRecord{
		Timestamp:   &ts,
		Title:       PickTitle(a),
		Description: a.Description,
		Extract:     a.Extract,
		ExtractHTML: a.ExtractHTML,
	}
}

// FormatTimestamp formats t as a UTC instant with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
