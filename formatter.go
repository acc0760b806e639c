package wikidaily

import (
	"strconv"
	"strings"
)

// FormatWordRecord renders a record as Markdown for terminal display.
// Markup fields are passed through conv; a field that fails to convert
// is shown as is.
func FormatWordRecord(id string, rec *WordRecord, conv Converter) string {
	var b strings.Builder

	b.WriteString("## ")
	b.WriteString(toMarkdown(conv, rec.Word))
	b.WriteString("\n")

	var meta []string
	if rec.Language != nil && *rec.Language != "" {
		meta = append(meta, *rec.Language)
	}
	if rec.PartOfSpeech != "" {
		meta = append(meta, "_"+rec.PartOfSpeech+"_")
	}
	date := rec.Date
	if date == "" {
		date = "n/a"
	}
	meta = append(meta, date, id)
	b.WriteString(strings.Join(meta, " · "))
	b.WriteString("\n")

	if len(rec.Definitions) > 0 {
		b.WriteString("\n")
	}
	for i, def := range rec.Definitions {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(toMarkdown(conv, def))
		b.WriteString("\n")
	}

	return b.String()
}

func toMarkdown(conv Converter, html string) string {
	if conv == nil || strings.TrimSpace(html) == "" {
		return html
	}
	md, err := conv.Convert(html)
	if err != nil {
		return html
	}
	return strings.TrimSpace(md)
}
