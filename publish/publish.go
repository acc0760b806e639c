// Package publish runs the featured-article and word-of-the-day pipelines
// and writes one JSON file per configured language or source.
package publish

import (
	"io"
	"log/slog"
)

// Outcome describes the file written for one language or source.
type Outcome struct {
	// Name is the output file name, e.g. "en.json" or "ja_wotw.json".
	Name string

	// Key is the language code or source id.
	Key string

	// Date is the date the record represents, or "" if unknown.
	Date string

	// Err is the fetch or extraction failure that was converted into an
	// error record. The file was still written unless WriteErr is set.
	Err error

	// WriteErr is set when the file could not be written.
	WriteErr error
}

// Written reports whether the output file was saved.
func (o Outcome) Written() bool {
	return o.WriteErr == nil
}

// Names returns the file names of outcomes whose files were written.
func Names(outcomes []Outcome) []string {
	names := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Written() {
			names = append(names, o.Name)
		}
	}
	return names
}

// Failed returns the number of outcomes whose files could not be written.
func Failed(outcomes []Outcome) int {
	var n int
	for _, o := range outcomes {
		if !o.Written() {
			n++
		}
	}
	return n
}

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dateOrNA(date string) string {
	if date == "" {
		return "n/a"
	}
	return date
}
