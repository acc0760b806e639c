package wikidaily

import (
	"strings"
	"time"
)

var monthNumbers = map[string]string{
	"January": "01", "February": "02", "March": "03", "April": "04",
	"May": "05", "June": "06", "July": "07", "August": "08",
	"September": "09", "October": "10", "November": "11", "December": "12",
}

// ComposeFromMonthName builds a YYYY-MM-DD date from an English month name.
// Only the twelve English names are recognized; anything else returns
// EINVALID rather than a guessed date.
func ComposeFromMonthName(year, monthName, day string) (string, error) {
	month, ok := monthNumbers[monthName]
	if !ok {
		return "", Errorf(EINVALID, "unrecognized month name %q", monthName)
	}
	return year + "-" + month + "-" + padLeft(day, 2), nil
}

// FirstDayOfISOWeek returns the Monday starting the given 1-based week of
// year. Week 1 starts on the first Monday on or after January 1.
func FirstDayOfISOWeek(year, week int) string {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	daysToFirstMonday := (8 - int(jan1.Weekday())) % 7
	firstMonday := jan1.AddDate(0, 0, daysToFirstMonday)
	return firstMonday.AddDate(0, 0, (week-1)*7).Format(time.DateOnly)
}

// ComposeFromNumericParts builds a YYYY-MM-DD date from numeric parts,
// zero-padding month and day. Ranges are not validated.
func ComposeFromNumericParts(year, month, day string) string {
	return year + "-" + padLeft(month, 2) + "-" + padLeft(day, 2)
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
