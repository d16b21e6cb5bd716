package utils

import (
	"fmt"
	"time"
)

// Accepted input layouts for submitted and stored timestamps. Parsing
// is locale-independent; only formatting is locale-aware.
var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

const (
	mediumLayout = "Mon Jan, 02, 2006 3:04PM"
	fullLayout   = "Monday January, 2, 2006 at 3:04PM"
)

// ParseDateTime parses an ISO-like timestamp string.
func ParseDateTime(value string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q", value)
}

// FormatDateTime renders an ISO-like timestamp string as a
// human-readable date. format is "medium" or "full"; anything else
// falls back to medium. Unparseable input is returned unchanged so a
// template never renders an error in place of a date.
func FormatDateTime(value, format string) string {
	t, err := ParseDateTime(value)
	if err != nil {
		return value
	}
	switch format {
	case "full":
		return t.Format(fullLayout)
	default:
		return t.Format(mediumLayout)
	}
}
