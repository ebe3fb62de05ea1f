package format

import (
	"fmt"
	"strings"
	"time"
)

// layouts are tried in order by ParseTime.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
	// Date.prototype.toString, e.g. "Tue Mar 05 2024 10:30:00 GMT-0300"
	"Mon Jan 02 2006 15:04:05 GMT-0700",
}

// ParseTime parses a textual point in time. Layouts without a zone are read
// as UTC.
func ParseTime(text string) (time.Time, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrUnparseableTime)
	}
	// Drop the "(Zone Name)" suffix Date.toString appends.
	if i := strings.Index(s, " ("); i > 0 && strings.HasSuffix(s, ")") {
		s = s[:i]
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableTime, text)
}
