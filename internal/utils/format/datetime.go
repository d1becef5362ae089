package format

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

const (
	StyleFull   = "full"
	StyleMedium = "medium"

	fullLayout   = "Monday January, 2, 2006 at 3:04PM"
	mediumLayout = "Mon 01, 02, 2006 3:04PM"

	// StoredLayout is how show start times are stringified for detail pages.
	StoredLayout = "2006-01-02 15:04:05"
)

// DateTime parses value and renders it in English with the given style.
// Unknown styles fall back to medium.
func DateTime(value, style string) (string, error) {
	t, err := ParseTime(value)
	if err != nil {
		return "", err
	}
	return Time(t, style), nil
}

// Time renders an instant as local wall-clock time in the given style.
func Time(t time.Time, style string) string {
	t = t.Local()
	if style == StyleFull {
		return t.Format(fullLayout)
	}
	return t.Format(mediumLayout)
}

// Stored renders an instant as local wall-clock time in StoredLayout.
func Stored(t time.Time) string {
	return t.Local().Format(StoredLayout)
}

// ParseTime accepts the layouts a browser form or a stringified timestamp
// may carry. Values without a zone are local wall-clock time.
func ParseTime(value string) (time.Time, error) {
	t, err := dateparse.ParseIn(value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", value, err)
	}
	return t, nil
}

// TemplateFilter is the `datetime` template function: {{ datetime .StartTime }}
// or {{ datetime .StartTime "full" }}. Unparsable input is returned as is.
func TemplateFilter(value string, style ...string) string {
	s := StyleMedium
	if len(style) > 0 {
		s = style[0]
	}
	out, err := DateTime(value, s)
	if err != nil {
		return value
	}
	return out
}
