// Package date parses loosely formatted date inputs the way browsers do:
// a string of digits is a millisecond epoch, anything else is a calendar
// date or date-time, interpreted in UTC unless it carries its own zone.
package date

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Layout renders a calendar date, e.g. "Fri Dec 25 2015".
const Layout = "Mon Jan 02 2006"

// maxEpochMillis bounds the representable range of epoch milliseconds, ±100,000,000 days.
const maxEpochMillis = 8.64e15

var ErrInvalid = errors.New("invalid date")

// utcZones are zone names accepted as a trailing suffix and read as UTC.
var utcZones = []string{"GMT", "UTC", "UT", "Z"}

// dayLayouts cover day-first calendar dates that dateparse does not recognize.
var dayLayouts = []string{
	"02 January 2006",
	"2 January 2006",
	"02 Jan 2006",
	"2 Jan 2006",
}

// Parse converts raw into an instant.
func Parse(raw string) (time.Time, error) {
	const op = "date.Parse"

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%s: empty input: %w", op, ErrInvalid)
	}

	if isDigits(raw) {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || ms > maxEpochMillis {
			return time.Time{}, fmt.Errorf("%s: epoch %q out of range: %w", op, raw, ErrInvalid)
		}

		return time.UnixMilli(ms).UTC(), nil
	}

	t, err := parseCalendar(raw)
	if trimmed := trimUTCZone(raw); err != nil && trimmed != raw {
		t, err = parseCalendar(trimmed)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", op, errors.Join(ErrInvalid, err))
	}

	if t.UTC().Year() < 1 {
		return time.Time{}, fmt.Errorf("%s: %q has no calendar year: %w", op, raw, ErrInvalid)
	}

	ms := t.UnixMilli()
	if ms > maxEpochMillis || ms < -maxEpochMillis {
		return time.Time{}, fmt.Errorf("%s: %q out of range: %w", op, raw, ErrInvalid)
	}

	return t.UTC(), nil
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Format renders the calendar day of t using Layout.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

func parseCalendar(s string) (time.Time, error) {
	for _, layout := range dayLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}

	return dateparse.ParseIn(s, time.UTC)
}

// trimUTCZone drops a trailing UTC zone name and any separating comma,
// e.g. "05 October 2011, GMT" becomes "05 October 2011".
func trimUTCZone(s string) string {
	for _, zone := range utcZones {
		if len(s) <= len(zone) || !strings.EqualFold(s[len(s)-len(zone):], zone) {
			continue
		}

		rest := s[:len(s)-len(zone)]
		trimmed := strings.TrimRight(rest, " ,")
		if trimmed == rest || trimmed == "" {
			continue
		}
		return trimmed
	}

	return s
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
