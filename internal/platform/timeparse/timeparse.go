package timeparse

import (
	"regexp"
	"strconv"
	"time"

	apperrors "pustaka/internal/platform/errors"
)

// Visit timestamps arrive in whatever shape the legacy write paths left
// behind: native timestamps, RFC 3339 strings, or delimited day/month/year
// strings with optional time-of-day. Parse normalizes all of them, or fails
// with ErrUnparseableTime. It never guesses a default date.

var delimiters = regexp.MustCompile(`[/:\-,.\s]+`)

// matchers are tried in order; the first success wins.
var matchers = []func(string) (time.Time, bool){
	matchRFC3339,
	matchDelimited,
}

func Parse(raw any) (time.Time, error) {
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case string:
		for _, match := range matchers {
			if t, ok := match(v); ok {
				return t, nil
			}
		}
		return time.Time{}, apperrors.ErrUnparseableTime
	default:
		return time.Time{}, apperrors.ErrUnparseableTime
	}
}

func matchRFC3339(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// matchDelimited handles the legacy "day/month/year[ hour:minute:second]"
// form, where any run of slash, colon, dash, comma, dot, or whitespace
// separates fields. At least day, month, and year must be present.
func matchDelimited(s string) (time.Time, bool) {
	fields := make([]string, 0, 6)
	for _, tok := range delimiters.Split(s, -1) {
		if tok != "" {
			fields = append(fields, tok)
		}
	}
	if len(fields) < 3 {
		return time.Time{}, false
	}
	if len(fields) > 6 {
		fields = fields[:6]
	}
	parts := [6]int{}
	for i, tok := range fields {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return time.Time{}, false
		}
		parts[i] = n
	}
	day, month, year := parts[0], parts[1], parts[2]
	hour, minute, second := parts[3], parts[4], parts[5]

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.Local)
	// time.Date normalizes out-of-range fields; a date that does not
	// round-trip had inconsistent calendar fields and is rejected.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return time.Time{}, false
	}
	return t, true
}
