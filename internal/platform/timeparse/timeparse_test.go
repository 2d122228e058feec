package timeparse_test

import (
	"errors"
	"testing"
	"time"

	apperrors "pustaka/internal/platform/errors"
	"pustaka/internal/platform/timeparse"
)

func TestParsePassesThroughNativeTimestamps(t *testing.T) {
	t.Parallel()
	want := time.Date(2024, time.March, 9, 14, 0, 0, 0, time.UTC)
	got, err := timeparse.Parse(want)
	if err != nil {
		t.Fatalf("native timestamp should parse: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseRFC3339(t *testing.T) {
	t.Parallel()
	got, err := timeparse.Parse("2024-07-15T08:30:00Z")
	if err != nil {
		t.Fatalf("rfc3339 should parse: %v", err)
	}
	if got.UTC() != time.Date(2024, time.July, 15, 8, 30, 0, 0, time.UTC) {
		t.Fatalf("unexpected time: %v", got)
	}
}

func TestParseDelimitedDayMonthYear(t *testing.T) {
	t.Parallel()
	cases := []struct {
		raw  string
		want time.Time
	}{
		{"25/12/2023 10:30:00", time.Date(2023, time.December, 25, 10, 30, 0, 0, time.Local)},
		{"7-1-2024", time.Date(2024, time.January, 7, 0, 0, 0, 0, time.Local)},
		{"01,05.2024 9:05", time.Date(2024, time.May, 1, 9, 5, 0, 0, time.Local)},
	}
	for _, tc := range cases {
		got, err := timeparse.Parse(tc.raw)
		if err != nil {
			t.Fatalf("%q should parse: %v", tc.raw, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("%q: expected %v, got %v", tc.raw, tc.want, got)
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{
		"12/2023",     // too few tokens
		"aa/bb/cc",    // non-numeric
		"32/1/2024",   // day out of range
		"29/2/2023",   // not a leap year
		"1/13/2024",   // month out of range
		"",            // empty
		"   / / ,,, ", // delimiters only
	} {
		if _, err := timeparse.Parse(raw); !errors.Is(err, apperrors.ErrUnparseableTime) {
			t.Fatalf("%q should be unparseable, got err=%v", raw, err)
		}
	}
}

func TestParseRejectsUnknownTypes(t *testing.T) {
	t.Parallel()
	if _, err := timeparse.Parse(42); !errors.Is(err, apperrors.ErrUnparseableTime) {
		t.Fatalf("int input should be unparseable, got %v", err)
	}
}

func TestParseExtraTokensAreIgnored(t *testing.T) {
	t.Parallel()
	got, err := timeparse.Parse("25/12/2023 10:30:00 999")
	if err != nil {
		t.Fatalf("trailing tokens should not break parsing: %v", err)
	}
	want := time.Date(2023, time.December, 25, 10, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
