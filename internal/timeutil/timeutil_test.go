package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-07-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Year() != 2024 || parsed.Month() != time.July || parsed.Day() != 1 {
		t.Fatalf("unexpected parse result: %v", parsed)
	}

	if _, err := ParseDate("07/01/2024"); err == nil {
		t.Fatalf("expected error for wrong layout")
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 7, 1, 23, 30, 0, 0, time.UTC)
	if got := FormatDate(ts); got != "2024-07-01" {
		t.Fatalf("unexpected format result: %s", got)
	}
}

func TestResolveLocation(t *testing.T) {
	if loc := ResolveLocation(""); loc != time.UTC {
		t.Fatalf("expected UTC fallback for empty name")
	}
	if loc := ResolveLocation("Not/AZone"); loc != time.UTC {
		t.Fatalf("expected UTC fallback for unknown name")
	}
	if loc := ResolveLocation("America/New_York"); loc.String() != "America/New_York" {
		t.Fatalf("unexpected location %v", loc)
	}
}
