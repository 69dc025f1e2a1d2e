package util

import (
	"testing"
	"time"
)

func TestParseTimeRFC3339(t *testing.T) {
	s := "2026-08-22T10:10:10Z"
	got, ok := ParseTime(s)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.UTC().Format(time.RFC3339) != s {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeBareDate(t *testing.T) {
	got, ok := ParseTime("2026-08-22")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Year() != 2026 || got.Month() != time.August || got.Day() != 22 {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestParseTimeDefault(t *testing.T) {
	def := time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC)
	got := ParseTimeDefault("", def)
	if !got.Equal(def) {
		t.Fatalf("expected default")
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	b := time.Date(2026, 8, 22, 9, 0, 0, 0, time.UTC)
	if d := DaysBetween(a, b); d != 20 {
		t.Fatalf("expected 20 truncated days, got %d", d)
	}
}

func TestParseMeters(t *testing.T) {
	if v, ok := ParseMeters("1400m"); !ok || v != 1400 {
		t.Fatalf("unexpected %v %v", v, ok)
	}
	if v, ok := ParseMeters(" 1200 "); !ok || v != 1200 {
		t.Fatalf("unexpected %v %v", v, ok)
	}
	if _, ok := ParseMeters(""); ok {
		t.Fatalf("expected not ok")
	}
	if _, ok := ParseMeters("about 1400"); ok {
		t.Fatalf("expected not ok")
	}
}
