package timeutil

import (
	"testing"
	"time"
)

func TestSameDateUsesLocation(t *testing.T) {
	// 23:30 UTC on the 1st is already the 2nd in Tokyo.
	a := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)
	b := time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC)

	if !SameDate(a, b, time.UTC) {
		t.Fatal("expected same UTC date")
	}
	tokyo := ResolveTimezone("Asia/Tokyo")
	if tokyo == nil {
		t.Skip("tzdata unavailable")
	}
	if SameDate(a, b, tokyo) {
		t.Fatal("expected different dates in Tokyo")
	}
	if !SameDate(a, b, nil) {
		t.Fatal("expected nil location to mean UTC")
	}
}

func TestResolveTimezoneValid(t *testing.T) {
	loc := ResolveTimezone("UTC")
	if loc == nil || loc.String() != "UTC" {
		t.Fatalf("expected UTC, got %v", loc)
	}
}

func TestResolveTimezoneInvalid(t *testing.T) {
	if loc := ResolveTimezone("Not/AZone"); loc != nil {
		t.Fatalf("expected nil for invalid timezone, got %v", loc)
	}
}

func TestResolveTimezoneEmpty(t *testing.T) {
	if loc := ResolveTimezone(""); loc != nil {
		t.Fatalf("expected nil for empty timezone")
	}
}
