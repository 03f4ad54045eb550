package timezone_test

import (
	"testing"
	"time"

	"hotel/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := timezone.ParseDate("2025-06-01")
	if err != nil {
		t.Fatalf("ParseDate() failed: %v", err)
	}

	expected := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if !parsed.Equal(expected) || parsed.Location() != time.UTC {
		t.Errorf("expected %v, got %v", expected, parsed)
	}

	if _, err := timezone.ParseDate("2025-06-01T10:00:00Z"); err == nil {
		t.Error("expected error for a timestamp value")
	}

	if _, err := timezone.ParseDate("2025-02-30"); err == nil {
		t.Error("expected error for an impossible date")
	}
}

func TestDateOf(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	late := time.Date(2025, 6, 1, 23, 30, 0, 0, jakarta)

	got := timezone.DateOf(late)

	expected := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}
