package record

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDay_Valid(t *testing.T) {
	d, err := ParseDay("2024-01-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2024-01-05" {
		t.Errorf("expected 2024-01-05, got %s", d)
	}
	if !d.Time().Equal(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected midnight UTC, got %v", d.Time())
	}
}

func TestParseDay_Invalid(t *testing.T) {
	cases := []string{
		"01-01-2024",
		"2024/01/05",
		"2024-1-5",
		"2024-01-05T00:00:00Z",
		"2024-13-40",
		"yesterday",
		"",
	}
	for _, input := range cases {
		if _, err := ParseDay(input); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDay(%q): expected ErrInvalidDate, got %v", input, err)
		}
	}
}

func TestDayOf_TruncatesToUTCDay(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	ts := time.Date(2024, 3, 10, 2, 30, 0, 0, loc) // 2024-03-09 21:30 UTC
	d := DayOf(ts)
	if d.String() != "2024-03-09" {
		t.Errorf("expected 2024-03-09, got %s", d)
	}
}

func TestAddDays_AcrossMonthBoundary(t *testing.T) {
	d, _ := ParseDay("2024-03-02")
	if got := d.AddDays(-6).String(); got != "2024-02-25" {
		t.Errorf("expected 2024-02-25, got %s", got)
	}
	if got := d.AddDays(30).String(); got != "2024-04-01" {
		t.Errorf("expected 2024-04-01, got %s", got)
	}
}

func TestDay_Comparisons(t *testing.T) {
	a, _ := ParseDay("2024-01-01")
	b, _ := ParseDay("2024-01-02")

	if !a.Before(b) || b.Before(a) {
		t.Error("expected a < b")
	}
	if !b.After(a) {
		t.Error("expected b > a")
	}
	if !a.Equal(a) || a.Equal(b) {
		t.Error("expected a == a and a != b")
	}
	if a.IsZero() {
		t.Error("parsed day should not be zero")
	}
	if !(Day{}).IsZero() {
		t.Error("zero day should be zero")
	}
}

func TestDay_JSONRoundTrip(t *testing.T) {
	d, _ := ParseDay("2024-07-19")

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"2024-07-19"` {
		t.Errorf("expected quoted date string, got %s", data)
	}

	var back Day
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip mismatch: %s != %s", back, d)
	}

	if err := json.Unmarshal([]byte(`"05/19/2024"`), &back); err == nil {
		t.Error("expected error for malformed date")
	}
}
