package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDayKeyIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2024, 6, 1, 0, 0, 1, 0, time.Local)
	night := time.Date(2024, 6, 1, 23, 59, 59, 0, time.Local)

	if DayKey(morning) != "2024-06-01" {
		t.Fatalf("unexpected key: %s", DayKey(morning))
	}
	if DayKey(morning) != DayKey(night) {
		t.Fatalf("keys differ for same day: %s vs %s", DayKey(morning), DayKey(night))
	}
	if DayKey(night) == DayKey(night.Add(time.Second)) {
		t.Fatal("midnight rollover should produce a new key")
	}
}

func TestParseDayKey(t *testing.T) {
	got, err := ParseDayKey("2024-06-01")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(date(2024, 6, 1)) {
		t.Fatalf("expected local midnight, got %v", got)
	}

	if _, err := ParseDayKey("06/01/2024"); err == nil {
		t.Fatal("expected error for malformed key")
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b time.Time
		want int
	}{
		{date(2024, 6, 1), date(2024, 6, 1), 0},
		{date(2024, 6, 1), date(2024, 6, 4), 3},
		{date(2024, 6, 4), date(2024, 6, 1), -3},
		// Partial days never count: late evening to early morning is one day.
		{time.Date(2024, 6, 1, 23, 0, 0, 0, time.Local), time.Date(2024, 6, 2, 1, 0, 0, 0, time.Local), 1},
		{date(2024, 2, 28), date(2024, 3, 1), 2}, // leap year
		{date(2023, 2, 28), date(2023, 3, 1), 1},
	}
	for _, tt := range tests {
		if got := DaysBetween(tt.a, tt.b); got != tt.want {
			t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestElapsed(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       Duration
	}{
		{"same day", date(2024, 6, 1), date(2024, 6, 1), Duration{0, 0, 0}},
		{"plain days", date(2024, 6, 1), date(2024, 6, 15), Duration{0, 0, 14}},
		{"plain months", date(2024, 3, 10), date(2024, 6, 10), Duration{0, 3, 0}},
		{"day borrow", date(2024, 1, 31), date(2024, 3, 1), Duration{0, 1, 1}},
		{"month borrow", date(2023, 11, 15), date(2024, 2, 10), Duration{0, 2, 26}},
		{"full year", date(2023, 6, 1), date(2024, 6, 1), Duration{1, 0, 0}},
		{"year and remainder", date(2022, 12, 25), date(2024, 2, 3), Duration{1, 1, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Elapsed(tt.start, tt.end); got != tt.want {
				t.Fatalf("Elapsed(%v, %v) = %+v, want %+v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestElapsedBorrowUsesPrecedingMonthLength(t *testing.T) {
	// Borrow across March uses February's length, which depends on leap years.
	leap := Elapsed(date(2024, 2, 29), date(2024, 3, 1))
	if (leap != Duration{0, 0, 1}) {
		t.Fatalf("leap year borrow: got %+v", leap)
	}
	nonLeap := Elapsed(date(2023, 2, 27), date(2023, 3, 1))
	if (nonLeap != Duration{0, 0, 2}) {
		t.Fatalf("non-leap borrow: got %+v", nonLeap)
	}
}

func TestDurationString(t *testing.T) {
	tests := []struct {
		d    Duration
		want string
	}{
		{Duration{0, 0, 0}, "0 days"},
		{Duration{0, 0, 1}, "1 day"},
		{Duration{0, 1, 1}, "1 month, 1 day"},
		{Duration{0, 2, 0}, "2 months"},
		{Duration{1, 0, 0}, "1 year"},
		{Duration{2, 3, 10}, "2 years, 3 months, 10 days"},
		{Duration{1, 0, 2}, "1 year, 2 days"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.d, got, tt.want)
		}
	}
}
