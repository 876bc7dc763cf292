package streak

import (
	"testing"
	"time"

	"github.com/daypulse/daypulse/internal/calendar"
)

func at(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.Local)
}

func TestAt(t *testing.T) {
	history := []string{"2024-06-01", "2024-06-02", "2024-06-03"}

	tests := []struct {
		name string
		days []string
		now  time.Time
		want int
	}{
		{"empty history", nil, at(2024, 6, 4), 0},
		{"run ending yesterday", history, at(2024, 6, 4), 3},
		{"run ending today", history, at(2024, 6, 3), 3},
		{"gap beyond grace window", history, at(2024, 6, 6), 0},
		{"two days beyond most recent", history, at(2024, 6, 5), 0},
		{"single entry today", []string{"2024-06-04"}, at(2024, 6, 4), 1},
		{"single entry yesterday", []string{"2024-06-03"}, at(2024, 6, 4), 1},
		{"single entry two days ago", []string{"2024-06-02"}, at(2024, 6, 4), 0},
		{"gap inside run stops the walk",
			[]string{"2024-06-01", "2024-06-03", "2024-06-04"}, at(2024, 6, 4), 2},
		{"old run does not count",
			[]string{"2024-05-01", "2024-05-02", "2024-05-03"}, at(2024, 6, 4), 0},
		{"month boundary",
			[]string{"2024-05-30", "2024-05-31", "2024-06-01"}, at(2024, 6, 2), 3},
		{"leap day boundary",
			[]string{"2024-02-28", "2024-02-29", "2024-03-01"}, at(2024, 3, 1), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := At(tt.days, tt.now); got != tt.want {
				t.Fatalf("At(%v, %v) = %d, want %d", tt.days, tt.now, got, tt.want)
			}
		})
	}
}

func TestAtIgnoresDuplicatesAndOrder(t *testing.T) {
	now := at(2024, 6, 4)
	clean := []string{"2024-06-01", "2024-06-02", "2024-06-03"}
	noisy := []string{"2024-06-03", "2024-06-01", "2024-06-02", "2024-06-03", "2024-06-01"}

	if At(clean, now) != At(noisy, now) {
		t.Fatalf("streak differs under duplicates: %d vs %d", At(clean, now), At(noisy, now))
	}
}

func TestAtSkipsMalformedKeys(t *testing.T) {
	now := at(2024, 6, 4)
	days := []string{"2024-06-03", "not-a-date", "2024-06-02"}
	if got := At(days, now); got != 2 {
		t.Fatalf("expected malformed key to be skipped, got %d", got)
	}
}

func TestCurrentUsesWallClock(t *testing.T) {
	today := calendar.DayKey(time.Now())
	if got := Current([]string{today}); got != 1 {
		t.Fatalf("expected streak 1 for today only, got %d", got)
	}
}
