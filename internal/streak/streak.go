// Package streak computes consecutive-day completion streaks from a habit's
// history of day keys. The result is derived on every read and never stored,
// so it can not drift from the history it is computed from.
package streak

import (
	"sort"
	"time"

	"github.com/daypulse/daypulse/internal/calendar"
)

// Current returns the streak for the given history evaluated at the present
// moment. This is the single streak definition used everywhere a streak is
// shown or exported.
func Current(days []string) int {
	return At(days, time.Now())
}

// At returns the length of the consecutive-day run ending at the most recent
// day in the history, evaluated against now. The run only counts if its most
// recent day is now's day or the day before it (one-day grace window for a
// day not yet marked); otherwise the streak is 0 no matter how long older
// runs are. Duplicate and unordered keys are tolerated, malformed keys are
// ignored.
func At(days []string, now time.Time) int {
	if len(days) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(days))
	dates := make([]time.Time, 0, len(days))
	for _, key := range days {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		d, err := calendar.ParseDayKey(key)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return 0
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	today := calendar.Midnight(now)
	yesterday := today.AddDate(0, 0, -1)
	if !dates[0].Equal(today) && !dates[0].Equal(yesterday) {
		return 0
	}

	count := 1
	for i := 0; i < len(dates)-1; i++ {
		if !dates[i].AddDate(0, 0, -1).Equal(dates[i+1]) {
			break
		}
		count++
	}
	return count
}
