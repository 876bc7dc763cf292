package calendar

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const dayKeyLayout = "2006-01-02"

// DayKey returns the canonical key for the local calendar day containing t.
// Two instants map to the same key iff they fall on the same local day,
// regardless of their time-of-day component.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// ParseDayKey parses a YYYY-MM-DD key back to local midnight of that day.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(dayKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// Midnight returns t with the time component zeroed, in t's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of whole calendar days from a to b.
// Both instants are normalized to midnight first, so partial days and DST
// shifts never skew the count. Negative if b is before a.
func DaysBetween(a, b time.Time) int {
	diff := Midnight(b).Sub(Midnight(a))
	return int(math.Round(diff.Hours() / 24))
}

// Duration is the calendar decomposition of the time elapsed between two
// dates. It is always derived on demand, never stored.
type Duration struct {
	Years  int
	Months int
	Days   int
}

// Elapsed decomposes end-start into years, months and days with calendar
// borrowing: a negative day count borrows the length of the month preceding
// end's month, and a negative month count borrows a year. end is assumed to
// be at or after start.
func Elapsed(start, end time.Time) Duration {
	years := end.Year() - start.Year()
	months := int(end.Month()) - int(start.Month())
	days := end.Day() - start.Day()

	if days < 0 {
		months--
		// Day 0 of end's month is the last day of the month before it.
		days += time.Date(end.Year(), end.Month(), 0, 0, 0, 0, 0, end.Location()).Day()
	}
	if months < 0 {
		years--
		months += 12
	}
	return Duration{Years: years, Months: months, Days: days}
}

// String renders the duration for display, omitting zero units. Days are
// always shown when years and months are both zero, so a same-day duration
// reads "0 days" rather than an empty string.
func (d Duration) String() string {
	var parts []string
	if d.Years > 0 {
		parts = append(parts, plural(d.Years, "year"))
	}
	if d.Months > 0 {
		parts = append(parts, plural(d.Months, "month"))
	}
	if d.Days > 0 || (d.Years == 0 && d.Months == 0) {
		parts = append(parts, plural(d.Days, "day"))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
