// Package dashboard contains dashboard aggregation use cases.
package dashboard

import "time"

// DateRange is an inclusive day-granularity range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of days covered by the range, inclusive.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Previous returns the immediately preceding range of equal length.
func (r DateRange) Previous() DateRange {
	days := r.Days()
	return DateRange{
		Start: r.Start.AddDate(0, 0, -days),
		End:   r.Start.AddDate(0, 0, -1),
	}
}

// truncateToDay drops the time-of-day component, keeping UTC midnight.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// clampRange resolves the requested window against today. Missing bounds
// default to the current month; the end never passes today and the start
// never passes the end. An inverted window collapses to a single day, it
// never errors.
func clampRange(start, end *time.Time, today time.Time) DateRange {
	today = truncateToDay(today)
	firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	resolved := DateRange{Start: firstOfMonth, End: today}
	if start != nil {
		resolved.Start = truncateToDay(*start)
	}
	if end != nil {
		resolved.End = truncateToDay(*end)
	}

	if resolved.End.After(today) {
		resolved.End = today
	}
	if resolved.Start.After(resolved.End) {
		resolved.Start = resolved.End
	}

	return resolved
}
