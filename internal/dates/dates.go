// Package dates provides the date formatting and arithmetic shared by
// the journal and weekly-note commands.
package dates

import "time"

// YearMonthDay formats a time as YYYY-MM-DD, the canonical date form in
// journal timestamps.
func YearMonthDay(t time.Time) string {
	return t.Format("2006-01-02")
}

// DayMarker formats a time as it appears in a new-day marker line,
// e.g. "2022-10-17 Mon".
func DayMarker(t time.Time) string {
	return t.Format("2006-01-02 Mon")
}

// LastMonday returns the most recent Monday strictly before t's day. On
// a Monday it returns the Monday a full week earlier.
func LastMonday(t time.Time) time.Time {
	days := (int(t.Weekday()) + 6) % 7
	if days == 0 {
		days = 7
	}
	return t.AddDate(0, 0, -days)
}
