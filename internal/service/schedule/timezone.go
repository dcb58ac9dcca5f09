package schedule

import (
	"time"
	_ "time/tzdata"
)

// DayStart returns the start of the calendar day containing now in tz, converted to UTC.
func DayStart(now time.Time, tz *time.Location) time.Time {
	local := now.In(tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz).UTC()
}

// NextDayStart returns the start of the following calendar day in tz, converted to UTC.
func NextDayStart(now time.Time, tz *time.Location) time.Time {
	// AddDate handles DST correctly, Add(24h) does not
	next := DayStart(now, tz).In(tz).AddDate(0, 0, 1)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, tz).UTC()
}

// DayEnd returns the last representable instant of the calendar day containing now in tz.
func DayEnd(now time.Time, tz *time.Location) time.Time {
	return NextDayStart(now, tz).Add(-time.Nanosecond)
}

// civilDay numbers the calendar date of t in t's own location.
func civilDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}
