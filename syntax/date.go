package syntax

import "time"

// dateLayout is the notation's calendar date format.
const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD string. It reports false for anything
// else, including out-of-range dates like 2024-02-31.
func ParseDate(value string) (Date, bool) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, false
	}
	return DateOf(parsed), true
}

// DateOf returns the calendar date of t.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero returns true for the zero date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Before returns true if d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// DaysUntil returns the number of whole days from d to other. The result
// is negative when other is earlier than d.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time().Sub(d.Time()) / (24 * time.Hour))
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}
