// Package calendar holds the Gregorian calendar facts the offset types
// depend on: days-in-month lookup, leap-year test, and a month-stepping
// primitive that clamps the day-of-month instead of normalizing it the
// way time.Time.AddDate does (Jan 31 + 1 month must land on the last day
// of February, not on March 2 or 3).
package calendar

import "time"

// daysInMonth counts the numbers of days in a given month of a non-leap
// year. Index 0 is unused so the table can be addressed by time.Month.
var daysInMonth = [...]int{
	time.January:   31,
	time.February:  28,
	time.March:     31,
	time.April:     30,
	time.May:       31,
	time.June:      30,
	time.July:      31,
	time.August:    31,
	time.September: 30,
	time.October:   31,
	time.November:  30,
	time.December:  31,
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in the given month of the given year.
// Month must be in [January, December]; values originating from a valid
// time.Time always are.
func DaysIn(year int, month time.Month) int {
	if month == time.February && IsLeap(year) {
		return 29
	}
	return daysInMonth[month]
}

// norm returns nhi, nlo such that
//
//	hi * base + lo == nhi * base + nlo
//	0 <= nlo < base
func norm(hi, lo, base int) (nhi, nlo int) {
	if lo < 0 {
		n := (-lo-1)/base + 1
		hi -= n
		lo += n * base
	}
	if lo >= base {
		n := lo / base
		hi += n
		lo -= n * base
	}
	return hi, lo
}

// AddMonths steps t by n whole calendar months, clamping the day-of-month
// to the last valid day of the target month when needed. The clock time
// and location are preserved. n may be negative.
func AddMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	year, m := norm(year, int(month)-1+n, 12)
	month = time.Month(m) + 1
	if max := DaysIn(year, month); day > max {
		day = max
	}
	return time.Date(year, month, day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
