package offset

import (
	"time"

	"github.com/cyp0633/liboffsets/internal/calendar"
)

// MonthBegin steps between first-of-month boundaries, preserving the
// clock time. N is the repeat count; N <= 0 leaves the input unchanged.
type MonthBegin struct {
	N int
}

// OnBoundary reports whether t is the first day of its month.
func (o MonthBegin) OnBoundary(t time.Time) bool { return t.Day() == 1 }

// Forward advances to the first day of the following month, N times.
// The result always has day 1 regardless of the starting day.
func (o MonthBegin) Forward(t time.Time) time.Time {
	for i := 0; i < o.N; i++ {
		t = t.AddDate(0, 0, calendar.DaysIn(t.Year(), t.Month())-t.Day()+1)
	}
	return t
}

// Backward moves to the most recent month-begin strictly before t when t
// already sits on one, otherwise to the month-begin of t's own month.
func (o MonthBegin) Backward(t time.Time) time.Time {
	for i := 0; i < o.N; i++ {
		if o.OnBoundary(t) {
			t = calendar.AddMonths(t, -1)
		}
		t = time.Date(t.Year(), t.Month(), 1,
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	}
	return t
}

func (o MonthBegin) Label() string { return label(o.N, "MB") }

// MonthEnd steps between last-of-month boundaries, preserving the clock
// time. N is the repeat count; N <= 0 leaves the input unchanged.
type MonthEnd struct {
	N int
}

// OnBoundary reports whether t is the last day of its month.
func (o MonthEnd) OnBoundary(t time.Time) bool {
	return t.AddDate(0, 0, 1).Day() == 1
}

// Forward advances to the next month-end strictly after t: when t is
// already on a month-end it first steps one whole month forward, then
// snaps to that month's last day.
func (o MonthEnd) Forward(t time.Time) time.Time {
	for i := 0; i < o.N; i++ {
		if o.OnBoundary(t) {
			t = calendar.AddMonths(t, 1)
		}
		t = t.AddDate(0, 0, calendar.DaysIn(t.Year(), t.Month())-t.Day())
	}
	return t
}

// Backward always moves to the end of the previous month, independent of
// whether t sits on a boundary.
func (o MonthEnd) Backward(t time.Time) time.Time {
	for i := 0; i < o.N; i++ {
		t = calendar.AddMonths(t, -1)
		t = t.AddDate(0, 0, calendar.DaysIn(t.Year(), t.Month())-t.Day())
	}
	return t
}

func (o MonthEnd) Label() string { return label(o.N, "ME") }
