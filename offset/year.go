package offset

import "time"

// YearBegin steps between January 1 boundaries.
type YearBegin struct {
	N int
}

// OnBoundary reports whether t is January 1.
func (o YearBegin) OnBoundary(t time.Time) bool {
	return t.Month() == time.January && t.Day() == 1
}

// Forward reconstructs t as January 1 of t's year plus N, preserving the
// clock time.
func (o YearBegin) Forward(t time.Time) time.Time {
	return time.Date(t.Year()+o.N, time.January, 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Backward moves to January 1 of t's year minus N when t is already on a
// year-begin boundary, preserving the clock time. Off-boundary it moves
// to January 1 of t's year minus N-1, at midnight.
func (o YearBegin) Backward(t time.Time) time.Time {
	if o.OnBoundary(t) {
		return time.Date(t.Year()-o.N, time.January, 1,
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	}
	return time.Date(t.Year()-(o.N-1), time.January, 1, 0, 0, 0, 0, t.Location())
}

func (o YearBegin) Label() string { return label(o.N, "YB") }

// YearEnd steps between December 31 boundaries.
type YearEnd struct {
	N int
}

// OnBoundary reports whether t is December 31.
func (o YearEnd) OnBoundary(t time.Time) bool {
	return t.Month() == time.December && t.Day() == 31
}

// Forward moves to December 31 of t's year plus N when t is already on a
// year-end boundary, otherwise of t's year plus N-1. The clock time is
// preserved in both cases.
func (o YearEnd) Forward(t time.Time) time.Time {
	year := t.Year() + o.N
	if !o.OnBoundary(t) {
		year = t.Year() + o.N - 1
	}
	return time.Date(year, time.December, 31,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Backward moves to December 31 of the previous year, at midnight. The
// repeat count does not apply here.
func (o YearEnd) Backward(t time.Time) time.Time {
	return time.Date(t.Year()-1, time.December, 31, 0, 0, 0, 0, t.Location())
}

func (o YearEnd) Label() string { return label(o.N, "YE") }
