/*
Package offset implements a calendar-offset algebra: symbolic durations
that shift a time.Time while respecting calendar irregularities such as
variable month lengths, leap years, and weekday targeting.

# Basic Usage

Concrete offsets are applied directly:

	me := offset.MonthEnd{N: 1}
	end := me.Forward(time.Date(2012, 5, 5, 10, 0, 0, 0, time.UTC))
	// end is 2012-05-31 10:00:00 UTC

or selected from a configuration through the DateOffset facade:

	months := 2
	off := offset.New(offset.Config{N: 3, Months: &months})
	later, err := off.Forward(start) // start + 6 calendar months
	if err != nil {
		log.Fatal(err)
	}

# Offset Kinds

  - Tick offsets (Seconds, Minutes, Hours, Days) shift by an exact
    duration; a day is always 24 hours. Two ticks compare equal when
    their effective periods match, so Seconds(60) equals Minutes(1).
  - CalendarStep offsets (Months, Years) step by whole calendar months,
    clamping the day-of-month when the target month is shorter.
  - Boundary-anchored offsets (MonthBegin, MonthEnd, YearBegin, YearEnd)
    snap to calendar landmarks; they implement the Boundary interface so
    callers can test whether a time already sits on the landmark.
  - Week moves to the Nth occurrence of a target weekday.

Negate inverts any offset's direction; negating twice returns the
original offset.

# Frequency Labels

Every offset reports a short frequency code via Label: "5S", "3W-MON",
"MB". The code is meant for display; this package does not parse codes
back into offsets.

# Error Handling

Concrete offsets are total functions and never fail. The DateOffset
facade returns a typed *Error: ErrUnconfigured when its configuration
named no duration key, ErrDateRange when a result's year leaves the
range representable by the library's iCalendar and xCal exports.
*/
package offset
