package offset

import (
	"time"

	"github.com/cyp0633/liboffsets/internal/calendar"
)

// StepUnit selects the calendar unit a CalendarStep moves by.
type StepUnit int

const (
	// StepMonth steps by whole calendar months.
	StepMonth StepUnit = iota
	// StepYear steps by whole calendar years.
	StepYear
)

// CalendarStep moves by whole calendar months or years. The day-of-month
// is clamped when the target month is shorter, so Jan 31 plus one month
// lands on the last day of February. No boundary snapping is performed.
type CalendarStep struct {
	N    int
	Unit StepUnit
}

// Months returns an offset of n whole calendar months.
func Months(n int) CalendarStep { return CalendarStep{N: n, Unit: StepMonth} }

// Years returns an offset of n whole calendar years.
func Years(n int) CalendarStep { return CalendarStep{N: n, Unit: StepYear} }

func (o CalendarStep) months() int {
	if o.Unit == StepYear {
		return o.N * 12
	}
	return o.N
}

func (o CalendarStep) Forward(t time.Time) time.Time {
	return calendar.AddMonths(t, o.months())
}

func (o CalendarStep) Backward(t time.Time) time.Time {
	return calendar.AddMonths(t, -o.months())
}

func (o CalendarStep) Label() string {
	if o.Unit == StepYear {
		return label(o.N, "Y")
	}
	return label(o.N, "M")
}
