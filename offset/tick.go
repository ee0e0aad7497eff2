package offset

import "time"

// dayDuration is the fixed-duration day used by tick arithmetic. Ticks
// deliberately ignore daylight-saving transitions; a day is 24 hours.
const dayDuration = 24 * time.Hour

// Tick is a fixed-duration offset. Its step is N times one unit, where
// the unit is an exact number of nanoseconds, so tick arithmetic is pure
// duration arithmetic regardless of where the result lands on the
// calendar.
type Tick struct {
	N    int
	Unit time.Duration
}

// Seconds returns a tick of n seconds.
func Seconds(n int) Tick { return Tick{N: n, Unit: time.Second} }

// Minutes returns a tick of n minutes.
func Minutes(n int) Tick { return Tick{N: n, Unit: time.Minute} }

// Hours returns a tick of n hours.
func Hours(n int) Tick { return Tick{N: n, Unit: time.Hour} }

// Days returns a tick of n 24-hour days.
func Days(n int) Tick { return Tick{N: n, Unit: dayDuration} }

// Period returns the tick's effective step duration.
func (o Tick) Period() time.Duration { return time.Duration(o.N) * o.Unit }

func (o Tick) Forward(t time.Time) time.Time  { return t.Add(o.Period()) }
func (o Tick) Backward(t time.Time) time.Time { return t.Add(-o.Period()) }

// Equal reports whether two ticks describe the same step, regardless of
// the unit that produced it: Seconds(60) equals Minutes(1).
func (o Tick) Equal(other Tick) bool { return o.Period() == other.Period() }

func (o Tick) Label() string { return label(o.N, o.code()) }

func (o Tick) code() string {
	switch o.Unit {
	case time.Second:
		return "S"
	case time.Minute:
		return "T"
	case time.Hour:
		return "H"
	default:
		return "D"
	}
}
