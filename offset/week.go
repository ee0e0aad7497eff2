package offset

import (
	"strings"
	"time"
)

// Week moves to the Nth occurrence of a target weekday. The next
// occurrence counts as the first, so applying Forward to a time already
// on the target weekday moves a full week.
type Week struct {
	N       int
	Weekday time.Weekday
}

// OnBoundary reports whether t falls on the target weekday.
func (o Week) OnBoundary(t time.Time) bool { return t.Weekday() == o.Weekday }

// Forward moves to the Nth occurrence of the target weekday strictly
// after t, preserving the clock time.
func (o Week) Forward(t time.Time) time.Time {
	dist := int(o.Weekday) - int(t.Weekday())
	if dist > 0 {
		return t.AddDate(0, 0, dist+7*(o.N-1))
	}
	return t.AddDate(0, 0, (7+dist)+7*(o.N-1))
}

// Backward moves to the Nth occurrence of the target weekday strictly
// before t, preserving the clock time.
func (o Week) Backward(t time.Time) time.Time {
	dist := int(o.Weekday) - int(t.Weekday())
	if dist >= 0 {
		return t.AddDate(0, 0, -((7-dist)+7*(o.N-1)))
	}
	return t.AddDate(0, 0, -(-dist + 7*(o.N-1)))
}

func (o Week) Label() string {
	return label(o.N, "W-"+strings.ToUpper(o.Weekday.String()[:3]))
}
