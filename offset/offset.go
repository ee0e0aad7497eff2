package offset

import (
	"strconv"
	"time"
)

// Offset is a symbolic calendar duration. Applying it to a time.Time
// produces a new time.Time; the receiver is immutable and safe to share
// across goroutines.
type Offset interface {
	// Forward shifts t forward by the offset's full step (its repeat
	// count times its unit).
	Forward(t time.Time) time.Time
	// Backward shifts t backward by the offset's full step.
	Backward(t time.Time) time.Time
	// Label returns the offset's short frequency code, e.g. "5S" or
	// "W-MON".
	Label() string
}

// Boundary is implemented by offsets anchored to a calendar landmark.
type Boundary interface {
	// OnBoundary reports whether t already sits exactly on the landmark
	// the offset steps between.
	OnBoundary(t time.Time) bool
}

// Negated inverts the direction of the offset it wraps.
type Negated struct {
	Inner Offset
}

func (o Negated) Forward(t time.Time) time.Time  { return o.Inner.Backward(t) }
func (o Negated) Backward(t time.Time) time.Time { return o.Inner.Forward(t) }

func (o Negated) Label() string { return "-" + o.Inner.Label() }

// OnBoundary delegates to the wrapped offset; negation does not move the
// landmark. It reports false when the wrapped offset has no landmark.
func (o Negated) OnBoundary(t time.Time) bool {
	if b, ok := o.Inner.(Boundary); ok {
		return b.OnBoundary(t)
	}
	return false
}

// Negate returns the arithmetic inverse of o. Negating a Negated offset
// returns its inner offset rather than wrapping twice.
func Negate(o Offset) Offset {
	if n, ok := o.(Negated); ok {
		return n.Inner
	}
	return Negated{Inner: o}
}

// label prefixes code with the repeat count, omitting it when it is 1.
func label(n int, code string) string {
	if n == 1 {
		return code
	}
	return strconv.Itoa(n) + code
}
