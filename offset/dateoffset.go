package offset

import (
	"time"

	"github.com/samber/mo"
	"gopkg.in/yaml.v3"
)

// Years the facade accepts in results. iCalendar and xCal carry
// four-digit years, so anything outside this range cannot round-trip
// through the library's exports.
const (
	minYear = 0
	maxYear = 9999
)

// Config selects a concrete offset for the DateOffset facade. At most
// one duration key takes effect, chosen in the fixed priority order
// secs, mins, hours, days, months, years; extra keys are silently
// ignored. Weeks is consulted only when every other key is absent and
// always builds a day tick of 7*N*Weeks days, never a weekday offset.
// N scales the chosen key and defaults to 1.
type Config struct {
	N      int  `yaml:"n"`
	Secs   *int `yaml:"secs"`
	Mins   *int `yaml:"mins"`
	Hours  *int `yaml:"hours"`
	Days   *int `yaml:"days"`
	Weeks  *int `yaml:"weeks"`
	Months *int `yaml:"months"`
	Years  *int `yaml:"years"`
}

// DateOffset selects one concrete offset from a Config and delegates
// arithmetic to it. A DateOffset built from a Config with no duration
// key holds no offset; its arithmetic fails with ErrUnconfigured.
type DateOffset struct {
	inner mo.Option[Offset]
}

// New builds a DateOffset from cfg. Construction never fails; an empty
// configuration surfaces as an error on the first arithmetic call.
func New(cfg Config) *DateOffset {
	n := cfg.N
	if n == 0 {
		n = 1
	}
	return &DateOffset{inner: resolve(cfg, n)}
}

// ParseConfig builds a DateOffset from a YAML document holding a Config.
func ParseConfig(data []byte) (*DateOffset, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &Error{Type: ErrInvalidInput, Message: "failed to parse offset config", Err: err}
	}
	return New(cfg), nil
}

func resolve(cfg Config, n int) mo.Option[Offset] {
	switch {
	case cfg.Secs != nil:
		return mo.Some[Offset](Seconds(n * *cfg.Secs))
	case cfg.Mins != nil:
		return mo.Some[Offset](Minutes(n * *cfg.Mins))
	case cfg.Hours != nil:
		return mo.Some[Offset](Hours(n * *cfg.Hours))
	case cfg.Days != nil:
		return mo.Some[Offset](Days(n * *cfg.Days))
	case cfg.Months != nil:
		return mo.Some[Offset](Months(n * *cfg.Months))
	case cfg.Years != nil:
		return mo.Some[Offset](Years(n * *cfg.Years))
	case cfg.Weeks != nil:
		return mo.Some[Offset](Days(7 * n * *cfg.Weeks))
	}
	return mo.None[Offset]()
}

// Forward applies the selected offset forward.
func (d *DateOffset) Forward(t time.Time) (time.Time, error) {
	off, ok := d.inner.Get()
	if !ok {
		return time.Time{}, &Error{Type: ErrUnconfigured, Message: "no duration key configured"}
	}
	return checkRange(off.Forward(t))
}

// Backward applies the selected offset backward.
func (d *DateOffset) Backward(t time.Time) (time.Time, error) {
	off, ok := d.inner.Get()
	if !ok {
		return time.Time{}, &Error{Type: ErrUnconfigured, Message: "no duration key configured"}
	}
	return checkRange(off.Backward(t))
}

// Neg returns a DateOffset whose forward and backward are swapped.
// Negating twice restores the original behavior.
func (d *DateOffset) Neg() *DateOffset {
	return &DateOffset{inner: d.inner.Map(func(o Offset) (Offset, bool) {
		return Negate(o), true
	})}
}

// Offset returns the selected concrete offset, if any.
func (d *DateOffset) Offset() (Offset, bool) { return d.inner.Get() }

// Label returns the selected offset's frequency code, or "" when the
// facade is unconfigured.
func (d *DateOffset) Label() string {
	off, ok := d.inner.Get()
	if !ok {
		return ""
	}
	return off.Label()
}

func checkRange(t time.Time) (time.Time, error) {
	if y := t.Year(); y < minYear || y > maxYear {
		return time.Time{}, &Error{Type: ErrDateRange, Message: t.Format(time.RFC3339) + " is outside the representable year range"}
	}
	return t, nil
}
