// Package export serializes date series into calendar interchange
// formats: iCalendar (RFC 5545) and xCal (RFC 6321).
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

const prodID = "-//Liboffsets//Go Offsets//EN"

// ICS renders the given times as an iCalendar document with one VEVENT
// per time, each carrying the given summary and a fresh UID.
func ICS(times []time.Time, summary string) (string, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, prodID)

	now := time.Now()
	for _, t := range times {
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, uuid.NewString())
		event.Props.SetDateTime(ical.PropDateTimeStamp, now)
		event.Props.SetDateTime(ical.PropDateTimeStart, t)
		if summary != "" {
			event.Props.SetText(ical.PropSummary, summary)
		}
		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return "", fmt.Errorf("failed to encode calendar: %w", err)
	}
	return buf.String(), nil
}
