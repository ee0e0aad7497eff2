package export

import (
	"fmt"
	"time"

	"github.com/cyp0633/liboffsets/internal/xml/xcal"
	"github.com/google/uuid"
)

// XCal renders the given times as an xCal document with one vevent per
// time, each carrying the given summary and a fresh UID.
func XCal(times []time.Time, summary string) (string, error) {
	events := make([]xcal.Event, 0, len(times))
	for _, t := range times {
		events = append(events, xcal.Event{
			UID:     uuid.NewString(),
			Start:   t,
			Summary: summary,
		})
	}

	doc := xcal.Document(prodID, events)
	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("failed to serialize xcal document: %w", err)
	}
	return out, nil
}
