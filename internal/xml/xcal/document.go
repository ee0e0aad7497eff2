// Package xcal builds xCal (RFC 6321) documents: the XML representation
// of iCalendar data.
package xcal

import (
	"time"

	"github.com/beevik/etree"
)

// Namespace is the xCal XML namespace.
const Namespace = "urn:ietf:params:xml:ns:icalendar-2.0"

const (
	TagICalendar  = "icalendar"
	TagVCalendar  = "vcalendar"
	TagVEvent     = "vevent"
	TagProperties = "properties"
	TagComponents = "components"
)

// dateTime is the xCal date-time value layout.
const dateTime = "2006-01-02T15:04:05Z"

// Event is one VEVENT to place in the document.
type Event struct {
	UID     string
	Start   time.Time
	Summary string
}

// Document builds an xCal document with one vcalendar holding the given
// events. The caller supplies the PRODID.
func Document(prodID string, events []Event) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	ical := doc.CreateElement(TagICalendar)
	ical.CreateAttr("xmlns", Namespace)

	vcal := ical.CreateElement(TagVCalendar)
	props := vcal.CreateElement(TagProperties)
	addTextProp(props, "prodid", prodID)
	addTextProp(props, "version", "2.0")

	components := vcal.CreateElement(TagComponents)
	for _, ev := range events {
		vevent := components.CreateElement(TagVEvent)
		evProps := vevent.CreateElement(TagProperties)
		addTextProp(evProps, "uid", ev.UID)
		addDateTimeProp(evProps, "dtstart", ev.Start)
		if ev.Summary != "" {
			addTextProp(evProps, "summary", ev.Summary)
		}
	}

	return doc
}

func addTextProp(parent *etree.Element, name, value string) {
	prop := parent.CreateElement(name)
	text := prop.CreateElement("text")
	text.SetText(value)
}

func addDateTimeProp(parent *etree.Element, name string, value time.Time) {
	prop := parent.CreateElement(name)
	dt := prop.CreateElement("date-time")
	dt.SetText(value.UTC().Format(dateTime))
}
