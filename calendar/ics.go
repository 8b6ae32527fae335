package calendar

import (
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/theoremus-urban-solutions/disruptions/utils"
)

// DefaultProductID identifies the exporter in PRODID
const DefaultProductID = "-//disruptions//calendar//EN"

// ToICS renders events as an iCalendar feed of all-day VEVENTs.
// DTEND is exclusive, so single-day events end on the following day.
func ToICS(events []Event, productID string, stamp time.Time) string {
	if productID == "" {
		productID = DefaultProductID
	}
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)

	for _, e := range events {
		vevent := cal.AddEvent(e.ID)
		vevent.SetDtStampTime(stamp.UTC())
		vevent.SetSummary(e.Title)
		vevent.SetAllDayStartAt(e.Start)
		vevent.SetAllDayEndAt(utils.AddDays(e.LastDate(), 1))
		if e.URL != "" {
			vevent.SetURL(e.URL)
		}
		if e.BackgroundColor != "" {
			vevent.SetProperty(ics.ComponentPropertyColor, e.BackgroundColor)
		}
	}
	return cal.Serialize()
}
