package calendar

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/theoremus-urban-solutions/disruptions/model"
	"github.com/theoremus-urban-solutions/disruptions/utils"
)

// DefaultBasePath prefixes event URLs when Options.BasePath is empty
const DefaultBasePath = "/disruptions"

// Event is one all-day block on the disruption calendar.
//
// Start is the first date of a run of consecutive days. For runs longer than one
// day End is the day after the last date; a single day has End equal to Start.
type Event struct {
	ID              string
	Title           string
	BackgroundColor string
	Start           time.Time
	End             time.Time
	URL             string
	DisplayAsBlock  bool
	AllDay          bool
}

type eventJSON struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	BackgroundColor string `json:"backgroundColor"`
	Start           string `json:"start"`
	End             string `json:"end"`
	URL             string `json:"url"`
	DisplayAsBlock  bool   `json:"displayAsBlock"`
	AllDay          bool   `json:"allDay"`
}

// MarshalJSON writes dates as "YYYY-MM-DD"
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventJSON{
		ID:              e.ID,
		Title:           e.Title,
		BackgroundColor: e.BackgroundColor,
		Start:           utils.FormatISODate(e.Start),
		End:             utils.FormatISODate(e.End),
		URL:             e.URL,
		DisplayAsBlock:  e.DisplayAsBlock,
		AllDay:          e.AllDay,
	})
}

// LastDate returns the last date covered by the event
func (e Event) LastDate() time.Time {
	if e.End.After(e.Start) {
		return utils.AddDays(e.End, -1)
	}
	return e.Start
}

// Options controls how events are labelled and linked
type Options struct {
	// View is the view being rendered; the draft view adds ?v=draft to URLs
	View     model.View
	BasePath string
}

// URL returns the link to a disruption's page
func (o Options) URL(disruptionID string) string {
	base := o.BasePath
	if base == "" {
		base = DefaultBasePath
	}
	url := base + "/" + disruptionID
	if o.View == model.ViewDraft {
		url += "?v=draft"
	}
	return url
}

// Expand turns revisions into calendar events, one group per adjustment.
// Revisions without days of week, without a date range, or with an invalid day
// of week contribute no events.
func Expand(revisions []*model.DisruptionRevision, opts Options) []Event {
	events := []Event{}
	for _, rev := range revisions {
		events = append(events, revisionEvents(rev, opts)...)
	}
	return events
}

func revisionEvents(rev *model.DisruptionRevision, opts Options) []Event {
	if rev == nil || len(rev.DaysOfWeek) == 0 {
		return nil
	}
	dates, err := Occurrences(rev)
	if err != nil {
		return nil
	}
	runs := GroupRuns(dates)

	events := make([]Event, 0, len(rev.Adjustments)*len(runs))
	for adjIdx, adj := range rev.Adjustments {
		title := adj.SourceLabel
		if title == "" {
			title = adj.RouteID
		}
		color := RouteColor(adj.RouteID)
		for runIdx, run := range runs {
			end := run[0]
			if len(run) > 1 {
				end = utils.AddDays(run[len(run)-1], 1)
			}
			events = append(events, Event{
				ID:              fmt.Sprintf("%s-%d-%d", rev.ID, adjIdx, runIdx),
				Title:           title,
				BackgroundColor: color,
				Start:           run[0],
				End:             end,
				URL:             opts.URL(rev.DisruptionID),
				DisplayAsBlock:  true,
				AllDay:          true,
			})
		}
	}
	return events
}

// FromDisruptions expands the revision each disruption shows in opts.View.
// Inactive revisions are left off the calendar.
func FromDisruptions(disruptions []*model.Disruption, opts Options) []Event {
	revisions := make([]*model.DisruptionRevision, 0, len(disruptions))
	for _, d := range disruptions {
		rev := d.RevisionFor(opts.View)
		if rev == nil || !rev.IsActive {
			continue
		}
		revisions = append(revisions, rev)
	}
	return Expand(revisions, opts)
}
