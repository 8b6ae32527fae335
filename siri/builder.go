package siri

import (
	"strconv"
	"time"

	"github.com/theoremus-urban-solutions/disruptions/calendar"
	"github.com/theoremus-urban-solutions/disruptions/model"
	"github.com/theoremus-urban-solutions/disruptions/utils"
)

// Version of the SIRI-SX profile the deliveries follow
const Version = "2.0"

// Options controls how disruptions are mapped to situations
type Options struct {
	// Codespace prefixes every reference; usually the agency id
	Codespace string
	Language  string
	Location  *time.Location
	Now       time.Time
	View      model.View
	BaseURL   string
	BasePath  string
}

func (o Options) codespace() string {
	if o.Codespace == "" {
		return "UNKNOWN"
	}
	return o.Codespace
}

// BuildSituationExchange maps each disruption's revision in opts.View to a situation.
// Deleted revisions are published as closed situations so consumers withdraw them;
// revisions whose schedule does not expand are left out.
func BuildSituationExchange(disruptions []*model.Disruption, opts Options) SituationExchangeDelivery {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	elements := make([]PtSituationElement, 0, len(disruptions))
	for _, d := range disruptions {
		rev := d.RevisionFor(opts.View)
		if rev == nil {
			continue
		}
		el, ok := buildSituation(d, rev, opts)
		if !ok {
			continue
		}
		elements = append(elements, el)
	}
	return SituationExchangeDelivery{
		Version:           Version,
		ResponseTimestamp: opts.Now.In(opts.Location).Format(time.RFC3339),
		Situations:        elements,
	}
}

func buildSituation(d *model.Disruption, rev *model.DisruptionRevision, opts Options) (PtSituationElement, bool) {
	codespace := opts.codespace()
	el := PtSituationElement{
		CreationTime:    formatTime(firstNonZero(d.LastPublishedAt, rev.InsertedAt, opts.Now), opts.Location),
		ParticipantRef:  codespace,
		SituationNumber: codespace + ":SituationNumber:" + d.ID,
		Source:          &SituationSource{SourceType: "directReport"},
		Progress:        "open",
		Severity:        "noService",
		ReportType:      "general",
		Planned:         ptr(true),
	}
	if n, err := strconv.Atoi(rev.ID); err == nil {
		el.Version = ptr(n)
	}
	if !rev.InsertedAt.IsZero() {
		el.VersionedAtTime = formatTime(rev.InsertedAt, opts.Location)
	}

	if rev.IsActive {
		windows, err := calendar.ActivePeriods(rev, opts.Location)
		if err != nil || len(windows) == 0 {
			return PtSituationElement{}, false
		}
		for _, w := range windows {
			el.ValidityPeriod = append(el.ValidityPeriod, ValidityPeriod{
				StartTime: formatTime(w.Start, opts.Location),
				EndTime:   formatTime(w.End, opts.Location),
			})
		}
		// Set Progress based on validity period
		if windows[len(windows)-1].End.Before(opts.Now) {
			el.Progress = "closed"
		}
	} else {
		el.Progress = "closed"
		el.ValidityPeriod = []ValidityPeriod{dateRange(rev, opts)}
	}

	if summary := summaryText(rev); summary != "" {
		el.Summary = []NaturalLanguageString{{Lang: opts.Language, Text: summary}}
	}
	if descr := calendar.Describe(rev.DaysOfWeek); descr != "" {
		el.Description = []NaturalLanguageString{{Lang: opts.Language, Text: descr}}
	}
	el.Affects = buildAffects(rev, codespace)
	el.Consequences = &Consequences{Consequence: []Consequence{{
		Condition: "noService",
		Severity:  el.Severity,
		Blocking:  &Blocking{JourneyPlanner: true},
	}}}
	if opts.BaseURL != "" {
		uri := opts.BaseURL + calendar.Options{View: opts.View, BasePath: opts.BasePath}.URL(d.ID)
		el.InfoLinks = []InfoLink{{Uri: uri}}
	}
	return el, true
}

// dateRange covers whole days from the start date to the end of the end date
func dateRange(rev *model.DisruptionRevision, opts Options) ValidityPeriod {
	start := rev.StartDate
	if start.IsZero() {
		start = opts.Now
	}
	vp := ValidityPeriod{StartTime: formatTime(utils.InLocation(start, opts.Location), opts.Location)}
	if !rev.EndDate.IsZero() {
		vp.EndTime = formatTime(utils.InLocation(utils.AddDays(rev.EndDate, 1), opts.Location), opts.Location)
	}
	return vp
}

func buildAffects(rev *model.DisruptionRevision, codespace string) *Affects {
	affects := &Affects{}

	// Build Networks > AffectedLine for route-level disruptions
	seen := map[string]bool{}
	network := AffectedNetwork{NetworkRef: codespace + ":Network:" + codespace}
	for _, adj := range rev.Adjustments {
		if adj.RouteID == "" || seen[adj.RouteID] {
			continue
		}
		seen[adj.RouteID] = true
		line := AffectedLine{LineRef: codespace + ":Line:" + adj.RouteID}
		if adj.SourceLabel != "" {
			line.LineName = []NaturalLanguageString{{Text: adj.SourceLabel}}
		}
		network.AffectedLine = append(network.AffectedLine, line)
	}
	if len(network.AffectedLine) > 0 {
		affects.Networks = &AffectedNetworks{AffectedNetwork: []AffectedNetwork{network}}
	}

	// Journeys carry a LineRef only when a single line is affected
	var lineRef string
	if len(network.AffectedLine) == 1 {
		lineRef = network.AffectedLine[0].LineRef
	}
	seenTrips := map[string]bool{}
	for _, trip := range rev.TripShortNames {
		if trip.TripShortName == "" || seenTrips[trip.TripShortName] {
			continue
		}
		seenTrips[trip.TripShortName] = true
		if affects.VehicleJourneys == nil {
			affects.VehicleJourneys = &AffectedVehicleJourneys{}
		}
		affects.VehicleJourneys.AffectedVehicleJourney = append(affects.VehicleJourneys.AffectedVehicleJourney, AffectedVehicleJourney{
			VehicleJourneyRef: codespace + ":ServiceJourney:" + trip.TripShortName,
			LineRef:           lineRef,
		})
	}

	if affects.Networks == nil && affects.VehicleJourneys == nil {
		return nil
	}
	return affects
}

func summaryText(rev *model.DisruptionRevision) string {
	out := ""
	for _, adj := range rev.Adjustments {
		label := adj.SourceLabel
		if label == "" {
			label = adj.RouteID
		}
		if label == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += label
	}
	return out
}

func formatTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(time.RFC3339)
}

func firstNonZero(times ...time.Time) time.Time {
	for _, t := range times {
		if !t.IsZero() {
			return t
		}
	}
	return time.Time{}
}

func ptr[T any](v T) *T {
	return &v
}
