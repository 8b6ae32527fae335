package feed

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/disruptions/calendar"
	"github.com/theoremus-urban-solutions/disruptions/model"
)

// Format selects the encoding used by Dump
type Format string

const (
	FormatBinary Format = "pb"
	FormatText   Format = "text"
	FormatJSON   Format = "json"
)

// Options controls alert generation
type Options struct {
	// Now stamps the feed header
	Now time.Time
	// Location is the agency time zone used to place time windows
	Location *time.Location
	Language string
	// View selects the revision turned into alerts, usually ViewPublished
	View     model.View
	BasePath string
	// BaseURL is prepended to BasePath for the alert URL
	BaseURL string
}

// BuildAlerts creates a full-dataset GTFS-Realtime feed with one alert per disruption.
// Disruptions without an active revision in opts.View, or whose schedule does
// not expand, are left out.
func BuildAlerts(disruptions []*model.Disruption, opts Options) *gtfs.FeedMessage {
	msg := &gtfs.FeedMessage{
		Header: &gtfs.FeedHeader{
			GtfsRealtimeVersion: ptr("2.0"),
			Incrementality:      ptr(gtfs.FeedHeader_FULL_DATASET),
			Timestamp:           ptr(uint64(opts.Now.Unix())),
		},
	}

	msg.Entity = make([]*gtfs.FeedEntity, 0, len(disruptions))
	for _, d := range disruptions {
		rev := d.RevisionFor(opts.View)
		if rev == nil || !rev.IsActive {
			continue
		}
		entity, err := alertEntity(d, rev, opts)
		if err != nil {
			continue
		}
		msg.Entity = append(msg.Entity, entity)
	}
	return msg
}

func alertEntity(d *model.Disruption, rev *model.DisruptionRevision, opts Options) (*gtfs.FeedEntity, error) {
	windows, err := calendar.ActivePeriods(rev, opts.Location)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return nil, fmt.Errorf("disruption %s has no active period", d.ID)
	}

	g := new(gtfs.FeedEntity)
	g.Id = ptr("disruption-" + d.ID)
	g.Alert = &gtfs.Alert{
		Cause:  ptr(gtfs.Alert_MAINTENANCE),
		Effect: ptr(gtfs.Alert_NO_SERVICE),
	}

	g.Alert.ActivePeriod = make([]*gtfs.TimeRange, len(windows))
	for i, w := range windows {
		g.Alert.ActivePeriod[i] = &gtfs.TimeRange{
			Start: ptr(uint64(w.Start.Unix())),
			End:   ptr(uint64(w.End.Unix())),
		}
	}

	for _, route := range routeIDs(rev) {
		g.Alert.InformedEntity = append(g.Alert.InformedEntity, &gtfs.EntitySelector{RouteId: ptr(route)})
	}
	for _, trip := range rev.TripShortNames {
		if trip.TripShortName == "" {
			continue
		}
		g.Alert.InformedEntity = append(g.Alert.InformedEntity, &gtfs.EntitySelector{
			Trip: &gtfs.TripDescriptor{TripId: ptr(trip.TripShortName)},
		})
	}

	if title := headerText(rev); title != "" {
		g.Alert.HeaderText = translatedString(title, opts.Language)
	}
	if descr := calendar.Describe(rev.DaysOfWeek); descr != "" {
		g.Alert.DescriptionText = translatedString(descr, opts.Language)
	}
	if opts.BaseURL != "" {
		url := calendar.Options{View: opts.View, BasePath: opts.BasePath}.URL(d.ID)
		g.Alert.Url = translatedString(opts.BaseURL+url, opts.Language)
	}
	return g, nil
}

// routeIDs returns the distinct routes of the adjustments, sorted
func routeIDs(rev *model.DisruptionRevision) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, adj := range rev.Adjustments {
		if adj.RouteID == "" || seen[adj.RouteID] {
			continue
		}
		seen[adj.RouteID] = true
		out = append(out, adj.RouteID)
	}
	sort.Strings(out)
	return out
}

func headerText(rev *model.DisruptionRevision) string {
	var buf bytes.Buffer
	for _, adj := range rev.Adjustments {
		label := adj.SourceLabel
		if label == "" {
			label = adj.RouteID
		}
		if label == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(label)
	}
	return buf.String()
}

// Dump writes msg in the requested format
func Dump(w io.Writer, msg *gtfs.FeedMessage, format Format) error {
	var data []byte
	var err error

	switch format {
	case FormatBinary, "":
		data, err = proto.Marshal(msg)
	case FormatText:
		data, err = prototext.MarshalOptions{Multiline: true}.Marshal(msg)
	case FormatJSON:
		data, err = protojson.MarshalOptions{Multiline: true}.Marshal(msg)
	default:
		return fmt.Errorf("unknown feed format %q", format)
	}

	if err != nil {
		return err
	}

	_, err = io.Copy(w, bytes.NewReader(data))
	return err
}

func ptr[T any](thing T) *T {
	return &thing
}

func translatedString(s, language string) *gtfs.TranslatedString {
	t := &gtfs.TranslatedString_Translation{Text: ptr(s)}
	if language != "" {
		t.Language = ptr(language)
	}
	return &gtfs.TranslatedString{Translation: []*gtfs.TranslatedString_Translation{t}}
}
