package feed_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/disruptions/feed"
	"github.com/theoremus-urban-solutions/disruptions/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testDisruptions() []*model.Disruption {
	published := &model.DisruptionRevision{
		ID:        "1",
		StartDate: date(2020, 6, 6),
		EndDate:   date(2020, 6, 7),
		IsActive:  true,
		DaysOfWeek: []*model.DayOfWeek{
			{DayName: model.Saturday, StartTime: "20:00:00"},
			{DayName: model.Sunday, EndTime: "05:00:00"},
		},
		Adjustments: []*model.Adjustment{
			{RouteID: "Red", SourceLabel: "AlewifeHarvard"},
			{RouteID: "Red", SourceLabel: "HarvardPorter"},
		},
		TripShortNames: []*model.TripShortName{{TripShortName: "1702"}},
	}
	deleted := &model.DisruptionRevision{ID: "2", IsActive: false, StartDate: date(2020, 6, 6), EndDate: date(2020, 6, 7)}
	draftOnly := &model.DisruptionRevision{ID: "3", IsActive: true}

	return []*model.Disruption{
		model.NewDisruption("10", time.Time{}, nil, published, []*model.DisruptionRevision{published}),
		model.NewDisruption("11", time.Time{}, nil, deleted, []*model.DisruptionRevision{deleted}),
		model.NewDisruption("12", time.Time{}, nil, nil, []*model.DisruptionRevision{draftOnly}),
	}
}

func TestBuildAlerts(t *testing.T) {
	now := time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)
	msg := feed.BuildAlerts(testDisruptions(), feed.Options{
		Now:      now,
		Location: time.UTC,
		Language: "en",
		View:     model.ViewPublished,
		BaseURL:  "https://example.com",
	})

	if msg.GetHeader().GetGtfsRealtimeVersion() != "2.0" {
		t.Errorf("expected version 2.0, got %s", msg.GetHeader().GetGtfsRealtimeVersion())
	}
	if msg.GetHeader().GetIncrementality() != gtfs.FeedHeader_FULL_DATASET {
		t.Errorf("expected full dataset, got %v", msg.GetHeader().GetIncrementality())
	}
	if msg.GetHeader().GetTimestamp() != uint64(now.Unix()) {
		t.Errorf("unexpected timestamp %d", msg.GetHeader().GetTimestamp())
	}
	if len(msg.Entity) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(msg.Entity))
	}

	entity := msg.Entity[0]
	if entity.GetId() != "disruption-10" {
		t.Errorf("expected id disruption-10, got %s", entity.GetId())
	}
	alert := entity.GetAlert()
	if alert.GetEffect() != gtfs.Alert_NO_SERVICE {
		t.Errorf("expected NO_SERVICE, got %v", alert.GetEffect())
	}

	periods := alert.GetActivePeriod()
	if len(periods) != 1 {
		t.Fatalf("expected 1 active period, got %d", len(periods))
	}
	start := time.Date(2020, 6, 6, 20, 0, 0, 0, time.UTC)
	end := time.Date(2020, 6, 7, 5, 0, 0, 0, time.UTC)
	if periods[0].GetStart() != uint64(start.Unix()) || periods[0].GetEnd() != uint64(end.Unix()) {
		t.Errorf("expected %v - %v, got %d - %d", start, end, periods[0].GetStart(), periods[0].GetEnd())
	}

	informed := alert.GetInformedEntity()
	if len(informed) != 2 {
		t.Fatalf("expected route and trip selectors, got %d", len(informed))
	}
	if informed[0].GetRouteId() != "Red" {
		t.Errorf("expected route Red, got %s", informed[0].GetRouteId())
	}
	if informed[1].GetTrip().GetTripId() != "1702" {
		t.Errorf("expected trip 1702, got %s", informed[1].GetTrip().GetTripId())
	}

	header := alert.GetHeaderText().GetTranslation()[0]
	if header.GetText() != "AlewifeHarvard, HarvardPorter" || header.GetLanguage() != "en" {
		t.Errorf("unexpected header %v", header)
	}
	if got := alert.GetDescriptionText().GetTranslation()[0].GetText(); got != "Sat 8:00pm - Sun 5:00am" {
		t.Errorf("unexpected description %q", got)
	}
	if got := alert.GetUrl().GetTranslation()[0].GetText(); got != "https://example.com/disruptions/10" {
		t.Errorf("unexpected url %q", got)
	}
}

func TestDump(t *testing.T) {
	msg := feed.BuildAlerts(testDisruptions(), feed.Options{Now: date(2020, 6, 1), View: model.ViewPublished})

	var bin bytes.Buffer
	if err := feed.Dump(&bin, msg, feed.FormatBinary); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded := new(gtfs.FeedMessage)
	if err := proto.Unmarshal(bin.Bytes(), decoded); err != nil {
		t.Fatalf("failed to decode binary feed: %v", err)
	}
	if len(decoded.Entity) != 1 {
		t.Errorf("expected 1 entity, got %d", len(decoded.Entity))
	}

	var text bytes.Buffer
	if err := feed.Dump(&text, msg, feed.FormatText); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text.String(), "disruption-10") {
		t.Errorf("expected text output to mention the entity, got %s", text.String())
	}

	var js bytes.Buffer
	if err := feed.Dump(&js, msg, feed.FormatJSON); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(js.String(), "NO_SERVICE") {
		t.Errorf("expected json output to name the effect, got %s", js.String())
	}

	if err := feed.Dump(&js, msg, feed.Format("xml")); err == nil {
		t.Error("expected error for unknown format")
	}
}
