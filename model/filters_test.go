package model_test

import (
	"testing"
	"time"

	"github.com/theoremus-urban-solutions/disruptions/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMatchesFilters(t *testing.T) {
	threshold := date(2020, 1, 10)
	base := func() *model.DisruptionRevision {
		return &model.DisruptionRevision{
			ID:       "1",
			EndDate:  date(2020, 2, 1),
			IsActive: true,
			Status:   model.StatusPublished,
			Adjustments: []*model.Adjustment{
				{RouteID: "Red", SourceLabel: "AlewifeHarvard"},
				{RouteID: "CR-Fairmount", SourceLabel: "Fairmount Line"},
			},
		}
	}

	tests := []struct {
		name     string
		modify   func(r *model.DisruptionRevision)
		query    string
		routes   model.RouteFilters
		statuses model.StatusFilters
		dates    model.DateFilters
		expected bool
	}{
		{name: "no filters", expected: true},
		{
			name:     "deleted published never matches",
			modify:   func(r *model.DisruptionRevision) { r.IsActive = false },
			dates:    model.DateFilters{IncludePast: true},
			expected: false,
		},
		{
			name: "deleted draft still matches",
			modify: func(r *model.DisruptionRevision) {
				r.IsActive = false
				r.Status = model.StatusDraft
			},
			expected: true,
		},
		{
			name:     "ended before threshold",
			modify:   func(r *model.DisruptionRevision) { r.EndDate = date(2020, 1, 5) },
			expected: false,
		},
		{
			name:     "ending on threshold is past",
			modify:   func(r *model.DisruptionRevision) { r.EndDate = threshold },
			expected: false,
		},
		{
			name:     "include past bypasses threshold",
			modify:   func(r *model.DisruptionRevision) { r.EndDate = date(2019, 1, 5) },
			dates:    model.DateFilters{IncludePast: true},
			expected: true,
		},
		{
			name:     "open ended passes threshold",
			modify:   func(r *model.DisruptionRevision) { r.EndDate = time.Time{} },
			expected: true,
		},
		{name: "route filter match", routes: model.RouteFilters{model.RouteRed: true}, expected: true},
		{name: "route filter miss", routes: model.RouteFilters{model.RouteBlue: true}, expected: false},
		{name: "commuter bucket matches CR- routes", routes: model.RouteFilters{model.RouteCommuter: true}, expected: true},
		{name: "switched off route filters are inactive", routes: model.RouteFilters{model.RouteBlue: false}, expected: true},
		{name: "status filter match", statuses: model.StatusFilters{model.StatusPublished: true}, expected: true},
		{name: "status filter miss", statuses: model.StatusFilters{model.StatusDraft: true}, expected: false},
		{name: "search is case insensitive", query: "HARVARD", expected: true},
		{name: "search miss", query: "braintree", expected: false},
		{
			name:     "all groups combined",
			query:    "fair",
			routes:   model.RouteFilters{model.RouteCommuter: true, model.RouteOrange: true},
			statuses: model.StatusFilters{model.StatusPublished: true, model.StatusReady: true},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rev := base()
			if tt.modify != nil {
				tt.modify(rev)
			}
			got := model.MatchesFilters(rev, tt.query, tt.routes, tt.statuses, tt.dates, threshold)
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestFilterDisruptions(t *testing.T) {
	published := &model.DisruptionRevision{ID: "1", IsActive: true, Adjustments: []*model.Adjustment{{RouteID: "Blue"}}}
	draft := &model.DisruptionRevision{ID: "2", IsActive: true, Adjustments: []*model.Adjustment{{RouteID: "Orange"}}}
	disruptions := []*model.Disruption{
		model.NewDisruption("a", time.Time{}, nil, published, []*model.DisruptionRevision{published, draft}),
		model.NewDisruption("b", time.Time{}, nil, nil, []*model.DisruptionRevision{}),
	}

	filters := model.Filters{Routes: model.RouteFilters{model.RouteOrange: true}}
	got := model.FilterDisruptions(disruptions, model.ViewDraft, filters)
	if len(got) != 1 || got[0].ID != "2" || got[0].DisruptionID != "a" {
		t.Errorf("expected draft revision 2 of a, got %+v", got)
	}

	got = model.FilterDisruptions(disruptions, model.ViewPublished, filters)
	if len(got) != 0 {
		t.Errorf("expected no published matches, got %+v", got)
	}
}

func TestPastThreshold(t *testing.T) {
	now := time.Date(2020, 3, 1, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))
	got := model.PastThreshold(now, 7)
	// 23:30 EST is already March 2nd in UTC
	if !got.Equal(date(2020, 2, 24)) {
		t.Errorf("expected 2020-02-24, got %v", got)
	}
}

func TestParseFilters(t *testing.T) {
	routes := model.ParseRouteFilters([]string{"Red", " Commuter", "Purple"})
	if len(routes) != 2 || !routes[model.RouteRed] || !routes[model.RouteCommuter] {
		t.Errorf("unexpected route filters %v", routes)
	}

	statuses, err := model.ParseStatusFilters([]string{"ready", ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(statuses) != 1 || !statuses[model.StatusReady] {
		t.Errorf("unexpected status filters %v", statuses)
	}
	if _, err := model.ParseStatusFilters([]string{"archived"}); err == nil {
		t.Error("expected error for unknown status")
	}
}
