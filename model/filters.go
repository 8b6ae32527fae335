package model

import (
	"strings"
	"time"
)

// RouteFilter is one route bucket of the disruption table filters
type RouteFilter string

const (
	RouteRed      RouteFilter = "Red"
	RouteBlue     RouteFilter = "Blue"
	RouteMattapan RouteFilter = "Mattapan"
	RouteOrange   RouteFilter = "Orange"
	RouteGreenB   RouteFilter = "Green-B"
	RouteGreenC   RouteFilter = "Green-C"
	RouteGreenD   RouteFilter = "Green-D"
	RouteGreenE   RouteFilter = "Green-E"
	RouteCommuter RouteFilter = "Commuter"
)

// commuterRoutePrefix marks commuter rail route ids
const commuterRoutePrefix = "CR-"

// RouteFilters maps a bucket to whether it is switched on
type RouteFilters map[RouteFilter]bool

// StatusFilters maps a status to whether it is switched on
type StatusFilters map[Status]bool

// DateFilters holds the date toggles; IncludePast disables the past-threshold check
type DateFilters struct {
	IncludePast bool
}

func anyOn[K comparable](m map[K]bool) bool {
	for _, on := range m {
		if on {
			return true
		}
	}
	return false
}

func (f RouteFilters) active() bool  { return anyOn(f) }
func (f StatusFilters) active() bool { return anyOn(f) }

func (f RouteFilters) matches(routeID string) bool {
	for bucket, on := range f {
		if !on {
			continue
		}
		if bucket == RouteCommuter {
			if strings.Contains(routeID, commuterRoutePrefix) {
				return true
			}
			continue
		}
		if string(bucket) == routeID {
			return true
		}
	}
	return false
}

// MatchesFilters reports whether rev should be listed. Every condition must hold;
// an inactive filter group always passes.
//
// Deleted revisions stay visible while they are drafts or ready, but a deleted
// published revision never matches.
func MatchesFilters(rev *DisruptionRevision, searchQuery string, routeFilters RouteFilters, statusFilters StatusFilters, dateFilters DateFilters, pastThreshold time.Time) bool {
	if rev == nil {
		return false
	}
	if !rev.IsActive && rev.Status == StatusPublished {
		return false
	}

	if !dateFilters.IncludePast && !rev.EndDate.IsZero() && !rev.EndDate.After(pastThreshold) {
		return false
	}

	if routeFilters.active() {
		matched := false
		for _, adj := range rev.Adjustments {
			if routeFilters.matches(adj.RouteID) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if statusFilters.active() && !statusFilters[rev.Status] {
		return false
	}

	query := strings.ToLower(searchQuery)
	if query == "" {
		return true
	}
	for _, adj := range rev.Adjustments {
		if strings.Contains(strings.ToLower(adj.SourceLabel), query) {
			return true
		}
	}
	return false
}

// Filters bundles the table filter state
type Filters struct {
	SearchQuery   string
	Routes        RouteFilters
	Statuses      StatusFilters
	Dates         DateFilters
	PastThreshold time.Time
}

// Match applies MatchesFilters with the bundled state
func (f Filters) Match(rev *DisruptionRevision) bool {
	return MatchesFilters(rev, f.SearchQuery, f.Routes, f.Statuses, f.Dates, f.PastThreshold)
}

// PastThreshold returns the UTC midnight days before now
func PastThreshold(now time.Time, days int) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d-days, 0, 0, 0, 0, time.UTC)
}

// FilterDisruptions returns the revisions shown for view that pass the filters,
// in disruption order. Disruptions without a revision in that view are skipped.
func FilterDisruptions(disruptions []*Disruption, view View, filters Filters) []*DisruptionRevision {
	out := []*DisruptionRevision{}
	for _, d := range disruptions {
		rev := d.RevisionFor(view)
		if rev != nil && filters.Match(rev) {
			out = append(out, rev)
		}
	}
	return out
}

// ParseRouteFilters switches on the named buckets; unknown names are ignored
func ParseRouteFilters(names []string) RouteFilters {
	known := map[RouteFilter]bool{
		RouteRed: true, RouteBlue: true, RouteMattapan: true, RouteOrange: true,
		RouteGreenB: true, RouteGreenC: true, RouteGreenD: true, RouteGreenE: true,
		RouteCommuter: true,
	}
	out := RouteFilters{}
	for _, name := range names {
		f := RouteFilter(strings.TrimSpace(name))
		if known[f] {
			out[f] = true
		}
	}
	return out
}

// ParseStatusFilters switches on the named statuses
func ParseStatusFilters(names []string) (StatusFilters, error) {
	out := StatusFilters{}
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		s, err := ParseStatus(name)
		if err != nil {
			return nil, err
		}
		out[s] = true
	}
	return out, nil
}
