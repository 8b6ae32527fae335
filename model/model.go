package model

import (
	"time"
)

// Adjustment is one affected route or segment. Empty strings mean absent.
type Adjustment struct {
	ID          string
	RouteID     string
	Source      Source
	SourceLabel string
}

// DayOfWeek is the applicability window on one weekday.
// StartTime and EndTime are "HH:MM:SS"; empty means start or end of service.
type DayOfWeek struct {
	ID        string
	StartTime string
	EndTime   string
	DayName   DayName
}

// Exception is a date on which the recurring schedule does not apply
type Exception struct {
	ID           string
	ExcludedDate time.Time
}

// TripShortName is an opaque trip tag, passed through unchanged
type TripShortName struct {
	ID            string
	TripShortName string
}

// DisruptionRevision is one version of a disruption's schedule and routes.
// Zero times mean the date is absent. IsActive false marks a deletion.
type DisruptionRevision struct {
	ID             string
	DisruptionID   string
	StartDate      time.Time
	EndDate        time.Time
	IsActive       bool
	Status         Status
	InsertedAt     time.Time
	Adjustments    []*Adjustment
	DaysOfWeek     []*DayOfWeek
	Exceptions     []*Exception
	TripShortNames []*TripShortName
}

// withParent returns a copy tagged with the owning disruption and derived status
func (r *DisruptionRevision) withParent(disruptionID string, status Status) *DisruptionRevision {
	c := *r
	c.DisruptionID = disruptionID
	c.Status = status
	return &c
}

// ExcludedDates lists the exception dates in input order
func (r *DisruptionRevision) ExcludedDates() []time.Time {
	out := make([]time.Time, 0, len(r.Exceptions))
	for _, e := range r.Exceptions {
		out = append(out, e.ExcludedDate)
	}
	return out
}

// Disruption is the persistent identity behind a series of revisions
type Disruption struct {
	ID                string
	LastPublishedAt   time.Time
	ReadyRevision     *DisruptionRevision
	PublishedRevision *DisruptionRevision
	// DraftRevision is the revision with the highest numeric id
	DraftRevision *DisruptionRevision
	Revisions     []*DisruptionRevision
}
