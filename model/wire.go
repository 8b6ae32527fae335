package model

import (
	"github.com/theoremus-urban-solutions/disruptions/jsonapi"
	"github.com/theoremus-urban-solutions/disruptions/utils"
)

// WireResource is implemented by every domain type that can be sent back to the backend
type WireResource interface {
	ToWireResource() (jsonapi.Resource, error)
}

var (
	_ WireResource = (*Adjustment)(nil)
	_ WireResource = (*DayOfWeek)(nil)
	_ WireResource = (*Exception)(nil)
	_ WireResource = (*TripShortName)(nil)
	_ WireResource = (*DisruptionRevision)(nil)
	_ WireResource = (*Disruption)(nil)
)

// ToDocument wraps one resource in a {"data": ...} document
func ToDocument(r WireResource) (jsonapi.Document, error) {
	res, err := r.ToWireResource()
	if err != nil {
		return jsonapi.Document{}, err
	}
	return jsonapi.SingleDocument(res)
}

// attrs collects attributes, skipping empty values
type attrs map[string]any

func (a attrs) str(key, value string) {
	if value != "" {
		a[key] = value
	}
}

func (a attrs) orNil() map[string]any {
	if len(a) == 0 {
		return nil
	}
	return a
}

func (a *Adjustment) ToWireResource() (jsonapi.Resource, error) {
	at := attrs{}
	at.str("route_id", a.RouteID)
	at.str("source", string(a.Source))
	at.str("source_label", a.SourceLabel)
	return jsonapi.NewResource(TypeAdjustment, a.ID, at.orNil(), nil)
}

func (d *DayOfWeek) ToWireResource() (jsonapi.Resource, error) {
	at := attrs{}
	at.str("start_time", d.StartTime)
	at.str("end_time", d.EndTime)
	at.str("day_name", string(d.DayName))
	return jsonapi.NewResource(TypeDayOfWeek, d.ID, at.orNil(), nil)
}

func (e *Exception) ToWireResource() (jsonapi.Resource, error) {
	at := attrs{}
	if !e.ExcludedDate.IsZero() {
		at["excluded_date"] = utils.FormatISODate(e.ExcludedDate)
	}
	return jsonapi.NewResource(TypeException, e.ID, at.orNil(), nil)
}

func (t *TripShortName) ToWireResource() (jsonapi.Resource, error) {
	at := attrs{}
	at.str("trip_short_name", t.TripShortName)
	return jsonapi.NewResource(TypeTripShortName, t.ID, at.orNil(), nil)
}

// ToWireResource inlines the nested adjustments, days of week, exceptions and
// trip short names as full resource objects.
func (r *DisruptionRevision) ToWireResource() (jsonapi.Resource, error) {
	at := attrs{"is_active": r.IsActive}
	if !r.StartDate.IsZero() {
		at["start_date"] = utils.FormatISODate(r.StartDate)
	}
	if !r.EndDate.IsZero() {
		at["end_date"] = utils.FormatISODate(r.EndDate)
	}
	if !r.InsertedAt.IsZero() {
		at["inserted_at"] = utils.FormatDateTime(r.InsertedAt)
	}
	if r.Status != StatusDraft {
		at["status"] = int(r.Status)
	}

	rels := map[string]jsonapi.Relationship{}
	var err error
	if rels["adjustments"], err = inline(r.Adjustments); err != nil {
		return jsonapi.Resource{}, err
	}
	if rels["days_of_week"], err = inline(r.DaysOfWeek); err != nil {
		return jsonapi.Resource{}, err
	}
	if rels["exceptions"], err = inline(r.Exceptions); err != nil {
		return jsonapi.Resource{}, err
	}
	if rels["trip_short_names"], err = inline(r.TripShortNames); err != nil {
		return jsonapi.Resource{}, err
	}
	return jsonapi.NewResource(TypeDisruptionRevision, r.ID, at, rels)
}

func (d *Disruption) ToWireResource() (jsonapi.Resource, error) {
	at := attrs{}
	if !d.LastPublishedAt.IsZero() {
		at["last_published_at"] = utils.FormatDateTime(d.LastPublishedAt)
	}
	revisions, err := inline(d.Revisions)
	if err != nil {
		return jsonapi.Resource{}, err
	}
	rels := map[string]jsonapi.Relationship{"revisions": revisions}
	return jsonapi.NewResource(TypeDisruption, d.ID, at.orNil(), rels)
}

func inline[T WireResource](items []T) (jsonapi.Relationship, error) {
	resources := make([]jsonapi.Resource, 0, len(items))
	for _, item := range items {
		res, err := item.ToWireResource()
		if err != nil {
			return jsonapi.Relationship{}, err
		}
		resources = append(resources, res)
	}
	return jsonapi.Inline(resources)
}
