package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/disruptions/jsonapi"
	"github.com/theoremus-urban-solutions/disruptions/utils"
)

var validate = validator.New()

type adjustmentAttributes struct {
	RouteID     string `json:"route_id"`
	Source      string `json:"source" validate:"omitempty,oneof=arrow gtfs_creator"`
	SourceLabel string `json:"source_label"`
}

type dayOfWeekAttributes struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	DayName   string `json:"day_name" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
}

type exceptionAttributes struct {
	ExcludedDate string `json:"excluded_date" validate:"required"`
}

type tripShortNameAttributes struct {
	TripShortName string `json:"trip_short_name"`
}

type revisionAttributes struct {
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	IsActive   *bool           `json:"is_active" validate:"required"`
	InsertedAt string          `json:"inserted_at"`
	Status     json.RawMessage `json:"status"`
}

type disruptionAttributes struct {
	LastPublishedAt string `json:"last_published_at"`
}

// Resolve builds the domain objects of a JSON:API document. Data items are
// *Disruption, *DisruptionRevision, *Adjustment, *DayOfWeek, *Exception or *TripShortName.
func Resolve(doc jsonapi.Document) (jsonapi.Result, error) {
	return jsonapi.Resolve(doc, fromResource)
}

// ParseDocument decodes and resolves a raw JSON:API body
func ParseDocument(body []byte) (jsonapi.Result, error) {
	doc, err := jsonapi.ParseDocument(body)
	if err != nil {
		return jsonapi.Result{}, err
	}
	return Resolve(doc)
}

// ResolveOne resolves a document whose data must be a single resource of type T
func ResolveOne[T any](doc jsonapi.Document) (T, error) {
	var zero T
	result, err := Resolve(doc)
	if err != nil {
		return zero, err
	}
	if result.Collection {
		return zero, &jsonapi.ParseError{Reason: "expected a single resource", Err: jsonapi.ErrMalformedDocument}
	}
	v, ok := result.One().(T)
	if !ok {
		return zero, &jsonapi.ParseError{Reason: fmt.Sprintf("unexpected resource %T", result.One()), Err: jsonapi.ErrUnknownType}
	}
	return v, nil
}

// ResolveMany resolves a document whose data must be an array of resources of type T
func ResolveMany[T any](doc jsonapi.Document) ([]T, error) {
	result, err := Resolve(doc)
	if err != nil {
		return nil, err
	}
	if !result.Collection {
		return nil, &jsonapi.ParseError{Reason: "expected a resource array", Err: jsonapi.ErrMalformedDocument}
	}
	out := make([]T, 0, len(result.Items))
	for _, item := range result.Items {
		v, ok := item.(T)
		if !ok {
			return nil, &jsonapi.ParseError{Reason: fmt.Sprintf("unexpected resource %T", item), Err: jsonapi.ErrUnknownType}
		}
		out = append(out, v)
	}
	return out, nil
}

// ResolveDisruption resolves a single-disruption document
func ResolveDisruption(doc jsonapi.Document) (*Disruption, error) {
	return ResolveOne[*Disruption](doc)
}

// ResolveDisruptions resolves a disruption index document
func ResolveDisruptions(doc jsonapi.Document) ([]*Disruption, error) {
	return ResolveMany[*Disruption](doc)
}

// ResolveRevision resolves a single-revision document
func ResolveRevision(doc jsonapi.Document) (*DisruptionRevision, error) {
	return ResolveOne[*DisruptionRevision](doc)
}

func fromResource(res jsonapi.Resource, included jsonapi.SideTable) (any, error) {
	switch res.Type {
	case TypeAdjustment:
		return adjustmentFromResource(res)
	case TypeDayOfWeek:
		return dayOfWeekFromResource(res)
	case TypeDisruption:
		return disruptionFromResource(res, included)
	case TypeDisruptionRevision:
		return revisionFromResource(res, included)
	case TypeException:
		return exceptionFromResource(res)
	case TypeTripShortName:
		return tripShortNameFromResource(res)
	default:
		return nil, jsonapi.NewParseError(res, jsonapi.ErrUnknownType, "")
	}
}

func decodeAttributes(res jsonapi.Resource, dst any) error {
	raw := bytes.TrimSpace(res.Attributes)
	if len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
		if err := json.Unmarshal(raw, dst); err != nil {
			return jsonapi.NewParseError(res, jsonapi.ErrInvalidAttribute, err.Error())
		}
	}
	if err := validate.Struct(dst); err != nil {
		return jsonapi.NewParseError(res, jsonapi.ErrInvalidAttribute, err.Error())
	}
	return nil
}

func adjustmentFromResource(res jsonapi.Resource) (*Adjustment, error) {
	var attrs adjustmentAttributes
	if err := decodeAttributes(res, &attrs); err != nil {
		return nil, err
	}
	return &Adjustment{
		ID:          res.ID,
		RouteID:     attrs.RouteID,
		Source:      Source(attrs.Source),
		SourceLabel: attrs.SourceLabel,
	}, nil
}

func dayOfWeekFromResource(res jsonapi.Resource) (*DayOfWeek, error) {
	var attrs dayOfWeekAttributes
	if err := decodeAttributes(res, &attrs); err != nil {
		return nil, err
	}
	return &DayOfWeek{
		ID:        res.ID,
		StartTime: attrs.StartTime,
		EndTime:   attrs.EndTime,
		DayName:   DayName(attrs.DayName),
	}, nil
}

func exceptionFromResource(res jsonapi.Resource) (*Exception, error) {
	var attrs exceptionAttributes
	if err := decodeAttributes(res, &attrs); err != nil {
		return nil, err
	}
	date, err := utils.ParseUTCDate(attrs.ExcludedDate)
	if err != nil {
		return nil, jsonapi.NewParseError(res, jsonapi.ErrInvalidAttribute, err.Error())
	}
	return &Exception{ID: res.ID, ExcludedDate: date}, nil
}

func tripShortNameFromResource(res jsonapi.Resource) (*TripShortName, error) {
	var attrs tripShortNameAttributes
	if err := decodeAttributes(res, &attrs); err != nil {
		return nil, err
	}
	return &TripShortName{ID: res.ID, TripShortName: attrs.TripShortName}, nil
}

func revisionFromResource(res jsonapi.Resource, included jsonapi.SideTable) (*DisruptionRevision, error) {
	var attrs revisionAttributes
	if err := decodeAttributes(res, &attrs); err != nil {
		return nil, err
	}
	rev := &DisruptionRevision{
		ID:             res.ID,
		IsActive:       *attrs.IsActive,
		Adjustments:    jsonapi.Related[*Adjustment](res, "adjustments", included),
		DaysOfWeek:     jsonapi.Related[*DayOfWeek](res, "days_of_week", included),
		Exceptions:     jsonapi.Related[*Exception](res, "exceptions", included),
		TripShortNames: jsonapi.Related[*TripShortName](res, "trip_short_names", included),
	}
	var err error
	if rev.StartDate, err = optionalDate(attrs.StartDate); err != nil {
		return nil, jsonapi.NewParseError(res, jsonapi.ErrInvalidAttribute, err.Error())
	}
	if rev.EndDate, err = optionalDate(attrs.EndDate); err != nil {
		return nil, jsonapi.NewParseError(res, jsonapi.ErrInvalidAttribute, err.Error())
	}
	if rev.InsertedAt, err = optionalDateTime(attrs.InsertedAt); err != nil {
		return nil, jsonapi.NewParseError(res, jsonapi.ErrInvalidAttribute, err.Error())
	}
	if rev.Status, err = statusAttribute(attrs.Status); err != nil {
		return nil, jsonapi.NewParseError(res, jsonapi.ErrInvalidAttribute, err.Error())
	}
	return rev, nil
}

func disruptionFromResource(res jsonapi.Resource, included jsonapi.SideTable) (*Disruption, error) {
	var attrs disruptionAttributes
	if err := decodeAttributes(res, &attrs); err != nil {
		return nil, err
	}
	lastPublishedAt, err := optionalDateTime(attrs.LastPublishedAt)
	if err != nil {
		return nil, jsonapi.NewParseError(res, jsonapi.ErrInvalidAttribute, err.Error())
	}
	revisions := jsonapi.Related[*DisruptionRevision](res, "revisions", included)
	ready, _ := jsonapi.RelatedOne[*DisruptionRevision](res, "ready_revision", included)
	published, _ := jsonapi.RelatedOne[*DisruptionRevision](res, "published_revision", included)
	return NewDisruption(res.ID, lastPublishedAt, ready, published, revisions), nil
}

func optionalDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return utils.ParseUTCDate(s)
}

func optionalDateTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return utils.ParseDateTime(s)
}

// status arrives either as its integer value or as its lowercase name
func statusAttribute(raw json.RawMessage) (Status, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return StatusDraft, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		if n < int(StatusDraft) || n > int(StatusPublished) {
			return StatusDraft, fmt.Errorf("unknown status %d", n)
		}
		return Status(n), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return StatusDraft, fmt.Errorf("invalid status %s", raw)
	}
	return ParseStatus(s)
}
