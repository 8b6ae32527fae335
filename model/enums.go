package model

import (
	"fmt"
	"strings"
)

// Resource type tags on the wire
const (
	TypeAdjustment         = "adjustment"
	TypeDayOfWeek          = "day_of_week"
	TypeDisruption         = "disruption"
	TypeDisruptionRevision = "disruption_revision"
	TypeException          = "exception"
	TypeTripShortName      = "trip_short_name"
)

// Source is where an adjustment was defined
type Source string

const (
	SourceArrow       Source = "arrow"
	SourceGTFSCreator Source = "gtfs_creator"
)

// Status is the lifecycle stage of a revision
type Status int

const (
	StatusDraft Status = iota
	StatusReady
	StatusPublished
)

func (s Status) String() string {
	switch s {
	case StatusDraft:
		return "draft"
	case StatusReady:
		return "ready"
	case StatusPublished:
		return "published"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ParseStatus accepts the lowercase status name
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "draft":
		return StatusDraft, nil
	case "ready":
		return StatusReady, nil
	case "published":
		return StatusPublished, nil
	default:
		return StatusDraft, fmt.Errorf("unknown status %q", s)
	}
}

// View selects which revision of a disruption is being looked at
type View int

const (
	ViewDraft View = iota
	ViewReady
	ViewPublished
)

func (v View) String() string {
	return Status(v).String()
}

// ParseView accepts "draft", "ready" or "published"
func ParseView(s string) (View, error) {
	st, err := ParseStatus(s)
	if err != nil {
		return ViewPublished, fmt.Errorf("unknown view %q", s)
	}
	return View(st), nil
}
