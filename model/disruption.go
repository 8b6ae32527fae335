package model

import (
	"strconv"
	"time"
)

// NewDisruption assembles a disruption from its resolved revisions.
//
// The inputs are not modified. Every revision reachable from the disruption is
// replaced by a copy carrying the disruption id and the status implied by the
// role pointers (published over ready over draft, compared by id). A revision
// reachable through several roles shares one copy.
func NewDisruption(id string, lastPublishedAt time.Time, ready, published *DisruptionRevision, revisions []*DisruptionRevision) *Disruption {
	copies := map[*DisruptionRevision]*DisruptionRevision{}
	tag := func(r *DisruptionRevision) *DisruptionRevision {
		if r == nil {
			return nil
		}
		if c, ok := copies[r]; ok {
			return c
		}
		c := r.withParent(id, derivedStatus(r, ready, published))
		copies[r] = c
		return c
	}

	d := &Disruption{
		ID:              id,
		LastPublishedAt: lastPublishedAt,
		Revisions:       make([]*DisruptionRevision, 0, len(revisions)),
	}
	for _, r := range revisions {
		d.Revisions = append(d.Revisions, tag(r))
	}
	d.ReadyRevision = tag(ready)
	d.PublishedRevision = tag(published)
	d.DraftRevision = latestRevision(d.Revisions)
	return d
}

func derivedStatus(r, ready, published *DisruptionRevision) Status {
	switch {
	case published != nil && r.ID == published.ID:
		return StatusPublished
	case ready != nil && r.ID == ready.ID:
		return StatusReady
	default:
		return StatusDraft
	}
}

// latestRevision returns the revision with the numerically highest id.
// Ids that are not integers rank below every integer id; the first maximum wins.
func latestRevision(revisions []*DisruptionRevision) *DisruptionRevision {
	var best *DisruptionRevision
	bestID := int64(0)
	bestNumeric := false
	for _, r := range revisions {
		if r == nil {
			continue
		}
		n, err := strconv.ParseInt(r.ID, 10, 64)
		numeric := err == nil
		switch {
		case best == nil:
		case numeric && (!bestNumeric || n > bestID):
		default:
			continue
		}
		best, bestID, bestNumeric = r, n, numeric
	}
	return best
}

// RevisionFor returns the revision shown in the given view. The draft revision is
// recomputed from Revisions on every call, so it is nil when Revisions is empty.
func (d *Disruption) RevisionFor(view View) *DisruptionRevision {
	switch view {
	case ViewDraft:
		return latestRevision(d.Revisions)
	case ViewReady:
		return d.ReadyRevision
	case ViewPublished:
		return d.PublishedRevision
	default:
		return nil
	}
}

// UniqueRevisions holds the revisions worth displaying separately.
// A nil entry duplicates one further down the draft > ready > published chain.
type UniqueRevisions struct {
	Published *DisruptionRevision
	Ready     *DisruptionRevision
	Draft     *DisruptionRevision
}

// UniqueRevisions collapses ready and draft revisions that are identical (by id)
// to a revision below them in precedence.
func (d *Disruption) UniqueRevisions() UniqueRevisions {
	published := d.RevisionFor(ViewPublished)
	ready := d.RevisionFor(ViewReady)
	draft := d.RevisionFor(ViewDraft)

	out := UniqueRevisions{Published: published, Ready: ready, Draft: draft}
	if sameRevision(ready, published) {
		out.Ready = nil
	}
	if sameRevision(draft, ready) || sameRevision(draft, published) {
		out.Draft = nil
	}
	return out
}

func sameRevision(a, b *DisruptionRevision) bool {
	return a != nil && b != nil && a.ID == b.ID
}
