package model_test

import (
	"testing"
	"time"

	"github.com/theoremus-urban-solutions/disruptions/model"
)

func revision(id string) *model.DisruptionRevision {
	return &model.DisruptionRevision{ID: id, IsActive: true}
}

func TestNewDisruption_DoesNotModifyInputs(t *testing.T) {
	r1, r2 := revision("1"), revision("2")
	d := model.NewDisruption("9", time.Time{}, r2, r1, []*model.DisruptionRevision{r1, r2})

	if r1.DisruptionID != "" || r1.Status != model.StatusDraft {
		t.Errorf("input revision was modified: %+v", r1)
	}
	if d.PublishedRevision.DisruptionID != "9" || d.PublishedRevision.Status != model.StatusPublished {
		t.Errorf("unexpected published copy %+v", d.PublishedRevision)
	}
	if d.ReadyRevision != d.Revisions[1] {
		t.Error("ready role should share the copy in Revisions")
	}
}

func TestRevisionFor(t *testing.T) {
	r1, r2, r10 := revision("1"), revision("2"), revision("10")
	d := model.NewDisruption("1", time.Time{}, r2, r1, []*model.DisruptionRevision{r2, r10, r1})

	tests := []struct {
		view     model.View
		expected string
	}{
		{model.ViewDraft, "10"},
		{model.ViewReady, "2"},
		{model.ViewPublished, "1"},
	}
	for _, tt := range tests {
		t.Run(tt.view.String(), func(t *testing.T) {
			got := d.RevisionFor(tt.view)
			if got == nil || got.ID != tt.expected {
				t.Errorf("expected revision %s, got %+v", tt.expected, got)
			}
		})
	}
}

func TestRevisionFor_DraftIsRecomputed(t *testing.T) {
	d := model.NewDisruption("1", time.Time{}, nil, nil, []*model.DisruptionRevision{revision("1")})

	d.Revisions = append(d.Revisions, revision("7"))
	if got := d.RevisionFor(model.ViewDraft); got == nil || got.ID != "7" {
		t.Errorf("expected draft revision 7, got %+v", got)
	}

	d.Revisions = nil
	if got := d.RevisionFor(model.ViewDraft); got != nil {
		t.Errorf("expected no draft revision, got %+v", got)
	}
}

func TestRevisionFor_NonNumericIDs(t *testing.T) {
	d := model.NewDisruption("1", time.Time{}, nil, nil, []*model.DisruptionRevision{revision("new"), revision("3"), revision("other")})
	if got := d.RevisionFor(model.ViewDraft); got == nil || got.ID != "3" {
		t.Errorf("expected draft revision 3, got %+v", got)
	}
}

func TestUniqueRevisions(t *testing.T) {
	tests := []struct {
		name      string
		ready     string
		published string
		revisions []string
		expected  [3]string // published, ready, draft; "" for nil
	}{
		{
			name:      "all the same revision",
			ready:     "1",
			published: "1",
			revisions: []string{"1"},
			expected:  [3]string{"1", "", ""},
		},
		{
			name:      "all distinct",
			ready:     "2",
			published: "1",
			revisions: []string{"1", "2", "3"},
			expected:  [3]string{"1", "2", "3"},
		},
		{
			name:      "draft equals ready",
			ready:     "2",
			published: "1",
			revisions: []string{"1", "2"},
			expected:  [3]string{"1", "2", ""},
		},
		{
			name:      "draft equals published without ready",
			published: "4",
			revisions: []string{"4"},
			expected:  [3]string{"4", "", ""},
		},
		{
			name:      "only a draft",
			revisions: []string{"1"},
			expected:  [3]string{"", "", "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			byID := map[string]*model.DisruptionRevision{}
			revisions := make([]*model.DisruptionRevision, 0, len(tt.revisions))
			for _, id := range tt.revisions {
				byID[id] = revision(id)
				revisions = append(revisions, byID[id])
			}
			d := model.NewDisruption("1", time.Time{}, byID[tt.ready], byID[tt.published], revisions)

			u := d.UniqueRevisions()
			got := [3]string{idOf(u.Published), idOf(u.Ready), idOf(u.Draft)}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func idOf(r *model.DisruptionRevision) string {
	if r == nil {
		return ""
	}
	return r.ID
}
