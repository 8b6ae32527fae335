package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/theoremus-urban-solutions/disruptions/model"
	"github.com/theoremus-urban-solutions/disruptions/utils"
)

// ErrMissingDates is returned for revisions without a start or end date
var ErrMissingDates = errors.New("revision has no date range")

// indexed 0=Monday..6=Sunday, matching model.DayName.Index
var weekdays = [7]rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU}

// Recurrence builds the weekly rule of a revision bounded by its start and end
// dates (inclusive) with every exception date removed.
func Recurrence(rev *model.DisruptionRevision, schedule Schedule) (*rrule.Set, error) {
	if rev.StartDate.IsZero() || rev.EndDate.IsZero() {
		return nil, ErrMissingDates
	}

	byweekday := make([]rrule.Weekday, 0, len(schedule))
	for _, idx := range schedule.Indexes() {
		byweekday = append(byweekday, weekdays[idx])
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Interval:  1,
		Wkst:      rrule.MO,
		Dtstart:   utils.TruncateToDate(rev.StartDate.UTC()),
		Until:     utils.TruncateToDate(rev.EndDate.UTC()),
		Byweekday: byweekday,
	})
	if err != nil {
		return nil, fmt.Errorf("build rule for revision %s: %w", rev.ID, err)
	}

	set := &rrule.Set{}
	set.RRule(rule)
	for _, d := range rev.ExcludedDates() {
		set.ExDate(utils.TruncateToDate(d.UTC()))
	}
	return set, nil
}

// Occurrences lists the dates, as UTC midnights in ascending order, on which the
// revision applies. A revision without days of week has none.
func Occurrences(rev *model.DisruptionRevision) ([]time.Time, error) {
	if len(rev.DaysOfWeek) == 0 {
		return []time.Time{}, nil
	}
	schedule, err := ScheduleFromDaysOfWeek(rev.DaysOfWeek)
	if err != nil {
		return nil, err
	}
	set, err := Recurrence(rev, schedule)
	if err != nil {
		return nil, err
	}
	dates := set.All()
	if dates == nil {
		dates = []time.Time{}
	}
	return dates, nil
}

// GroupRuns splits ascending dates into runs of consecutive calendar days
func GroupRuns(dates []time.Time) [][]time.Time {
	runs := [][]time.Time{}
	for i, d := range dates {
		if i == 0 || !utils.IsNextDay(dates[i-1], d) {
			runs = append(runs, []time.Time{d})
			continue
		}
		runs[len(runs)-1] = append(runs[len(runs)-1], d)
	}
	return runs
}
