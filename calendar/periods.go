package calendar

import (
	"time"

	"github.com/theoremus-urban-solutions/disruptions/model"
	"github.com/theoremus-urban-solutions/disruptions/utils"
)

// Window is a span of wall-clock time during which a disruption is in effect
type Window struct {
	Start time.Time
	End   time.Time
}

// ActivePeriods lists the time windows of a revision in loc.
//
// Each occurrence runs from its start time (or midnight) to its end time (or the
// next midnight); an end at or before the start falls on the next day. Windows that
// touch or overlap are merged, so a weekend closure from Friday evening to Sunday
// evening is a single window.
func ActivePeriods(rev *model.DisruptionRevision, loc *time.Location) ([]Window, error) {
	if loc == nil {
		loc = time.UTC
	}
	schedule, err := ScheduleFromDaysOfWeek(rev.DaysOfWeek)
	if err != nil {
		return nil, err
	}
	dates, err := Occurrences(rev)
	if err != nil {
		return nil, err
	}

	windows := make([]Window, 0, len(dates))
	for _, d := range dates {
		idx := weekdayIndex(d)
		entry, ok := schedule.Day(idx)
		if !ok {
			continue
		}
		start := atTime(d, entry.Start, loc)
		end := utils.InLocation(utils.AddDays(d, 1), loc)
		if entry.End != nil {
			end = atTime(d, entry.End, loc)
			if !end.After(start) {
				end = atTime(utils.AddDays(d, 1), entry.End, loc)
			}
		}

		if n := len(windows); n > 0 && !start.After(windows[n-1].End) {
			if end.After(windows[n-1].End) {
				windows[n-1].End = end
			}
			continue
		}
		windows = append(windows, Window{Start: start, End: end})
	}
	return windows, nil
}

// weekdayIndex maps a date to 0 for Monday through 6 for Sunday
func weekdayIndex(d time.Time) int {
	return (int(d.UTC().Weekday()) + 6) % 7
}

func atTime(d time.Time, t *TimeOfDay, loc *time.Location) time.Time {
	midnight := utils.InLocation(d, loc)
	if t == nil {
		return midnight
	}
	return time.Date(midnight.Year(), midnight.Month(), midnight.Day(), t.Hour24(), t.Minute, 0, 0, loc)
}
