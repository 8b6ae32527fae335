package calendar

import (
	"fmt"
	"sort"

	"github.com/theoremus-urban-solutions/disruptions/model"
)

// DaySchedule is the validated window of one weekday.
// A nil Start means start of service, a nil End end of service.
type DaySchedule struct {
	Day   model.DayName
	Index int
	Start *TimeOfDay
	End   *TimeOfDay
}

// Schedule is a weekly schedule sorted Monday first, at most one entry per weekday
type Schedule []DaySchedule

// ScheduleFromDaysOfWeek validates every entry. A later entry for the same
// weekday replaces an earlier one.
func ScheduleFromDaysOfWeek(days []*model.DayOfWeek) (Schedule, error) {
	byIndex := map[int]DaySchedule{}
	for _, d := range days {
		idx, ok := d.DayName.Index()
		if !ok {
			return nil, fmt.Errorf("unknown day name %q", d.DayName)
		}
		entry := DaySchedule{Day: d.DayName, Index: idx}
		var err error
		if entry.Start, err = optionalTime(d.StartTime); err != nil {
			return nil, fmt.Errorf("%s start: %w", d.DayName, err)
		}
		if entry.End, err = optionalTime(d.EndTime); err != nil {
			return nil, fmt.Errorf("%s end: %w", d.DayName, err)
		}
		byIndex[idx] = entry
	}

	out := make(Schedule, 0, len(byIndex))
	for _, entry := range byIndex {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}

func optionalTime(s string) (*TimeOfDay, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseTimeOfDay(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Indexes lists the weekday indexes of the schedule, 0 for Monday
func (s Schedule) Indexes() []int {
	out := make([]int, 0, len(s))
	for _, d := range s {
		out = append(out, d.Index)
	}
	return out
}

// Day returns the entry for a weekday index
func (s Schedule) Day(index int) (DaySchedule, bool) {
	for _, d := range s {
		if d.Index == index {
			return d, true
		}
	}
	return DaySchedule{}, false
}
