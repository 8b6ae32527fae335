package calendar

import (
	"sort"
	"strings"

	"github.com/theoremus-urban-solutions/disruptions/model"
)

const (
	startOfService = "Start of service"
	endOfService   = "End of service"
)

type timePattern int

const (
	patternOther timePattern = iota
	patternDaily
	patternEnds
)

// Describe summarises days of week in words, for example "Mon - Fri, 8:00am - 5:00pm"
// or "Fri 8:45pm - Sun 8:45pm". Schedules that fit neither form are listed day by day.
func Describe(days []*model.DayOfWeek) string {
	if len(days) == 0 {
		return ""
	}
	sorted := make([]*model.DayOfWeek, len(days))
	copy(sorted, days)
	sort.SliceStable(sorted, func(i, j int) bool {
		return dayIndex(sorted[i]) < dayIndex(sorted[j])
	})

	if len(sorted) == 1 {
		return describeDay(sorted[0])
	}

	first, last := sorted[0], sorted[len(sorted)-1]
	if consecutive(sorted) {
		switch classify(sorted) {
		case patternDaily:
			return first.DayName.Abbrev() + " - " + last.DayName.Abbrev() + ", " +
				describeTime(first.StartTime, startOfService) + " - " + describeTime(first.EndTime, endOfService)
		case patternEnds:
			return first.DayName.Abbrev() + " " + describeTime(first.StartTime, startOfService) + " - " +
				last.DayName.Abbrev() + " " + describeTime(last.EndTime, endOfService)
		}
	}

	parts := make([]string, 0, len(sorted))
	for _, d := range sorted {
		parts = append(parts, describeDay(d))
	}
	return strings.Join(parts, ", ")
}

func dayIndex(d *model.DayOfWeek) int {
	idx, ok := d.DayName.Index()
	if !ok {
		return len(model.DayNames())
	}
	return idx
}

func describeDay(d *model.DayOfWeek) string {
	return d.DayName.Abbrev() + ", " + describeTime(d.StartTime, startOfService) + " - " + describeTime(d.EndTime, endOfService)
}

// describeTime renders a wire time as "8:45pm"; strings that do not parse are shown as is
func describeTime(s, absent string) string {
	if s == "" {
		return absent
	}
	t, err := ParseTimeOfDay(s)
	if err != nil {
		return s
	}
	return t.String()
}

// consecutive reports whether the sorted days form one unbroken run within a week
func consecutive(sorted []*model.DayOfWeek) bool {
	for i := 1; i < len(sorted); i++ {
		if dayIndex(sorted[i]) != dayIndex(sorted[i-1])+1 {
			return false
		}
	}
	return true
}

// classify counts an absent time as a value of its own, so daily means every
// entry has the same start and the same end, absent included.
func classify(sorted []*model.DayOfWeek) timePattern {
	starts := map[string]struct{}{}
	ends := map[string]struct{}{}
	for _, d := range sorted {
		starts[d.StartTime] = struct{}{}
		ends[d.EndTime] = struct{}{}
	}
	if len(starts)+len(ends) == 2 {
		return patternDaily
	}

	first, last := sorted[0], sorted[len(sorted)-1]
	for _, d := range sorted[1 : len(sorted)-1] {
		if d.StartTime != "" || d.EndTime != "" {
			return patternOther
		}
	}
	startOnly := func(d *model.DayOfWeek) bool { return d.StartTime != "" && d.EndTime == "" }
	endOnly := func(d *model.DayOfWeek) bool { return d.StartTime == "" && d.EndTime != "" }
	if (startOnly(first) && endOnly(last)) || (endOnly(first) && startOnly(last)) {
		return patternEnds
	}
	return patternOther
}
