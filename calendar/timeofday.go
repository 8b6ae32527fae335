package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Period is the half of the day on a 12-hour clock
type Period string

const (
	AM Period = "am"
	PM Period = "pm"
)

// ErrInvalidTime is returned for time strings outside the selectable options
var ErrInvalidTime = errors.New("invalid time of day")

// TimeOfDay is a 12-hour clock time as offered by the schedule form.
// Hour is 1-12 and Minute one of 0, 15, 30 or 45.
type TimeOfDay struct {
	Hour   int
	Minute int
	Period Period
}

// ParseTimeOfDay parses the "HH:MM:SS" 24-hour wire format.
// Seconds must be "00" and minutes a quarter hour.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 || parts[2] != "00" {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) != 2 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	t := TimeOfDay{Hour: hour, Minute: minute, Period: AM}
	switch {
	case hour == 0:
		t.Hour = 12
	case hour == 12:
		t.Period = PM
	case hour > 12:
		t.Hour = hour - 12
		t.Period = PM
	}
	if !t.Valid() {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return t, nil
}

// Valid reports whether t is one of the selectable options
func (t TimeOfDay) Valid() bool {
	if t.Hour < 1 || t.Hour > 12 {
		return false
	}
	if t.Period != AM && t.Period != PM {
		return false
	}
	switch t.Minute {
	case 0, 15, 30, 45:
		return true
	}
	return false
}

// Hour24 returns the hour on a 24-hour clock
func (t TimeOfDay) Hour24() int {
	h := t.Hour % 12
	if t.Period == PM {
		h += 12
	}
	return h
}

// WireString formats t back into "HH:MM:SS"
func (t TimeOfDay) WireString() string {
	return fmt.Sprintf("%02d:%02d:00", t.Hour24(), t.Minute)
}

// String renders "8:45pm"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%d:%02d%s", t.Hour, t.Minute, t.Period)
}
