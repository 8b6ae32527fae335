package model

// DayName is a lowercase English weekday name as used on the wire
type DayName string

const (
	Monday    DayName = "monday"
	Tuesday   DayName = "tuesday"
	Wednesday DayName = "wednesday"
	Thursday  DayName = "thursday"
	Friday    DayName = "friday"
	Saturday  DayName = "saturday"
	Sunday    DayName = "sunday"
)

// indexed 0=Monday..6=Sunday
var dayNames = [7]DayName{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayAbbrevs = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Index returns the weekday index, 0 for Monday through 6 for Sunday
func (d DayName) Index() (int, bool) {
	for i, name := range dayNames {
		if name == d {
			return i, true
		}
	}
	return -1, false
}

// DayNameFromIndex is the inverse of Index
func DayNameFromIndex(i int) (DayName, bool) {
	if i < 0 || i >= len(dayNames) {
		return "", false
	}
	return dayNames[i], true
}

func (d DayName) Valid() bool {
	_, ok := d.Index()
	return ok
}

// Abbrev returns the three-letter form ("Mon".."Sun")
func (d DayName) Abbrev() string {
	i, ok := d.Index()
	if !ok {
		return string(d)
	}
	return dayAbbrevs[i]
}

// DayNames lists the canonical weekdays in Monday-first order
func DayNames() []DayName {
	out := make([]DayName, len(dayNames))
	copy(out, dayNames[:])
	return out
}
