package calendar

import "strings"

const (
	ColorRed      = "#da291c"
	ColorBlue     = "#003da5"
	ColorOrange   = "#ed8b00"
	ColorGreen    = "#00843d"
	ColorCommuter = "#80276c"
)

// RouteColor returns the line color of a route. Green Line branches share one
// color; routes outside the rapid transit lines get the commuter rail color.
func RouteColor(routeID string) string {
	switch {
	case routeID == "Red", routeID == "Mattapan":
		return ColorRed
	case routeID == "Blue":
		return ColorBlue
	case routeID == "Orange":
		return ColorOrange
	case strings.HasPrefix(routeID, "Green"):
		return ColorGreen
	default:
		return ColorCommuter
	}
}
