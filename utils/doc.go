// Package utils provides shared date and time helpers for the disruptions packages.
//
// It contains:
//   - UTC-midnight calendar-date parsing and formatting
//   - ISO-8601 datetime parsing
//   - whole-day date arithmetic that never crosses a DST boundary
package utils
