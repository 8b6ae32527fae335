/*
Package calendar expands disruption revisions into calendar data.

A revision's days of week, date range and exception dates form a weekly
recurrence (see Recurrence). Its occurrences are grouped into runs of
consecutive days and each run becomes one all-day Event per adjustment:

	events := calendar.FromDisruptions(disruptions, calendar.Options{View: model.ViewPublished})

Describe turns a set of days of week into a short English summary, ActivePeriods
gives the concrete time windows in a time zone, and ToICS exports events as
iCalendar.

All date arithmetic works on UTC-midnight calendar dates and adds whole days
through date components, so results do not shift across DST transitions.
*/
package calendar
