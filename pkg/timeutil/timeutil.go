// Package timeutil provides calendar-window helpers for activity
// aggregation. All boundaries are computed in the deployment's configured
// time zone, and the week runs Monday through Sunday (ISO convention).
// No external dependencies - uses only standard library.
package timeutil

import (
	"time"
)

// StartOfDay returns 00:00:00 of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// EndOfDay returns 23:59:59.999999999 of t's calendar day in loc.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 999999999, loc)
}

// StartOfWeek returns Monday 00:00:00 of the calendar week containing t,
// in loc.
func StartOfWeek(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	weekday := int(local.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	return StartOfDay(local.AddDate(0, 0, -(weekday-1)), loc)
}

// EndOfWeek returns Sunday 23:59:59.999999999 of the calendar week
// containing t, in loc.
func EndOfWeek(t time.Time, loc *time.Location) time.Time {
	return EndOfDay(StartOfWeek(t, loc).AddDate(0, 0, 6), loc)
}

// DayRange returns the inclusive [start, end] window of t's calendar day.
func DayRange(t time.Time, loc *time.Location) (time.Time, time.Time) {
	return StartOfDay(t, loc), EndOfDay(t, loc)
}

// WeekRange returns the inclusive [start, end] window of t's calendar
// week, Monday through Sunday.
func WeekRange(t time.Time, loc *time.Location) (time.Time, time.Time) {
	return StartOfWeek(t, loc), EndOfWeek(t, loc)
}

// IsSameDay reports whether a and b fall on the same calendar day in loc.
func IsSameDay(a, b time.Time, loc *time.Location) bool {
	al, bl := a.In(loc), b.In(loc)
	return al.Year() == bl.Year() && al.Month() == bl.Month() && al.Day() == bl.Day()
}
