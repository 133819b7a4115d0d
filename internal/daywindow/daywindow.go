// Package daywindow maps calendar dates to business-day instant ranges.
//
// The shop's day does not have to roll over at midnight: a configurable
// day-end offset shifts the boundary, so late-night entries still land on
// the day the shutter was open. The zero offset reproduces plain
// midnight-to-midnight days.
package daywindow

import "time"

// Boundary resolves which instants belong to which business day.
type Boundary struct {
	// DayEndHour/DayEndMinute shift the rollover away from midnight.
	// A 2:30 boundary means day D covers [D 02:30, D+1 02:30).
	DayEndHour   int
	DayEndMinute int
	// Location is the shop's timezone. Nil means time.Local.
	Location *time.Location
}

// Midnight is the default boundary: days roll over at 00:00 local time.
var Midnight = Boundary{}

func (b Boundary) location() *time.Location {
	if b.Location != nil {
		return b.Location
	}
	return time.Local
}

// Window returns the [start, end) instant range of the business day that the
// given calendar date labels.
func (b Boundary) Window(date time.Time) (start, end time.Time) {
	loc := b.location()
	start = time.Date(date.Year(), date.Month(), date.Day(), b.DayEndHour, b.DayEndMinute, 0, 0, loc)
	end = start.AddDate(0, 0, 1)
	return start, end
}

// DateOf returns the calendar date labelling the business day the instant
// falls in, normalized to midnight in the boundary's location.
func (b Boundary) DateOf(instant time.Time) time.Time {
	loc := b.location()
	t := instant.In(loc)
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	boundary := day.Add(time.Duration(b.DayEndHour)*time.Hour + time.Duration(b.DayEndMinute)*time.Minute)
	if t.Before(boundary) {
		return day.AddDate(0, 0, -1)
	}
	return day
}

// SameDate reports whether two timestamps label the same calendar date in the
// boundary's location, ignoring any day-end offset. Used for expense_date
// equality, which is a plain calendar-date match.
func (b Boundary) SameDate(a, c time.Time) bool {
	loc := b.location()
	ay, am, ad := a.In(loc).Date()
	cy, cm, cd := c.In(loc).Date()
	return ay == cy && am == cm && ad == cd
}
