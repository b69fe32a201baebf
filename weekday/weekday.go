// Package weekday derives the ISO weekday (Monday = 1 … Sunday = 7) of a
// rata die or of a civil date.
//
// Both forms are O(1) and agree exactly for every valid input:
//
//	weekday.FromCivil(y, m, d) == weekday.FromDays(epoch.DaysFromCivil(y, m, d))
package weekday

import "github.com/katalvlaran/datealgo/calendar"

// unixEpochOffset shifts rata die 0 (1970-01-01, a Thursday) onto weekday
// index 3 of a Monday-based 0..6 week.
const unixEpochOffset = 3

// marchZeroOffset does the same for day 0 of a March-based proleptic count
// (0000-03-01, a Wednesday). Whole 400-year eras are 20871 weeks, so any
// era shift leaves it unchanged.
const marchZeroOffset = 2

// eraShift moves every year in the supported range to a non-negative one
// before dividing. Any multiple of 400 works; see marchZeroOffset.
const eraShift = 3671 * 400

// FromDays returns the weekday of rata die rd.
//
// The remainder is taken as a floor modulo (((x % 7) + 7) % 7), so negative
// day counts before 1970 map onto the same cycle.
//
// Complexity: O(1).
func FromDays(rd int32) calendar.Weekday {
	r := (int64(rd) + unixEpochOffset) % calendar.DaysPerWeek

	return calendar.Weekday((r+calendar.DaysPerWeek)%calendar.DaysPerWeek + 1)
}

// FromCivil returns the weekday of (year, month, day) without going through
// a rata die: it counts days from a shifted March 1st of year 0, where the
// count is always non-negative and a plain remainder is enough.
//
// Complexity: O(1).
func FromCivil(year int32, month, day uint8) calendar.Weekday {
	jf := (14 - int64(month)) / 12
	y := int64(year) + eraShift - jf
	mp := int64(month) + 12*jf - 3
	days := 365*y + y/4 - y/100 + y/400 + (153*mp+2)/5 + int64(day) - 1

	return calendar.Weekday((days+marchZeroOffset)%calendar.DaysPerWeek + 1)
}

// FromDate is FromCivil for a calendar.Date.
func FromDate(d calendar.Date) calendar.Weekday {
	return FromCivil(d.Year, d.Month, d.Day)
}
