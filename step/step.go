// Package step moves a civil date one day forward or backward.
package step

import (
	"github.com/katalvlaran/datealgo/calendar"
	"github.com/katalvlaran/datealgo/epoch"
)

// Next returns the date one day after (year, month, day).
// Undefined on calendar.YearMax-12-31: the engine neither clamps nor wraps.
func Next(year int32, month, day uint8) calendar.Date {
	return epoch.CivilFromDays(epoch.DaysFromCivil(year, month, day) + 1)
}

// Prev returns the date one day before (year, month, day).
// Undefined on calendar.YearMin-01-01.
func Prev(year int32, month, day uint8) calendar.Date {
	return epoch.CivilFromDays(epoch.DaysFromCivil(year, month, day) - 1)
}

// NextDate is Next for a calendar.Date.
func NextDate(d calendar.Date) calendar.Date {
	return Next(d.Year, d.Month, d.Day)
}

// PrevDate is Prev for a calendar.Date.
func PrevDate(d calendar.Date) calendar.Date {
	return Prev(d.Year, d.Month, d.Day)
}
