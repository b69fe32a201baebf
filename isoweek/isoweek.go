package isoweek

import (
	"github.com/katalvlaran/datealgo/calendar"
	"github.com/katalvlaran/datealgo/epoch"
	"github.com/katalvlaran/datealgo/weekday"
)

// FromDays returns the ISO week-date of rata die rd.
//
// Steps:
//  1. wd = weekday of rd.
//  2. thu = rd + (Thursday - wd): the Thursday of rd's Monday–Sunday week.
//  3. iso-year = calendar year of thu.
//  4. week = 1 + (thu - firstThursday(iso-year)) / 7.
//
// Complexity: O(1).
func FromDays(rd int32) Date {
	wd := weekday.FromDays(rd)
	thu := rd + int32(calendar.Thursday) - int32(wd)
	year := epoch.CivilFromDays(thu).Year

	return Date{
		Year:    year,
		Week:    uint8((thu-firstThursday(year))/calendar.DaysPerWeek + 1),
		Weekday: wd,
	}
}

// ToDays returns the rata die of (isoYear, week, wd): the first Thursday of
// isoYear, plus 7*(week-1) days, plus (wd - Thursday).
//
// Inputs are trusted; use Validate first for untrusted week-dates.
//
// Complexity: O(1).
func ToDays(isoYear int32, week uint8, wd calendar.Weekday) int32 {
	return firstThursday(isoYear) +
		calendar.DaysPerWeek*(int32(week)-1) +
		int32(wd) - int32(calendar.Thursday)
}

// DateToDays is ToDays for a Date.
func DateToDays(d Date) int32 {
	return ToDays(d.Year, d.Week, d.Weekday)
}

// FromCivil returns the ISO week-date of (year, month, day).
func FromCivil(year int32, month, day uint8) Date {
	return FromDays(epoch.DaysFromCivil(year, month, day))
}

// ToCivil returns the civil date of an ISO week-date.
func ToCivil(d Date) calendar.Date {
	return epoch.CivilFromDays(DateToDays(d))
}

// WeeksInYear returns the number of ISO weeks in isoYear: 53 when January 1st
// is a Thursday, or when isoYear is a leap year and January 1st is a
// Wednesday; otherwise 52.
//
// Complexity: O(1).
func WeeksInYear(isoYear int32) uint8 {
	jan1 := weekday.FromCivil(isoYear, 1, 1)
	if jan1 == calendar.Thursday || (jan1 == calendar.Wednesday && calendar.IsLeapYear(isoYear)) {
		return WeeksMax
	}

	return WeeksMax - 1
}

// firstThursday returns the rata die of the first Thursday of isoYear's
// calendar year, which is the Thursday of the week holding January 4th.
func firstThursday(isoYear int32) int32 {
	jan4 := epoch.DaysFromCivil(isoYear, 1, 4)

	return jan4 + int32(calendar.Thursday) - int32(weekday.FromDays(jan4))
}
