// SPDX-License-Identifier: MIT
// Package: datealgo/calendar
//
// constants.go - published bounds of the supported calendar domain.
//
// Contract:
//   • Every conversion in this module is exact for years in [YearMin, YearMax].
//   • RDMin/RDMax are the rata die values of YearMin-01-01 and YearMax-12-31.
//   • These are compile-time constants; there is no reinitialization path.

package calendar

//-----------------------------------------------------------------------------
// Domain bounds
//-----------------------------------------------------------------------------

const (
	// YearMin is the smallest year the engine guarantees correct results for.
	YearMin int32 = -1467999

	// YearMax is the largest year the engine guarantees correct results for.
	YearMax int32 = 1471744

	// MonthMin is January.
	MonthMin uint8 = 1

	// MonthMax is December.
	MonthMax uint8 = 12

	// RDMin is the rata die of YearMin-01-01.
	RDMin int32 = -536895152

	// RDMax is the rata die of YearMax-12-31.
	RDMax int32 = 536824295
)

//-----------------------------------------------------------------------------
// Fixed calendar quantities
//-----------------------------------------------------------------------------

const (
	// DaysPerWeek is the length of an ISO week.
	DaysPerWeek = 7

	// SecondsPerMinute, SecondsPerHour and SecondsPerDay ignore leap seconds:
	// every day is exactly 86,400 seconds.
	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour

	// NanosPerSecond bounds the sub-second part of an instant.
	NanosPerSecond = 1_000_000_000

	// DaysPer400Years is the length of one Gregorian era.
	DaysPer400Years = 365*400 + 97
)

//-----------------------------------------------------------------------------
// Method name constants
//   used to prefix validation errors with the operation that rejected them.
//-----------------------------------------------------------------------------

const (
	// MethodValidateYear is the canonical name for ValidateYear.
	MethodValidateYear = "ValidateYear"
	// MethodValidateMonth is the canonical name for ValidateMonth.
	MethodValidateMonth = "ValidateMonth"
	// MethodValidateDate is the canonical name for ValidateDate.
	MethodValidateDate = "ValidateDate"
	// MethodValidateRataDie is the canonical name for ValidateRataDie.
	MethodValidateRataDie = "ValidateRataDie"
	// MethodValidateWeekday is the canonical name for ValidateWeekday.
	MethodValidateWeekday = "ValidateWeekday"
)
