// SPDX-License-Identifier: MIT
// Package: datealgo/calendar
//
// predicates.go - leap-year rule and month/year lengths.
//
// Contract:
//   • Inputs are trusted: year in [YearMin, YearMax], month in [MonthMin, MonthMax],
//     day in [1, DaysInMonth]. Outside that domain the result is unspecified.
//   • No tables: lengths are derived arithmetically so the rules hold for the
//     whole year range, negative years included.

package calendar

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar: divisible by 4, and either not divisible by 100 or divisible by 400.
//
// Implementation:
//   - A year divisible by 100 is also divisible by 25, and is divisible by 400
//     iff it is divisible by 16. So: y%25 != 0 ? y%4 == 0 : y%16 == 0.
//   - The %4 and %16 tests use a bit mask, which is a floor modulo in two's
//     complement and therefore exact for negative years.
//
// Complexity: O(1).
func IsLeapYear(year int32) bool {
	if year%25 != 0 {
		return year&3 == 0
	}

	return year&15 == 0
}

// DaysInMonth returns the number of days in month of year (28..31).
//
// February is 28 or 29 by IsLeapYear; every other month alternates 31/30
// with the parity flipping after July, i.e. 30 + ((m + m/8) & 1).
//
// Complexity: O(1).
func DaysInMonth(year int32, month uint8) uint8 {
	if month == 2 {
		if IsLeapYear(year) {
			return 29
		}

		return 28
	}

	return 30 + ((month + month/8) & 1)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int32) uint16 {
	if IsLeapYear(year) {
		return 366
	}

	return 365
}

// DaysBeforeMonth returns the number of days in year that precede the first
// day of month (0 for January, 31 for February, 59 or 60 for March, …).
//
// From March on the count uses the March-based month length formula
// (153*m' + 2) / 5 with m' = month - 3, on top of Jan+Feb = 59 (+1 if leap).
//
// Complexity: O(1).
func DaysBeforeMonth(year int32, month uint8) uint16 {
	if month <= 2 {
		return uint16(month-1) * 31
	}

	before := 59 + (153*uint16(month-3)+2)/5
	if IsLeapYear(year) {
		before++
	}

	return before
}

// DayOfYear returns the ordinal day of (year, month, day), 1 for January 1st
// up to DaysInYear(year) for December 31st.
func DayOfYear(year int32, month, day uint8) uint16 {
	return DaysBeforeMonth(year, month) + uint16(day)
}
