// SPDX-License-Identifier: MIT
// Package: datealgo/calendar
//
// errors.go - sentinel errors for the checked boundary of the engine.
//
// Error policy:
//   • Hot-path functions (DaysFromCivil, IsLeapYear, ...) never return errors;
//     out-of-domain input yields an unspecified value, never a panic.
//   • Validate* helpers return ONLY these sentinels, wrapped with the method
//     name via %w. Callers branch with errors.Is, never on message text.

package calendar

import (
	"errors"
	"fmt"
)

var (
	// ErrYearOutOfRange indicates a year outside [YearMin, YearMax].
	ErrYearOutOfRange = errors.New("calendar: year out of range")

	// ErrMonthOutOfRange indicates a month outside [MonthMin, MonthMax].
	ErrMonthOutOfRange = errors.New("calendar: month out of range")

	// ErrDayOutOfRange indicates a day outside [1, DaysInMonth(year, month)].
	ErrDayOutOfRange = errors.New("calendar: day out of range")

	// ErrRataDieOutOfRange indicates a day count outside [RDMin, RDMax].
	ErrRataDieOutOfRange = errors.New("calendar: rata die out of range")

	// ErrWeekdayOutOfRange indicates a weekday outside [Monday, Sunday].
	ErrWeekdayOutOfRange = errors.New("calendar: weekday out of range")
)

// calendarErrorf wraps sentinel with the method context and a formatted detail.
// The result reads "<method>: <detail>: <sentinel message>" and still matches
// errors.Is(err, sentinel).
func calendarErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
