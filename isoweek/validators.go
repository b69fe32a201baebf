package isoweek

import (
	"fmt"

	"github.com/katalvlaran/datealgo/calendar"
)

// Validate checks an ISO week-date at the boundary, in priority order:
// year (calendar.ErrYearOutOfRange), week (ErrWeekOutOfRange), then
// weekday (calendar.ErrWeekdayOutOfRange).
func Validate(d Date) error {
	if d.Year < calendar.YearMin || d.Year > calendar.YearMax {
		return fmt.Errorf("%s: year must be in [%d,%d], got %d: %w",
			MethodValidate, calendar.YearMin, calendar.YearMax, d.Year, calendar.ErrYearOutOfRange)
	}
	if weeks := WeeksInYear(d.Year); d.Week < WeeksMin || d.Week > weeks {
		return fmt.Errorf("%s: week must be in [%d,%d] for %d, got %d: %w",
			MethodValidate, WeeksMin, weeks, d.Year, d.Week, ErrWeekOutOfRange)
	}
	if !d.Weekday.Valid() {
		return fmt.Errorf("%s: weekday must be in [%d,%d], got %d: %w",
			MethodValidate, calendar.Monday, calendar.Sunday, d.Weekday, calendar.ErrWeekdayOutOfRange)
	}

	return nil
}
