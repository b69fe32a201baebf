package isoweek

import (
	"errors"

	"github.com/katalvlaran/datealgo/calendar"
)

// Date is an ISO-8601 week-date.
//
// Every Date produced by this package satisfies
// 1 <= Week <= WeeksInYear(Year) and Monday <= Weekday <= Sunday.
type Date struct {
	Year    int32            `json:"iso_year" yaml:"iso_year"`
	Week    uint8            `json:"iso_week" yaml:"iso_week"`
	Weekday calendar.Weekday `json:"iso_weekday" yaml:"iso_weekday"`
}

const (
	// WeeksMin is the first week of every iso-year.
	WeeksMin uint8 = 1

	// WeeksMax is the last week of a long iso-year.
	WeeksMax uint8 = 53

	// MethodValidate is the canonical name for Validate.
	MethodValidate = "Validate"
)

// ErrWeekOutOfRange indicates an iso-week outside [1, WeeksInYear(iso-year)].
var ErrWeekOutOfRange = errors.New("isoweek: week out of range")
