package cli

import (
	"fmt"

	"github.com/katalvlaran/datealgo/calendar"
)

// dayCountResult is a rata die.
type dayCountResult struct {
	RataDie int32 `json:"rd" yaml:"rd"`
}

func (r dayCountResult) Text() string { return fmt.Sprintf("rd=%d", r.RataDie) }

// dateResult is a civil date with its rata die.
type dateResult struct {
	Year    int32 `json:"year" yaml:"year"`
	Month   uint8 `json:"month" yaml:"month"`
	Day     uint8 `json:"day" yaml:"day"`
	RataDie int32 `json:"rd" yaml:"rd"`
}

func newDateResult(d calendar.Date, rd int32) dateResult {
	return dateResult{Year: d.Year, Month: d.Month, Day: d.Day, RataDie: rd}
}

func (r dateResult) Text() string {
	return fmt.Sprintf("year=%d month=%d day=%d rd=%d", r.Year, r.Month, r.Day, r.RataDie)
}

type weekdayResult struct {
	Weekday uint8  `json:"weekday" yaml:"weekday"`
	Name    string `json:"name" yaml:"name"`
}

func newWeekdayResult(wd calendar.Weekday) weekdayResult {
	return weekdayResult{Weekday: uint8(wd), Name: wd.String()}
}

func (r weekdayResult) Text() string { return fmt.Sprintf("weekday=%d name=%s", r.Weekday, r.Name) }

type leapResult struct {
	Year       int32  `json:"year" yaml:"year"`
	Leap       bool   `json:"leap" yaml:"leap"`
	DaysInYear uint16 `json:"days_in_year" yaml:"days_in_year"`
}

func (r leapResult) Text() string {
	return fmt.Sprintf("year=%d leap=%t days_in_year=%d", r.Year, r.Leap, r.DaysInYear)
}

type daysInMonthResult struct {
	Year  int32 `json:"year" yaml:"year"`
	Month uint8 `json:"month" yaml:"month"`
	Days  uint8 `json:"days" yaml:"days"`
}

func (r daysInMonthResult) Text() string {
	return fmt.Sprintf("year=%d month=%d days=%d", r.Year, r.Month, r.Days)
}

type isoWeekResult struct {
	IsoYear    int32 `json:"iso_year" yaml:"iso_year"`
	IsoWeek    uint8 `json:"iso_week" yaml:"iso_week"`
	IsoWeekday uint8 `json:"iso_weekday" yaml:"iso_weekday"`
	RataDie    int32 `json:"rd" yaml:"rd"`
}

func (r isoWeekResult) Text() string {
	return fmt.Sprintf("iso_year=%d iso_week=%d iso_weekday=%d rd=%d", r.IsoYear, r.IsoWeek, r.IsoWeekday, r.RataDie)
}

type isoWeeksResult struct {
	IsoYear int32 `json:"iso_year" yaml:"iso_year"`
	Weeks   uint8 `json:"weeks" yaml:"weeks"`
}

func (r isoWeeksResult) Text() string { return fmt.Sprintf("iso_year=%d weeks=%d", r.IsoYear, r.Weeks) }

type instantResult struct {
	Seconds     int64  `json:"seconds" yaml:"seconds"`
	Nanoseconds uint32 `json:"nanoseconds" yaml:"nanoseconds"`
}

func (r instantResult) Text() string {
	return fmt.Sprintf("seconds=%d nanoseconds=%d", r.Seconds, r.Nanoseconds)
}

type dateTimeResult struct {
	Year       int32  `json:"year" yaml:"year"`
	Month      uint8  `json:"month" yaml:"month"`
	Day        uint8  `json:"day" yaml:"day"`
	Hour       uint8  `json:"hour" yaml:"hour"`
	Minute     uint8  `json:"minute" yaml:"minute"`
	Second     uint8  `json:"second" yaml:"second"`
	Nanosecond uint32 `json:"nanosecond" yaml:"nanosecond"`
}

func (r dateTimeResult) Text() string {
	return fmt.Sprintf("year=%d month=%d day=%d hour=%d minute=%d second=%d nanosecond=%d",
		r.Year, r.Month, r.Day, r.Hour, r.Minute, r.Second, r.Nanosecond)
}
