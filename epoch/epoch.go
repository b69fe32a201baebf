package epoch

import "github.com/katalvlaran/datealgo/calendar"

const (
	// eraShift is the number of 400-year eras added to every year before
	// dividing. 3671 eras (1,468,400 years) keeps the internal year
	// non-negative down to calendar.YearMin-1, which ISO week-date
	// arithmetic can reach at the bottom of the range.
	eraShift = 3671

	// marchToUnixEpoch is the number of days from 0000-03-01 to 1970-01-01.
	marchToUnixEpoch = 719468

	// shiftedEpoch is the internal day number of 1970-01-01.
	shiftedEpoch = eraShift*calendar.DaysPer400Years + marchToUnixEpoch
)

// DaysFromCivil returns the rata die of (year, month, day).
//
// Steps:
//  1. jf = 1 for January/February, else 0; move those months to the end of
//     the previous March-based year.
//  2. era = y / 400, yoe = y mod 400 on the shifted (non-negative) year.
//  3. doy = (153*mp + 2)/5 + day - 1 with mp = 0 for March … 11 for February.
//  4. doe = 365*yoe + yoe/4 - yoe/100 + doy.
//
// Complexity: O(1).
func DaysFromCivil(year int32, month, day uint8) int32 {
	doe, era := dayOfEra(year, month, day)

	return int32(era*calendar.DaysPer400Years + doe - shiftedEpoch)
}

// DateToDays is DaysFromCivil for a calendar.Date.
func DateToDays(d calendar.Date) int32 {
	return DaysFromCivil(d.Year, d.Month, d.Day)
}

// CivilFromDays returns the civil date of rata die rd.
// It is the exact inverse of DaysFromCivil over [calendar.RDMin, calendar.RDMax].
//
// Complexity: O(1).
func CivilFromDays(rd int32) calendar.Date {
	z := int64(rd) + shiftedEpoch
	era := z / calendar.DaysPer400Years
	doe := z - era*calendar.DaysPer400Years
	// Remove the leap days accumulated by doe before dividing by 365:
	// one per 4 years (1460 days), minus one per century (36524 days), plus
	// the final day of the era (146096).
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	jf := mp / 10

	return calendar.Date{
		Year:  int32(yoe + (era-eraShift)*400 + jf),
		Month: uint8(mp + 3 - 12*jf),
		Day:   uint8(doy - (153*mp+2)/5 + 1),
	}
}

// DaysToDate is an alias of CivilFromDays named after DateToDays.
func DaysToDate(rd int32) calendar.Date {
	return CivilFromDays(rd)
}

// Ordinal returns the calendar year of rd and its day of year (1..366).
func Ordinal(rd int32) (year int32, yday uint16) {
	d := CivilFromDays(rd)

	return d.Year, calendar.DayOfYear(d.Year, d.Month, d.Day)
}

// dayOfEra returns the day of the shifted 400-year era (0..146096) holding
// (year, month, day), and that era's index.
func dayOfEra(year int32, month, day uint8) (doe, era int64) {
	jf := (14 - int64(month)) / 12
	y := int64(year) + eraShift*400 - jf
	mp := int64(month) + 12*jf - 3
	era = y / 400
	yoe := y - era*400
	doy := (153*mp+2)/5 + int64(day) - 1

	return 365*yoe + yoe/4 - yoe/100 + doy, era
}
