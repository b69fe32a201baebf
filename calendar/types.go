package calendar

import "strconv"

// Date is a proleptic Gregorian civil date.
//
// Every Date produced by this module satisfies
// MonthMin <= Month <= MonthMax and 1 <= Day <= DaysInMonth(Year, Month).
// Dates supplied by callers are trusted, not re-validated.
type Date struct {
	Year  int32 `json:"year" yaml:"year"`
	Month uint8 `json:"month" yaml:"month"`
	Day   uint8 `json:"day" yaml:"day"`
}

// Weekday is an ISO-8601 day of the week, numbered from Monday = 1.
type Weekday uint8

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// String returns the English name of the day ("Monday" … "Sunday").
// Values outside 1..7 render as "Weekday(n)".
func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "Weekday(" + strconv.Itoa(int(w)) + ")"
	}

	return weekdayNames[w]
}

// Valid reports whether w is one of Monday … Sunday.
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}
