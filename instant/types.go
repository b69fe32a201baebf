package instant

import (
	"errors"
	"time"

	"github.com/katalvlaran/datealgo/calendar"
)

// Instant is an absolute point in time: Seconds since the Unix epoch plus a
// sub-second Nanoseconds part in [0, 1e9).
type Instant struct {
	Seconds     int64  `json:"seconds" yaml:"seconds"`
	Nanoseconds uint32 `json:"nanoseconds" yaml:"nanoseconds"`
}

// DateTime is a civil date plus a wall-clock time of day with nanoseconds.
type DateTime struct {
	Year       int32  `json:"year" yaml:"year"`
	Month      uint8  `json:"month" yaml:"month"`
	Day        uint8  `json:"day" yaml:"day"`
	Hour       uint8  `json:"hour" yaml:"hour"`
	Minute     uint8  `json:"minute" yaml:"minute"`
	Second     uint8  `json:"second" yaml:"second"`
	Nanosecond uint32 `json:"nanosecond" yaml:"nanosecond"`
}

// Date returns the calendar part of dt.
func (dt DateTime) Date() calendar.Date {
	return calendar.Date{Year: dt.Year, Month: dt.Month, Day: dt.Day}
}

const (
	// SecsMin is the Seconds value of calendar.YearMin-01-01T00:00:00.
	SecsMin int64 = int64(calendar.RDMin) * calendar.SecondsPerDay

	// SecsMax is the Seconds value of calendar.YearMax-12-31T23:59:59.
	SecsMax int64 = int64(calendar.RDMax)*calendar.SecondsPerDay + calendar.SecondsPerDay - 1

	// MethodFromDateTime is the canonical name for FromDateTime.
	MethodFromDateTime = "FromDateTime"
	// MethodToDateTime is the canonical name for ToDateTime.
	MethodToDateTime = "ToDateTime"
)

var (
	// ErrTimeOutOfRange indicates an hour, minute, second or nanosecond
	// outside its nominal bounds.
	ErrTimeOutOfRange = errors.New("instant: time of day out of range")

	// ErrInstantOutOfRange indicates an instant outside [SecsMin, SecsMax],
	// or a result that does not fit the instant representation.
	ErrInstantOutOfRange = errors.New("instant: instant out of range")
)

// Time returns in as a time.Time in UTC.
func (in Instant) Time() time.Time {
	return time.Unix(in.Seconds, int64(in.Nanoseconds)).UTC()
}

// Compare returns -1, 0 or +1 as in is before, equal to, or after other.
func (in Instant) Compare(other Instant) int {
	switch {
	case in.Seconds < other.Seconds:
		return -1
	case in.Seconds > other.Seconds:
		return 1
	case in.Nanoseconds < other.Nanoseconds:
		return -1
	case in.Nanoseconds > other.Nanoseconds:
		return 1
	}

	return 0
}

// Before reports whether in is strictly earlier than other.
func (in Instant) Before(other Instant) bool {
	return in.Compare(other) < 0
}
