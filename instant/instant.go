package instant

import (
	"fmt"
	"time"

	"github.com/katalvlaran/datealgo/calendar"
	"github.com/katalvlaran/datealgo/epoch"
)

// FromDateTime converts a civil date and wall-clock time to an Instant.
//
// It returns ok == false, and a zero Instant, when:
//   - year is outside [calendar.YearMin, calendar.YearMax],
//   - month or day do not name a real date,
//   - hour > 23, minute > 59, second > 59 or nanosecond >= 1e9,
//   - the seconds computation would overflow int64.
//
// Seconds = DaysFromCivil(year, month, day)*86400 + hour*3600 + minute*60 + second.
//
// Complexity: O(1).
func FromDateTime(year int32, month, day, hour, minute, second uint8, nanosecond uint32) (Instant, bool) {
	if !validDate(year, month, day) || !validClock(hour, minute, second, nanosecond) {
		return Instant{}, false
	}

	secs, ok := DHMSToSecs(epoch.DaysFromCivil(year, month, day), hour, minute, second)
	if !ok {
		return Instant{}, false
	}

	return Instant{Seconds: secs, Nanoseconds: nanosecond}, true
}

// FromDateTimeValue is FromDateTime for a DateTime.
func FromDateTimeValue(dt DateTime) (Instant, bool) {
	return FromDateTime(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, dt.Nanosecond)
}

// ToDateTime splits in back into civil date and wall-clock fields.
// It returns ok == false when in is outside [SecsMin, SecsMax] or its
// Nanoseconds part is not below one second.
//
// Complexity: O(1).
func ToDateTime(in Instant) (DateTime, bool) {
	if in.Nanoseconds >= calendar.NanosPerSecond {
		return DateTime{}, false
	}
	days, h, m, s, ok := SecsToDHMS(in.Seconds)
	if !ok {
		return DateTime{}, false
	}
	d := epoch.CivilFromDays(days)

	return DateTime{
		Year:       d.Year,
		Month:      d.Month,
		Day:        d.Day,
		Hour:       h,
		Minute:     m,
		Second:     s,
		Nanosecond: in.Nanoseconds,
	}, true
}

// SecsToDHMS splits Unix seconds into a rata die and a time of day.
// Negative seconds belong to days before 1970: -1 is 1969-12-31T23:59:59.
// It returns ok == false outside [SecsMin, SecsMax].
func SecsToDHMS(secs int64) (days int32, hour, minute, second uint8, ok bool) {
	if secs < SecsMin || secs > SecsMax {
		return 0, 0, 0, 0, false
	}
	d := secs / calendar.SecondsPerDay
	rem := secs - d*calendar.SecondsPerDay
	if rem < 0 {
		d--
		rem += calendar.SecondsPerDay
	}

	return int32(d),
		uint8(rem / calendar.SecondsPerHour),
		uint8(rem % calendar.SecondsPerHour / calendar.SecondsPerMinute),
		uint8(rem % calendar.SecondsPerMinute),
		true
}

// DHMSToSecs joins a rata die and a time of day into Unix seconds.
// It returns ok == false for an out-of-range time field or a rata die
// outside [calendar.RDMin, calendar.RDMax].
func DHMSToSecs(days int32, hour, minute, second uint8) (int64, bool) {
	if days < calendar.RDMin || days > calendar.RDMax || !validClock(hour, minute, second, 0) {
		return 0, false
	}

	secs, ok := mulChecked(int64(days), calendar.SecondsPerDay)
	if !ok {
		return 0, false
	}
	tod := int64(hour)*calendar.SecondsPerHour + int64(minute)*calendar.SecondsPerMinute + int64(second)

	return addChecked(secs, tod)
}

// FromTime converts a time.Time to an Instant. The time's location is
// irrelevant: an instant is zone-free. It returns ok == false when t falls
// outside [SecsMin, SecsMax].
func FromTime(t time.Time) (Instant, bool) {
	secs := t.Unix()
	if secs < SecsMin || secs > SecsMax {
		return Instant{}, false
	}

	return Instant{Seconds: secs, Nanoseconds: uint32(t.Nanosecond())}, true
}

// Validate explains why FromDateTimeValue would reject dt. It returns nil
// when FromDateTimeValue(dt) succeeds, otherwise an error matching
// calendar.ErrYearOutOfRange, calendar.ErrMonthOutOfRange,
// calendar.ErrDayOutOfRange or ErrTimeOutOfRange, in that priority.
func Validate(dt DateTime) error {
	if err := calendar.ValidateDate(dt.Year, dt.Month, dt.Day); err != nil {
		return fmt.Errorf("%s: %w", MethodFromDateTime, err)
	}
	if !validClock(dt.Hour, dt.Minute, dt.Second, dt.Nanosecond) {
		return fmt.Errorf("%s: %02d:%02d:%02d.%09d: %w",
			MethodFromDateTime, dt.Hour, dt.Minute, dt.Second, dt.Nanosecond, ErrTimeOutOfRange)
	}

	return nil
}

// ValidateInstant explains why ToDateTime would reject in.
func ValidateInstant(in Instant) error {
	if in.Seconds < SecsMin || in.Seconds > SecsMax {
		return fmt.Errorf("%s: seconds must be in [%d,%d], got %d: %w",
			MethodToDateTime, SecsMin, SecsMax, in.Seconds, ErrInstantOutOfRange)
	}
	if in.Nanoseconds >= calendar.NanosPerSecond {
		return fmt.Errorf("%s: nanoseconds must be below %d, got %d: %w",
			MethodToDateTime, calendar.NanosPerSecond, in.Nanoseconds, ErrTimeOutOfRange)
	}

	return nil
}

func validDate(year int32, month, day uint8) bool {
	return year >= calendar.YearMin && year <= calendar.YearMax &&
		month >= calendar.MonthMin && month <= calendar.MonthMax &&
		day >= 1 && day <= calendar.DaysInMonth(year, month)
}

func validClock(hour, minute, second uint8, nanosecond uint32) bool {
	return hour < 24 && minute < 60 && second < 60 && nanosecond < calendar.NanosPerSecond
}
