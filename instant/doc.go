// Package instant builds absolute points in time from civil date and
// wall-clock fields, and takes them apart again.
//
// An Instant is (seconds since 1970-01-01T00:00:00, nanoseconds in [0, 1e9)).
// There are no leap seconds and no time zones: every day is exactly 86,400
// seconds of UTC.
//
// ⚙️ Usage:
//
//	in, ok := instant.FromDateTime(2024, 2, 29, 12, 30, 0, 500)
//	if !ok {
//	  // a field was out of range, or the result is not representable
//	}
//	t := in.Time() // time.Time in UTC
//
// Failure model:
//
//	This is the one checked operation of the engine. FromDateTime,
//	ToDateTime, FromTime, SecsToDHMS and DHMSToSecs report failure with a
//	comma-ok bool instead of a sentinel value, so "no value" can never be
//	confused with a valid (seconds, nanoseconds) pair. Fields are validated,
//	never clamped or wrapped. Validate explains a rejection with a
//	sentinel error.
package instant
