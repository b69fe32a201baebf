package testkit

import "time"

// The oracle answers every calendar question through the standard library's
// time package, which shares no code with the engine under test. Its UTC
// calendar is proleptic Gregorian over the whole supported range.

const secondsPerDay = 86400

// OracleDays returns the rata die (days since 1970-01-01) of year-month-day.
func OracleDays(year int32, month, day uint8) int32 {
	t := time.Date(int(year), time.Month(month), int(day), 0, 0, 0, 0, time.UTC)

	return int32(t.Unix() / secondsPerDay)
}

// OracleCivil returns the civil date of rata die rd.
func OracleCivil(rd int32) (year int32, month, day uint8) {
	y, m, d := oracleTime(rd).Date()

	return int32(y), uint8(m), uint8(d)
}

// OracleWeekday returns the ISO weekday (Monday = 1 … Sunday = 7) of rd.
func OracleWeekday(rd int32) uint8 {
	wd := oracleTime(rd).Weekday()
	if wd == time.Sunday {
		return 7
	}

	return uint8(wd)
}

// OracleISOWeek returns the ISO year and week of rd.
func OracleISOWeek(rd int32) (year int32, week uint8) {
	y, w := oracleTime(rd).ISOWeek()

	return int32(y), uint8(w)
}

// OracleUnix returns the Unix seconds of the given UTC wall-clock time.
func OracleUnix(year int32, month, day, hour, minute, second uint8) int64 {
	return time.Date(int(year), time.Month(month), int(day),
		int(hour), int(minute), int(second), 0, time.UTC).Unix()
}

func oracleTime(rd int32) time.Time {
	return time.Unix(int64(rd)*secondsPerDay, 0).UTC()
}
