// Package epoch converts between proleptic Gregorian civil dates and rata die
// day counts (days since 1970-01-01, the Unix day number).
//
// 🚀 Algorithm:
//
//	Both directions are closed-form integer transforms with no loops and no
//	month tables:
//	  1. Count years from March 1st, so Jan/Feb become months 10/11 of the
//	     previous year and Feb 29 is always the last day of an internal year.
//	  2. Shift the year by a fixed number of 400-year eras so every
//	     intermediate value is non-negative; division then never needs a
//	     floor correction.
//	  3. Split into era (146097 days), year of era (0..399) and day of year
//	     (0..365); leap days are yoe/4 - yoe/100 within an era.
//
// ⚙️ Usage:
//
//	rd := epoch.DaysFromCivil(2024, 2, 29) // 19782
//	d  := epoch.CivilFromDays(rd)         // {2024 2 29}
//
// Contract:
//
//   - Exact for years in [calendar.YearMin, calendar.YearMax] and rata die in
//     [calendar.RDMin, calendar.RDMax]. Outside that domain the result is
//     unspecified, never a panic.
//   - O(1), allocation-free, safe for concurrent use.
package epoch
