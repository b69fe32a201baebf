// Package datealgo is a branch-light calendar arithmetic engine for the
// proleptic Gregorian calendar: day counts, civil dates, weekdays, ISO
// week-dates and Unix instants, all in O(1) integer arithmetic.
//
// 🚀 What is datealgo?
//
//	A pure, allocation-free set of conversions that brings together:
//		• Day counts: rata die (days since 1970-01-01) ⇄ civil date
//		• Weekdays: from a day count or straight from a civil date
//		• Predicates: leap year, days in month, day of year
//		• Stepping: next and previous date without a round trip
//		• ISO 8601 week-dates: rata die ⇄ (ISO year, week, weekday)
//		• Instants: date + time of day ⇄ Unix seconds and nanoseconds
//
// ✨ Why choose datealgo?
//
//   - Fast – no tables, no loops, no floating point
//   - Wide – years -1467999 … 1471744, every day of them an int32 rata die
//   - Honest – the fast path trusts its input, the Validate* helpers do not
//   - Pure Go – stateless functions, safe for concurrent use
//
// Everything is organized under these subpackages:
//
//	calendar/ - Date and Weekday types, bounds, leap-year predicates, validators
//	epoch/    - rata die ⇄ civil date, ordinal dates
//	weekday/  - weekday from a rata die or a civil date
//	step/     - next and previous date
//	isoweek/  - ISO week-dates and weeks per ISO year
//	instant/  - checked date-time ⇄ Unix instant conversions
//
// The datealgo command (cmd/datealgo) exposes every conversion on the shell:
//
//	datealgo days --year 2024 --month 2 --day 29
//	rd=19782
//
//	datealgo --format json isoweek --rd 18628
//	{"iso_year":2020,"iso_week":53,"iso_weekday":5,"rd":18628}
//
//	go get github.com/katalvlaran/datealgo
package datealgo
