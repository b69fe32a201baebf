// Package isoweek converts between rata die day counts and ISO-8601 week-dates
// (iso-year, iso-week 1..53, iso-weekday 1..7).
//
// 🚀 What is an ISO week-date?
//
//	Weeks run Monday to Sunday. Week 1 of an iso-year is the week holding
//	that year's first Thursday (equivalently, January 4th). A year therefore
//	has 52 or 53 weeks, and its iso-year can differ from the calendar year
//	near New Year:
//	  • 2021-01-01 is 2020-W53-5 (early January, previous iso-year)
//	  • 2024-12-31 is 2025-W01-2 (late December, next iso-year)
//	This is ISO-8601 behavior, not an error.
//
// ✨ Operations:
//   - FromDays / ToDays     - rata die ⇄ week-date
//   - FromCivil / ToCivil   - civil date ⇄ week-date
//   - WeeksInYear           - 52 or 53
//   - Validate              - checked boundary with sentinel errors
//
// ⚙️ Usage:
//
//	wd := isoweek.FromCivil(2021, 1, 1) // {Year:2020 Week:53 Weekday:Friday}
//	rd := isoweek.ToDays(wd.Year, wd.Week, wd.Weekday)
//
// Contract:
//
//   - Round trip: ToDays(FromDays(rd)) == rd for every rd in
//     [calendar.RDMin, calendar.RDMax].
//   - O(1), allocation-free, safe for concurrent use.
package isoweek
