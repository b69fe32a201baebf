// Package calendar holds the shared value types, published bounds and
// leap-year predicates of the datealgo engine.
//
// 🚀 What lives here?
//
//	Every other package (epoch, weekday, step, isoweek, instant) speaks in
//	the types declared here:
//	  • Date     - proleptic Gregorian (year, month, day)
//	  • Weekday  - ISO numbering, Monday=1 … Sunday=7
//	  • YearMin/YearMax, MonthMin/MonthMax, RDMin/RDMax - the supported domain
//
// ✨ Predicates:
//   - IsLeapYear       - Gregorian rule, uniform for negative years
//   - DaysInMonth      - 28..31, arithmetic for every month but February
//   - DaysInYear       - 365 or 366
//   - DaysBeforeMonth  - days elapsed in the year before the 1st of a month
//   - DayOfYear        - ordinal day 1..366
//
// ⚙️ Contract:
//
//	The predicates are a fast path: they do not re-validate their inputs.
//	Callers range-check with the exported constants, or with the
//	Validate* helpers which return sentinel errors (errors.Is friendly):
//
//	if err := calendar.ValidateDate(y, m, d); err != nil {
//	  // errors.Is(err, calendar.ErrDayOutOfRange) ...
//	}
//
// Performance:
//
//   - Every function is O(1), branch-lean and allocation-free.
//   - No shared mutable state; safe for concurrent use.
package calendar
