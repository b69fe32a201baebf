// Package calendar provides validation helpers for the checked boundary.
//
// The engine itself never validates on the hot path. These helpers exist so
// that callers (the CLI, higher-level libraries) can reject bad input with a
// sentinel error before calling into the fast path.
package calendar

// ValidateYear ensures YearMin <= year <= YearMax.
// Returns an error matching ErrYearOutOfRange otherwise.
//
// Complexity: O(1).
func ValidateYear(year int32) error {
	return validateYear(MethodValidateYear, year)
}

// ValidateMonth ensures MonthMin <= month <= MonthMax.
// Returns an error matching ErrMonthOutOfRange otherwise.
//
// Complexity: O(1).
func ValidateMonth(month uint8) error {
	return validateMonth(MethodValidateMonth, month)
}

// ValidateDate checks year, then month, then day, and reports the first
// violation: ErrYearOutOfRange, ErrMonthOutOfRange or ErrDayOutOfRange.
//
// Complexity: O(1).
func ValidateDate(year int32, month, day uint8) error {
	if err := validateYear(MethodValidateDate, year); err != nil {
		return err
	}
	if err := validateMonth(MethodValidateDate, month); err != nil {
		return err
	}
	if dim := DaysInMonth(year, month); day < 1 || day > dim {
		return calendarErrorf(MethodValidateDate, ErrDayOutOfRange,
			"day must be in [1,%d] for %d-%02d, got %d", dim, year, month, day)
	}

	return nil
}

// ValidateRataDie ensures RDMin <= rd <= RDMax.
// Returns an error matching ErrRataDieOutOfRange otherwise.
func ValidateRataDie(rd int32) error {
	if rd < RDMin || rd > RDMax {
		return calendarErrorf(MethodValidateRataDie, ErrRataDieOutOfRange,
			"rata die must be in [%d,%d], got %d", RDMin, RDMax, rd)
	}

	return nil
}

// ValidateWeekday ensures wd is one of Monday … Sunday.
// Returns an error matching ErrWeekdayOutOfRange otherwise.
func ValidateWeekday(wd Weekday) error {
	if !wd.Valid() {
		return calendarErrorf(MethodValidateWeekday, ErrWeekdayOutOfRange,
			"weekday must be in [%d,%d], got %d", Monday, Sunday, wd)
	}

	return nil
}

// validateYear is the method-aware form shared by the exported validators.
func validateYear(method string, year int32) error {
	if year < YearMin || year > YearMax {
		return calendarErrorf(method, ErrYearOutOfRange,
			"year must be in [%d,%d], got %d", YearMin, YearMax, year)
	}

	return nil
}

// validateMonth is the method-aware form shared by the exported validators.
func validateMonth(method string, month uint8) error {
	if month < MonthMin || month > MonthMax {
		return calendarErrorf(method, ErrMonthOutOfRange,
			"month must be in [%d,%d], got %d", MonthMin, MonthMax, month)
	}

	return nil
}
