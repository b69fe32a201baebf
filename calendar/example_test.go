package calendar_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/datealgo/calendar"
)

// ExampleIsLeapYear shows the century rule.
func ExampleIsLeapYear() {
	for _, y := range []int32{1900, 2000, 2023, 2024} {
		fmt.Println(y, calendar.IsLeapYear(y))
	}
	// Output:
	// 1900 false
	// 2000 true
	// 2023 false
	// 2024 true
}

// ExampleValidateDate range-checks a date before handing it to the fast path.
func ExampleValidateDate() {
	err := calendar.ValidateDate(2023, 2, 29)
	fmt.Println(errors.Is(err, calendar.ErrDayOutOfRange))
	fmt.Println(calendar.DaysInMonth(2023, 2), calendar.DaysInMonth(2024, 2))
	// Output:
	// true
	// 28 29
}
