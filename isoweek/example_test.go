package isoweek_test

import (
	"fmt"

	"github.com/katalvlaran/datealgo/calendar"
	"github.com/katalvlaran/datealgo/isoweek"
)

// ExampleFromCivil shows both directions of the New Year ambiguity.
func ExampleFromCivil() {
	a := isoweek.FromCivil(2021, 1, 1)
	b := isoweek.FromCivil(2024, 12, 31)
	fmt.Println(a.Year, a.Week, a.Weekday)
	fmt.Println(b.Year, b.Week, b.Weekday)
	// Output:
	// 2020 53 Friday
	// 2025 1 Tuesday
}

// ExampleToCivil finds the Monday that opens iso-week 1 of 2026.
func ExampleToCivil() {
	d := isoweek.ToCivil(isoweek.Date{Year: 2026, Week: 1, Weekday: calendar.Monday})
	fmt.Println(d.Year, d.Month, d.Day)
	fmt.Println(isoweek.WeeksInYear(2020), isoweek.WeeksInYear(2021))
	// Output:
	// 2025 12 29
	// 53 52
}
