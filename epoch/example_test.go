package epoch_test

import (
	"fmt"

	"github.com/katalvlaran/datealgo/epoch"
)

// ExampleDaysFromCivil converts a leap day to its Unix day number and back.
func ExampleDaysFromCivil() {
	rd := epoch.DaysFromCivil(2024, 2, 29)
	d := epoch.CivilFromDays(rd)
	fmt.Println(rd)
	fmt.Println(d.Year, d.Month, d.Day)
	// Output:
	// 19782
	// 2024 2 29
}

// ExampleCivilFromDays shows that negative day counts land before 1970.
func ExampleCivilFromDays() {
	fmt.Printf("%+v\n", epoch.CivilFromDays(-1))
	fmt.Printf("%+v\n", epoch.CivilFromDays(-719528))
	// Output:
	// {Year:1969 Month:12 Day:31}
	// {Year:0 Month:1 Day:1}
}
