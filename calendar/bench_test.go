package calendar_test

import (
	"testing"

	"github.com/katalvlaran/datealgo/calendar"
)

var sinkBool bool
var sinkU8 uint8

// BenchmarkIsLeapYear measures the leap-year predicate over a rolling year.
func BenchmarkIsLeapYear(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkBool = calendar.IsLeapYear(int32(i))
	}
}

// BenchmarkDaysInMonth cycles through all twelve months.
func BenchmarkDaysInMonth(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkU8 = calendar.DaysInMonth(int32(i), uint8(i%12)+1)
	}
}
