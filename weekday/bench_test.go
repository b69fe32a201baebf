package weekday_test

import (
	"testing"

	"github.com/katalvlaran/datealgo/calendar"
	"github.com/katalvlaran/datealgo/epoch"
	"github.com/katalvlaran/datealgo/weekday"
)

var sinkWeekday calendar.Weekday

func BenchmarkFromDays(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkWeekday = weekday.FromDays(int32(i) - 500_000)
	}
}

func BenchmarkFromCivil(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkWeekday = weekday.FromCivil(int32(i%4000)-2000, uint8(i%12)+1, 15)
	}
}

// BenchmarkFromCivil_ViaDays is the composed form FromCivil is measured against.
func BenchmarkFromCivil_ViaDays(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkWeekday = weekday.FromDays(epoch.DaysFromCivil(int32(i%4000)-2000, uint8(i%12)+1, 15))
	}
}
