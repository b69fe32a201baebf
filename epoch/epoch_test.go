package epoch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/datealgo/calendar"
	"github.com/katalvlaran/datealgo/epoch"
	"github.com/katalvlaran/datealgo/internal/testkit"
)

// TestEpoch_ReferencePoint pins day 0 to 1970-01-01.
func TestEpoch_ReferencePoint(t *testing.T) {
	assert.Equal(t, int32(0), epoch.DaysFromCivil(1970, 1, 1))
	assert.Equal(t, calendar.Date{Year: 1970, Month: 1, Day: 1}, epoch.CivilFromDays(0))
	assert.Equal(t, int32(-1), epoch.DaysFromCivil(1969, 12, 31))
	assert.Equal(t, int32(19782), epoch.DaysFromCivil(2024, 2, 29))
}

// TestEpoch_RangeConstants checks the published rata die bounds against the
// published year bounds.
func TestEpoch_RangeConstants(t *testing.T) {
	assert.Equal(t, calendar.RDMin, epoch.DaysFromCivil(calendar.YearMin, 1, 1))
	assert.Equal(t, calendar.RDMax, epoch.DaysFromCivil(calendar.YearMax, 12, 31))
	assert.Equal(t, calendar.Date{Year: calendar.YearMin, Month: 1, Day: 1}, epoch.CivilFromDays(calendar.RDMin))
	assert.Equal(t, calendar.Date{Year: calendar.YearMax, Month: 12, Day: 31}, epoch.CivilFromDays(calendar.RDMax))
}

// TestEpoch_Fixtures checks both directions on the known calendar points.
func TestEpoch_Fixtures(t *testing.T) {
	for _, f := range testkit.Fixtures(t) {
		d := calendar.Date{Year: f.Year, Month: f.Month, Day: f.Day}
		assert.Equal(t, f.RataDie, epoch.DaysFromCivil(f.Year, f.Month, f.Day), f.Name)
		assert.Equal(t, f.RataDie, epoch.DateToDays(d), f.Name)
		assert.Equal(t, d, epoch.CivilFromDays(f.RataDie), f.Name)
		assert.Equal(t, d, epoch.DaysToDate(f.RataDie), f.Name)
	}
}

// TestEpoch_RoundTrip checks days → civil → days over the sampled range and
// that every produced date is well formed.
func TestEpoch_RoundTrip(t *testing.T) {
	samples := testkit.RataDieSamples(testkit.NewRand(1), 5000, 997, 200000)
	for _, rd := range samples {
		d := epoch.CivilFromDays(rd)
		if err := calendar.ValidateDate(d.Year, d.Month, d.Day); err != nil {
			t.Fatalf("CivilFromDays(%d) = %+v: %v", rd, d, err)
		}
		if back := epoch.DateToDays(d); back != rd {
			t.Fatalf("DateToDays(CivilFromDays(%d)) = %d", rd, back)
		}
	}
}

// TestEpoch_CivilRoundTrip walks every day of a band of years around the
// proleptic zero and checks civil → days → civil and consecutive day counts.
func TestEpoch_CivilRoundTrip(t *testing.T) {
	for _, start := range []int32{-2001, 1599, calendar.YearMin, calendar.YearMax - 3} {
		prev := epoch.DaysFromCivil(start, 1, 1) - 1
		for y := start; y < start+4; y++ {
			for m := calendar.MonthMin; m <= calendar.MonthMax; m++ {
				for d := uint8(1); d <= calendar.DaysInMonth(y, m); d++ {
					rd := epoch.DaysFromCivil(y, m, d)
					require.Equalf(t, prev+1, rd, "%d-%02d-%02d is not the day after its predecessor", y, m, d)
					require.Equal(t, calendar.Date{Year: y, Month: m, Day: d}, epoch.CivilFromDays(rd))
					prev = rd
				}
			}
		}
	}
}

// TestEpoch_Oracle compares both directions with the standard library.
func TestEpoch_Oracle(t *testing.T) {
	samples := testkit.RataDieSamples(testkit.NewRand(2), 500, 104729, 50000)
	for _, rd := range samples {
		y, m, d := testkit.OracleCivil(rd)
		got := epoch.CivilFromDays(rd)
		if got != (calendar.Date{Year: y, Month: m, Day: d}) {
			t.Fatalf("CivilFromDays(%d) = %+v, oracle %d-%d-%d", rd, got, y, m, d)
		}
		if want := testkit.OracleDays(y, m, d); epoch.DaysFromCivil(y, m, d) != want {
			t.Fatalf("DaysFromCivil(%d,%d,%d) = %d, oracle %d", y, m, d, epoch.DaysFromCivil(y, m, d), want)
		}
	}
}

func TestOrdinal(t *testing.T) {
	y, yday := epoch.Ordinal(0)
	assert.Equal(t, int32(1970), y)
	assert.Equal(t, uint16(1), yday)

	y, yday = epoch.Ordinal(epoch.DaysFromCivil(2024, 12, 31))
	assert.Equal(t, int32(2024), y)
	assert.Equal(t, uint16(366), yday)

	y, yday = epoch.Ordinal(epoch.DaysFromCivil(2023, 3, 1))
	assert.Equal(t, int32(2023), y)
	assert.Equal(t, uint16(60), yday)
}
