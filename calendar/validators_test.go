package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/datealgo/calendar"
)

func TestValidateYear(t *testing.T) {
	assert.NoError(t, calendar.ValidateYear(calendar.YearMin))
	assert.NoError(t, calendar.ValidateYear(calendar.YearMax))
	assert.NoError(t, calendar.ValidateYear(1970))
	assert.ErrorIs(t, calendar.ValidateYear(calendar.YearMin-1), calendar.ErrYearOutOfRange)
	assert.ErrorIs(t, calendar.ValidateYear(calendar.YearMax+1), calendar.ErrYearOutOfRange)
}

func TestValidateMonth(t *testing.T) {
	for m := calendar.MonthMin; m <= calendar.MonthMax; m++ {
		assert.NoError(t, calendar.ValidateMonth(m))
	}
	assert.ErrorIs(t, calendar.ValidateMonth(0), calendar.ErrMonthOutOfRange)
	assert.ErrorIs(t, calendar.ValidateMonth(13), calendar.ErrMonthOutOfRange)
}

// TestValidateDate_Priority checks that the first violated field wins:
// year, then month, then day.
func TestValidateDate_Priority(t *testing.T) {
	cases := []struct {
		name  string
		year  int32
		month uint8
		day   uint8
		want  error
	}{
		{"valid leap day", 2024, 2, 29, nil},
		{"valid range start", calendar.YearMin, 1, 1, nil},
		{"valid range end", calendar.YearMax, 12, 31, nil},
		{"common year leap day", 2023, 2, 29, calendar.ErrDayOutOfRange},
		{"day zero", 2023, 1, 0, calendar.ErrDayOutOfRange},
		{"april 31", 2023, 4, 31, calendar.ErrDayOutOfRange},
		{"month zero", 2023, 0, 1, calendar.ErrMonthOutOfRange},
		{"month 13 beats bad day", 2023, 13, 40, calendar.ErrMonthOutOfRange},
		{"year beats everything", calendar.YearMax + 1, 13, 40, calendar.ErrYearOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := calendar.ValidateDate(tc.year, tc.month, tc.day)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), calendar.MethodValidateDate)
		})
	}
}

func TestValidateRataDie(t *testing.T) {
	assert.NoError(t, calendar.ValidateRataDie(0))
	assert.NoError(t, calendar.ValidateRataDie(calendar.RDMin))
	assert.NoError(t, calendar.ValidateRataDie(calendar.RDMax))
	assert.ErrorIs(t, calendar.ValidateRataDie(calendar.RDMin-1), calendar.ErrRataDieOutOfRange)
	assert.ErrorIs(t, calendar.ValidateRataDie(calendar.RDMax+1), calendar.ErrRataDieOutOfRange)
}

func TestValidateWeekday(t *testing.T) {
	for wd := calendar.Monday; wd <= calendar.Sunday; wd++ {
		assert.NoError(t, calendar.ValidateWeekday(wd))
	}
	assert.ErrorIs(t, calendar.ValidateWeekday(0), calendar.ErrWeekdayOutOfRange)
	assert.ErrorIs(t, calendar.ValidateWeekday(8), calendar.ErrWeekdayOutOfRange)
}
