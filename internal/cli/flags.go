package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/datealgo/calendar"
	"github.com/katalvlaran/datealgo/epoch"
)

// dateFlags binds --year, --month and --day.
type dateFlags struct {
	Year  int32
	Month uint8
	Day   uint8
}

func (f *dateFlags) bind(cmd *cobra.Command) {
	cmd.Flags().Int32Var(&f.Year, "year", 1970, "proleptic Gregorian year")
	cmd.Flags().Uint8Var(&f.Month, "month", 1, "month (1-12)")
	cmd.Flags().Uint8Var(&f.Day, "day", 1, "day of month")
}

func (f *dateFlags) validate() error {
	if err := calendar.ValidateDate(f.Year, f.Month, f.Day); err != nil {
		return invalidInput(err)
	}
	return nil
}

// dayFlags binds --rd alongside the date flags, for commands that accept
// either a rata die or a civil date.
type dayFlags struct {
	dateFlags
	RataDie int32
}

func (f *dayFlags) bind(cmd *cobra.Command) {
	f.dateFlags.bind(cmd)
	cmd.Flags().Int32Var(&f.RataDie, "rd", 0, "rata die (days since 1970-01-01); overrides --year/--month/--day")
}

// resolve returns the validated rata die selected by the flags.
func (f *dayFlags) resolve(cmd *cobra.Command) (int32, error) {
	if cmd.Flags().Changed("rd") {
		if err := calendar.ValidateRataDie(f.RataDie); err != nil {
			return 0, invalidInput(err)
		}
		return f.RataDie, nil
	}
	if err := f.validate(); err != nil {
		return 0, err
	}
	return epoch.DaysFromCivil(f.Year, f.Month, f.Day), nil
}
