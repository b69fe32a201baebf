package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/datealgo/calendar"
	"github.com/katalvlaran/datealgo/epoch"
	"github.com/katalvlaran/datealgo/isoweek"
)

// NewIsoWeekCommand creates the "isoweek" command: rata die or civil date →
// ISO week-date.
func NewIsoWeekCommand(root *RootOptions) *cobra.Command {
	var f dayFlags

	cmd := &cobra.Command{
		Use:   "isoweek",
		Short: "ISO week-date of a rata die or civil date",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rd, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			root.Logger.Debug("isoweek", "rd", rd)

			wd := isoweek.FromDays(rd)
			return root.formatter(cmd).Success(isoWeekResult{
				IsoYear:    wd.Year,
				IsoWeek:    wd.Week,
				IsoWeekday: uint8(wd.Weekday),
				RataDie:    rd,
			})
		},
	}
	f.bind(cmd)

	return cmd
}

// NewFromIsoWeekCommand creates the "from-isoweek" command: ISO week-date →
// rata die and civil date.
func NewFromIsoWeekCommand(root *RootOptions) *cobra.Command {
	var (
		year    int32
		week    uint8
		weekday uint8
	)

	cmd := &cobra.Command{
		Use:   "from-isoweek",
		Short: "Civil date and rata die of an ISO week-date",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wd := isoweek.Date{Year: year, Week: week, Weekday: calendar.Weekday(weekday)}
			if err := isoweek.Validate(wd); err != nil {
				return invalidInput(err)
			}
			rd := isoweek.DateToDays(wd)
			if err := calendar.ValidateRataDie(rd); err != nil {
				return invalidInput(err)
			}
			root.Logger.Debug("from-isoweek", "iso_year", year, "iso_week", week, "iso_weekday", weekday)

			return root.formatter(cmd).Success(newDateResult(epoch.CivilFromDays(rd), rd))
		},
	}
	cmd.Flags().Int32Var(&year, "iso-year", 1970, "ISO week-year")
	cmd.Flags().Uint8Var(&week, "week", 1, "ISO week (1-53)")
	cmd.Flags().Uint8Var(&weekday, "weekday", 1, "ISO weekday (Monday=1 … Sunday=7)")

	return cmd
}

// NewIsoWeeksCommand creates the "isoweeks" command.
func NewIsoWeeksCommand(root *RootOptions) *cobra.Command {
	var year int32

	cmd := &cobra.Command{
		Use:   "isoweeks",
		Short: "Number of ISO weeks (52 or 53) in an ISO week-year",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := calendar.ValidateYear(year); err != nil {
				return invalidInput(err)
			}
			root.Logger.Debug("isoweeks", "iso_year", year)

			return root.formatter(cmd).Success(isoWeeksResult{IsoYear: year, Weeks: isoweek.WeeksInYear(year)})
		},
	}
	cmd.Flags().Int32Var(&year, "iso-year", 1970, "ISO week-year")

	return cmd
}
