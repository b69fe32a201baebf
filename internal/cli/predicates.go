package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/datealgo/calendar"
)

// NewLeapCommand creates the "leap" command.
func NewLeapCommand(root *RootOptions) *cobra.Command {
	var year int32

	cmd := &cobra.Command{
		Use:   "leap",
		Short: "Report whether a year is a leap year",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := calendar.ValidateYear(year); err != nil {
				return invalidInput(err)
			}
			root.Logger.Debug("leap", "year", year)

			return root.formatter(cmd).Success(leapResult{
				Year:       year,
				Leap:       calendar.IsLeapYear(year),
				DaysInYear: calendar.DaysInYear(year),
			})
		},
	}
	cmd.Flags().Int32Var(&year, "year", 1970, "proleptic Gregorian year")

	return cmd
}

// NewDaysInMonthCommand creates the "days-in-month" command.
func NewDaysInMonthCommand(root *RootOptions) *cobra.Command {
	var (
		year  int32
		month uint8
	)

	cmd := &cobra.Command{
		Use:   "days-in-month",
		Short: "Number of days in a month",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := calendar.ValidateYear(year); err != nil {
				return invalidInput(err)
			}
			if err := calendar.ValidateMonth(month); err != nil {
				return invalidInput(err)
			}
			root.Logger.Debug("days-in-month", "year", year, "month", month)

			return root.formatter(cmd).Success(daysInMonthResult{
				Year:  year,
				Month: month,
				Days:  calendar.DaysInMonth(year, month),
			})
		},
	}
	cmd.Flags().Int32Var(&year, "year", 1970, "proleptic Gregorian year")
	cmd.Flags().Uint8Var(&month, "month", 1, "month (1-12)")

	return cmd
}
