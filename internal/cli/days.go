package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/datealgo/calendar"
	"github.com/katalvlaran/datealgo/epoch"
)

// NewDaysCommand creates the "days" command: civil date → rata die.
func NewDaysCommand(root *RootOptions) *cobra.Command {
	var f dateFlags

	cmd := &cobra.Command{
		Use:   "days",
		Short: "Convert a civil date to a rata die",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.validate(); err != nil {
				return err
			}
			root.Logger.Debug("days", "year", f.Year, "month", f.Month, "day", f.Day)

			rd := epoch.DaysFromCivil(f.Year, f.Month, f.Day)
			return root.formatter(cmd).Success(dayCountResult{RataDie: rd})
		},
	}
	f.bind(cmd)

	return cmd
}

// NewDateCommand creates the "date" command: rata die → civil date.
func NewDateCommand(root *RootOptions) *cobra.Command {
	var rd int32

	cmd := &cobra.Command{
		Use:   "date",
		Short: "Convert a rata die to a civil date",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := calendar.ValidateRataDie(rd); err != nil {
				return invalidInput(err)
			}
			root.Logger.Debug("date", "rd", rd)

			return root.formatter(cmd).Success(newDateResult(epoch.CivilFromDays(rd), rd))
		},
	}
	cmd.Flags().Int32Var(&rd, "rd", 0, "rata die (days since 1970-01-01)")

	return cmd
}
