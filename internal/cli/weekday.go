package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/datealgo/weekday"
)

// NewWeekdayCommand creates the "weekday" command.
func NewWeekdayCommand(root *RootOptions) *cobra.Command {
	var f dayFlags

	cmd := &cobra.Command{
		Use:   "weekday",
		Short: "Weekday (Monday=1 … Sunday=7) of a rata die or civil date",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("rd") {
				rd, err := f.resolve(cmd)
				if err != nil {
					return err
				}
				root.Logger.Debug("weekday", "rd", rd)
				return root.formatter(cmd).Success(newWeekdayResult(weekday.FromDays(rd)))
			}
			if err := f.validate(); err != nil {
				return err
			}
			root.Logger.Debug("weekday", "year", f.Year, "month", f.Month, "day", f.Day)

			return root.formatter(cmd).Success(newWeekdayResult(weekday.FromCivil(f.Year, f.Month, f.Day)))
		},
	}
	f.bind(cmd)

	return cmd
}
