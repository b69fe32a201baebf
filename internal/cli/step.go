package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/datealgo/calendar"
	"github.com/katalvlaran/datealgo/epoch"
	"github.com/katalvlaran/datealgo/step"
)

// NewNextCommand creates the "next" command.
func NewNextCommand(root *RootOptions) *cobra.Command {
	return newStepCommand(root, "next", "Date one day after the given date", 1)
}

// NewPrevCommand creates the "prev" command.
func NewPrevCommand(root *RootOptions) *cobra.Command {
	return newStepCommand(root, "prev", "Date one day before the given date", -1)
}

// newStepCommand builds next/prev. The engine does not clamp at the ends of
// the range, so the command refuses to step past calendar.RDMin/RDMax.
func newStepCommand(root *RootOptions, use, short string, delta int32) *cobra.Command {
	var f dateFlags

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.validate(); err != nil {
				return err
			}
			target := epoch.DaysFromCivil(f.Year, f.Month, f.Day) + delta
			if err := calendar.ValidateRataDie(target); err != nil {
				return invalidInput(err)
			}
			root.Logger.Debug(use, "year", f.Year, "month", f.Month, "day", f.Day)

			var d calendar.Date
			if delta > 0 {
				d = step.Next(f.Year, f.Month, f.Day)
			} else {
				d = step.Prev(f.Year, f.Month, f.Day)
			}
			return root.formatter(cmd).Success(newDateResult(d, target))
		},
	}
	f.bind(cmd)

	return cmd
}
