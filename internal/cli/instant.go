package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/datealgo/instant"
)

// NewInstantCommand creates the "instant" command: date and time of day →
// Unix seconds and nanoseconds.
func NewInstantCommand(root *RootOptions) *cobra.Command {
	var (
		f  dateFlags
		dt instant.DateTime
	)

	cmd := &cobra.Command{
		Use:   "instant",
		Short: "Unix instant of a UTC date and time of day",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dt.Year, dt.Month, dt.Day = f.Year, f.Month, f.Day
			root.Logger.Debug("instant", "datetime", dt)

			in, ok := instant.FromDateTimeValue(dt)
			if !ok {
				if err := instant.Validate(dt); err != nil {
					return invalidInput(err)
				}
				// Checked-arithmetic overflow; unreachable while the year bounds hold.
				return WrapExitError(ExitFailure, "no representable instant", instant.ErrInstantOutOfRange)
			}
			return root.formatter(cmd).Success(instantResult{Seconds: in.Seconds, Nanoseconds: in.Nanoseconds})
		},
	}
	f.bind(cmd)
	cmd.Flags().Uint8Var(&dt.Hour, "hour", 0, "hour (0-23)")
	cmd.Flags().Uint8Var(&dt.Minute, "minute", 0, "minute (0-59)")
	cmd.Flags().Uint8Var(&dt.Second, "second", 0, "second (0-59)")
	cmd.Flags().Uint32Var(&dt.Nanosecond, "nanosecond", 0, "nanosecond (0-999999999)")

	return cmd
}

// NewDateTimeCommand creates the "datetime" command: Unix seconds and
// nanoseconds → date and time of day.
func NewDateTimeCommand(root *RootOptions) *cobra.Command {
	var in instant.Instant

	cmd := &cobra.Command{
		Use:   "datetime",
		Short: "UTC date and time of day of a Unix instant",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := instant.ValidateInstant(in); err != nil {
				return invalidInput(err)
			}
			root.Logger.Debug("datetime", "seconds", in.Seconds, "nanoseconds", in.Nanoseconds)

			dt, ok := instant.ToDateTime(in)
			if !ok {
				return WrapExitError(ExitFailure, "no representable date-time", instant.ErrInstantOutOfRange)
			}
			return root.formatter(cmd).Success(dateTimeResult(dt))
		},
	}
	cmd.Flags().Int64Var(&in.Seconds, "seconds", 0, "seconds since 1970-01-01T00:00:00Z")
	cmd.Flags().Uint32Var(&in.Nanoseconds, "nanoseconds", 0, "nanoseconds (0-999999999)")

	return cmd
}
