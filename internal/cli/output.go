package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Process exit codes. Anything the user typed wrong, from an unknown flag to
// February 30, is ExitCommandError; ExitFailure is left for well-formed input
// whose answer cannot be represented.
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitCommandError = 2
)

// ExitError carries the exit code a command failure maps to.
type ExitError struct {
	Code    int
	Message string
	Err     error // cause, matched by errors.Is through Unwrap
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// NewExitError returns an ExitError with no cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError returns an ExitError around err.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode maps the error returned by the root command to a process exit
// code. Errors that never passed through an ExitError (cobra internals,
// write failures) count as ExitFailure.
func GetExitCode(err error) int {
	var exitErr *ExitError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	default:
		return ExitFailure
	}
}

// invalidInput wraps a validator error as a command error.
func invalidInput(err error) error {
	return WrapExitError(ExitCommandError, "invalid input", err)
}

// flagError is installed as the root FlagErrorFunc: pflag parse failures,
// including values that overflow the flag's integer type, are bad input.
func flagError(_ *cobra.Command, err error) error {
	return WrapExitError(ExitCommandError, "invalid flags", err)
}

// noArgs rejects positional arguments as a command error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return WrapExitError(ExitCommandError, "invalid arguments", err)
	}
	return nil
}

// texter is implemented by every result type for the text format.
type texter interface {
	Text() string
}

// OutputFormatter renders results as text, JSON or YAML.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Success writes one result in the configured format.
func (f *OutputFormatter) Success(data texter) error {
	switch f.Format {
	case "json":
		return json.NewEncoder(f.Writer).Encode(data)
	case "yaml":
		out, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		_, err = f.Writer.Write(out)
		return err
	default:
		_, err := fmt.Fprintln(f.Writer, data.Text())
		return err
	}
}
