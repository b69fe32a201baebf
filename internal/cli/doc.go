// Package cli implements the datealgo command-line interface: one cobra
// subcommand per engine operation, with text, JSON or YAML output.
//
// The CLI is the engine's checked boundary. Every command range-checks its
// flags with the calendar/isoweek/instant validators before calling the fast
// path, and maps failures to exit codes (see ExitError).
package cli
