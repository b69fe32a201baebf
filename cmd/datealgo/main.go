package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/datealgo/internal/cli"
)

// main is the entrypoint for the datealgo command.
func main() {
	// Commands replace this once flags are parsed.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

// run executes the root command and maps its error to an exit code.
func run(outW, errW io.Writer, args []string) int {
	cmd := cli.NewRootCommand()
	cmd.SetOut(outW)
	cmd.SetErr(errW)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(errW, "Error:", err)
	}

	return cli.GetExitCode(err)
}
