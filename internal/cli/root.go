// Package cli implements the cobra-based CLI commands for file-ops.
//
// Each operation (delete, copy, move) is defined in its own file within
// this package; the shared matching-and-execution orchestration lives in
// run.go. This file defines the root command that serves as the parent for
// all subcommands and handles global flags.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Rumi381/script-fileManagement/internal/model"
	"github.com/Rumi381/script-fileManagement/internal/report"
)

// Global flag variables shared across all subcommands. They are bound to
// cobra persistent flags on the root command, which makes them available to
// every subcommand automatically.
var (
	// jsonOutput switches stdout to a machine-readable run report.
	// Human-oriented progress output moves to stderr in this mode.
	jsonOutput bool

	// verbose enables debug logging and untruncated sample lists.
	verbose bool

	// quiet suppresses all non-error output.
	quiet bool

	// configPath points at an explicit defaults file. When empty, the
	// well-known names are probed in the source directory.
	configPath string
)

// appFs is the filesystem every command operates on. Tests swap in an
// afero.NewMemMapFs so the whole CLI runs against in-memory fixtures.
var appFs afero.Fs = afero.NewOsFs()

// confirm asks the interactive yes/no question. A variable so tests can
// script the answer.
var confirm = report.Confirm

// Version, Commit and Date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// The root command itself performs no action — it provides help text and
// global flags; the operations are subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "file-ops",
		Short: "Find files and directories by name rules and bulk delete, copy, or move them",
		Long: `file-ops locates files and directories under a source tree by extension,
exact name, substring, or directory name — from flags, a pattern file, or
both — and applies a bulk operation to the matches.

Safety features include a dry-run preview, an interactive confirmation
prompt, and an optional timestamped backup of the source tree.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically;
		// Execute formats them itself (text or JSON based on --json).
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output a machine-readable run report")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show every matched path and enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all non-error output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Defaults file (default: .fileops.{yaml,yml,json,jsonc} in the source directory)")

	rootCmd.AddCommand(NewDeleteCommand())
	rootCmd.AddCommand(NewCopyCommand())
	rootCmd.AddCommand(NewMoveCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes. CLIError values
// carry their own exit codes; other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format (JSON or
// text) based on the --json global flag. Errors always go to stderr, even
// in JSON mode, because stdout is reserved for command output.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}
