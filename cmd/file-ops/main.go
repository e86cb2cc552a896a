// Package main is the entry point for the file-ops CLI.
//
// This binary finds files and directories under a source tree by name,
// extension, substring, or pattern-file rules and applies a bulk operation
// (delete, copy, move) to the matches. It delegates all functionality to
// the internal/cli package, which defines cobra commands.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during the release process and default to development placeholders.
package main

import (
	"github.com/Rumi381/script-fileManagement/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package. This decouples
	// the build system from the CLI framework, keeping main.go minimal.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
