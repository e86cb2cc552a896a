// Package cli — run.go holds the matching-and-execution orchestration
// shared by the delete, copy, and move commands.
//
// Orchestration steps:
//  1. Validate the source (and, for copy/move, destination) directories
//  2. Load defaults-file values for flags the user did not set
//  3. Parse the pattern file, if any, and resolve the MatchConfig
//  4. Walk the tree into a MatchResult
//  5. Render the summary and obtain confirmation
//  6. Create the backup, if requested
//  7. Execute the file batch, then the directory batch
//  8. Report the combined outcome (text or JSON)
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rumi381/script-fileManagement/internal/backup"
	"github.com/Rumi381/script-fileManagement/internal/config"
	"github.com/Rumi381/script-fileManagement/internal/executor"
	"github.com/Rumi381/script-fileManagement/internal/logging"
	"github.com/Rumi381/script-fileManagement/internal/matcher"
	"github.com/Rumi381/script-fileManagement/internal/model"
	"github.com/Rumi381/script-fileManagement/internal/pattern"
	"github.com/Rumi381/script-fileManagement/internal/report"
	"github.com/Rumi381/script-fileManagement/internal/rules"
)

// opFlags holds the flag values shared by every operation command.
type opFlags struct {
	sourceDir string
	destDir   string

	extensions        []string
	containsExtension bool
	exactMatch        []string
	includeDirs       bool
	targetDirs        []string

	patternsFile         string
	patternsExclude      bool
	patternsExcludeFiles bool
	patternsExcludeDirs  bool
	patternsOverride     bool

	excludeExtensions []string
	excludeExact      []string
	excludeContains   []string
	excludeDirs       []string
	excludeAllBut     bool

	noRecursive bool
	noConfirm   bool
	dryRun      bool
	backup      bool
}

// addOperationFlags registers the shared flag set on an operation command.
func addOperationFlags(cmd *cobra.Command, f *opFlags) {
	cmd.Flags().StringVar(&f.sourceDir, "source-dir", ".", "Source directory to search in")

	cmd.Flags().StringSliceVar(&f.extensions, "extensions", nil, "File extensions to target (e.g. jpg,png,txt)")
	cmd.Flags().BoolVar(&f.containsExtension, "contains-extension", false, "Match files containing the extension anywhere (file.msg.1 matches msg)")
	cmd.Flags().StringSliceVar(&f.exactMatch, "exact-match", nil, "Exact filenames to target (including extension)")
	cmd.Flags().BoolVar(&f.includeDirs, "include-dirs", false, "Include directories in the operation")
	cmd.Flags().StringSliceVar(&f.targetDirs, "target-dirs", nil, "Directory names to target when --include-dirs is set")

	cmd.Flags().StringVar(&f.patternsFile, "patterns-file", "", "Pattern file with rules to match")
	cmd.Flags().BoolVar(&f.patternsExclude, "patterns-exclude", false, "Treat all pattern-file rules as exclusions")
	cmd.Flags().BoolVar(&f.patternsExcludeFiles, "patterns-exclude-files", false, "Treat only the file rules as exclusions (keeps directories)")
	cmd.Flags().BoolVar(&f.patternsExcludeDirs, "patterns-exclude-dirs", false, "Treat only the directory rules as exclusions (keeps files)")
	cmd.Flags().BoolVar(&f.patternsOverride, "patterns-override", false, "Pattern-file rules replace, rather than supplement, command-line rules")

	cmd.Flags().StringSliceVar(&f.excludeExtensions, "exclude-extensions", nil, "File extensions to exclude")
	cmd.Flags().StringSliceVar(&f.excludeExact, "exclude-exact", nil, "Exact filenames to exclude")
	cmd.Flags().StringSliceVar(&f.excludeContains, "exclude-contains", nil, "Exclude files whose names contain these strings")
	cmd.Flags().StringSliceVar(&f.excludeDirs, "exclude-dirs", nil, "Directory names to keep out of the results")
	cmd.Flags().BoolVar(&f.excludeAllBut, "exclude-all-but", false, "Process every file EXCEPT those matching the criteria")

	cmd.Flags().BoolVar(&f.noRecursive, "no-recursive", false, "Do not search subdirectories")
	cmd.Flags().BoolVar(&f.noConfirm, "no-confirm", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Show what would be done without doing it")
	cmd.Flags().BoolVar(&f.backup, "backup", false, "Copy the source tree to a timestamped backup first")
}

// runOperation executes one operation end to end. Returned errors carry
// exit codes via model.CLIError; a declined confirmation is not an error.
func runOperation(cmd *cobra.Command, op model.Operation, f *opFlags) error {
	log := logging.New(verbose, quiet)

	// Human-oriented output moves to stderr in JSON mode so stdout stays
	// parseable.
	var humanOut io.Writer = os.Stdout
	if jsonOutput {
		humanOut = os.Stderr
	}
	rep := report.New(humanOut, verbose, quiet)

	// The machine-readable report always goes to stdout; that is the whole
	// point of moving human output aside in JSON mode.
	jsonRep := report.New(os.Stdout, verbose, quiet)

	// Step 1: directory validation.
	if ok, err := dirExists(f.sourceDir); err != nil || !ok {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("source directory %q does not exist", f.sourceDir), err)
	}
	if op.RequiresDest() && f.destDir == "" {
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("the %s operation requires a destination directory (--dest-dir)", op))
	}

	// Step 2: defaults file. Values apply only to flags the user left
	// untouched on the command line.
	defaults, err := config.Load(appFs, configPath, f.sourceDir)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to load config file", err)
	}
	applyDefaults(cmd, f, defaults)

	// Step 3: pattern file and rule resolution.
	mode, err := rules.ModeFromFlags(f.patternsExclude, f.patternsExcludeFiles, f.patternsExcludeDirs)
	if err != nil {
		return err
	}

	var set *model.PatternSet
	if f.patternsFile != "" {
		set, err = pattern.ParseFile(appFs, f.patternsFile)
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to read pattern file", err)
		}
	}

	cfg, err := rules.Resolve(rules.Criteria{
		Extensions:        f.extensions,
		ExactNames:        f.exactMatch,
		ContainsExtension: f.containsExtension,
		IncludeDirs:       f.includeDirs,
		TargetDirs:        f.targetDirs,
		ExcludeExtensions: f.excludeExtensions,
		ExcludeExact:      f.excludeExact,
		ExcludeContains:   f.excludeContains,
		ExcludeDirs:       f.excludeDirs,
		ExcludeAllBut:     f.excludeAllBut,
		Override:          f.patternsOverride,
	}, set, mode)
	if err != nil {
		return err
	}

	// Step 4: tree walk.
	result, err := matcher.New(appFs, log).Match(f.sourceDir, cfg, !f.noRecursive)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to scan source directory", err)
	}

	if result.Total() == 0 {
		rep.NoMatches(f.sourceDir, cfg.ExcludeAllBut)
		if jsonOutput {
			return jsonRep.JSON(&report.RunReport{
				Operation: op.String(),
				SourceDir: f.sourceDir,
				DestDir:   f.destDir,
				DryRun:    f.dryRun,
			})
		}
		return nil
	}

	// Step 5: summary and confirmation.
	rep.Summary(result, cfg.ExcludeAllBut)

	if f.dryRun {
		rep.DryRunNotice()
	} else if !f.noConfirm {
		if !confirm(fmt.Sprintf("Are you sure you want to %s these %d items?", op, result.Total())) {
			fmt.Fprintln(humanOut, "Operation cancelled.")
			return nil
		}
	}

	// Destination handling for copy/move: create it if missing, asking
	// first unless confirmation is disabled.
	if op.RequiresDest() && !f.dryRun {
		if err := ensureDestDir(f, humanOut); err != nil {
			return err
		}
	}

	// Step 6: backup. A failure is reported, not fatal — the user decides
	// whether to continue (or continues implicitly with --no-confirm).
	if f.backup && !f.dryRun {
		if _, backupErr := backup.Create(appFs, log, f.sourceDir, time.Now()); backupErr != nil {
			log.Error().Err(backupErr).Msg("backup failed")
			if !f.noConfirm && !confirm("Backup failed. Continue anyway?") {
				fmt.Fprintln(humanOut, "Operation cancelled.")
				return nil
			}
		}
	}

	// Step 7: files first, then directories, so directory deletion cannot
	// race with file operations beneath it.
	exec := executor.New(appFs, log)

	if f.dryRun {
		destFor := func(item string) string {
			rel, relErr := filepath.Rel(f.sourceDir, item)
			if relErr != nil {
				return filepath.Join(f.destDir, item)
			}
			return filepath.Join(f.destDir, rel)
		}
		rep.DryRunPreview(op, result.Files, destFor)
		rep.DryRunPreview(op, result.Dirs, destFor)
	}

	outcome := exec.Execute(op, result.Files, f.sourceDir, f.destDir, false, f.dryRun)
	outcome.Merge(exec.Execute(op, result.Dirs, f.sourceDir, f.destDir, true, f.dryRun))

	// Step 8: reporting.
	rep.Outcome(outcome)
	if jsonOutput {
		if err := jsonRep.JSON(&report.RunReport{
			Operation:      op.String(),
			SourceDir:      f.sourceDir,
			DestDir:        f.destDir,
			DryRun:         f.dryRun,
			MatchedFiles:   result.FileCount(),
			MatchedDirs:    result.DirCount(),
			ProcessedCount: outcome.ProcessedCount,
			Errors:         outcome.Errors,
		}); err != nil {
			return err
		}
	}

	if outcome.Failed() {
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("%d of %d items failed", len(outcome.Errors), result.Total()))
	}
	return nil
}

// applyDefaults copies defaults-file values into the flag bag for flags the
// user did not set explicitly. Exclusion lists are additive.
func applyDefaults(cmd *cobra.Command, f *opFlags, d *config.Defaults) {
	if d == nil {
		return
	}

	if f.patternsFile == "" && d.PatternsFile != "" {
		f.patternsFile = d.PatternsFile
	}
	if d.Recursive != nil && !cmd.Flags().Changed("no-recursive") {
		f.noRecursive = !*d.Recursive
	}
	if d.Backup != nil && !cmd.Flags().Changed("backup") {
		f.backup = *d.Backup
	}

	f.excludeExtensions = append(f.excludeExtensions, d.ExcludeExtensions...)
	f.excludeExact = append(f.excludeExact, d.ExcludeExact...)
	f.excludeContains = append(f.excludeContains, d.ExcludeContains...)
	f.excludeDirs = append(f.excludeDirs, d.ExcludeDirs...)
}

// ensureDestDir creates the destination directory when it does not exist,
// prompting first unless confirmation is disabled.
func ensureDestDir(f *opFlags, humanOut io.Writer) error {
	ok, err := dirExists(f.destDir)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to check destination directory %q", f.destDir), err)
	}
	if ok {
		return nil
	}

	if !f.noConfirm {
		if !confirm(fmt.Sprintf("Destination directory %q doesn't exist. Create it?", f.destDir)) {
			return model.NewCLIError(model.ExitGeneralError, "operation cancelled: destination directory missing")
		}
	}
	if err := appFs.MkdirAll(f.destDir, 0o755); err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to create destination directory %q", f.destDir), err)
	}
	return nil
}

// dirExists reports whether path exists and is a directory on appFs.
func dirExists(path string) (bool, error) {
	info, err := appFs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
