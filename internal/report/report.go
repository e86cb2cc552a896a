package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/Rumi381/script-fileManagement/internal/model"
)

const (
	// sampleLimit caps the example paths shown per item class in the
	// pre-confirmation summary (verbose mode shows all).
	sampleLimit = 3

	// errorLimit caps the item errors rendered after a batch; the
	// remainder is reported as a count.
	errorLimit = 5
)

// Reporter renders all user-facing output for one run.
type Reporter struct {
	out     io.Writer
	verbose bool
	quiet   bool
}

// New creates a Reporter writing to out. In quiet mode only errors are
// rendered; in verbose mode sample lists are not truncated.
func New(out io.Writer, verbose, quiet bool) *Reporter {
	return &Reporter{out: out, verbose: verbose, quiet: quiet}
}

// NoMatches reports an empty match set. In exclude-all-but mode the wording
// flips, because an empty set there means everything is kept.
func (r *Reporter) NoMatches(sourceDir string, excludeAllBut bool) {
	if r.quiet {
		return
	}
	if excludeAllBut {
		fmt.Fprintln(r.out, "No files found outside your keep criteria. Everything will be kept.")
		return
	}
	fmt.Fprintf(r.out, "No matching files or directories found in %s\n", sourceDir)
}

// Summary renders the match counts and sample paths shown before the
// confirmation prompt.
func (r *Reporter) Summary(result *model.MatchResult, excludeAllBut bool) {
	if r.quiet {
		return
	}

	if excludeAllBut {
		fmt.Fprintf(r.out, "\n%s\n", pterm.Bold.Sprintf(
			"Found %d items that DON'T match your criteria (will be processed):", result.Total()))
	} else {
		fmt.Fprintf(r.out, "\n%s\n", pterm.Bold.Sprintf(
			"Found %d items to process:", result.Total()))
	}

	r.sampleList("files", result.Files)
	r.sampleList("directories", result.Dirs)
}

// sampleList prints one item class with up to sampleLimit examples,
// or the full list in verbose mode.
func (r *Reporter) sampleList(label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(r.out, " - %d %s\n", len(items), label)

	shown := items
	if !r.verbose && len(items) > sampleLimit {
		shown = items[:sampleLimit]
	}
	for _, item := range shown {
		fmt.Fprintf(r.out, "   * %s\n", item)
	}
	if rest := len(items) - len(shown); rest > 0 {
		fmt.Fprintf(r.out, "   * ... and %d more %s\n", rest, label)
	}
}

// DryRunNotice announces that no items will be modified.
func (r *Reporter) DryRunNotice() {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.out, "\n%s\n", pterm.Bold.Sprint("DRY RUN: no items will be modified."))
}

// DryRunPreview renders the per-item "would do" messages for one item
// class. Delete has no destination; copy and move show the target path.
func (r *Reporter) DryRunPreview(op model.Operation, items []string, destPathFor func(item string) string) {
	if r.quiet {
		return
	}
	for _, item := range items {
		if op == model.OpDelete {
			fmt.Fprintf(r.out, "Would delete: %s\n", item)
			continue
		}
		fmt.Fprintf(r.out, "Would %s: %s -> %s\n", op, item, destPathFor(item))
	}
}

// Outcome renders the post-batch summary: processed count, then the first
// errorLimit item errors with the remainder counted.
func (r *Reporter) Outcome(outcome *model.OperationOutcome) {
	if !r.quiet {
		fmt.Fprintf(r.out, "\nOperation completed. %d items processed.\n", outcome.ProcessedCount)
	}

	if !outcome.Failed() {
		return
	}

	// Errors are rendered even in quiet mode.
	fmt.Fprintf(r.out, "\nErrors occurred for %d items:\n", len(outcome.Errors))
	shown := outcome.Errors
	if len(shown) > errorLimit {
		shown = shown[:errorLimit]
	}
	for _, e := range shown {
		fmt.Fprintf(r.out, " - %s: %s\n", e.Path, e.Message)
	}
	if rest := len(outcome.Errors) - len(shown); rest > 0 {
		fmt.Fprintf(r.out, " - ... and %d more errors\n", rest)
	}
}

// RunReport is the machine-readable result rendered in --json mode.
type RunReport struct {
	Operation      string            `json:"operation"`
	SourceDir      string            `json:"sourceDir"`
	DestDir        string            `json:"destDir,omitempty"`
	DryRun         bool              `json:"dryRun"`
	MatchedFiles   int               `json:"matchedFiles"`
	MatchedDirs    int               `json:"matchedDirs"`
	ProcessedCount int               `json:"processedCount"`
	Errors         []model.ItemError `json:"errors,omitempty"`
}

// JSON writes the run report as indented JSON.
func (r *Reporter) JSON(rep *RunReport) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run report: %w", err)
	}
	_, err = fmt.Fprintln(r.out, string(data))
	return err
}

// Confirm asks a yes/no question on the terminal and returns the answer.
// The default is "no" so an accidental Enter never destroys anything.
func Confirm(message string) bool {
	ok, _ := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(false).
		Show(message)
	return ok
}
