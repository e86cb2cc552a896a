// Package model defines the domain types for the file-ops CLI.
//
// All values here are transient: one invocation builds a MatchConfig, walks
// the tree into a MatchResult, and collects an OperationOutcome. Nothing is
// persisted between runs.
package model

import (
	"fmt"
	"strings"
)

// Operation represents the bulk operation applied to matched items.
type Operation string

const (
	// OpDelete removes matched files and directory trees.
	OpDelete Operation = "delete"

	// OpCopy copies matched items under the destination directory,
	// preserving their paths relative to the source directory.
	OpCopy Operation = "copy"

	// OpMove relocates matched items under the destination directory.
	OpMove Operation = "move"
)

// String returns the string representation of Operation.
// This method satisfies the fmt.Stringer interface.
func (o Operation) String() string {
	return string(o)
}

// IsValid checks whether the Operation value is one of the
// predefined valid operations.
func (o Operation) IsValid() bool {
	switch o {
	case OpDelete, OpCopy, OpMove:
		return true
	default:
		return false
	}
}

// RequiresDest reports whether the operation needs a destination directory.
// Delete is the only operation that works without one.
func (o Operation) RequiresDest() bool {
	return o == OpCopy || o == OpMove
}

// ParseOperation converts a string to an Operation.
// Returns an error if the string does not match any valid operation.
func ParseOperation(s string) (Operation, error) {
	op := Operation(strings.ToLower(s))
	if !op.IsValid() {
		return "", fmt.Errorf("invalid operation: %q (valid: delete, copy, move)", s)
	}
	return op, nil
}

// PatternMode selects how rules from a pattern file are merged into the
// resolved MatchConfig. The modes are mutually exclusive.
//
// Merge behavior per mode:
//   - ModeNormal: file rules supplement (or, with the override flag, replace)
//     the command-line inclusion criteria; contains rules always become
//     exclusions.
//   - ModeExcludeAll: every file rule becomes an exclusion and everything
//     not excluded is matched.
//   - ModeExcludeFiles: file rules for files become exclusions, directory
//     rules stay inclusions.
//   - ModeExcludeDirs: directory rules become exclusions, file rules stay
//     inclusions, and all non-excluded files and directories are matched.
type PatternMode string

const (
	// ModeNormal treats pattern-file rules as inclusion criteria.
	ModeNormal PatternMode = "normal"

	// ModeExcludeAll treats every pattern-file rule as an exclusion.
	ModeExcludeAll PatternMode = "exclude-all"

	// ModeExcludeFiles treats only the file rules (extensions, exact names,
	// contains) as exclusions; directory rules remain inclusions.
	ModeExcludeFiles PatternMode = "exclude-files"

	// ModeExcludeDirs treats only the directory rules as exclusions;
	// file rules remain inclusions.
	ModeExcludeDirs PatternMode = "exclude-dirs"
)

// String returns the string representation of PatternMode.
func (m PatternMode) String() string {
	return string(m)
}

// IsValid checks whether the PatternMode value is one of the
// predefined valid modes.
func (m PatternMode) IsValid() bool {
	switch m {
	case ModeNormal, ModeExcludeAll, ModeExcludeFiles, ModeExcludeDirs:
		return true
	default:
		return false
	}
}

// PatternSet holds the four typed rule lists parsed from a pattern file.
// It is built once by the pattern parser and never mutated afterwards.
type PatternSet struct {
	// Extensions holds extension rules, lower-cased with a leading dot
	// (e.g. ".jpg").
	Extensions []string

	// Directories holds bare directory names (trailing slash stripped).
	Directories []string

	// Exact holds literal filenames, stored verbatim.
	Exact []string

	// Contains holds substring rules (leading asterisk stripped).
	// They are matched case-insensitively against filenames.
	Contains []string
}

// IsEmpty reports whether the set contains no rules at all.
func (p *PatternSet) IsEmpty() bool {
	return len(p.Extensions) == 0 && len(p.Directories) == 0 &&
		len(p.Exact) == 0 && len(p.Contains) == 0
}

// NormalizeExtension lower-cases an extension and ensures the leading dot.
// Both "tmp" and ".TMP" normalize to ".tmp". Matching code may assume every
// extension stored in a MatchConfig has passed through here.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// NormalizeExtensions applies NormalizeExtension to every element,
// returning a new slice. A nil input yields nil.
func NormalizeExtensions(exts []string) []string {
	if len(exts) == 0 {
		return nil
	}
	out := make([]string, len(exts))
	for i, e := range exts {
		out[i] = NormalizeExtension(e)
	}
	return out
}

// MatchConfig is the fully resolved rule set consumed by the tree matcher.
// It is produced by the rules resolver and treated as read-only afterwards.
//
// Invariants:
//   - ExcludeExtensions and IncludeExtensions are normalized (lower-case,
//     leading dot).
//   - If ExcludeAllBut is true, at least one inclusion field is non-empty.
type MatchConfig struct {
	// IncludeExtensions selects files by their extension.
	IncludeExtensions []string

	// IncludeExact selects files whose name equals one of these entries.
	IncludeExact []string

	// IncludeAllFiles selects every file that is not explicitly excluded.
	IncludeAllFiles bool

	// IncludeDirs enables directory matching against TargetDirNames.
	IncludeDirs bool

	// TargetDirNames lists bare directory names to match when IncludeDirs
	// is set.
	TargetDirNames []string

	// IncludeAllDirs selects every directory that is not explicitly excluded.
	IncludeAllDirs bool

	// ContainsExtensionMode widens extension matching to a substring check
	// against the whole filename, so ".msg" also matches "report.msg.1".
	ContainsExtensionMode bool

	// ExcludeExtensions vetoes files by extension.
	ExcludeExtensions []string

	// ExcludeExact vetoes files by literal name.
	ExcludeExact []string

	// ExcludeContains vetoes files whose name contains any of these
	// substrings (case-insensitive).
	ExcludeContains []string

	// ExcludeDirNames keeps directories with these bare names out of the
	// results. It does not prune the walk beneath them.
	ExcludeDirNames []string

	// ExcludeAllBut inverts selection: a file is processed only when it
	// matches neither the inclusion criteria nor an explicit exclusion.
	ExcludeAllBut bool
}

// HasFileCriteria reports whether any file-level inclusion rule is
// configured (extensions or exact names). When false and IncludeAllFiles is
// also false, the matcher falls back to matching every non-excluded file.
func (c *MatchConfig) HasFileCriteria() bool {
	return len(c.IncludeExtensions) > 0 || len(c.IncludeExact) > 0
}

// HasInclusionCriteria reports whether any positive selection rule is
// configured, including directory targeting and the include-all switches.
func (c *MatchConfig) HasInclusionCriteria() bool {
	return c.HasFileCriteria() || c.IncludeAllFiles ||
		(c.IncludeDirs && len(c.TargetDirNames) > 0)
}

// HasExclusionCriteria reports whether any veto rule is configured.
func (c *MatchConfig) HasExclusionCriteria() bool {
	return len(c.ExcludeExtensions) > 0 || len(c.ExcludeExact) > 0 ||
		len(c.ExcludeContains) > 0 || len(c.ExcludeDirNames) > 0
}

// MatchResult holds the items selected by one tree walk, in walk order.
// Files and directories are kept separate because the executor always
// processes the file batch before the directory batch.
type MatchResult struct {
	// Files holds matched file paths in walk order.
	Files []string

	// Dirs holds matched directory paths in walk order.
	Dirs []string
}

// FileCount returns the number of matched files.
func (r *MatchResult) FileCount() int { return len(r.Files) }

// DirCount returns the number of matched directories.
func (r *MatchResult) DirCount() int { return len(r.Dirs) }

// Total returns the combined number of matched items.
func (r *MatchResult) Total() int { return len(r.Files) + len(r.Dirs) }

// ItemError records a single failed item within a batch.
type ItemError struct {
	// Path is the item the operation failed on.
	Path string `json:"path"`

	// Message is the failure description.
	Message string `json:"message"`
}

// OperationOutcome aggregates the result of one executor batch.
// A batch never aborts on an item failure; failures accumulate here while
// the remaining items are still processed.
type OperationOutcome struct {
	// ProcessedCount is the number of items handled successfully
	// (or counted during a dry run).
	ProcessedCount int `json:"processedCount"`

	// Errors lists the items that failed, in batch order.
	Errors []ItemError `json:"errors,omitempty"`
}

// Merge appends another outcome to this one. The CLI uses it to combine the
// file batch and the directory batch into a single report.
func (o *OperationOutcome) Merge(other *OperationOutcome) {
	if other == nil {
		return
	}
	o.ProcessedCount += other.ProcessedCount
	o.Errors = append(o.Errors, other.Errors...)
}

// Failed reports whether any item in the batch failed.
func (o *OperationOutcome) Failed() bool {
	return len(o.Errors) > 0
}

// ExitCode defines the CLI exit codes. Scripts rely on a zero exit only
// when every matched item was processed without error.
type ExitCode int

const (
	// ExitSuccess indicates the command completed without item errors.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates a validation failure, a pattern-file
	// failure, or at least one failed item.
	ExitGeneralError ExitCode = 1
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
