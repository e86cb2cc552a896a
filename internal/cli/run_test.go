// Package cli — run_test.go exercises the operation commands end to end
// against an in-memory filesystem, plus the small pure helpers in run.go.
//
// The package-level appFs and confirm variables are swapped per test so no
// test touches the real filesystem or blocks on an interactive prompt.
package cli

import (
	"io"
	"os"
	"testing"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rumi381/script-fileManagement/internal/config"
)

func TestMain(m *testing.M) {
	// Styled output would embed ANSI escape codes in assertions.
	pterm.DisableStyling()
	os.Exit(m.Run())
}

// setupCLITest swaps the filesystem and confirmation prompt for the duration
// of one test and resets the persistent-flag globals.
func setupCLITest(t *testing.T, answer bool) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()

	prevFs, prevConfirm := appFs, confirm
	prevJSON, prevVerbose, prevQuiet, prevConfig := jsonOutput, verbose, quiet, configPath
	appFs = fs
	confirm = func(message string) bool { return answer }
	jsonOutput, verbose, quiet, configPath = false, false, true, ""

	t.Cleanup(func() {
		appFs = prevFs
		confirm = prevConfirm
		jsonOutput, verbose, quiet, configPath = prevJSON, prevVerbose, prevQuiet, prevConfig
	})

	return fs
}

// runCLI executes the root command with the given arguments, discarding
// cobra's own output streams.
func runCLI(args ...string) error {
	rootCmd := NewRootCommand()
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func exists(t *testing.T, fs afero.Fs, path string) bool {
	t.Helper()
	ok, err := afero.Exists(fs, path)
	require.NoError(t, err)
	return ok
}

func TestDeleteCommand_RemovesMatchedFiles(t *testing.T) {
	fs := setupCLITest(t, true)
	writeFile(t, fs, "/src/a.tmp", "x")
	writeFile(t, fs, "/src/b.txt", "keep")
	writeFile(t, fs, "/src/sub/c.tmp", "x")

	err := runCLI("delete", "--source-dir", "/src", "--extensions", "tmp", "--no-confirm")
	require.NoError(t, err)

	assert.False(t, exists(t, fs, "/src/a.tmp"))
	assert.False(t, exists(t, fs, "/src/sub/c.tmp"))
	assert.True(t, exists(t, fs, "/src/b.txt"))
}

func TestDeleteCommand_DryRunLeavesTreeIntact(t *testing.T) {
	fs := setupCLITest(t, true)
	writeFile(t, fs, "/src/a.tmp", "x")
	writeFile(t, fs, "/src/b.tmp", "x")

	err := runCLI("delete", "--source-dir", "/src", "--extensions", "tmp", "--dry-run")
	require.NoError(t, err)

	assert.True(t, exists(t, fs, "/src/a.tmp"))
	assert.True(t, exists(t, fs, "/src/b.tmp"))
}

func TestDeleteCommand_DeclinedConfirmationCancels(t *testing.T) {
	fs := setupCLITest(t, false)
	writeFile(t, fs, "/src/a.tmp", "x")

	// A declined prompt is a clean exit, not an error.
	err := runCLI("delete", "--source-dir", "/src", "--extensions", "tmp")
	require.NoError(t, err)

	assert.True(t, exists(t, fs, "/src/a.tmp"))
}

func TestDeleteCommand_PatternFile(t *testing.T) {
	fs := setupCLITest(t, true)
	writeFile(t, fs, "/patterns.txt", "# cleanup rules\n.log\ntemp.dat\n")
	writeFile(t, fs, "/src/app.log", "x")
	writeFile(t, fs, "/src/temp.dat", "x")
	writeFile(t, fs, "/src/keep.txt", "keep")

	err := runCLI("delete", "--source-dir", "/src", "--patterns-file", "/patterns.txt", "--no-confirm")
	require.NoError(t, err)

	assert.False(t, exists(t, fs, "/src/app.log"))
	assert.False(t, exists(t, fs, "/src/temp.dat"))
	assert.True(t, exists(t, fs, "/src/keep.txt"))
}

func TestDeleteCommand_MissingSourceDir(t *testing.T) {
	setupCLITest(t, true)

	err := runCLI("delete", "--source-dir", "/nope", "--extensions", "tmp", "--no-confirm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestDeleteCommand_NoCriteriaIsAnError(t *testing.T) {
	fs := setupCLITest(t, true)
	writeFile(t, fs, "/src/a.tmp", "x")

	err := runCLI("delete", "--source-dir", "/src", "--no-confirm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "criteria")
}

func TestCopyCommand_CopiesRelativePaths(t *testing.T) {
	fs := setupCLITest(t, true)
	writeFile(t, fs, "/src/a.txt", "alpha")
	writeFile(t, fs, "/src/sub/b.txt", "beta")
	require.NoError(t, fs.MkdirAll("/dst", 0o755))

	err := runCLI("copy", "--source-dir", "/src", "--dest-dir", "/dst", "--extensions", "txt", "--no-confirm")
	require.NoError(t, err)

	got, readErr := afero.ReadFile(fs, "/dst/sub/b.txt")
	require.NoError(t, readErr)
	assert.Equal(t, "beta", string(got))
	assert.True(t, exists(t, fs, "/dst/a.txt"))
	assert.True(t, exists(t, fs, "/src/a.txt"), "copy must leave the source in place")
}

func TestCopyCommand_CreatesMissingDestination(t *testing.T) {
	fs := setupCLITest(t, true)
	writeFile(t, fs, "/src/a.txt", "alpha")

	err := runCLI("copy", "--source-dir", "/src", "--dest-dir", "/fresh", "--extensions", "txt", "--no-confirm")
	require.NoError(t, err)

	assert.True(t, exists(t, fs, "/fresh/a.txt"))
}

func TestCopyCommand_RequiresDestDir(t *testing.T) {
	fs := setupCLITest(t, true)
	writeFile(t, fs, "/src/a.txt", "alpha")

	err := runCLI("copy", "--source-dir", "/src", "--extensions", "txt", "--no-confirm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--dest-dir")
}

func TestMoveCommand_MovesFiles(t *testing.T) {
	fs := setupCLITest(t, true)
	writeFile(t, fs, "/src/a.bak", "old")
	writeFile(t, fs, "/src/b.txt", "keep")
	require.NoError(t, fs.MkdirAll("/archive", 0o755))

	err := runCLI("move", "--source-dir", "/src", "--dest-dir", "/archive", "--extensions", "bak", "--no-confirm")
	require.NoError(t, err)

	assert.False(t, exists(t, fs, "/src/a.bak"))
	assert.True(t, exists(t, fs, "/archive/a.bak"))
	assert.True(t, exists(t, fs, "/src/b.txt"))
}

func TestRunOperation_ConfigDefaultsApply(t *testing.T) {
	fs := setupCLITest(t, true)
	writeFile(t, fs, "/src/.fileops.yaml", "exclude_exact:\n  - keep.tmp\n")
	writeFile(t, fs, "/src/a.tmp", "x")
	writeFile(t, fs, "/src/keep.tmp", "protected")

	err := runCLI("delete", "--source-dir", "/src", "--extensions", "tmp", "--no-confirm")
	require.NoError(t, err)

	assert.False(t, exists(t, fs, "/src/a.tmp"))
	assert.True(t, exists(t, fs, "/src/keep.tmp"))
}

func TestApplyDefaults(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }

	tests := []struct {
		name     string
		flags    opFlags
		defaults *config.Defaults
		check    func(t *testing.T, f *opFlags)
	}{
		{
			name:     "nil defaults is a no-op",
			flags:    opFlags{patternsFile: "cli.txt"},
			defaults: nil,
			check: func(t *testing.T, f *opFlags) {
				assert.Equal(t, "cli.txt", f.patternsFile)
			},
		},
		{
			name:     "patterns file fills only when unset",
			flags:    opFlags{},
			defaults: &config.Defaults{PatternsFile: "default.txt"},
			check: func(t *testing.T, f *opFlags) {
				assert.Equal(t, "default.txt", f.patternsFile)
			},
		},
		{
			name:     "explicit patterns file wins over defaults",
			flags:    opFlags{patternsFile: "cli.txt"},
			defaults: &config.Defaults{PatternsFile: "default.txt"},
			check: func(t *testing.T, f *opFlags) {
				assert.Equal(t, "cli.txt", f.patternsFile)
			},
		},
		{
			name:     "recursive false maps to noRecursive",
			flags:    opFlags{},
			defaults: &config.Defaults{Recursive: boolPtr(false)},
			check: func(t *testing.T, f *opFlags) {
				assert.True(t, f.noRecursive)
			},
		},
		{
			name:  "exclusion lists are additive",
			flags: opFlags{excludeExact: []string{"a"}},
			defaults: &config.Defaults{
				ExcludeExact: []string{"b"},
				ExcludeDirs:  []string{"node_modules"},
			},
			check: func(t *testing.T, f *opFlags) {
				assert.Equal(t, []string{"a", "b"}, f.excludeExact)
				assert.Equal(t, []string{"node_modules"}, f.excludeDirs)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			// Registering flags writes each flag's default into the bound
			// field, so restore the preset fixture values afterwards.
			preset := tt.flags
			addOperationFlags(cmd, &tt.flags)
			tt.flags = preset
			applyDefaults(cmd, &tt.flags, tt.defaults)
			tt.check(t, &tt.flags)
		})
	}
}

func TestDirExists(t *testing.T) {
	fs := setupCLITest(t, true)
	require.NoError(t, fs.MkdirAll("/here", 0o755))
	writeFile(t, fs, "/file.txt", "x")

	ok, err := dirExists("/here")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = dirExists("/absent")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = dirExists("/file.txt")
	require.NoError(t, err)
	assert.False(t, ok, "a regular file is not a directory")
}
