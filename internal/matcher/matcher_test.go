package matcher

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rumi381/script-fileManagement/internal/model"
)

// newTestMatcher returns a matcher over an in-memory filesystem populated
// with the given files (directories are created implicitly) and explicit
// empty directories.
func newTestMatcher(t *testing.T, files []string, dirs []string) *Matcher {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte("x"), 0o644))
	}
	for _, d := range dirs {
		require.NoError(t, fs.MkdirAll(d, 0o755))
	}
	return New(fs, zerolog.Nop())
}

func join(elem ...string) string { return filepath.Join(elem...) }

// TestMatch_ExtensionCaseInsensitive pins the canonical scenario: with
// includeExtensions=[".tmp"], a.tmp and b.TMP match while c.txt does not.
func TestMatch_ExtensionCaseInsensitive(t *testing.T) {
	m := newTestMatcher(t, []string{
		join("src", "a.tmp"),
		join("src", "b.TMP"),
		join("src", "c.txt"),
	}, nil)

	cfg := &model.MatchConfig{IncludeExtensions: []string{".tmp"}}
	result, err := m.Match("src", cfg, true)
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{join("src", "a.tmp"), join("src", "b.TMP")},
		result.Files)
	assert.Empty(t, result.Dirs)
}

// TestMatch_ContainsExtensionMode verifies the substring widening for
// suffixed names like report.msg.1, and that it stays off by default.
func TestMatch_ContainsExtensionMode(t *testing.T) {
	files := []string{join("src", "report.msg.1"), join("src", "plain.msg")}

	t.Run("enabled matches suffixed names", func(t *testing.T) {
		m := newTestMatcher(t, files, nil)
		cfg := &model.MatchConfig{
			IncludeExtensions:     []string{".msg"},
			ContainsExtensionMode: true,
		}
		result, err := m.Match("src", cfg, true)
		require.NoError(t, err)
		assert.ElementsMatch(t,
			[]string{join("src", "report.msg.1"), join("src", "plain.msg")},
			result.Files)
	})

	t.Run("disabled matches only the actual extension", func(t *testing.T) {
		m := newTestMatcher(t, files, nil)
		cfg := &model.MatchConfig{IncludeExtensions: []string{".msg"}}
		result, err := m.Match("src", cfg, true)
		require.NoError(t, err)
		assert.Equal(t, []string{join("src", "plain.msg")}, result.Files)
	})
}

// TestMatch_ExactNames verifies literal filename inclusion.
func TestMatch_ExactNames(t *testing.T) {
	m := newTestMatcher(t, []string{
		join("src", "config.ini"),
		join("src", "sub", "config.ini"),
		join("src", "other.ini"),
	}, nil)

	cfg := &model.MatchConfig{IncludeExact: []string{"config.ini"}}
	result, err := m.Match("src", cfg, true)
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{join("src", "config.ini"), join("src", "sub", "config.ini")},
		result.Files)
}

// TestMatch_NoFileCriteriaMatchesEverythingNotExcluded verifies the
// fallback: with only exclusion criteria configured, every non-excluded
// file is selected.
func TestMatch_NoFileCriteriaMatchesEverythingNotExcluded(t *testing.T) {
	m := newTestMatcher(t, []string{
		join("src", "a.txt"),
		join("src", "b.bak"),
		join("src", "c.log"),
	}, nil)

	cfg := &model.MatchConfig{ExcludeExtensions: []string{".bak"}}
	result, err := m.Match("src", cfg, true)
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{join("src", "a.txt"), join("src", "c.log")},
		result.Files)
}

// TestMatch_Exclusions covers the three file veto kinds, including
// case-insensitive contains matching.
func TestMatch_Exclusions(t *testing.T) {
	m := newTestMatcher(t, []string{
		join("src", "keep.txt"),
		join("src", "skip.txt"),
		join("src", "My-Backup-plan.txt"),
		join("src", "old.bak"),
	}, nil)

	cfg := &model.MatchConfig{
		IncludeAllFiles:   true,
		ExcludeExact:      []string{"skip.txt"},
		ExcludeExtensions: []string{".bak"},
		ExcludeContains:   []string{"backup"},
	}
	result, err := m.Match("src", cfg, true)
	require.NoError(t, err)

	assert.Equal(t, []string{join("src", "keep.txt")}, result.Files)
}

// TestMatch_ExcludeAllBut verifies the inverted keep-set semantics: files
// matching neither the keep criteria nor an exclusion are processed.
func TestMatch_ExcludeAllBut(t *testing.T) {
	m := newTestMatcher(t, []string{
		join("src", "keep.txt"),
		join("src", "keep.md"),
		join("src", "junk.tmp"),
		join("src", "protected.log"),
	}, nil)

	cfg := &model.MatchConfig{
		IncludeExtensions: []string{".txt", ".md"},
		ExcludeExtensions: []string{".log"},
		ExcludeAllBut:     true,
	}
	result, err := m.Match("src", cfg, true)
	require.NoError(t, err)

	// Only junk.tmp matches neither the keep set nor an exclusion.
	assert.Equal(t, []string{join("src", "junk.tmp")}, result.Files)
}

// TestMatch_DirectoryTargeting verifies target-name directory matching and
// the include-all-dirs widening.
func TestMatch_DirectoryTargeting(t *testing.T) {
	files := []string{join("src", "logs", "a.log"), join("src", "data", "b.dat")}
	dirs := []string{join("src", "logs"), join("src", "data"), join("src", "data", "logs")}

	t.Run("target names only", func(t *testing.T) {
		m := newTestMatcher(t, files, dirs)
		cfg := &model.MatchConfig{
			IncludeAllFiles: true,
			IncludeDirs:     true,
			TargetDirNames:  []string{"logs"},
		}
		result, err := m.Match("src", cfg, true)
		require.NoError(t, err)
		assert.ElementsMatch(t,
			[]string{join("src", "logs"), join("src", "data", "logs")},
			result.Dirs)
	})

	t.Run("include all dirs", func(t *testing.T) {
		m := newTestMatcher(t, files, dirs)
		cfg := &model.MatchConfig{IncludeAllFiles: true, IncludeAllDirs: true}
		result, err := m.Match("src", cfg, true)
		require.NoError(t, err)
		assert.ElementsMatch(t,
			[]string{join("src", "logs"), join("src", "data"), join("src", "data", "logs")},
			result.Dirs)
	})
}

// TestMatch_ExcludedDirStillWalked pins the long-standing semantics:
// excluding a directory name keeps the directory out of the results but
// does NOT prune the walk, so files beneath it are still matched.
func TestMatch_ExcludedDirStillWalked(t *testing.T) {
	m := newTestMatcher(t, []string{
		join("src", "logs", "inner.tmp"),
		join("src", "top.tmp"),
	}, nil)

	cfg := &model.MatchConfig{
		IncludeExtensions: []string{".tmp"},
		IncludeAllDirs:    true,
		ExcludeDirNames:   []string{"logs"},
	}
	result, err := m.Match("src", cfg, true)
	require.NoError(t, err)

	// The directory itself is excluded from the results...
	assert.Empty(t, result.Dirs)
	// ...but its contents are still visited and matched.
	assert.ElementsMatch(t,
		[]string{join("src", "top.tmp"), join("src", "logs", "inner.tmp")},
		result.Files)
}

// TestMatch_NonRecursive verifies the single-level listing: nested entries
// are never visited, immediate subdirectories are still classified.
func TestMatch_NonRecursive(t *testing.T) {
	m := newTestMatcher(t, []string{
		join("src", "top.tmp"),
		join("src", "sub", "nested.tmp"),
	}, []string{join("src", "logs")})

	cfg := &model.MatchConfig{
		IncludeExtensions: []string{".tmp"},
		IncludeDirs:       true,
		TargetDirNames:    []string{"logs"},
	}
	result, err := m.Match("src", cfg, false)
	require.NoError(t, err)

	assert.Equal(t, []string{join("src", "top.tmp")}, result.Files)
	assert.Equal(t, []string{join("src", "logs")}, result.Dirs)
}

// TestMatch_SourceDirNotListed verifies the root itself is never a match
// candidate even when all directories are included.
func TestMatch_SourceDirNotListed(t *testing.T) {
	m := newTestMatcher(t, []string{join("src", "a.txt")}, nil)

	cfg := &model.MatchConfig{IncludeAllFiles: true, IncludeAllDirs: true}
	result, err := m.Match("src", cfg, true)
	require.NoError(t, err)

	assert.NotContains(t, result.Dirs, "src")
}

// TestMatch_MissingSourceDir verifies the non-recursive listing surfaces a
// readable error for a missing source directory.
func TestMatch_MissingSourceDir(t *testing.T) {
	m := New(afero.NewMemMapFs(), zerolog.Nop())

	cfg := &model.MatchConfig{IncludeAllFiles: true}
	_, err := m.Match("nope", cfg, false)
	assert.Error(t, err)
}

// TestShouldIncludeFile exercises the decision table directly, without a
// filesystem.
func TestShouldIncludeFile(t *testing.T) {
	tests := []struct {
		name     string
		cfg      model.MatchConfig
		filename string
		expected bool
	}{
		{
			name:     "criteria match, no exclusion",
			cfg:      model.MatchConfig{IncludeExtensions: []string{".tmp"}},
			filename: "a.tmp",
			expected: true,
		},
		{
			name:     "criteria match but excluded by contains",
			cfg:      model.MatchConfig{IncludeExtensions: []string{".tmp"}, ExcludeContains: []string{"draft"}},
			filename: "Draft-a.tmp",
			expected: false,
		},
		{
			name:     "include-all overrides missing criteria",
			cfg:      model.MatchConfig{IncludeAllFiles: true},
			filename: "anything.xyz",
			expected: true,
		},
		{
			name:     "exclude-all-but keeps criteria matches",
			cfg:      model.MatchConfig{IncludeExtensions: []string{".txt"}, ExcludeAllBut: true},
			filename: "keep.txt",
			expected: false,
		},
		{
			name:     "exclude-all-but processes non-matching files",
			cfg:      model.MatchConfig{IncludeExtensions: []string{".txt"}, ExcludeAllBut: true},
			filename: "junk.tmp",
			expected: true,
		},
		{
			name:     "exclude-all-but spares excluded files too",
			cfg:      model.MatchConfig{IncludeExtensions: []string{".txt"}, ExcludeExact: []string{"junk.tmp"}, ExcludeAllBut: true},
			filename: "junk.tmp",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShouldIncludeFile(&tt.cfg, tt.filename))
		})
	}
}
