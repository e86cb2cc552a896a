package matcher

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/Rumi381/script-fileManagement/internal/model"
)

// Matcher classifies directory trees against a MatchConfig.
//
// The filesystem is injected so the matcher runs unchanged against the real
// disk (afero.NewOsFs) and in-memory fixtures (afero.NewMemMapFs) in tests.
type Matcher struct {
	fs  afero.Fs
	log zerolog.Logger
}

// New creates a Matcher operating on the given filesystem.
func New(fs afero.Fs, log zerolog.Logger) *Matcher {
	return &Matcher{fs: fs, log: log.With().Str("component", "matcher").Logger()}
}

// Match walks sourceDir and returns the files and directories selected by
// cfg, in walk order. With recursive=false only the immediate children of
// sourceDir are examined.
//
// The source directory itself is never a match candidate; only entries
// below it are classified. Unreadable subtrees are logged and skipped
// rather than failing the whole walk.
func (m *Matcher) Match(sourceDir string, cfg *model.MatchConfig, recursive bool) (*model.MatchResult, error) {
	result := &model.MatchResult{}

	if recursive {
		err := afero.Walk(m.fs, sourceDir, func(path string, info os.FileInfo, walkErr error) error {
			if walkErr != nil {
				m.log.Debug().Err(walkErr).Str("path", path).Msg("skipping unreadable path")
				return nil
			}
			if path == sourceDir {
				return nil
			}

			if info.IsDir() {
				m.classifyDir(cfg, result, path, info.Name())
				return nil
			}
			m.classifyFile(cfg, result, path, info.Name())
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", sourceDir, err)
		}
	} else {
		entries, err := afero.ReadDir(m.fs, sourceDir)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", sourceDir, err)
		}
		for _, info := range entries {
			path := filepath.Join(sourceDir, info.Name())
			if info.IsDir() {
				m.classifyDir(cfg, result, path, info.Name())
			} else {
				m.classifyFile(cfg, result, path, info.Name())
			}
		}
	}

	m.log.Debug().
		Int("files", result.FileCount()).
		Int("dirs", result.DirCount()).
		Bool("recursive", recursive).
		Str("source", sourceDir).
		Msg("match pass complete")

	return result, nil
}

// classifyFile appends the file to the result when the inclusion decision
// selects it.
func (m *Matcher) classifyFile(cfg *model.MatchConfig, result *model.MatchResult, path, name string) {
	if ShouldIncludeFile(cfg, name) {
		result.Files = append(result.Files, path)
	}
}

// classifyDir appends the directory to the result unless its bare name is
// excluded. Exclusion only affects the results — the walk still descends
// into the directory's contents.
func (m *Matcher) classifyDir(cfg *model.MatchConfig, result *model.MatchResult, path, name string) {
	if slices.Contains(cfg.ExcludeDirNames, name) {
		m.log.Debug().Str("dir", path).Msg("directory excluded from results")
		return
	}
	if cfg.IncludeAllDirs || (cfg.IncludeDirs && slices.Contains(cfg.TargetDirNames, name)) {
		result.Dirs = append(result.Dirs, path)
	}
}

// ShouldIncludeFile applies the full inclusion decision for one filename.
//
// In exclude-all-but mode the keep set is inverted: a file is processed only
// when it matches neither the keep criteria nor an explicit exclusion.
// Otherwise a file is processed when it matches the criteria (or no file
// criteria are configured at all, or include-all is set) and is not
// excluded.
func ShouldIncludeFile(cfg *model.MatchConfig, name string) bool {
	criteria := MatchesCriteria(cfg, name)
	exclusion := MatchesExclusion(cfg, name)

	if cfg.ExcludeAllBut {
		return !criteria && !exclusion
	}
	return (criteria || !cfg.HasFileCriteria() || cfg.IncludeAllFiles) && !exclusion
}

// MatchesCriteria reports whether the filename matches the positive file
// selection rules: include-all, an exact name, an extension, or (in
// contains-extension mode) an extension occurring anywhere in the
// case-folded name, which handles suffixed names like "report.msg.1".
func MatchesCriteria(cfg *model.MatchConfig, name string) bool {
	if cfg.IncludeAllFiles {
		return true
	}
	if slices.Contains(cfg.IncludeExact, name) {
		return true
	}

	if len(cfg.IncludeExtensions) > 0 {
		ext := strings.ToLower(filepath.Ext(name))
		if slices.Contains(cfg.IncludeExtensions, ext) {
			return true
		}
		if cfg.ContainsExtensionMode {
			lower := strings.ToLower(name)
			for _, e := range cfg.IncludeExtensions {
				if strings.Contains(lower, e) {
					return true
				}
			}
		}
	}
	return false
}

// MatchesExclusion reports whether the filename is vetoed by an exact name,
// its extension, or a case-insensitive contains rule.
func MatchesExclusion(cfg *model.MatchConfig, name string) bool {
	if slices.Contains(cfg.ExcludeExact, name) {
		return true
	}

	if len(cfg.ExcludeExtensions) > 0 {
		ext := strings.ToLower(filepath.Ext(name))
		if slices.Contains(cfg.ExcludeExtensions, ext) {
			return true
		}
	}

	if len(cfg.ExcludeContains) > 0 {
		lower := strings.ToLower(name)
		for _, sub := range cfg.ExcludeContains {
			if strings.Contains(lower, strings.ToLower(sub)) {
				return true
			}
		}
	}
	return false
}
