package rules

import (
	"github.com/Rumi381/script-fileManagement/internal/model"
)

// Criteria is the flag bag supplied by the CLI (after config-file defaults
// have been applied). Extensions may appear with or without the leading dot;
// Resolve normalizes them.
type Criteria struct {
	// Extensions lists file extensions to target.
	Extensions []string

	// ExactNames lists literal filenames to target.
	ExactNames []string

	// ContainsExtension widens extension matching to a substring check
	// (so ".msg" also matches "report.msg.1").
	ContainsExtension bool

	// IncludeDirs enables directory targeting via TargetDirs.
	IncludeDirs bool

	// TargetDirs lists bare directory names to target.
	TargetDirs []string

	// ExcludeExtensions, ExcludeExact and ExcludeContains veto files.
	ExcludeExtensions []string
	ExcludeExact      []string
	ExcludeContains   []string

	// ExcludeDirs lists bare directory names kept out of the results.
	ExcludeDirs []string

	// ExcludeAllBut inverts selection to process everything outside the
	// keep set.
	ExcludeAllBut bool

	// Override makes pattern-file rules replace, rather than supplement,
	// the command-line equivalents in normal mode.
	Override bool
}

// ModeFromFlags translates the three mutually exclusive pattern-exclusion
// flags into a PatternMode. Setting more than one is a validation error.
func ModeFromFlags(excludeAll, excludeFiles, excludeDirs bool) (model.PatternMode, error) {
	count := 0
	for _, set := range []bool{excludeAll, excludeFiles, excludeDirs} {
		if set {
			count++
		}
	}
	if count > 1 {
		return "", model.NewCLIError(model.ExitGeneralError,
			"only one of --patterns-exclude, --patterns-exclude-files, or --patterns-exclude-dirs can be used at a time")
	}

	switch {
	case excludeAll:
		return model.ModeExcludeAll, nil
	case excludeFiles:
		return model.ModeExcludeFiles, nil
	case excludeDirs:
		return model.ModeExcludeDirs, nil
	default:
		return model.ModeNormal, nil
	}
}

// Resolve merges command-line criteria with an optional pattern set under
// the given mode and validates the result. The returned MatchConfig is the
// single source of truth for the tree matcher; callers treat it as
// read-only.
//
// A nil pattern set means no pattern file was supplied; the mode is then
// irrelevant and the configuration comes from the criteria alone.
func Resolve(c Criteria, set *model.PatternSet, mode model.PatternMode) (*model.MatchConfig, error) {
	cfg := &model.MatchConfig{
		IncludeExtensions:     model.NormalizeExtensions(c.Extensions),
		IncludeExact:          append([]string(nil), c.ExactNames...),
		ContainsExtensionMode: c.ContainsExtension,
		IncludeDirs:           c.IncludeDirs,
		TargetDirNames:        append([]string(nil), c.TargetDirs...),
		ExcludeExtensions:     model.NormalizeExtensions(c.ExcludeExtensions),
		ExcludeExact:          append([]string(nil), c.ExcludeExact...),
		ExcludeContains:       append([]string(nil), c.ExcludeContains...),
		ExcludeDirNames:       append([]string(nil), c.ExcludeDirs...),
		ExcludeAllBut:         c.ExcludeAllBut,
	}

	if set != nil {
		switch mode {
		case model.ModeExcludeAll:
			mergeExcludeAll(cfg, set)
		case model.ModeExcludeFiles:
			mergeExcludeFiles(cfg, set)
		case model.ModeExcludeDirs:
			mergeExcludeDirs(cfg, set)
		default:
			mergeNormal(cfg, set, c.Override)
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeNormal applies the default inclusion semantics: file rules supplement
// (or, with override, replace) the command-line equivalents. Contains rules
// are exclusion-only by convention — a pattern file never uses a substring
// rule to select files, only to protect them.
func mergeNormal(cfg *model.MatchConfig, set *model.PatternSet, override bool) {
	if len(set.Extensions) > 0 {
		if override {
			cfg.IncludeExtensions = model.NormalizeExtensions(set.Extensions)
		} else {
			cfg.IncludeExtensions = append(model.NormalizeExtensions(set.Extensions), cfg.IncludeExtensions...)
		}
	}

	if len(set.Exact) > 0 {
		if override {
			cfg.IncludeExact = append([]string(nil), set.Exact...)
		} else {
			cfg.IncludeExact = append(append([]string(nil), set.Exact...), cfg.IncludeExact...)
		}
	}

	if len(set.Contains) > 0 {
		cfg.ExcludeContains = append(append([]string(nil), set.Contains...), cfg.ExcludeContains...)
	}

	if len(set.Directories) > 0 {
		cfg.IncludeDirs = true
		if override {
			cfg.TargetDirNames = append([]string(nil), set.Directories...)
		} else {
			cfg.TargetDirNames = append(append([]string(nil), set.Directories...), cfg.TargetDirNames...)
		}
	}
}

// mergeExcludeAll turns every pattern-file category into an exclusion and
// widens matching so that everything not explicitly excluded is processed.
func mergeExcludeAll(cfg *model.MatchConfig, set *model.PatternSet) {
	cfg.IncludeAllFiles = true
	cfg.IncludeAllDirs = true

	cfg.ExcludeExtensions = append(model.NormalizeExtensions(set.Extensions), cfg.ExcludeExtensions...)
	cfg.ExcludeExact = append(append([]string(nil), set.Exact...), cfg.ExcludeExact...)
	cfg.ExcludeContains = append(append([]string(nil), set.Contains...), cfg.ExcludeContains...)
	cfg.ExcludeDirNames = append(append([]string(nil), set.Directories...), cfg.ExcludeDirNames...)
}

// mergeExcludeFiles turns the file rules into exclusions while the
// directory rules stay inclusions. Net effect: keep matching directories,
// drop matching files.
func mergeExcludeFiles(cfg *model.MatchConfig, set *model.PatternSet) {
	cfg.ExcludeExtensions = append(model.NormalizeExtensions(set.Extensions), cfg.ExcludeExtensions...)
	cfg.ExcludeExact = append(append([]string(nil), set.Exact...), cfg.ExcludeExact...)
	cfg.ExcludeContains = append(append([]string(nil), set.Contains...), cfg.ExcludeContains...)

	if len(set.Directories) > 0 {
		cfg.IncludeDirs = true
		cfg.TargetDirNames = append(append([]string(nil), set.Directories...), cfg.TargetDirNames...)
	}
}

// mergeExcludeDirs turns the directory rules into exclusions while the file
// rules stay inclusions, and widens matching to all non-excluded items.
// Net effect: keep files, drop matching directories. Contains rules are
// ignored in this mode.
func mergeExcludeDirs(cfg *model.MatchConfig, set *model.PatternSet) {
	cfg.IncludeAllFiles = true
	cfg.IncludeAllDirs = true

	cfg.IncludeExtensions = append(model.NormalizeExtensions(set.Extensions), cfg.IncludeExtensions...)
	cfg.IncludeExact = append(append([]string(nil), set.Exact...), cfg.IncludeExact...)
	cfg.ExcludeDirNames = append(append([]string(nil), set.Directories...), cfg.ExcludeDirNames...)
}

// validate checks the merged configuration. Every failure here is fatal and
// reported before any tree walk happens.
func validate(cfg *model.MatchConfig) error {
	if !cfg.HasInclusionCriteria() && !cfg.HasExclusionCriteria() && !cfg.ExcludeAllBut {
		return model.NewCLIError(model.ExitGeneralError,
			"you must specify inclusion criteria (--extensions, --exact-match, --target-dirs), exclusion criteria (--exclude-extensions, --exclude-exact, --exclude-contains), or a pattern file (--patterns-file)")
	}

	if cfg.ExcludeAllBut && !cfg.HasInclusionCriteria() {
		return model.NewCLIError(model.ExitGeneralError,
			"--exclude-all-but requires inclusion criteria (--extensions or --exact-match) to define which files to keep")
	}

	if cfg.IncludeDirs && len(cfg.TargetDirNames) == 0 {
		return model.NewCLIError(model.ExitGeneralError,
			"--include-dirs requires directory names via --target-dirs")
	}

	if cfg.ContainsExtensionMode && len(cfg.IncludeExtensions) == 0 {
		return model.NewCLIError(model.ExitGeneralError,
			"--contains-extension requires --extensions to be specified")
	}

	return nil
}
