package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// candidateNames are probed, in order, in the source directory when no
// explicit --config path is given.
var candidateNames = []string{
	".fileops.yaml",
	".fileops.yml",
	".fileops.json",
	".fileops.jsonc",
}

// Defaults holds the values a defaults file may supply. Booleans are
// pointers so "not set" is distinguishable from "set to false".
type Defaults struct {
	// PatternsFile points at a pattern file to use by default.
	PatternsFile string `yaml:"patterns_file" json:"patternsFile"`

	// Recursive controls subtree recursion (default true when unset).
	Recursive *bool `yaml:"recursive" json:"recursive"`

	// Backup enables the pre-run backup copy.
	Backup *bool `yaml:"backup" json:"backup"`

	// ExcludeExtensions, ExcludeExact and ExcludeContains seed the
	// standing exclusion lists.
	ExcludeExtensions []string `yaml:"exclude_extensions" json:"excludeExtensions"`
	ExcludeExact      []string `yaml:"exclude_exact" json:"excludeExact"`
	ExcludeContains   []string `yaml:"exclude_contains" json:"excludeContains"`

	// ExcludeDirs seeds the excluded directory names.
	ExcludeDirs []string `yaml:"exclude_dirs" json:"excludeDirs"`
}

// Load reads the defaults file. With an explicit path, a missing or
// unparsable file is an error. Without one, the well-known names are probed
// in searchDir and absence is not an error — (nil, nil) means "no defaults".
func Load(fs afero.Fs, explicitPath, searchDir string) (*Defaults, error) {
	path := explicitPath
	if path == "" {
		for _, name := range candidateNames {
			candidate := filepath.Join(searchDir, name)
			if ok, _ := afero.Exists(fs, candidate); ok {
				path = candidate
				break
			}
		}
		if path == "" {
			return nil, nil
		}
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	defaults := &Defaults{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, defaults); err != nil {
			return nil, fmt.Errorf("parse YAML config %s: %w", path, err)
		}
	default:
		// JSON with comments and trailing commas allowed; jsonc.ToJSON
		// rewrites it to plain JSON in place.
		if err := json.Unmarshal(jsonc.ToJSON(data), defaults); err != nil {
			return nil, fmt.Errorf("parse JSON config %s: %w", path, err)
		}
	}

	return defaults, nil
}
