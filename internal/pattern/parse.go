package pattern

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/Rumi381/script-fileManagement/internal/model"
)

// ErrNotFound is returned by ParseFile when the pattern file does not exist.
// The CLI distinguishes this from a read failure in its error message.
var ErrNotFound = fmt.Errorf("pattern file not found")

// ParseFile reads and parses a pattern file from the given filesystem.
//
// A missing or unreadable file is an error for this call only — the caller
// decides how to report it. Malformed lines cannot occur: anything left
// after comment stripping falls into one of the four categories, and lines
// that strip to nothing are skipped.
func ParseFile(fs afero.Fs, path string) (*model.PatternSet, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("stat pattern file %s: %w", path, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pattern file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	set := &model.PatternSet{}
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := s.Text()

		// Strip everything from the first '#' onward, then surrounding
		// whitespace. A line that is all comment or all whitespace is
		// skipped, never an error.
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		classify(set, line)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read pattern file %s: %w", path, err)
	}

	return set, nil
}

// classify appends one stripped, non-empty line to the matching rule list.
// The checks run in fixed priority order; the first match wins, so no rule
// can land in more than one category.
func classify(set *model.PatternSet, line string) {
	switch {
	case strings.HasPrefix(line, "."):
		// Extension rule. Stored lower-cased, dot included, so matching
		// never needs to re-normalize.
		set.Extensions = append(set.Extensions, strings.ToLower(line))

	case strings.HasSuffix(line, "/"):
		// Directory rule. Only the bare name is kept.
		set.Directories = append(set.Directories, strings.TrimSuffix(line, "/"))

	case strings.HasPrefix(line, "*"):
		// Contains rule. Stored as given; case folding happens at match
		// time so the stored form stays readable in summaries.
		set.Contains = append(set.Contains, strings.TrimPrefix(line, "*"))

	default:
		// Exact filename rule, stored verbatim.
		set.Exact = append(set.Exact, line)
	}
}
