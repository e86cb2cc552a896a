// Package pattern parses line-oriented pattern files into the four typed
// rule lists of a model.PatternSet.
//
// The file format is deliberately small — four rule kinds, no globs:
//
//	# comment to end of line
//	.jpg        extension rule (leading dot)
//	logs/       directory rule (trailing slash)
//	*backup     contains rule (leading asterisk)
//	config.ini  exact filename rule (everything else)
//
// Classification is checked in that fixed order, so a rule belongs to
// exactly one category. Blank lines and lines that are empty after comment
// stripping are skipped silently.
package pattern
