// Package matcher walks a source tree and classifies every file and
// directory against a resolved model.MatchConfig.
//
// The walk is a single synchronous pass, either through the full subtree or
// a single directory level. Results preserve walk order; no sorting is
// applied. Matching is purely name-based: extensions and contains rules are
// case-folded, exact names and directory names are compared literally.
//
// An excluded directory name keeps the directory out of the results but
// does not prune the walk — files beneath it are still visited. That
// mirrors the tool's long-standing behavior and is pinned by a test.
package matcher
