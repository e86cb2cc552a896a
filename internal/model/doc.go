// Package model defines the domain types and value objects for the
// file-ops CLI.
//
// This package contains pure data structures with no external dependencies.
// The central types are PatternSet (the parsed rule file), MatchConfig (the
// fully resolved matching rule set consumed by the tree matcher), MatchResult
// (the outcome of a tree walk), and OperationOutcome (the outcome of a bulk
// operation batch).
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
