// Package rules resolves command-line criteria and an optional pattern file
// into a single normalized model.MatchConfig.
//
// The merge is dispatched once on a closed model.PatternMode enum instead of
// mutating flags conditionally, which keeps the four merge behaviors
// independently testable. Validation runs after the merge, so every rule is
// checked against the final configuration rather than any intermediate state.
package rules
