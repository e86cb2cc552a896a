// Package report renders match summaries, dry-run previews, and operation
// outcomes for the file-ops CLI, and owns the interactive confirmation
// prompt.
//
// The matching and execution core never writes to the console; everything
// user-visible flows through a Reporter so the core stays callable from
// tests without I/O. Output goes to an injected io.Writer for the same
// reason.
package report
