// Package logging configures the zerolog logger for the file-ops CLI.
//
// Diagnostics go to stderr through a console writer; stdout stays reserved
// for command output. Verbosity maps to zerolog levels: quiet shows errors
// only, the default shows info, verbose shows debug.
package logging
