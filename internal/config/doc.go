// Package config loads the optional defaults file for the file-ops CLI.
//
// A defaults file supplies values for flags the user did not set on the
// command line — typically a standing exclude list or a backup policy for a
// particular directory. It never overrides an explicitly passed flag.
//
// Supported formats, chosen by file extension: YAML (.yaml/.yml) and JSON
// with comments (.json/.jsonc). JSONC input is stripped to plain JSON
// before unmarshalling.
package config
