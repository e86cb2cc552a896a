// Package executor applies a bulk operation (delete, copy, move) to a list
// of matched items.
//
// Every item is processed independently: a single failure is recorded in
// the OperationOutcome and the batch continues with the next item. Dry-run
// counts items without touching the filesystem. Copy and move preserve each
// item's path relative to the source directory under the destination
// directory, creating intermediate directories on demand.
//
// Callers always run the file batch before the directory batch so that
// directory deletion cannot race with file operations beneath it.
package executor
