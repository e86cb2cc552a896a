package executor

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/Rumi381/script-fileManagement/internal/model"
)

// Executor runs bulk operations against an injected filesystem.
type Executor struct {
	fs  afero.Fs
	log zerolog.Logger
}

// New creates an Executor operating on the given filesystem.
func New(fs afero.Fs, log zerolog.Logger) *Executor {
	return &Executor{fs: fs, log: log.With().Str("component", "executor").Logger()}
}

// Execute applies the operation to each item in order and returns the
// batch outcome. isDirs selects directory semantics (recursive delete,
// tree copy); dryRun counts items without performing any I/O.
//
// destDir is required for copy and move; callers validate that before
// invoking Execute. Item failures never abort the batch.
func (e *Executor) Execute(op model.Operation, items []string, sourceDir, destDir string, isDirs, dryRun bool) *model.OperationOutcome {
	outcome := &model.OperationOutcome{}

	for _, item := range items {
		if err := e.processItem(op, item, sourceDir, destDir, isDirs, dryRun); err != nil {
			e.log.Debug().Err(err).Str("path", item).Msg("item failed")
			outcome.Errors = append(outcome.Errors, model.ItemError{
				Path:    item,
				Message: err.Error(),
			})
			continue
		}
		outcome.ProcessedCount++
	}

	return outcome
}

// processItem handles a single item. The relative path computation happens
// even for delete so a bad path is reported the same way in every mode.
func (e *Executor) processItem(op model.Operation, item, sourceDir, destDir string, isDirs, dryRun bool) error {
	relPath, err := filepath.Rel(sourceDir, item)
	if err != nil {
		return fmt.Errorf("compute relative path: %w", err)
	}

	if dryRun {
		// No I/O at all; the caller renders the "would do" message.
		return nil
	}

	switch op {
	case model.OpDelete:
		return e.deleteItem(item, isDirs)
	case model.OpCopy:
		return e.copyItem(item, filepath.Join(destDir, relPath), isDirs)
	case model.OpMove:
		return e.moveItem(item, filepath.Join(destDir, relPath), isDirs)
	default:
		return fmt.Errorf("unsupported operation %q", op)
	}
}

// deleteItem removes a file, or a directory tree when isDirs is set.
func (e *Executor) deleteItem(item string, isDirs bool) error {
	if isDirs {
		if err := e.fs.RemoveAll(item); err != nil {
			return fmt.Errorf("remove directory tree: %w", err)
		}
		e.log.Debug().Str("dir", item).Msg("deleted")
		return nil
	}
	if err := e.fs.Remove(item); err != nil {
		return fmt.Errorf("remove file: %w", err)
	}
	e.log.Debug().Str("file", item).Msg("deleted")
	return nil
}

// copyItem copies a file or directory tree to dest, creating intermediate
// destination directories on demand.
func (e *Executor) copyItem(item, dest string, isDirs bool) error {
	if err := e.ensureParent(dest); err != nil {
		return err
	}
	if isDirs {
		if err := e.copyTree(item, dest); err != nil {
			return err
		}
		e.log.Debug().Str("dir", item).Str("dest", dest).Msg("copied")
		return nil
	}
	if err := e.copyFile(item, dest); err != nil {
		return err
	}
	e.log.Debug().Str("file", item).Str("dest", dest).Msg("copied")
	return nil
}

// moveItem relocates a file or directory tree to dest. Rename is tried
// first; when it fails (typically a cross-device move) the item is copied
// and then removed, mirroring what the OS-level move utilities do.
func (e *Executor) moveItem(item, dest string, isDirs bool) error {
	if err := e.ensureParent(dest); err != nil {
		return err
	}

	if err := e.fs.Rename(item, dest); err == nil {
		e.log.Debug().Str("path", item).Str("dest", dest).Msg("moved")
		return nil
	}

	// Rename failed; fall back to copy + delete.
	if isDirs {
		if err := e.copyTree(item, dest); err != nil {
			return err
		}
		if err := e.fs.RemoveAll(item); err != nil {
			return fmt.Errorf("remove source after copy: %w", err)
		}
	} else {
		if err := e.copyFile(item, dest); err != nil {
			return err
		}
		if err := e.fs.Remove(item); err != nil {
			return fmt.Errorf("remove source after copy: %w", err)
		}
	}
	e.log.Debug().Str("path", item).Str("dest", dest).Msg("moved via copy")
	return nil
}

// ensureParent creates the destination's parent directory chain.
// A failure here fails only the one item it belongs to.
func (e *Executor) ensureParent(dest string) error {
	parent := filepath.Dir(dest)
	if err := e.fs.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("create destination directory %s: %w", parent, err)
	}
	return nil
}
