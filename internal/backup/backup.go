package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// timestampLayout names backup directories down to the second, which is
// enough to keep repeated runs from colliding.
const timestampLayout = "20060102_150405"

// Create copies the entire source tree to a sibling directory named
// <source>_backup_<timestamp> and returns the backup path. The clock is a
// parameter so tests get deterministic names.
func Create(fs afero.Fs, log zerolog.Logger, sourceDir string, now time.Time) (string, error) {
	backupDir := fmt.Sprintf("%s_backup_%s", sourceDir, now.Format(timestampLayout))
	log = log.With().Str("component", "backup").Logger()

	err := afero.Walk(fs, sourceDir, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("walk source at %s: %w", path, walkErr)
		}

		relPath, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return fmt.Errorf("compute relative path for %s: %w", path, err)
		}
		target := filepath.Join(backupDir, relPath)

		if info.Mode()&os.ModeSymlink != 0 {
			return nil
		}

		if info.IsDir() {
			if err := fs.MkdirAll(target, info.Mode().Perm()); err != nil {
				return fmt.Errorf("create backup directory %s: %w", target, err)
			}
			return nil
		}

		return copyFile(fs, path, target, info.Mode().Perm())
	})
	if err != nil {
		return "", fmt.Errorf("backup of %s failed: %w", sourceDir, err)
	}

	log.Info().Str("backup", backupDir).Msg("backup created")
	return backupDir, nil
}

// copyFile streams one file into the backup tree.
func copyFile(fs afero.Fs, src, dst string, perm os.FileMode) error {
	srcFile, err := fs.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer func() { _ = srcFile.Close() }()

	dstFile, err := fs.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return dstFile.Close()
}
