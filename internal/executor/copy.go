package executor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// copyFile copies a single file's contents and permission bits to dst.
// io.Copy streams the contents, so large files are never held in memory.
func (e *Executor) copyFile(src, dst string) error {
	info, err := e.fs.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source file %s: %w", src, err)
	}

	srcFile, err := e.fs.Open(src)
	if err != nil {
		return fmt.Errorf("open source file %s: %w", src, err)
	}
	defer func() { _ = srcFile.Close() }()

	dstFile, err := e.fs.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create destination file %s: %w", dst, err)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	if err := dstFile.Close(); err != nil {
		return fmt.Errorf("close destination file %s: %w", dst, err)
	}

	// Carry over the modification time. Failure here is not worth failing
	// the item over, so it is ignored.
	_ = e.fs.Chtimes(dst, info.ModTime(), info.ModTime())

	return nil
}

// copyTree recursively copies the directory tree rooted at src to dst,
// preserving the relative layout. Symbolic links are skipped to keep the
// copy behavior predictable.
func (e *Executor) copyTree(src, dst string) error {
	return afero.Walk(e.fs, src, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("walk source tree at %s: %w", path, walkErr)
		}

		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("compute relative path for %s: %w", path, err)
		}
		target := filepath.Join(dst, relPath)

		if info.Mode()&os.ModeSymlink != 0 {
			return nil
		}

		if info.IsDir() {
			if err := e.fs.MkdirAll(target, info.Mode().Perm()); err != nil {
				return fmt.Errorf("create directory %s: %w", target, err)
			}
			return nil
		}

		return e.copyFile(path, target)
	})
}
