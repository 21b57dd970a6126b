package site

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// copyTree mirrors src into dst, following symlinks and overwriting files
// that already exist. It returns the number of files copied.
func copyTree(src, dst string) (int, error) {
	entries, err := os.ReadDir(src)
	if err != nil {
		return 0, fmt.Errorf("failed to read directory %s: %w", src, err)
	}

	if err := os.MkdirAll(dst, dirMode); err != nil {
		return 0, fmt.Errorf("failed to create directory %s: %w", dst, err)
	}

	copied := 0
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		info, err := os.Stat(srcPath)
		if err != nil {
			return copied, fmt.Errorf("failed to stat %s: %w", srcPath, err)
		}

		if info.IsDir() {
			n, err := copyTree(srcPath, dstPath)
			copied += n
			if err != nil {
				return copied, err
			}
			continue
		}

		if err := copyFile(srcPath, dstPath, info.Mode().Perm()); err != nil {
			return copied, err
		}
		copied++
	}

	return copied, nil
}

func copyFile(src, dst string, mode os.FileMode) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer f.Close()

	if err := atomic.WriteFile(dst, f); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := os.Chmod(dst, mode); err != nil {
		return fmt.Errorf("failed to set mode of %s: %w", dst, err)
	}

	return nil
}
