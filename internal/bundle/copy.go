package bundle

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// excludedNames are files/directories excluded when copying assets.
var excludedNames = map[string]bool{
	"node_modules": true,
	".git":         true,
	".DS_Store":    true,
}

// copyAssets copies the assets directory into dst. A missing source
// directory is not an error; the game may simply have no assets yet.
func copyAssets(assetsDir, dst string, stdout io.Writer) error {
	if assetsDir == "" {
		return nil
	}
	if _, err := os.Stat(assetsDir); err != nil {
		return nil
	}

	fmt.Fprintln(stdout, "Copying assets...")
	if err := copyDir(assetsDir, dst); err != nil {
		return fmt.Errorf("copying assets from %s: %w", assetsDir, err)
	}
	return nil
}

// copyDir recursively copies src to dst, excluding entries in excludedNames.
func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if excludedNames[entry.Name()] {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else if entry.Type().IsRegular() {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
		// Skip symlinks and other special files during copy.
	}

	return nil
}

// copyFile copies a single file from src to dst, preserving permissions.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	return os.WriteFile(dst, data, srcInfo.Mode().Perm())
}
