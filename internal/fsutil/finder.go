// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindFilesBySuffix recursively searches rootPath for all files whose
// name ends with suffix. Symlinked directories are descended into, and files
// found through them are reported under the link's path. Paths are returned in
// lexical walk order, so repeated calls over an unchanged tree yield the same
// sequence. Link cycles are not detected.
func FindFilesBySuffix(rootPath string, suffix string) ([]string, error) {
	if suffix == "" {
		panic("suffix must not be empty")
	}
	return findFiles(rootPath, rootPath, suffix)
}

// findFiles walks walkRoot and reports every match relative to displayRoot.
func findFiles(walkRoot, displayRoot, suffix string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return err
		}
		shown := filepath.Join(displayRoot, rel)

		if d.Type()&fs.ModeSymlink != 0 {
			target, err := filepath.EvalSymlinks(path)
			if err != nil {
				return err
			}
			info, err := os.Stat(target)
			if err != nil {
				return err
			}
			if info.IsDir() {
				nested, err := findFiles(target, shown, suffix)
				if err != nil {
					return err
				}
				files = append(files, nested...)
				return nil
			}
		}

		if !d.IsDir() && strings.HasSuffix(d.Name(), suffix) {
			files = append(files, shown)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}
