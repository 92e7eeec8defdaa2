package utils

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// defaultIgnoredDirs never contain project source worth resolving against.
var defaultIgnoredDirs = map[string]struct{}{
	".git":         {},
	".svn":         {},
	".idea":        {},
	".vscode":      {},
	".build":       {},
	".swiftpm":     {},
	"DerivedData":  {},
	"Pods":         {},
	"Carthage":     {},
	"node_modules": {},
	"build":        {},
	"dist":         {},
}

// ListSourceFiles recursively enumerates files under root whose name ends
// with the given extension, excluding hidden entries and well-known build
// directories. The result is sorted, so callers get a stable traversal
// order within a run.
func ListSourceFiles(root, extension string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if _, ignored := defaultIgnoredDirs[name]; ignored {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}
		if strings.HasSuffix(name, extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate source files under %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// ModificationTime returns the last-modification timestamp of a file.
func ModificationTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info.ModTime(), nil
}

// CanonicalPath resolves a path to its absolute, symlink-free form so that
// graph, cache and set operations key on one stable identity per file.
func CanonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve symlinks for %s: %w", abs, err)
	}
	return resolved, nil
}
