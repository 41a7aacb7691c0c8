package fsenum

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Walk calls fn for every file the configuration path resolves to.
//
// If path is a directory, Walk traverses it recursively, pruning CVS
// subdirectories and skipping hidden and backup files. Otherwise fn is
// called exactly once with path as given. Traversal stops at the first
// error returned by fn or by the filesystem, and that error is returned.
func Walk(fsys afero.Fs, path string, fn func(path string) error) error {
	info, err := fsys.Stat(path)
	if err != nil || !info.IsDir() {
		// Not a directory (or not statable): treat as a single file and
		// let the eventual open report any real problem.
		return fn(path)
	}

	return afero.Walk(fsys, path, func(p string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		name := fi.Name()
		if fi.IsDir() {
			// Only child directories are pruned; a root that happens to
			// be called CVS is still traversed.
			if name == "CVS" && p != path {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || strings.HasSuffix(name, "~") {
			return nil
		}
		return fn(p)
	})
}
