// Package fsenum enumerates the files behind a configuration path.
//
// A path may point at a single file or at a directory tree. Walk hides the
// difference: it invokes a callback once per candidate file, in traversal
// order, applying the classic exclusion rules for line-oriented config
// directories:
//
//   - subdirectories named "CVS" are pruned before descent
//   - files whose name starts with "." are skipped (hidden files)
//   - files whose name ends with "~" are skipped (editor backups)
//
// A plain file path is handed to the callback unchanged, without any
// existence check; opening it later surfaces whatever is wrong with it.
//
// # Laziness
//
// Walk produces one path at a time and is driven to completion within a
// single call. It is not a reusable sequence: callers that need the paths
// again must call Walk again.
//
// # Filesystems
//
// All access goes through an afero.Fs, so callers can enumerate an
// in-memory filesystem in tests:
//
//	fsys := afero.NewMemMapFs()
//	err := fsenum.Walk(fsys, "/etc/portage/package.use", func(path string) error {
//	    return parse(path)
//	})
package fsenum
