// Package loader reads key/value style configuration data from the process
// environment, from memory, or from line-oriented files on disk, producing a
// normalized mapping plus a structured set of per-source parse diagnostics.
//
// # Loaders
//
// Every loader implements the generic Loader interface:
//
//	type Loader[V any] interface {
//	    Load() (map[string]V, ErrorMap, error)
//	}
//
// The value type V depends on the source grammar:
//
//   - NewItemFile: one bare key per line, presence only (map[string]struct{})
//   - NewKeyListFile: "key tok tok ..." whitespace-separated (map[string]Value)
//   - NewKeyValueFile: "key=value" split on every "=" (map[string]Value)
//   - NewEnv: the live process environment (map[string]string)
//   - NewMemory: caller-supplied data, for substituting a fake loader in tests
//   - NewChain: several loaders of one shape merged in order
//
// # File format
//
// File sources are plain text read line by line. Lines are trimmed of
// surrounding whitespace; blank lines and lines starting with "#" are
// skipped. A configured path that is a directory is traversed recursively
// (see core/fsenum for the exclusion rules).
//
// # Diagnostics
//
// Parse-level problems (malformed lines, empty keys, rejected keys) never
// abort a load. They are appended to the returned ErrorMap under the
// loader's configured source path and the offending line is skipped, so the
// data mapping still contains everything that did parse. I/O failures are a
// different severity class: they come back as the error return value and
// leave no trace in the ErrorMap.
//
// # Validation
//
// Loaders accept a Validator, a predicate over parsed keys, via
// WithValidator. Keys it rejects are recorded as diagnostics and dropped.
// The default accepts everything. AcceptAll, Allowed, Pattern and Rule cover
// the common cases.
//
// # Usage
//
//	l := loader.NewKeyValueFile("/etc/conf.d",
//	    loader.WithValidator(loader.Rule("alphanum")))
//	data, diags, err := l.Load()
//	if err != nil {
//	    return err // file system failure, nothing was loaded
//	}
//	for source, msgs := range diags {
//	    // lines that did not parse; data holds the rest
//	}
package loader
