package loader

import (
	"errors"
	"fmt"
)

// Loader is a configured source of key/value data. Load recomputes the
// result from scratch on every call: a fresh data mapping, a fresh ErrorMap
// of parse diagnostics keyed by source identifier, and a fatal error for
// I/O-level failures only.
type Loader[V any] interface {
	Load() (map[string]V, ErrorMap, error)
}

// ErrInvalidArgument is returned by setters that receive a value of the
// wrong shape, such as Memory.SetData with a non-map argument.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrorMap collects human-readable parse diagnostics per source identifier.
// Entries are append-only during a load and keep their insertion order.
type ErrorMap map[string][]string

// Add appends a diagnostic message for the given source.
func (m ErrorMap) Add(source, msg string) {
	m[source] = append(m[source], msg)
}

// Merge appends all diagnostics from other, preserving their order.
func (m ErrorMap) Merge(other ErrorMap) {
	for source, msgs := range other {
		m[source] = append(m[source], msgs...)
	}
}

// LoadError wraps a failure to load a named resource. Loaders do not
// construct it themselves; it is provided for callers that compose loads
// and want to attribute a fatal error to the resource that caused it.
type LoadError struct {
	Resource string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed while loading resource %s: %v", e.Resource, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Value holds the parsed right-hand side of one key in a list-shaped file
// (key→list or key=value grammar).
//
// The first occurrence of a key stores its tokens flat in Tokens. When the
// same key appears again, the flat list is promoted: Tokens is cleared and
// Lists holds every occurrence's tokens in file order. This mirrors the
// historical on-disk format these files come from, where a repeated key
// turns the stored value into a list of lists; consumers must check Lists
// before Tokens.
type Value struct {
	// Tokens is set while the key has appeared exactly once.
	Tokens []string
	// Lists is set once the key has repeated; Lists[0] is the first
	// occurrence's tokens.
	Lists [][]string
}

// Repeated reports whether the key appeared more than once.
func (v Value) Repeated() bool { return v.Lists != nil }

// storeValue applies the duplicate-key accumulation rule shared by the
// key→list and key=value grammars.
func storeValue(data map[string]Value, key string, tokens []string) {
	v, ok := data[key]
	if !ok {
		data[key] = Value{Tokens: tokens}
		return
	}
	if v.Lists == nil {
		v.Lists = [][]string{v.Tokens}
		v.Tokens = nil
	}
	v.Lists = append(v.Lists, tokens)
	data[key] = v
}
