package loader

import (
	"fmt"
	"strings"
)

// skipLine trims one raw line and reports whether it should be ignored
// entirely: blank lines and comment lines starting with "#".
func skipLine(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", true
	}
	return line, false
}

// NewItemFile creates a loader for files holding one bare key per line:
//
//	item1
//	item2
//	item1
//
// becomes {"item1": {}, "item2": {}}. The value carries no information;
// repeated keys collapse to one entry. Tokens after the first on a line
// are ignored.
func NewItemFile(path string, opts ...Option) *FileLoader[struct{}] {
	l := &FileLoader[struct{}]{path: path, set: newSettings(opts)}
	l.parse = func(line string, num int, data map[string]struct{}, errs ErrorMap) {
		line, skip := skipLine(line)
		if skip {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			// skipLine already drops blank lines; guard the index anyway.
			errs.Add(l.path, fmt.Sprintf("malformed data at line %d: %q", num+1, line))
			return
		}
		key := fields[0]
		if !l.set.validate(key) {
			errs.Add(l.path, fmt.Sprintf("validation failed at line %d: key %s", num+1, key))
			return
		}
		data[key] = struct{}{}
	}
	return l
}

// NewKeyListFile creates a loader for files of whitespace-separated
// key/token lines:
//
//	key foo1 foo2 foo3
//
// becomes {"key": ["foo1", "foo2", "foo3"]}. A line needs at least a key
// and one token. Repeated keys accumulate per the Value promotion rule.
func NewKeyListFile(path string, opts ...Option) *FileLoader[Value] {
	l := &FileLoader[Value]{path: path, set: newSettings(opts)}
	l.parse = func(line string, num int, data map[string]Value, errs ErrorMap) {
		line, skip := skipLine(line)
		if skip {
			return
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			errs.Add(l.path, fmt.Sprintf("malformed data at line %d: %q", num+1, line))
			return
		}
		key := fields[0]
		if !l.set.validate(key) {
			errs.Add(l.path, fmt.Sprintf("validation failed at line %d: key %s", num+1, key))
			return
		}
		storeValue(data, key, fields[1:])
	}
	return l
}

// NewKeyValueFile creates a loader for files of key=value lines:
//
//	key=value
//
// becomes {"key": ["value"]}. The trimmed line is split on every "=", so a
// value containing "=" contributes several segments rather than one
// rejoined string; segments are not trimmed further. Repeated keys
// accumulate per the Value promotion rule.
func NewKeyValueFile(path string, opts ...Option) *FileLoader[Value] {
	l := &FileLoader[Value]{path: path, set: newSettings(opts)}
	l.parse = func(line string, num int, data map[string]Value, errs ErrorMap) {
		line, skip := skipLine(line)
		if skip {
			return
		}
		segments := strings.Split(line, "=")
		if len(segments) < 2 {
			errs.Add(l.path, fmt.Sprintf("malformed data at line %d: %q", num+1, line))
			return
		}
		key := segments[0]
		if key == "" {
			errs.Add(l.path, fmt.Sprintf("malformed key at line %d: %q", num+1, line))
			return
		}
		if !l.set.validate(key) {
			errs.Add(l.path, fmt.Sprintf("validation failed at line %d: key %s", num+1, key))
			return
		}
		storeValue(data, key, segments[1:])
	}
	return l
}
