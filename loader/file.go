package loader

import (
	"bufio"
	"io"
	"strings"

	"confkit/core/fsenum"

	"go.uber.org/zap"
)

// parseFunc interprets one line of a file, mutating the shared data and
// diagnostic collections of the running load.
type parseFunc[V any] func(line string, num int, data map[string]V, errs ErrorMap)

// FileLoader reads line-oriented files from a configured path. The path may
// be a single file or a directory; directories are traversed by
// fsenum.Walk. The grammar is supplied by the constructor as a line-parse
// step, so the reading engine is shared by all file formats.
//
// Diagnostics are keyed by the configured path, not by the individual file
// being read: when the path is a directory, every file under it reports
// under the one directory key. Long-standing behavior, kept for
// compatibility with existing consumers of these files.
type FileLoader[V any] struct {
	path  string
	set   *settings
	parse parseFunc[V]
}

// Path returns the configured source path.
func (l *FileLoader[V]) Path() string { return l.path }

// Load reads every enumerated file and returns the accumulated data and
// diagnostics. Filesystem failures abort the load and are returned as the
// error; they are never recorded in the ErrorMap.
func (l *FileLoader[V]) Load() (map[string]V, ErrorMap, error) {
	data := make(map[string]V)
	errs := make(ErrorMap)

	err := fsenum.Walk(l.set.fsys, l.path, func(path string) error {
		return l.readFile(path, data, errs)
	})
	if err != nil {
		return nil, nil, err
	}

	l.set.log.Debug("load finished",
		zap.String("source", l.path),
		zap.Int("keys", len(data)),
		zap.Int("diagnostics", len(errs[l.path])))
	return data, errs, nil
}

// readFile parses one file into the shared collections. The handle is
// closed before the walk moves on to the next file, whatever happens here.
func (l *FileLoader[V]) readFile(path string, data map[string]V, errs ErrorMap) error {
	f, err := l.set.fsys.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	l.set.log.Debug("reading file", zap.String("path", path))

	// bufio.Reader rather than bufio.Scanner: lines have no length limit.
	r := bufio.NewReader(f)
	for num := 0; ; num++ {
		line, err := r.ReadString('\n')
		if line != "" {
			l.parse(strings.TrimSuffix(line, "\n"), num, data, errs)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
