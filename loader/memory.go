package loader

import "fmt"

// Memory is an in-memory loader: it returns whatever data and diagnostics
// were last set on it, without touching the filesystem. It exists so tests
// can substitute a fake loader for a file-backed one.
//
// Unlike the other loaders, Memory deliberately holds mutable state: the
// setters overwrite its fields and Load returns them verbatim.
type Memory[V any] struct {
	data map[string]V
	errs ErrorMap
}

// NewMemory creates an in-memory loader holding empty data and diagnostics.
func NewMemory[V any]() *Memory[V] {
	return &Memory[V]{
		data: make(map[string]V),
		errs: make(ErrorMap),
	}
}

// SetData replaces the held data mapping. The argument must be a
// map[string]V; anything else returns ErrInvalidArgument and leaves the
// prior data untouched.
func (m *Memory[V]) SetData(data any) error {
	d, ok := data.(map[string]V)
	if !ok {
		return fmt.Errorf("%w: SetData requires a map, got %T", ErrInvalidArgument, data)
	}
	m.data = d
	return nil
}

// SetErrors replaces the held diagnostics, unchecked.
func (m *Memory[V]) SetErrors(errs ErrorMap) {
	m.errs = errs
}

// Load returns the currently held data and diagnostics, unchanged.
func (m *Memory[V]) Load() (map[string]V, ErrorMap, error) {
	return m.data, m.errs, nil
}
