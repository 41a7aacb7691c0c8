package loader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingLoader always returns a fatal error.
type failingLoader struct{ err error }

func (f failingLoader) Load() (map[string]string, ErrorMap, error) {
	return nil, nil, f.err
}

func TestChain_LaterLoaderWins(t *testing.T) {
	base := NewMemory[string]()
	require.NoError(t, base.SetData(map[string]string{"a": "base", "b": "base"}))

	override := NewMemory[string]()
	require.NoError(t, override.SetData(map[string]string{"b": "override", "c": "override"}))

	data, errs, err := NewChain[string](base, override).Load()
	require.NoError(t, err)

	assert.Empty(t, errs)
	assert.Equal(t, map[string]string{
		"a": "base",
		"b": "override",
		"c": "override",
	}, data)
}

func TestChain_MergesDiagnosticsPerSource(t *testing.T) {
	first := NewMemory[string]()
	first.SetErrors(ErrorMap{"one.conf": {"bad line"}})

	second := NewMemory[string]()
	second.SetErrors(ErrorMap{"two.conf": {"worse line"}, "one.conf": {"another"}})

	_, errs, err := NewChain[string](first, second).Load()
	require.NoError(t, err)

	assert.Equal(t, ErrorMap{
		"one.conf": {"bad line", "another"},
		"two.conf": {"worse line"},
	}, errs)
}

func TestChain_FatalErrorAborts(t *testing.T) {
	ok := NewMemory[string]()
	require.NoError(t, ok.SetData(map[string]string{"a": "1"}))

	boom := errors.New("boom")
	data, errs, err := NewChain[string](ok, failingLoader{err: boom}).Load()

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, data)
	assert.Nil(t, errs)
}

func TestChain_Empty(t *testing.T) {
	data, errs, err := NewChain[string]().Load()
	require.NoError(t, err)
	assert.Empty(t, data)
	assert.Empty(t, errs)
}
