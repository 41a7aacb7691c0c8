package loader

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Option configures a loader at construction time.
type Option func(*settings)

type settings struct {
	validate Validator
	fsys     afero.Fs
	log      *zap.Logger
	dotenv   []string
}

func newSettings(opts []Option) *settings {
	s := &settings{
		validate: AcceptAll,
		fsys:     afero.NewOsFs(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithValidator sets the predicate applied to every parsed key. Keys it
// rejects are recorded as diagnostics and left out of the data mapping.
func WithValidator(v Validator) Option {
	return func(s *settings) {
		if v != nil {
			s.validate = v
		}
	}
}

// WithFS sets the filesystem file-backed loaders read from
// (default: the OS filesystem).
func WithFS(fsys afero.Fs) Option {
	return func(s *settings) {
		if fsys != nil {
			s.fsys = fsys
		}
	}
}

// WithLogger sets the logger used for debug traces (default: no-op).
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.log = l
		}
	}
}

// WithDotEnv makes the environment loader overload the given dotenv files
// into the process environment before taking its snapshot. Files that do
// not exist are ignored.
func WithDotEnv(paths ...string) Option {
	return func(s *settings) {
		s.dotenv = append(s.dotenv, paths...)
	}
}
