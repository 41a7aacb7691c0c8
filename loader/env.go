package loader

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// EnvLoader exposes the process environment as a data mapping. It applies
// no per-key validation: the environment is assumed trusted.
type EnvLoader struct {
	set *settings
}

// NewEnv creates a loader over the process environment. WithDotEnv can be
// used to overload dotenv files into the environment before each load.
func NewEnv(opts ...Option) *EnvLoader {
	return &EnvLoader{set: newSettings(opts)}
}

// Load returns a snapshot of the environment at call time. The ErrorMap is
// always empty.
func (l *EnvLoader) Load() (map[string]string, ErrorMap, error) {
	for _, path := range l.set.dotenv {
		// Missing files are fine, e.g. no .env in production.
		if err := godotenv.Overload(path); err != nil {
			l.set.log.Debug("dotenv overload skipped",
				zap.String("path", path), zap.Error(err))
		}
	}

	environ := os.Environ()
	data := make(map[string]string, len(environ))
	for _, kv := range environ {
		if i := strings.Index(kv, "="); i >= 0 {
			data[kv[:i]] = kv[i+1:]
		}
	}
	return data, make(ErrorMap), nil
}
