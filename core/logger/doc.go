// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production). Loaders take the resulting *zap.Logger through
// their options and stay silent by default.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "debug", Format: "console"})
//	l := loader.NewKeyValueFile("/etc/conf.d", loader.WithLogger(log))
//
//	// Correlate all entries for one configured source:
//	sl := logger.WithSource(log, "/etc/conf.d")
//	sl.Debug("load finished")
package logger
