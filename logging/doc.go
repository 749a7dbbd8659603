// Package logging provides a minimal logging interface and adapters for wildmap.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the index uses for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - IndexLogger with index/component context and domain helpers
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	m := wildmap.New(func(o *wildmap.Options) { o.Logger = logger })
//
// The interface is kept minimal to avoid vendor lock-in while supporting
// structured logging where available.
package logging
