package hwkb

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the logger used by serializer operations, installing the
// no-op default on first use.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger replaces the package logger. Call it once during setup, before
// encoding or decoding on any goroutine.
func SetLogger(l *zap.Logger) {
	logger = l
}
