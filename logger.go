// SPDX-License-Identifier: MIT

package grid

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// Logger returns the package logger. It is a no-op logger by default.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}

// SetLogger replaces the package logger. Pass nil to restore the no-op logger.
//
// Levels used:
//   - Debug: refused constructions, decode rollbacks.
//   - Warn: finalizer errors that cannot be returned to the caller.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}
