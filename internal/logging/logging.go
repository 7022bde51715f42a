// Package logging centralizes the one call surface every package in this
// module logs through, so the iLogger API (fields map first, message
// second) only has to be gotten right in a single place.
package logging

import (
	"fmt"

	"github.com/it-chain/iLogger"
)

// Logger is satisfied by iLoggerAdapter (Default) below; components take
// a Logger so tests can substitute a recording implementation.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// iLoggerAdapter is the default Logger, backed by it-chain/iLogger.
type iLoggerAdapter struct{}

// Default is the logger every component uses unless a test overrides it.
var Default Logger = iLoggerAdapter{}

func (iLoggerAdapter) Debug(format string, args ...interface{}) {
	iLogger.Debug(nil, fmt.Sprintf(format, args...))
}

func (iLoggerAdapter) Info(format string, args ...interface{}) {
	iLogger.Info(nil, fmt.Sprintf(format, args...))
}

func (iLoggerAdapter) Warn(format string, args ...interface{}) {
	iLogger.Warn(nil, fmt.Sprintf(format, args...))
}

func (iLoggerAdapter) Error(format string, args ...interface{}) {
	iLogger.Error(nil, fmt.Sprintf(format, args...))
}
