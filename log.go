package tilerun

import "go.uber.org/zap"

// logger is the package logger. It defaults to a nop so the engine is silent
// unless the host installs one; all engine logging is recoverable-diagnostic
// only and never gates behavior.
var logger = zap.NewNop()

// SetLogger installs a logger for engine diagnostics (asset misses, malformed
// descriptors, debug stats). Passing nil restores the nop logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
