// Package mglog wraps the structured logger the generation core uses
// for its two logging surfaces: fallback resolution warned once at
// construction, and one debug-level entry per abandoned dungeon
// attempt. No counter of abandoned attempts is kept, and cave outcomes
// are not logged.
package mglog

import "go.uber.org/zap"

// Logger is a thin façade over *zap.SugaredLogger scoped to the
// generation core's logging needs.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New builds a Logger backed by base, or a no-op logger if base is
// nil.
func New(base *zap.Logger) *Logger {
	if base == nil {
		return &Logger{sugar: zap.NewNop().Sugar()}
	}
	return &Logger{sugar: base.Sugar()}
}

// NoOp returns a Logger that discards everything, for tests and
// callers with no logging infrastructure.
func NoOp() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// FallbackUsed warns once that a requested node name was missing and a
// degraded substitute was used instead.
func (l *Logger) FallbackUsed(requested, resolved string) {
	l.sugar.Warnw("mapgen node fallback applied",
		"requested", requested,
		"resolved", resolved,
	)
}

// DungeonAbandoned emits one debug-level entry saying that a dungeon
// attempt for a chunk was abandoned; it keeps no count of its own.
func (l *Logger) DungeonAbandoned(reason string, blockX, blockY, blockZ int32) {
	l.sugar.Debugw("dungeon generation abandoned",
		"reason", reason,
		"x", blockX, "y", blockY, "z", blockZ,
	)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}
