package mglog

import "testing"

func TestNoOpDoesNotPanic(t *testing.T) {
	l := NoOp()
	l.FallbackUsed("mapgen_ice", "air")
	l.DungeonAbandoned("no valid door", 0, 0, 0)
	if err := l.Sync(); err != nil {
		// zap's stdout sync commonly errors on non-tty stdout; just
		// exercise the call path.
		_ = err
	}
}

func TestNewWithNilBaseIsNoOp(t *testing.T) {
	l := New(nil)
	l.FallbackUsed("a", "b")
}
