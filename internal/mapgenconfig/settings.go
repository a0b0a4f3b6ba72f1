package mapgenconfig

import "sync"

// RuntimeSettings holds process-wide mapgen knobs that are not part of
// a variant's frozen Params (operational toggles rather than
// world-shape parameters).
type RuntimeSettings struct {
	mu              sync.RWMutex
	profilingActive bool
	logFallbacks    bool
}

var global = &RuntimeSettings{
	profilingActive: false,
	logFallbacks:    true,
}

// GetProfilingActive reports the process-wide profiling toggle.
// profiling.Track records pass timings whether or not it is set.
func GetProfilingActive() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.profilingActive
}

// SetProfilingActive sets the process-wide profiling toggle.
func SetProfilingActive(enabled bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.profilingActive = enabled
}

// GetLogFallbacks reports whether degraded-construction fallbacks are
// logged.
func GetLogFallbacks() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.logFallbacks
}

// SetLogFallbacks toggles fallback logging.
func SetLogFallbacks(enabled bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.logFallbacks = enabled
}
