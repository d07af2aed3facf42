//go:build darwin || linux

// Registry mapping uintptr handles to Go values.
//
// Go pointers must not be stored in C memory. When an event subscription is
// attached, the registration is kept here and only its numeric id crosses into
// the engine as the callback's user-data pointer. The callback trampoline
// looks the registration back up by id.

package vlc

import "sync"

var (
	handlesMu  sync.RWMutex
	handlesMap = make(map[uintptr]any)
	nextHandle uintptr = 1
)

// registerHandle stores v and returns an id safe to hand to C code.
func registerHandle(v any) uintptr {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	id := nextHandle
	nextHandle++
	handlesMap[id] = v
	return id
}

// lookupHandle retrieves the value for id, or nil if it was never registered
// or has been released.
func lookupHandle(id uintptr) any {
	handlesMu.RLock()
	defer handlesMu.RUnlock()
	return handlesMap[id]
}

// unregisterHandle drops id so the Go value can be collected.
func unregisterHandle(id uintptr) {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	delete(handlesMap, id)
}

// handleCount reports live registrations. Used by tests to detect leaks.
func handleCount() int {
	handlesMu.RLock()
	defer handlesMu.RUnlock()
	return len(handlesMap)
}
