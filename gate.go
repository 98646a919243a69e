package md2office

import (
	"sync"
	"time"
)

// DefaultDebounce is the window within which repeated triggers are ignored.
const DefaultDebounce = 500 * time.Millisecond

// Gate serializes hotkey-triggered pipeline runs: repeated triggers inside
// the debounce window are dropped, and at most one run is active at a time.
// The parser itself imposes no such restriction; the gate belongs to the
// caller-level front end (hotkey handler, tray action) driving the Service.
type Gate struct {
	mu       sync.Mutex
	debounce time.Duration
	lastFire time.Time
	running  bool

	now func() time.Time // injectable clock for tests
}

// NewGate creates a gate with the given debounce window.
// A non-positive window disables debouncing but keeps mutual exclusion.
func NewGate(debounce time.Duration) *Gate {
	return &Gate{debounce: debounce, now: time.Now}
}

// TryAcquire attempts to start a run. It returns false when the trigger
// falls inside the debounce window or another run is still active; the
// caller should drop the trigger. On true, the caller owns the run and
// must call Release when done.
func (g *Gate) TryAcquire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if g.debounce > 0 && now.Sub(g.lastFire) < g.debounce {
		return false
	}
	g.lastFire = now

	if g.running {
		return false
	}
	g.running = true
	return true
}

// Release ends the current run. Calling Release without a successful
// TryAcquire is a no-op.
func (g *Gate) Release() {
	g.mu.Lock()
	g.running = false
	g.mu.Unlock()
}
