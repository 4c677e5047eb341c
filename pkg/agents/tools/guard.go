package tools

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

// DefaultCallTimeout is how long a call may stay in flight before Expire
// drops it.
const DefaultCallTimeout = 5 * time.Minute

// Guard tracks in-flight tool calls by call id, so one id never runs twice
// at the same time.
type Guard struct {
	mu      sync.Mutex
	pending map[string]PendingCall
	timeout time.Duration
	now     func() time.Time
}

// PendingCall is a call that has begun and not yet ended.
type PendingCall struct {
	CallID   string
	ToolName string
	Started  time.Time
}

// NewGuard creates a guard that expires calls older than timeout.
func NewGuard(timeout time.Duration) *Guard {
	return &Guard{
		pending: make(map[string]PendingCall),
		timeout: timeout,
		now:     time.Now,
	}
}

// Begin marks callID as in flight.
func (g *Guard) Begin(callID, toolName string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.pending[callID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCall, callID)
	}
	g.pending[callID] = PendingCall{CallID: callID, ToolName: toolName, Started: g.now()}
	return nil
}

// End clears callID and returns how long it was in flight. ok is false if
// the call was not pending.
func (g *Guard) End(callID string) (took time.Duration, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	call, ok := g.pending[callID]
	if !ok {
		return 0, false
	}
	delete(g.pending, callID)
	return g.now().Sub(call.Started), true
}

// Pending returns the in-flight calls, oldest first.
func (g *Guard) Pending() []PendingCall {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sorted(func(PendingCall) bool { return true })
}

// Expire drops calls that have been in flight longer than the timeout and
// returns them, oldest first.
func (g *Guard) Expire() []PendingCall {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := g.now()
	expired := g.sorted(func(call PendingCall) bool {
		return now.Sub(call.Started) > g.timeout
	})
	for _, call := range expired {
		delete(g.pending, call.CallID)
	}
	return expired
}

func (g *Guard) sorted(keep func(PendingCall) bool) []PendingCall {
	var out []PendingCall
	for _, call := range g.pending {
		if keep(call) {
			out = append(out, call)
		}
	}
	slices.SortFunc(out, func(a, b PendingCall) int {
		if c := a.Started.Compare(b.Started); c != 0 {
			return c
		}
		return strings.Compare(a.CallID, b.CallID)
	})
	return out
}
