package review

import "sync"

// Gate serializes mutating operations per submission id. Operations on
// different submissions proceed fully concurrently.
type Gate struct {
	mu    sync.Mutex
	locks map[string]*gateEntry
}

type gateEntry struct {
	mu   sync.Mutex
	refs int
}

func NewGate() *Gate {
	return &Gate{locks: make(map[string]*gateEntry)}
}

// Acquire blocks until the caller exclusively owns the submission id and
// returns the release function. Entries are reference counted so the map
// does not grow with historical ids.
func (g *Gate) Acquire(submissionID string) func() {
	g.mu.Lock()
	entry, ok := g.locks[submissionID]
	if !ok {
		entry = &gateEntry{}
		g.locks[submissionID] = entry
	}
	entry.refs++
	g.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		g.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(g.locks, submissionID)
		}
		g.mu.Unlock()
	}
}
