package service

import "sync"

// MatchLocks serializes writes per match id. Submitting an action reads,
// mutates and rewrites the snapshot document, so two concurrent actions on
// the same match must not interleave.
type MatchLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewMatchLocks() *MatchLocks {
	return &MatchLocks{locks: map[uint]*sync.Mutex{}}
}

// Get returns the mutex for a match, creating it on first use. Locks are
// never collected; the footprint is one mutex per match seen by this
// process.
func (l *MatchLocks) Get(id uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}
