package service

import "sync"

// roomLocks hands out one mutex per room id. The booking service holds
// the room's mutex across the conflict check and the write that
// follows it, so two concurrent requests for the same room cannot both
// pass the check before either insert lands. Entries are never removed;
// the map grows with the number of distinct rooms, which is small.
type roomLocks struct {
	mu sync.Mutex
	m  map[uint64]*sync.Mutex
}

// lock blocks until the room's mutex is held and returns the unlock
// function.
func (l *roomLocks) lock(roomID uint64) func() {
	l.mu.Lock()
	if l.m == nil {
		l.m = make(map[uint64]*sync.Mutex)
	}
	rm := l.m[roomID]
	if rm == nil {
		rm = &sync.Mutex{}
		l.m[roomID] = rm
	}
	l.mu.Unlock()

	rm.Lock()
	return rm.Unlock
}
