package monitor

import "sync"

// keyLock is a set of mutexes keyed by ID.
// Entries are reference counted and removed when nobody holds or waits for them.
type keyLock struct {
	mu    sync.Mutex
	locks map[int64]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyLock() *keyLock {
	return &keyLock{
		locks: make(map[int64]*refMutex),
	}
}

// Lock locks key and returns function unlocking it.
func (l *keyLock) Lock(key int64) func() {
	l.mu.Lock()
	lock, ok := l.locks[key]
	if !ok {
		lock = &refMutex{}
		l.locks[key] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.Lock()

	return func() {
		lock.Unlock()

		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}

func (l *keyLock) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
