package store

import "sync"

// documentLocks hands out one RWMutex per document name.
type documentLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.RWMutex
}

func newDocumentLocks() *documentLocks {
	return &documentLocks{locks: make(map[string]*sync.RWMutex)}
}

func (l *documentLocks) get(name string) *sync.RWMutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[name]
	if !ok {
		lock = &sync.RWMutex{}
		l.locks[name] = lock
	}
	return lock
}
