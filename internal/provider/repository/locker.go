package repository

import (
	"context"
	"sync"
)

// Locker provides named advisory locks. Range queries hold the lock for
// their dataset across the whole load-compute-persist cycle; without it,
// concurrent overlapping requests race on the read-merge-write of shared
// partitions and can duplicate or lose records.
type Locker interface {
	// Lock acquires the named lock and returns its release function.
	Lock(ctx context.Context, name string) (release func(), err error)
}

// LocalLocker serializes access within a single process.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLocalLocker creates an in-process Locker.
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the named mutex.
func (l *LocalLocker) Lock(_ context.Context, name string) (func(), error) {
	l.mu.Lock()
	m, ok := l.locks[name]
	if !ok {
		m = &sync.Mutex{}
		l.locks[name] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock, nil
}

var _ Locker = (*LocalLocker)(nil)
