package service

import "sync"

// keyedMutex hands out one mutex per key. The vault service locks per user
// id around every read-modify-write, so two in-flight saves for the same
// user cannot interleave under real parallelism. Mutexes are never reclaimed;
// the key space (active users of one installation) is tiny.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for key and returns its unlock function.
func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
