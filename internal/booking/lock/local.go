package lock

import (
	"context"
	"sync"
	"time"
)

type localEntry struct {
	token     string
	expiresAt time.Time
}

// LocalLock is the single-process fallback used when Redis is disabled.
// It mirrors the Redis lock semantics: per-slot, token-owned, TTL-bound.
type LocalLock struct {
	mu    sync.Mutex
	ttl   time.Duration
	held  map[string]localEntry
	clock func() time.Time
}

func NewLocalLock(ttl time.Duration) *LocalLock {
	return &LocalLock{
		ttl:   ttl,
		held:  make(map[string]localEntry),
		clock: time.Now,
	}
}

func (l *LocalLock) Lock(_ context.Context, slotID, token string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	if entry, ok := l.held[slotID]; ok && now.Before(entry.expiresAt) {
		return false, nil
	}
	l.held[slotID] = localEntry{token: token, expiresAt: now.Add(l.ttl)}
	return true, nil
}

func (l *LocalLock) Unlock(_ context.Context, slotID, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if entry, ok := l.held[slotID]; ok && entry.token == token {
		delete(l.held, slotID)
	}
	return nil
}
