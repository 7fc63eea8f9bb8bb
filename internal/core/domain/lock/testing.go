package lock

import (
	"context"
	"sync"
	"time"
)

type TestLocker struct {
	AcquireResult bool
	AcquireError  error
	ReleaseError  error
	Acquired      []string
	Released      []string
	lock          sync.Mutex
}

func NewTestLocker() *TestLocker {
	return &TestLocker{AcquireResult: true}
}

func (l *TestLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if l.AcquireError != nil {
		return false, l.AcquireError
	}
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.AcquireResult {
		l.Acquired = append(l.Acquired, key)
	}
	return l.AcquireResult, nil
}

func (l *TestLocker) Release(ctx context.Context, key string) error {
	if l.ReleaseError != nil {
		return l.ReleaseError
	}
	l.lock.Lock()
	defer l.lock.Unlock()
	l.Released = append(l.Released, key)
	return nil
}
