package redis

import (
	"context"
	"sync"
	"time"
)

// FakeRepository is an in-memory Repository used by unit tests in place
// of a real redis server, mirroring the teacher's hand-rolled-fake test
// idiom for adapters with narrow interfaces.
type FakeRepository struct {
	mu   sync.Mutex
	data map[string]string
}

// NewFakeRepository builds an empty FakeRepository.
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{data: make(map[string]string)}
}

// SetNX ignores ttl; tests run fast enough that expiry never matters.
func (f *FakeRepository) SetNX(_ context.Context, key, value string, _ time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.data[key]; ok {
		return false, nil
	}

	f.data[key] = value

	return true, nil
}

func (f *FakeRepository) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.data[key], nil
}

func (f *FakeRepository) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.data[key] = value

	return nil
}
