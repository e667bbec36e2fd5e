// Package pricecache holds recently resolved values for a short time, in process or in a
// redis instance shared by several processes.
package pricecache

import (
	"context"
	"giftprice-backend/internal/components/assert"
	"giftprice-backend/internal/components/chrono"
	"sync"
	"time"
)

// Cache is a TTL keyed store.
//
// note: fault injection point
type Cache[T any] interface {
	Get(ctx context.Context, key string) (T, bool, error)
	Set(ctx context.Context, key string, value T, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

type memoryEntry[T any] struct {
	value     T
	expiresAt time.Time
}

// Memory is an in process Cache.
type Memory[T any] struct {
	time chrono.API

	mu      sync.RWMutex
	entries map[string]memoryEntry[T]
}

func NewMemory[T any](time chrono.API) *Memory[T] {
	assert.NotNil(time)
	return &Memory[T]{
		time:    time,
		entries: make(map[string]memoryEntry[T]),
	}
}

func (m *Memory[T]) Get(ctx context.Context, key string) (T, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	var zero T
	if !ok {
		return zero, false, nil
	}
	if !m.time.Now().Before(entry.expiresAt) {
		m.mu.Lock()
		if current, ok := m.entries[key]; ok && current.expiresAt.Equal(entry.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return zero, false, nil
	}
	return entry.value, true, nil
}

func (m *Memory[T]) Set(ctx context.Context, key string, value T, ttl time.Duration) error {
	m.mu.Lock()
	m.entries[key] = memoryEntry[T]{
		value:     value,
		expiresAt: m.time.Now().Add(ttl),
	}
	m.mu.Unlock()
	return nil
}

func (m *Memory[T]) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *Memory[T]) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.entries = make(map[string]memoryEntry[T])
	m.mu.Unlock()
	return nil
}

func (m *Memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
