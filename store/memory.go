// Package store keeps recently computed results in process memory.
package store

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Get for unknown or evicted keys.
var ErrNotFound = errors.New("not found")

// =============================================================================
// MEMORY STORE - Bounded, insertion-ordered, in-memory
// =============================================================================

// Memory holds up to capacity values. Adding beyond capacity evicts the
// oldest entry. Nothing survives a restart.
type Memory[T any] struct {
	mu       sync.RWMutex
	capacity int
	values   map[string]T
	order    []string // oldest first
}

// NewMemory creates a store. capacity < 1 is treated as 1.
func NewMemory[T any](capacity int) *Memory[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Memory[T]{
		capacity: capacity,
		values:   make(map[string]T, capacity),
		order:    make([]string, 0, capacity),
	}
}

// Put stores value under id, replacing any previous value without changing
// its position.
func (m *Memory[T]) Put(_ context.Context, id string, value T) error {
	if id == "" {
		return errors.New("store: empty id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.values[id]; ok {
		m.values[id] = value
		return nil
	}
	if len(m.order) == m.capacity {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.values, oldest)
	}
	m.values[id] = value
	m.order = append(m.order, id)
	return nil
}

func (m *Memory[T]) Get(_ context.Context, id string) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return v, nil
}

// Recent returns up to limit values, newest first. limit <= 0 returns all.
func (m *Memory[T]) Recent(_ context.Context, limit int) []T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.order)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]T, 0, n)
	for i := len(m.order) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, m.values[m.order[i]])
	}
	return out
}

func (m *Memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}
