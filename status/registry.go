// Package status is the metrics facade shared by the scheduler, the session and the HUD
// Writers cache pointers once; per-tick updates touch atomics only
package status

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// Metric keys
const (
	KeyTicks       = "engine.ticks"
	KeyPausedTicks = "engine.paused_ticks"
	KeyPickups     = "game.pickups"
	KeyRounds      = "game.rounds"
	KeyPhase       = "game.phase"
	KeySpeed       = "player.speed"
)

// Registry is the central metrics facade
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Summary renders every metric as space-separated key=value pairs in key order
func (r *Registry) Summary() string {
	var parts []string
	r.Strings.Range(func(key string, s *AtomicString) {
		parts = append(parts, key+"="+s.Load())
	})
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, f *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.1f", key, f.Get()))
	})
	return strings.Join(parts, " ")
}

// MetricMap lazily allocates one T per key
// Registration takes the write lock; cached pointers are used lock-free afterwards
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

// NewMetricMap creates an initialized MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, allocating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

func (m *MetricMap[T]) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.items[key]
	return ok
}

// Range visits metrics in sorted key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fn(k, m.items[k])
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
