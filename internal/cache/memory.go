package cache

import (
	"context"
	"sync"
	"time"

	"github.com/Simplici0/carcost/internal/tco"
)

type entry struct {
	data    []byte
	expires time.Time
}

// Memory is an in-process Cache with a fixed TTL. Expired entries are
// dropped when read, and swept from the whole map at most once per TTL
// on write.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
	swept   time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) (tco.Result, bool, error) {
	m.mu.Lock()
	e, ok := m.entries[key]
	if ok && !m.now().Before(e.expires) {
		delete(m.entries, key)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return tco.Result{}, false, nil
	}
	res, err := decode(e.data)
	if err != nil {
		return tco.Result{}, false, err
	}
	return res, true, nil
}

func (m *Memory) Set(_ context.Context, key string, r tco.Result) error {
	data, err := encode(r)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Sub(m.swept) >= m.ttl {
		m.sweep(now)
	}
	m.entries[key] = entry{data: data, expires: now.Add(m.ttl)}
	return nil
}

func (m *Memory) sweep(now time.Time) {
	for key, e := range m.entries {
		if !now.Before(e.expires) {
			delete(m.entries, key)
		}
	}
	m.swept = now
}

// Len reports the number of stored entries, including expired ones not yet swept.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
