// Package cache keeps rendered public views so anonymous reads do not hit
// the database on every request.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"hackportal-backend/errs"
)

const (
	Prefix      = "submissions:"
	PublicKey   = Prefix + "public"
	RankingsKey = Prefix + "rankings"

	// GenerationKey lives outside Prefix so Invalidate never resets it.
	GenerationKey = "submissions-generation"
)

// Cache stores JSON encoded values. Get reports false on a miss.
//
// Readers fetch Generation before building a value and store it under
// Versioned(key, gen). A value built before an Invalidate therefore lands
// under a generation nobody reads any more.
type Cache interface {
	Get(ctx context.Context, key string, dst interface{}) (bool, error)
	Set(ctx context.Context, key string, v interface{}) error
	Generation(ctx context.Context) (int64, error)
	// Invalidate bumps the generation and drops every key under Prefix.
	Invalidate(ctx context.Context) error
}

func Versioned(key string, gen int64) string {
	return fmt.Sprintf("%s:%d", key, gen)
}

func cacheError(err error) error {
	return fmt.Errorf("%w: %v", errs.ErrCache, err)
}

type Nop struct{}

func (Nop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (Nop) Set(context.Context, string, interface{}) error         { return nil }
func (Nop) Generation(context.Context) (int64, error)              { return 0, nil }
func (Nop) Invalidate(context.Context) error                       { return nil }

type entry struct {
	data    []byte
	expires time.Time
}

// Memory is a process-local Cache. Expired entries are dropped on read.
type Memory struct {
	lock       sync.Mutex
	ttl        time.Duration
	entries    map[string]entry
	generation int64

	Now func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]entry),
		Now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string, dst interface{}) (bool, error) {
	m.lock.Lock()
	e, ok := m.entries[key]
	if ok && m.ttl > 0 && !m.Now().Before(e.expires) {
		delete(m.entries, key)
		ok = false
	}
	m.lock.Unlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(e.data, dst); err != nil {
		return false, cacheError(err)
	}
	return true, nil
}

func (m *Memory) Set(_ context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return cacheError(err)
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	m.entries[key] = entry{data: data, expires: m.Now().Add(m.ttl)}
	return nil
}

func (m *Memory) Generation(context.Context) (int64, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.generation, nil
}

func (m *Memory) Invalidate(context.Context) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.generation++
	m.entries = make(map[string]entry)
	return nil
}
