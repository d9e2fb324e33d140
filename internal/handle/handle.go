// Package handle implements a sharded table mapping opaque integer keys to Go
// values. Keys are safe to hand to foreign code as user data; the value stays
// reachable until the key is freed.
package handle

import (
	"sync"
	"sync/atomic"
)

const numShards = 64

// Invalid is never returned by New.
const Invalid uint64 = 0

type shard struct {
	mu     sync.RWMutex
	values map[uint64]any
}

// Table is a set of live handles. The zero value is not usable; call NewTable.
type Table struct {
	shards [numShards]shard
	next   atomic.Uint64
	live   atomic.Int64
}

// NewTable returns an empty table whose first handle is 1.
func NewTable() *Table {
	t := &Table{}
	for i := range t.shards {
		t.shards[i].values = make(map[uint64]any)
	}
	t.next.Store(1)
	return t
}

func (t *Table) shard(h uint64) *shard {
	return &t.shards[h%numShards]
}

// New allocates a handle for v.
func (t *Table) New(v any) uint64 {
	h := t.next.Add(1) - 1
	s := t.shard(h)
	s.mu.Lock()
	s.values[h] = v
	s.mu.Unlock()
	t.live.Add(1)
	return h
}

// Get returns the value stored under h, or nil.
func (t *Table) Get(h uint64) any {
	if h == Invalid {
		return nil
	}
	s := t.shard(h)
	s.mu.RLock()
	v := s.values[h]
	s.mu.RUnlock()
	return v
}

// Free removes h and returns the value it held, or nil if h was not live.
func (t *Table) Free(h uint64) any {
	if h == Invalid {
		return nil
	}
	s := t.shard(h)
	s.mu.Lock()
	v, ok := s.values[h]
	if ok {
		delete(s.values, h)
	}
	s.mu.Unlock()
	if ok {
		t.live.Add(-1)
	}
	return v
}

// Len reports the number of live handles.
func (t *Table) Len() int {
	return int(t.live.Load())
}

// GetTyped retrieves h and asserts it to T.
func GetTyped[T any](t *Table, h uint64) (T, bool) {
	v, ok := t.Get(h).(T)
	return v, ok
}

// FreeTyped frees h only if it holds a T. A handle of another type is left
// untouched.
func FreeTyped[T any](t *Table, h uint64) (T, bool) {
	var zero T
	if h == Invalid {
		return zero, false
	}
	s := t.shard(h)
	s.mu.Lock()
	v, ok := s.values[h].(T)
	if ok {
		delete(s.values, h)
	}
	s.mu.Unlock()
	if !ok {
		return zero, false
	}
	t.live.Add(-1)
	return v, true
}
