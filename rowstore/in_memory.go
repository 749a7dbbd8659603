package rowstore

import (
	"hash/fnv"
	"sync"

	"github.com/hupe1980/wildmap/core"
)

// DefaultShards is the shard count used when none is configured.
const DefaultShards = 32

// row is a single append-only value sequence with its own lock.
type row struct {
	mu     sync.Mutex
	values []string
}

func (r *row) append(v string) {
	r.mu.Lock()
	r.values = append(r.values, v)
	r.mu.Unlock()
}

func (r *row) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}

type shard struct {
	mu   sync.RWMutex
	rows map[core.RowID]*row
}

// InMemoryStore is a process-local RowStore.
//
// Concurrency: row ids are spread over shards by FNV-1a hash. A shard lock is
// held only to find or create a row; appends and reads then take the row's own
// mutex. No lock ever covers two rows at once, so writers of different rows
// proceed independently.
//
// Data is copied on retrieval; callers can never reach the stored slice.
type InMemoryStore struct {
	shards []*shard
}

// NewInMemoryStore creates an empty store with the given number of shards.
// Non-positive values select DefaultShards.
func NewInMemoryStore(shards int) *InMemoryStore {
	if shards <= 0 {
		shards = DefaultShards
	}
	s := &InMemoryStore{shards: make([]*shard, shards)}
	for i := range s.shards {
		s.shards[i] = &shard{rows: make(map[core.RowID]*row)}
	}
	return s
}

// shardFor hashes a row id to its shard using FNV-1a.
func (s *InMemoryStore) shardFor(id core.RowID) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return s.shards[h.Sum32()%uint32(len(s.shards))]
}

// Append adds value to the end of the row, creating the row if absent.
func (s *InMemoryStore) Append(id core.RowID, value string) {
	sh := s.shardFor(id)

	sh.mu.RLock()
	r, ok := sh.rows[id]
	sh.mu.RUnlock()

	if !ok {
		sh.mu.Lock()
		r, ok = sh.rows[id]
		if !ok {
			r = &row{}
			sh.rows[id] = r
		}
		sh.mu.Unlock()
	}

	r.append(value)
}

// Get returns a copy of the row or an empty slice if it does not exist.
func (s *InMemoryStore) Get(id core.RowID) []string {
	sh := s.shardFor(id)

	sh.mu.RLock()
	r, ok := sh.rows[id]
	sh.mu.RUnlock()

	if !ok {
		return []string{}
	}
	return r.snapshot()
}

// IsEmpty reports whether no rows exist.
func (s *InMemoryStore) IsEmpty() bool {
	for _, sh := range s.shards {
		sh.mu.RLock()
		n := len(sh.rows)
		sh.mu.RUnlock()
		if n > 0 {
			return false
		}
	}
	return true
}

// Len returns the number of rows across all shards.
func (s *InMemoryStore) Len() int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		total += len(sh.rows)
		sh.mu.RUnlock()
	}
	return total
}

// Clear removes all rows. Shards are reset one at a time; a concurrent
// writer may land a value in a shard that was already cleared.
func (s *InMemoryStore) Clear() {
	for _, sh := range s.shards {
		sh.mu.Lock()
		sh.rows = make(map[core.RowID]*row)
		sh.mu.Unlock()
	}
}

// Shards returns the configured shard count.
func (s *InMemoryStore) Shards() int {
	return len(s.shards)
}
