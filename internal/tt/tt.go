// Package tt implements the transposition table: a concurrent mapping from
// position fingerprint to search result, bounded in capacity, with entries
// replaced rather than explicitly deleted. Sharded by the low bits of the
// fingerprint so unrelated probes/stores don't contend on one lock — the
// same idea as the teacher's single mutex-free array in
// internal/engine/transposition.go, generalized from one array to N
// independently-locked shards so no caller ever observes a torn entry.
package tt

import (
	"sync"

	"github.com/danielproano/bulletchess/internal/rules"
)

// Flag classifies the kind of bound a stored score represents.
type Flag uint8

const (
	Exact Flag = iota
	Lower
	Upper
)

// Entry is a completed search result for one fingerprint.
type Entry struct {
	Score int
	Depth int
	Flag  Flag
	Move  rules.Move
}

// DefaultCapacity is the default maximum entry count (2^20).
const DefaultCapacity = 1 << 20

const shardCount = 256

type shard struct {
	mu      sync.RWMutex
	entries map[uint64]Entry
	cap     int
}

// Table is the shared, concurrency-safe transposition table. A single
// Table is shared across every search thread for the lifetime of an
// engine handle — it is never reset between plies, only between
// independent games by callers that clear it explicitly.
type Table struct {
	shards [shardCount]*shard
}

// New creates a table bounded by capacity total entries, split evenly
// across shards.
func New(capacity int) *Table {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	perShard := capacity / shardCount
	extra := capacity % shardCount
	t := &Table{}
	for i := range t.shards {
		c := perShard
		if i < extra {
			c++
		}
		t.shards[i] = &shard{
			entries: make(map[uint64]Entry, c/4+1),
			cap:     c,
		}
	}
	return t
}

func (t *Table) shardFor(fp uint64) *shard {
	return t.shards[fp%shardCount]
}

// Probe looks up fp. A miss returns the zero Entry and false — TT entries
// are hints only, always re-validated by the caller against depth and the
// stored move's legality.
func (t *Table) Probe(fp uint64) (Entry, bool) {
	s := t.shardFor(fp)
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[fp]
	return e, ok
}

// Store inserts or replaces the entry at fp per the replacement policy:
// prefer deeper depth; on equal depth, prefer Exact over a bound flag;
// ties break by most recent (i.e. the incoming entry wins). When the
// owning shard is at capacity and fp is not already present, the store is
// silently dropped — the shard's existing residents double as the
// eviction policy.
func (t *Table) Store(fp uint64, e Entry) {
	s := t.shardFor(fp)
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, present := s.entries[fp]
	if !present {
		if len(s.entries) >= s.cap {
			return
		}
		s.entries[fp] = e
		return
	}

	if !shouldReplace(existing, e) {
		return
	}
	s.entries[fp] = e
}

func shouldReplace(existing, incoming Entry) bool {
	if incoming.Depth != existing.Depth {
		return incoming.Depth > existing.Depth
	}
	if incoming.Flag == Exact && existing.Flag != Exact {
		return true
	}
	if existing.Flag == Exact && incoming.Flag != Exact {
		return false
	}
	// Equal depth, equal bound class: most recent wins.
	return true
}

// Len returns the total number of entries currently stored.
func (t *Table) Len() int {
	total := 0
	for _, s := range t.shards {
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

// Capacity returns the total configured capacity across all shards.
func (t *Table) Capacity() int {
	total := 0
	for _, s := range t.shards {
		total += s.cap
	}
	return total
}

// Clear drops every entry. Used between independent games, never mid-search.
func (t *Table) Clear() {
	for _, s := range t.shards {
		s.mu.Lock()
		s.entries = make(map[uint64]Entry, s.cap/4+1)
		s.mu.Unlock()
	}
}
