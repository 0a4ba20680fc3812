package hashing

import "sync"

// ThreadSafePerftTable wraps PerftTable with mutex protection so parallel
// perft workers can share one table.
type ThreadSafePerftTable struct {
	table *PerftTable
	mu    sync.RWMutex
}

// NewThreadSafePerftTable creates a shared table. maxCapacity of 0 means
// unlimited capacity.
func NewThreadSafePerftTable(maxCapacity int) *ThreadSafePerftTable {
	return &ThreadSafePerftTable{table: NewPerftTable(maxCapacity)}
}

// Lookup returns the stored node count for hash at depth.
func (t *ThreadSafePerftTable) Lookup(hash uint64, depth int) (uint64, bool) {
	// Lookup bumps the hit counter, so it needs the write lock.
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Lookup(hash, depth)
}

// Store records a node count.
func (t *ThreadSafePerftTable) Store(hash uint64, depth int, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Store(hash, depth, nodes)
}

// Len returns the number of stored entries.
func (t *ThreadSafePerftTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Len()
}

// Hits returns the number of successful lookups.
func (t *ThreadSafePerftTable) Hits() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Hits()
}

// IsFull returns true if the table has reached its capacity limit.
func (t *ThreadSafePerftTable) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.IsFull()
}
