package hashing

// entryKey identifies a subtree: the position and the remaining depth.
type entryKey struct {
	hash  uint64
	depth int
}

// PerftTable remembers node counts of subtrees already explored.
type PerftTable struct {
	entries map[entryKey]uint64
	// maxCapacity limits entries (0 = unlimited)
	maxCapacity int
	hits        int
}

// NewPerftTable creates an empty table. maxCapacity of 0 means unlimited.
func NewPerftTable(maxCapacity int) *PerftTable {
	return &PerftTable{
		entries:     make(map[entryKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored node count for hash at depth.
func (t *PerftTable) Lookup(hash uint64, depth int) (uint64, bool) {
	nodes, ok := t.entries[entryKey{hash, depth}]
	if ok {
		t.hits++
	}
	return nodes, ok
}

// Store records a node count. Once the table is full new entries are
// dropped; existing ones can still be read.
func (t *PerftTable) Store(hash uint64, depth int, nodes uint64) {
	if t.IsFull() {
		return
	}
	t.entries[entryKey{hash, depth}] = nodes
}

// IsFull reports whether the capacity limit has been reached.
func (t *PerftTable) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Len returns the number of stored entries.
func (t *PerftTable) Len() int {
	return len(t.entries)
}

// Hits returns the number of successful lookups.
func (t *PerftTable) Hits() int {
	return t.hits
}
