// Package cache provides the keyed LRU structure backing the frame cache.
package cache

// node is an entry in the recency list. It stores the key for O(1)
// deletion from the map and the value so map and list share one allocation
// per entry.
type node[K comparable, V any] struct {
	key   K
	value V
	prev  *node[K, V]
	next  *node[K, V]
}

// LRUMap is a bounded map with least-recently-used eviction: a map joined
// with a doubly linked recency list. The head is the most recently used
// entry, the tail the least.
//
// LRUMap is not thread-safe; callers handle synchronization.
type LRUMap[K comparable, V any] struct {
	entries map[K]*node[K, V]
	head    *node[K, V]
	tail    *node[K, V]
	max     int
}

// New creates an LRUMap bounded to max entries. A max <= 0 means unbounded.
func New[K comparable, V any](max int) *LRUMap[K, V] {
	return &LRUMap[K, V]{
		entries: make(map[K]*node[K, V]),
		max:     max,
	}
}

// Get returns the value for key and marks it most recently used.
func (m *LRUMap[K, V]) Get(key K) (V, bool) {
	n, ok := m.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	m.moveToFront(n)
	return n.value, true
}

// Set inserts or updates key. If the insertion pushes the map over its
// bound, the least-recently-used entry is removed and returned.
func (m *LRUMap[K, V]) Set(key K, value V) (evictedKey K, evicted bool) {
	if n, ok := m.entries[key]; ok {
		n.value = value
		m.moveToFront(n)
		var zero K
		return zero, false
	}

	n := &node[K, V]{key: key, value: value}
	m.entries[key] = n
	m.pushFront(n)

	if m.max > 0 && len(m.entries) > m.max {
		oldest := m.tail
		m.unlink(oldest)
		delete(m.entries, oldest.key)
		return oldest.key, true
	}
	var zero K
	return zero, false
}

// Delete removes key. Reports whether it was present.
func (m *LRUMap[K, V]) Delete(key K) bool {
	n, ok := m.entries[key]
	if !ok {
		return false
	}
	m.unlink(n)
	delete(m.entries, key)
	return true
}

// Oldest returns the least-recently-used key without removing it.
func (m *LRUMap[K, V]) Oldest() (K, bool) {
	if m.tail == nil {
		var zero K
		return zero, false
	}
	return m.tail.key, true
}

// Clear removes all entries.
func (m *LRUMap[K, V]) Clear() {
	m.entries = make(map[K]*node[K, V])
	m.head = nil
	m.tail = nil
}

// Len returns the number of entries.
func (m *LRUMap[K, V]) Len() int {
	return len(m.entries)
}

// Max returns the configured bound.
func (m *LRUMap[K, V]) Max() int {
	return m.max
}

func (m *LRUMap[K, V]) pushFront(n *node[K, V]) {
	n.next = m.head
	n.prev = nil
	if m.head != nil {
		m.head.prev = n
	}
	m.head = n
	if m.tail == nil {
		m.tail = n
	}
}

func (m *LRUMap[K, V]) moveToFront(n *node[K, V]) {
	if n == m.head {
		return
	}
	m.unlink(n)
	m.pushFront(n)
}

func (m *LRUMap[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		m.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		m.tail = n.prev
	}
	n.prev = nil
	n.next = nil
}
