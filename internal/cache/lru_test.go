package cache

import "testing"

func TestNew(t *testing.T) {
	m := New[string, int](4)
	if m == nil {
		t.Fatal("New returned nil")
	}
	if m.Max() != 4 {
		t.Errorf("expected max 4, got %d", m.Max())
	}
	if m.Len() != 0 {
		t.Errorf("expected empty map, got %d entries", m.Len())
	}
}

func TestGetSet(t *testing.T) {
	m := New[string, int](4)

	m.Set("a", 1)

	v, ok := m.Get("a")
	if !ok {
		t.Error("expected a to exist")
	}
	if v != 1 {
		t.Errorf("expected 1, got %d", v)
	}

	if _, ok := m.Get("missing"); ok {
		t.Error("expected missing key to not exist")
	}
}

func TestSetUpdatesExisting(t *testing.T) {
	m := New[string, int](4)

	m.Set("a", 1)
	if _, evicted := m.Set("a", 2); evicted {
		t.Error("updating a key must not evict")
	}
	if v, _ := m.Get("a"); v != 2 {
		t.Errorf("expected updated value 2, got %d", v)
	}
	if m.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", m.Len())
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	m := New[string, int](2)

	m.Set("a", 1)
	m.Set("b", 2)

	// Touch a so b becomes the oldest.
	m.Get("a")

	evictedKey, evicted := m.Set("c", 3)
	if !evicted {
		t.Fatal("expected an eviction at capacity")
	}
	if evictedKey != "b" {
		t.Errorf("expected b evicted, got %q", evictedKey)
	}
	if _, ok := m.Get("b"); ok {
		t.Error("b should be gone")
	}
	if _, ok := m.Get("a"); !ok {
		t.Error("a should survive")
	}
}

func TestOldest(t *testing.T) {
	m := New[string, int](4)

	if _, ok := m.Oldest(); ok {
		t.Error("empty map has no oldest")
	}

	m.Set("a", 1)
	m.Set("b", 2)
	if k, _ := m.Oldest(); k != "a" {
		t.Errorf("expected oldest a, got %q", k)
	}

	m.Get("a")
	if k, _ := m.Oldest(); k != "b" {
		t.Errorf("after touching a, expected oldest b, got %q", k)
	}
}

func TestDelete(t *testing.T) {
	m := New[string, int](4)

	m.Set("a", 1)
	if !m.Delete("a") {
		t.Error("expected Delete to report existing key")
	}
	if m.Delete("a") {
		t.Error("expected Delete to report missing key")
	}
	if m.Len() != 0 {
		t.Errorf("expected empty map, got %d", m.Len())
	}
}

func TestClear(t *testing.T) {
	m := New[string, int](4)

	m.Set("a", 1)
	m.Set("b", 2)
	m.Clear()

	if m.Len() != 0 {
		t.Errorf("expected empty map after Clear, got %d", m.Len())
	}
	if _, ok := m.Oldest(); ok {
		t.Error("cleared map has no oldest")
	}

	// The map is usable after Clear.
	m.Set("c", 3)
	if v, ok := m.Get("c"); !ok || v != 3 {
		t.Error("expected map usable after Clear")
	}
}

func TestUnbounded(t *testing.T) {
	m := New[int, int](0)
	for i := 0; i < 100; i++ {
		if _, evicted := m.Set(i, i); evicted {
			t.Fatalf("unbounded map evicted at %d", i)
		}
	}
	if m.Len() != 100 {
		t.Errorf("expected 100 entries, got %d", m.Len())
	}
}
