package predictive

import "testing"

// Deterministic eviction: capacity 3, get(1) promotes it, put(4) then
// overflows and must evict the true LRU (2), matching scenario S1 of the
// admission-free recency layer.
func TestRecencyStore_EvictsLeastRecent(t *testing.T) {
	t.Parallel()

	s := newRecencyStore[int, string](3)
	s.put(1, "A")
	s.put(2, "B")
	s.put(3, "C")

	if _, ok := s.get(1); !ok {
		t.Fatal("expected hit for 1")
	}
	s.put(4, "D") // overflow: evict LRU, which is now 2

	if _, ok := s.get(2); ok {
		t.Fatal("2 must have been evicted")
	}
	if v, ok := s.get(1); !ok || v != "A" {
		t.Fatal("1 must survive (was promoted)")
	}
	if v, ok := s.get(3); !ok || v != "C" {
		t.Fatal("3 must survive")
	}
	if v, ok := s.get(4); !ok || v != "D" {
		t.Fatal("4 must be present")
	}
}

func TestRecencyStore_PeekLeastRecentExcludesPromotedUnlessSole(t *testing.T) {
	t.Parallel()

	s := newRecencyStore[string, int](2)
	s.put("a", 1)
	s.put("b", 2)
	s.get("a") // promote a

	lru, ok := s.peekLeastRecent()
	if !ok || lru != "b" {
		t.Fatalf("expected b as LRU, got %v ok=%v", lru, ok)
	}
	s.erase("b")

	lru, ok = s.peekLeastRecent()
	if !ok || lru != "a" {
		t.Fatalf("expected a as the sole survivor and thus the LRU key, got %v ok=%v", lru, ok)
	}
}

func TestRecencyStore_InsertingPresentKeyNeverEvicts(t *testing.T) {
	t.Parallel()

	s := newRecencyStore[int, int](2)
	s.put(1, 1)
	s.put(2, 2)
	s.put(1, 11) // update, not a new admission

	if s.size() != 2 {
		t.Fatalf("expected size 2, got %d", s.size())
	}
	if v, ok := s.get(2); !ok || v != 2 {
		t.Fatal("2 must not have been evicted by updating 1")
	}
}

func TestRecencyStore_ZeroCapacityRejectsAllPuts(t *testing.T) {
	t.Parallel()

	s := newRecencyStore[int, int](0)
	s.put(1, 1)
	if s.size() != 0 {
		t.Fatalf("expected size 0 on a zero-capacity store, got %d", s.size())
	}
}

func TestRecencyStore_EraseOnEmptyReturnsFalse(t *testing.T) {
	t.Parallel()

	s := newRecencyStore[int, int](4)
	if s.erase(42) {
		t.Fatal("erase on a never-inserted key must return false")
	}
	if s.size() != 0 {
		t.Fatal("size must be unchanged")
	}
}
