package lfu

import (
	"testing"

	"github.com/IvanBrykalov/predcache/policy"
)

// --- test doubles (same shape as in LRU/2Q tests) ---

type testNode[K comparable, V any] struct {
	k K
	v V
}

func (n *testNode[K, V]) Key() K    { return n.k }
func (n *testNode[K, V]) Value() *V { return &n.v }

type mockHooks[K comparable, V any] struct {
	pushFrontCnt   int
	moveToFrontCnt int
	lenVal         int
}

func (h *mockHooks[K, V]) MoveToFront(policy.Node[K, V]) { h.moveToFrontCnt++ }
func (h *mockHooks[K, V]) PushFront(policy.Node[K, V])   { h.pushFrontCnt++; h.lenVal++ }
func (h *mockHooks[K, V]) Remove(policy.Node[K, V])      { h.lenVal-- }
func (h *mockHooks[K, V]) Back() policy.Node[K, V]       { return nil }
func (h *mockHooks[K, V]) Len() int                      { return h.lenVal }

// --- tests ---

// A fresh entry is admitted at frequency 1 with no eviction while under
// capacity.
func TestLFU_OnAdd_UnderCapacity_NoEvict(t *testing.T) {
	t.Parallel()

	h := &mockHooks[string, int]{}
	p := New[string, int](2).New(h).(*lfu[string, int])

	n := &testNode[string, int]{k: "a", v: 1}
	ev := p.OnAdd(n)

	if ev != nil {
		t.Fatalf("expected no eviction under capacity, got %v", ev)
	}
	if f := p.freq[n]; f != 1 {
		t.Fatalf("expected frequency 1, got %d", f)
	}
}

// Overflowing capacity proposes the least-frequently-used entry.
func TestLFU_OverflowEvictsLeastFrequent(t *testing.T) {
	t.Parallel()

	h := &mockHooks[string, int]{}
	p := New[string, int](2).New(h).(*lfu[string, int])

	a := &testNode[string, int]{k: "a", v: 1}
	b := &testNode[string, int]{k: "b", v: 2}
	c := &testNode[string, int]{k: "c", v: 3}

	p.OnAdd(a)
	p.OnAdd(b)
	p.OnGet(a) // a now at frequency 2; b stays at 1

	ev := p.OnAdd(c)
	if ev != b {
		t.Fatalf("expected b (freq 1) to be evicted, got %v", ev)
	}
}

// Repeated access promotes an entry out of the minimum-frequency bucket,
// protecting it from eviction in favor of a colder entry.
func TestLFU_FrequentEntrySurvives(t *testing.T) {
	t.Parallel()

	h := &mockHooks[string, int]{}
	p := New[string, int](2).New(h).(*lfu[string, int])

	hot := &testNode[string, int]{k: "hot", v: 1}
	cold := &testNode[string, int]{k: "cold", v: 2}

	p.OnAdd(hot)
	p.OnAdd(cold)
	p.OnGet(hot)
	p.OnGet(hot)
	p.OnGet(hot)

	newcomer := &testNode[string, int]{k: "new", v: 3}
	ev := p.OnAdd(newcomer)
	if ev != cold {
		t.Fatalf("expected cold entry evicted, got %v", ev)
	}
}

// OnRemove drops bookkeeping so a re-added key starts fresh at frequency 1.
func TestLFU_OnRemove_ResetsFrequency(t *testing.T) {
	t.Parallel()

	h := &mockHooks[string, int]{}
	p := New[string, int](2).New(h).(*lfu[string, int])

	n := &testNode[string, int]{k: "a", v: 1}
	p.OnAdd(n)
	p.OnGet(n)
	p.OnRemove(n)

	if _, ok := p.freq[n]; ok {
		t.Fatal("frequency bookkeeping must be cleared after OnRemove")
	}
}
