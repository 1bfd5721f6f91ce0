// Package lfu implements a classic frequency-bucket LFU eviction policy.
//
// This is the didactic baseline spec.md names as an external collaborator,
// kept outside the admission-driven predictive core: a straightforward O(1)
// LFU (buckets of same-frequency keys, keyed by frequency, with the
// minimum-frequency bucket tracked) ported from a reference LFUCache
// implementation. It implements the policy.Policy/Hooks contract on its
// own, independent of any concrete cache, and is never wired into the
// predictive package's admittingCache, which is TinyLFU-specific, not plain LFU.
package lfu

import (
	"container/list"

	"github.com/IvanBrykalov/predcache/policy"
)

// lfu implements a per-shard frequency-bucket LFU policy.
//
// Buckets: frequency -> list of nodes at that frequency, MRU-within-bucket
// at Front(). minFreq tracks the lowest frequency currently populated, but
// is only a hint; eviction search scans forward from it in case a removal
// left it stale, which keeps bookkeeping simple at the cost of a bounded
// number of empty-bucket skips.
//
// Concurrency: all methods are called under the shard lock.
type lfu[K comparable, V any] struct {
	h policy.Hooks[K, V]

	capacity int // per-shard capacity, not a global one.

	buckets map[uint64]*list.List
	elem    map[policy.Node[K, V]]*list.Element
	freq    map[policy.Node[K, V]]uint64
	minFreq uint64
}

type lfuPolicy[K comparable, V any] struct{ capacity int }

// New constructs an LFU policy factory. capacity must be the *per-shard*
// entry limit.
func New[K comparable, V any](capacity int) policy.Policy[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return lfuPolicy[K, V]{capacity: capacity}
}

func (p lfuPolicy[K, V]) New(h policy.Hooks[K, V]) policy.ShardPolicy[K, V] {
	return &lfu[K, V]{
		h:        h,
		capacity: p.capacity,
		buckets:  make(map[uint64]*list.List),
		elem:     make(map[policy.Node[K, V]]*list.Element),
		freq:     make(map[policy.Node[K, V]]uint64),
	}
}

// OnAdd admits the new entry at frequency 1 and, if the shard is now over
// capacity, proposes the current minimum-frequency victim for eviction.
func (p *lfu[K, V]) OnAdd(n policy.Node[K, V]) (evict policy.Node[K, V]) {
	p.h.PushFront(n)
	p.insertAt(n, 1)
	p.minFreq = 1

	if p.h.Len() > p.capacity {
		return p.victim()
	}
	return nil
}

// OnGet promotes the entry to the next frequency bucket.
func (p *lfu[K, V]) OnGet(n policy.Node[K, V]) {
	p.touch(n)
	p.h.MoveToFront(n)
}

// OnUpdate follows OnGet semantics.
func (p *lfu[K, V]) OnUpdate(n policy.Node[K, V]) { p.OnGet(n) }

// OnRemove drops the node from its frequency bucket.
func (p *lfu[K, V]) OnRemove(n policy.Node[K, V]) {
	f, ok := p.freq[n]
	if !ok {
		return
	}
	p.removeFromBucket(n, f)
	delete(p.freq, n)
	delete(p.elem, n)
}

// touch bumps n's frequency by one, moving it to the next bucket.
func (p *lfu[K, V]) touch(n policy.Node[K, V]) {
	f, ok := p.freq[n]
	if !ok {
		p.insertAt(n, 1)
		return
	}
	p.removeFromBucket(n, f)
	p.insertAt(n, f+1)
}

func (p *lfu[K, V]) insertAt(n policy.Node[K, V], f uint64) {
	b, ok := p.buckets[f]
	if !ok {
		b = list.New()
		p.buckets[f] = b
	}
	p.elem[n] = b.PushFront(n)
	p.freq[n] = f
}

func (p *lfu[K, V]) removeFromBucket(n policy.Node[K, V], f uint64) {
	b, ok := p.buckets[f]
	if !ok {
		return
	}
	if el, ok := p.elem[n]; ok {
		b.Remove(el)
	}
	if b.Len() == 0 {
		delete(p.buckets, f)
		if p.minFreq == f {
			p.minFreq++
		}
	}
}

// victim scans forward from minFreq for the first non-empty bucket and
// returns its least-recently-touched member.
func (p *lfu[K, V]) victim() policy.Node[K, V] {
	f := p.minFreq
	for {
		if b, ok := p.buckets[f]; ok && b.Len() > 0 {
			p.minFreq = f
			back := b.Back()
			if back == nil {
				return nil
			}
			return back.Value.(policy.Node[K, V])
		}
		f++
		if f > p.minFreq+uint64(p.capacity)+1 {
			// No populated bucket found; nothing to evict.
			return nil
		}
	}
}
