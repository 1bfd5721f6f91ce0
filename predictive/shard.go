package predictive

import (
	"sync"

	"github.com/IvanBrykalov/predcache/internal/util"
)

// shard is an independent partition owning one admittingCache, one
// transitionModel, the last key observed in this shard, and the mutex
// serializing all access to that state.
type shard[K comparable, V any] struct {
	mu      sync.Mutex
	admit   *admittingCache[K, V]
	trans   *transitionModel[K]
	lastKey K
	hasLast bool
	metrics Metrics

	// hot counters, cache-line padded to avoid false sharing under
	// concurrent shard access.
	_          util.CacheLinePad
	hits       util.PaddedAtomicInt64
	misses     util.PaddedAtomicInt64
	rejects    util.PaddedAtomicInt64
	prefetches util.PaddedAtomicInt64
}

func newShard[K comparable, V any](capacity, sketchWidth, sketchDepth int, hash func(K) uint64, metrics Metrics) *shard[K, V] {
	return &shard[K, V]{
		admit:   newAdmittingCache[K, V](capacity, sketchWidth, sketchDepth, hash),
		trans:   newTransitionModel[K](),
		metrics: metrics,
	}
}

// get observes the last->key transition, updates last key, queries the
// admitting cache, and (if enabled) attempts same-shard prefetch of
// predicted successors. Must be called with mu held.
func (s *shard[K, V]) get(key K, cfg predictConfig[K, V]) (V, bool) {
	if s.hasLast {
		s.trans.observe(s.lastKey, key)
	}
	s.lastKey = key
	s.hasLast = true

	v, ok := s.admit.get(key)
	if ok {
		s.hits.Add(1)
		s.metrics.Hit()
	} else {
		s.misses.Add(1)
		s.metrics.Miss()
	}

	if cfg.enablePrefetch {
		cands := s.trans.topKNext(key, cfg.prefetchTopK, cfg.minTransCount, cfg.minTransProb)
		for _, next := range cands {
			if cfg.shardIndex(next) != cfg.myIndex {
				continue
			}
			if s.admit.contains(next) {
				continue
			}
			var placeholder V
			admitted, evicted := s.admit.put(next, placeholder)
			if admitted {
				s.prefetches.Add(1)
				s.metrics.Prefetch()
				if evicted {
					s.metrics.Evict(EvictAdmission)
				}
			} else {
				s.rejects.Add(1)
				s.metrics.AdmissionReject()
			}
		}
	}

	s.metrics.Size(s.admit.size())
	return v, ok
}

// put inserts/updates key and records it as an access for sequence
// learning. Must be called with mu held.
func (s *shard[K, V]) put(key K, val V) {
	admitted, evicted := s.admit.put(key, val)
	if !admitted {
		s.rejects.Add(1)
		s.metrics.AdmissionReject()
	} else if evicted {
		s.metrics.Evict(EvictAdmission)
	}
	s.lastKey = key
	s.hasLast = true
	s.metrics.Size(s.admit.size())
}

func (s *shard[K, V]) erase(key K) bool {
	ok := s.admit.erase(key)
	if ok {
		s.metrics.Evict(EvictErase)
		s.metrics.Size(s.admit.size())
	}
	return ok
}

func (s *shard[K, V]) len() int { return s.admit.size() }

func (s *shard[K, V]) decay() {
	s.admit.decay()
	s.trans.decayHalf()
}

// predictConfig bundles the read-only knobs a shard needs to run prefetch,
// avoiding a dependency from shard on the owning Cache.
type predictConfig[K comparable, V any] struct {
	enablePrefetch bool
	prefetchTopK   int
	minTransCount  uint32
	minTransProb   float64
	myIndex        int
	shardIndex     func(K) int
}
