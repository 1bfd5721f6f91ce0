package predictive

import (
	"sync/atomic"

	"github.com/IvanBrykalov/predcache/internal/util"
)

// ErrInvalidConfiguration is returned by New when the configuration cannot
// produce a usable cache: a non-positive total capacity, or a per-shard
// capacity of zero (total capacity smaller than the shard count). A
// non-positive Options.Shards is not an error; it selects the default.
var ErrInvalidConfiguration = errConfig("predictive: invalid configuration")

type errConfig string

func (e errConfig) Error() string { return string(e) }

// Cache is a sharded, admission-controlled, prefetch-capable key/value
// cache. All methods are safe for concurrent use by multiple goroutines.
type Cache[K comparable, V any] struct {
	shards []*shard[K, V]
	hash   func(K) uint64
	cfg    predictConfig[K, V]
	closed atomic.Bool
}

// New constructs a Cache with total entry capacity split across
// opt.Shards shards (default 8), any remainder granted to the last shard.
// Returns ErrInvalidConfiguration if capacity is not positive or if any
// shard would receive a capacity of 0.
func New[K comparable, V any](capacity int, opt Options[K]) (*Cache[K, V], error) {
	shards := opt.Shards
	if shards <= 0 {
		shards = 8
	}
	if capacity <= 0 {
		return nil, ErrInvalidConfiguration
	}

	prefetchTopK := opt.PrefetchTopK
	if prefetchTopK <= 0 {
		prefetchTopK = 1
	}
	minTransCount := opt.MinTransCount
	if minTransCount == 0 {
		minTransCount = 4
	}
	minTransProb := opt.MinTransProb
	if minTransProb == 0 {
		minTransProb = 0.2
	}
	enablePrefetch := true
	if opt.EnablePrefetch != nil {
		enablePrefetch = *opt.EnablePrefetch
	}
	metrics := opt.Metrics
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	hash := opt.Hash
	if hash == nil {
		hash = util.XXHash64[K]
	}
	sketchWidth := opt.SketchWidth
	if sketchWidth <= 0 {
		sketchWidth = defaultSketchWidth
	}
	sketchDepth := opt.SketchDepth
	if sketchDepth <= 0 {
		sketchDepth = defaultSketchDepth
	}

	base := capacity / shards
	extra := capacity % shards

	shardIndexFn := func(k K) int { return int(hash(k) % uint64(shards)) }

	c := &Cache[K, V]{
		shards: make([]*shard[K, V], shards),
		hash:   hash,
		cfg: predictConfig[K, V]{
			enablePrefetch: enablePrefetch,
			prefetchTopK:   prefetchTopK,
			minTransCount:  minTransCount,
			minTransProb:   minTransProb,
			shardIndex:     shardIndexFn,
		},
	}
	for i := 0; i < shards; i++ {
		shardCap := base
		if i == shards-1 {
			shardCap += extra
		}
		if shardCap == 0 {
			return nil, ErrInvalidConfiguration
		}
		c.shards[i] = newShard[K, V](shardCap, sketchWidth, sketchDepth, hash, metrics)
	}
	return c, nil
}

// shardFor returns the shard key k routes to, and that shard's index.
func (c *Cache[K, V]) shardFor(k K) (*shard[K, V], int) {
	i := int(c.hash(k) % uint64(len(c.shards)))
	return c.shards[i], i
}

// Get returns the value for k and a presence flag. On hit, the entry is
// promoted to MRU. Whether or not it hits, the access trains the shard's
// transition model, and (if enabled) may trigger same-shard prefetch of
// predicted successors.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	if c.closed.Load() {
		var zero V
		return zero, false
	}
	s, idx := c.shardFor(k)
	cfg := c.cfg
	cfg.myIndex = idx

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(k, cfg)
}

// Put inserts or updates k->v. For sequence learning it records k as the
// shard's last key, so the shard's next Get observes a k->next transition;
// Put itself records no transition into k and never triggers prefetch
// (prefetch is driven by Get's predicted-successor scan). May be silently rejected by
// TinyLFU admission if the shard is full and k is estimated less popular
// than its LRU victim.
func (c *Cache[K, V]) Put(k K, v V) {
	if c.closed.Load() {
		return
	}
	s, _ := c.shardFor(k)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(k, v)
}

// Erase deletes k if present and reports whether it was.
func (c *Cache[K, V]) Erase(k K) bool {
	if c.closed.Load() {
		return false
	}
	s, _ := c.shardFor(k)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.erase(k)
}

// NumShards returns the fixed number of shards this cache was constructed
// with.
func (c *Cache[K, V]) NumShards() int { return len(c.shards) }

// Len sums each shard's resident entry count under its own lock. It is not
// a global consistent snapshot: other shards may mutate concurrently while
// one is being summed.
func (c *Cache[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		total += s.len()
		s.mu.Unlock()
	}
	return total
}

// DecayModels halves every shard's admission sketch and transition model
// counters, under each shard's own lock. Callers should invoke this
// periodically to bound TransitionModel growth and keep frequency
// estimates weighted toward recent behavior.
func (c *Cache[K, V]) DecayModels() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.decay()
		s.mu.Unlock()
	}
}

// Close marks the cache as closed; afterwards Get, Put and Erase are no-ops
// (Len, NumShards and DecayModels still operate on the shards). Current
// implementation is a soft close and always returns nil.
func (c *Cache[K, V]) Close() error {
	c.closed.Store(true)
	return nil
}
