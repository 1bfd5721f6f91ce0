// Package predictive implements a sharded, admission-controlled cache core
// that learns access sequences and prefetches likely successors.
//
// Design
//
//   - Storage: each shard keeps a map[K]*node for O(1) lookup and an
//     intrusive MRU<->LRU doubly linked list for recency ordering; capacity
//     is gated by admission rather than unconditional LRU eviction.
//
//   - Admission: newcomers to a full shard are only admitted if a
//     Count-Min Sketch estimates them as at least as popular as the current
//     LRU victim (TinyLFU-style protection against scan pollution).
//
//   - Prediction: each shard also keeps a first-order Markov model of
//     observed key-to-key transitions. On every Get, the model may suggest
//     up to PrefetchTopK likely successors; those routing back to the same
//     shard are speculatively inserted as placeholder entries, subject to
//     the same admission rule as any other Put.
//
//   - Concurrency: one mutex per shard, held for the duration of Get/Put
//     (including any same-shard prefetch it triggers). No operation ever
//     holds two shard locks at once.
//
//   - Aging: both the sketch and the transition model grow monotonically
//     until DecayModels is called. Callers are expected to invoke it
//     periodically (e.g. from a ticker) to bound memory and keep frequency
//     estimates weighted toward recent behavior.
//
// Basic usage
//
//	c, err := predictive.New[string, string](10_000, predictive.Options[string]{})
//	if err != nil {
//	    // handle invalid configuration
//	}
//	c.Put("a", "1")
//	if v, ok := c.Get("a"); ok {
//	    _ = v
//	}
//	c.Erase("a")
//
// With prefetch tuned for a short repeating access pattern
//
//	c, err := predictive.New[int, string](1000, predictive.Options[int]{
//	    Shards:         8,
//	    PrefetchTopK:   1,
//	    MinTransCount:  4,
//	    MinTransProb:   0.2,
//	    EnablePrefetch: predictive.Bool(true),
//	})
//
// See predictive/options.go for the full set of tunables and their
// defaults, and metrics/prom for a Prometheus adapter that can be wired in
// through Options.Metrics.
package predictive
