// Package predcache is a generic, sharded, predictive in-memory cache: a
// TinyLFU admission gate over an LRU recency store, paired with a
// first-order Markov model that observes access sequences and
// opportunistically prefetches predicted successors.
//
// Design
//
//   - Concurrency: the cache is split into shards, each protected by its own
//     sync.Mutex. Keys route to shards by hash, and prefetch only ever
//     touches the shard already locked by the triggering Get — no shard ever
//     acquires a second shard's lock.
//
//   - Admission: every shard keeps a Count-Min Sketch estimating each key's
//     recent popularity. Once a shard is full, a novel key is only admitted
//     (evicting the current LRU victim) if its estimated frequency is at
//     least the victim's — see predictive/admitting.go.
//
//   - Prediction: each shard also tracks per-key successor counts. On every
//     Get, hit or miss, the shard looks up the most likely next keys and inserts placeholder
//     entries for the ones that pass the configured count/probability
//     thresholds, so a subsequent Get for a predicted key is often already
//     resident.
//
//   - Metrics: predictive.Options.Metrics receives Hit/Miss/Evict/
//     AdmissionReject/Prefetch/Size signals. NoopMetrics is the default;
//     plug metrics/prom.NewPredictive to export to Prometheus.
//
// Basic usage
//
//	c, err := predictive.New[string, []byte](10_000, predictive.Options[string]{})
//	if err != nil {
//	    // handle invalid configuration
//	}
//	c.Put("a", []byte("1"))
//	if v, ok := c.Get("a"); ok {
//	    _ = v // use value
//	}
//	c.Erase("a")
//
// Exporting metrics (Prometheus adapter)
//
//	m := prom.NewPredictive(nil, "predcache", "demo", nil)
//	c, _ := predictive.New[string, []byte](10_000, predictive.Options[string]{
//	    Metrics: m,
//	})
//
// External collaborators
//
// A few components live outside the predictive core and are not wired into
// it: policy/lfu is a standalone frequency-bucket LFU policy implementing
// the shared policy.Policy contract; cmd/bench is a synthetic-workload
// benchmark harness. Neither of these
// are required to use the cache — they document alternative strategies and
// exercise the core from the outside.
//
// See package predictive for the Cache/Options API and package policy for
// the Policy/Hooks interfaces an alternative eviction strategy implements.
package predcache
