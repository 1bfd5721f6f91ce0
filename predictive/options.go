package predictive

// Options configures the predictive sharded cache. Zero values are mostly
// safe; sane defaults are applied in New():
//   - Shards <= 0        => 8
//   - PrefetchTopK <= 0  => 1
//   - MinTransCount == 0 => 4
//   - MinTransProb == 0  => 0.2
//   - SketchWidth <= 0   => 4096 (rounded up to a power of two)
//   - SketchDepth <= 0   => 4
//   - nil Metrics        => NoopMetrics
//   - nil Hash           => internal/util.XXHash64
//   - nil EnablePrefetch => true
//
// EnablePrefetch is a *bool rather than a bool so its zero value (nil)
// means "use the default" instead of colliding with Go's false zero value;
// pass a literal address (predictive.Bool(false)) to disable it explicitly.
type Options[K comparable] struct {
	// Shards is the number of independent lock-striped partitions.
	Shards int

	// PrefetchTopK bounds how many predicted successors are considered per
	// Get.
	PrefetchTopK int

	// MinTransCount is the minimum observed count a transition must reach
	// before it is eligible for prefetch.
	MinTransCount uint32

	// MinTransProb is the minimum empirical probability (count/total) a
	// transition must reach before it is eligible for prefetch.
	MinTransProb float64

	// EnablePrefetch turns the Markov-driven speculative insertion on or
	// off. The transition model is always trained regardless of this
	// setting; disabling it only stops predictions from driving
	// placeholder puts. Nil defaults to enabled.
	EnablePrefetch *bool

	// SketchWidth/SketchDepth size each shard's Count-Min Sketch. Width is
	// rounded up to the next power of two.
	SketchWidth int
	SketchDepth int

	// Metrics receives Hit/Miss/Evict/AdmissionReject/Prefetch/Size
	// signals. Nil uses NoopMetrics.
	Metrics Metrics

	// Hash overrides the structural hash used both for shard routing and
	// for sketch row mixing. Nil uses internal/util.XXHash64.
	Hash func(K) uint64
}

// Bool returns a pointer to b, for populating Options.EnablePrefetch with a
// literal.
func Bool(b bool) *bool { return &b }
