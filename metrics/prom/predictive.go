package prom

import (
	"github.com/IvanBrykalov/predcache/predictive"
	"github.com/prometheus/client_golang/prometheus"
)

// PredictiveAdapter implements predictive.Metrics and exports Prometheus
// counters/gauges for the admission+prediction cache core. Safe for
// concurrent use; all Prometheus metric types are goroutine-safe.
type PredictiveAdapter struct {
	hits       prometheus.Counter
	misses     prometheus.Counter
	evicts     *prometheus.CounterVec
	rejects    prometheus.Counter
	prefetches prometheus.Counter
	sizeEnt    prometheus.Gauge
}

// NewPredictive constructs a Prometheus metrics adapter for predictive.Cache.
//   - reg:         registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func NewPredictive(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *PredictiveAdapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &PredictiveAdapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "hits_total",
			Help:        "Cache hits",
			ConstLabels: constLabels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "misses_total",
			Help:        "Cache misses",
			ConstLabels: constLabels,
		}),
		evicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "evictions_total",
				Help:        "Cache evictions by reason",
				ConstLabels: constLabels,
			},
			[]string{"reason"},
		),
		rejects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "admission_rejects_total",
			Help:        "Newcomers rejected by TinyLFU admission",
			ConstLabels: constLabels,
		}),
		prefetches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "prefetches_total",
			Help:        "Placeholder entries admitted by Markov prefetch",
			ConstLabels: constLabels,
		}),
		sizeEnt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "size_entries",
			Help:        "Number of resident entries (last shard observed)",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.hits, a.misses, a.evicts, a.rejects, a.prefetches, a.sizeEnt)
	return a
}

func (a *PredictiveAdapter) Hit()  { a.hits.Inc() }
func (a *PredictiveAdapter) Miss() { a.misses.Inc() }

func (a *PredictiveAdapter) Evict(r predictive.EvictReason) {
	a.evicts.WithLabelValues(predictiveReason(r)).Inc()
}

func (a *PredictiveAdapter) AdmissionReject() { a.rejects.Inc() }
func (a *PredictiveAdapter) Prefetch()        { a.prefetches.Inc() }

// Size updates the entries gauge. Called after every shard Get and Put, and
// after each Erase that removed an entry, with that shard's own count; the
// gauge therefore reflects whichever shard was
// last touched, not a cross-shard sum (see predictive.Cache.Len for that).
func (a *PredictiveAdapter) Size(entries int) {
	a.sizeEnt.Set(float64(entries))
}

func predictiveReason(r predictive.EvictReason) string {
	switch r {
	case predictive.EvictErase:
		return "erase"
	default:
		return "admission"
	}
}

var _ predictive.Metrics = (*PredictiveAdapter)(nil)
