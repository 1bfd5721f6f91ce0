// Command bench runs a synthetic workload against the predictive cache and exposes optional pprof/Prometheus endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	pmet "github.com/IvanBrykalov/predcache/metrics/prom"
	"github.com/IvanBrykalov/predcache/predictive"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// ---- Flags ----
	var (
		capacity = flag.Int("cap", 100_000, "cache capacity (entries)")
		shards   = flag.Int("shards", 0, "number of shards (0=auto)")

		workers  = flag.Int("workers", 2*runtime.GOMAXPROCS(0), "number of worker goroutines")
		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 80, "read percentage [0..100]")

		keys    = flag.Int("keys", 1_000_000, "keyspace size")
		pattern = flag.String("pattern", "zipf", "workload pattern: zipf | uniform | seq")
		zipfS   = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew), pattern=zipf only")
		zipfV   = flag.Float64("zipf_v", 1.0, "Zipf v, pattern=zipf only")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		preload = flag.Int("preload", 0, "preload entries (0 = cap/2)")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
	)
	flag.Parse()

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics: serving at %s", *metricsAddr)
		log.Println(http.ListenAndServe(*metricsAddr, nil))
	}()

	// ---- Snapshot flags for goroutines ----
	readPctVal := *readPct
	keysMax := uint64(*keys - 1)
	seedBase := *seed
	zipfSVal := *zipfS
	zipfVVal := *zipfV
	workersN := *workers
	if workersN <= 0 {
		workersN = 1
	}

	keyGenFor := func(id int) func() string {
		localR := rand.New(rand.NewSource(seedBase + int64(id)*9973))
		switch *pattern {
		case "zipf":
			localZipf := rand.NewZipf(localR, zipfSVal, zipfVVal, keysMax)
			return func() string { return "k:" + strconv.FormatUint(localZipf.Uint64(), 10) }
		case "uniform":
			return func() string { return "k:" + strconv.FormatUint(uint64(localR.Int63n(int64(keysMax)+1)), 10) }
		case "seq":
			var next uint64
			return func() string {
				k := next % (keysMax + 1)
				next++
				return "k:" + strconv.FormatUint(k, 10)
			}
		default:
			log.Fatalf("unknown pattern: %q (use zipf, uniform, or seq)", *pattern)
			return nil
		}
	}

	var reads, writes, hits, misses, total uint64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	metrics := pmet.NewPredictive(nil, "predcache", "bench", nil)
	pc, err := predictive.New[string, string](*capacity, predictive.Options[string]{
		Shards:  *shards,
		Metrics: metrics,
	})
	if err != nil {
		log.Fatalf("predictive.New: %v", err)
	}
	defer func() { _ = pc.Close() }()

	pl := *preload
	if pl == 0 {
		pl = *capacity / 2
	}
	for i := 0; i < pl; i++ {
		k := "k:" + strconv.Itoa(i)
		pc.Put(k, "v"+strconv.Itoa(i))
	}

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(workersN)
	for w := 0; w < workersN; w++ {
		go func(id int) {
			defer wg.Done()
			localR := rand.New(rand.NewSource(seedBase + int64(id)*7919))
			keyGen := keyGenFor(id)

			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				atomic.AddUint64(&total, 1)
				if int(localR.Int31n(100)) < readPctVal {
					atomic.AddUint64(&reads, 1)
					if _, ok := pc.Get(keyGen()); ok {
						atomic.AddUint64(&hits, 1)
					} else {
						atomic.AddUint64(&misses, 1)
					}
				} else {
					atomic.AddUint64(&writes, 1)
					pc.Put(keyGen(), "v"+strconv.Itoa(localR.Int()))
				}
			}
		}(w)
	}
	wg.Wait()
	fmt.Printf("elapsed=%v\n", time.Since(start))

	// ---- Report ----
	ops := atomic.LoadUint64(&total)
	readsN := atomic.LoadUint64(&reads)
	writesN := atomic.LoadUint64(&writes)
	hitsN := atomic.LoadUint64(&hits)
	missesN := atomic.LoadUint64(&misses)

	hitRate := 0.0
	if readsN > 0 {
		hitRate = float64(hitsN) / float64(readsN) * 100
	}

	fmt.Printf("pattern=%s cap=%d shards=%d workers=%d keys=%d dur=%v seed=%d\n",
		*pattern, *capacity, *shards, workersN, *keys, *duration, seedBase)
	fmt.Printf("ops=%d  reads=%d  writes=%d\n", ops, readsN, writesN)
	fmt.Printf("hits=%d  misses=%d  hit-rate=%.2f%%\n", hitsN, missesN, hitRate)
	fmt.Printf("Len()=%d\n", pc.Len())
}
