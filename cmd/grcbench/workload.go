package main

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang/groupcache/lru"
	"github.com/pkg/errors"

	"github.com/kaimana/grc"
)

type workloadConfig struct {
	goroutines int
	iterations int
	cacheSize  int
}

type runFunc func(cfg workloadConfig) error

var workloads = map[string]runFunc{
	"clone": runClone,
	"share": runShare,
	"weak":  runWeak,
	"cache": runCache,
}

func lookupWorkload(name string) (runFunc, error) {
	if run, found := workloads[name]; found {
		return run, nil
	}
	return nil, errors.Errorf("workload '%s' not registered", name)
}

// A payload bulky enough that accidental copying would show up in the
// numbers.
type snapshot struct {
	id   int
	data [256]byte
}

// Clone and drop on a single goroutine. The whole point of the split
// count: the participation count must sit at 1 throughout.
func runClone(cfg workloadConfig) error {
	dropped := 0
	root := grc.NewWithDrop(snapshot{id: 1}, func(snapshot) { dropped++ })

	start := time.Now()
	for i := 0; i < cfg.iterations; i++ {
		h := root.Clone()
		if n := h.StrongCount(); n != 1 {
			h.Drop()
			return errors.Errorf("clone moved the participation count to %d", n)
		}
		h.Drop()
	}
	elapsed := time.Since(start)

	root.Drop()
	if dropped != 1 {
		return errors.Errorf("drop ran %d times", dropped)
	}
	log.Info("%d clone/drop pairs in %v (%.1f ns/pair), participation count pinned at 1",
		cfg.iterations, elapsed, float64(elapsed.Nanoseconds())/float64(cfg.iterations))
	return nil
}

// Fan the value out to goroutines through couriers, clone locally on each,
// converge, and verify the value died exactly once.
func runShare(cfg workloadConfig) error {
	var dropped int32
	root := grc.NewWithDrop(snapshot{id: 42}, func(snapshot) { atomic.AddInt32(&dropped, 1) })

	var wg sync.WaitGroup
	for g := 0; g < cfg.goroutines; g++ {
		courier := grc.FromLocal(root)
		wg.Add(1)
		go func(s *grc.Sendable[snapshot]) {
			defer wg.Done()
			l := s.IntoLocal()
			for i := 0; i < cfg.iterations; i++ {
				h := l.Clone()
				_ = h.Get().id
				h.Drop()
			}
			l.Drop()
		}(courier)
	}
	wg.Wait()

	if n := root.StrongCount(); n != 1 {
		return errors.Errorf("expected 1 participation at quiescence, have %d", n)
	}
	root.Drop()
	if n := atomic.LoadInt32(&dropped); n != 1 {
		return errors.Errorf("drop ran %d times", n)
	}
	log.Info("shared across %d goroutines, %d local clone/drop pairs each, value dropped once",
		cfg.goroutines, cfg.iterations)
	return nil
}

// One goroutine upgrades a Weak in a loop while this one churns and then
// releases the strong side. Every successful upgrade must see the payload;
// the first failed upgrade means the value is gone for good.
func runWeak(cfg workloadConfig) error {
	root := grc.New(snapshot{id: 7})
	weak := root.Downgrade()
	courier := grc.FromLocal(root)
	root.Drop()

	done := make(chan struct{})
	var upgrades int64
	var bad int64
	go func(w *grc.Weak[snapshot]) {
		defer close(done)
		for {
			l := w.Upgrade()
			if l == nil {
				break
			}
			if l.Get().id != 7 {
				atomic.AddInt64(&bad, 1)
			}
			l.Drop()
			atomic.AddInt64(&upgrades, 1)
		}
		w.Drop()
	}(weak)

	for i := 0; i < cfg.iterations; i++ {
		c := courier.Clone()
		c.Drop()
	}
	courier.Drop()
	<-done

	if bad != 0 {
		return errors.Errorf("%d upgrades observed a torn payload", bad)
	}
	log.Info("%d successful upgrades before the value died", upgrades)
	return nil
}

// An LRU cache of refcounted snapshots. The cache owns one handle per
// entry; lookups clone for the caller; evictions release the cache's
// handle. Nothing may leak once the cache drains.
func runCache(cfg workloadConfig) error {
	live := 0
	evictions := 0

	cache := lru.New(cfg.cacheSize)
	cache.OnEvicted = func(key lru.Key, value interface{}) {
		value.(*grc.Local[snapshot]).Drop()
		evictions++
	}

	for i := 0; i < cfg.iterations; i++ {
		id := rand.Intn(cfg.cacheSize * 4)
		if v, ok := cache.Get(id); ok {
			h := v.(*grc.Local[snapshot]).Clone()
			_ = h.Get().id
			h.Drop()
			continue
		}
		h := grc.NewWithDrop(snapshot{id: id}, func(snapshot) { live-- })
		live++
		cache.Add(id, h)
	}

	resident := cache.Len()
	for cache.Len() > 0 {
		cache.RemoveOldest()
	}
	if live != 0 {
		return errors.Errorf("%d snapshots leaked", live)
	}
	log.Info("cache workload: %d evictions, %d resident at the end, all snapshots released",
		evictions, resident)
	return nil
}
