package grc

import "github.com/kaimana/grc/internal/goid"

// Affinity checks catch a Local handle straying off its goroutine. Each
// check needs a goroutine id lookup, which costs a stack header dump, so
// they default to on only under the race detector, where correctness runs
// already accept that kind of overhead.
var affinityChecks = raceEnabled

// SetAffinityChecks forces goroutine-affinity verification on or off,
// overriding the race-build default. Cells record their owner at creation,
// so enabling checks mid-run only covers handles created afterwards.
func SetAffinityChecks(enabled bool) {
	affinityChecks = enabled
}

func currentGoroutine() int64 {
	return goid.Get()
}
