// Package box implements the shared allocation behind every grc handle: a
// single heap block holding the payload and the two synchronized counters
// that decide when the payload dies and when the block is retired.
package box

import (
	"sync/atomic"

	"github.com/kaimana/grc/internal/logging"
)

var log = logging.DefaultLogger.WithTag("box")

// Counts never come near this in a correct program; reaching it means a
// retain/release imbalance is amplifying somewhere, and wrapping past it
// would alias a live count with a dead one.
const maxCount = 1 << 62

/*
A Box owns a single shared value and two counters:

  - strong counts goroutine participations: one per goroutine-local handle
    group, plus one per in-transit or observer-minted strong reference. The
    handle layer may fan out any number of handles over one participation;
    the Box only ever sees participations.
  - weak counts observers keeping the block addressable, plus one held on
    behalf of the entire strong set while strong > 0. That extra reference
    is what lets the last strong release and the last observer race cleanly
    for the retirement decision.

The value is dropped exactly once, by whichever goroutine takes strong from
1 to 0. The block is retired exactly once, by whichever goroutine takes
weak from 1 to 0. Go's atomic operations are sequentially consistent, so
the goroutine performing the final decrement observes every write made to
the value before any earlier release; the drop never reads stale payload
state.
*/
type Box[T any] struct {
	strong atomic.Int64
	weak   atomic.Int64

	value T
	drop  func(T)

	// Set by the final weak release. The releasing goroutine is the block's
	// sole owner at that point, so a plain write is enough.
	retired bool
}

// New allocates a Box over value, with one strong participation and the
// weak reference held on behalf of the strong set. drop, if non-nil, runs
// exactly once when the last strong participation releases.
func New[T any](value T, drop func(T)) *Box[T] {
	b := &Box[T]{value: value, drop: drop}
	b.strong.Store(1)
	b.weak.Store(1)
	return b
}

// Retain adds a strong participation. The caller must already hold one;
// that live reference is what makes a bare increment safe here, where
// Upgrade below must use a compare-and-swap.
func (b *Box[T]) Retain() {
	n := b.strong.Add(1)
	if n <= 1 {
		log.Panicf("retain of dead box (strong=%d)", n)
	}
	if n >= maxCount {
		log.Panicf("strong count overflow (strong=%d)", n)
	}
}

// Release removes a strong participation. The final release drops the
// value, zeroes the slot, and then returns the strong set's weak reference,
// possibly retiring the block in the same call.
func (b *Box[T]) Release() (died bool) {
	n := b.strong.Add(-1)
	if n < 0 {
		log.Panicf("release of dead box (strong=%d)", n)
	}
	if n > 0 {
		return false
	}

	if b.drop != nil {
		b.drop(b.value)
	}
	var zero T
	b.value = zero

	b.WeakRelease()
	return true
}

// Upgrade adds a strong participation on behalf of an observer, which by
// definition holds no strong reference of its own. It fails once the count
// has reached zero. The zero test and the increment must be one atomic
// step: a load followed by an add would let an observer resurrect a value
// that a concurrent final Release is already destroying.
func (b *Box[T]) Upgrade() bool {
	for {
		n := b.strong.Load()
		if n == 0 {
			return false
		}
		if n >= maxCount {
			log.Panicf("strong count overflow (strong=%d)", n)
		}
		if b.strong.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// WeakRetain adds an observer. The caller must hold either a strong
// participation or another weak reference.
func (b *Box[T]) WeakRetain() {
	n := b.weak.Add(1)
	if n <= 1 {
		log.Panicf("weak retain of retired box (weak=%d)", n)
	}
	if n >= maxCount {
		log.Panicf("weak count overflow (weak=%d)", n)
	}
}

// WeakRelease removes an observer, or the strong set's collective
// reference during the final strong release. Whoever takes the count to
// zero retires the block.
func (b *Box[T]) WeakRelease() (freed bool) {
	n := b.weak.Add(-1)
	if n < 0 {
		log.Panicf("weak release of retired box (weak=%d)", n)
	}
	if n > 0 {
		return false
	}
	b.retired = true
	return true
}

// Unique reports whether the caller's participation is the only strong
// reference and no observers exist. The caller must hold a strong
// participation. Both loads are sequentially consistent, so an observer or
// courier minted before this returns true would have been visible.
func (b *Box[T]) Unique() bool {
	return b.strong.Load() == 1 && b.weak.Load() == 1
}

// Value returns the payload slot. Valid only while the caller holds a
// strong participation. The slot never moves for the life of the Box, so
// the pointer stays stable until the payload is dropped or taken.
func (b *Box[T]) Value() *T {
	return &b.value
}

// Take moves the value out of a unique Box without running drop, and
// retires the counters. With one participation and no observers there is
// nobody left to race; the caller must have verified uniqueness first.
func (b *Box[T]) Take() T {
	if !b.Unique() {
		log.Panicf("take from shared box (strong=%d weak=%d)", b.Strong(), b.Weak())
	}
	v := b.value
	var zero T
	b.value = zero
	b.strong.Store(0)
	b.WeakRelease()
	return v
}

// Strong returns the current participation count.
func (b *Box[T]) Strong() int {
	return int(b.strong.Load())
}

// Weak returns the raw weak count, including the strong set's collective
// reference while any participation exists.
func (b *Box[T]) Weak() int {
	return int(b.weak.Load())
}

// Dead reports whether the value has been dropped or taken.
func (b *Box[T]) Dead() bool {
	return b.strong.Load() == 0
}

// Retired reports whether the block has been handed back to the runtime.
// Only meaningful once no other goroutine can still be releasing.
func (b *Box[T]) Retired() bool {
	return b.retired
}
