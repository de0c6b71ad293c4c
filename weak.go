package grc

import "github.com/kaimana/grc/internal/box"

// Weak observes a shared value without keeping it alive. It pins the
// bookkeeping block, not the value, so Upgrade can ask race-free whether
// the value still exists. Weak handles carry no goroutine affinity and may
// be handed between goroutines freely; like Sendable, a single Weak has
// one owner at a time.
type Weak[T any] struct {
	b *box.Box[T] // nil once dropped
}

// Upgrade attempts to mint a Local over the observed value, confined to
// the calling goroutine. It returns nil if the last strong participation
// has already released. The decision is a compare-and-increment that
// refuses to move the count off zero, so an upgrade can never resurrect a
// value mid-destruction.
func (w *Weak[T]) Upgrade() *Local[T] {
	b := w.box()
	if !b.Upgrade() {
		return nil
	}
	return &Local[T]{c: newCell(b)}
}

// Clone returns an additional observer.
func (w *Weak[T]) Clone() *Weak[T] {
	b := w.box()
	b.WeakRetain()
	return &Weak[T]{b: b}
}

// Drop releases the observer. The last weak reference overall, observer or
// strong set, retires the bookkeeping block.
func (w *Weak[T]) Drop() {
	b := w.box()
	w.b = nil
	b.WeakRelease()
}

func (w *Weak[T]) box() *box.Box[T] {
	if w.b == nil {
		panic(errUseAfterDrop)
	}
	return w.b
}
