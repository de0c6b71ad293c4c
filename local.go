package grc

import "github.com/kaimana/grc/internal/box"

// Local is the everyday strong handle. It shares ownership of a value with
// every other handle descending from the same allocation, and it is
// confined to the goroutine that created it: cloning and dropping a Local
// touch only a plain per-goroutine counter, never the atomic participation
// count.
//
// To share the value with another goroutine, mint a Sendable with
// FromLocal and convert it on the far side. To observe without owning,
// Downgrade to a Weak.
type Local[T any] struct {
	c *cell[T] // nil once dropped or consumed by IntoInner
}

// New allocates a shared value and returns the first handle to it.
func New[T any](value T) *Local[T] {
	return NewWithDrop(value, nil)
}

// NewWithDrop is New with a drop function. drop runs exactly once, on
// whichever goroutine releases the last strong participation, after which
// the value is unreachable from every handle.
func NewWithDrop[T any](value T, drop func(T)) *Local[T] {
	return &Local[T]{c: newCell(box.New(value, drop))}
}

// Clone returns an additional handle sharing the value. Within a goroutine
// this is a plain integer increment; the atomic participation count does
// not move.
func (l *Local[T]) Clone() *Local[T] {
	c := l.cell()
	c.local++
	if c.local >= maxLocal {
		panic(errLocalOverflow)
	}
	return &Local[T]{c: c}
}

// Drop releases this handle. The last handle in its goroutine-local group
// releases that goroutine's participation; the last participation overall
// drops the value. Dropping twice panics.
func (l *Local[T]) Drop() {
	c := l.cell()
	l.c = nil
	c.local--
	if c.local > 0 {
		return
	}
	c.box.Release()
	c.box = nil
}

// Get returns a pointer to the shared value. The pointer stays valid while
// any strong handle exists; callers must treat it as read-only unless it
// came from TryGetMut.
func (l *Local[T]) Get() *T {
	return l.cell().box.Value()
}

// TryGetMut returns a mutable pointer to the value, or nil if the value is
// reachable any other way. It succeeds only when this is the sole handle
// in its group, the group holds the sole participation, and no observers
// exist.
//
// Uniqueness cannot be revoked while the caller holds the result: minting
// a Sendable requires a live Local, and the only one is on this goroutine;
// upgrading requires a live Weak, and a weak count of one means none
// exist.
func (l *Local[T]) TryGetMut() *T {
	c := l.cell()
	if c.local != 1 || !c.box.Unique() {
		return nil
	}
	return c.box.Value()
}

// Downgrade returns an observer handle. The value's lifetime is
// unaffected.
func (l *Local[T]) Downgrade() *Weak[T] {
	c := l.cell()
	c.box.WeakRetain()
	return &Weak[T]{b: c.box}
}

// IntoInner consumes the handle and moves the value out without running
// its drop function. It succeeds under exactly the conditions TryGetMut
// does; otherwise it returns the zero value and false and the handle
// remains usable.
func (l *Local[T]) IntoInner() (T, bool) {
	c := l.cell()
	if c.local != 1 || !c.box.Unique() {
		var zero T
		return zero, false
	}
	v := c.box.Take()
	c.local = 0
	c.box = nil
	l.c = nil
	return v, true
}

// StrongCount reports how many goroutine participations currently keep the
// value alive.
func (l *Local[T]) StrongCount() int {
	return l.cell().box.Strong()
}

// LocalCount reports how many Local handles on this goroutine share this
// handle's participation.
func (l *Local[T]) LocalCount() int {
	return int(l.cell().local)
}

// WeakCount reports the number of live observer handles.
func (l *Local[T]) WeakCount() int {
	// The strong set holds one weak reference collectively, and a live
	// Local implies the strong set is nonempty.
	return l.cell().box.Weak() - 1
}

func (l *Local[T]) cell() *cell[T] {
	if l.c == nil {
		panic(errUseAfterDrop)
	}
	l.c.check()
	return l.c
}
