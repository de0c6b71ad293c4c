package grc

import "github.com/kaimana/grc/internal/box"

// Sendable is the strong handle used to move sharing across goroutines. It
// represents one participation in transit: mint it from a Local on one
// goroutine, hand it to another, and convert it back into a Local there.
//
// A Sendable may be handed between goroutines, and distinct Sendables over
// the same value may be used concurrently, but a single Sendable has one
// owner at a time and must not be used from two goroutines at once.
type Sendable[T any] struct {
	b *box.Box[T] // nil once converted or dropped
}

// FromLocal mints a courier from a live Local. The new participation is
// paid for up front with a bare atomic increment, which is sound because
// the Local's own participation pins the count above zero. The Local is
// unaffected.
func FromLocal[T any](l *Local[T]) *Sendable[T] {
	c := l.cell()
	c.box.Retain()
	return &Sendable[T]{b: c.box}
}

// IntoLocal consumes the Sendable and lands its participation on the
// calling goroutine, returning a Local confined to it. The participation
// paid by FromLocal transfers to the new goroutine-local group, so no
// counter moves here.
func (s *Sendable[T]) IntoLocal() *Local[T] {
	return &Local[T]{c: newCell(s.take())}
}

// Clone mints a second in-transit participation over the same value.
func (s *Sendable[T]) Clone() *Sendable[T] {
	b := s.box()
	b.Retain()
	return &Sendable[T]{b: b}
}

// Drop releases a Sendable that will not be converted, with the same
// cascade as the last Local of a goroutine: the value dies here if this
// was the final participation.
func (s *Sendable[T]) Drop() {
	s.take().Release()
}

// Get returns a pointer to the shared value; a Sendable is a full strong
// participant. The read-only contract of Local.Get applies.
func (s *Sendable[T]) Get() *T {
	return s.box().Value()
}

// StrongCount reports how many goroutine participations currently keep the
// value alive, this courier included.
func (s *Sendable[T]) StrongCount() int {
	return s.box().Strong()
}

func (s *Sendable[T]) box() *box.Box[T] {
	if s.b == nil {
		panic(errConsumed)
	}
	return s.b
}

func (s *Sendable[T]) take() *box.Box[T] {
	b := s.box()
	s.b = nil
	return b
}
