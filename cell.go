package grc

import "github.com/kaimana/grc/internal/box"

// Clone counts stay far below this; hitting it means clones are leaking in
// a loop, and wrapping would let a later Drop free the participation while
// live handles remain.
const maxLocal = 1 << 62

// A cell is the goroutine-local half of the split count. Every Local on
// one goroutine descending from the same participation shares one cell.
// The count is read and written only by the owning goroutine, so it is a
// plain integer; the cell as a whole represents exactly one strong
// participation in the shared box for as long as local > 0.
type cell[T any] struct {
	local uint64
	gid   int64 // owning goroutine; zero when affinity checks were off at creation
	box   *box.Box[T]
}

// newCell starts a fresh participation group on the calling goroutine. The
// caller must already own the strong increment the cell assumes.
func newCell[T any](b *box.Box[T]) *cell[T] {
	c := &cell[T]{local: 1, box: b}
	if affinityChecks {
		c.gid = currentGoroutine()
	}
	return c
}

func (c *cell[T]) check() {
	if affinityChecks && c.gid != 0 && c.gid != currentGoroutine() {
		panic(errWrongGoroutine)
	}
}
