package grc

import (
	"encoding/json"
	"fmt"

	errors "golang.org/x/xerrors"

	"github.com/kaimana/grc/internal/box"
)

// Same reports whether two Local handles share one underlying allocation,
// regardless of payload equality.
func Same[T any](a, b *Local[T]) bool {
	return a.cell().box == b.cell().box
}

// Equal reports payload equality between two handles.
func Equal[T comparable](a, b *Local[T]) bool {
	return *a.Get() == *b.Get()
}

// String formats the shared value.
func (l *Local[T]) String() string {
	return fmt.Sprint(*l.Get())
}

func (l *Local[T]) GoString() string {
	return fmt.Sprintf("grc.Local(%#v)", *l.Get())
}

// String formats the observed value, or "<gone>" once it has been dropped.
func (w *Weak[T]) String() string {
	l := w.Upgrade()
	if l == nil {
		return "<gone>"
	}
	defer l.Drop()
	return fmt.Sprint(*l.Get())
}

// MarshalJSON encodes the shared value. The counters are bookkeeping, not
// state, and are not part of the encoding.
func (l *Local[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(*l.Get())
}

// UnmarshalJSON decodes into a fresh allocation with a participation owned
// by the calling goroutine. The receiver must be a zero Local; decoding
// into a live handle would orphan its participation.
func (l *Local[T]) UnmarshalJSON(data []byte) error {
	if l.c != nil {
		return errors.New("grc: unmarshal into a live handle")
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Errorf("grc: unmarshal shared value: %w", err)
	}
	l.c = newCell(box.New(v, nil))
	return nil
}
