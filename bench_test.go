package grc

import "testing"

func BenchmarkLocalClone(b *testing.B) {
	h := New(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := h.Clone()
		c.Drop()
	}
	b.StopTimer()
	h.Drop()
}

func BenchmarkSendableRoundTrip(b *testing.B) {
	h := New(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := FromLocal(h)
		s.Drop()
	}
	b.StopTimer()
	h.Drop()
}

func BenchmarkWeakUpgrade(b *testing.B) {
	h := New(100)
	w := h.Downgrade()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := w.Upgrade()
		l.Drop()
	}
	b.StopTimer()
	w.Drop()
	h.Drop()
}
