package grc

import "testing"

func TestLocalRejectsForeignGoroutine(t *testing.T) {
	SetAffinityChecks(true)
	defer SetAffinityChecks(raceEnabled)

	h := New(1)
	defer h.Drop()

	caught := make(chan interface{})
	go func() {
		defer func() { caught <- recover() }()
		h.Get()
	}()

	if r := <-caught; r != errWrongGoroutine {
		t.Errorf("expected errWrongGoroutine, got %v", r)
	}
}

func TestUpgradeLandsOnCallingGoroutine(t *testing.T) {
	SetAffinityChecks(true)
	defer SetAffinityChecks(raceEnabled)

	h := New(1)
	w := h.Downgrade()

	done := make(chan struct{})
	go func() {
		defer close(done)
		// The upgraded Local belongs to this goroutine and works here.
		l := w.Upgrade()
		if l == nil {
			panic("upgrade failed while strong handle exists")
		}
		if *l.Get() != 1 {
			panic("upgraded handle does not see the value")
		}
		l.Drop()
		w.Drop()
	}()
	<-done

	h.Drop()
}
