package grc

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeakSurvivesValueDrop(t *testing.T) {
	drops := 0
	h := NewWithDrop(100, func(int) { drops++ })
	w := h.Downgrade()
	b := w.b

	h.Drop()
	assert.Equal(t, 1, drops, "last strong handle must drop the value")
	assert.False(t, b.Retired(), "observer must keep the allocation addressable")

	assert.Nil(t, w.Upgrade(), "upgrade after death must fail")

	w.Drop()
	assert.True(t, b.Retired(), "last observer must retire the allocation")
}

func TestUpgradeWhileAlive(t *testing.T) {
	h := New(100)
	w := h.Downgrade()

	l := w.Upgrade()
	if l == nil {
		t.Fatal("upgrade failed while a strong handle exists")
	}
	assert.Equal(t, 100, *l.Get())
	assert.Equal(t, 2, h.StrongCount(), "upgrade mints its own participation")

	l.Drop()
	w.Drop()
	h.Drop()
}

func TestWeakCloneBookkeeping(t *testing.T) {
	h := New(1)
	w := h.Downgrade()
	w2 := w.Clone()

	assert.Equal(t, 2, h.WeakCount())
	w.Drop()
	w2.Drop()
	assert.Equal(t, 0, h.WeakCount())
	h.Drop()
}

func TestWeakUseAfterDropPanics(t *testing.T) {
	h := New(1)
	w := h.Downgrade()
	w.Drop()
	h.Drop()

	defer func() {
		if r := recover(); r != errUseAfterDrop {
			t.Errorf("expected errUseAfterDrop, got %v", r)
		}
	}()
	w.Upgrade()
}

// Scenario: one goroutine upgrades in a loop while this one churns courier
// clones and then releases the last strong participation. Every successful
// upgrade must observe the payload intact; the value must die exactly once.
func TestUpgradeRacesDrop(t *testing.T) {
	var drops int32
	root := NewWithDrop(100, func(v int) {
		if v != 100 {
			t.Errorf("drop observed torn payload %d", v)
		}
		atomic.AddInt32(&drops, 1)
	})
	w := root.Downgrade()
	courier := FromLocal(root)
	root.Drop()

	done := make(chan struct{})
	go func(w *Weak[int]) {
		defer close(done)
		for {
			l := w.Upgrade()
			if l == nil {
				break
			}
			if *l.Get() != 100 {
				t.Error("successful upgrade observed a dead payload")
			}
			l.Drop()
		}
		w.Drop()
	}(w)

	for i := 0; i < 10000; i++ {
		c := courier.Clone()
		c.Drop()
	}
	courier.Drop()
	<-done

	if n := atomic.LoadInt32(&drops); n != 1 {
		t.Fatalf("expected exactly one drop, got %d", n)
	}
}

// Two values observing each other through weak back-edges. Dropping the
// strong handles must reclaim both payloads and both allocations; this is
// the pattern that replaces strong cycles.
func TestWeakBackEdgeCycle(t *testing.T) {
	type node struct {
		label string
		other *Weak[node]
	}

	drops := 0
	dropNode := func(n node) {
		drops++
		if n.other != nil {
			n.other.Drop()
		}
	}

	a := NewWithDrop(node{label: "a"}, dropNode)
	b := NewWithDrop(node{label: "b"}, dropNode)
	boxA, boxB := a.c.box, b.c.box

	// Wire the back-edges. Single goroutine, no concurrent readers, so the
	// direct writes are safe.
	a.Get().other = b.Downgrade()
	b.Get().other = a.Downgrade()

	via := a.Get().other.Upgrade()
	assert.Equal(t, "b", via.Get().label)
	via.Drop()

	a.Drop()
	b.Drop()

	assert.Equal(t, 2, drops, "both payloads must be dropped")
	assert.True(t, boxA.Retired(), "allocation a must be retired")
	assert.True(t, boxB.Retired(), "allocation b must be retired")
}
