package grc_test

import (
	"fmt"

	"github.com/kaimana/grc"
)

func ExampleNew() {
	h := grc.New("aloha")
	defer h.Drop()

	clone := h.Clone()
	fmt.Println(*clone.Get(), h.StrongCount(), h.LocalCount())
	clone.Drop()
	// Output: aloha 1 2
}

func ExampleFromLocal() {
	h := grc.NewWithDrop(100, func(v int) {
		fmt.Println("dropped", v)
	})

	landed := make(chan int)
	courier := grc.FromLocal(h)
	go func() {
		l := courier.IntoLocal()
		v := *l.Get()
		l.Drop()
		landed <- v
	}()

	fmt.Println("seen on the other side:", <-landed)
	h.Drop()
	// Output:
	// seen on the other side: 100
	// dropped 100
}

func ExampleWeak_Upgrade() {
	h := grc.New(100)
	w := h.Downgrade()

	if l := w.Upgrade(); l != nil {
		fmt.Println("alive:", *l.Get())
		l.Drop()
	}

	h.Drop()
	if w.Upgrade() == nil {
		fmt.Println("gone")
	}
	w.Drop()
	// Output:
	// alive: 100
	// gone
}
