package grc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSame(t *testing.T) {
	a := New(1)
	b := a.Clone()
	c := New(1)

	assert.True(t, Same(a, b))
	assert.False(t, Same(a, c))

	a.Drop()
	b.Drop()
	c.Drop()
}

func TestEqual(t *testing.T) {
	a := New("aloha")
	b := New("aloha")
	c := New("hui")

	assert.True(t, Equal(a, b), "distinct allocations, equal payloads")
	assert.False(t, Equal(a, c))

	a.Drop()
	b.Drop()
	c.Drop()
}

func TestStringers(t *testing.T) {
	h := New(100)
	assert.Equal(t, "100", h.String())
	assert.Equal(t, "grc.Local(100)", h.GoString())

	w := h.Downgrade()
	assert.Equal(t, "100", w.String())
	h.Drop()
	assert.Equal(t, "<gone>", w.String())
	w.Drop()
}

type config struct {
	Name    string `json:"name"`
	Retries int    `json:"retries"`
}

func TestJSONRoundTrip(t *testing.T) {
	h := New(config{Name: "uplink", Retries: 3})

	data, err := json.Marshal(h)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"name":"uplink","retries":3}`, string(data))

	var out Local[config]
	assert.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, *h.Get(), *out.Get())
	assert.False(t, Same(h, &out), "decoding must build a fresh allocation")
	assert.Equal(t, 1, out.StrongCount())
	assert.Equal(t, 1, out.LocalCount())

	h.Drop()
	out.Drop()
}

func TestUnmarshalIntoLiveHandle(t *testing.T) {
	h := New(config{})
	err := json.Unmarshal([]byte(`{}`), h)
	assert.Error(t, err)
	h.Drop()
}
