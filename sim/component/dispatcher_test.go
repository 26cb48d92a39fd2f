package component

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDispatchOrderAndCancel(t *testing.T) {
	ed := MakeEventDispatcher()
	var calls []string
	cancelA := ed.Subscribe(func() { calls = append(calls, "a") })
	ed.Subscribe(func() { calls = append(calls, "b") })
	cancelC := ed.Subscribe(func() { calls = append(calls, "c") })

	ed.Dispatch()
	assert.Equal(t, []string{"a", "b", "c"}, calls)

	calls = nil
	cancelA()
	ed.Dispatch()
	assert.Equal(t, []string{"b", "c"}, calls)
	assert.Equal(t, 2, ed.Subscribers())

	calls = nil
	cancelC()
	cancelC()
	ed.Dispatch()
	assert.Equal(t, []string{"b"}, calls)
}
