package model

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestVirtualTimeString(t *testing.T) {
	assert.Equal(t, "[never]", TimeNever.String())
	assert.Equal(t, "[0s+000000000ns]", TimeZero.String())
	assert.Equal(t, "[2s+010000000ns]", TimeZero.Add(2*time.Second+10*time.Millisecond).String())
}

func TestVirtualTimeOrdering(t *testing.T) {
	a := TimeZero.Add(time.Millisecond)
	b := a.Add(time.Millisecond)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.AtOrBefore(a))
	assert.True(t, a.AtOrAfter(a))
	assert.Equal(t, time.Millisecond, b.Since(a))
	assert.Panics(t, func() { a.Since(b) })
	assert.Panics(t, func() { TimeNever.Before(a) })
	assert.Equal(t, TimeNever, TimeNever.Add(time.Second))
}

func TestAfterTicks(t *testing.T) {
	assert.Equal(t, TimeZero.Add(500*10*time.Millisecond), TimeZero.AfterTicks(500, 10*time.Millisecond))
	assert.Equal(t, TimeZero, TimeZero.AfterTicks(0, time.Millisecond))
	assert.Panics(t, func() { TimeZero.AfterTicks(1, 0) })
}

func TestFromElapsed(t *testing.T) {
	assert.Equal(t, TimeZero, FromElapsed(TimeZero, -time.Second))
	assert.Equal(t, VirtualTime(1500), FromElapsed(TimeZero, 1500*time.Nanosecond))
	start := TimeZero.Add(time.Second)
	assert.Equal(t, start, FromElapsed(start, -time.Millisecond))
	assert.Equal(t, start.Add(time.Millisecond), FromElapsed(start, time.Millisecond))
}
