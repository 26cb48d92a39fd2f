package component

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestRealtimeDriverAdvances(t *testing.T) {
	sim := MakeSimControllerSeeded(7)
	driver := MakeRealtimeDriver(sim, time.Millisecond)
	defer driver.Close()

	fired := make(chan struct{})
	driver.Sync(func() {
		sim.SetTimer(sim.Now().Add(5*time.Millisecond), "fire", func() {
			close(fired)
		})
	})
	driver.Start()

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("timer never fired")
	}
}

func TestRealtimeDriverCloseStopsCallbacks(t *testing.T) {
	sim := MakeSimControllerSeeded(8)
	driver := MakeRealtimeDriver(sim, time.Millisecond)
	driver.Start()

	var fired bool
	driver.Sync(func() {
		sim.SetTimer(sim.Now().Add(50*time.Millisecond), "late", func() {
			fired = true
		})
	})
	driver.Close()
	// closing again must not block or panic
	driver.Close()

	time.Sleep(100 * time.Millisecond)
	driver.Sync(func() {
		assert.False(t, fired)
		require.Equal(t, 1, sim.Pending())
	})
}

func TestRealtimeDriverCloseWithoutStart(t *testing.T) {
	driver := MakeRealtimeDriver(MakeSimControllerSeeded(9), time.Millisecond)
	driver.Close()
	// a closed driver cannot be restarted
	driver.Start()
	driver.Close()
}
