package component

import (
	"github.com/celskeggs/sweepscope/sim/model"
	"sync"
	"time"
)

// RealtimeDriver advances a SimController in step with the wall clock. Every advance, and every Sync callback, runs
// under a single mutex, so simulation callbacks are serialized even though the driver has its own goroutine.
type RealtimeDriver struct {
	mu         sync.Mutex
	sim        *SimController
	resolution time.Duration

	startWall time.Time
	startSim  model.VirtualTime

	started   bool
	closed    bool
	closeOnce sync.Once
	done      chan struct{}
	exited    chan struct{}
}

// MakeRealtimeDriver builds a driver that polls the wall clock every resolution.
func MakeRealtimeDriver(sim *SimController, resolution time.Duration) *RealtimeDriver {
	if resolution <= 0 {
		panic("realtime driver resolution must be positive")
	}
	return &RealtimeDriver{
		sim:        sim,
		resolution: resolution,
		done:       make(chan struct{}),
		exited:     make(chan struct{}),
	}
}

func (d *RealtimeDriver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.closed {
		return
	}
	d.started = true
	d.startWall = time.Now()
	d.startSim = d.sim.Now()

	go func() {
		defer close(d.exited)
		ticker := time.NewTicker(d.resolution)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				d.step()
			case <-d.done:
				return
			}
		}
	}()
}

func (d *RealtimeDriver) step() {
	d.mu.Lock()
	defer d.mu.Unlock()
	// Close may have won the race for the lock after the ticker fired
	if d.closed {
		return
	}
	d.sim.Advance(model.FromElapsed(d.startSim, time.Since(d.startWall)))
}

// Sync runs fn with exclusive access to the simulation.
func (d *RealtimeDriver) Sync(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn()
}

// Close stops advancing the simulation. Any advance already in progress finishes first; once Close returns, no
// further simulation callbacks will run from this driver.
func (d *RealtimeDriver) Close() {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		started := d.started
		d.mu.Unlock()

		close(d.done)
		if started {
			<-d.exited
		}
	})
}
