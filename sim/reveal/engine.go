// Package reveal sweeps generated signals across a fixed-width display buffer, one sample per tick, regenerating the
// signal at a new frequency each time a sweep completes.
package reveal

import (
	"github.com/celskeggs/sweepscope/sim/component"
	"github.com/celskeggs/sweepscope/sim/model"
	"github.com/celskeggs/sweepscope/sim/signal"
	"log"
)

const engineName = "sim.reveal.Engine"

type State int

const (
	Revealing State = iota
	CycleComplete
	// Resetting only exists while a new sweep is being set up inside a tick; no query can observe it.
	Resetting
)

func (s State) String() string {
	switch s {
	case Revealing:
		return "Revealing"
	case CycleComplete:
		return "CycleComplete"
	case Resetting:
		return "Resetting"
	default:
		return "Unknown"
	}
}

// cycle is the state of a single sweep. It is replaced wholesale when the next sweep begins.
type cycle struct {
	number    uint64
	frequency float64
	signal    signal.Signal
	buffer    []float64
	cursor    int
	complete  bool
}

type Engine struct {
	ctx        model.SimContext
	config     Config
	source     signal.FrequencySource
	labels     []string
	dispatcher *component.EventDispatcher

	current   *cycle
	resetting bool
	ticks     uint64

	running    bool
	stopped    bool
	cancelTick func()
}

func newEngine(ctx model.SimContext, config Config, source signal.FrequencySource) *Engine {
	e := &Engine{
		ctx:        ctx,
		config:     config,
		source:     source,
		labels:     makeLabels(config.Count),
		dispatcher: component.MakeEventDispatcher(),
	}
	e.current = e.newCycle(1)
	return e
}

func (e *Engine) newCycle(number uint64) *cycle {
	frequency := e.source.NextFrequency()
	return &cycle{
		number:    number,
		frequency: frequency,
		signal:    signal.Generate(e.config.Count, e.config.Amplitude, frequency),
		buffer:    make([]float64, 0, e.config.Count),
		cursor:    0,
		complete:  false,
	}
}

func (e *Engine) reset() {
	e.resetting = true
	e.current = e.newCycle(e.current.number + 1)
	e.resetting = false
}

// Step performs one tick: it starts a new sweep if the previous one completed, then reveals the next sample.
// Subscribers are notified before Step returns. Once the engine is stopped, Step does nothing and returns false.
func (e *Engine) Step() bool {
	if e.stopped {
		return false
	}
	if e.current.complete {
		e.reset()
	}
	c := e.current
	if c.cursor < c.signal.Len() {
		value := c.signal[c.cursor].Value
		if c.cursor == len(c.buffer) {
			c.buffer = append(c.buffer, value)
		} else {
			// never reached while each sweep gets a fresh buffer; earlier frames may share this storage, so
			// write to a private copy
			buffer := make([]float64, len(c.buffer), e.config.Count)
			copy(buffer, c.buffer)
			buffer[c.cursor] = value
			c.buffer = buffer
		}
		c.cursor += 1
		// only checked once the last sample is in place
		if c.cursor == c.signal.Len() {
			c.complete = true
		}
	}
	e.ticks += 1
	e.dispatcher.Dispatch()
	return true
}

// Start begins ticking every Config.TickInterval. Starting a running or stopped engine has no effect.
func (e *Engine) Start() {
	if e.running || e.stopped {
		return
	}
	e.running = true
	log.Printf("%v [%s] sweep %d begins at frequency %.4f", e.ctx.Now(), engineName, e.current.number, e.current.frequency)
	e.scheduleTick()
}

func (e *Engine) scheduleTick() {
	e.cancelTick = e.ctx.SetTimer(e.ctx.Now().Add(e.config.TickInterval), engineName+"/Tick", e.onTick)
}

func (e *Engine) onTick() {
	e.cancelTick = nil
	if !e.running {
		return
	}
	e.Step()
	// a subscriber may have stopped the engine during the step
	if e.running {
		e.scheduleTick()
	}
}

// Stop cancels any pending tick and freezes the display buffer. It cannot be undone.
func (e *Engine) Stop() {
	if e.stopped {
		return
	}
	e.stopped = true
	e.running = false
	if e.cancelTick != nil {
		e.cancelTick()
		e.cancelTick = nil
	}
	log.Printf("%v [%s] stopped during sweep %d at cursor %d", e.ctx.Now(), engineName, e.current.number, e.current.cursor)
}

func (e *Engine) Running() bool {
	return e.running
}

func (e *Engine) Stopped() bool {
	return e.stopped
}

// Config is the configuration the engine was constructed with.
func (e *Engine) Config() Config {
	return e.config
}

// Labels returns one label per position. The slice is shared and must not be modified.
func (e *Engine) Labels() []string {
	return e.labels
}

// Series returns the values revealed so far in the current sweep.
func (e *Engine) Series() []float64 {
	b := e.current.buffer
	return b[:len(b):len(b)]
}

// MarkerPosition is the cursor, once at least one point of the current sweep has been revealed.
func (e *Engine) MarkerPosition() (int, bool) {
	if e.current.cursor > 0 {
		return e.current.cursor, true
	}
	return 0, false
}

func (e *Engine) Cursor() int {
	return e.current.cursor
}

func (e *Engine) Complete() bool {
	return e.current.complete
}

func (e *Engine) State() State {
	if e.resetting {
		return Resetting
	}
	if e.current.complete {
		return CycleComplete
	}
	return Revealing
}

// Cycle numbers sweeps from 1.
func (e *Engine) Cycle() uint64 {
	return e.current.number
}

func (e *Engine) Frequency() float64 {
	return e.current.frequency
}

// Ticks counts every tick applied since construction.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

func (e *Engine) Frame() Frame {
	marker, hasMarker := e.MarkerPosition()
	return Frame{
		At:        e.ctx.Now(),
		Cycle:     e.current.number,
		Frequency: e.current.frequency,
		Count:     e.config.Count,
		Labels:    e.labels,
		Series:    e.Series(),
		Marker:    marker,
		HasMarker: hasMarker,
		Complete:  e.current.complete,
	}
}

// Subscribe registers callback to receive a frame after every tick.
func (e *Engine) Subscribe(callback func(Frame)) (cancel func()) {
	return e.dispatcher.Subscribe(func() {
		callback(e.Frame())
	})
}
