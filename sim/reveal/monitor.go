package reveal

import "sync"

// Monitor hands the most recent frame from the simulation goroutine to a renderer running elsewhere. Renderers that
// fall behind skip straight to the latest frame.
type Monitor struct {
	mu      sync.Mutex
	frame   Frame
	have    bool
	updated chan struct{}
}

func NewMonitor() *Monitor {
	return &Monitor{
		updated: make(chan struct{}, 1),
	}
}

// Watch publishes the engine's current frame and every frame after it. Must be called with access to the engine.
func (m *Monitor) Watch(e *Engine) (cancel func()) {
	m.Publish(e.Frame())
	return e.Subscribe(m.Publish)
}

func (m *Monitor) Publish(f Frame) {
	m.mu.Lock()
	m.frame = f
	m.have = true
	m.mu.Unlock()

	select {
	case m.updated <- struct{}{}:
	default:
		// a wakeup is already pending
	}
}

func (m *Monitor) Latest() (Frame, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frame, m.have
}

// Updated receives a value whenever a frame has been published since the last receive.
func (m *Monitor) Updated() <-chan struct{} {
	return m.updated
}
