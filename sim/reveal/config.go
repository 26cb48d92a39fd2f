package reveal

import (
	"fmt"
	"github.com/celskeggs/sweepscope/sim/model"
	"github.com/celskeggs/sweepscope/sim/signal"
	"github.com/hashicorp/go-multierror"
	"math"
	"time"
)

// Config fixes the shape and cadence of the sweep. It cannot be changed once an engine is constructed.
type Config struct {
	// Count is the number of samples per sweep, and the capacity of the display buffer.
	Count     int
	Amplitude float64
	Frequency signal.FrequencyRange
	// TickInterval is the delay between consecutive reveals.
	TickInterval time.Duration
	// LabelStride emphasizes every LabelStride-th label and tick mark.
	LabelStride int
}

func DefaultConfig() Config {
	return Config{
		Count:        500,
		Amplitude:    10,
		Frequency:    signal.FrequencyRange{Min: 0.10, Max: 0.15},
		TickInterval: 10 * time.Millisecond,
		LabelStride:  10,
	}
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var result error
	if c.Count <= 0 {
		result = multierror.Append(result, fmt.Errorf("sample count must be positive, not %d", c.Count))
	}
	if !(c.Amplitude > 0) || math.IsInf(c.Amplitude, 0) {
		result = multierror.Append(result, fmt.Errorf("amplitude must be positive and finite, not %v", c.Amplitude))
	}
	if err := c.Frequency.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if c.TickInterval <= 0 {
		result = multierror.Append(result, fmt.Errorf("tick interval must be positive, not %v", c.TickInterval))
	}
	if c.LabelStride <= 0 {
		result = multierror.Append(result, fmt.Errorf("label stride must be positive, not %d", c.LabelStride))
	}
	return result
}

// Construct builds an engine that draws each sweep's frequency uniformly from c.Frequency using the simulation's
// random source. The engine is idle until Start is called.
func (c Config) Construct(ctx model.SimContext) (*Engine, error) {
	return c.ConstructWithSource(ctx, signal.UniformFrequencies{
		Range: c.Frequency,
		Rand:  ctx.Rand(),
	})
}

func (c Config) ConstructWithSource(ctx model.SimContext, source signal.FrequencySource) (*Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if source == nil {
		return nil, fmt.Errorf("no frequency source provided")
	}
	return newEngine(ctx, c, source), nil
}
