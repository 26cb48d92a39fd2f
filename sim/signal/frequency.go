package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// FrequencyRange bounds the angular frequency (radians per sample) drawn for each sweep.
type FrequencyRange struct {
	Min float64
	Max float64
}

func (r FrequencyRange) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

func (r FrequencyRange) Validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("frequency range %v must be finite", r)
	}
	if r.Min <= 0 {
		return fmt.Errorf("frequency range %v must have a positive minimum", r)
	}
	if r.Min >= r.Max {
		return fmt.Errorf("frequency range %v must have minimum below maximum", r)
	}
	return nil
}

// Draw picks a frequency uniformly from the range.
func (r FrequencyRange) Draw(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

func (r FrequencyRange) Contains(f float64) bool {
	return f >= r.Min && f <= r.Max
}

// FrequencySource supplies one frequency per sweep. Each call is an independent draw.
type FrequencySource interface {
	NextFrequency() float64
}

type UniformFrequencies struct {
	Range FrequencyRange
	Rand  *rand.Rand
}

var _ FrequencySource = UniformFrequencies{}

func (u UniformFrequencies) NextFrequency() float64 {
	return u.Range.Draw(u.Rand)
}

// FixedFrequencies replays a fixed list of frequencies, starting over once exhausted.
type FixedFrequencies struct {
	Frequencies []float64
	next        int
	draws       int
}

var _ FrequencySource = &FixedFrequencies{}

func MakeFixedFrequencies(frequencies ...float64) *FixedFrequencies {
	if len(frequencies) == 0 {
		panic("at least one frequency required")
	}
	return &FixedFrequencies{
		Frequencies: frequencies,
	}
}

func (f *FixedFrequencies) NextFrequency() float64 {
	freq := f.Frequencies[f.next]
	f.next = (f.next + 1) % len(f.Frequencies)
	f.draws += 1
	return freq
}

// Draws counts how many frequencies have been handed out.
func (f *FixedFrequencies) Draws() int {
	return f.draws
}
