// Package signal generates the finite sine waveforms that the reveal engine sweeps across the chart.
package signal

import "math"

type Sample struct {
	Index int
	Value float64
}

// Signal is a finite, immutable run of samples. Signal[i].Index is always i.
type Signal []Sample

// Generate produces count samples of amplitude * sin(frequency * i). A non-positive count yields an empty signal.
func Generate(count int, amplitude float64, frequency float64) Signal {
	if count <= 0 {
		return Signal{}
	}
	s := make(Signal, count)
	for i := range s {
		s[i] = Sample{
			Index: i,
			Value: amplitude * math.Sin(frequency*float64(i)),
		}
	}
	return s
}

func (s Signal) Len() int {
	return len(s)
}
