package reveal

import (
	"fmt"
	"github.com/celskeggs/sweepscope/sim/model"
)

// Frame is everything a renderer needs to draw one moment of the sweep. Frames are immutable: the engine never writes
// to a slice it has already handed out.
type Frame struct {
	At        model.VirtualTime
	Cycle     uint64
	Frequency float64
	// Count is the full width of the chart, revealed or not.
	Count  int
	Labels []string
	// Series holds the values revealed so far. Positions at or beyond len(Series) are gaps, not zeros.
	Series []float64
	// Marker is the 1-based position of the most recently revealed point, meaningful only when HasMarker is set.
	Marker    int
	HasMarker bool
	Complete  bool
}

func (f Frame) Cursor() int {
	return len(f.Series)
}

// Gap reports whether position i has not been revealed yet.
func (f Frame) Gap(i int) bool {
	return i < 0 || i >= len(f.Series)
}

// MarkerIndex converts the marker into a 0-based x position.
func (f Frame) MarkerIndex() (int, bool) {
	if !f.HasMarker {
		return 0, false
	}
	return f.Marker - 1, true
}

// MarkerLabel is the label the reference marker sits on, or "" when there is no marker.
func (f Frame) MarkerLabel() string {
	if i, ok := f.MarkerIndex(); ok {
		return f.Labels[i]
	}
	return ""
}

func (f Frame) String() string {
	return fmt.Sprintf("%v sweep %d (f=%.4f): %d/%d revealed", f.At, f.Cycle, f.Frequency, len(f.Series), f.Count)
}

// Emphasized reports whether the label at position i carries a tick mark.
func Emphasized(i int, stride int) bool {
	return stride > 0 && i%stride == 0
}

func positionLabel(i int) string {
	return fmt.Sprintf("Point %d", i+1)
}

func makeLabels(count int) []string {
	labels := make([]string, count)
	for i := range labels {
		labels[i] = positionLabel(i)
	}
	return labels
}
