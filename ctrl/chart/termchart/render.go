// Package termchart draws sweep frames as text, for terminals.
package termchart

import (
	"fmt"
	"github.com/celskeggs/sweepscope/sim/reveal"
	"github.com/guptarohit/asciigraph"
	"strings"
)

// axisWidth approximates the columns asciigraph spends on the y-axis labels.
const axisWidth = 10

const yMargin = 2

// Columns maps the full sweep onto width columns and returns the values of the columns that have been revealed. The
// chart grows from the left, so unrevealed positions stay blank instead of being stretched over.
func Columns(frame reveal.Frame, width int) []float64 {
	if width <= 0 || frame.Count <= 0 {
		return nil
	}
	if width > frame.Count {
		width = frame.Count
	}
	var columns []float64
	for c := 0; c < width; c++ {
		pos := c * frame.Count / width
		if frame.Gap(pos) {
			break
		}
		columns = append(columns, frame.Series[pos])
	}
	return columns
}

func Caption(frame reveal.Frame) string {
	if !frame.HasMarker {
		return fmt.Sprintf("sweep %d | f=%.4f | waiting", frame.Cycle, frame.Frequency)
	}
	return fmt.Sprintf("sweep %d | f=%.4f | %s of %d", frame.Cycle, frame.Frequency, frame.MarkerLabel(), frame.Count)
}

// Render draws a frame into roughly width by height cells.
func Render(frame reveal.Frame, amplitude float64, width, height int) string {
	plotHeight := height - 2
	if plotHeight < 1 {
		plotHeight = 1
	}
	columns := Columns(frame, width-axisWidth)
	if len(columns) == 0 {
		return strings.Repeat("\n", plotHeight) + Caption(frame)
	}
	return asciigraph.Plot(columns,
		asciigraph.Height(plotHeight),
		asciigraph.LowerBound(-amplitude-yMargin),
		asciigraph.UpperBound(amplitude+yMargin),
		asciigraph.Precision(1),
		asciigraph.Caption(Caption(frame)),
	)
}
