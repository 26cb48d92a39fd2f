package sweepplot

import (
	"bytes"
	"errors"
	"github.com/celskeggs/sweepscope/sim/component"
	"github.com/celskeggs/sweepscope/sim/reveal"
	"github.com/celskeggs/sweepscope/sim/signal"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func frameAfter(t *testing.T, config reveal.Config, ticks int) reveal.Frame {
	sim := component.MakeSimControllerSeeded(11)
	engine, err := config.ConstructWithSource(sim, signal.MakeFixedFrequencies(0.12))
	require.NoError(t, err)
	for i := 0; i < ticks; i++ {
		engine.Step()
	}
	return engine.Frame()
}

func TestLabelTickerUsesStride(t *testing.T) {
	config := reveal.DefaultConfig()
	frame := frameAfter(t, config, 0)
	ticks := LabelTicker{Labels: frame.Labels, Stride: 10}.Ticks(0, 499)
	require.Len(t, ticks, 50)
	assert.Equal(t, 0.0, ticks[0].Value)
	assert.Equal(t, "Point 1", ticks[0].Label)
	assert.Equal(t, 490.0, ticks[49].Value)
	assert.Equal(t, "Point 491", ticks[49].Label)

	ticks = LabelTicker{Labels: frame.Labels, Stride: 10}.Ticks(15, 35)
	require.Len(t, ticks, 2)
	assert.Equal(t, 20.0, ticks[0].Value)
}

func TestBuildPlotAxes(t *testing.T) {
	config := reveal.DefaultConfig()
	p := BuildPlot(frameAfter(t, config, 37), config)
	assert.Equal(t, 0.0, p.X.Min)
	assert.Equal(t, 499.0, p.X.Max)
	assert.Equal(t, -12.0, p.Y.Min)
	assert.Equal(t, 12.0, p.Y.Max)
	assert.Equal(t, "Sweep 1 (frequency 0.1200)", p.Title.Text)
}

func TestSweepPlotDataRange(t *testing.T) {
	config := reveal.DefaultConfig()
	sp := NewSweepPlot(frameAfter(t, config, 3), config.Amplitude)
	xmin, xmax, ymin, ymax := sp.DataRange()
	assert.Equal(t, 0.0, xmin)
	assert.Equal(t, 499.0, xmax)
	assert.Equal(t, -10.0, ymin)
	assert.Equal(t, 10.0, ymax)
}

func TestWritePNG(t *testing.T) {
	config := reveal.DefaultConfig()
	for _, ticks := range []int{0, 1, 250, 500} {
		var buf bytes.Buffer
		err := WritePlot(BuildPlot(frameAfter(t, config, ticks), config), ChartWidth, ChartHeight, &buf, "png")
		require.NoError(t, err)
		img, err := png.Decode(&buf)
		require.NoError(t, err)
		assert.Greater(t, img.Bounds().Dx(), 0)
	}
}

func TestSaveFrame(t *testing.T) {
	config := reveal.DefaultConfig()
	out := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, SaveFrame(frameAfter(t, config, 120), config, out))
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	assert.Error(t, SaveFrame(frameAfter(t, config, 1), config, filepath.Join(t.TempDir(), "missing", "frame.png")))
}

type failingCloser struct {
	bytes.Buffer
}

func (f *failingCloser) Close() error {
	return errors.New("close failed")
}

func TestWriteClosePlotReportsCloseError(t *testing.T) {
	config := reveal.DefaultConfig()
	p := BuildPlot(frameAfter(t, config, 5), config)

	err := WriteClosePlot(p, ChartWidth, ChartHeight, &failingCloser{}, "png")
	require.Error(t, err)
	assert.Equal(t, "close failed", err.Error())

	// an unknown format fails the write, and the close failure is kept alongside it
	err = WriteClosePlot(p, ChartWidth, ChartHeight, &failingCloser{}, "not-a-format")
	require.Error(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Len(t, merr.Errors, 2)
}
