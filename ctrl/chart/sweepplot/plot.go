package sweepplot

import (
	"fmt"
	"github.com/celskeggs/sweepscope/sim/reveal"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"image/color"
	"math"
)

var (
	SeriesColor = color.RGBA{R: 0x88, G: 0x84, B: 0xd8, A: 255}
	MarkerColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// yMargin is the headroom kept above and below the waveform's peaks.
const yMargin = 2

// SweepPlot draws the revealed part of a sweep, leaving unrevealed positions empty, plus a vertical reference line at
// the most recently revealed point.
type SweepPlot struct {
	Frame       reveal.Frame
	Amplitude   float64
	LineStyle   draw.LineStyle
	MarkerStyle draw.LineStyle
}

var _ plot.Plotter = &SweepPlot{}
var _ plot.DataRanger = &SweepPlot{}

func NewSweepPlot(frame reveal.Frame, amplitude float64) *SweepPlot {
	return &SweepPlot{
		Frame:     frame,
		Amplitude: amplitude,
		LineStyle: draw.LineStyle{
			Color: SeriesColor,
			Width: vg.Points(3),
		},
		MarkerStyle: draw.LineStyle{
			Color: MarkerColor,
			Width: vg.Points(2),
		},
	}
}

func (s *SweepPlot) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	if len(s.Frame.Series) > 0 {
		pts := make([]vg.Point, len(s.Frame.Series))
		for i, v := range s.Frame.Series {
			pts[i] = vg.Point{
				X: trX(float64(i)),
				Y: trY(v),
			}
		}
		c.StrokeLines(s.LineStyle, c.ClipLinesXY(pts)...)
	}

	if i, ok := s.Frame.MarkerIndex(); ok {
		x := trX(float64(i))
		if c.ContainsX(x) {
			c.StrokeLine2(s.MarkerStyle, x, c.Min.Y, x, c.Max.Y)
		}
	}
}

func (s *SweepPlot) DataRange() (xmin, xmax, ymin, ymax float64) {
	return 0, math.Max(0, float64(s.Frame.Count-1)), -s.Amplitude, s.Amplitude
}

// LabelTicker places a labelled tick on every Stride-th position.
type LabelTicker struct {
	Labels []string
	Stride int
}

var _ plot.Ticker = LabelTicker{}

func (t LabelTicker) Ticks(min, max float64) (ticks []plot.Tick) {
	for i, label := range t.Labels {
		if float64(i) < min || float64(i) > max {
			continue
		}
		if reveal.Emphasized(i, t.Stride) {
			ticks = append(ticks, plot.Tick{
				Value: float64(i),
				Label: label,
			})
		}
	}
	return ticks
}

// BuildPlot lays out a full chart for a single frame: fixed axes spanning every position and the whole amplitude.
func BuildPlot(frame reveal.Frame, config reveal.Config) *plot.Plot {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Sweep %d (frequency %.4f)", frame.Cycle, frame.Frequency)
	p.Add(NewSweepPlot(frame, config.Amplitude))

	// fixed after Add, which would otherwise shrink the axes to the data
	p.X.Min = 0
	p.X.Max = math.Max(1, float64(config.Count-1))
	p.Y.Min = -config.Amplitude - yMargin
	p.Y.Max = config.Amplitude + yMargin

	p.X.Tick.Marker = LabelTicker{
		Labels: frame.Labels,
		Stride: config.LabelStride,
	}
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	return p
}
