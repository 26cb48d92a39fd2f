package main

import (
	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/celskeggs/sweepscope/ctrl/chart/sweepplot"
	"github.com/celskeggs/sweepscope/sim/reveal"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vggio"
	"log"
	"os"
)

// PlotWidget redraws the latest frame from a monitor every time it is laid out.
type PlotWidget struct {
	Config    reveal.Config
	Monitor   *reveal.Monitor
	DPI       int
	ExportDir string
}

func (p *PlotWidget) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	frame, ok := p.Monitor.Latest()
	if !ok {
		return layout.Dimensions{Size: size}
	}
	wAdjusted := vg.Points(float64(size.X) * vg.Inch.Points() / float64(p.DPI))
	hAdjusted := vg.Points(float64(size.Y) * vg.Inch.Points() / float64(p.DPI))
	cnv := vggio.New(gtx, wAdjusted, hAdjusted, vggio.UseDPI(p.DPI))
	sweepplot.BuildPlot(frame, p.Config).Draw(draw.New(cnv))
	return layout.Dimensions{Size: size}
}

// Export saves the frame currently on screen.
func (p *PlotWidget) Export() error {
	if p.ExportDir == "" {
		return nil
	}
	frame, ok := p.Monitor.Latest()
	if !ok {
		return nil
	}
	_, err := sweepplot.ExportFrame(frame, p.Config, p.ExportDir)
	return err
}

// DisplayFrames opens a window that follows the monitor until the window is closed, at which point onClose runs and
// the process exits. It must be called from the main goroutine.
func DisplayFrames(config reveal.Config, monitor *reveal.Monitor, exportDir string, onClose func()) {
	plotWidget := &PlotWidget{
		Config:    config,
		Monitor:   monitor,
		DPI:       96,
		ExportDir: exportDir,
	}

	go func() {
		win := app.NewWindow(
			app.Title("Sweep"),
			app.Size(
				unit.Px(1000),
				unit.Px(300),
			),
		)
		defer win.Close()

		for {
			select {
			case <-monitor.Updated():
				win.Invalidate()
			case e := <-win.Events():
				switch e := e.(type) {
				case system.FrameEvent:
					ops := new(op.Ops)
					gtx := layout.NewContext(ops, e)
					layout.UniformInset(unit.Dp(10)).Layout(gtx, plotWidget.Layout)
					e.Frame(ops)

				case key.Event:
					switch e.Name {
					case "Q", key.NameEscape:
						win.Close()
					case "E":
						if e.State == key.Press {
							if err := plotWidget.Export(); err != nil {
								log.Printf("Export failed: %v", err)
							}
						}
					}

				case system.DestroyEvent:
					if onClose != nil {
						onClose()
					}
					if e.Err != nil {
						log.Fatal(e.Err)
					}
					os.Exit(0)
				}
			}
		}
	}()

	app.Main()
}
