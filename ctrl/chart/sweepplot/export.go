package sweepplot

import (
	"fmt"
	"github.com/celskeggs/sweepscope/sim/component"
	"github.com/celskeggs/sweepscope/sim/reveal"
	"log"
	"path"
)

// ExportName names the file a frame is exported under, so that exports sort by sweep and then by cursor.
func ExportName(frame reveal.Frame) string {
	return fmt.Sprintf("sweep-%d-%03d.png", frame.Cycle, frame.Cursor())
}

// ExportFrame saves frame into dir under its ExportName and returns the path written.
func ExportFrame(frame reveal.Frame, config reveal.Config, dir string) (string, error) {
	filepath := path.Join(dir, ExportName(frame))
	if err := SaveFrame(frame, config, filepath); err != nil {
		return "", err
	}
	log.Printf("Frame exported to %s", filepath)
	return filepath, nil
}

// RunAndSave runs the engine for the given number of ticks in virtual time, without waiting on the wall clock, then
// stops it and saves the final frame.
func RunAndSave(sim *component.SimController, engine *reveal.Engine, filename string, ticks int) error {
	if ticks < 0 {
		return fmt.Errorf("tick count %d must not be negative", ticks)
	}
	engine.Start()
	sim.Advance(sim.Now().AfterTicks(ticks, engine.Config().TickInterval))
	engine.Stop()
	frame := engine.Frame()
	log.Printf("Saving %v to %s", frame, filename)
	return SaveFrame(frame, engine.Config(), filename)
}
