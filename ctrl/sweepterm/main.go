package main

import (
	"fmt"
	"github.com/celskeggs/sweepscope/ctrl/chart/termchart"
	"github.com/celskeggs/sweepscope/ctrl/util"
	"github.com/celskeggs/sweepscope/sim/component"
	"github.com/celskeggs/sweepscope/sim/reveal"
	"golang.org/x/term"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	frameInterval = time.Second / 30
	defaultWidth  = 100
	defaultHeight = 24
)

func terminalSize() (width, height int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth, defaultHeight
	}
	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 || height <= 0 {
		return defaultWidth, defaultHeight
	}
	return width, height
}

func main() {
	args := os.Args[1:]
	if util.HasArg("--help") {
		fmt.Printf("Usage: %s [options]\n", os.Args[0])
		fmt.Print(util.SweepOptionsUsage)
		return
	}
	config, seed, err := util.SweepConfigFromArgs(args)
	if err != nil {
		log.Fatal(err)
	}
	sim := util.MakeSimController(seed)
	engine, err := config.Construct(sim)
	if err != nil {
		log.Fatal(err)
	}

	monitor := reveal.NewMonitor()
	driver := component.MakeRealtimeDriver(sim, config.TickInterval)
	driver.Sync(func() {
		monitor.Watch(engine)
		engine.Start()
	})
	driver.Start()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	redraw := time.NewTicker(frameInterval)
	defer redraw.Stop()
	dirty := true
	for {
		select {
		case <-monitor.Updated():
			dirty = true
		case <-redraw.C:
			if !dirty {
				continue
			}
			dirty = false
			frame, _ := monitor.Latest()
			width, height := terminalSize()
			fmt.Print("\033[H\033[2J" + termchart.Render(frame, config.Amplitude, width, height))
		case <-interrupt:
			driver.Sync(engine.Stop)
			driver.Close()
			fmt.Println()
			return
		}
	}
}
