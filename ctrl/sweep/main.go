package main

import (
	"fmt"
	"github.com/celskeggs/sweepscope/ctrl/chart/sweepplot"
	"github.com/celskeggs/sweepscope/ctrl/util"
	"github.com/celskeggs/sweepscope/sim/component"
	"github.com/celskeggs/sweepscope/sim/reveal"
	"log"
	"os"
)

func usage() {
	fmt.Printf("Usage: %s [options] [--export <file.png> [--ticks N]] [--export-dir <dir>]\n", os.Args[0])
	fmt.Print(util.SweepOptionsUsage)
	fmt.Print(`  --export FILE    run headless for --ticks reveals (default: one full sweep) and save the chart
  --export-dir DIR where the E key saves frames while the window is open
`)
}

func main() {
	args := os.Args[1:]
	if util.HasArg("--help") {
		usage()
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

	path, ok, err := util.ArgValue(args, "--export")
	if err != nil {
		log.Fatal(err)
	}
	if ok {
		ticks, err := util.ArgInt(args, "--ticks", config.Count)
		if err != nil {
			log.Fatal(err)
		}
		if err := sweepplot.RunAndSave(sim, engine, path, ticks); err != nil {
			log.Fatal(err)
		}
		return
	}

	exportDir, _, err := util.ArgValue(args, "--export-dir")
	if err != nil {
		log.Fatal(err)
	}
	if exportDir != "" && !util.Exists(exportDir) {
		log.Fatalf("Export directory %q does not exist", exportDir)
	}

	monitor := reveal.NewMonitor()
	driver := component.MakeRealtimeDriver(sim, config.TickInterval)
	driver.Sync(func() {
		monitor.Watch(engine)
		engine.Start()
	})
	driver.Start()

	teardown := func() {
		driver.Sync(engine.Stop)
		driver.Close()
	}
	DisplayFrames(config, monitor, exportDir, teardown)
}
