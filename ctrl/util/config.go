package util

import (
	"github.com/celskeggs/sweepscope/sim/component"
	"github.com/celskeggs/sweepscope/sim/reveal"
	"github.com/hashicorp/go-multierror"
)

const SweepOptionsUsage = `  --count N        samples per sweep (default 500)
  --amplitude A    peak value (default 10)
  --fmin F         lowest frequency drawn, in radians per sample (default 0.10)
  --fmax F         highest frequency drawn (default 0.15)
  --interval D     delay between reveals, e.g. 10ms (default 10ms)
  --stride K       label every Kth position (default 10)
  --seed S         random seed (default: time-based)
`

// SweepConfigFromArgs overrides the default sweep configuration with any options present in args. The seed is zero
// when none was given.
func SweepConfigFromArgs(args []string) (config reveal.Config, seed int64, err error) {
	config = reveal.DefaultConfig()
	var result error
	collect := func(e error) {
		if e != nil {
			result = multierror.Append(result, e)
		}
	}

	config.Count, err = ArgInt(args, "--count", config.Count)
	collect(err)
	config.Amplitude, err = ArgFloat(args, "--amplitude", config.Amplitude)
	collect(err)
	config.Frequency.Min, err = ArgFloat(args, "--fmin", config.Frequency.Min)
	collect(err)
	config.Frequency.Max, err = ArgFloat(args, "--fmax", config.Frequency.Max)
	collect(err)
	config.TickInterval, err = ArgDuration(args, "--interval", config.TickInterval)
	collect(err)
	config.LabelStride, err = ArgInt(args, "--stride", config.LabelStride)
	collect(err)
	seed, err = ArgInt64(args, "--seed", 0)
	collect(err)

	if result == nil {
		result = config.Validate()
	}
	return config, seed, result
}

// MakeSimController builds a simulation seeded with seed, or with a time-based seed when none was chosen.
func MakeSimController(seed int64) *component.SimController {
	if seed == 0 {
		return component.MakeSimControllerRandomized()
	}
	return component.MakeSimControllerSeeded(seed)
}
