package util

import (
	"github.com/celskeggs/sweepscope/sim/reveal"
	"github.com/celskeggs/sweepscope/sim/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestArgValue(t *testing.T) {
	args := []string{"--count", "40", "--fmin=0.2", "--flag"}
	v, ok, err := ArgValue(args, "--count")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "40", v)
	v, ok, err = ArgValue(args, "--fmin")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "0.2", v)
	_, ok, err = ArgValue(args, "--stride")
	assert.NoError(t, err)
	assert.False(t, ok)
	// a trailing option has no value
	_, ok, err = ArgValue(args, "--flag")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.True(t, hasArgIn(args, "--flag"))
	assert.False(t, hasArgIn(args, "--other"))
}

func TestSweepConfigDefaults(t *testing.T) {
	config, seed, err := SweepConfigFromArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, reveal.DefaultConfig(), config)
	assert.Equal(t, int64(0), seed)
}

func TestMakeSimController(t *testing.T) {
	a, b := MakeSimController(5), MakeSimController(5)
	assert.Equal(t, a.Rand().Int63(), b.Rand().Int63())
	assert.NotNil(t, MakeSimController(0).Rand())
}

func TestSweepConfigTrailingOption(t *testing.T) {
	config, _, err := SweepConfigFromArgs([]string{"--amplitude", "4", "--count"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing value for --count")
	assert.Equal(t, 4.0, config.Amplitude)
}

func TestSweepConfigOverrides(t *testing.T) {
	config, seed, err := SweepConfigFromArgs([]string{
		"--count", "120", "--amplitude=3.5", "--fmin", "0.2", "--fmax", "0.3",
		"--interval", "25ms", "--stride", "4", "--seed", "99",
	})
	require.NoError(t, err)
	assert.Equal(t, 120, config.Count)
	assert.Equal(t, 3.5, config.Amplitude)
	assert.Equal(t, signal.FrequencyRange{Min: 0.2, Max: 0.3}, config.Frequency)
	assert.Equal(t, 25*time.Millisecond, config.TickInterval)
	assert.Equal(t, 4, config.LabelStride)
	assert.Equal(t, int64(99), seed)
}

func TestSweepConfigErrors(t *testing.T) {
	_, _, err := SweepConfigFromArgs([]string{"--count", "many", "--interval", "soon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--count")
	assert.Contains(t, err.Error(), "--interval")

	_, _, err = SweepConfigFromArgs([]string{"--fmin", "0.3", "--fmax", "0.2"})
	assert.Error(t, err)
}
