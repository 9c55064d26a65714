package core

import (
	"testing"

	"github.com/pcorbett/jumplab/core/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bootstrapData(n int) (x, y []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	for i := range x {
		x[i] = 30 + float64(i)
		y[i] = 2*x[i] + 0.5*float64(i%7) // mild structured noise
	}
	return x, y
}

// TestBootstrapPredict_SeedDeterminism checks that the same seed yields a
// bit-identical interval regardless of worker count.
func TestBootstrapPredict_SeedDeterminism(t *testing.T) {
	x, y := bootstrapData(40)

	serial, err := BootstrapPredict(x, y, 45, BootstrapOptions{Resamples: 500, Seed: 42, Workers: 1})
	require.NoError(t, err)

	parallel, err := BootstrapPredict(x, y, 45, BootstrapOptions{Resamples: 500, Seed: 42, Workers: 8})
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)

	again, err := BootstrapPredict(x, y, 45, BootstrapOptions{Resamples: 500, Seed: 42, Workers: 3})
	require.NoError(t, err)
	assert.Equal(t, serial, again)
}

// TestBootstrapPredict_DifferentSeeds checks that seeds actually matter.
func TestBootstrapPredict_DifferentSeeds(t *testing.T) {
	x, y := bootstrapData(40)

	a, err := BootstrapPredict(x, y, 45, BootstrapOptions{Resamples: 500, Seed: 1})
	require.NoError(t, err)
	b, err := BootstrapPredict(x, y, 45, BootstrapOptions{Resamples: 500, Seed: 2})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

// TestBootstrapPredict_NoiselessData checks that a perfect linear relation
// collapses the interval onto the true prediction.
func TestBootstrapPredict_NoiselessData(t *testing.T) {
	n := 30
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i + 1)
		y[i] = 2 * x[i] // every refit recovers exactly y = 2x
	}

	interval, err := BootstrapPredict(x, y, 6, BootstrapOptions{Resamples: 200, Seed: 42})
	require.NoError(t, err)

	assert.InDelta(t, 12, interval.MeanMPH, 1e-6)
	assert.InDelta(t, 12, interval.LowMPH, 1e-6)
	assert.InDelta(t, 12, interval.HighMPH, 1e-6)
}

// TestBootstrapPredict_IntervalOrdering checks Low <= Mean-ish <= High and
// that the interval brackets the full-data prediction on reasonable data.
func TestBootstrapPredict_IntervalOrdering(t *testing.T) {
	x, y := bootstrapData(50)

	interval, err := BootstrapPredict(x, y, 45, BootstrapOptions{Resamples: 1000, Seed: 42})
	require.NoError(t, err)

	assert.LessOrEqual(t, interval.LowMPH, interval.HighMPH)
	assert.GreaterOrEqual(t, interval.MeanMPH, interval.LowMPH)
	assert.LessOrEqual(t, interval.MeanMPH, interval.HighMPH)
}

// TestBootstrapPredict_DegenerateX checks the constant-x rejection.
func TestBootstrapPredict_DegenerateX(t *testing.T) {
	x := []float64{5, 5, 5, 5, 5}
	y := []float64{1, 2, 3, 4, 5}

	_, err := BootstrapPredict(x, y, 5, BootstrapOptions{Resamples: 100, Seed: 42})
	assert.ErrorIs(t, err, stats.ErrDegenerateInput)
}

// TestBootstrapPredict_LengthMismatch checks the input length guard.
func TestBootstrapPredict_LengthMismatch(t *testing.T) {
	_, err := BootstrapPredict([]float64{1, 2}, []float64{1}, 5, BootstrapOptions{})
	assert.Error(t, err)
}

// TestBootstrapOptions_Defaults checks zero-value option filling.
func TestBootstrapOptions_Defaults(t *testing.T) {
	opts := BootstrapOptions{}.withDefaults()
	assert.Equal(t, DefaultResamples, opts.Resamples)
	assert.Greater(t, opts.Workers, 0)
}
