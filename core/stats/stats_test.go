package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMean tests the arithmetic mean.
func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{
			name:     "empty slice",
			values:   []float64{},
			expected: 0,
		},
		{
			name:     "single value",
			values:   []float64{42},
			expected: 42,
		},
		{
			name:     "mixed values",
			values:   []float64{1, 2, 3, 4},
			expected: 2.5,
		},
		{
			name:     "negative values",
			values:   []float64{-2, 2},
			expected: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Mean(tt.values), 1e-12)
		})
	}
}

// TestStdDev tests the population standard deviation (divisor n).
func TestStdDev(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{
			name:     "empty slice",
			values:   []float64{},
			expected: 0,
		},
		{
			name:     "constant values",
			values:   []float64{5, 5, 5, 5},
			expected: 0,
		},
		{
			// Population SD of {2,4,4,4,5,5,7,9} is exactly 2.
			name:     "known population spread",
			values:   []float64{2, 4, 4, 4, 5, 5, 7, 9},
			expected: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, StdDev(tt.values), 1e-12)
		})
	}
}

// TestFitLine tests least-squares fitting on exact and noisy data.
func TestFitLine(t *testing.T) {
	t.Run("exact linear data", func(t *testing.T) {
		x := []float64{1, 2, 3, 4, 5}
		y := []float64{3, 5, 7, 9, 11} // y = 2x + 1

		slope, intercept, err := FitLine(x, y)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, slope, 1e-9)
		assert.InDelta(t, 1.0, intercept, 1e-9)
	})

	t.Run("constant y gives zero slope", func(t *testing.T) {
		x := []float64{1, 2, 3, 4}
		y := []float64{7, 7, 7, 7}

		slope, intercept, err := FitLine(x, y)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, slope, 1e-9)
		assert.InDelta(t, 7.0, intercept, 1e-9)
	})

	t.Run("zero x variance is degenerate", func(t *testing.T) {
		x := []float64{3, 3, 3}
		y := []float64{1, 2, 3}

		_, _, err := FitLine(x, y)
		assert.ErrorIs(t, err, ErrDegenerateInput)
	})

	t.Run("mismatched lengths", func(t *testing.T) {
		_, _, err := FitLine([]float64{1, 2}, []float64{1})
		assert.Error(t, err)
	})

	t.Run("empty input", func(t *testing.T) {
		_, _, err := FitLine(nil, nil)
		assert.Error(t, err)
	})
}

// TestPearson tests correlation bounds and degenerate inputs.
func TestPearson(t *testing.T) {
	tests := []struct {
		name     string
		x        []float64
		y        []float64
		expected float64
	}{
		{
			name:     "perfect positive",
			x:        []float64{1, 2, 3, 4},
			y:        []float64{2, 4, 6, 8},
			expected: 1,
		},
		{
			name:     "perfect negative",
			x:        []float64{1, 2, 3, 4},
			y:        []float64{8, 6, 4, 2},
			expected: -1,
		},
		{
			name:     "zero x variance",
			x:        []float64{3, 3, 3},
			y:        []float64{1, 2, 3},
			expected: 0,
		},
		{
			name:     "zero y variance",
			x:        []float64{1, 2, 3},
			y:        []float64{5, 5, 5},
			expected: 0,
		},
		{
			name:     "empty input",
			x:        nil,
			y:        nil,
			expected: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Pearson(tt.x, tt.y)
			assert.InDelta(t, tt.expected, r, 1e-9)
			assert.GreaterOrEqual(t, r, -1.0)
			assert.LessOrEqual(t, r, 1.0)
		})
	}
}

// TestTrapezoid tests exactness on constant and linear signals.
func TestTrapezoid(t *testing.T) {
	tests := []struct {
		name     string
		times    []float64
		forces   []float64
		expected float64
	}{
		{
			name:     "too few samples",
			times:    []float64{0.1},
			forces:   []float64{100},
			expected: 0,
		},
		{
			// Constant c over duration d integrates to exactly c*d.
			name:     "constant signal",
			times:    []float64{0, 0.05, 0.1, 0.15, 0.2},
			forces:   []float64{800, 800, 800, 800, 800},
			expected: 160,
		},
		{
			// Linear ramp from 0 to 100 over 1s is a triangle of area 50.
			name:     "linear ramp",
			times:    []float64{0, 0.25, 0.5, 0.75, 1},
			forces:   []float64{0, 25, 50, 75, 100},
			expected: 50,
		},
		{
			// Uneven spacing keeps the rule exact for linear signals.
			name:     "uneven spacing linear",
			times:    []float64{0, 0.1, 0.4, 1},
			forces:   []float64{0, 10, 40, 100},
			expected: 50,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Trapezoid(tt.times, tt.forces), 1e-9)
		})
	}
}

// TestPercentile tests the linear-interpolation percentile.
func TestPercentile(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}

	tests := []struct {
		name     string
		p        float64
		expected float64
	}{
		{name: "minimum", p: 0, expected: 10},
		{name: "maximum", p: 100, expected: 40},
		{name: "median interpolates", p: 50, expected: 25},
		{name: "lower quartile", p: 25, expected: 17.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Percentile(sorted, tt.p), 1e-9)
		})
	}

	t.Run("empty input is NaN", func(t *testing.T) {
		assert.True(t, math.IsNaN(Percentile(nil, 50)))
	})

	t.Run("single value", func(t *testing.T) {
		assert.InDelta(t, 7.0, Percentile([]float64{7}, 97.5), 1e-12)
	})
}
