// Package stats has the shared numeric primitives for jumplab: least-squares
// fitting, correlation, population spread and trapezoidal integration.
package stats

import (
	"errors"
	"math"
)

// ErrDegenerateInput indicates that an input has zero variance where variance
// is required for a numerically meaningful operation.
var ErrDegenerateInput = errors.New("input has zero variance")

// Mean returns the arithmetic mean of values. Returns 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation (divisor n, not n-1).
// Returns 0 for an empty slice.
func StdDev(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	mu := Mean(values)
	var sq float64
	for _, v := range values {
		d := v - mu
		sq += d * d
	}
	return math.Sqrt(sq / float64(n))
}

// FitLine fits a 1-degree least-squares line y = slope*x + intercept.
// Returns ErrDegenerateInput when x has zero variance, since the normal
// equations are singular there.
func FitLine(x, y []float64) (slope, intercept float64, err error) {
	n := len(x)
	if n == 0 || n != len(y) {
		return 0, 0, errors.New("x and y must be non-empty and equal length")
	}

	muX := Mean(x)
	muY := Mean(y)

	var sxx, sxy float64
	for i := range n {
		dx := x[i] - muX
		sxx += dx * dx
		sxy += dx * (y[i] - muY)
	}
	if sxx == 0 {
		return 0, 0, ErrDegenerateInput
	}

	slope = sxy / sxx
	intercept = muY - slope*muX
	return slope, intercept, nil
}

// Pearson returns the Pearson correlation coefficient of x and y, clamped
// to [-1, 1] to absorb floating-point drift. Returns 0 when either input
// has zero variance.
func Pearson(x, y []float64) float64 {
	n := len(x)
	if n == 0 || n != len(y) {
		return 0
	}

	muX := Mean(x)
	muY := Mean(y)

	var sxx, syy, sxy float64
	for i := range n {
		dx := x[i] - muX
		dy := y[i] - muY
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	if sxx == 0 || syy == 0 {
		return 0
	}

	r := sxy / math.Sqrt(sxx*syy)
	return math.Min(math.Max(r, -1), 1) // clamp to [-1,1]
}

// Trapezoid integrates f over t with the trapezoidal rule:
// sum((f[i]+f[i-1])/2 * (t[i]-t[i-1])). Exact for constant and linear
// signals. Returns 0 for fewer than two samples.
func Trapezoid(t, f []float64) float64 {
	var integral float64
	for i := 1; i < len(t) && i < len(f); i++ {
		dt := t[i] - t[i-1]
		integral += (f[i] + f[i-1]) / 2.0 * dt
	}
	return integral
}

// Percentile returns the p-th percentile (0-100) of sorted values using
// linear interpolation between closest ranks, matching numpy's default.
// The input slice must already be sorted ascending.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}

	rank := p / 100.0 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo < 0 {
		return sorted[0]
	}
	if hi >= n {
		return sorted[n-1]
	}
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
