package core

import (
	"fmt"
	"math"

	"github.com/pcorbett/jumplab/core/stats"
	"github.com/pcorbett/jumplab/schema"
)

// Extraction window constants, all relative to the first sample's timestamp.
const (
	bodyweightWindowS = 0.25 // Standing window used for the bodyweight estimate
	minBWSamples      = 5    // Below this the bodyweight window falls back to a row count
	rfdEarlyWindowS   = 0.05
	rfdMidWindowS     = 0.10
	rfdLateWindowS    = 0.20
	impulseWindowS    = 0.20
)

// ExtractJumpMetrics derives every CMJ metric from a force-time series.
// The sampling rate is informational only; every window is time-based.
// Returns ErrInsufficientData for fewer than 3 samples. The result is
// atomic: no partial metrics are exposed on failure.
func ExtractJumpMetrics(series *schema.ForceSeries) (*schema.JumpMetrics, error) {
	n := series.Len()
	if n < 3 {
		return nil, fmt.Errorf("%w: need at least 3 force samples, got %d", ErrInsufficientData, n)
	}

	times := make([]float64, n)
	forces := make([]float64, n)
	for i, s := range series.Samples {
		times[i] = s.TimeS
		forces[i] = s.ForceN
	}
	t0 := times[0]

	bw := estimateBodyweight(times, forces, t0)

	// Peak force and time-to-peak come from the same sample index.
	peakIdx := 0
	for i := 1; i < n; i++ {
		if forces[i] > forces[peakIdx] {
			peakIdx = i
		}
	}
	peak := forces[peakIdx]
	timeToPeakMs := (times[peakIdx] - t0) * 1000.0

	// RFD windows use the raw first sample as the baseline, and the nearest
	// recorded sample to each window end rather than an interpolated value.
	f0 := forces[0]
	f50 := forceAtTime(times, forces, t0+rfdEarlyWindowS)
	f100 := forceAtTime(times, forces, t0+rfdMidWindowS)
	f200 := forceAtTime(times, forces, t0+rfdLateWindowS)

	// Impulse over the 0-200 ms sub-series, total and above bodyweight.
	end := windowEnd(times, t0+impulseWindowS)
	impulse := stats.Trapezoid(times[:end], forces[:end])
	netForces := make([]float64, end)
	for i := range netForces {
		netForces[i] = forces[i] - bw
	}
	netImpulse := stats.Trapezoid(times[:end], netForces)

	// A zero bodyweight estimate makes the xBW ratio undefined; NaN is the
	// sentinel so the other metrics in the result stay usable.
	peakXBW := math.NaN()
	if bw != 0 {
		peakXBW = peak / bw
	}

	return &schema.JumpMetrics{
		BodyweightN:      bw,
		PeakForceN:       peak,
		PeakForceXBW:     peakXBW,
		NetPeakForceN:    peak - bw,
		TimeToPeakMs:     timeToPeakMs,
		RFD0To50NPerS:    (f50 - f0) / rfdEarlyWindowS,
		RFD0To100NPerS:   (f100 - f0) / rfdMidWindowS,
		RFD0To200NPerS:   (f200 - f0) / rfdLateWindowS,
		Impulse0To200Ns:  impulse,
		NetImpulse0To200: netImpulse,
	}, nil
}

// estimateBodyweight averages force over the standing window before movement
// initiation. When the first 0.25s holds fewer than 5 samples, it falls back
// to the first max(5, 10% of samples) rows, clamped to the series length.
func estimateBodyweight(times, forces []float64, t0 float64) float64 {
	end := windowEnd(times, t0+bodyweightWindowS)
	if end < minBWSamples {
		end = max(minBWSamples, len(forces)/10)
		end = min(end, len(forces))
	}
	return stats.Mean(forces[:end])
}

// forceAtTime returns the force of the sample whose timestamp is closest to
// t. A linear scan is fine at force-plate series sizes; on an exact
// equidistant tie the earlier sample wins.
func forceAtTime(times, forces []float64, t float64) float64 {
	best := 0
	bestDist := math.Abs(times[0] - t)
	for i := 1; i < len(times); i++ {
		if d := math.Abs(times[i] - t); d < bestDist {
			best, bestDist = i, d
		}
	}
	return forces[best]
}

// windowEnd returns the exclusive end index of the prefix with time <= limit.
// Timestamps are non-decreasing, so the prefix is contiguous.
func windowEnd(times []float64, limit float64) int {
	end := 0
	for end < len(times) && times[end] <= limit {
		end++
	}
	return end
}
