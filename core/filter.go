package core

import (
	"math"

	"github.com/pcorbett/jumplab/core/stats"
	"github.com/pcorbett/jumplab/schema"
)

// minRowsForZFilter is the smallest sample count where a z-score spread
// estimate is considered reliable enough to drop rows.
const minRowsForZFilter = 10

// FilterSamples applies the outlier policy to one population group and
// returns the surviving subset. It is a total function: degenerate inputs
// (too few rows, zero spread) skip the z-score stage instead of failing.
func FilterSamples(samples []schema.AthleteSample, policy schema.FilterPolicy) []schema.AthleteSample {
	kept := make([]schema.AthleteSample, 0, len(samples))
	for _, s := range samples {
		if !s.Usable() {
			continue
		}
		if s.BatSpeedMPH < policy.MinBatSpeed {
			continue
		}
		kept = append(kept, s)
	}

	// Too few points to estimate spread reliably.
	if len(kept) < minRowsForZFilter {
		return kept
	}

	jumps := make([]float64, len(kept))
	bats := make([]float64, len(kept))
	for i, s := range kept {
		jumps[i] = s.JumpHeightCM
		bats[i] = s.BatSpeedMPH
	}

	jMu, jSD := stats.Mean(jumps), stats.StdDev(jumps)
	bMu, bSD := stats.Mean(bats), stats.StdDev(bats)

	// A constant-valued feature cannot produce meaningful z-scores.
	if jSD == 0 || bSD == 0 {
		return kept
	}

	out := kept[:0]
	for i, s := range kept {
		jZ := (jumps[i] - jMu) / jSD
		bZ := (bats[i] - bMu) / bSD
		if math.Abs(jZ) <= policy.ZCutoff && math.Abs(bZ) <= policy.ZCutoff {
			out = append(out, s)
		}
	}
	return out
}
