package core

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"

	"github.com/pcorbett/jumplab/core/stats"
	"github.com/pcorbett/jumplab/schema"
)

// Bootstrap defaults.
const (
	DefaultResamples = 2000
	DefaultSeed      = 42

	// maxRedrawsPerResample bounds the redraw loop for degenerate draws.
	// A draw with a single distinct x value is measure-rare for n >= 20,
	// so hitting this cap means the input itself is near-constant.
	maxRedrawsPerResample = 100
)

// BootstrapOptions configures the bootstrap predictor.
type BootstrapOptions struct {
	Resamples int   // Number of resample-refit-predict iterations
	Seed      int64 // RNG seed; the same seed reproduces the same interval
	Workers   int   // Goroutines used for the refit stage; 0 means GOMAXPROCS
}

// withDefaults fills zero-valued options.
func (o BootstrapOptions) withDefaults() BootstrapOptions {
	if o.Resamples <= 0 {
		o.Resamples = DefaultResamples
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// BootstrapPredict estimates the sampling distribution of a prediction at
// xNew by resampling (x, y) pairs with replacement, refitting the line on
// each resample and evaluating it at xNew. It reports the mean prediction
// and the 2.5th/97.5th percentiles as a 95% interval.
//
// Determinism is a contract: every resample draw comes from a single RNG
// stream seeded with opts.Seed, drawn up front, so the same seed yields a
// bit-identical interval no matter how many workers run the refits. A draw
// whose x values are all identical cannot be fit and is redrawn from the
// same stream; the redraw count is bounded and exceeding it reports an
// error rather than silently accepting solver-defined output.
func BootstrapPredict(x, y []float64, xNew float64, opts BootstrapOptions) (schema.PredictionInterval, error) {
	n := len(x)
	if n != len(y) {
		return schema.PredictionInterval{}, errors.New("x and y must be equal length")
	}
	if !hasTwoDistinct(x) {
		return schema.PredictionInterval{}, fmt.Errorf("bootstrap: %w in x", stats.ErrDegenerateInput)
	}
	opts = opts.withDefaults()

	draws, err := drawResamples(x, n, opts)
	if err != nil {
		return schema.PredictionInterval{}, err
	}

	preds := make([]float64, opts.Resamples)
	drawCh := make(chan int, opts.Resamples)
	var wg sync.WaitGroup

	for range opts.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			xb := make([]float64, n)
			yb := make([]float64, n)
			for iter := range drawCh {
				idx := draws[iter]
				for i, j := range idx {
					xb[i] = x[j]
					yb[i] = y[j]
				}
				// Degenerate draws were redrawn up front, so the fit
				// cannot fail here.
				slope, intercept, _ := stats.FitLine(xb, yb)
				// Each iteration writes a unique index, which is safe.
				preds[iter] = slope*xNew + intercept
			}
		}()
	}
	for iter := range opts.Resamples {
		drawCh <- iter
	}
	close(drawCh)
	wg.Wait()

	// No partial result is valid until all iterations complete; the mean
	// sums in iteration order to keep the float result reproducible.
	mean := stats.Mean(preds)
	sorted := make([]float64, len(preds))
	copy(sorted, preds)
	sort.Float64s(sorted)

	return schema.PredictionInterval{
		MeanMPH: mean,
		LowMPH:  stats.Percentile(sorted, 2.5),
		HighMPH: stats.Percentile(sorted, 97.5),
	}, nil
}

// drawResamples produces every resample's index set from one seeded stream.
func drawResamples(x []float64, n int, opts BootstrapOptions) ([][]int, error) {
	rng := rand.New(rand.NewSource(opts.Seed))
	draws := make([][]int, opts.Resamples)
	for iter := range draws {
		var idx []int
		redraws := 0
		for {
			idx = make([]int, n)
			for i := range idx {
				idx[i] = rng.Intn(n)
			}
			if !allSameX(x, idx) {
				break
			}
			redraws++
			if redraws > maxRedrawsPerResample {
				return nil, fmt.Errorf("bootstrap: resample %d stayed degenerate after %d redraws: %w",
					iter, maxRedrawsPerResample, stats.ErrDegenerateInput)
			}
		}
		draws[iter] = idx
	}
	return draws, nil
}

// allSameX reports whether every drawn index points at the same x value.
func allSameX(x []float64, idx []int) bool {
	first := x[idx[0]]
	for _, j := range idx[1:] {
		if x[j] != first {
			return false
		}
	}
	return true
}

// hasTwoDistinct reports whether x holds at least two distinct values.
func hasTwoDistinct(x []float64) bool {
	if len(x) < 2 {
		return false
	}
	first := x[0]
	for _, v := range x[1:] {
		if v != first {
			return true
		}
	}
	return false
}
