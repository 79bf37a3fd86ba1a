package signal

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"smacli/internal/dataset"
	"smacli/internal/errors"
)

// Result holds the computed signal series and its aggregates.
type Result struct {
	RowsProcessed int
	SignalRate    float64
	Signals       []int
	RollingMean   []float64
}

// Processor computes crossover signals over a fixed rolling window.
type Processor struct {
	window int
	rng    *rand.Rand
	logger *slog.Logger
}

// NewProcessor creates a processor for the given window width. The seed
// initializes the processor's PRNG state; no current computation draws from
// it, but the seeding is part of the run contract and keeps results
// reproducible if stochastic steps are added.
func NewProcessor(window int, seed int64, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		window: window,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

// Compute derives the rolling mean, signal series, and aggregate rate for
// the close column of the table.
func (p *Processor) Compute(ctx context.Context, table *dataset.Table) (*Result, error) {
	if p.window <= 0 {
		return nil, errors.Validationf("Window must be a positive integer, got %d", p.window)
	}

	closes, err := table.FloatColumn(dataset.CloseColumn)
	if err != nil {
		return nil, fmt.Errorf("read close column: %w", err)
	}

	p.logger.InfoContext(ctx, "computing rolling mean",
		slog.Int("window", p.window),
		slog.Int("rows", len(closes)))

	mean := RollingMean(closes, p.window)

	signals := make([]int, len(closes))
	signalSum := 0
	for i, c := range closes {
		// Warm-up rows have no defined mean and never signal.
		if i < p.window-1 {
			continue
		}
		if c > mean[i] {
			signals[i] = 1
			signalSum++
		}
	}

	rate := 0.0
	if len(closes) > 0 {
		rate = float64(signalSum) / float64(len(closes))
	}

	res := &Result{
		RowsProcessed: len(closes),
		SignalRate:    rate,
		Signals:       signals,
		RollingMean:   mean,
	}

	p.logger.InfoContext(ctx, "signals generated",
		slog.Int("rows_processed", res.RowsProcessed),
		slog.Float64("signal_rate", res.SignalRate))

	return res, nil
}

// RollingMean returns the trailing arithmetic mean of values over a window
// of the given width, inclusive of the current element. Entries with fewer
// than window-1 predecessors are NaN.
func RollingMean(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = sum / float64(window)
	}
	return out
}
