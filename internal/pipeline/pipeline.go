// Package pipeline runs the four processing steps as one timed,
// all-or-nothing execution: configuration loading, data loading, signal
// computation, and run reporting.
//
// There are exactly two terminal states. A run that clears every step writes
// the success-shaped record and yields exit code 0; a failure at any step is
// caught once at this boundary, logged at error severity, reported through
// the error-shaped record, and yields exit code 1. Nothing is retried, and a
// late failure discards all earlier results.
package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"smacli/internal/config"
	"smacli/internal/dataset"
	"smacli/internal/errors"
	"smacli/internal/report"
	"smacli/internal/signal"
)

// Options carries the file paths for one run.
type Options struct {
	ConfigPath string
	InputPath  string
	OutputPath string

	// Stdout receives the run record echo. Defaults to os.Stdout.
	Stdout io.Writer
}

// Pipeline executes one run of the signal job.
type Pipeline struct {
	opts   Options
	logger *slog.Logger
	stdout io.Writer
}

// New creates a pipeline for the given paths.
func New(opts Options, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Pipeline{opts: opts, logger: logger, stdout: stdout}
}

// Run executes the pipeline once and returns the process exit code.
func (p *Pipeline) Run(ctx context.Context) int {
	start := time.Now()
	p.logger.InfoContext(ctx, "Job started")

	cfg, err := config.Load(p.opts.ConfigPath)
	if err != nil {
		return p.fail(ctx, start, err)
	}
	p.logger.InfoContext(ctx, "Config loaded",
		slog.Int64("seed", cfg.Seed),
		slog.Int("window", cfg.Window),
		slog.String("version", cfg.Version))

	table, err := dataset.Load(p.opts.InputPath)
	if err != nil {
		return p.fail(ctx, start, err)
	}
	p.logger.InfoContext(ctx, "Data loaded", slog.Int("rows", table.NumRows()))

	proc := signal.NewProcessor(cfg.Window, cfg.Seed, p.logger)
	res, err := proc.Compute(ctx, table)
	if err != nil {
		return p.fail(ctx, start, err)
	}

	latency := time.Since(start).Milliseconds()
	p.logger.InfoContext(ctx, "Metrics computed",
		slog.Float64("signal_rate", res.SignalRate),
		slog.Int("rows_processed", res.RowsProcessed),
		slog.Int64("latency_ms", latency))

	rec := report.Success(cfg.Version, res.RowsProcessed, res.SignalRate, latency, cfg.Seed)
	if err := report.Write(rec, p.opts.OutputPath, p.stdout); err != nil {
		return p.fail(ctx, start, err)
	}

	p.logger.InfoContext(ctx, "Job completed successfully", slog.Int64("latency_ms", latency))
	return 0
}

// fail is the single error boundary: log, emit the error record, exit 1.
func (p *Pipeline) fail(ctx context.Context, start time.Time, err error) int {
	latency := time.Since(start).Milliseconds()
	p.logger.ErrorContext(ctx, "Job failed",
		slog.String("error", err.Error()),
		slog.String("code", string(errors.CodeOf(err))),
		slog.Int64("latency_ms", latency))

	if werr := report.Write(report.Failure(err.Error()), p.opts.OutputPath, p.stdout); werr != nil {
		p.logger.ErrorContext(ctx, "Failed to write error record", slog.String("error", werr.Error()))
	}
	return 1
}
