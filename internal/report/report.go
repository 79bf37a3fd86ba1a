// Package report assembles and persists the run metrics record.
//
// Exactly one record is written per run: success-shaped when the pipeline
// completes, error-shaped when any step fails. The record is the sole
// durable artifact of a run; it is written to the configured output path and
// echoed verbatim to standard output as pretty-printed JSON with stable
// field ordering.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

const (
	// StatusSuccess marks a completed run.
	StatusSuccess = "success"
	// StatusError marks a failed run.
	StatusError = "error"

	// MetricSignalRate is the single metric name emitted by the pipeline.
	MetricSignalRate = "signal_rate"

	// FallbackVersion is reported when a run fails before the configuration
	// is available.
	FallbackVersion = "v1"
)

// Record is the success-shaped run metrics record.
type Record struct {
	Version       string  `json:"version"`
	RowsProcessed int     `json:"rows_processed"`
	Metric        string  `json:"metric"`
	Value         float64 `json:"value"`
	LatencyMS     int64   `json:"latency_ms"`
	Seed          int64   `json:"seed"`
	Status        string  `json:"status"`
}

// ErrorRecord is the error-shaped run metrics record.
type ErrorRecord struct {
	Version      string `json:"version"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// Success assembles a success record.
func Success(version string, rowsProcessed int, value float64, latencyMS, seed int64) *Record {
	return &Record{
		Version:       version,
		RowsProcessed: rowsProcessed,
		Metric:        MetricSignalRate,
		Value:         value,
		LatencyMS:     latencyMS,
		Seed:          seed,
		Status:        StatusSuccess,
	}
}

// Failure assembles an error record carrying the failure message.
func Failure(message string) *ErrorRecord {
	return &ErrorRecord{
		Version:      FallbackVersion,
		Status:       StatusError,
		ErrorMessage: message,
	}
}

// Write persists the record to path, overwriting any previous run's output,
// and echoes the same document to out.
func Write(record any, path string, out io.Writer) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write record: %w", err)
	}

	if _, err := fmt.Fprintln(out, string(data)); err != nil {
		return fmt.Errorf("echo record: %w", err)
	}
	return nil
}
