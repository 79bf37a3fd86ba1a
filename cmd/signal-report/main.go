// Command signal-report runs the moving-average crossover signal job: it
// loads a YAML configuration and a tabular price file, computes the signal
// series and its aggregate rate, and writes a single JSON run record.
//
// Usage:
//
//	signal-report -input prices.csv -config config.yaml \
//	    -output metrics.json -log-file run.log
//
// All four flags are required. The process exits 0 on success and 1 on any
// failure caught by the pipeline.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"smacli/internal/infrastructure"
	"smacli/internal/pipeline"
)

func main() {
	input := flag.String("input", "", "input CSV or XLSX file with a 'close' column")
	configPath := flag.String("config", "", "config YAML file with seed, window, version")
	output := flag.String("output", "", "output JSON file for the run record")
	logFile := flag.String("log-file", "", "log file path")
	flag.Parse()

	required := []struct{ name, value string }{
		{"input", *input},
		{"config", *configPath},
		{"output", *output},
		{"log-file", *logFile},
	}
	for _, r := range required {
		if r.value == "" {
			fmt.Fprintf(os.Stderr, "missing required flag: -%s\n", r.name)
			flag.Usage()
			os.Exit(1)
		}
	}

	logger, err := infrastructure.InitializeLogger(infrastructure.LogConfig{
		Level:    "info",
		Output:   "both",
		FilePath: *logFile,
	})
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	ctx := infrastructure.WithRunID(context.Background(), uuid.NewString())

	p := pipeline.New(pipeline.Options{
		ConfigPath: *configPath,
		InputPath:  *input,
		OutputPath: *output,
	}, logger)

	code := p.Run(ctx)

	if err := infrastructure.CloseLogFile(); err != nil {
		slog.Error("Failed to close log file", "error", err)
	}
	os.Exit(code)
}
