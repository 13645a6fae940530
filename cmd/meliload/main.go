package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jaguzmanb1/meliload/internal/batch"
	"github.com/jaguzmanb1/meliload/internal/config"
	"github.com/jaguzmanb1/meliload/internal/feeder"
	"github.com/jaguzmanb1/meliload/internal/httpclient"
	"github.com/jaguzmanb1/meliload/internal/metrics"
	"github.com/jaguzmanb1/meliload/internal/output"
	"github.com/jaguzmanb1/meliload/internal/runner"
)

const progressInterval = time.Second

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	loader := config.NewLoader()
	cfg, err := loader.Load(args)
	if err != nil {
		if errors.Is(err, config.ErrHelpRequested) {
			return nil
		}
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ids, err := feeder.Resolve(feeder.Source{
		Inline:    cfg.IDs,
		FilePath:  cfg.IDFile,
		Synthetic: cfg.SyntheticIDs,
	})
	if err != nil {
		return err
	}

	batches, err := batch.Split(ids, cfg.BatchSize)
	if err != nil {
		return err
	}

	builder, err := httpclient.NewRequestBuilder(cfg.TargetURL)
	if err != nil {
		return err
	}

	client := httpclient.NewClient(cfg.Timeout)
	collector := metrics.NewCollector()

	requester := &httpRequester{
		client:    client,
		builder:   builder,
		collector: collector,
		warnings:  &stderrWarningLogger{},
	}

	opts := runner.Options{
		Concurrency: cfg.Concurrency,
		Iterations:  cfg.Iterations,
		Batches:     batches,
		Requester:   requester,
	}

	r := runner.New(opts)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var progress *output.ProgressReporter
	if !cfg.JSONOutput && output.IsTerminal(os.Stdout) {
		progress = output.NewProgressReporter(collector, progressInterval, os.Stdout)
		progress.Start()
		defer func() {
			progress.Stop()
			fmt.Fprintln(os.Stdout)
		}()
	}

	// Mark the actual start time in the collector for accurate RPS calculation.
	collector.Start()
	result, err := r.Run(ctx)
	if err != nil {
		// An aborted run produces no summary at all.
		return err
	}

	summary, err := metrics.Summarize(result.Samples)
	if err != nil {
		return err
	}

	report := output.Report{
		Summary:  summary,
		Warnings: collector.WarningBuckets(),
	}

	if cfg.JSONOutput {
		if err := output.PrintJSONReport(os.Stdout, report); err != nil {
			return err
		}
	} else {
		output.PrintReport(os.Stdout, report)
	}

	if cfg.CSVPath != "" {
		if err := output.WriteCSV(cfg.CSVPath, result.Samples); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Raw latencies written to %s\n", cfg.CSVPath)
	}

	return nil
}
